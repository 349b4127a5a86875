// cmd/welltrack/cmd/entry/delete.go
package entry

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Удалить записи",
	Long: `Удаление записей по id (подойдёт и короткий префикс из вывода list).
Отсутствующая запись - предупреждение, не ошибка.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		for _, arg := range args {
			id, err := resolveID(s, arg)
			if err != nil {
				color.Yellow("Запись %q не найдена", arg)
				continue
			}

			removed, err := s.Delete(id)
			if err != nil {
				return err
			}
			if removed {
				color.Green("Запись удалена: %s", shortID(id))
			} else {
				color.Yellow("Запись %q не найдена", arg)
			}
		}
		return nil
	},
}

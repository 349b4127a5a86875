// cmd/welltrack/cmd/entry/import.go
package entry

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import-log <файл>",
	Short: "Импортировать старый текстовый журнал",
	Long: `Дочитывание записей из текстового журнала старого формата
(строки вида "время | тип | время суток | название доза | заметки")
в текущий трекер. Поддерживается только журнал медикаментов.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		n, err := s.ImportLegacy(args[0])
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Println("Новых записей не найдено")
			return nil
		}
		color.Green("Импортировано записей: %d", n)
		return nil
	},
}

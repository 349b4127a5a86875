// cmd/welltrack/cmd/entry/export.go
package entry

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <файл>",
	Short: "Экспортировать записи в JSON-файл",
	Long: `Выгрузка текущей выборки трекера в отдельный JSON-файл (плоский
массив записей). Фильтры те же, что у list: без них выгружается всё.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, s, err := sessionFrom(cmd)
		if err != nil {
			return err
		}
		if err := buildFilter(app, s); err != nil {
			return err
		}

		n, err := s.Export(args[0])
		if err != nil {
			return err
		}
		color.Green("Выгружено записей: %d -> %s", n, args[0])
		return nil
	},
}

func init() {
	addFilterFlags(exportCmd)
}

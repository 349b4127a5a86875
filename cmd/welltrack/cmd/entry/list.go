// cmd/welltrack/cmd/entry/list.go
package entry

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listDetail bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long: `Просмотр записей трекера, новые первыми.

Фильтры комбинируются: подстрочный поиск --search идёт по склейке всех
полей без учёта регистра, --from/--to задают включительный диапазон дат,
--category сравнивается точно. Быстрые срезы: --today и --last-days.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, s, err := sessionFrom(cmd)
		if err != nil {
			return err
		}
		if err := buildFilter(app, s); err != nil {
			return err
		}

		records := s.List()
		if jsonOutput(cmd) {
			return printRecordsJSON(records)
		}

		if listDetail {
			if len(records) == 0 {
				fmt.Println("Записи не найдены")
				return nil
			}
			for _, r := range records {
				printRecordDetail(r, s.Schema())
				fmt.Println()
			}
			fmt.Printf("Всего записей: %d\n", len(records))
			return nil
		}

		printRecordsTable(s, records)
		return nil
	},
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().BoolVar(&listDetail, "detail", false, "подробный вывод вместо таблицы")
}

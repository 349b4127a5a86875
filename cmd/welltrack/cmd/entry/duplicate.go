// cmd/welltrack/cmd/entry/duplicate.go
package entry

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"welltrack/internal/domain/entry"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Дублировать запись",
	Long: `Клонирование записи: поля и препараты копируются, id выдаётся
новый, время ставится текущее. Удобно для повторяющихся приёмов.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		id, err := resolveID(s, args[0])
		if err != nil {
			return err
		}

		dup, err := s.Duplicate(id)
		if err != nil {
			return err
		}

		if jsonOutput(cmd) {
			return printRecordsJSON([]entry.Record{dup})
		}
		color.Green("Создана копия: %s", shortID(dup.ID))
		printRecordDetail(dup, s.Schema())
		return nil
	},
}

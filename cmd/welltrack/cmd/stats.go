// cmd/welltrack/cmd/stats.go
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"welltrack/internal/app/tracker"
	"welltrack/internal/domain/entry"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Сводка по всем трекерам",
	Long:  `Число записей всего и за сегодня в каждом трекере.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value("app").(*tracker.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		summaries := make([]tracker.Summary, 0, len(entry.Kinds()))
		for _, k := range entry.Kinds() {
			s, err := app.Session(k)
			if err != nil {
				return err
			}
			summaries = append(summaries, s.Summarize())
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summaries)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Трекер\tВсего\tСегодня\t")
		for _, sum := range summaries {
			fmt.Fprintf(w, "%s\t%d\t%d\t\n", sum.Kind.DisplayName(), sum.Total, sum.Today)
		}
		w.Flush()

		fmt.Printf("\nКаталог данных: %s\n", app.DataDir())
		return nil
	},
}

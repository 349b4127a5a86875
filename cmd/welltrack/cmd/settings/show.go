// cmd/welltrack/cmd/settings/show.go
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать текущие настройки",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}
		s := app.Settings()

		if jsonOutput(cmd) {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "inclusive_language\t%t\t\n", s.InclusiveLanguage)
		fmt.Fprintf(w, "appearance\t%s\t\n", s.Appearance)
		fmt.Fprintf(w, "color_theme\t%s\t\n", s.ColorTheme)
		fmt.Fprintf(w, "date_format\t%s\t\n", s.DateFormat)
		fmt.Fprintf(w, "time_format\t%s\t\n", s.TimeFormat)
		fmt.Fprintf(w, "show_seconds\t%t\t\n", s.ShowSeconds)
		fmt.Fprintf(w, "confirm_actions\t%t\t\n", s.ConfirmActions)
		fmt.Fprintf(w, "backup_on_save\t%t\t\n", s.BackupOnSave)
		fmt.Fprintf(w, "default_unit\t%s\t\n", s.DefaultUnit)
		fmt.Fprintf(w, "default_route\t%s\t\n", s.DefaultRoute)
		fmt.Fprintf(w, "note_font_size\t%d\t\n", s.NoteFontSize)
		fmt.Fprintf(w, "regimens\t%s\t\n", strings.Join(s.Regimens, ", "))
		fmt.Fprintf(w, "routes\t%s\t\n", strings.Join(s.Routes, ", "))
		fmt.Fprintf(w, "units\t%s\t\n", strings.Join(s.Units, ", "))
		fmt.Fprintf(w, "moods\t%s\t\n", strings.Join(s.Moods, ", "))
		return w.Flush()
	},
}

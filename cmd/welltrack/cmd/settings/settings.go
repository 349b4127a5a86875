// cmd/welltrack/cmd/settings/settings.go
package settings

import (
	"fmt"

	"github.com/spf13/cobra"

	"welltrack/internal/app/tracker"
)

var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Настройки приложения",
	Long: `Просмотр и изменение настроек. Настройки лежат в settings.json
в каталоге данных; отсутствующий или битый файл молча заменяется
умолчаниями, битый ключ - своим умолчанием.`,
}

func init() {
	SettingsCmd.AddCommand(showCmd)
	SettingsCmd.AddCommand(setCmd)
	SettingsCmd.AddCommand(resetCmd)
}

func appFrom(cmd *cobra.Command) (*tracker.App, error) {
	app, ok := cmd.Context().Value("app").(*tracker.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Context().Value("json").(bool)
	return v
}

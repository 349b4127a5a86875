// cmd/welltrack/cmd/settings/set.go
package settings

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <ключ> <значение>",
	Short: "Изменить настройку",
	Long: `Изменение одной настройки по её ключу из вывода settings show.
Списки (regimens, routes, units, moods) задаются через запятую.
Значение проверяется; недопустимое отклоняется, настройка не меняется.

Примеры:
  welltrack settings set backup_on_save true
  welltrack settings set date_format 02/01/2006
  welltrack settings set units "mg, mcg, ml"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if err := app.ApplySetting(args[0], args[1]); err != nil {
			return err
		}
		color.Green("Настройка %s сохранена", args[0])
		return nil
	},
}

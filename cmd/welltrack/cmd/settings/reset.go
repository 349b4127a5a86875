// cmd/welltrack/cmd/settings/reset.go
package settings

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Сбросить настройки к умолчаниям",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if err := app.ResetSettings(); err != nil {
			return err
		}
		color.Green("Настройки сброшены к умолчаниям")
		return nil
	},
}

// cmd/welltrack/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"welltrack/cmd/welltrack/cmd/entry"
	settingscmd "welltrack/cmd/welltrack/cmd/settings"
	"welltrack/internal/app/tracker"
	"welltrack/internal/app/tracker/config"
	"welltrack/internal/utils/logger"
)

var (
	cfg        *config.Config
	log        *slog.Logger
	app        *tracker.App
	debug      bool
	jsonOutput bool
	dataDir    string
)

var rootCmd = &cobra.Command{
	Use:   "welltrack",
	Short: "welltrack — дневники здоровья в терминале",
	Long: `welltrack ведёт локальные дневники здоровья: приём ГЗТ, медикаменты,
личный дневник, трекер цикла и подборку ресурсов.

Все данные лежат в обычных JSON-файлах в каталоге данных; никакой сети,
никаких аккаунтов. Повреждённый файл откладывается в .bak и никогда не
роняет приложение.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Переопределяем каталог данных из флага командной строки.
	if dataDir != "" {
		viper.Set("DATA_DIR", dataDir)
	}

	cfg = config.MustLoad()
	if debug {
		cfg.Env = config.EnvLocal
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = tracker.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	ctx := context.WithValue(cmd.Context(), "app", app)
	ctx = context.WithValue(ctx, "json", jsonOutput)
	cmd.SetContext(ctx)
	return nil
}

func init() {
	cobra.OnInitialize()

	// Глобальные флаги
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "каталог данных (по умолчанию ~/.welltrack)")

	rootCmd.AddCommand(entry.EntryCmd)
	rootCmd.AddCommand(settingscmd.SettingsCmd)
	rootCmd.AddCommand(statsCmd)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Окружения приложения.
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultEnv      = EnvLocal
	defaultLogLevel = "info"
	defaultDataDir  = ".welltrack"
)

// Config — процессная конфигурация: где лежат данные и как логировать.
// Пользовательские настройки трекеров (темы, форматы дат, подсказки) —
// отдельная сущность, см. пакет settings.
type Config struct {
	Env          string `mapstructure:"app_env"`
	LogLevel     string `mapstructure:"log_level"`
	DataDir      string `mapstructure:"data_dir"`
	SettingsPath string `mapstructure:"settings_path"`
}

// MustLoad загружает конфигурацию из .env и переменных окружения.
func MustLoad() *Config {
	// Загружаем .env файл, если он есть (рядом или уровнем выше).
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("DATA_DIR", defaultDataDir)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	dataDir := viper.GetString("DATA_DIR")
	if dataDir == defaultDataDir {
		dataDir = filepath.Join(homeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "ошибка создания каталога данных: %v\n", err)
	}

	settingsPath := viper.GetString("SETTINGS_PATH")
	if settingsPath == "" {
		settingsPath = filepath.Join(dataDir, "settings.json")
	}

	cfg := &Config{
		Env:          viper.GetString("APP_ENV"),
		LogLevel:     viper.GetString("LOG_LEVEL"),
		DataDir:      dataDir,
		SettingsPath: settingsPath,
	}

	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("ошибка конфигурации: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir не может быть пустым")
	}
	return nil
}

// IsProd проверяет, prod ли окружение.
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение.
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}

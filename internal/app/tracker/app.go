package tracker

import (
	"fmt"
	"path/filepath"

	"golang.org/x/exp/slog"

	"welltrack/internal/app/tracker/config"
	"welltrack/internal/domain/entry"
	"welltrack/internal/settings"
	"welltrack/internal/storage"
	"welltrack/internal/utils/clock"
)

// App собирает приложение: конфигурация, настройки пользователя и по
// одной сессии на каждый открытый трекер. Сессии создаются лениво —
// файл трекера читается только когда к нему обратились.
type App struct {
	cfg   *config.Config
	log   *slog.Logger
	clk   clock.Clock
	prefs settings.Settings

	settingsStore *settings.Store
	sessions      map[entry.Kind]*Session
}

// Option настраивает App при создании.
type Option func(*App)

// WithClock подменяет часы (тесты).
func WithClock(clk clock.Clock) Option {
	return func(a *App) { a.clk = clk }
}

// New создаёт приложение: загружает настройки (это никогда не падает —
// битый файл настроек даёт умолчания) и готовит каталог данных.
func New(cfg *config.Config, log *slog.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	a := &App{
		cfg:           cfg,
		log:           log,
		clk:           clock.System{},
		settingsStore: settings.NewStore(cfg.SettingsPath, settings.WithLogger(log)),
		sessions:      make(map[entry.Kind]*Session),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.prefs = a.settingsStore.Load()
	return a, nil
}

// Session возвращает сессию трекера, открывая её при первом обращении.
func (a *App) Session(kind entry.Kind) (*Session, error) {
	if s, ok := a.sessions[kind]; ok {
		return s, nil
	}

	schema, err := entry.SchemaFor(kind)
	if err != nil {
		return nil, err
	}

	store := storage.New(
		filepath.Join(a.cfg.DataDir, schema.FileName),
		schema,
		storage.WithLogger(a.log),
		storage.WithBackupOnSave(a.prefs.BackupOnSave),
	)
	s := NewSession(schema, store, a.Settings, a.clk, a.log)
	a.sessions[kind] = s
	return s, nil
}

// Settings возвращает текущие настройки пользователя.
func (a *App) Settings() settings.Settings {
	return a.prefs
}

// ApplySetting меняет одну настройку, сразу сохраняет файл настроек и
// пробрасывает затронутые значения в открытые сессии.
func (a *App) ApplySetting(key, value string) error {
	next := a.prefs
	if err := next.Apply(key, value); err != nil {
		return err
	}
	if err := a.settingsStore.Save(next); err != nil {
		return err
	}

	a.prefs = next
	for _, s := range a.sessions {
		s.SetBackupOnSave(a.prefs.BackupOnSave)
	}
	a.log.Debug("setting applied", "key", key)
	return nil
}

// ResetSettings возвращает все настройки к умолчаниям и сохраняет их.
func (a *App) ResetSettings() error {
	def := settings.Defaults()
	if err := a.settingsStore.Save(def); err != nil {
		return err
	}
	a.prefs = def
	for _, s := range a.sessions {
		s.SetBackupOnSave(def.BackupOnSave)
	}
	return nil
}

// DataDir возвращает каталог данных приложения.
func (a *App) DataDir() string {
	return a.cfg.DataDir
}

// Package settings хранит пользовательские настройки приложения: плоский
// JSON-объект с задокументированными значениями по умолчанию. Загрузка
// никогда не падает — любой отсутствующий или битый ключ молча
// возвращается к умолчанию, а нечитаемый файл уезжает в карантин.
package settings

import (
	"encoding/json"

	"golang.org/x/exp/slog"

	"welltrack/internal/storage"
	"welltrack/internal/utils/timeparse"
)

// Settings — рабочая конфигурация приложения. Всегда пригодна к
// использованию: конструируется только через Defaults или Load.
type Settings struct {
	InclusiveLanguage bool   `json:"inclusive_language"`
	Appearance        string `json:"appearance"`
	ColorTheme        string `json:"color_theme"`
	DateFormat        string `json:"date_format"`
	TimeFormat        string `json:"time_format"`
	ShowSeconds       bool   `json:"show_seconds"`
	ConfirmActions    bool   `json:"confirm_actions"`
	BackupOnSave      bool   `json:"backup_on_save"`
	DefaultUnit       string `json:"default_unit"`
	DefaultRoute      string `json:"default_route"`
	NoteFontSize      int    `json:"note_font_size"`

	// Списки подсказок для выпадающих полей форм.
	Regimens []string `json:"regimens"`
	Routes   []string `json:"routes"`
	Units    []string `json:"units"`
	Moods    []string `json:"moods"`
}

// Допустимые значения перечислений и форматов.
var (
	appearances = []string{"System", "Light", "Dark"}
	colorThemes = []string{"blue", "green", "dark-blue"}
	dateLayouts = []string{timeparse.CanonicalDate, "01/02/2006", "02/01/2006"}
	timeLayouts = []string{timeparse.CanonicalTime, "3:04 PM"}
)

// Подсказки по умолчанию — из настроек исходных трекеров.
var (
	defaultRegimens = []string{
		"Estradiol (oral)", "Estradiol valerate (oral)", "Estradiol cypionate (injectable)",
		"Estradiol patch", "Estradiol gel", "Micronized progesterone",
		"Spironolactone", "Cyproterone acetate", "Finasteride",
		"Testosterone (intramuscular)", "Testosterone (topical)", "Other",
	}
	defaultRoutes = []string{"Oral", "Patch", "Topical / gel", "Injection", "Sublingual", "Other"}
	defaultUnits  = []string{"mg", "mcg", "units", "ml", "patch", "other"}
	defaultMoods  = []string{"Neutral", "Happy", "Irritable", "Anxious", "Euphoric", "Low", "Other"}
)

const (
	minFontSize = 8
	maxFontSize = 32
)

// Defaults возвращает настройки по умолчанию.
func Defaults() Settings {
	return Settings{
		InclusiveLanguage: true,
		Appearance:        "System",
		ColorTheme:        "blue",
		DateFormat:        timeparse.CanonicalDate,
		TimeFormat:        timeparse.CanonicalTime,
		ShowSeconds:       true,
		ConfirmActions:    true,
		BackupOnSave:      false,
		NoteFontSize:      12,
		Regimens:          append([]string(nil), defaultRegimens...),
		Routes:            append([]string(nil), defaultRoutes...),
		Units:             append([]string(nil), defaultUnits...),
		Moods:             append([]string(nil), defaultMoods...),
	}
}

// Store читает и пишет файл настроек тем же атомарным способом, что и
// хранилище записей.
type Store struct {
	path string
	fsys storage.FS
	log  *slog.Logger
}

// NewStore создаёт хранилище настроек для файла path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{path: path, fsys: storage.OS{}, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "settings")
	return s
}

// StoreOption настраивает Store.
type StoreOption func(*Store)

func WithFS(fsys storage.FS) StoreOption {
	return func(s *Store) { s.fsys = fsys }
}

func WithLogger(log *slog.Logger) StoreOption {
	return func(s *Store) { s.log = log }
}

// Path возвращает путь файла настроек.
func (s *Store) Path() string {
	return s.path
}

// Load читает настройки. Отсутствующий файл — умолчания; нечитаемый —
// карантин в .bak и умолчания; каждый ключ с неподходящим типом или
// значением тихо сбрасывается к своему умолчанию. Ошибок не бывает.
func (s *Store) Load() Settings {
	def := Defaults()

	data, err := s.fsys.ReadFile(s.path)
	if err != nil {
		if !storage.IsNotExist(err) {
			s.log.Warn("settings file unreadable", "path", s.path, "error", err)
		}
		return def
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		if renameErr := s.fsys.Rename(s.path, s.path+storage.BackupSuffix); renameErr == nil {
			s.log.Warn("corrupt settings moved aside", "path", s.path)
		}
		return def
	}

	out := Settings{
		InclusiveLanguage: boolOr(raw["inclusive_language"], def.InclusiveLanguage),
		Appearance:        enumOr(raw["appearance"], appearances, def.Appearance),
		ColorTheme:        enumOr(raw["color_theme"], colorThemes, def.ColorTheme),
		DateFormat:        enumOr(raw["date_format"], dateLayouts, def.DateFormat),
		TimeFormat:        enumOr(raw["time_format"], timeLayouts, def.TimeFormat),
		ShowSeconds:       boolOr(raw["show_seconds"], def.ShowSeconds),
		ConfirmActions:    boolOr(raw["confirm_actions"], def.ConfirmActions),
		BackupOnSave:      boolOr(raw["backup_on_save"], def.BackupOnSave),
		DefaultUnit:       stringOr(raw["default_unit"], def.DefaultUnit),
		DefaultRoute:      stringOr(raw["default_route"], def.DefaultRoute),
		NoteFontSize:      intOr(raw["note_font_size"], def.NoteFontSize, minFontSize, maxFontSize),
		Regimens:          listOr(raw["regimens"], def.Regimens),
		Routes:            listOr(raw["routes"], def.Routes),
		Units:             listOr(raw["units"], def.Units),
		Moods:             listOr(raw["moods"], def.Moods),
	}
	return out
}

// Save пишет настройки атомарно; сбой — *storage.WriteError.
// Сохранение вызывается сразу после каждого изменения, без батчинга.
func (s *Store) Save(cfg Settings) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return &storage.WriteError{Path: s.path, Err: err}
	}

	tmp, err := s.fsys.WriteTemp(s.path, data)
	if err != nil {
		return &storage.WriteError{Path: s.path, Err: err}
	}
	if err := s.fsys.Rename(tmp, s.path); err != nil {
		_ = s.fsys.Remove(tmp)
		return &storage.WriteError{Path: s.path, Err: err}
	}
	return nil
}

func boolOr(v any, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

func enumOr(v any, allowed []string, def string) string {
	s, ok := v.(string)
	if !ok {
		return def
	}
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	return def
}

func intOr(v any, def, min, max int) int {
	f, ok := v.(float64)
	if !ok {
		return def
	}
	i := int(f)
	if i < min {
		i = min
	}
	if i > max {
		i = max
	}
	return i
}

func listOr(v any, def []string) []string {
	list, ok := v.([]any)
	if !ok {
		return append([]string(nil), def...)
	}
	out := make([]string, 0, len(list))
	for _, el := range list {
		if s, ok := el.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), def...)
	}
	return out
}

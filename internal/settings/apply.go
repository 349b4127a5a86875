package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// Apply меняет одну настройку по её JSON-ключу, разбирая строковое
// значение из командной строки. Списки задаются через запятую.
// Недопустимое значение — ошибка, настройка не меняется.
func (s *Settings) Apply(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case "inclusive_language", "show_seconds", "confirm_actions", "backup_on_save":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("setting %s expects true/false, got %q", key, value)
		}
		switch key {
		case "inclusive_language":
			s.InclusiveLanguage = b
		case "show_seconds":
			s.ShowSeconds = b
		case "confirm_actions":
			s.ConfirmActions = b
		case "backup_on_save":
			s.BackupOnSave = b
		}

	case "appearance":
		v, err := pick(value, appearances)
		if err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		s.Appearance = v
	case "color_theme":
		v, err := pick(value, colorThemes)
		if err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		s.ColorTheme = v
	case "date_format":
		v, err := pick(value, dateLayouts)
		if err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		s.DateFormat = v
	case "time_format":
		v, err := pick(value, timeLayouts)
		if err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		s.TimeFormat = v

	case "default_unit":
		s.DefaultUnit = value
	case "default_route":
		s.DefaultRoute = value

	case "note_font_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("setting %s expects a number, got %q", key, value)
		}
		if n < minFontSize {
			n = minFontSize
		}
		if n > maxFontSize {
			n = maxFontSize
		}
		s.NoteFontSize = n

	case "regimens", "routes", "units", "moods":
		items := splitList(value)
		if len(items) == 0 {
			return fmt.Errorf("setting %s expects a comma-separated list", key)
		}
		switch key {
		case "regimens":
			s.Regimens = items
		case "routes":
			s.Routes = items
		case "units":
			s.Units = items
		case "moods":
			s.Moods = items
		}

	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func pick(value string, allowed []string) (string, error) {
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	return "", fmt.Errorf("expected one of %s, got %q", strings.Join(allowed, ", "), value)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

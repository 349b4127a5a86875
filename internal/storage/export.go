package storage

import (
	"encoding/json"

	"welltrack/internal/domain/entry"
)

// Export выгружает records (обычно текущую отфильтрованную выборку) в
// отдельный JSON-файл голым массивом — формат, который понимают внешние
// инструменты и старые версии приложений. Пишется тем же атомарным путём,
// что и основной файл.
func (s *Store) Export(path string, records []entry.Record) error {
	entries := make([]map[string]any, 0, len(records))
	for _, r := range records {
		entries = append(entries, s.schema.Encode(r))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp, err := s.fsys.WriteTemp(path, data)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := s.fsys.Rename(tmp, path); err != nil {
		_ = s.fsys.Remove(tmp)
		return &WriteError{Path: path, Err: err}
	}

	s.log.Info("entries exported", "path", path, "count", len(records))
	return nil
}

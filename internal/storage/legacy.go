package storage

import (
	"strings"

	"github.com/google/uuid"

	"welltrack/internal/domain/entry"
)

// legacySeparator разделяет колонки старого текстового журнала.
const legacySeparator = " | "

// LoadLegacyText читает старый построчный текстовый журнал
// ("ts | type | time_of_day | name dose | notes") и возвращает записи,
// прошедшие обычную проверку схемы. Порядок колонок задаёт
// Schema.LegacyColumns; схемы без него импорта не имеют. У строк с
// нехваткой колонок остаток уходит в notes; строка, не прошедшая проверку
// схемы, пропускается так же молча, как битая запись при Load.
func (s *Store) LoadLegacyText(path string) []entry.Record {
	if len(s.schema.LegacyColumns) == 0 {
		return nil
	}

	data, err := s.fsys.ReadFile(path)
	if err != nil {
		if !IsNotExist(err) {
			s.log.Warn("legacy log unreadable", "path", path, "error", err)
		}
		return nil
	}

	cols := s.schema.LegacyColumns
	var records []entry.Record
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, legacySeparator)
		raw := make(map[string]any, len(cols))
		if len(parts) >= len(cols) {
			for i, col := range cols {
				raw[col] = strings.TrimSpace(parts[i])
			}
		} else {
			// Колонок не хватает: сохраняем строку как есть.
			raw["timestamp"] = strings.TrimSpace(parts[0])
			raw["notes"] = line
		}

		r, ok := s.schema.Normalize(raw)
		if !ok {
			continue
		}
		r.ID = uuid.NewString()
		records = append(records, r)
	}

	s.log.Info("legacy log imported", "path", path, "count", len(records))
	return records
}

package storage

import (
	"sort"
	"strings"

	"welltrack/internal/domain/entry"
	"welltrack/internal/utils/timeparse"
)

// Query возвращает подмножество records под фильтром f, отсортированное по
// timestamp по убыванию (строкового сравнения достаточно: канонический
// формат сортируется хронологически). Исходный срез не меняется — порядок
// вставки канонический, выборка всегда работает с копией.
//
// Правила фильтра:
//   - Text: регистронезависимая подстрока по склейке всех полей записи;
//   - From/To: включительные границы по датной части timestamp'а; пока
//     диапазон активен, записи с нечитаемой меткой исключаются, без него —
//     остаются видимыми (пользователь должен их увидеть и починить);
//   - Category: точное совпадение по TypeField схемы; у схем без поля
//     категории фильтр не действует.
func Query(schema entry.Schema, records []entry.Record, f entry.Filter) []entry.Record {
	needle := strings.ToLower(strings.TrimSpace(f.Text))

	out := make([]entry.Record, 0, len(records))
	for _, r := range records {
		if needle != "" && !strings.Contains(r.SearchBlob(), needle) {
			continue
		}

		if f.HasDateRange() {
			d, ok := timeparse.EntryDate(r.Timestamp)
			if !ok {
				continue
			}
			if !f.From.IsZero() && d.Before(f.From) {
				continue
			}
			if !f.To.IsZero() && d.After(f.To) {
				continue
			}
		}

		if f.Category != "" && schema.TypeField != "" &&
			r.Field(schema.TypeField) != f.Category {
			continue
		}

		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp > out[j].Timestamp
		}
		if f.SortField != "" {
			return out[i].Field(f.SortField) < out[j].Field(f.SortField)
		}
		return false
	})
	return out
}

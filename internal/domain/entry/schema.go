package entry

import (
	"encoding/json"
	"strconv"
	"strings"

	"welltrack/internal/utils/timeparse"
)

// Schema описывает один вид записей: какие скалярные поля известны, какие
// из них обязательны, есть ли вложенный список и по какому полю работает
// фильтр по категории. Всё, чего схема не знает, отбрасывается при загрузке.
type Schema struct {
	Kind Kind

	// FileName — имя JSON-файла хранилища в каталоге данных.
	FileName string

	// Required — хотя бы одно из этих полей должно быть непустым,
	// иначе запись не существует (ни в памяти, ни на диске).
	Required []string

	// Optional — остальные известные скалярные поля.
	Optional []string

	// ItemsField — имя поля вложенного списка ("" — списка нет).
	ItemsField string

	// TypeField — поле, по которому работает точный фильтр по категории.
	TypeField string

	// PrimaryField показывается первым в списках и выгрузках.
	PrimaryField string

	// LegacyColumns — порядок колонок старого текстового журнала
	// ("ts | type | ... | notes"); пустой срез — импорта нет.
	LegacyColumns []string
}

var schemas = map[Kind]Schema{
	KindHRT: {
		Kind:         KindHRT,
		FileName:     "hrt_entries.json",
		Required:     []string{"regimen"},
		Optional:     []string{"route", "dose", "mood", "symptoms", "notes"},
		ItemsField:   "medications",
		PrimaryField: "regimen",
	},
	KindMedication: {
		Kind:          KindMedication,
		FileName:      "medication_log.json",
		Required:      []string{"name"},
		Optional:      []string{"dose", "type", "time_of_day", "notes"},
		TypeField:     "type",
		PrimaryField:  "name",
		LegacyColumns: []string{"timestamp", "type", "time_of_day", "name", "notes"},
	},
	KindJournal: {
		Kind:         KindJournal,
		FileName:     "journal_entries.json",
		Required:     []string{"content"},
		Optional:     []string{"title", "mood"},
		PrimaryField: "title",
	},
	KindCycle: {
		Kind:         KindCycle,
		FileName:     "cycle_entries.json",
		Required:     []string{"flow"},
		Optional:     []string{"symptoms", "mood", "notes"},
		PrimaryField: "flow",
	},
	KindResource: {
		Kind:         KindResource,
		FileName:     "hrt_resources.json",
		Required:     []string{"title"},
		Optional:     []string{"url", "category", "notes"},
		TypeField:    "category",
		PrimaryField: "title",
	},
}

// SchemaFor возвращает схему вида.
func SchemaFor(k Kind) (Schema, error) {
	if err := k.Validate(); err != nil {
		return Schema{}, err
	}
	return schemas[k], nil
}

// KnownFields перечисляет все скалярные поля схемы, обязательные первыми.
func (s Schema) KnownFields() []string {
	out := make([]string, 0, len(s.Required)+len(s.Optional))
	out = append(out, s.Required...)
	out = append(out, s.Optional...)
	return out
}

// Normalize превращает сырой JSON-объект с диска в проверенную запись.
// Неизвестные поля отбрасываются, сломанные под-поля очищаются до пустых.
// Читаемый timestamp в стороннем формате приводится к каноническому виду,
// нечитаемый становится пустой строкой. ok=false означает, что запись не
// прошла даже минимальную проверку (ни одного обязательного поля) и должна
// быть молча исключена.
func (s Schema) Normalize(raw map[string]any) (Record, bool) {
	r := Record{
		ID:     strings.TrimSpace(coerceString(raw["id"])),
		Fields: make(map[string]string, len(s.Required)+len(s.Optional)),
	}

	if ts := strings.TrimSpace(coerceString(raw["timestamp"])); ts != "" {
		if norm, ok := timeparse.Normalize(ts); ok {
			r.Timestamp = norm
		}
	}

	for _, f := range s.KnownFields() {
		r.Fields[f] = strings.TrimSpace(coerceString(raw[f]))
	}

	if s.ItemsField != "" {
		if list, ok := raw[s.ItemsField].([]any); ok {
			for _, el := range list {
				m, ok := el.(map[string]any)
				if !ok {
					continue
				}
				it := Item{
					Name:  strings.TrimSpace(coerceString(m["name"])),
					Dose:  strings.TrimSpace(coerceString(m["dose"])),
					Unit:  strings.TrimSpace(coerceString(m["unit"])),
					Route: strings.TrimSpace(coerceString(m["route"])),
					Time:  strings.TrimSpace(coerceString(m["time"])),
				}
				if it.Name == "" {
					continue
				}
				r.Items = append(r.Items, it)
			}
		}
	}

	if !s.HasRequired(r) {
		return Record{}, false
	}
	return r, true
}

// Encode разворачивает запись обратно в плоский JSON-объект: id, timestamp
// и известные поля на верхнем уровне, вложенный список — массивом.
func (s Schema) Encode(r Record) map[string]any {
	out := make(map[string]any, len(r.Fields)+3)
	if r.ID != "" {
		out["id"] = r.ID
	}
	out["timestamp"] = r.Timestamp
	for _, f := range s.KnownFields() {
		out[f] = r.Fields[f]
	}
	if s.ItemsField != "" && len(r.Items) > 0 {
		items := make([]any, 0, len(r.Items))
		for _, it := range r.Items {
			items = append(items, map[string]any{
				"name":  it.Name,
				"dose":  it.Dose,
				"unit":  it.Unit,
				"route": it.Route,
				"time":  it.Time,
			})
		}
		out[s.ItemsField] = items
	}
	return out
}

// coerceString приводит JSON-скаляр к строке; всё нестроковое и
// непредставимое даёт пустую строку, а не ошибку.
func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

package entry

import (
	"sort"
	"strings"
)

// Record — одна проверенная запись трекера: доза, заметка в дневнике,
// ресурс и т.п. Все скалярные поля хранятся строками, как вводил их
// пользователь; вложенный список медикаментов живёт в Items.
type Record struct {
	// ID — стабильный непрозрачный идентификатор. Выдаётся при создании
	// (и при загрузке старых записей без id); операции сессии ссылаются
	// на запись только по нему, никогда по позиции в списке.
	ID string

	// Timestamp в формате timeparse.Canonical ("2006-01-02 15:04").
	// Пустая строка означает, что метка на диске была нечитаемой.
	Timestamp string

	// Fields — известные схеме скалярные поля (имя поля -> значение).
	Fields map[string]string

	// Items — вложенные под-записи (строки medications у HRT-дневника).
	Items []Item
}

// Item — одна под-запись вложенного списка.
type Item struct {
	Name  string `json:"name"`
	Dose  string `json:"dose"`
	Unit  string `json:"unit"`
	Route string `json:"route"`
	Time  string `json:"time"`
}

// Field возвращает значение скалярного поля или пустую строку.
func (r Record) Field(name string) string {
	return r.Fields[name]
}

// Clone делает глубокую копию записи.
func (r Record) Clone() Record {
	out := r
	out.Fields = make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		out.Fields[k] = v
	}
	if r.Items != nil {
		out.Items = make([]Item, len(r.Items))
		copy(out.Items, r.Items)
	}
	return out
}

// SearchBlob склеивает все строковые поля записи (включая развёрнутые
// под-записи) в одну строку в нижнем регистре для подстрочного поиска.
func (r Record) SearchBlob() string {
	parts := make([]string, 0, len(r.Fields)+len(r.Items)*5+1)
	parts = append(parts, r.Timestamp)

	// Стабильный порядок полей, чтобы blob был детерминированным.
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, r.Fields[k])
	}
	for _, it := range r.Items {
		parts = append(parts, it.Name, it.Dose, it.Unit, it.Route, it.Time)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// HasRequired сообщает, заполнено ли хотя бы одно обязательное поле схемы.
// Для схем со вложенным списком именованная под-запись тоже считается.
func (s Schema) HasRequired(r Record) bool {
	for _, f := range s.Required {
		if strings.TrimSpace(r.Fields[f]) != "" {
			return true
		}
	}
	if s.ItemsField != "" {
		for _, it := range r.Items {
			if strings.TrimSpace(it.Name) != "" {
				return true
			}
		}
	}
	return false
}

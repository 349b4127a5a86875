// Package timeparse разбирает дату и время записи по упорядоченному списку
// форматов: сначала предпочтительные форматы из настроек, затем фиксированные
// запасные. Первый удачный разбор выигрывает; наружу никогда не уходит panic
// или ошибка парсинга — только признак успеха.
package timeparse

import (
	"strings"
	"time"
)

// Canonical — формат, в котором timestamp хранится на диске.
// Строковое сравнение таких меток совпадает с хронологическим порядком.
const (
	Canonical     = "2006-01-02 15:04"
	CanonicalDate = "2006-01-02"
	CanonicalTime = "15:04"
)

// Запасные форматы в фиксированном порядке приоритета.
var (
	dateFallbacks = []string{CanonicalDate, "01/02/2006", "02/01/2006"}
	timeFallbacks = []string{CanonicalTime, "3:04 PM"}
)

// Timestamp разбирает пару "дата" + "время". prefDate/prefTime — форматы из
// настроек пользователя, они пробуются первыми. Если ни одна пара форматов не
// подошла, возвращается ok=false.
func Timestamp(dateText, timeText, prefDate, prefTime string) (time.Time, bool) {
	dateText = strings.TrimSpace(dateText)
	timeText = strings.TrimSpace(timeText)

	for _, df := range candidates(prefDate, dateFallbacks) {
		for _, tf := range candidates(prefTime, timeFallbacks) {
			t, err := time.ParseInLocation(df+" "+tf, dateText+" "+timeText, time.Local)
			if err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// Date разбирает строку с одной датой (границы диапазона фильтра).
func Date(text, prefDate string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	for _, df := range candidates(prefDate, dateFallbacks) {
		t, err := time.ParseInLocation(df, text, time.Local)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// EntryDate выделяет дату из сохранённого timestamp'а записи.
// Берётся только часть до пробела; записи со сломанной меткой дают ok=false.
func EntryDate(ts string) (time.Time, bool) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}, false
	}
	datePart, _, _ := strings.Cut(ts, " ")
	t, err := time.ParseInLocation(CanonicalDate, datePart, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Normalize приводит сохранённый timestamp к каноническому виду, если он
// разбирается хотя бы одним известным форматом. Благодаря этому строковое
// сравнение и датные фильтры работают для любой читаемой метки, а не только
// для канонической. Метка без времени остаётся датой. ok=false — метка
// нечитаемая.
func Normalize(ts string) (string, bool) {
	datePart, timePart, found := strings.Cut(strings.TrimSpace(ts), " ")
	if !found {
		d, ok := Date(datePart, "")
		if !ok {
			return "", false
		}
		return d.Format(CanonicalDate), true
	}
	t, ok := Timestamp(datePart, timePart, "", "")
	if !ok {
		return "", false
	}
	return t.Format(Canonical), true
}

// Valid сообщает, разбирается ли timestamp хотя бы одним известным форматом.
func Valid(ts string) bool {
	_, ok := Normalize(ts)
	return ok
}

// candidates строит список форматов без дубликатов, с предпочтительным первым.
func candidates(pref string, fallbacks []string) []string {
	if pref == "" {
		return fallbacks
	}
	out := make([]string, 0, len(fallbacks)+1)
	out = append(out, pref)
	for _, f := range fallbacks {
		if f != pref {
			out = append(out, f)
		}
	}
	return out
}

package entry

import "time"

// Filter — комбинация подстрочного поиска, диапазона дат и категории,
// которой сужается выборка записей. Нулевой фильтр пропускает всё.
type Filter struct {
	// Text — регистронезависимая подстрока по склейке всех полей.
	Text string

	// From/To — включительные границы по дате записи (нулевое время —
	// границы нет). Сравнивается только датная часть timestamp'а.
	From time.Time
	To   time.Time

	// Category — точное совпадение по TypeField схемы.
	Category string

	// SortField — необязательный вторичный ключ сортировки при равных
	// timestamp'ах.
	SortField string
}

// IsZero сообщает, что фильтр ничего не отсекает.
func (f Filter) IsZero() bool {
	return f.Text == "" && f.From.IsZero() && f.To.IsZero() && f.Category == ""
}

// HasDateRange сообщает, активен ли фильтр по датам. Пока он активен,
// записи с нечитаемым timestamp'ом исключаются из выборки.
func (f Filter) HasDateRange() bool {
	return !f.From.IsZero() || !f.To.IsZero()
}

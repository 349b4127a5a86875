package clock

import "time"

// Clock отдаёт текущее локальное время. Хранилище и сессии никогда не
// обращаются к time.Now напрямую, чтобы тесты могли зафиксировать "сейчас".
type Clock interface {
	Now() time.Time
}

// System — системные часы.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed — часы, остановленные на заданном моменте (для тестов).
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

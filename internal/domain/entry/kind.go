package entry

import "fmt"

// Kind — вид трекера, которому принадлежит запись.
type Kind string

const (
	KindHRT        Kind = "hrt"
	KindMedication Kind = "medication"
	KindJournal    Kind = "journal"
	KindCycle      Kind = "cycle"
	KindResource   Kind = "resource"
)

// Kinds перечисляет все поддерживаемые виды в стабильном порядке.
func Kinds() []Kind {
	return []Kind{KindHRT, KindMedication, KindJournal, KindCycle, KindResource}
}

// ParseKind разбирает вид трекера из пользовательского ввода.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// Validate проверяет, что вид известен.
func (k Kind) Validate() error {
	switch k {
	case KindHRT, KindMedication, KindJournal, KindCycle, KindResource:
		return nil
	}
	return fmt.Errorf("unknown tracker kind: %q", k)
}

// String возвращает строковое представление вида.
func (k Kind) String() string {
	return string(k)
}

// DisplayName возвращает человекочитаемое название вида.
func (k Kind) DisplayName() string {
	switch k {
	case KindHRT:
		return "Дневник ГЗТ"
	case KindMedication:
		return "Журнал медикаментов"
	case KindJournal:
		return "Личный дневник"
	case KindCycle:
		return "Трекер цикла"
	case KindResource:
		return "Ресурсы"
	default:
		return "Неизвестный трекер"
	}
}

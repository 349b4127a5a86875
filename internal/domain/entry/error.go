package entry

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound — операция сослалась на запись, которой уже нет.
	ErrNotFound = errors.New("entry not found")
)

// ValidationKind — класс ошибки проверки пользовательского ввода.
type ValidationKind string

const (
	MissingRequiredField ValidationKind = "missing_required_field"
	BadTimestamp         ValidationKind = "bad_timestamp"
)

// ValidationError возвращается, когда из полей формы нельзя собрать
// корректную запись. Показывается на форме; в хранилище не попадает.
type ValidationError struct {
	Kind  ValidationKind
	Field string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingRequiredField:
		if e.Field != "" {
			return fmt.Sprintf("required field %q is empty", e.Field)
		}
		return "no required field is filled in"
	case BadTimestamp:
		return "date/time could not be parsed by any known format"
	default:
		return string(e.Kind)
	}
}

// AsValidation достаёт ValidationError из цепочки ошибок.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

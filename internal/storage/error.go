package storage

import (
	"errors"
	"fmt"
)

// WriteError — сохранение не состоялось (диск, права). Прежний файл при
// этом не тронут: подмена происходит только после полной записи нового
// содержимого. Ошибка восстановимая, её показывают пользователю.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// AsWrite достаёт WriteError из цепочки ошибок.
func AsWrite(err error) (*WriteError, bool) {
	var we *WriteError
	if errors.As(err, &we) {
		return we, true
	}
	return nil, false
}

package tracker

import "welltrack/internal/domain/entry"

// FormPhase — состояние формы ввода: Idle -> Editing -> Submitting ->
// (Idle при успехе | Editing с ошибкой при провале проверки).
type FormPhase int

const (
	PhaseIdle FormPhase = iota
	PhaseEditing
	PhaseSubmitting
)

func (p FormPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// form — состояние формы внутри сессии. editingID пуст для новой записи.
type form struct {
	phase     FormPhase
	editingID string
	err       error
}

// Phase возвращает текущее состояние формы.
func (s *Session) Phase() FormPhase {
	return s.form.phase
}

// FormError возвращает ошибку последней отправки (nil, если её не было).
func (s *Session) FormError() error {
	return s.form.err
}

// EditingID возвращает id редактируемой записи ("" — новая запись).
func (s *Session) EditingID() string {
	return s.form.editingID
}

// BeginNew открывает форму для новой пустой записи.
func (s *Session) BeginNew() {
	s.form = form{phase: PhaseEditing}
}

// BeginEdit открывает форму с полями существующей записи и возвращает её,
// чтобы интерфейс заполнил поля.
func (s *Session) BeginEdit(id string) (entry.Record, error) {
	r, ok := s.Get(id)
	if !ok {
		return entry.Record{}, entry.ErrNotFound
	}
	s.form = form{phase: PhaseEditing, editingID: id}
	return r, nil
}

// Submit прогоняет форму через проверку и добавляет либо обновляет
// запись. Ошибка проверки возвращает форму в Editing с ошибкой для
// показа; успех очищает форму и возвращает её в Idle.
func (s *Session) Submit(in FormInput) (entry.Record, error) {
	if s.form.phase != PhaseEditing {
		s.BeginNew()
	}
	s.form.phase = PhaseSubmitting

	var (
		r   entry.Record
		err error
	)
	if s.form.editingID == "" {
		r, err = s.BuildRecord(in)
		if err == nil {
			r, err = s.Add(r)
		}
	} else {
		r, err = s.Update(s.form.editingID, in)
	}

	if _, isValidation := entry.AsValidation(err); isValidation {
		s.form.phase = PhaseEditing
		s.form.err = err
		return entry.Record{}, err
	}

	// Успех — или ошибка записи на диск: форма в обоих случаях закрыта,
	// сбой сохранения показывается отдельно от формы.
	s.form = form{phase: PhaseIdle}
	return r, err
}

// Cancel закрывает форму без сохранения.
func (s *Session) Cancel() {
	s.form = form{phase: PhaseIdle}
}

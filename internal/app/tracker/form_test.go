package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"welltrack/internal/domain/entry"
)

func TestFormNewRecordFlow(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)
	assert.Equal(t, PhaseIdle, s.Phase())

	s.BeginNew()
	assert.Equal(t, PhaseEditing, s.Phase())
	assert.Empty(t, s.EditingID())

	r, err := s.Submit(medInput("Estradiol", ""))
	require.NoError(t, err)
	assert.Equal(t, PhaseIdle, s.Phase(), "успех очищает форму")
	assert.Equal(t, 1, s.Len())
	assert.NotEmpty(t, r.ID)
}

func TestFormValidationErrorReturnsToEditing(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	s.BeginNew()
	_, err := s.Submit(medInput("", ""))
	require.Error(t, err)

	assert.Equal(t, PhaseEditing, s.Phase(), "ошибка проверки оставляет форму открытой")
	ve, ok := entry.AsValidation(s.FormError())
	require.True(t, ok)
	assert.Equal(t, entry.MissingRequiredField, ve.Kind)
	assert.Equal(t, 0, s.Len(), "непрошедшая проверку запись не сохраняется")

	// Повторная отправка с исправленными полями проходит.
	_, err = s.Submit(medInput("Estradiol", ""))
	require.NoError(t, err)
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Nil(t, s.FormError())
}

func TestFormEditFlow(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	r, _ := s.BuildRecord(medInput("Estradiol", ""))
	_, err := s.Add(r)
	require.NoError(t, err)

	loaded, err := s.BeginEdit(r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, loaded.ID)
	assert.Equal(t, PhaseEditing, s.Phase())
	assert.Equal(t, r.ID, s.EditingID())

	got, err := s.Submit(medInput("Progesterone", ""))
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, "Progesterone", got.Field("name"))
	assert.Equal(t, 1, s.Len())
}

func TestFormBeginEditMissingRecord(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	_, err := s.BeginEdit("no-such-id")
	assert.ErrorIs(t, err, entry.ErrNotFound)
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestFormCancel(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	s.BeginNew()
	s.Cancel()
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Equal(t, 0, s.Len())
}

package tracker

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"welltrack/internal/domain/entry"
	"welltrack/internal/settings"
	"welltrack/internal/storage"
	"welltrack/internal/utils/clock"
)

var testNow = time.Date(2025, 1, 10, 14, 30, 0, 0, time.Local)

func newTestSession(t *testing.T, kind entry.Kind) *Session {
	t.Helper()
	schema, err := entry.SchemaFor(kind)
	require.NoError(t, err)

	store := storage.New(filepath.Join(t.TempDir(), schema.FileName), schema)
	prefs := func() settings.Settings { return settings.Defaults() }
	return NewSession(schema, store, prefs, clock.Fixed{T: testNow}, slog.Default())
}

func medInput(name, notes string) FormInput {
	return FormInput{Fields: map[string]string{"name": name, "notes": notes}}
}

func TestBuildRecordDefaultsTimestampToNow(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	r, err := s.BuildRecord(medInput("Estradiol", ""))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10 14:30", r.Timestamp)
	assert.NotEmpty(t, r.ID)
}

func TestBuildRecordParsesExplicitDateTime(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	in := medInput("Estradiol", "")
	in.Date = "01/05/2025"
	in.Time = "8:00 PM"
	r, err := s.BuildRecord(in)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-05 20:00", r.Timestamp)
}

func TestBuildRecordBadTimestamp(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	in := medInput("Estradiol", "")
	in.Date = "позавчера"
	_, err := s.BuildRecord(in)
	ve, ok := entry.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, entry.BadTimestamp, ve.Kind)
}

func TestBuildRecordRequiredFieldGate(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	_, err := s.BuildRecord(medInput("   ", "только заметки"))
	ve, ok := entry.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, entry.MissingRequiredField, ve.Kind)
	assert.Equal(t, "name", ve.Field)
}

func TestBuildRecordDerivesPrimaryFromItems(t *testing.T) {
	s := newTestSession(t, entry.KindHRT)

	r, err := s.BuildRecord(FormInput{
		Fields: map[string]string{},
		Items: []entry.Item{
			{Name: "Estradiol", Dose: "2", Unit: "mg"},
			{Name: "  "},
			{Name: "Progesterone", Dose: "100", Unit: "mg"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Estradiol, Progesterone", r.Field("regimen"))
	assert.Len(t, r.Items, 2)
}

func TestAddPersistsAndReloads(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	r, err := s.BuildRecord(medInput("Estradiol", "2mg morning"))
	require.NoError(t, err)
	_, err = s.Add(r)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	s.Reload()
	require.Equal(t, 1, s.Len())
	got, ok := s.Get(r.ID)
	require.True(t, ok)
	assert.Equal(t, r, got)
}

func TestUpdate(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	r, err := s.BuildRecord(medInput("Estradiol", ""))
	require.NoError(t, err)
	_, err = s.Add(r)
	require.NoError(t, err)

	got, err := s.Update(r.ID, medInput("Progesterone", "evening"))
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID, "id переживает обновление")
	assert.Equal(t, "Progesterone", got.Field("name"))

	_, err = s.Update("no-such-id", medInput("X", ""))
	assert.ErrorIs(t, err, entry.ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	r, _ := s.BuildRecord(medInput("Estradiol", ""))
	_, err := s.Add(r)
	require.NoError(t, err)
	require.NoError(t, s.Select(r.ID))

	removed, err := s.Delete(r.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, s.Len())

	_, selected := s.Selected()
	assert.False(t, selected, "выбор сбрасывается вместе с удалением")

	removed, err = s.Delete(r.ID)
	require.NoError(t, err)
	assert.False(t, removed, "повторное удаление — мягкий no-op")
}

func TestDuplicate(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	in := medInput("Estradiol", "original")
	in.Date = "2024-12-01"
	in.Time = "08:00"
	r, err := s.BuildRecord(in)
	require.NoError(t, err)
	_, err = s.Add(r)
	require.NoError(t, err)

	dup, err := s.Duplicate(r.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.NotEqual(t, r.ID, dup.ID)
	assert.Equal(t, "2025-01-10 14:30", dup.Timestamp, "у клона текущее время")
	assert.Equal(t, r.Fields, dup.Fields)

	_, err = s.Duplicate("no-such-id")
	assert.ErrorIs(t, err, entry.ErrNotFound)
}

func TestQuickFilters(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	old := medInput("Old", "")
	old.Date = "2024-11-01"
	old.Time = "08:00"
	recent := medInput("Recent", "")
	recent.Date = "2025-01-08"
	recent.Time = "09:00"
	todayIn := medInput("Today", "")

	for _, in := range []FormInput{old, recent, todayIn} {
		r, err := s.BuildRecord(in)
		require.NoError(t, err)
		_, err = s.Add(r)
		require.NoError(t, err)
	}

	s.FilterToday()
	got := s.List()
	require.Len(t, got, 1)
	assert.Equal(t, "Today", got[0].Field("name"))

	s.ClearFilter()
	s.FilterLastDays(7)
	got = s.List()
	require.Len(t, got, 2)
	assert.Equal(t, "Today", got[0].Field("name"))
	assert.Equal(t, "Recent", got[1].Field("name"))
}

func TestSummarize(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	today, _ := s.BuildRecord(medInput("Today", ""))
	_, err := s.Add(today)
	require.NoError(t, err)

	oldIn := medInput("Old", "")
	oldIn.Date = "2024-11-01"
	old, _ := s.BuildRecord(oldIn)
	_, err = s.Add(old)
	require.NoError(t, err)

	sum := s.Summarize()
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Today)
	assert.Equal(t, entry.KindMedication, sum.Kind)
}

func TestExportCurrentView(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	r, _ := s.BuildRecord(medInput("Estradiol", "feeling tired"))
	_, err := s.Add(r)
	require.NoError(t, err)

	s.SetFilter(entry.Filter{Text: "happy"})
	path := filepath.Join(t.TempDir(), "export.json")
	n, err := s.Export(path)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "выгружается именно текущая выборка")

	s.ClearFilter()
	n, err = s.Export(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestImportLegacy(t *testing.T) {
	s := newTestSession(t, entry.KindMedication)

	logPath := filepath.Join(t.TempDir(), "medication_log.txt")
	line := "2025-01-01 08:00 | Pill | Morning | Estradiol 2mg | with food\n"
	require.NoError(t, os.WriteFile(logPath, []byte(line), 0o644))

	n, err := s.ImportLegacy(logPath)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, s.Len())

	s.Reload()
	assert.Equal(t, 1, s.Len(), "импорт сохраняется на диск")
}

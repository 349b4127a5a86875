package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"welltrack/internal/storage"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "settings.json"))
	assert.Equal(t, Defaults(), s.Load())
}

func TestLoadHealsInvalidKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	raw := map[string]any{
		"appearance":     "Neon",      // неизвестное значение
		"backup_on_save": "yes",       // не bool
		"note_font_size": 999,         // вне диапазона — прижимается
		"date_format":    "02/01/2006",
		"routes":         []any{"Oral", 42, ""},
		"units":          "mg",        // не список
	}
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got := NewStore(path).Load()
	def := Defaults()

	assert.Equal(t, def.Appearance, got.Appearance)
	assert.Equal(t, def.BackupOnSave, got.BackupOnSave)
	assert.Equal(t, 32, got.NoteFontSize)
	assert.Equal(t, "02/01/2006", got.DateFormat)
	assert.Equal(t, []string{"Oral"}, got.Routes)
	assert.Equal(t, def.Units, got.Units)
}

func TestLoadCorruptFileQuarantined(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("###"), 0o644))

	got := NewStore(path).Load()
	assert.Equal(t, Defaults(), got)
	assert.FileExists(t, path+storage.BackupSuffix)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s := NewStore(path)

	cfg := Defaults()
	cfg.BackupOnSave = true
	cfg.DefaultUnit = "mg"
	cfg.NoteFontSize = 16
	require.NoError(t, s.Save(cfg))

	assert.Equal(t, cfg, s.Load())
}

func TestApply(t *testing.T) {
	cfg := Defaults()

	require.NoError(t, cfg.Apply("backup_on_save", "true"))
	assert.True(t, cfg.BackupOnSave)

	require.NoError(t, cfg.Apply("note_font_size", "4"))
	assert.Equal(t, minFontSize, cfg.NoteFontSize)

	require.NoError(t, cfg.Apply("moods", "Calm, Tense"))
	assert.Equal(t, []string{"Calm", "Tense"}, cfg.Moods)

	assert.Error(t, cfg.Apply("appearance", "Neon"))
	assert.Error(t, cfg.Apply("backup_on_save", "да"))
	assert.Error(t, cfg.Apply("nonexistent", "1"))
}

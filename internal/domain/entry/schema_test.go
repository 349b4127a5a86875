package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFor(t *testing.T) {
	for _, k := range Kinds() {
		s, err := SchemaFor(k)
		require.NoError(t, err)
		assert.Equal(t, k, s.Kind)
		assert.NotEmpty(t, s.FileName)
		assert.NotEmpty(t, s.Required)
	}

	_, err := SchemaFor(Kind("sleep"))
	assert.Error(t, err)
}

func TestNormalizeDropsUnknownFields(t *testing.T) {
	s, err := SchemaFor(KindMedication)
	require.NoError(t, err)

	r, ok := s.Normalize(map[string]any{
		"timestamp": "2025-01-05 20:00",
		"name":      "Ibuprofen",
		"dose":      "200mg",
		"color":     "red",  // неизвестное поле
		"widget":    12345., // неизвестное поле
	})
	require.True(t, ok)
	assert.Equal(t, "Ibuprofen", r.Field("name"))
	assert.Equal(t, "200mg", r.Field("dose"))
	_, exists := r.Fields["color"]
	assert.False(t, exists)
}

func TestNormalizeRejectsWithoutRequired(t *testing.T) {
	s, err := SchemaFor(KindJournal)
	require.NoError(t, err)

	_, ok := s.Normalize(map[string]any{
		"timestamp": "2025-01-05 20:00",
		"title":     "empty day",
		// content отсутствует
	})
	assert.False(t, ok)
}

func TestNormalizeCanonicalizesTimestamp(t *testing.T) {
	s, err := SchemaFor(KindMedication)
	require.NoError(t, err)

	// Читаемая метка в стороннем формате приводится к каноническому виду,
	// чтобы строковая сортировка и датные фильтры работали и для неё.
	r, ok := s.Normalize(map[string]any{
		"timestamp": "01/05/2025 20:00",
		"name":      "Estradiol",
	})
	require.True(t, ok)
	assert.Equal(t, "2025-01-05 20:00", r.Timestamp)
}

func TestNormalizeClearsBadTimestamp(t *testing.T) {
	s, err := SchemaFor(KindMedication)
	require.NoError(t, err)

	r, ok := s.Normalize(map[string]any{
		"timestamp": "около полудня",
		"name":      "Estradiol",
	})
	require.True(t, ok)
	assert.Empty(t, r.Timestamp)
}

func TestNormalizeCoercesScalars(t *testing.T) {
	s, err := SchemaFor(KindMedication)
	require.NoError(t, err)

	r, ok := s.Normalize(map[string]any{
		"name": "Spironolactone",
		"dose": 100.0, // число вместо строки
	})
	require.True(t, ok)
	assert.Equal(t, "100", r.Field("dose"))
}

func TestNormalizeItems(t *testing.T) {
	s, err := SchemaFor(KindHRT)
	require.NoError(t, err)

	r, ok := s.Normalize(map[string]any{
		"timestamp": "2025-01-01 08:00",
		"regimen":   "",
		"medications": []any{
			map[string]any{"name": "Estradiol", "dose": "2", "unit": "mg", "route": "Oral"},
			map[string]any{"name": "", "dose": "1"}, // без имени — отбрасывается
			"not an object",
		},
	})
	require.True(t, ok, "именованная под-запись должна проходить за обязательное поле")
	require.Len(t, r.Items, 1)
	assert.Equal(t, "Estradiol", r.Items[0].Name)
	assert.Equal(t, "mg", r.Items[0].Unit)
}

func TestEncodeRoundTrip(t *testing.T) {
	s, err := SchemaFor(KindHRT)
	require.NoError(t, err)

	orig := Record{
		ID:        "abc-1",
		Timestamp: "2025-01-01 08:00",
		Fields: map[string]string{
			"regimen": "Estradiol", "route": "Oral", "dose": "2mg",
			"mood": "", "symptoms": "", "notes": "feeling tired",
		},
		Items: []Item{{Name: "Estradiol", Dose: "2", Unit: "mg", Route: "Oral", Time: "08:00"}},
	}

	back, ok := s.Normalize(orig.Clone().toRaw(s))
	require.True(t, ok)
	assert.Equal(t, orig, back)
}

// toRaw прогоняет Encode так, как это делает хранилище.
func (r Record) toRaw(s Schema) map[string]any {
	raw := s.Encode(r)
	// items у Encode уже []any с map[string]any внутри
	return raw
}

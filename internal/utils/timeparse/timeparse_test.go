package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		dateText string
		timeText string
		prefDate string
		prefTime string
		want     string // Canonical
		ok       bool
	}{
		{
			name:     "iso date and 24h time",
			dateText: "2025-01-05",
			timeText: "20:00",
			want:     "2025-01-05 20:00",
			ok:       true,
		},
		{
			name:     "us date",
			dateText: "01/05/2025",
			timeText: "08:30",
			want:     "2025-01-05 08:30",
			ok:       true,
		},
		{
			name:     "twelve hour clock",
			dateText: "2025-01-05",
			timeText: "8:30 PM",
			want:     "2025-01-05 20:30",
			ok:       true,
		},
		{
			name:     "preferred european format wins over us",
			dateText: "05/01/2025",
			timeText: "08:00",
			prefDate: "02/01/2006",
			want:     "2025-01-05 08:00",
			ok:       true,
		},
		{
			name:     "garbage date",
			dateText: "yesterday",
			timeText: "08:00",
			ok:       false,
		},
		{
			name:     "empty input",
			dateText: "",
			timeText: "",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Timestamp(tt.dateText, tt.timeText, tt.prefDate, tt.prefTime)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got.Format(Canonical))
			}
		})
	}
}

func TestTimestampAmbiguousPrefersUSFallback(t *testing.T) {
	// Без предпочтительного формата "05/01/2025" трактуется как MM/DD
	// (порядок запасных форматов фиксирован).
	got, ok := Timestamp("05/01/2025", "10:00", "", "")
	require.True(t, ok)
	assert.Equal(t, time.May, got.Month())
}

func TestDate(t *testing.T) {
	got, ok := Date("2025-01-03", "")
	require.True(t, ok)
	assert.Equal(t, "2025-01-03", got.Format(CanonicalDate))

	_, ok = Date("", "")
	assert.False(t, ok)

	_, ok = Date("not a date", "")
	assert.False(t, ok)
}

func TestEntryDate(t *testing.T) {
	got, ok := EntryDate("2025-01-01 08:00")
	require.True(t, ok)
	assert.Equal(t, "2025-01-01", got.Format(CanonicalDate))

	_, ok = EntryDate("")
	assert.False(t, ok)

	_, ok = EntryDate("08:00 somewhen")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		ts   string
		want string
		ok   bool
	}{
		{name: "canonical passes through", ts: "2025-01-05 20:00", want: "2025-01-05 20:00", ok: true},
		{name: "us format canonicalized", ts: "01/05/2025 20:00", want: "2025-01-05 20:00", ok: true},
		{name: "twelve hour clock canonicalized", ts: "2025-01-05 8:00 PM", want: "2025-01-05 20:00", ok: true},
		{name: "date only stays a date", ts: "01/05/2025", want: "2025-01-05", ok: true},
		{name: "garbage rejected", ts: "около полудня", ok: false},
		{name: "empty rejected", ts: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.ts)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("2025-01-01 08:00"))
	assert.True(t, Valid("2025-01-01"))
	assert.False(t, Valid("corrupted"))
	assert.False(t, Valid(""))
}

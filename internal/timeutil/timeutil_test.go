package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		input  interface{}
		want   time.Time
		wantOK bool
	}{
		{"native time", now, now, true},
		{"pointer to time", &now, now, true},
		{"nil pointer", (*time.Time)(nil), time.Time{}, false},
		{"epoch seconds struct", EpochSeconds{Seconds: now.Unix()}, now, true},
		{"epoch seconds map", map[string]interface{}{"_seconds": float64(now.Unix())}, now, true},
		{"seconds map without underscore", map[string]interface{}{"seconds": int64(now.Unix())}, now, true},
		{"raw epoch int64", now.Unix(), now, true},
		{"rfc3339 string", "2025-03-10T14:30:00Z", now, true},
		{"date-only string", "2025-03-10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"nil", nil, time.Time{}, false},
		{"garbage string", "not-a-date", time.Time{}, false},
		{"unsupported type", struct{}{}, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	// A booking instant must parse back identically regardless of which
	// representation the store used to persist it.
	instant := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	representations := []interface{}{
		instant,
		&instant,
		EpochSeconds{Seconds: instant.Unix()},
		map[string]interface{}{"_seconds": float64(instant.Unix())},
		instant.Format(time.RFC3339),
	}

	for _, rep := range representations {
		got, ok := Normalize(rep)
		require.True(t, ok)
		assert.True(t, got.Equal(instant), "representation %T produced %v", rep, got)
	}
}

func TestCombineDateAndTime(t *testing.T) {
	date := time.Date(2025, 3, 10, 8, 15, 45, 0, time.UTC)

	combined := CombineDateAndTime(date, "14:30")
	assert.Equal(t, 14, combined.Hour())
	assert.Equal(t, 30, combined.Minute())
	assert.Equal(t, 0, combined.Second())
	assert.Equal(t, date.Day(), combined.Day())

	withSeconds := CombineDateAndTime(date, "09:05:30")
	assert.Equal(t, 9, withSeconds.Hour())
	assert.Equal(t, 5, withSeconds.Minute())
	assert.Equal(t, 30, withSeconds.Second())
}

func TestCombineDateAndTimeInvalidClock(t *testing.T) {
	date := time.Date(2025, 3, 10, 8, 15, 45, 0, time.UTC)

	// Invalid clock strings leave the date untouched.
	for _, clock := range []string{"", "25:00", "12:75", "noon", "12", "12:00:99"} {
		assert.Equal(t, date, CombineDateAndTime(date, clock), "clock %q", clock)
	}
}

func TestClockMinutes(t *testing.T) {
	m, ok := ClockMinutes("09:30")
	require.True(t, ok)
	assert.Equal(t, 570, m)

	m, ok = ClockMinutes("17:00:00")
	require.True(t, ok)
	assert.Equal(t, 1020, m)

	_, ok = ClockMinutes("bad")
	assert.False(t, ok)
}

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "09:05", MinutesToClock(545))
	assert.Equal(t, "00:00", MinutesToClock(0))
	assert.Equal(t, "17:00", MinutesToClock(1020))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)
	b := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2025, 3, 10, 18, 45, 12, 99, time.UTC)
	sod := StartOfDay(ts)

	assert.Equal(t, 0, sod.Hour())
	assert.Equal(t, 0, sod.Minute())
	assert.True(t, SameDay(ts, sod))
}

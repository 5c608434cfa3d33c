package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EpochSeconds is the shape some stores use when they serialise a timestamp
// as a document field instead of a native time value.
type EpochSeconds struct {
	Seconds     int64 `json:"_seconds"`
	Nanoseconds int64 `json:"_nanoseconds"`
}

// Normalize converts the timestamp representations seen in stored documents
// into a single time.Time. Supported inputs: time.Time and *time.Time,
// EpochSeconds payloads (struct, pointer or decoded JSON map), raw epoch
// seconds, and ISO-8601 / RFC3339 strings. It never returns an error;
// unparseable values report ok=false.
func Normalize(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case EpochSeconds:
		return time.Unix(v.Seconds, v.Nanoseconds), true
	case *EpochSeconds:
		if v == nil {
			return time.Time{}, false
		}
		return time.Unix(v.Seconds, v.Nanoseconds), true
	case int64:
		return time.Unix(v, 0), true
	case float64:
		return time.Unix(int64(v), 0), true
	case map[string]interface{}:
		return normalizeMap(v)
	case string:
		return parseTimeString(v)
	default:
		return time.Time{}, false
	}
}

func normalizeMap(m map[string]interface{}) (time.Time, bool) {
	for _, key := range []string{"_seconds", "seconds"} {
		if raw, ok := m[key]; ok {
			secs, ok := toInt64(raw)
			if !ok {
				return time.Time{}, false
			}
			return time.Unix(secs, 0), true
		}
	}
	return time.Time{}, false
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

func parseTimeString(s string) (time.Time, bool) {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CombineDateAndTime puts a wall-clock time ("HH:MM" or "HH:MM:SS") onto the
// calendar day of date, in date's location. An invalid clock string leaves
// the date's original time component unchanged rather than failing; callers
// rely on that when stored time strings are malformed.
func CombineDateAndTime(date time.Time, clock string) time.Time {
	hour, minute, second, ok := parseClock(clock)
	if !ok {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, date.Location())
}

func parseClock(clock string) (hour, minute, second int, ok bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, 0, false
	}
	if len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
		if err != nil || second < 0 || second > 59 {
			return 0, 0, 0, false
		}
	}
	return hour, minute, second, true
}

// ClockMinutes converts "HH:MM" or "HH:MM:SS" to minutes since midnight.
// Seconds are truncated; slot arithmetic works at minute granularity.
func ClockMinutes(clock string) (int, bool) {
	hour, minute, _, ok := parseClock(clock)
	if !ok {
		return 0, false
	}
	return hour*60 + minute, true
}

// MinutesToClock renders minutes since midnight as a zero-padded "HH:MM"
// string. Zero padding keeps lexicographic slot ordering equal to
// chronological ordering.
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SameDay reports whether two instants fall on the same calendar day.
// Blocked times match a query date by day equality, not instant range.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DateKey returns the calendar-day key used for day matching and map lookups.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay strips the time component.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

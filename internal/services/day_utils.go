package services

import (
	"strings"
	"time"
)

// DateAtLocation truncates a moment to midnight of its calendar day in
// the given location. Streak and remaining-day math only ever compares
// values produced here.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the [start, next day) bounds for store queries.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// ParseDay normalizes a date-like string to a calendar day. Unparseable
// input reports ok=false rather than a zero date, so callers can treat
// "no value" explicitly.
func ParseDay(raw string, location *time.Location) (time.Time, bool) {
	if location == nil {
		location = time.UTC
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}

	if parsed, err := time.ParseInLocation("2006-01-02", trimmed, location); err == nil {
		return DateAtLocation(parsed, location), true
	}
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return DateAtLocation(parsed, location), true
	}
	return time.Time{}, false
}

// FormatDay renders a normalized day back to the wire format.
func FormatDay(day time.Time) string {
	return day.Format("2006-01-02")
}

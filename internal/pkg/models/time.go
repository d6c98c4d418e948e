package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time as RFC3339 with nanoseconds, so stored
// timestamps round-trip without losing sub-second precision
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseTime parses a string produced by FormatTime back to time.Time
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

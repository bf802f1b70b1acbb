package validation

import (
	"fmt"
	"time"
)

// ParseFlexibleDate tries to parse a date string using multiple common formats
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	formats := []string{
		time.RFC3339,          // ISO 8601 with time and offset
		"2006-01-02T15:04:05", // ISO 8601 without offset
		"2006-01-02 15:04:05", // SQL date-time
		time.DateOnly,         // YYYY-MM-DD
		"01/02/2006",          // MM/DD/YYYY
		"02/01/2006",          // DD/MM/YYYY (European)
		"2006/01/02",          // YYYY/MM/DD
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatTimePtr renders a nullable time as an ISO-8601 string with offset.
// A nil time stays nil, never an empty string.
func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// FormatTime renders a time as an ISO-8601 string with offset.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

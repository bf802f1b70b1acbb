package validation_test

import (
	"testing"
	"time"

	"github.com/taskflow/taskflow/sdk/validation"
)

func TestParseFlexibleDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-02T17:00:00Z", time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)},
		{"2026-03-02T17:00:00", time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)},
		{"2026-03-02 17:00:00", time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)},
		{"2026-03-02", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{"2026/03/02", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := validation.ParseFlexibleDate(tc.in)
		if err != nil {
			t.Errorf("ParseFlexibleDate(%q) failed: %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseFlexibleDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := validation.ParseFlexibleDate("next tuesday"); err == nil {
		t.Error("Expected an error for an unparseable date")
	}
}

func TestFormatTimePtr(t *testing.T) {
	if got := validation.FormatTimePtr(nil); got != nil {
		t.Errorf("Expected nil for a nil time, got %q", *got)
	}

	ts := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
	got := validation.FormatTimePtr(&ts)
	if got == nil || *got != "2026-03-02T17:00:00Z" {
		t.Errorf("Unexpected formatted time: %v", got)
	}
}

package services

import (
	"testing"
	"time"
)

func TestClassifyDuration(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{200, "Long Term"},
		{181, "Long Term"},
		{180, "Medium Term"},
		{95, "Medium Term"},
		{91, "Medium Term"},
		{90, "Short Term"},
		{10, "Short Term"},
		{0, "Short Term"},
	}
	for _, tc := range cases {
		if got := ClassifyDuration(tc.days); got != tc.want {
			t.Errorf("ClassifyDuration(%d) = %q, want %q", tc.days, got, tc.want)
		}
	}
}

func TestFormatContactTimestamp(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 14, 5, 0, 0, time.UTC)
	if got := FormatContactTimestamp(ts); got != "March 07, 2025 02:05 PM" {
		t.Errorf("unexpected formatted timestamp: %q", got)
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		created time.Time
		want    int
	}{
		// earlier the same day counts as 0 days ago
		{time.Date(2025, time.June, 10, 1, 0, 0, 0, time.UTC), 0},
		// late yesterday is still 1 day ago
		{time.Date(2025, time.June, 9, 23, 30, 0, 0, time.UTC), 1},
		{time.Date(2025, time.June, 3, 12, 0, 0, 0, time.UTC), 7},
	}
	for _, tc := range cases {
		if got := DaysSince(tc.created, now); got != tc.want {
			t.Errorf("DaysSince(%v) = %d, want %d", tc.created, got, tc.want)
		}
	}
}

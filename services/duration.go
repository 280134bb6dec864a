package services

import "time"

// Duration bucket boundaries in whole days. A project with no end date is
// measured against the current date, so ongoing projects keep growing.
const (
	longTermDays   = 180
	mediumTermDays = 90
)

// ClassifyDuration maps a day count to its duration bucket.
func ClassifyDuration(days int) string {
	switch {
	case days > longTermDays:
		return "Long Term"
	case days > mediumTermDays:
		return "Medium Term"
	default:
		return "Short Term"
	}
}

// FormatContactTimestamp renders a creation timestamp the way the frontend
// displays it, e.g. "January 02, 2006 03:04 PM".
func FormatContactTimestamp(t time.Time) string {
	return t.Format("January 02, 2006 03:04 PM")
}

// DaysSince counts whole calendar days between the date part of t and now.
// A message from earlier today is 0 days ago regardless of the hour.
func DaysSince(t, now time.Time) int {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	start := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

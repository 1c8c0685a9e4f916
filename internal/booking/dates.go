package booking

import "time"

// Candidate preferred dates are restricted to a fixed global window, and
// Sundays are never selectable regardless of the window.
var (
	windowStart = time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// DateWindow returns the inclusive [from, to] range of candidate dates.
func DateWindow() (from, to time.Time) {
	return windowStart, windowEnd
}

// DefaultPreferredDate is the fallback preferred date a fresh form starts
// with: the first day of the window.
func DefaultPreferredDate() time.Time {
	return windowStart
}

// DateSelectable reports whether d can be chosen through the date control:
// inside the window and not a Sunday. Time-of-day and zone are ignored.
func DateSelectable(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(windowStart) || day.After(windowEnd) {
		return false
	}
	return day.Weekday() != time.Sunday
}

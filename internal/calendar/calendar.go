// Package calendar computes calendar-day windows for daily posts and the
// trailing memories range. All functions take the reference instant as an
// explicit parameter so date-boundary behavior is deterministic in tests.
package calendar

import "time"

// MemoryWindowDays is the length of the memories calendar, inclusive of today.
const MemoryWindowDays = 14

// DayWindow returns the half-open instant range [start, end) covering the
// calendar day of ref in ref's location.
func DayWindow(ref time.Time) (start, end time.Time) {
	y, m, d := ref.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	// AddDate performs calendar arithmetic, so month and year boundaries
	// roll over correctly.
	end = start.AddDate(0, 0, 1)
	return start, end
}

// TrailingWindow returns the half-open range covering the `days` calendar
// days ending on ref's day, inclusive. days must be >= 1.
func TrailingWindow(ref time.Time, days int) (start, end time.Time) {
	if days < 1 {
		days = 1
	}
	_, end = DayWindow(ref)
	start, _ = DayWindow(ref.AddDate(0, 0, -(days - 1)))
	return start, end
}

// EachDay enumerates the midnight instant of every calendar day from start's
// day through end's day inclusive, in ascending order.
func EachDay(start, end time.Time) []time.Time {
	first, _ := DayWindow(start)
	last, _ := DayWindow(end)

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// SameDay reports whether a and b fall on the same calendar day as observed
// in a's location.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

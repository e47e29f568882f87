package dateutil

import (
	"cmp"
	"time"
)

// GridSize is the number of cells in a month grid: 6 weeks of 7 days. A fixed
// cell count keeps the rendered month height uniform regardless of how many
// calendar weeks the month spans.
const GridSize = 42

// StartOfDay returns d truncated to midnight local time.
func StartOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// EndOfDay returns 23:59:59.999 of d's day.
func EndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999_000_000, d.Location())
}

// IsSameDay reports whether a and b fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// AddDays shifts d by n calendar days, carrying over month and year
// boundaries. The time of day is preserved.
func AddDays(d time.Time, n int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day()+n, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

// AddHours shifts d by n hours using calendar arithmetic.
func AddHours(d time.Time, n int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), d.Hour()+n, d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

// AddMinutes shifts d by n minutes using calendar arithmetic.
func AddMinutes(d time.Time, n int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute()+n, d.Second(), d.Nanosecond(), d.Location())
}

// Clamp limits v to the [lo, hi] interval.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(hi, v))
}

// MonthGrid returns the 42 consecutive days of the month grid anchored at the
// given date. The first cell is the Monday on or before the 1st of anchor's
// month; leading and trailing days of adjacent months fill the remainder.
// The grid is Monday-first; week views start on Sunday via StartOfWeek.
func MonthGrid(anchor time.Time) []time.Time {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	// remap so Monday = 0
	startWeekday := (int(first.Weekday()) + 6) % 7

	cells := make([]time.Time, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		cells = append(cells, time.Date(anchor.Year(), anchor.Month(), 1-startWeekday+i, 0, 0, 0, 0, anchor.Location()))
	}
	return cells
}

// StartOfWeek returns midnight of the Sunday on or before d.
func StartOfWeek(d time.Time) time.Time {
	return StartOfDay(AddDays(d, -int(d.Weekday())))
}

// WeekDays returns the 7 days of d's week, Sunday first.
func WeekDays(d time.Time) []time.Time {
	start := StartOfWeek(d)
	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, AddDays(start, i))
	}
	return days
}

package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	d := time.Date(2026, 3, 15, 17, 42, 13, 999, time.Local)
	got := StartOfDay(d)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), got)
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2026, 3, 15, 8, 0, 0, 0, time.Local)
	got := EndOfDay(d)
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 999_000_000, time.Local), got)
}

func TestIsSameDay(t *testing.T) {
	morning := time.Date(2026, 3, 15, 8, 0, 0, 0, time.Local)
	evening := time.Date(2026, 3, 15, 23, 30, 0, 0, time.Local)
	nextDay := time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)

	assert.True(t, IsSameDay(morning, morning))
	assert.True(t, IsSameDay(morning, evening))
	assert.False(t, IsSameDay(evening, nextDay))
}

func TestAddDays_CarriesOverBoundaries(t *testing.T) {
	testCases := []struct {
		name string
		from time.Time
		n    int
		want time.Time
	}{
		{
			name: "within month",
			from: time.Date(2026, 3, 15, 10, 30, 0, 0, time.Local),
			n:    3,
			want: time.Date(2026, 3, 18, 10, 30, 0, 0, time.Local),
		},
		{
			name: "into next month",
			from: time.Date(2026, 1, 31, 9, 0, 0, 0, time.Local),
			n:    1,
			want: time.Date(2026, 2, 1, 9, 0, 0, 0, time.Local),
		},
		{
			name: "into previous year",
			from: time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
			n:    -1,
			want: time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local),
		},
		{
			name: "leap day",
			from: time.Date(2028, 2, 28, 12, 0, 0, 0, time.Local),
			n:    1,
			want: time.Date(2028, 2, 29, 12, 0, 0, 0, time.Local),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AddDays(tc.from, tc.n))
		})
	}
}

func TestAddHoursAndMinutes(t *testing.T) {
	d := time.Date(2026, 3, 15, 23, 45, 0, 0, time.Local)

	assert.Equal(t, time.Date(2026, 3, 16, 1, 45, 0, 0, time.Local), AddHours(d, 2))
	assert.Equal(t, time.Date(2026, 3, 16, 0, 15, 0, 0, time.Local), AddMinutes(d, 30))
	assert.Equal(t, time.Date(2026, 3, 15, 23, 15, 0, 0, time.Local), AddMinutes(d, -30))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(3, 5, 10))
	assert.Equal(t, 10, Clamp(12, 5, 10))
	assert.Equal(t, 7, Clamp(7, 5, 10))
	assert.Equal(t, 1.5, Clamp(2.0, 0.0, 1.5))
}

func TestMonthGrid_ShapeForEveryStartingWeekday(t *testing.T) {
	// 2026 months alone cover all 7 weekdays as the 1st of the month.
	anchors := []time.Time{
		time.Date(2026, 1, 20, 0, 0, 0, 0, time.Local),  // Jan 1st = Thursday
		time.Date(2026, 2, 3, 0, 0, 0, 0, time.Local),   // Feb 1st = Sunday
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.Local),  // Mar 1st = Sunday
		time.Date(2026, 4, 15, 0, 0, 0, 0, time.Local),  // Apr 1st = Wednesday
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local),   // May 1st = Friday
		time.Date(2026, 6, 10, 0, 0, 0, 0, time.Local),  // Jun 1st = Monday
		time.Date(2026, 8, 8, 0, 0, 0, 0, time.Local),   // Aug 1st = Saturday
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),   // Sep 1st = Tuesday
		time.Date(2026, 12, 25, 0, 0, 0, 0, time.Local), // Dec 1st = Tuesday
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),  // leap February
	}

	for _, anchor := range anchors {
		t.Run(anchor.Format("2006-01"), func(t *testing.T) {
			cells := MonthGrid(anchor)
			require.Len(t, cells, GridSize)

			assert.Equal(t, time.Monday, cells[0].Weekday())

			firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.Local)
			assert.False(t, cells[0].After(firstOfMonth), "grid must start on or before the 1st")
			assert.True(t, firstOfMonth.Sub(cells[0]) < 7*24*time.Hour, "grid must start within a week of the 1st")

			for i := 1; i < len(cells); i++ {
				assert.True(t, IsSameDay(cells[i], AddDays(cells[i-1], 1)),
					"cells %d and %d are not consecutive: %v, %v", i-1, i, cells[i-1], cells[i])
			}

			// The whole month is covered.
			lastOfMonth := time.Date(anchor.Year(), anchor.Month()+1, 0, 0, 0, 0, 0, time.Local)
			assert.False(t, cells[len(cells)-1].Before(lastOfMonth))
		})
	}
}

func TestStartOfWeek_IsSundayFirst(t *testing.T) {
	// Tuesday 2026-09-01
	d := time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local)
	got := StartOfWeek(d)
	assert.Equal(t, time.Sunday, got.Weekday())
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local), got)

	// A Sunday maps onto itself.
	sunday := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	assert.Equal(t, StartOfDay(sunday), StartOfWeek(sunday))
}

func TestWeekDays(t *testing.T) {
	d := time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local)
	days := WeekDays(d)
	require.Len(t, days, 7)
	assert.Equal(t, time.Sunday, days[0].Weekday())
	assert.Equal(t, time.Saturday, days[6].Weekday())
	for i := 1; i < 7; i++ {
		assert.Equal(t, AddDays(days[i-1], 1), days[i])
	}
}

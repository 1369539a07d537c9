package maint

import (
	"time"

	"github.com/dori/homekeep/internal/model"
)

// NextDue computes the next due date for a recurrence starting at from.
// All math is at day granularity; the time of day of from is dropped.
//
// Weekly is from plus seven days and Yearly is from plus one year, both
// with Go's native date normalization. Monthly returns the next occurrence
// of anchorDay that is on or after from, clamping the anchor to the last
// valid day of the targeted month (anchor 30 in February yields Feb 28/29).
// RecurNone returns from unchanged.
func NextDue(from time.Time, r model.Recurrence, anchorDay int) time.Time {
	day := dateOf(from)

	switch r {
	case model.RecurWeekly:
		return day.AddDate(0, 0, 7)
	case model.RecurYearly:
		return day.AddDate(1, 0, 0)
	case model.RecurMonthly:
		clamped := clampDay(anchorDay, day.Year(), day.Month())
		if clamped >= day.Day() {
			return time.Date(day.Year(), day.Month(), clamped, 0, 0, 0, 0, day.Location())
		}
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()).AddDate(0, 1, 0)
		clamped = clampDay(anchorDay, first.Year(), first.Month())
		return time.Date(first.Year(), first.Month(), clamped, 0, 0, 0, 0, day.Location())
	}

	return day
}

// NextTrashPickup computes the next pickup date for a weekly trash day.
// When today is the trash day, the following week's date is returned.
func NextTrashPickup(today time.Time, trashDay time.Weekday) time.Time {
	day := dateOf(today)
	diff := (int(trashDay) - int(day.Weekday()) + 7) % 7
	if diff == 0 {
		diff = 7
	}
	return day.AddDate(0, 0, diff)
}

// clampDay limits a day-of-month to the last valid day of year/month
func clampDay(day int, year int, month time.Month) int {
	if day < 1 {
		return 1
	}
	last := daysIn(year, month)
	if day > last {
		return last
	}
	return day
}

// daysIn returns the number of days in year/month
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

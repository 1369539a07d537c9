package maint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dori/homekeep/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueWeekly(t *testing.T) {
	from := date(2025, time.March, 10)
	assert.Equal(t, date(2025, time.March, 17), NextDue(from, model.RecurWeekly, 0))

	// Time of day is dropped
	noon := time.Date(2025, time.December, 29, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, date(2026, time.January, 5), NextDue(noon, model.RecurWeekly, 0))
}

func TestNextDueYearly(t *testing.T) {
	assert.Equal(t, date(2026, time.June, 15), NextDue(date(2025, time.June, 15), model.RecurYearly, 0))

	// Native date-add behavior on leap day: Feb 29 + 1 year normalizes to Mar 1
	assert.Equal(t, date(2025, time.March, 1), NextDue(date(2024, time.February, 29), model.RecurYearly, 0))
}

func TestNextDueMonthly(t *testing.T) {
	// Anchor 30 in February clamps to the last day, which is still >= from
	assert.Equal(t, date(2025, time.February, 28), NextDue(date(2025, time.February, 15), model.RecurMonthly, 30))

	// Leap year February clamps to the 29th
	assert.Equal(t, date(2024, time.February, 29), NextDue(date(2024, time.February, 15), model.RecurMonthly, 30))

	// Anchor already passed this month advances to the next
	assert.Equal(t, date(2025, time.April, 5), NextDue(date(2025, time.March, 10), model.RecurMonthly, 5))

	// Anchor equal to from's day stays on from
	assert.Equal(t, date(2025, time.March, 10), NextDue(date(2025, time.March, 10), model.RecurMonthly, 10))

	// Advancing from January with anchor 31 clamps into February
	assert.Equal(t, date(2025, time.February, 28), NextDue(date(2025, time.February, 1), model.RecurMonthly, 31))
}

func TestNextDueNone(t *testing.T) {
	from := date(2025, time.March, 10)
	assert.Equal(t, from, NextDue(from, model.RecurNone, 28))
}

func TestNextTrashPickup(t *testing.T) {
	monday := date(2025, time.March, 10) // a Monday

	// Later this week
	assert.Equal(t, date(2025, time.March, 13), NextTrashPickup(monday, time.Thursday))

	// Same weekday rolls to next week
	assert.Equal(t, date(2025, time.March, 17), NextTrashPickup(monday, time.Monday))

	// Earlier weekday wraps around
	assert.Equal(t, date(2025, time.March, 16), NextTrashPickup(monday, time.Sunday))
}

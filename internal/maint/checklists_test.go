package maint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dori/homekeep/internal/model"
)

func TestSetDoneStampsToday(t *testing.T) {
	m := newTestManager(t)

	m.AddChecklistItem(model.SeasonSpring, "Check sump pump")
	m.SetDone(model.SeasonSpring, "Check sump pump", true)

	done := m.DoneOn(model.SeasonSpring, "check sump pump")
	require.NotNil(t, done, "done lookup is case-insensitive")
	assert.Equal(t, date(2025, time.March, 10), *done)

	m.SetDone(model.SeasonSpring, "Check sump pump", false)
	assert.Nil(t, m.DoneOn(model.SeasonSpring, "Check sump pump"))
}

func TestAutoRestartSweep(t *testing.T) {
	m := newTestManager(t)

	m.AddChecklistItem(model.SeasonSpring, "Fresh item")
	m.AddChecklistItem(model.SeasonSpring, "Stale item")
	m.done[model.SeasonSpring] = []model.DoneRecord{
		{Text: "Fresh item", CompletedOn: date(2025, time.February, 9)},  // 29 days ago
		{Text: "Stale item", CompletedOn: date(2025, time.February, 8)}, // 30 days ago
	}

	m.SweepExpiredDone()

	assert.NotNil(t, m.DoneOn(model.SeasonSpring, "Fresh item"), "29-day-old record is retained")
	assert.Nil(t, m.DoneOn(model.SeasonSpring, "Stale item"), "30-day-old record is purged")

	// The stale record is gone from the side table, not just hidden
	require.Len(t, m.done[model.SeasonSpring], 1)
	assert.Equal(t, "Fresh item", m.done[model.SeasonSpring][0].Text)
}

func TestSweepCountsCalendarDaysAcrossDSTChange(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Feb 18 to Mar 20 spans the spring-forward change: 30 calendar days
	// but only 719 hours
	clock := time.Date(2025, time.March, 20, 0, 0, 0, 0, ny)
	m := newTestManager(t, WithClock(func() time.Time { return clock }))

	m.AddChecklistItem(model.SeasonSpring, "Service irrigation timer")
	m.done[model.SeasonSpring] = []model.DoneRecord{
		{Text: "Service irrigation timer", CompletedOn: time.Date(2025, time.February, 18, 0, 0, 0, 0, ny)},
	}

	assert.Nil(t, m.DoneOn(model.SeasonSpring, "Service irrigation timer"))

	m.SweepExpiredDone()
	assert.Empty(t, m.done[model.SeasonSpring])
}

func TestExpiredRecordReadsAsNotDoneBeforeSweep(t *testing.T) {
	m := newTestManager(t)

	m.AddChecklistItem(model.SeasonWinter, "Check for ice dams")
	m.done[model.SeasonWinter] = []model.DoneRecord{
		{Text: "Check for ice dams", CompletedOn: date(2025, time.January, 1)},
	}

	assert.Nil(t, m.DoneOn(model.SeasonWinter, "Check for ice dams"))
}

func TestRenameCarriesDoneRecordForward(t *testing.T) {
	m := newTestManager(t)

	m.AddChecklistItem(model.SeasonSummer, "fertilize back lawn")
	m.SetDone(model.SeasonSummer, "fertilize back lawn", true)

	// Rename matches the old text case-insensitively
	m.RenameChecklistItem(model.SeasonSummer, "fertilize back lawn", "Fertilize entire lawn")

	assert.Contains(t, m.Checklist(model.SeasonSummer), "Fertilize entire lawn")
	assert.NotContains(t, m.Checklist(model.SeasonSummer), "fertilize back lawn")

	done := m.DoneOn(model.SeasonSummer, "Fertilize entire lawn")
	require.NotNil(t, done, "completion state survives the edit")
	assert.Equal(t, date(2025, time.March, 10), *done)
}

func TestRemoveItemDropsDoneRecord(t *testing.T) {
	m := newTestManager(t)

	m.AddChecklistItem(model.SeasonAutumn, "Rake leaves")
	m.SetDone(model.SeasonAutumn, "Rake leaves", true)

	m.RemoveChecklistItem(model.SeasonAutumn, "Rake leaves")
	assert.NotContains(t, m.Checklist(model.SeasonAutumn), "Rake leaves")
	assert.Empty(t, m.done[model.SeasonAutumn])
}

func TestRestoreDefaultsAddsMissingOnly(t *testing.T) {
	m := newTestManager(t)

	// Everything is seeded already, so a restore adds nothing
	assert.Equal(t, 0, m.RestoreDefaults(model.SeasonWinter))

	// Remove one default and re-add it under different casing: still present
	m.RemoveChecklistItem(model.SeasonWinter, "Clean fireplace and chimney.")
	m.AddChecklistItem(model.SeasonWinter, "CLEAN FIREPLACE AND CHIMNEY.")
	assert.Equal(t, 0, m.RestoreDefaults(model.SeasonWinter))

	// Remove one outright: restore brings back exactly that one
	m.RemoveChecklistItem(model.SeasonWinter, "Check insulation in attic.")
	assert.Equal(t, 1, m.RestoreDefaults(model.SeasonWinter))
	assert.Contains(t, m.Checklist(model.SeasonWinter), "Check insulation in attic.")
}

func TestRestartAll(t *testing.T) {
	m := newTestManager(t)

	m.SetDone(model.SeasonPool, "Top off water level", true)
	m.SetDone(model.SeasonPool, "Brush walls, steps, and tile line", true)

	assert.Equal(t, 2, m.RestartAll(model.SeasonPool))
	assert.Nil(t, m.DoneOn(model.SeasonPool, "Top off water level"))
	assert.Equal(t, 0, m.RestartAll(model.SeasonPool))
}

func TestHurricaneListAddRemove(t *testing.T) {
	m := newTestManager(t)

	before := len(m.Hurricane)
	m.AddHurricaneItem("Fill car with gas")
	assert.Len(t, m.Hurricane, before+1)

	m.RemoveHurricaneItem("Fill car with gas")
	assert.Len(t, m.Hurricane, before)

	// Whitespace-only entries are rejected
	m.AddHurricaneItem("   ")
	assert.Len(t, m.Hurricane, before)
}

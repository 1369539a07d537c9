package maint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dori/homekeep/internal/model"
	"github.com/dori/homekeep/internal/store"
)

// testNow is a Monday
var testNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func newTestManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	base := []Option{WithClock(func() time.Time { return testNow })}
	return New(store.NewMemory(), append(base, opts...)...)
}

func TestSeedingIsIdempotent(t *testing.T) {
	prefs := store.NewMemory()
	clock := WithClock(func() time.Time { return testNow })

	m1 := New(prefs, clock)
	tasks := len(m1.Tasks)
	issues := len(m1.Issues)
	spring := len(m1.Checklist(model.SeasonSpring))
	require.Greater(t, tasks, 0)

	// Reconstructing over the same store must not duplicate anything
	m2 := New(prefs, clock)
	assert.Equal(t, tasks, len(m2.Tasks))
	assert.Equal(t, issues, len(m2.Issues))
	assert.Equal(t, spring, len(m2.Checklist(model.SeasonSpring)))
	assert.Len(t, m2.Hurricane, len(m1.Hurricane))
}

func TestSeedContents(t *testing.T) {
	m := newTestManager(t)

	require.Len(t, m.Appliances, 1)
	assert.Equal(t, "Carrier HVAC", m.Appliances[0].Name)
	assert.Equal(t, model.ApplianceHVAC, m.Appliances[0].Type)

	byTitle := make(map[string]model.Task)
	for _, task := range m.Tasks {
		byTitle[task.Title] = task
	}

	filter, ok := byTitle["Change HVAC Filter"]
	require.True(t, ok)
	assert.Equal(t, model.RecurMonthly, filter.Recurrence)
	require.NotNil(t, filter.DueDate)
	assert.Equal(t, testNow.AddDate(0, 0, 7).Day(), filter.DueDate.Day())
	require.NotNil(t, filter.ApplianceID)
	assert.Equal(t, m.Appliances[0].ID, *filter.ApplianceID)

	_, ok = byTitle["A/C: Add 1/3 cup vinegar to condensate line"]
	assert.True(t, ok)
	_, ok = byTitle["Touch up paint chips"]
	assert.True(t, ok)

	require.Len(t, m.Issues, 1)
	assert.Equal(t, "Sink Leak - Kitchen", m.Issues[0].Title)
	assert.False(t, m.Issues[0].Resolved)

	// Tool list and useful-life table are seeded but never persisted
	assert.NotEmpty(t, m.Tools)
	assert.NotEmpty(t, m.UsefulLife)
	_, persisted := m.prefs.Get("knowledge_tools")
	assert.False(t, persisted)
}

func TestCorruptedPreferenceLoadsAsDefault(t *testing.T) {
	prefs := store.NewMemory()
	require.NoError(t, prefs.Set(keyTasks, "{not json"))
	require.NoError(t, prefs.Set(keyProperty, "[42]"))

	m := New(prefs, WithClock(func() time.Time { return testNow }))

	// Malformed documents degrade to empty defaults and seeding proceeds
	assert.NotEmpty(t, m.Tasks)
	assert.Equal(t, "", m.Property.Address)
}

func TestFirstRunFlag(t *testing.T) {
	m := newTestManager(t)

	assert.False(t, m.FirstRunCompleted())
	m.SetFirstRunCompleted()
	assert.True(t, m.FirstRunCompleted())
}

func TestStateSurvivesReconstruction(t *testing.T) {
	prefs := store.NewMemory()
	clock := WithClock(func() time.Time { return testNow })

	m1 := New(prefs, clock)
	m1.SetAddress("12 Oak Ln")
	day := time.Friday
	m1.SetTrashDay(&day)
	added := m1.AddTask(model.Task{Title: "Flush water heater", Recurrence: model.RecurYearly})
	m1.AddNote("Shutoff valve is behind the access panel in the hall closet")

	m2 := New(prefs, clock)
	assert.Equal(t, "12 Oak Ln", m2.Property.Address)
	require.NotNil(t, m2.Property.TrashDay)
	assert.Equal(t, time.Friday, *m2.Property.TrashDay)
	require.NotNil(t, m2.Task(added.ID))
	assert.Equal(t, "Flush water heater", m2.Task(added.ID).Title)
	assert.Contains(t, m2.Notes, "Shutoff valve is behind the access panel in the hall closet")
}

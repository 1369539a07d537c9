package maint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dori/homekeep/internal/model"
)

func TestAddRecurringTaskAssignsDueDate(t *testing.T) {
	m := newTestManager(t)

	added := m.AddTask(model.Task{
		Title:      "Pool: Weekly – skim",
		Recurrence: model.RecurWeekly,
	})

	require.NotNil(t, added.DueDate)
	assert.Equal(t, date(2025, time.March, 17), *added.DueDate, "due exactly 7 days from creation day")
}

func TestAddNonRecurringTaskKeepsNilDueDate(t *testing.T) {
	m := newTestManager(t)

	added := m.AddTask(model.Task{Title: "Fix gate latch"})
	assert.Nil(t, added.DueDate)
	assert.Equal(t, model.StatusNotStarted, added.Status)
	assert.Equal(t, model.PriorityMedium, added.Priority)
}

func TestCompleteWeeklyTaskReschedules(t *testing.T) {
	m := newTestManager(t)

	added := m.AddTask(model.Task{
		Title:      "Pool: Weekly – skim",
		Recurrence: model.RecurWeekly,
	})
	require.NotNil(t, added.DueDate)
	assert.Equal(t, date(2025, time.March, 17), *added.DueDate)

	m.CompleteTask(added.ID)

	got := m.Task(added.ID)
	require.NotNil(t, got)
	assert.Equal(t, model.StatusNotStarted, got.Status, "completed is a transient pulse for recurring tasks")
	require.NotNil(t, got.LastCompletedOn)
	assert.Equal(t, date(2025, time.March, 10), *got.LastCompletedOn)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, date(2025, time.March, 24), *got.DueDate, "previous due date + 7, even when completed early")
}

func TestCompleteMonthlyTaskKeepsAnchorDay(t *testing.T) {
	m := newTestManager(t)

	due := date(2025, time.March, 15)
	added := m.AddTask(model.Task{
		Title:      "Inspect water softener",
		Recurrence: model.RecurMonthly,
		DueDate:    &due,
	})

	// Completed early on March 10: the due date still steps off March 15
	// into the next occurrence of anchor day 15
	m.CompleteTask(added.ID)
	got := m.Task(added.ID)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, date(2025, time.April, 15), *got.DueDate)
	assert.Equal(t, model.StatusNotStarted, got.Status)
}

func TestCompleteRecurringAdvancesPastPreviousDue(t *testing.T) {
	m := newTestManager(t)

	due := date(2025, time.March, 17)
	added := m.AddTask(model.Task{
		Title:      "Pool: Weekly – brush walls",
		Recurrence: model.RecurWeekly,
		DueDate:    &due,
	})

	m.CompleteTask(added.ID)
	got := m.Task(added.ID)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.After(due), "new due date is strictly after the previous one")
	assert.Equal(t, date(2025, time.March, 24), *got.DueDate)

	// A task overdue by a week catches up to today, not beyond
	overdue := date(2025, time.March, 3)
	late := m.AddTask(model.Task{
		Title:      "Pool: Weekly – test water",
		Recurrence: model.RecurWeekly,
		DueDate:    &overdue,
	})
	m.CompleteTask(late.ID)
	assert.Equal(t, date(2025, time.March, 10), *m.Task(late.ID).DueDate)
}

func TestCompleteMonthlyTaskOnDueDayAdvancesAMonth(t *testing.T) {
	m := newTestManager(t)

	due := date(2025, time.March, 10) // same day as the test clock
	added := m.AddTask(model.Task{
		Title:      "Test GFCI outlets",
		Recurrence: model.RecurMonthly,
		DueDate:    &due,
	})

	m.CompleteTask(added.ID)
	got := m.Task(added.ID)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, date(2025, time.April, 10), *got.DueDate)
	assert.True(t, got.DueDate.After(due), "due date strictly after the previous one")
}

func TestCompleteMonthlyTaskUsesExplicitAnchor(t *testing.T) {
	m := newTestManager(t)

	anchor := 28
	added := m.AddTask(model.Task{
		Title:            "Pay mortgage escrow review",
		Recurrence:       model.RecurMonthly,
		MonthlyAnchorDay: &anchor,
	})

	// Assigned due date pins to the anchor already
	require.NotNil(t, added.DueDate)
	assert.Equal(t, date(2025, time.March, 28), *added.DueDate)

	// Completing re-pins to the same anchor day in the following month
	m.CompleteTask(added.ID)
	got := m.Task(added.ID)
	assert.Equal(t, date(2025, time.April, 28), *got.DueDate)
}

func TestCompleteNonRecurringTaskStaysCompleted(t *testing.T) {
	m := newTestManager(t)

	due := date(2025, time.March, 20)
	added := m.AddTask(model.Task{Title: "Fix gate latch", DueDate: &due})

	m.CompleteTask(added.ID)

	got := m.Task(added.ID)
	assert.Equal(t, model.StatusCompleted, got.Status)
	assert.Equal(t, due, *got.DueDate, "due date unchanged")
	require.NotNil(t, got.LastCompletedOn)
}

func TestCompleteUnknownTaskIsNoOp(t *testing.T) {
	m := newTestManager(t)
	before := len(m.Tasks)

	m.CompleteTask("no-such-id")
	assert.Len(t, m.Tasks, before)
}

func TestUpdateTaskOverwritesAllFields(t *testing.T) {
	m := newTestManager(t)

	added := m.AddTask(model.Task{Title: "Fix gate latch"})
	added.Title = "Fix side gate latch"
	added.Priority = model.PriorityHigh
	added.Status = model.StatusInProgress
	m.UpdateTask(added)

	got := m.Task(added.ID)
	assert.Equal(t, "Fix side gate latch", got.Title)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	assert.Equal(t, model.StatusInProgress, got.Status)
}

func TestDeleteTask(t *testing.T) {
	m := newTestManager(t)

	added := m.AddTask(model.Task{Title: "Fix gate latch"})
	before := len(m.Tasks)

	m.DeleteTask(added.ID)
	assert.Len(t, m.Tasks, before-1)
	assert.Nil(t, m.Task(added.ID))

	// Unknown ids are a silent no-op
	m.DeleteTask(added.ID)
	assert.Len(t, m.Tasks, before-1)
}

func TestStartAndDefer(t *testing.T) {
	m := newTestManager(t)

	added := m.AddTask(model.Task{Title: "Fix gate latch"})

	m.StartTask(added.ID)
	assert.Equal(t, model.StatusInProgress, m.Task(added.ID).Status)

	m.DeferTask(added.ID)
	assert.Equal(t, model.StatusDeferred, m.Task(added.ID).Status)
}

func TestSetHasPoolSeedsPoolTasksOnce(t *testing.T) {
	m := newTestManager(t)

	countPool := func() int {
		n := 0
		for _, task := range m.Tasks {
			if len(task.Title) >= 5 && task.Title[:5] == "Pool:" {
				n++
			}
		}
		return n
	}

	require.Equal(t, 0, countPool())

	m.SetHasPool(true)
	assert.Equal(t, 3, countPool())

	// Toggling off and on again must not duplicate
	m.SetHasPool(false)
	m.SetHasPool(true)
	assert.Equal(t, 3, countPool())
}

package maint

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dori/homekeep/internal/model"
)

func TestDashboardKpis(t *testing.T) {
	m := newTestManager(t)
	m.Tasks = nil
	m.Issues = nil
	m.History = nil

	past := date(2025, time.March, 1)
	future := date(2025, time.March, 20)
	m.AddTask(model.Task{Title: "Overdue chore", DueDate: &past})
	m.AddTask(model.Task{Title: "Upcoming chore", DueDate: &future})
	done := m.AddTask(model.Task{Title: "Finished chore", DueDate: &past})
	m.CompleteTask(done.ID)

	applianceID := m.Appliances[0].ID
	m.AddIssue(model.Issue{Title: "Compressor dead", Severity: model.SeverityCritical, ApplianceID: &applianceID})
	m.AddIssue(model.Issue{Title: "Compressor rattles", Severity: model.SeverityCritical})
	resolved := m.AddIssue(model.Issue{Title: "Old leak", Severity: model.SeverityMinor})
	m.ResolveIssue(resolved.ID)

	d := m.Dashboard()
	assert.Equal(t, 2, d.ActiveTasks, "completed tasks are not active")
	assert.Equal(t, 1, d.OverdueTasks)
	assert.Equal(t, 1, d.CriticalApplianceIssues, "critical without appliance reference does not count")
	assert.Equal(t, 3, d.TotalIssues, "history counts toward the total")
}

func TestDueSoonFilterSyncsToCondensateAnchor(t *testing.T) {
	m := newTestManager(t)

	// Seeded state: the vinegar/condensate task is due on the monthly anchor
	// and the HVAC filter task a week out. The filter row must display the
	// anchor date while its stored due date stays untouched.
	d := m.Dashboard()

	var filterRow *DueSoonItem
	for i := range d.DueSoon {
		if d.DueSoon[i].Title == "Change HVAC Filter" {
			filterRow = &d.DueSoon[i]
		}
	}
	require.NotNil(t, filterRow)
	assert.Equal(t, date(2025, time.March, 28), filterRow.Due)

	stored := m.Task(filterRow.TaskID)
	assert.Equal(t, date(2025, time.March, 17), *stored.DueDate, "reconciliation is display-only")
}

func TestDueSoonExcludesPaintChips(t *testing.T) {
	m := newTestManager(t)

	for _, item := range m.Dashboard().DueSoon {
		assert.NotContains(t, item.Title, "paint chip")
	}
}

func TestDueSoonPoolExclusion(t *testing.T) {
	m := newTestManager(t)
	m.Tasks = nil

	due := date(2025, time.March, 12)
	m.AddTask(model.Task{Title: "Backwash the filter", DueDate: &due})
	m.AddTask(model.Task{Title: "Empty skimmer baskets", DueDate: &due})
	m.AddTask(model.Task{Title: "Oil garage door springs", DueDate: &due})

	// Pool flag off: pool-related titles are hidden
	titles := func() []string {
		var out []string
		for _, item := range m.Dashboard().DueSoon {
			out = append(out, item.Title)
		}
		return out
	}
	assert.Equal(t, []string{"Oil garage door springs"}, titles())

	// Pool flag on: they appear (plus the freshly seeded pool tasks)
	m.SetHasPool(true)
	assert.Contains(t, titles(), "Backwash the filter")
	assert.Contains(t, titles(), "Empty skimmer baskets")
}

func TestDueSoonDeduplicates(t *testing.T) {
	m := newTestManager(t)
	m.Tasks = nil

	due := date(2025, time.March, 14)
	m.AddTask(model.Task{Title: " New Task ", DueDate: &due})
	m.AddTask(model.Task{Title: "new task", DueDate: &due})

	d := m.Dashboard()
	require.Len(t, d.DueSoon, 1, "identical (trimmed lowercase title, date) pairs collapse")
	assert.Equal(t, " New Task ", d.DueSoon[0].Title, "first occurrence wins")
}

func TestDueSoonSortAndCap(t *testing.T) {
	m := newTestManager(t)
	m.Tasks = nil

	for i := 0; i < 14; i++ {
		due := date(2025, time.March, 12).AddDate(0, 0, 14-i)
		m.AddTask(model.Task{Title: fmt.Sprintf("Chore %02d", i), DueDate: &due})
	}

	d := m.Dashboard()
	require.Len(t, d.DueSoon, 10)
	for i := 1; i < len(d.DueSoon); i++ {
		assert.False(t, d.DueSoon[i].Due.Before(d.DueSoon[i-1].Due), "ascending by effective due date")
	}
}

func TestDueSoonTags(t *testing.T) {
	m := newTestManager(t)
	m.Tasks = nil

	overdue := date(2025, time.March, 2)
	today := date(2025, time.March, 10)
	upcoming := date(2025, time.March, 25)
	m.AddTask(model.Task{Title: "Late chore", DueDate: &overdue})
	m.AddTask(model.Task{Title: "Today chore", DueDate: &today})
	m.AddTask(model.Task{Title: "Future chore", DueDate: &upcoming})

	byTitle := make(map[string]DueSoonItem)
	for _, item := range m.Dashboard().DueSoon {
		byTitle[item.Title] = item
	}

	assert.Equal(t, "Overdue: Due 03/02/2025", byTitle["Late chore"].DueTag)
	assert.Equal(t, UrgencyOverdue, byTitle["Late chore"].Urgency)

	assert.Equal(t, "Due today", byTitle["Today chore"].DueTag)
	assert.Equal(t, UrgencyToday, byTitle["Today chore"].Urgency)

	assert.Equal(t, "Due 03/25/2025", byTitle["Future chore"].DueTag)
	assert.Equal(t, UrgencyUpcoming, byTitle["Future chore"].Urgency)
}

func TestDashboardTrashPickup(t *testing.T) {
	m := newTestManager(t)

	assert.Nil(t, m.Dashboard().NextTrashPickup)

	day := time.Monday // test clock is a Monday, so pickup rolls a week
	m.SetTrashDay(&day)
	next := m.Dashboard().NextTrashPickup
	require.NotNil(t, next)
	assert.Equal(t, date(2025, time.March, 17), *next)
}

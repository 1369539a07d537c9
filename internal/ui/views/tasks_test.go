package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dori/homekeep/internal/model"
)

// monday is the fixed reference day for date-relative parsing
var monday = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func TestParseTaskInputPlainTitle(t *testing.T) {
	task := parseTaskInput("Fix gate latch", monday)

	assert.Equal(t, "Fix gate latch", task.Title)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Nil(t, task.DueDate)
	assert.False(t, task.IsRecurring())
}

func TestParseTaskInputAllMarkers(t *testing.T) {
	task := parseTaskInput("Change filters !high due:friday every:monthly", monday)

	assert.Equal(t, "Change filters", task.Title)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.Equal(t, model.RecurMonthly, task.Recurrence)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), *task.DueDate)
}

func TestParseTaskInputShorthands(t *testing.T) {
	task := parseTaskInput("Flush water heater !c every:w", monday)

	assert.Equal(t, "Flush water heater", task.Title)
	assert.Equal(t, model.PriorityCritical, task.Priority)
	assert.Equal(t, model.RecurWeekly, task.Recurrence)
}

func TestParseTaskInputUnknownMarkersStayInTitle(t *testing.T) {
	task := parseTaskInput("Call plumber !urgent every:day due:someday", monday)

	assert.Equal(t, "Call plumber !urgent every:day due:someday", task.Title)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Nil(t, task.DueDate)
	assert.False(t, task.IsRecurring())
}

func TestParseDueDateKeywords(t *testing.T) {
	today := parseDueDate("today", monday)
	require.NotNil(t, today)
	assert.Equal(t, monday, *today)

	tom := parseDueDate("tomorrow", monday)
	require.NotNil(t, tom)
	assert.Equal(t, monday.AddDate(0, 0, 1), *tom)

	next := parseDueDate("nextweek", monday)
	require.NotNil(t, next)
	assert.Equal(t, monday.AddDate(0, 0, 7), *next)
}

func TestParseDueDateWeekdayNeverResolvesToToday(t *testing.T) {
	// Asking for the current weekday means next week, not today
	got := parseDueDate("monday", monday)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC), *got)

	// Short names work and resolve within the week
	thu := parseDueDate("thu", monday)
	require.NotNil(t, thu)
	assert.Equal(t, time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC), *thu)
}

func TestParseDueDateLayouts(t *testing.T) {
	want := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	for _, s := range []string{"2025-01-15", "01/15/2025", "01-15-2025"} {
		got := parseDueDate(s, monday)
		require.NotNil(t, got, s)
		assert.Equal(t, want, *got, s)
	}

	assert.Nil(t, parseDueDate("not-a-date", monday))
}

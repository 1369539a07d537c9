package model

import (
	"time"
)

// Status represents the current state of a maintenance task
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusDeferred   Status = "deferred"
)

// Priority represents task priority level
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Recurrence represents how often a task repeats
type Recurrence string

const (
	RecurNone    Recurrence = "none"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
	RecurYearly  Recurrence = "yearly"
)

// Task represents a home maintenance task
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ApplianceID *string    `json:"appliance_id,omitempty"` // Weak reference; no cascade
	Recurrence  Recurrence `json:"recurrence"`

	// Day-of-month a monthly task is re-pinned to. When nil, the day of the
	// previous due date is used, then the configured default.
	MonthlyAnchorDay *int `json:"monthly_anchor_day,omitempty"`

	LastCompletedOn *time.Time `json:"last_completed_on,omitempty"`
}

// IsRecurring returns true if the task repeats after completion
func (t *Task) IsRecurring() bool {
	return t.Recurrence != RecurNone && t.Recurrence != ""
}

// IsOverdue returns true if the task is past its due date on the given day
func (t *Task) IsOverdue(today time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return t.DueDate.Before(day)
}

// IsDueOn returns true if the task is due on the given day
func (t *Task) IsDueOn(day time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Year() == day.Year() &&
		t.DueDate.YearDay() == day.YearDay()
}

// PriorityWeight returns a numeric weight for sorting by priority
func (t *Task) PriorityWeight() int {
	switch t.Priority {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

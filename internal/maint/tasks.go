package maint

import (
	"github.com/google/uuid"

	"github.com/dori/homekeep/internal/model"
)

// AddTask inserts a task. A recurring task without a due date gets one
// assigned from today before insertion, so recurring tasks always carry a
// due date.
func (m *Manager) AddTask(t model.Task) model.Task {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.Status == "" {
		t.Status = model.StatusNotStarted
	}
	if t.Recurrence == "" {
		t.Recurrence = model.RecurNone
	}

	if t.IsRecurring() && t.DueDate == nil {
		due := NextDue(m.today(), t.Recurrence, m.anchorFor(&t))
		t.DueDate = &due
	}

	m.Tasks = append(m.Tasks, t)
	m.saveTasks()
	return t
}

// UpdateTask overwrites the task with the same id. Unknown ids are a no-op.
func (m *Manager) UpdateTask(updated model.Task) {
	for i := range m.Tasks {
		if m.Tasks[i].ID == updated.ID {
			m.Tasks[i] = updated
			m.saveTasks()
			return
		}
	}
}

// DeleteTask removes the task with the given id. Unknown ids are a no-op.
func (m *Manager) DeleteTask(id string) {
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
			m.saveTasks()
			return
		}
	}
}

// StartTask moves a task to in-progress
func (m *Manager) StartTask(id string) {
	t := m.Task(id)
	if t == nil {
		return
	}
	t.Status = model.StatusInProgress
	m.saveTasks()
}

// DeferTask parks a task until the user picks it back up
func (m *Manager) DeferTask(id string) {
	t := m.Task(id)
	if t == nil {
		return
	}
	t.Status = model.StatusDeferred
	m.saveTasks()
}

// CompleteTask marks a task done and stamps today as its completion day.
// A recurring task immediately reschedules: its due date advances one
// interval past the previous due date (today when it never had one),
// monthly tasks re-pin to their anchor day, and its status resets to
// not-started. Completed is never a resting state for recurring tasks.
func (m *Manager) CompleteTask(id string) {
	t := m.Task(id)
	if t == nil {
		return
	}

	today := m.today()
	t.Status = model.StatusCompleted
	stamp := today
	t.LastCompletedOn = &stamp

	if t.IsRecurring() {
		anchor := m.anchorFor(t)
		base := today
		if t.DueDate != nil {
			base = dateOf(*t.DueDate)
		}
		next := NextDue(base, t.Recurrence, anchor)
		if !next.After(base) {
			// Monthly with the anchor on the base day lands on the base
			// itself; push to the following occurrence so the due date
			// always moves forward.
			next = NextDue(base.AddDate(0, 0, 1), t.Recurrence, anchor)
		}
		t.DueDate = &next
		t.Status = model.StatusNotStarted
	}

	m.saveTasks()
}

// Task returns the task with the given id, or nil
func (m *Manager) Task(id string) *model.Task {
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			return &m.Tasks[i]
		}
	}
	return nil
}

// TasksByStatus returns the tasks currently in the given status
func (m *Manager) TasksByStatus(status model.Status) []model.Task {
	var out []model.Task
	for _, t := range m.Tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// anchorFor resolves the monthly anchor day for a task: the task's own
// anchor, then the day of its current due date, then the configured default.
func (m *Manager) anchorFor(t *model.Task) int {
	if t.MonthlyAnchorDay != nil && *t.MonthlyAnchorDay >= 1 && *t.MonthlyAnchorDay <= 31 {
		return *t.MonthlyAnchorDay
	}
	if t.DueDate != nil {
		return t.DueDate.Day()
	}
	return m.anchorDay
}

package maint

import (
	"sort"
	"strings"
	"time"

	"github.com/dori/homekeep/internal/model"
)

// Urgency classifies a due-soon entry for display
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyToday    Urgency = "today"
	UrgencyUpcoming Urgency = "upcoming"
)

// DueSoonItem is one display-ready row of the dashboard's due-soon list
type DueSoonItem struct {
	TaskID   string
	Title    string
	Due      time.Time // effective due date after reconciliation
	DueTag   string
	Urgency  Urgency
	Priority model.Priority
}

// Dashboard is the display-ready aggregate computed over the stores. It is
// recomputed on every screen activation and never cached.
type Dashboard struct {
	ActiveTasks             int
	OverdueTasks            int
	CriticalApplianceIssues int
	TotalIssues             int

	DueSoon []DueSoonItem

	NextTrashPickup *time.Time
}

// Titles that drive the display-only due-date reconciliation. The task whose
// title mentions the condensate line (or the vinegar treatment for it) is the
// source of truth; HVAC filter tasks display its due date so the two chores
// line up on the same visit to the unit.
var (
	syncAnchorMarkers = []string{"vinegar", "condensate"}
	filterMarkers     = []string{"hvac filter", "change hvac filter", "air filter"}
	poolMarkers       = []string{"pool", "skimmer", "chlorine", "pump", "backwash"}
)

// Dashboard derives KPI counts and the reconciled due-soon list
func (m *Manager) Dashboard() Dashboard {
	today := m.today()

	var d Dashboard
	for _, t := range m.Tasks {
		if t.Status != model.StatusCompleted {
			d.ActiveTasks++
		}
		if t.IsOverdue(today) {
			d.OverdueTasks++
		}
	}

	for _, issues := range [][]model.Issue{m.Issues, m.History} {
		for _, i := range issues {
			d.TotalIssues++
			if i.Severity == model.SeverityCritical && i.ApplianceID != nil {
				d.CriticalApplianceIssues++
			}
		}
	}

	d.DueSoon = m.dueSoon(today)

	if m.Property.TrashDay != nil {
		next := NextTrashPickup(today, *m.Property.TrashDay)
		d.NextTrashPickup = &next
	}

	return d
}

// dueSoon builds the deduplicated, reconciled due-soon list:
// anchor lookup, effective due dates, exclusions, dedup, sort, top 10.
func (m *Manager) dueSoon(today time.Time) []DueSoonItem {
	anchor := m.syncAnchor()

	type candidate struct {
		task model.Task
		due  time.Time
	}

	var candidates []candidate
	for _, t := range m.Tasks {
		if t.DueDate == nil || t.Status == model.StatusCompleted {
			continue
		}

		title := strings.ToLower(t.Title)

		if strings.Contains(title, "paint chip") {
			continue
		}
		if !m.Property.HasPool && containsAny(title, poolMarkers) {
			continue
		}

		due := dateOf(*t.DueDate)
		if anchor != nil && containsAny(title, filterMarkers) {
			// Display-only: the stored due date is untouched
			due = *anchor
		}

		candidates = append(candidates, candidate{task: t, due: due})
	}

	// Keep the first occurrence per (trimmed lowercase title, date) pair
	seen := make(map[string]bool)
	var items []DueSoonItem
	for _, c := range candidates {
		key := strings.TrimSpace(strings.ToLower(c.task.Title)) + "\x00" + c.due.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true

		tag, urgency := dueTag(c.due, today)
		items = append(items, DueSoonItem{
			TaskID:   c.task.ID,
			Title:    c.task.Title,
			Due:      c.due,
			DueTag:   tag,
			Urgency:  urgency,
			Priority: c.task.Priority,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Due.Before(items[j].Due)
	})

	if len(items) > 10 {
		items = items[:10]
	}
	return items
}

// syncAnchor finds the earliest due date among the incomplete tasks that act
// as the source of truth for filter-task reconciliation
func (m *Manager) syncAnchor() *time.Time {
	var anchor *time.Time
	for _, t := range m.Tasks {
		if t.DueDate == nil || t.Status == model.StatusCompleted {
			continue
		}
		if !containsAny(strings.ToLower(t.Title), syncAnchorMarkers) {
			continue
		}
		due := dateOf(*t.DueDate)
		if anchor == nil || due.Before(*anchor) {
			anchor = &due
		}
	}
	return anchor
}

// dueTag formats a friendly tag for a due date and classifies its urgency
func dueTag(due, today time.Time) (string, Urgency) {
	switch {
	case due.Before(today):
		return "Overdue: Due " + due.Format("01/02/2006"), UrgencyOverdue
	case due.Equal(today):
		return "Due today", UrgencyToday
	default:
		return "Due " + due.Format("01/02/2006"), UrgencyUpcoming
	}
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

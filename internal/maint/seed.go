package maint

import (
	"strings"

	"github.com/dori/homekeep/internal/model"
)

// seed fills in the demo data and default checklists that are still missing.
// Every step is guarded by an existence predicate so seeding is idempotent
// across store reconstructions.
func (m *Manager) seed() {
	if len(m.Appliances) == 0 {
		install := m.today().AddDate(-5, 0, 0)
		hvac := m.AddAppliance(model.Appliance{
			Name:         "Carrier HVAC",
			Type:         model.ApplianceHVAC,
			Location:     "Attic",
			SerialNumber: "ABC-123",
			InstallDate:  &install,
		})

		if len(m.Tasks) == 0 {
			due := m.today().AddDate(0, 0, 7)
			m.AddTask(model.Task{
				Title:       "Change HVAC Filter",
				Description: "Replace with MERV-11 filter",
				Priority:    model.PriorityMedium,
				Status:      model.StatusNotStarted,
				DueDate:     &due,
				ApplianceID: &hvac.ID,
				Recurrence:  model.RecurMonthly,
			})
		}
	}

	m.seedHousekeepingTasks()

	if len(m.Issues) == 0 && len(m.History) == 0 {
		m.AddIssue(model.Issue{
			Title:          "Sink Leak - Kitchen",
			Description:    "Slow drip under the sink",
			Severity:       model.SeverityModerate,
			ReportedOn:     m.now(),
			AttemptedSteps: "Checked P-trap and tightened fittings.",
			FixNotes:       "Replaced worn gasket; monitored for 48h.",
		})
	}

	for _, season := range model.Seasons() {
		mergeDefaults(&m.checklists, season, seasonDefaults(season))
	}
	if len(m.Hurricane) == 0 {
		m.Hurricane = append(m.Hurricane, hurricaneDefaults...)
	}

	// The tool list and useful-life table are regenerated every startup and
	// never persisted
	m.Tools = append([]string(nil), toolDefaults...)
	m.UsefulLife = append([]model.UsefulLifeRow(nil), usefulLifeDefaults...)
}

// seedHousekeepingTasks adds the standing monthly chores when no task of
// theirs exists yet. The predicates are substring checks on titles so user
// edits don't trigger duplicates.
func (m *Manager) seedHousekeepingTasks() {
	vinegarPresent := false
	paintPresent := false
	for _, t := range m.Tasks {
		title := strings.ToLower(t.Title)
		if strings.Contains(title, "vinegar") {
			vinegarPresent = true
		}
		if strings.Contains(title, "paint") {
			paintPresent = true
		}
	}

	if !vinegarPresent {
		due := NextDue(m.today(), model.RecurMonthly, m.anchorDay)
		m.AddTask(model.Task{
			Title:       "A/C: Add 1/3 cup vinegar to condensate line",
			Description: "Pour into condensate drain to inhibit algae buildup",
			Priority:    model.PriorityLow,
			Status:      model.StatusNotStarted,
			DueDate:     &due,
			Recurrence:  model.RecurMonthly,
		})
	}

	if !paintPresent {
		due := NextDue(m.today(), model.RecurMonthly, m.anchorDay)
		m.AddTask(model.Task{
			Title:       "Touch up paint chips",
			Description: "Inspect high-traffic areas and exterior trim",
			Priority:    model.PriorityLow,
			Status:      model.StatusNotStarted,
			DueDate:     &due,
			Recurrence:  model.RecurMonthly,
		})
	}
}

// seedPoolTasks adds the standing pool chores the first time the pool flag
// turns on. Guarded by the "Pool:" title prefix.
func (m *Manager) seedPoolTasks() {
	for _, t := range m.Tasks {
		if strings.HasPrefix(strings.ToLower(t.Title), "pool:") {
			return
		}
	}

	weekly := m.today().AddDate(0, 0, 7)
	monthly := NextDue(m.today().AddDate(0, 0, 1), model.RecurMonthly, m.today().Day())

	m.AddTask(model.Task{
		Title:      "Pool: Weekly – skim surface, brush walls, empty baskets",
		Priority:   model.PriorityLow,
		Status:     model.StatusNotStarted,
		DueDate:    &weekly,
		Recurrence: model.RecurWeekly,
	})
	m.AddTask(model.Task{
		Title:      "Pool: Weekly – test chlorine & pH; adjust as needed",
		Priority:   model.PriorityLow,
		Status:     model.StatusNotStarted,
		DueDate:    &weekly,
		Recurrence: model.RecurWeekly,
	})
	m.AddTask(model.Task{
		Title:      "Pool: Monthly – inspect pump & filter; backwash/clean",
		Priority:   model.PriorityMedium,
		Status:     model.StatusNotStarted,
		DueDate:    &monthly,
		Recurrence: model.RecurMonthly,
	})
}

package maint

import (
	"github.com/google/uuid"

	"github.com/dori/homekeep/internal/model"
)

// AddIssue records a new active issue
func (m *Manager) AddIssue(issue model.Issue) model.Issue {
	if issue.ID == "" {
		issue.ID = uuid.New().String()
	}
	if issue.Severity == "" {
		issue.Severity = model.SeverityModerate
	}
	if issue.ReportedOn.IsZero() {
		issue.ReportedOn = m.now()
	}
	issue.Resolved = false
	issue.ResolvedOn = nil

	m.Issues = append(m.Issues, issue)
	m.saveIssues()
	return issue
}

// UpdateIssue overwrites the editable fields of the issue with the same id,
// in whichever collection currently holds it. It never moves an issue
// between active and history; use ResolveIssue for that.
func (m *Manager) UpdateIssue(updated model.Issue) {
	if i := indexOfIssue(m.Issues, updated.ID); i >= 0 {
		applyIssueEdits(&m.Issues[i], updated)
		m.saveIssues()
		return
	}
	if i := indexOfIssue(m.History, updated.ID); i >= 0 {
		applyIssueEdits(&m.History[i], updated)
		m.saveIssues()
	}
}

// ResolveIssue moves an active issue into history, stamping today as its
// resolution date. The transition is one-way. Resolving an unknown or
// already-resolved id is a no-op.
func (m *Manager) ResolveIssue(id string) {
	i := indexOfIssue(m.Issues, id)
	if i < 0 {
		return
	}

	issue := m.Issues[i]
	m.Issues = append(m.Issues[:i], m.Issues[i+1:]...)

	issue.Resolved = true
	resolved := m.today()
	issue.ResolvedOn = &resolved
	m.History = append(m.History, issue)

	m.saveIssues()
}

// DeleteIssue removes the issue from whichever collection holds it
func (m *Manager) DeleteIssue(id string) {
	if i := indexOfIssue(m.Issues, id); i >= 0 {
		m.Issues = append(m.Issues[:i], m.Issues[i+1:]...)
		m.saveIssues()
		return
	}
	if i := indexOfIssue(m.History, id); i >= 0 {
		m.History = append(m.History[:i], m.History[i+1:]...)
		m.saveIssues()
	}
}

// Issue returns the issue with the given id from either collection, or nil
func (m *Manager) Issue(id string) *model.Issue {
	if i := indexOfIssue(m.Issues, id); i >= 0 {
		return &m.Issues[i]
	}
	if i := indexOfIssue(m.History, id); i >= 0 {
		return &m.History[i]
	}
	return nil
}

func indexOfIssue(issues []model.Issue, id string) int {
	for i := range issues {
		if issues[i].ID == id {
			return i
		}
	}
	return -1
}

func applyIssueEdits(dst *model.Issue, src model.Issue) {
	dst.Title = src.Title
	dst.Description = src.Description
	dst.Severity = src.Severity
	dst.Location = src.Location
	dst.AttemptedSteps = src.AttemptedSteps
	dst.FixNotes = src.FixNotes
	dst.RelatedTaskID = src.RelatedTaskID
	dst.ApplianceID = src.ApplianceID
}

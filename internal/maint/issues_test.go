package maint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dori/homekeep/internal/model"
)

func TestResolveMovesIssueToHistoryExactlyOnce(t *testing.T) {
	m := newTestManager(t)

	added := m.AddIssue(model.Issue{Title: "Garage door sensor misaligned", Severity: model.SeverityMinor})
	activeBefore := len(m.Issues)
	historyBefore := len(m.History)

	m.ResolveIssue(added.ID)

	assert.Len(t, m.Issues, activeBefore-1)
	require.Len(t, m.History, historyBefore+1)

	resolved := m.History[len(m.History)-1]
	assert.Equal(t, added.ID, resolved.ID)
	assert.True(t, resolved.Resolved)
	require.NotNil(t, resolved.ResolvedOn)
	assert.Equal(t, date(2025, time.March, 10), *resolved.ResolvedOn)

	// The id is never present in both collections
	assert.Equal(t, -1, indexOfIssue(m.Issues, added.ID))

	// Resolving again is a no-op, not a duplicate
	m.ResolveIssue(added.ID)
	assert.Len(t, m.History, historyBefore+1)
}

func TestUpdateIssueEditsInPlace(t *testing.T) {
	m := newTestManager(t)

	added := m.AddIssue(model.Issue{Title: "Garage door sensor misaligned"})
	added.Title = "Garage door sensor blocked"
	added.Severity = model.SeverityMajor
	added.AttemptedSteps = "Realigned brackets; cleaned lenses."
	m.UpdateIssue(added)

	got := m.Issue(added.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Garage door sensor blocked", got.Title)
	assert.Equal(t, model.SeverityMajor, got.Severity)
	assert.Equal(t, "Realigned brackets; cleaned lenses.", got.AttemptedSteps)
	assert.False(t, got.Resolved, "update never changes the resolved state")
}

func TestUpdateResolvedIssueStaysInHistory(t *testing.T) {
	m := newTestManager(t)

	added := m.AddIssue(model.Issue{Title: "Garage door sensor misaligned"})
	m.ResolveIssue(added.ID)

	edited := added
	edited.FixNotes = "Replaced the sensor pair."
	m.UpdateIssue(edited)

	assert.Equal(t, -1, indexOfIssue(m.Issues, added.ID))
	i := indexOfIssue(m.History, added.ID)
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, "Replaced the sensor pair.", m.History[i].FixNotes)
	assert.True(t, m.History[i].Resolved, "history entry keeps its resolution stamp")
}

func TestDeleteIssueFromEitherCollection(t *testing.T) {
	m := newTestManager(t)

	active := m.AddIssue(model.Issue{Title: "Dripping hose bib"})
	resolved := m.AddIssue(model.Issue{Title: "Squeaky hinge"})
	m.ResolveIssue(resolved.ID)

	m.DeleteIssue(active.ID)
	assert.Nil(t, m.Issue(active.ID))

	m.DeleteIssue(resolved.ID)
	assert.Nil(t, m.Issue(resolved.ID))

	// Unknown id is a silent no-op
	m.DeleteIssue("no-such-id")
}

func TestAddIssueDefaults(t *testing.T) {
	m := newTestManager(t)

	added := m.AddIssue(model.Issue{Title: "Dripping hose bib"})
	assert.Equal(t, model.SeverityModerate, added.Severity)
	assert.False(t, added.Resolved)
	assert.Nil(t, added.ResolvedOn)
	assert.False(t, added.ReportedOn.IsZero())
}

package maint

import (
	"strings"
	"time"

	"github.com/dori/homekeep/internal/model"
)

// Checklist returns the ordered items of a seasonal list. Insertion order is
// display order; the returned slice is a copy.
func (m *Manager) Checklist(season model.Season) []string {
	items := m.checklists[season]
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// AddChecklistItem appends text to a seasonal list
func (m *Manager) AddChecklistItem(season model.Season, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	m.checklists[season] = append(m.checklists[season], text)
	m.saveChecklists()
}

// RemoveChecklistItem removes the first item equal to text and drops its
// done record, if any
func (m *Manager) RemoveChecklistItem(season model.Season, text string) {
	items := m.checklists[season]
	for i, item := range items {
		if item == text {
			m.checklists[season] = append(items[:i], items[i+1:]...)
			m.dropDone(season, text)
			m.saveChecklists()
			m.saveDone(season)
			return
		}
	}
}

// RenameChecklistItem replaces the text of an item, carrying its done record
// forward so completion state survives the edit. The old text is matched
// case-insensitively in the done table.
func (m *Manager) RenameChecklistItem(season model.Season, oldText, newText string) {
	newText = strings.TrimSpace(newText)
	if newText == "" {
		return
	}

	items := m.checklists[season]
	for i, item := range items {
		if item == oldText {
			items[i] = newText

			records := m.done[season]
			for j := range records {
				if strings.EqualFold(records[j].Text, oldText) {
					records[j].Text = newText
					break
				}
			}

			m.saveChecklists()
			m.saveDone(season)
			return
		}
	}
}

// ReplaceChecklist swaps the whole list, used on restore flows
func (m *Manager) ReplaceChecklist(season model.Season, items []string) {
	m.checklists[season] = append([]string(nil), items...)
	m.saveChecklists()
}

// RestoreDefaults merges the fixed default set into a seasonal list, adding
// only items not already present under case-insensitive comparison. Existing
// items are never removed or overwritten. Returns how many were added.
func (m *Manager) RestoreDefaults(season model.Season) int {
	added := mergeDefaults(&m.checklists, season, seasonDefaults(season))
	if added > 0 {
		m.saveChecklists()
	}
	return added
}

// DoneOn returns the completion date for a checklist item, matched
// case-insensitively, or nil when the item is not done. Expired records are
// reported as not done.
func (m *Manager) DoneOn(season model.Season, text string) *time.Time {
	for _, r := range m.done[season] {
		if strings.EqualFold(r.Text, text) {
			if m.expired(r.CompletedOn) {
				return nil
			}
			completed := r.CompletedOn
			return &completed
		}
	}
	return nil
}

// SetDone marks or clears the done state of a checklist item. Marking stamps
// today as the completion date.
func (m *Manager) SetDone(season model.Season, text string, done bool) {
	if !done {
		m.dropDone(season, text)
		m.saveDone(season)
		return
	}

	records := m.done[season]
	for i := range records {
		if strings.EqualFold(records[i].Text, text) {
			records[i].CompletedOn = m.today()
			m.saveDone(season)
			return
		}
	}
	m.done[season] = append(records, model.DoneRecord{Text: text, CompletedOn: m.today()})
	m.saveDone(season)
}

// RestartAll clears every done record for a season. Returns how many were
// cleared.
func (m *Manager) RestartAll(season model.Season) int {
	n := len(m.done[season])
	if n == 0 {
		return 0
	}
	m.done[season] = nil
	m.saveDone(season)
	return n
}

// SweepExpiredDone drops done records old enough to auto-restart, across all
// seasonal lists. Runs on every seasonal screen activation.
func (m *Manager) SweepExpiredDone() {
	for _, season := range model.Seasons() {
		var kept []model.DoneRecord
		changed := false
		for _, r := range m.done[season] {
			if m.expired(r.CompletedOn) {
				changed = true
				continue
			}
			kept = append(kept, r)
		}
		if changed {
			m.done[season] = kept
			m.saveDone(season)
		}
	}
}

// expired reports whether a completion date is old enough to auto-restart.
// The comparison is in calendar days, so a shortened day at a DST change
// still counts as a full day.
func (m *Manager) expired(completedOn time.Time) bool {
	return !dateOf(completedOn).AddDate(0, 0, m.restartDays).After(m.today())
}

func (m *Manager) dropDone(season model.Season, text string) {
	records := m.done[season]
	for i := range records {
		if strings.EqualFold(records[i].Text, text) {
			m.done[season] = append(records[:i], records[i+1:]...)
			return
		}
	}
}

// AddHurricaneItem appends text to the hurricane checklist
func (m *Manager) AddHurricaneItem(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	m.Hurricane = append(m.Hurricane, text)
	m.saveChecklists()
}

// RemoveHurricaneItem removes the first hurricane item equal to text
func (m *Manager) RemoveHurricaneItem(text string) {
	for i, item := range m.Hurricane {
		if item == text {
			m.Hurricane = append(m.Hurricane[:i], m.Hurricane[i+1:]...)
			m.saveChecklists()
			return
		}
	}
}

// mergeDefaults adds the defaults missing from a list, case-insensitively
func mergeDefaults(lists *map[model.Season][]string, season model.Season, defaults []string) int {
	added := 0
	for _, d := range defaults {
		present := false
		for _, existing := range (*lists)[season] {
			if strings.EqualFold(existing, d) {
				present = true
				break
			}
		}
		if !present {
			(*lists)[season] = append((*lists)[season], d)
			added++
		}
	}
	return added
}

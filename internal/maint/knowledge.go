package maint

import (
	"strings"
)

// AddNote appends a user knowledge note
func (m *Manager) AddNote(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	m.Notes = append(m.Notes, text)
	m.saveKnowledge()
}

// RemoveNote removes the first note equal to text
func (m *Manager) RemoveNote(text string) {
	for i, note := range m.Notes {
		if note == text {
			m.Notes = append(m.Notes[:i], m.Notes[i+1:]...)
			m.saveKnowledge()
			return
		}
	}
}

package maint

import (
	"strings"
	"time"
)

// SetAddress updates the property address
func (m *Manager) SetAddress(address string) {
	m.Property.Address = strings.TrimSpace(address)
	m.saveProperty()
}

// SetHasPool toggles the pool flag. Turning the pool on for the first time
// seeds the standard pool maintenance tasks.
func (m *Manager) SetHasPool(hasPool bool) {
	wasPool := m.Property.HasPool
	m.Property.HasPool = hasPool

	if !wasPool && hasPool {
		m.seedPoolTasks()
	}

	m.saveProperty()
}

// SetTrashDay sets the weekly trash pickup day; nil clears it
func (m *Manager) SetTrashDay(day *time.Weekday) {
	m.Property.TrashDay = day
	m.saveProperty()
}

// SetSquareFeet sets the finished square footage; nil clears it
func (m *Manager) SetSquareFeet(sqft *float64) {
	m.Property.SquareFeet = sqft
	m.saveProperty()
}

// SetYearBuilt sets the construction year; nil clears it
func (m *Manager) SetYearBuilt(year *int) {
	m.Property.YearBuilt = year
	m.saveProperty()
}

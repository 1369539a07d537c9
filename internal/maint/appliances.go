package maint

import (
	"github.com/google/uuid"

	"github.com/dori/homekeep/internal/model"
)

// AddAppliance registers an appliance. Appliances live for the session and
// are referenced weakly by id from tasks and issues.
func (m *Manager) AddAppliance(a model.Appliance) model.Appliance {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Type == "" {
		a.Type = model.ApplianceOther
	}
	m.Appliances = append(m.Appliances, a)
	return a
}

// UpdateAppliance replaces the appliance with the same id. Unknown ids are
// ignored.
func (m *Manager) UpdateAppliance(updated model.Appliance) {
	for i := range m.Appliances {
		if m.Appliances[i].ID == updated.ID {
			m.Appliances[i] = updated
			return
		}
	}
}

// DeleteAppliance removes an appliance. References from tasks and issues
// are left in place and resolve to an empty name afterwards.
func (m *Manager) DeleteAppliance(id string) {
	for i := range m.Appliances {
		if m.Appliances[i].ID == id {
			m.Appliances = append(m.Appliances[:i], m.Appliances[i+1:]...)
			return
		}
	}
}

// Appliance returns the appliance with the given id, or nil
func (m *Manager) Appliance(id string) *model.Appliance {
	for i := range m.Appliances {
		if m.Appliances[i].ID == id {
			return &m.Appliances[i]
		}
	}
	return nil
}

// ApplianceName resolves a weak appliance reference to a display name.
// Dangling references resolve to the empty string.
func (m *Manager) ApplianceName(id *string) string {
	if id == nil {
		return ""
	}
	if a := m.Appliance(*id); a != nil {
		return a.Name
	}
	return ""
}

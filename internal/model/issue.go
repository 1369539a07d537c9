package model

import (
	"time"
)

// Severity represents how serious a reported issue is
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

// Issue represents a reported problem with the home or an appliance
type Issue struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Severity    Severity `json:"severity"`

	ReportedOn time.Time  `json:"reported_on"`
	Resolved   bool       `json:"resolved"`
	ResolvedOn *time.Time `json:"resolved_on,omitempty"`

	Location string `json:"location,omitempty"`

	// What the user tried before calling a pro, and how it was finally fixed
	AttemptedSteps string `json:"attempted_steps,omitempty"`
	FixNotes       string `json:"fix_notes,omitempty"`

	// Weak references; no cascade on delete
	RelatedTaskID *string `json:"related_task_id,omitempty"`
	ApplianceID   *string `json:"appliance_id,omitempty"`
}

// SeverityWeight returns a numeric weight for sorting by severity
func (i *Issue) SeverityWeight() int {
	switch i.Severity {
	case SeverityCritical:
		return 4
	case SeverityMajor:
		return 3
	case SeverityModerate:
		return 2
	case SeverityMinor:
		return 1
	default:
		return 2
	}
}

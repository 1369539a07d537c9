package ui

// View represents the current active view
type View int

const (
	ViewDashboard View = iota
	ViewTasks
	ViewAppliances
	ViewIssues
	ViewSeasonal
	ViewHurricane
	ViewKnowledge
	ViewOnboarding
)

// String returns the display name for a view
func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewTasks:
		return "Tasks"
	case ViewAppliances:
		return "Appliances"
	case ViewIssues:
		return "Issues"
	case ViewSeasonal:
		return "Seasonal"
	case ViewHurricane:
		return "Hurricane"
	case ViewKnowledge:
		return "Knowledge"
	case ViewOnboarding:
		return "Welcome"
	default:
		return "Unknown"
	}
}

// Messages for inter-component communication

// SwitchViewMsg requests a view change
type SwitchViewMsg struct {
	View View
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// ThemeChangedMsg indicates the theme was changed
type ThemeChangedMsg struct {
	ThemeName string
}

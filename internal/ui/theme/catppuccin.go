package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin theme - Soothing pastel theme (Mocha variant)
// https://github.com/catppuccin/catppuccin
var Catppuccin = Theme{
	Name: "catppuccin",

	// Background colors (Mocha)
	Background: lipgloss.Color("#1E1E2E"),
	Foreground: lipgloss.Color("#CDD6F4"),
	Subtle:     lipgloss.Color("#6C7086"),
	Highlight:  lipgloss.Color("#313244"),
	Border:     lipgloss.Color("#45475A"),

	// Primary colors
	Primary:   lipgloss.Color("#89B4FA"), // Blue
	Secondary: lipgloss.Color("#CBA6F7"), // Mauve
	Info:      lipgloss.Color("#74C7EC"), // Sapphire

	// Semantic colors
	Success: lipgloss.Color("#A6E3A1"), // Green
	Warning: lipgloss.Color("#F9E2AF"), // Yellow
	Error:   lipgloss.Color("#F38BA8"), // Red

	// Priority colors
	PriorityLow:      lipgloss.Color("#A6E3A1"), // Green
	PriorityMedium:   lipgloss.Color("#F9E2AF"), // Yellow
	PriorityHigh:     lipgloss.Color("#FAB387"), // Peach
	PriorityCritical: lipgloss.Color("#F38BA8"), // Red

	// Issue severity
	SeverityMinor:    lipgloss.Color("#A6E3A1"), // Green
	SeverityModerate: lipgloss.Color("#F9E2AF"), // Yellow
	SeverityMajor:    lipgloss.Color("#FAB387"), // Peach
	SeverityCritical: lipgloss.Color("#F38BA8"), // Red

	// Task status
	StatusNotStarted: lipgloss.Color("#F9E2AF"), // Yellow
	StatusInProgress: lipgloss.Color("#89B4FA"), // Blue
	StatusCompleted:  lipgloss.Color("#A6E3A1"), // Green
	StatusDeferred:   lipgloss.Color("#6C7086"), // Overlay0

	// Due-soon urgency
	UrgencyOverdue:  lipgloss.Color("#F38BA8"), // Red
	UrgencyToday:    lipgloss.Color("#F9E2AF"), // Yellow
	UrgencyUpcoming: lipgloss.Color("#A6E3A1"), // Green
}

package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Item actions
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Toggle   key.Binding
	Start    key.Binding
	Defer    key.Binding
	Resolve  key.Binding
	Restore  key.Binding
	Restart  key.Binding

	// Views
	DashboardView  key.Binding
	TasksView      key.Binding
	AppliancesView key.Binding
	IssuesView     key.Binding
	SeasonalView   key.Binding
	HurricaneView  key.Binding
	KnowledgeView  key.Binding

	// Power user
	Help       key.Binding
	ThemeCycle key.Binding

	// General
	Quit    key.Binding
	Back    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "page down"),
		),

		// Item actions
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "toggle done"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Defer: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "defer"),
		),
		Resolve: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "resolve"),
		),
		Restore: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "restore defaults"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "restart all"),
		),

		// Views
		DashboardView: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		TasksView: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "tasks"),
		),
		AppliancesView: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "appliances"),
		),
		IssuesView: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "issues"),
		),
		SeasonalView: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "seasonal"),
		),
		HurricaneView: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "hurricane"),
		),
		KnowledgeView: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7", "knowledge"),
		),

		// Power user
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ThemeCycle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
		),

		// General
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("escape"),
			key.WithHelp("esc", "back"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("escape"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns short help bindings (for status bar)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns full help bindings (for help view)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Add, k.Edit, k.Delete, k.Toggle},
		{k.Start, k.Defer, k.Resolve},
		{k.DashboardView, k.TasksView, k.AppliancesView, k.IssuesView},
		{k.SeasonalView, k.HurricaneView, k.KnowledgeView},
		{k.Help, k.Quit},
	}
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/homekeep/internal/app"
	"github.com/dori/homekeep/internal/ui/theme"
	"github.com/dori/homekeep/internal/ui/views"
)

// RootModel is the main application model that manages views
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	currentView    View
	dashboardView  views.DashboardView
	tasksView      views.TasksView
	appliancesView views.AppliancesView
	issuesView     views.IssuesView
	seasonalView   views.SeasonalView
	hurricaneView  views.HurricaneView
	knowledgeView  views.KnowledgeView
	onboardingView views.OnboardingView
	helpVisible    bool

	// Status message
	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App) RootModel {
	h := help.New()
	h.ShowAll = false

	mgr := application.Manager

	start := ViewDashboard
	if !mgr.FirstRunCompleted() {
		start = ViewOnboarding
	}

	return RootModel{
		app:            application,
		keys:           DefaultKeyMap(),
		help:           h,
		currentView:    start,
		dashboardView:  views.NewDashboardView(mgr),
		tasksView:      views.NewTasksView(mgr),
		appliancesView: views.NewAppliancesView(mgr),
		issuesView:     views.NewIssuesView(mgr),
		seasonalView:   views.NewSeasonalView(mgr),
		hurricaneView:  views.NewHurricaneView(mgr),
		knowledgeView:  views.NewKnowledgeView(mgr),
		onboardingView: views.NewOnboardingView(mgr),
	}
}

// SetStartView overrides the initial view, unless first-run setup is pending
func (m RootModel) SetStartView(v View) RootModel {
	if m.currentView != ViewOnboarding {
		m.currentView = v
	}
	return m
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	switch m.currentView {
	case ViewOnboarding:
		return m.onboardingView.Init()
	default:
		return m.dashboardView.Init()
	}
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header (2 lines) and footer (2 lines)
		contentHeight := m.height - 4
		m.dashboardView = m.dashboardView.SetSize(m.width, contentHeight)
		m.tasksView = m.tasksView.SetSize(m.width, contentHeight)
		m.appliancesView = m.appliancesView.SetSize(m.width, contentHeight)
		m.issuesView = m.issuesView.SetSize(m.width, contentHeight)
		m.seasonalView = m.seasonalView.SetSize(m.width, contentHeight)
		m.hurricaneView = m.hurricaneView.SetSize(m.width, contentHeight)
		m.knowledgeView = m.knowledgeView.SetSize(m.width, contentHeight)
		m.onboardingView = m.onboardingView.SetSize(m.width, contentHeight)

	case tea.KeyMsg:
		// Clear status/error on any keypress
		m.statusMsg = ""
		m.errorMsg = ""

		isInputMode := m.isInputMode()

		// Global keybindings
		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, but 'q' only quits when not in input mode
			if msg.String() == "ctrl+c" || !isInputMode {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.ThemeCycle):
			m.cycleTheme()
			return m, nil
		}

		// Skip other global keys when in input mode
		if isInputMode {
			break
		}

		// First-run setup must finish before the other views open
		if m.currentView == ViewOnboarding {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
			m.help.ShowAll = m.helpVisible
			return m, nil

		// View switching (1-7 keys)
		case key.Matches(msg, m.keys.DashboardView):
			m.currentView = ViewDashboard
			return m, m.dashboardView.Init() // Recompute KPIs on every activation
		case key.Matches(msg, m.keys.TasksView):
			m.currentView = ViewTasks
			return m, m.tasksView.Init()
		case key.Matches(msg, m.keys.AppliancesView):
			m.currentView = ViewAppliances
			return m, m.appliancesView.Init()
		case key.Matches(msg, m.keys.IssuesView):
			m.currentView = ViewIssues
			return m, m.issuesView.Init()
		case key.Matches(msg, m.keys.SeasonalView):
			m.currentView = ViewSeasonal
			return m, m.seasonalView.Init() // Sweeps expired done-states
		case key.Matches(msg, m.keys.HurricaneView):
			m.currentView = ViewHurricane
			return m, m.hurricaneView.Init()
		case key.Matches(msg, m.keys.KnowledgeView):
			m.currentView = ViewKnowledge
			return m, m.knowledgeView.Init()
		}

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case ThemeChangedMsg:
		m.statusMsg = fmt.Sprintf("Theme: %s", msg.ThemeName)
		return m, nil

	case views.OpenTaskRequest:
		m.currentView = ViewTasks
		m.tasksView = m.tasksView.FocusTask(msg.TaskID)
		return m, m.tasksView.Init()

	case views.SetupDoneMsg:
		m.currentView = ViewDashboard
		m.statusMsg = "Welcome! Setup complete."
		return m, m.dashboardView.Init()
	}

	// Delegate to current view
	switch m.currentView {
	case ViewDashboard:
		newView, cmd := m.dashboardView.Update(msg)
		m.dashboardView = newView.(views.DashboardView)
		cmds = append(cmds, cmd)
	case ViewTasks:
		newView, cmd := m.tasksView.Update(msg)
		m.tasksView = newView.(views.TasksView)
		cmds = append(cmds, cmd)
	case ViewAppliances:
		newView, cmd := m.appliancesView.Update(msg)
		m.appliancesView = newView.(views.AppliancesView)
		cmds = append(cmds, cmd)
	case ViewIssues:
		newView, cmd := m.issuesView.Update(msg)
		m.issuesView = newView.(views.IssuesView)
		cmds = append(cmds, cmd)
	case ViewSeasonal:
		newView, cmd := m.seasonalView.Update(msg)
		m.seasonalView = newView.(views.SeasonalView)
		cmds = append(cmds, cmd)
	case ViewHurricane:
		newView, cmd := m.hurricaneView.Update(msg)
		m.hurricaneView = newView.(views.HurricaneView)
		cmds = append(cmds, cmd)
	case ViewKnowledge:
		newView, cmd := m.knowledgeView.Update(msg)
		m.knowledgeView = newView.(views.KnowledgeView)
		cmds = append(cmds, cmd)
	case ViewOnboarding:
		newView, cmd := m.onboardingView.Update(msg)
		m.onboardingView = newView.(views.OnboardingView)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// isInputMode reports whether the current view is capturing text input
func (m RootModel) isInputMode() bool {
	switch m.currentView {
	case ViewDashboard:
		return m.dashboardView.IsInputMode()
	case ViewTasks:
		return m.tasksView.IsInputMode()
	case ViewAppliances:
		return m.appliancesView.IsInputMode()
	case ViewIssues:
		return m.issuesView.IsInputMode()
	case ViewSeasonal:
		return m.seasonalView.IsInputMode()
	case ViewHurricane:
		return m.hurricaneView.IsInputMode()
	case ViewKnowledge:
		return m.knowledgeView.IsInputMode()
	case ViewOnboarding:
		return m.onboardingView.IsInputMode()
	}
	return false
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	styles := theme.Current.Styles
	var sections []string

	sections = append(sections, m.renderHeader())

	// Content area
	// Reserve: 1 line for header + 3 lines for footer (status + 2 hint lines)
	contentHeight := m.height - 4
	if m.errorMsg != "" || m.statusMsg != "" {
		contentHeight-- // Extra line for status message
	}
	var content string

	if m.helpVisible {
		content = m.renderHelp()
	} else {
		switch m.currentView {
		case ViewDashboard:
			content = m.dashboardView.View()
		case ViewTasks:
			content = m.tasksView.View()
		case ViewAppliances:
			content = m.appliancesView.View()
		case ViewIssues:
			content = m.issuesView.View()
		case ViewSeasonal:
			content = m.seasonalView.View()
		case ViewHurricane:
			content = m.hurricaneView.View()
		case ViewKnowledge:
			content = m.knowledgeView.View()
		case ViewOnboarding:
			content = m.onboardingView.View()
		default:
			content = styles.Panel.Render("View not implemented")
		}
	}

	// Ensure content fills available space
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("homekeep")

	viewStyle := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 1)
	viewIndicator := viewStyle.Render(fmt.Sprintf("[%s]", m.currentView.String()))

	themeIndicator := viewStyle.Render(fmt.Sprintf("theme: %s", t.Name))

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, viewIndicator)
	rightSide := themeIndicator

	gap := m.width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if gap < 0 {
		gap = 0
	}

	return leftSide + strings.Repeat(" ", gap) + rightSide
}

// renderFooter renders the footer/status bar
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	key := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.HelpSeparator.Render(" │ ")

	var statusLine string
	if m.errorMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Error).Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Info).Render(m.statusMsg)
	}

	var line1, line2 string

	if m.isInputMode() {
		line1 = key("enter", "confirm") + sep + key("esc", "cancel")
	} else {
		switch m.currentView {
		case ViewDashboard:
			line1 = key("j/k", "navigate") + sep +
				key("enter", "open task") + sep +
				key("r", "refresh")
			line2 = key("1-7", "views") + sep +
				key("ctrl+t", "theme") + sep +
				key("?", "help")

		case ViewTasks:
			line1 = key("a", "add") + sep +
				key("enter", "edit") + sep +
				key("tab", "complete") + sep +
				key("s", "start") + sep +
				key("z", "defer") + sep +
				key("d", "del")
			line2 = key("p", "priority") + sep +
				key("r", "recur") + sep +
				key("+/-", "due") + sep +
				key("f", "filter status") + sep +
				key("?", "help")

		case ViewAppliances:
			line1 = key("a", "add") + sep +
				key("enter", "edit name") + sep +
				key("d", "del")
			line2 = key("1-7", "views") + sep +
				key("ctrl+t", "theme") + sep +
				key("?", "help")

		case ViewIssues:
			line1 = key("a", "report") + sep +
				key("enter", "edit") + sep +
				key("x", "resolve") + sep +
				key("d", "del") + sep +
				key("p", "severity")
			line2 = key("h/l", "active/history") + sep +
				key("1-7", "views") + sep +
				key("?", "help")

		case ViewSeasonal:
			line1 = key("h/l", "seasons") + sep +
				key("space", "toggle done") + sep +
				key("a", "add") + sep +
				key("enter", "rename") + sep +
				key("d", "del")
			line2 = key("R", "restore defaults") + sep +
				key("C-r", "restart all") + sep +
				key("1-7", "views") + sep +
				key("?", "help")

		case ViewHurricane:
			line1 = key("a", "add") + sep +
				key("d", "del") + sep +
				key("j/k", "navigate")
			line2 = key("1-7", "views") + sep +
				key("ctrl+t", "theme") + sep +
				key("?", "help")

		case ViewKnowledge:
			line1 = key("tab", "section") + sep +
				key("a", "add note") + sep +
				key("d", "del note")
			line2 = key("1-7", "views") + sep +
				key("ctrl+t", "theme") + sep +
				key("?", "help")

		case ViewOnboarding:
			line1 = key("enter", "next") + sep + key("esc", "back")

		default:
			line1 = key("1-7", "views") + sep + key("?", "help")
		}
	}

	var lines []string
	if statusLine != "" {
		lines = append(lines, statusLine)
	}
	if line1 != "" {
		lines = append(lines, line1)
	}
	if line2 != "" {
		lines = append(lines, line2)
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the help overlay
func (m RootModel) renderHelp() string {
	t := theme.Current.Theme

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Secondary).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Subtle)

	var b strings.Builder

	b.WriteString(titleStyle.Render("Homekeep Help"))
	b.WriteString("\n\n")

	section := func(title string, pairs [][]string) {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		for _, kv := range pairs {
			b.WriteString(keyStyle.Render(kv[0]))
			b.WriteString(descStyle.Render(kv[1]))
			b.WriteString("\n")
		}
	}

	section("Navigation", [][]string{
		{"↑/k ↓/j", "Navigate up/down"},
		{"g / G", "Go to top/bottom"},
		{"h / l", "Switch tabs/seasons"},
	})

	section("Tasks", [][]string{
		{"a", "Add new task"},
		{"enter", "Edit task"},
		{"tab", "Mark complete (recurring tasks reschedule)"},
		{"s", "Start task"},
		{"z", "Defer task"},
		{"p", "Cycle priority"},
		{"r", "Cycle recurrence"},
		{"+ / -", "Nudge due date by a day"},
		{"d", "Delete task"},
	})

	section("Issues", [][]string{
		{"a", "Report a new issue"},
		{"x", "Resolve (moves to history)"},
		{"p", "Cycle severity"},
		{"d", "Delete issue"},
	})

	section("Checklists", [][]string{
		{"space", "Toggle item done (restarts after 30 days)"},
		{"R", "Restore default items"},
		{"ctrl+r", "Restart every item now"},
	})

	section("Views", [][]string{
		{"1", "Dashboard"},
		{"2", "Tasks"},
		{"3", "Appliances"},
		{"4", "Issues"},
		{"5", "Seasonal checklists"},
		{"6", "Hurricane prep"},
		{"7", "Knowledge base"},
	})

	section("System", [][]string{
		{"ctrl+t", "Cycle theme"},
		{"?", "Toggle this help"},
		{"q / ctrl+c", "Quit"},
	})

	b.WriteString("\n")
	b.WriteString(descStyle.Render("Press ? or esc to close"))

	return b.String()
}

// cycleTheme cycles through available themes
func (m *RootModel) cycleTheme() {
	themes := theme.Available()
	current := theme.Current.Theme.Name

	for i, t := range themes {
		if t.Name == current {
			next := themes[(i+1)%len(themes)]
			theme.SetTheme(next)
			m.statusMsg = fmt.Sprintf("Theme: %s", next.Name)
			return
		}
	}
}

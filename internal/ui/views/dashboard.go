package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/homekeep/internal/maint"
	"github.com/dori/homekeep/internal/ui/theme"
)

// DashboardView shows the home health summary: KPI counts, the due-soon
// list, and the next trash pickup. Everything is recomputed on activation.
type DashboardView struct {
	mgr    *maint.Manager
	width  int
	height int

	data   maint.Dashboard
	cursor int
}

// NewDashboardView creates a new dashboard view
func NewDashboardView(mgr *maint.Manager) DashboardView {
	return DashboardView{mgr: mgr}
}

// Init recomputes the dashboard
func (v DashboardView) Init() tea.Cmd {
	return func() tea.Msg {
		return dashboardLoadedMsg{data: v.mgr.Dashboard()}
	}
}

type dashboardLoadedMsg struct {
	data maint.Dashboard
}

// SetSize sets the view dimensions
func (v DashboardView) SetSize(width, height int) DashboardView {
	v.width = width
	v.height = height
	return v
}

// Update handles messages
func (v DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.data = msg.data
		if v.cursor >= len(v.data.DueSoon) {
			v.cursor = 0
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if v.cursor < len(v.data.DueSoon)-1 {
				v.cursor++
			}
			return v, nil
		case "k", "up":
			if v.cursor > 0 {
				v.cursor--
			}
			return v, nil
		case "g":
			v.cursor = 0
			return v, nil
		case "G":
			if n := len(v.data.DueSoon); n > 0 {
				v.cursor = n - 1
			}
			return v, nil
		case "r":
			return v, v.Init()
		case "enter":
			if v.cursor < len(v.data.DueSoon) {
				item := v.data.DueSoon[v.cursor]
				return v, func() tea.Msg {
					return OpenTaskRequest{TaskID: item.TaskID}
				}
			}
			return v, nil
		}
	}

	return v, nil
}

// OpenTaskRequest asks the root model to open a task in the tasks view
type OpenTaskRequest struct {
	TaskID string
}

// View renders the dashboard
func (v DashboardView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	t := theme.Current.Theme

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	header := titleStyle.Render("Home Dashboard")
	if addr := v.mgr.Property.Address; addr != "" {
		header += lipgloss.NewStyle().Foreground(t.Subtle).Render("  " + addr)
	}
	if v.mgr.Property.HasPool {
		badge := lipgloss.NewStyle().Foreground(t.Info).Render(" [pool]")
		header += badge
	}
	sections = append(sections, header)
	sections = append(sections, "")

	// KPI cards
	cardStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2).
		Width(18)

	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	alertStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	labelStyle := lipgloss.NewStyle().Foreground(t.Subtle)

	card := func(value, label string, alert bool) string {
		vs := valueStyle
		if alert {
			vs = alertStyle
		}
		return cardStyle.Render(vs.Render(value) + "\n" + labelStyle.Render(label))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card(fmt.Sprintf("%d", v.data.ActiveTasks), "Active Tasks", false),
		card(fmt.Sprintf("%d", v.data.OverdueTasks), "Overdue", v.data.OverdueTasks > 0),
		card(fmt.Sprintf("%d", v.data.CriticalApplianceIssues), "Critical", v.data.CriticalApplianceIssues > 0),
		card(fmt.Sprintf("%d", v.data.TotalIssues), "Total Issues", false),
	)
	sections = append(sections, cards)
	sections = append(sections, "")

	// Trash pickup line
	if v.data.NextTrashPickup != nil {
		pickup := v.data.NextTrashPickup
		line := labelStyle.Render("Next trash pickup: ") +
			lipgloss.NewStyle().Foreground(t.Info).Render(pickup.Format("Monday, January 2"))
		sections = append(sections, line)
		sections = append(sections, "")
	}

	sections = append(sections, v.renderDueSoon())

	return strings.Join(sections, "\n")
}

// renderDueSoon renders the due-soon list with urgency coloring
func (v DashboardView) renderDueSoon() string {
	t := theme.Current.Theme

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Secondary)

	var lines []string
	lines = append(lines, headerStyle.Render("Due Soon"))

	if len(v.data.DueSoon) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)
		lines = append(lines, empty.Render("  Nothing due. Nice work."))
		return strings.Join(lines, "\n")
	}

	for i, item := range v.data.DueSoon {
		var tagColor lipgloss.Color
		switch item.Urgency {
		case maint.UrgencyOverdue:
			tagColor = t.UrgencyOverdue
		case maint.UrgencyToday:
			tagColor = t.UrgencyToday
		default:
			tagColor = t.UrgencyUpcoming
		}

		tag := lipgloss.NewStyle().Foreground(tagColor).Render(item.DueTag)

		title := item.Title
		maxLen := v.width - lipgloss.Width(item.DueTag) - 8
		if maxLen > 3 && len(title) > maxLen {
			title = title[:maxLen-3] + "..."
		}

		rowStyle := lipgloss.NewStyle().Padding(0, 1)
		if i == v.cursor {
			rowStyle = rowStyle.Background(t.Highlight).Bold(true)
		}

		lines = append(lines, rowStyle.Render(fmt.Sprintf("%-*s %s", v.width-lipgloss.Width(tag)-6, title, tag)))
	}

	return strings.Join(lines, "\n")
}

// IsInputMode returns whether the view is in input mode
func (v DashboardView) IsInputMode() bool {
	return false
}

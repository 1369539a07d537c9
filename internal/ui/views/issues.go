package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/homekeep/internal/maint"
	"github.com/dori/homekeep/internal/model"
	"github.com/dori/homekeep/internal/ui/theme"
)

// IssueMode represents the input state of the issues view
type IssueMode int

const (
	IssueModeNormal IssueMode = iota
	IssueModeAdd
	IssueModeEdit
	IssueModeFixNotes
	IssueModeConfirmDelete
)

// IssueTab selects between active issues and the resolved history
type IssueTab int

const (
	TabActive IssueTab = iota
	TabHistory
)

// IssuesView tracks active problems and the resolved history
type IssuesView struct {
	mgr    *maint.Manager
	width  int
	height int

	tab    IssueTab
	cursor int

	mode      IssueMode
	input     textinput.Model
	editingID string
	deleteID  string
	resolveID string

	statusMsg string
}

// NewIssuesView creates a new issues view
func NewIssuesView(mgr *maint.Manager) IssuesView {
	ti := textinput.New()
	ti.Placeholder = "What's wrong?"
	ti.CharLimit = 256

	return IssuesView{
		mgr:   mgr,
		input: ti,
	}
}

// Init initializes the issues view
func (v IssuesView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v IssuesView) SetSize(width, height int) IssuesView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// IsInputMode returns true when the view is capturing text input
func (v IssuesView) IsInputMode() bool {
	return v.mode != IssueModeNormal
}

// visibleIssues returns the issues for the active tab
func (v IssuesView) visibleIssues() []model.Issue {
	if v.tab == TabHistory {
		return v.mgr.History
	}
	return v.mgr.Issues
}

// currentIssue returns the issue under the cursor
func (v IssuesView) currentIssue() *model.Issue {
	issues := v.visibleIssues()
	if len(issues) == 0 || v.cursor >= len(issues) {
		return nil
	}
	return &issues[v.cursor]
}

// Update handles messages
func (v IssuesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch v.mode {
	case IssueModeAdd, IssueModeEdit, IssueModeFixNotes:
		return v.updateInput(keyMsg)
	case IssueModeConfirmDelete:
		return v.updateConfirmDelete(keyMsg)
	}

	switch keyMsg.String() {
	case "j", "down":
		if v.cursor < len(v.visibleIssues())-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g":
		v.cursor = 0
	case "G":
		if n := len(v.visibleIssues()); n > 0 {
			v.cursor = n - 1
		}

	case "h", "left":
		v.tab = TabActive
		v.cursor = 0
	case "l", "right":
		v.tab = TabHistory
		v.cursor = 0

	case "a":
		if v.tab == TabActive {
			v.mode = IssueModeAdd
			v.input.Placeholder = "What's wrong?"
			v.input.SetValue("")
			v.input.Focus()
			return v, textinput.Blink
		}

	case "enter":
		if i := v.currentIssue(); i != nil {
			v.mode = IssueModeEdit
			v.editingID = i.ID
			v.input.Placeholder = "Issue title"
			v.input.SetValue(i.Title)
			v.input.Focus()
			return v, textinput.Blink
		}

	case "x":
		if v.tab == TabActive {
			if i := v.currentIssue(); i != nil {
				// Capture fix notes before the issue moves to history
				v.mode = IssueModeFixNotes
				v.resolveID = i.ID
				v.input.Placeholder = "How was it fixed? (optional)"
				v.input.SetValue(i.FixNotes)
				v.input.Focus()
				return v, textinput.Blink
			}
		}

	case "p":
		if i := v.currentIssue(); i != nil {
			updated := *i
			updated.Severity = nextSeverity(i.Severity)
			v.mgr.UpdateIssue(updated)
		}

	case "d":
		if i := v.currentIssue(); i != nil {
			v.mode = IssueModeConfirmDelete
			v.deleteID = i.ID
		}
	}

	return v, nil
}

func (v IssuesView) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(v.input.Value())

		switch v.mode {
		case IssueModeAdd:
			if text != "" {
				created := v.mgr.AddIssue(model.Issue{Title: text})
				v.statusMsg = fmt.Sprintf("Reported %q", created.Title)
			}
		case IssueModeEdit:
			if text != "" {
				if i := v.mgr.Issue(v.editingID); i != nil {
					updated := *i
					updated.Title = text
					v.mgr.UpdateIssue(updated)
				}
			}
		case IssueModeFixNotes:
			if i := v.mgr.Issue(v.resolveID); i != nil {
				if text != "" {
					updated := *i
					updated.FixNotes = text
					v.mgr.UpdateIssue(updated)
				}
				v.mgr.ResolveIssue(v.resolveID)
				v.statusMsg = "Issue resolved and archived"
				if v.cursor >= len(v.mgr.Issues) && v.cursor > 0 {
					v.cursor--
				}
			}
			v.resolveID = ""
		}

		v.mode = IssueModeNormal
		v.input.Blur()
		return v, nil

	case "esc":
		v.mode = IssueModeNormal
		v.resolveID = ""
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v IssuesView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		v.mgr.DeleteIssue(v.deleteID)
		v.statusMsg = "Issue deleted"
		v.mode = IssueModeNormal
		v.deleteID = ""
		if v.cursor >= len(v.visibleIssues()) && v.cursor > 0 {
			v.cursor--
		}
	case "n", "N", "esc":
		v.mode = IssueModeNormal
		v.deleteID = ""
	}
	return v, nil
}

// nextSeverity cycles minor -> moderate -> major -> critical -> minor
func nextSeverity(s model.Severity) model.Severity {
	switch s {
	case model.SeverityMinor:
		return model.SeverityModerate
	case model.SeverityModerate:
		return model.SeverityMajor
	case model.SeverityMajor:
		return model.SeverityCritical
	default:
		return model.SeverityMinor
	}
}

// View renders the issues view
func (v IssuesView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	t := theme.Current.Theme

	var sections []string

	sections = append(sections, v.renderTabs())

	switch v.mode {
	case IssueModeAdd, IssueModeEdit, IssueModeFixNotes:
		sections = append(sections, theme.Current.Styles.InputFocused.Render(v.input.View()))
	case IssueModeConfirmDelete:
		confirm := lipgloss.NewStyle().Foreground(t.Error).Bold(true)
		sections = append(sections, confirm.Render("Delete this issue? (y/n)"))
	}

	sections = append(sections, "")

	issues := v.visibleIssues()
	if len(issues) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)
		if v.tab == TabActive {
			sections = append(sections, empty.Render("  No active issues. Press 'a' to report one."))
		} else {
			sections = append(sections, empty.Render("  Nothing resolved yet."))
		}
	} else {
		for i, issue := range issues {
			sections = append(sections, v.renderIssue(issue, i == v.cursor))
		}
	}

	if v.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().Foreground(t.Info).MarginTop(1)
		sections = append(sections, statusStyle.Render(v.statusMsg))
	}

	return strings.Join(sections, "\n")
}

// renderTabs renders the Active/History tab bar
func (v IssuesView) renderTabs() string {
	t := theme.Current.Theme

	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.Subtle).Padding(0, 1)

	active := fmt.Sprintf("Active (%d)", len(v.mgr.Issues))
	history := fmt.Sprintf("History (%d)", len(v.mgr.History))

	if v.tab == TabActive {
		return activeStyle.Render(active) + inactiveStyle.Render(history)
	}
	return inactiveStyle.Render(active) + activeStyle.Render(history)
}

// renderIssue renders one issue row with its detail line
func (v IssuesView) renderIssue(issue model.Issue, isCursor bool) string {
	t := theme.Current.Theme

	var sevColor lipgloss.Color
	switch issue.Severity {
	case model.SeverityCritical:
		sevColor = t.SeverityCritical
	case model.SeverityMajor:
		sevColor = t.SeverityMajor
	case model.SeverityModerate:
		sevColor = t.SeverityModerate
	default:
		sevColor = t.SeverityMinor
	}
	sev := lipgloss.NewStyle().Foreground(sevColor).Bold(true).Render(strings.ToUpper(string(issue.Severity)))

	dateStr := issue.ReportedOn.Format("Jan 2")
	if issue.Resolved && issue.ResolvedOn != nil {
		dateStr = "resolved " + issue.ResolvedOn.Format("Jan 2")
	}
	date := lipgloss.NewStyle().Foreground(t.Subtle).Render(dateStr)

	applianceStr := ""
	if issue.ApplianceID != nil {
		if name := v.mgr.ApplianceName(issue.ApplianceID); name != "" {
			applianceStr = lipgloss.NewStyle().Foreground(t.Secondary).Render("  [" + name + "]")
		}
	}

	line := fmt.Sprintf("%s  %s%s  %s", sev, issue.Title, applianceStr, date)

	rowStyle := lipgloss.NewStyle().Padding(0, 1)
	if isCursor {
		rowStyle = rowStyle.Background(t.Highlight).Bold(true)
	}
	rendered := rowStyle.Render(line)

	// Detail line under the cursor row
	if isCursor {
		detail := issue.Location
		if issue.FixNotes != "" {
			if detail != "" {
				detail += " · "
			}
			detail += "fix: " + issue.FixNotes
		} else if issue.AttemptedSteps != "" {
			if detail != "" {
				detail += " · "
			}
			detail += "tried: " + issue.AttemptedSteps
		}
		if detail != "" {
			detailStyle := lipgloss.NewStyle().Foreground(t.Subtle).Padding(0, 3)
			rendered += "\n" + detailStyle.Render(detail)
		}
	}

	return rendered
}

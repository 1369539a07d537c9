package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/homekeep/internal/maint"
	"github.com/dori/homekeep/internal/ui/theme"
)

// KnowledgeSection selects a section of the knowledge view
type KnowledgeSection int

const (
	SectionNotes KnowledgeSection = iota
	SectionTools
	SectionUsefulLife
)

// String returns the display name for a section
func (s KnowledgeSection) String() string {
	switch s {
	case SectionTools:
		return "Toolbox"
	case SectionUsefulLife:
		return "Useful Life"
	default:
		return "Notes"
	}
}

// KnowledgeView holds the homeowner reference material: free-form notes,
// the recommended toolbox, and component useful-life estimates.
type KnowledgeView struct {
	mgr    *maint.Manager
	width  int
	height int

	section KnowledgeSection
	cursor  int
	adding  bool
	input   textinput.Model

	statusMsg string
}

// NewKnowledgeView creates a new knowledge view
func NewKnowledgeView(mgr *maint.Manager) KnowledgeView {
	ti := textinput.New()
	ti.Placeholder = "Note..."
	ti.CharLimit = 512

	return KnowledgeView{
		mgr:   mgr,
		input: ti,
	}
}

// Init initializes the knowledge view
func (v KnowledgeView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v KnowledgeView) SetSize(width, height int) KnowledgeView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// IsInputMode returns true when the view is capturing text input
func (v KnowledgeView) IsInputMode() bool {
	return v.adding
}

// sectionLen returns the row count of the current section
func (v KnowledgeView) sectionLen() int {
	switch v.section {
	case SectionTools:
		return len(v.mgr.Tools)
	case SectionUsefulLife:
		return len(v.mgr.UsefulLife)
	default:
		return len(v.mgr.Notes)
	}
}

// Update handles messages
func (v KnowledgeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.adding {
		switch keyMsg.String() {
		case "enter":
			text := strings.TrimSpace(v.input.Value())
			if text != "" {
				v.mgr.AddNote(text)
				v.statusMsg = "Note saved"
			}
			v.adding = false
			v.input.Blur()
			return v, nil
		case "esc":
			v.adding = false
			v.input.Blur()
			return v, nil
		}

		var cmd tea.Cmd
		v.input, cmd = v.input.Update(keyMsg)
		return v, cmd
	}

	switch keyMsg.String() {
	case "tab":
		v.section = (v.section + 1) % 3
		v.cursor = 0

	case "j", "down":
		if v.cursor < v.sectionLen()-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g":
		v.cursor = 0
	case "G":
		if n := v.sectionLen(); n > 0 {
			v.cursor = n - 1
		}

	case "a":
		if v.section == SectionNotes {
			v.adding = true
			v.input.SetValue("")
			v.input.Focus()
			return v, textinput.Blink
		}

	case "d":
		if v.section == SectionNotes && v.cursor < len(v.mgr.Notes) {
			v.mgr.RemoveNote(v.mgr.Notes[v.cursor])
			v.statusMsg = "Note removed"
			if v.cursor >= len(v.mgr.Notes) && v.cursor > 0 {
				v.cursor--
			}
		}
	}

	return v, nil
}

// View renders the knowledge view
func (v KnowledgeView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	t := theme.Current.Theme

	var sections []string

	// Section tab bar
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.Subtle).Padding(0, 1)

	var tabs []string
	for s := SectionNotes; s <= SectionUsefulLife; s++ {
		if s == v.section {
			tabs = append(tabs, activeStyle.Render(s.String()))
		} else {
			tabs = append(tabs, inactiveStyle.Render(s.String()))
		}
	}
	sections = append(sections, strings.Join(tabs, lipgloss.NewStyle().Foreground(t.Border).Render("│")))

	if v.adding {
		sections = append(sections, theme.Current.Styles.InputFocused.Render(v.input.View()))
	}

	sections = append(sections, "")

	switch v.section {
	case SectionNotes:
		sections = append(sections, v.renderNotes())
	case SectionTools:
		sections = append(sections, v.renderTools())
	case SectionUsefulLife:
		sections = append(sections, v.renderUsefulLife())
	}

	if v.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().Foreground(t.Info).MarginTop(1)
		sections = append(sections, statusStyle.Render(v.statusMsg))
	}

	return strings.Join(sections, "\n")
}

func (v KnowledgeView) renderNotes() string {
	t := theme.Current.Theme

	if len(v.mgr.Notes) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)
		return empty.Render("  No notes yet. Press 'a' to write one.")
	}

	var lines []string
	for i, note := range v.mgr.Notes {
		rowStyle := lipgloss.NewStyle().Padding(0, 1)
		if i == v.cursor {
			rowStyle = rowStyle.Background(t.Highlight).Bold(true)
		}
		lines = append(lines, rowStyle.Render("• "+note))
	}
	return strings.Join(lines, "\n")
}

func (v KnowledgeView) renderTools() string {
	t := theme.Current.Theme

	header := lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)
	lines := []string{header.Render("  Every homeowner's starter toolbox:"), ""}

	for i, tool := range v.mgr.Tools {
		rowStyle := lipgloss.NewStyle().Padding(0, 1)
		if i == v.cursor {
			rowStyle = rowStyle.Background(t.Highlight).Bold(true)
		}
		lines = append(lines, rowStyle.Render("• "+tool))
	}
	return strings.Join(lines, "\n")
}

func (v KnowledgeView) renderUsefulLife() string {
	t := theme.Current.Theme

	itemStyle := lipgloss.NewStyle().Width(32)
	lifeStyle := lipgloss.NewStyle().Foreground(t.Warning)

	var lines []string
	for i, row := range v.mgr.UsefulLife {
		rowStyle := lipgloss.NewStyle().Padding(0, 1)
		if i == v.cursor {
			rowStyle = rowStyle.Background(t.Highlight).Bold(true)
		}
		lines = append(lines, rowStyle.Render(
			itemStyle.Render(row.Item)+lifeStyle.Render(row.Life),
		))
	}

	if len(lines) == 0 {
		return ""
	}

	note := lipgloss.NewStyle().Foreground(t.Subtle).Italic(true).MarginTop(1)
	lines = append(lines, note.Render(fmt.Sprintf("Typical lifespans; climate and usage vary. %d components listed.", len(v.mgr.UsefulLife))))
	return strings.Join(lines, "\n")
}

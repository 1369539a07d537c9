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

// HurricaneView is the storm-prep checklist. Unlike the seasonal lists it
// has no done-state; it is a standing supply list.
type HurricaneView struct {
	mgr    *maint.Manager
	width  int
	height int

	cursor int
	adding bool
	input  textinput.Model

	statusMsg string
}

// NewHurricaneView creates a new hurricane prep view
func NewHurricaneView(mgr *maint.Manager) HurricaneView {
	ti := textinput.New()
	ti.Placeholder = "Prep item..."
	ti.CharLimit = 256

	return HurricaneView{
		mgr:   mgr,
		input: ti,
	}
}

// Init initializes the hurricane prep view
func (v HurricaneView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v HurricaneView) SetSize(width, height int) HurricaneView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// IsInputMode returns true when the view is capturing text input
func (v HurricaneView) IsInputMode() bool {
	return v.adding
}

// Update handles messages
func (v HurricaneView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.adding {
		switch keyMsg.String() {
		case "enter":
			text := strings.TrimSpace(v.input.Value())
			if text != "" {
				v.mgr.AddHurricaneItem(text)
				v.statusMsg = fmt.Sprintf("Added %q", text)
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
	case "j", "down":
		if v.cursor < len(v.mgr.Hurricane)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g":
		v.cursor = 0
	case "G":
		if n := len(v.mgr.Hurricane); n > 0 {
			v.cursor = n - 1
		}

	case "a":
		v.adding = true
		v.input.SetValue("")
		v.input.Focus()
		return v, textinput.Blink

	case "d":
		if v.cursor < len(v.mgr.Hurricane) {
			item := v.mgr.Hurricane[v.cursor]
			v.mgr.RemoveHurricaneItem(item)
			v.statusMsg = fmt.Sprintf("Removed %q", item)
			if v.cursor >= len(v.mgr.Hurricane) && v.cursor > 0 {
				v.cursor--
			}
		}
	}

	return v, nil
}

// View renders the hurricane prep view
func (v HurricaneView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	t := theme.Current.Theme

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	sections = append(sections, titleStyle.Render(fmt.Sprintf("Hurricane Prep (%d items)", len(v.mgr.Hurricane))))

	if v.adding {
		sections = append(sections, theme.Current.Styles.InputFocused.Render(v.input.View()))
	}

	sections = append(sections, "")

	if len(v.mgr.Hurricane) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)
		sections = append(sections, empty.Render("  Nothing on the list. Press 'a' to add an item."))
	} else {
		for i, item := range v.mgr.Hurricane {
			rowStyle := lipgloss.NewStyle().Padding(0, 1)
			if i == v.cursor {
				rowStyle = rowStyle.Background(t.Highlight).Bold(true)
			}
			sections = append(sections, rowStyle.Render("• "+item))
		}
	}

	if v.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().Foreground(t.Info).MarginTop(1)
		sections = append(sections, statusStyle.Render(v.statusMsg))
	}

	return strings.Join(sections, "\n")
}

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

// ChecklistMode represents the input state of the seasonal view
type ChecklistMode int

const (
	ChecklistModeNormal ChecklistMode = iota
	ChecklistModeAdd
	ChecklistModeRename
)

// SeasonalView shows the per-season maintenance checklists. Done items
// restart automatically after the configured number of days.
type SeasonalView struct {
	mgr    *maint.Manager
	width  int
	height int

	seasonIdx int
	cursor    int

	mode       ChecklistMode
	input      textinput.Model
	renameFrom string

	statusMsg string
}

// NewSeasonalView creates a new seasonal checklist view
func NewSeasonalView(mgr *maint.Manager) SeasonalView {
	ti := textinput.New()
	ti.Placeholder = "Checklist item..."
	ti.CharLimit = 256

	return SeasonalView{
		mgr:   mgr,
		input: ti,
	}
}

type checklistSweptMsg struct{}

// Init sweeps expired done-states so stale checkmarks restart on open
func (v SeasonalView) Init() tea.Cmd {
	return func() tea.Msg {
		v.mgr.SweepExpiredDone()
		return checklistSweptMsg{}
	}
}

// SetSize sets the view dimensions
func (v SeasonalView) SetSize(width, height int) SeasonalView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// IsInputMode returns true when the view is capturing text input
func (v SeasonalView) IsInputMode() bool {
	return v.mode != ChecklistModeNormal
}

// season returns the currently selected season
func (v SeasonalView) season() model.Season {
	return model.Seasons()[v.seasonIdx]
}

// items returns the current season's checklist
func (v SeasonalView) items() []string {
	return v.mgr.Checklist(v.season())
}

// currentItem returns the item under the cursor
func (v SeasonalView) currentItem() string {
	items := v.items()
	if len(items) == 0 || v.cursor >= len(items) {
		return ""
	}
	return items[v.cursor]
}

// Update handles messages
func (v SeasonalView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checklistSweptMsg:
		return v, nil

	case tea.KeyMsg:
		if v.mode != ChecklistModeNormal {
			return v.updateInput(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v SeasonalView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if v.cursor < len(v.items())-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g":
		v.cursor = 0
	case "G":
		if n := len(v.items()); n > 0 {
			v.cursor = n - 1
		}

	case "h", "left":
		v.seasonIdx--
		if v.seasonIdx < 0 {
			v.seasonIdx = len(model.Seasons()) - 1
		}
		v.cursor = 0
	case "l", "right":
		v.seasonIdx = (v.seasonIdx + 1) % len(model.Seasons())
		v.cursor = 0

	case " ", "tab":
		if item := v.currentItem(); item != "" {
			done := v.mgr.DoneOn(v.season(), item) != nil
			v.mgr.SetDone(v.season(), item, !done)
		}

	case "a":
		v.mode = ChecklistModeAdd
		v.input.SetValue("")
		v.input.Focus()
		return v, textinput.Blink

	case "enter":
		if item := v.currentItem(); item != "" {
			v.mode = ChecklistModeRename
			v.renameFrom = item
			v.input.SetValue(item)
			v.input.Focus()
			return v, textinput.Blink
		}

	case "d":
		if item := v.currentItem(); item != "" {
			v.mgr.RemoveChecklistItem(v.season(), item)
			v.statusMsg = fmt.Sprintf("Removed %q", item)
			if v.cursor >= len(v.items()) && v.cursor > 0 {
				v.cursor--
			}
		}

	case "R":
		added := v.mgr.RestoreDefaults(v.season())
		v.statusMsg = fmt.Sprintf("Restored %d default item(s)", added)

	case "ctrl+r":
		restarted := v.mgr.RestartAll(v.season())
		v.statusMsg = fmt.Sprintf("Restarted %d item(s)", restarted)
	}

	return v, nil
}

func (v SeasonalView) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(v.input.Value())
		if text != "" {
			switch v.mode {
			case ChecklistModeAdd:
				v.mgr.AddChecklistItem(v.season(), text)
				v.statusMsg = fmt.Sprintf("Added %q", text)
			case ChecklistModeRename:
				v.mgr.RenameChecklistItem(v.season(), v.renameFrom, text)
			}
		}
		v.mode = ChecklistModeNormal
		v.renameFrom = ""
		v.input.Blur()
		return v, nil

	case "esc":
		v.mode = ChecklistModeNormal
		v.renameFrom = ""
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the seasonal view
func (v SeasonalView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	t := theme.Current.Theme

	var sections []string

	sections = append(sections, v.renderSeasonTabs())

	if v.mode != ChecklistModeNormal {
		sections = append(sections, theme.Current.Styles.InputFocused.Render(v.input.View()))
	}

	sections = append(sections, "")

	items := v.items()
	if len(items) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)
		sections = append(sections, empty.Render("  Empty checklist. Press 'a' to add or 'R' to restore defaults."))
	} else {
		doneCount := 0
		for i, item := range items {
			doneOn := v.mgr.DoneOn(v.season(), item)

			checkbox := "[ ]"
			text := item
			if doneOn != nil {
				doneCount++
				checkbox = lipgloss.NewStyle().Foreground(t.Success).Render("[x]")
				text = lipgloss.NewStyle().Foreground(t.Subtle).Strikethrough(true).Render(item) +
					lipgloss.NewStyle().Foreground(t.Subtle).Render("  done "+doneOn.Format("Jan 2"))
			}

			rowStyle := lipgloss.NewStyle().Padding(0, 1)
			if i == v.cursor {
				rowStyle = rowStyle.Background(t.Highlight).Bold(true)
			}
			sections = append(sections, rowStyle.Render(checkbox+" "+text))
		}

		progress := lipgloss.NewStyle().Foreground(t.Subtle).MarginTop(1)
		sections = append(sections, progress.Render(fmt.Sprintf("%d of %d done", doneCount, len(items))))
	}

	if v.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().Foreground(t.Info).MarginTop(1)
		sections = append(sections, statusStyle.Render(v.statusMsg))
	}

	return strings.Join(sections, "\n")
}

// renderSeasonTabs renders the season tab bar
func (v SeasonalView) renderSeasonTabs() string {
	t := theme.Current.Theme

	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.Subtle).Padding(0, 1)

	var tabs []string
	for i, s := range model.Seasons() {
		if i == v.seasonIdx {
			tabs = append(tabs, activeStyle.Render(string(s)))
		} else {
			tabs = append(tabs, inactiveStyle.Render(string(s)))
		}
	}
	return strings.Join(tabs, lipgloss.NewStyle().Foreground(t.Border).Render("│"))
}

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

// ApplianceMode represents the input state of the appliances view
type ApplianceMode int

const (
	ApplianceModeNormal ApplianceMode = iota
	ApplianceModeName
	ApplianceModeType
	ApplianceModeEditName
	ApplianceModeConfirmDelete
)

// AppliancesView lists the home's tracked appliances
type AppliancesView struct {
	mgr    *maint.Manager
	width  int
	height int

	cursor int

	mode       ApplianceMode
	input      textinput.Model
	pendingName string
	typeCursor int
	editingID  string
	deleteID   string

	statusMsg string
}

// NewAppliancesView creates a new appliances view
func NewAppliancesView(mgr *maint.Manager) AppliancesView {
	ti := textinput.New()
	ti.Placeholder = "Appliance name..."
	ti.CharLimit = 128

	return AppliancesView{
		mgr:   mgr,
		input: ti,
	}
}

// Init initializes the appliances view
func (v AppliancesView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v AppliancesView) SetSize(width, height int) AppliancesView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// IsInputMode returns true when the view is capturing text input
func (v AppliancesView) IsInputMode() bool {
	return v.mode != ApplianceModeNormal
}

// Update handles messages
func (v AppliancesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch v.mode {
	case ApplianceModeName, ApplianceModeEditName:
		return v.updateNameInput(keyMsg)
	case ApplianceModeType:
		return v.updateTypePicker(keyMsg)
	case ApplianceModeConfirmDelete:
		return v.updateConfirmDelete(keyMsg)
	}

	switch keyMsg.String() {
	case "j", "down":
		if v.cursor < len(v.mgr.Appliances)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g":
		v.cursor = 0
	case "G":
		if n := len(v.mgr.Appliances); n > 0 {
			v.cursor = n - 1
		}

	case "a":
		v.mode = ApplianceModeName
		v.input.SetValue("")
		v.input.Focus()
		return v, textinput.Blink

	case "enter":
		if a := v.currentAppliance(); a != nil {
			v.mode = ApplianceModeEditName
			v.editingID = a.ID
			v.input.SetValue(a.Name)
			v.input.Focus()
			return v, textinput.Blink
		}

	case "d":
		if a := v.currentAppliance(); a != nil {
			v.mode = ApplianceModeConfirmDelete
			v.deleteID = a.ID
		}
	}

	return v, nil
}

func (v AppliancesView) updateNameInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(v.input.Value())
		if text == "" {
			v.mode = ApplianceModeNormal
			v.input.Blur()
			return v, nil
		}

		if v.mode == ApplianceModeEditName {
			if a := v.mgr.Appliance(v.editingID); a != nil {
				updated := *a
				updated.Name = text
				v.mgr.UpdateAppliance(updated)
			}
			v.mode = ApplianceModeNormal
			v.input.Blur()
			return v, nil
		}

		// New appliance: pick a type next
		v.pendingName = text
		v.typeCursor = 0
		v.mode = ApplianceModeType
		v.input.Blur()
		return v, nil

	case "esc":
		v.mode = ApplianceModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v AppliancesView) updateTypePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	types := model.ApplianceTypes()

	switch msg.String() {
	case "j", "down":
		if v.typeCursor < len(types)-1 {
			v.typeCursor++
		}
	case "k", "up":
		if v.typeCursor > 0 {
			v.typeCursor--
		}
	case "enter":
		created := v.mgr.AddAppliance(model.Appliance{
			Name: v.pendingName,
			Type: types[v.typeCursor],
		})
		v.statusMsg = fmt.Sprintf("Added %q", created.Name)
		v.mode = ApplianceModeNormal
		v.pendingName = ""
	case "esc":
		v.mode = ApplianceModeNormal
		v.pendingName = ""
	}

	return v, nil
}

func (v AppliancesView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		v.mgr.DeleteAppliance(v.deleteID)
		v.statusMsg = "Appliance removed"
		v.mode = ApplianceModeNormal
		v.deleteID = ""
		if v.cursor >= len(v.mgr.Appliances) && v.cursor > 0 {
			v.cursor--
		}
	case "n", "N", "esc":
		v.mode = ApplianceModeNormal
		v.deleteID = ""
	}
	return v, nil
}

// currentAppliance returns the appliance under the cursor
func (v AppliancesView) currentAppliance() *model.Appliance {
	if len(v.mgr.Appliances) == 0 || v.cursor >= len(v.mgr.Appliances) {
		return nil
	}
	return &v.mgr.Appliances[v.cursor]
}

// View renders the appliances view
func (v AppliancesView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	t := theme.Current.Theme

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	sections = append(sections, titleStyle.Render(fmt.Sprintf("Appliances (%d)", len(v.mgr.Appliances))))

	switch v.mode {
	case ApplianceModeName, ApplianceModeEditName:
		sections = append(sections, theme.Current.Styles.InputFocused.Render(v.input.View()))
	case ApplianceModeType:
		sections = append(sections, v.renderTypePicker())
	case ApplianceModeConfirmDelete:
		confirm := lipgloss.NewStyle().Foreground(t.Error).Bold(true)
		sections = append(sections, confirm.Render("Remove this appliance? Task and issue links will dangle. (y/n)"))
	}

	sections = append(sections, "")

	if len(v.mgr.Appliances) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)
		sections = append(sections, empty.Render("  No appliances tracked yet. Press 'a' to add one."))
	} else {
		today := v.mgr.Today()
		for i, a := range v.mgr.Appliances {
			typeStr := lipgloss.NewStyle().Foreground(t.Secondary).Render(string(a.Type))

			ageStr := ""
			if age := a.Age(today); age >= 0 {
				ageStr = lipgloss.NewStyle().Foreground(t.Subtle).Render(fmt.Sprintf("  %dy old", age))
			}

			locStr := ""
			if a.Location != "" {
				locStr = lipgloss.NewStyle().Foreground(t.Subtle).Render("  @" + a.Location)
			}

			line := fmt.Sprintf("%s  %s%s%s", a.Name, typeStr, ageStr, locStr)

			rowStyle := lipgloss.NewStyle().Padding(0, 1)
			if i == v.cursor {
				rowStyle = rowStyle.Background(t.Highlight).Bold(true)
			}
			sections = append(sections, rowStyle.Render(line))
		}
	}

	if v.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().Foreground(t.Info).MarginTop(1)
		sections = append(sections, statusStyle.Render(v.statusMsg))
	}

	return strings.Join(sections, "\n")
}

// renderTypePicker renders the appliance type selector
func (v AppliancesView) renderTypePicker() string {
	t := theme.Current.Theme

	var lines []string
	header := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	lines = append(lines, header.Render(fmt.Sprintf("Type for %q:", v.pendingName)))

	for i, at := range model.ApplianceTypes() {
		style := lipgloss.NewStyle().Padding(0, 2)
		if i == v.typeCursor {
			style = style.Background(t.Highlight).Bold(true)
		}
		lines = append(lines, style.Render(string(at)))
	}

	return strings.Join(lines, "\n")
}

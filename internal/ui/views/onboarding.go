package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/homekeep/internal/maint"
	"github.com/dori/homekeep/internal/ui/theme"
)

// SetupDoneMsg tells the root model that first-run setup finished
type SetupDoneMsg struct{}

// SetupStep is one page of the first-run wizard
type SetupStep int

const (
	StepAddress SetupStep = iota
	StepPool
	StepTrashDay
	StepDone
)

// OnboardingView walks a new user through the property basics: address,
// pool, and trash day. Answering the pool question seeds the pool care
// tasks immediately.
type OnboardingView struct {
	mgr    *maint.Manager
	width  int
	height int

	step  SetupStep
	input textinput.Model

	poolCursor int // 0 = no, 1 = yes
	dayCursor  int // 0 = no pickup, 1-7 = Monday..Sunday
}

// NewOnboardingView creates the first-run wizard
func NewOnboardingView(mgr *maint.Manager) OnboardingView {
	ti := textinput.New()
	ti.Placeholder = "123 Main St, Hometown"
	ti.CharLimit = 256
	ti.Focus()

	return OnboardingView{
		mgr:   mgr,
		input: ti,
	}
}

// Init initializes the wizard
func (v OnboardingView) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize sets the view dimensions
func (v OnboardingView) SetSize(width, height int) OnboardingView {
	v.width = width
	v.height = height
	v.input.Width = width - 8
	return v
}

// IsInputMode returns true while the address field is focused
func (v OnboardingView) IsInputMode() bool {
	return v.step == StepAddress
}

// setupDays lists the trash day choices in display order
func setupDays() []string {
	return []string{
		"No regular pickup",
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	}
}

// Update handles messages
func (v OnboardingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch v.step {
	case StepAddress:
		switch keyMsg.String() {
		case "enter":
			v.mgr.SetAddress(strings.TrimSpace(v.input.Value()))
			v.input.Blur()
			v.step = StepPool
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(keyMsg)
		return v, cmd

	case StepPool:
		switch keyMsg.String() {
		case "j", "down", "k", "up", "h", "left", "l", "right", "tab":
			v.poolCursor = 1 - v.poolCursor
		case "y", "Y":
			v.poolCursor = 1
		case "n", "N":
			v.poolCursor = 0
		case "enter":
			v.mgr.SetHasPool(v.poolCursor == 1)
			v.step = StepTrashDay
		case "esc":
			v.step = StepAddress
			v.input.Focus()
			return v, textinput.Blink
		}
		return v, nil

	case StepTrashDay:
		days := setupDays()
		switch keyMsg.String() {
		case "j", "down":
			if v.dayCursor < len(days)-1 {
				v.dayCursor++
			}
		case "k", "up":
			if v.dayCursor > 0 {
				v.dayCursor--
			}
		case "enter":
			if v.dayCursor == 0 {
				v.mgr.SetTrashDay(nil)
			} else {
				// Monday is index 1 in the picker, weekday 1 in time
				day := time.Weekday(v.dayCursor % 7)
				v.mgr.SetTrashDay(&day)
			}
			v.step = StepDone
		case "esc":
			v.step = StepPool
		}
		return v, nil

	case StepDone:
		switch keyMsg.String() {
		case "enter":
			v.mgr.SetFirstRunCompleted()
			return v, func() tea.Msg { return SetupDoneMsg{} }
		case "esc":
			v.step = StepTrashDay
		}
		return v, nil
	}

	return v, nil
}

// View renders the wizard
func (v OnboardingView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	t := theme.Current.Theme

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).MarginBottom(1)
	questionStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Secondary)
	subtleStyle := lipgloss.NewStyle().Foreground(t.Subtle)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to homekeep"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("Step %d of 4", int(v.step)+1)))
	b.WriteString("\n\n")

	switch v.step {
	case StepAddress:
		b.WriteString(questionStyle.Render("Where is your home?"))
		b.WriteString("\n\n")
		b.WriteString(theme.Current.Styles.InputFocused.Render(v.input.View()))
		b.WriteString("\n\n")
		b.WriteString(subtleStyle.Render("Leave blank to skip. Press enter to continue."))

	case StepPool:
		b.WriteString(questionStyle.Render("Do you have a pool?"))
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render("Pool care tasks and the pool checklist are added if you do."))
		b.WriteString("\n\n")
		options := []string{"No", "Yes"}
		for i, opt := range options {
			style := lipgloss.NewStyle().Padding(0, 2)
			if i == v.poolCursor {
				style = style.Background(t.Highlight).Bold(true)
			}
			b.WriteString(style.Render(opt))
			b.WriteString("\n")
		}

	case StepTrashDay:
		b.WriteString(questionStyle.Render("What day is trash pickup?"))
		b.WriteString("\n\n")
		for i, day := range setupDays() {
			style := lipgloss.NewStyle().Padding(0, 2)
			if i == v.dayCursor {
				style = style.Background(t.Highlight).Bold(true)
			}
			b.WriteString(style.Render(day))
			b.WriteString("\n")
		}

	case StepDone:
		b.WriteString(questionStyle.Render("All set!"))
		b.WriteString("\n\n")
		b.WriteString(subtleStyle.Render("A few starter tasks and seasonal checklists are ready for you."))
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render("Press enter to open the dashboard."))
	}

	panel := theme.Current.Styles.Panel.Width(min(v.width-4, 64))
	return panel.Render(b.String())
}

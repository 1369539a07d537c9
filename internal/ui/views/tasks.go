package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/homekeep/internal/maint"
	"github.com/dori/homekeep/internal/model"
	"github.com/dori/homekeep/internal/ui/theme"
)

// TaskMode represents the input state of the tasks view
type TaskMode int

const (
	TaskModeNormal TaskMode = iota
	TaskModeAdd
	TaskModeEdit
	TaskModeConfirmDelete
)

// TaskFilter selects which tasks are visible
type TaskFilter int

const (
	FilterAll TaskFilter = iota
	FilterNotStarted
	FilterInProgress
	FilterCompleted
	FilterDeferred
)

// String returns the display name for a filter
func (f TaskFilter) String() string {
	switch f {
	case FilterNotStarted:
		return "Not Started"
	case FilterInProgress:
		return "In Progress"
	case FilterCompleted:
		return "Completed"
	case FilterDeferred:
		return "Deferred"
	default:
		return "All"
	}
}

func (f TaskFilter) status() (model.Status, bool) {
	switch f {
	case FilterNotStarted:
		return model.StatusNotStarted, true
	case FilterInProgress:
		return model.StatusInProgress, true
	case FilterCompleted:
		return model.StatusCompleted, true
	case FilterDeferred:
		return model.StatusDeferred, true
	}
	return "", false
}

// TasksView displays and edits maintenance tasks
type TasksView struct {
	mgr    *maint.Manager
	width  int
	height int

	tasks        []model.Task // visible tasks after filtering and sorting
	cursor       int
	scrollOffset int

	mode      TaskMode
	input     textinput.Model
	editingID string
	deleteID  string
	filter    TaskFilter

	// Task to place the cursor on after the next reload
	focusTaskID string

	statusMsg string
}

// NewTasksView creates a new tasks view
func NewTasksView(mgr *maint.Manager) TasksView {
	ti := textinput.New()
	ti.Placeholder = "New task... (!high due:friday every:monthly)"
	ti.CharLimit = 256

	return TasksView{
		mgr:   mgr,
		input: ti,
	}
}

type tasksReloadMsg struct{}

// Init reloads the visible task list
func (v TasksView) Init() tea.Cmd {
	return func() tea.Msg { return tasksReloadMsg{} }
}

// FocusTask places the cursor on the given task after the next reload
func (v TasksView) FocusTask(id string) TasksView {
	v.focusTaskID = id
	return v
}

// SetSize updates the view dimensions
func (v TasksView) SetSize(width, height int) TasksView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// IsInputMode returns true when the view is capturing text input
func (v TasksView) IsInputMode() bool {
	return v.mode == TaskModeAdd || v.mode == TaskModeEdit || v.mode == TaskModeConfirmDelete
}

// reload rebuilds the visible list from the manager
func (v *TasksView) reload() {
	v.tasks = v.tasks[:0]
	status, filtered := v.filter.status()
	for _, t := range v.mgr.Tasks {
		if filtered && t.Status != status {
			continue
		}
		v.tasks = append(v.tasks, t)
	}

	// Dated tasks first, earliest due on top. Undated tasks sort by priority.
	sort.SliceStable(v.tasks, func(i, j int) bool {
		a, b := v.tasks[i], v.tasks[j]
		switch {
		case a.DueDate != nil && b.DueDate != nil:
			if !a.DueDate.Equal(*b.DueDate) {
				return a.DueDate.Before(*b.DueDate)
			}
			return a.PriorityWeight() > b.PriorityWeight()
		case a.DueDate != nil:
			return true
		case b.DueDate != nil:
			return false
		default:
			return a.PriorityWeight() > b.PriorityWeight()
		}
	})

	if v.focusTaskID != "" {
		for i, t := range v.tasks {
			if t.ID == v.focusTaskID {
				v.cursor = i
				break
			}
		}
		v.focusTaskID = ""
	}
	v.clampCursor()
}

func (v *TasksView) clampCursor() {
	if len(v.tasks) == 0 {
		v.cursor = 0
		v.scrollOffset = 0
		return
	}
	if v.cursor >= len(v.tasks) {
		v.cursor = len(v.tasks) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	v.ensureCursorVisible()
}

func (v TasksView) visibleCount() int {
	available := v.height - 5
	if available < 1 {
		available = 1
	}
	return available
}

func (v *TasksView) ensureCursorVisible() {
	visible := v.visibleCount()
	if v.cursor < v.scrollOffset {
		v.scrollOffset = v.cursor
	}
	if v.cursor >= v.scrollOffset+visible {
		v.scrollOffset = v.cursor - visible + 1
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

// currentTask returns the task under the cursor
func (v TasksView) currentTask() *model.Task {
	if len(v.tasks) == 0 || v.cursor >= len(v.tasks) {
		return nil
	}
	return &v.tasks[v.cursor]
}

// Update handles messages
func (v TasksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksReloadMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case TaskModeAdd, TaskModeEdit:
			return v.updateInput(msg)
		case TaskModeConfirmDelete:
			return v.updateConfirmDelete(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v TasksView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if v.cursor < len(v.tasks)-1 {
			v.cursor++
			v.ensureCursorVisible()
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
			v.ensureCursorVisible()
		}
	case "g":
		v.cursor = 0
		v.ensureCursorVisible()
	case "G":
		if len(v.tasks) > 0 {
			v.cursor = len(v.tasks) - 1
			v.ensureCursorVisible()
		}

	case "a":
		v.mode = TaskModeAdd
		v.input.SetValue("")
		v.input.Placeholder = "New task... (!high due:friday every:monthly)"
		v.input.Focus()
		return v, textinput.Blink

	case "enter":
		if t := v.currentTask(); t != nil {
			v.mode = TaskModeEdit
			v.editingID = t.ID
			v.input.SetValue(t.Title)
			v.input.Placeholder = "Task title"
			v.input.Focus()
			return v, textinput.Blink
		}

	case "tab":
		if t := v.currentTask(); t != nil {
			v.mgr.CompleteTask(t.ID)
			if t.IsRecurring() {
				v.statusMsg = fmt.Sprintf("Completed %q, rescheduled", t.Title)
			} else {
				v.statusMsg = fmt.Sprintf("Completed %q", t.Title)
			}
			v.reload()
		}

	case "s":
		if t := v.currentTask(); t != nil {
			v.mgr.StartTask(t.ID)
			v.reload()
		}

	case "z":
		if t := v.currentTask(); t != nil {
			v.mgr.DeferTask(t.ID)
			v.reload()
		}

	case "p":
		if t := v.currentTask(); t != nil {
			updated := *t
			updated.Priority = nextPriority(t.Priority)
			v.mgr.UpdateTask(updated)
			v.focusTaskID = updated.ID
			v.reload()
		}

	case "r":
		if t := v.currentTask(); t != nil {
			updated := *t
			updated.Recurrence = nextRecurrence(t.Recurrence)
			v.mgr.UpdateTask(updated)
			v.focusTaskID = updated.ID
			v.reload()
		}

	case "+", "=":
		v.nudgeDue(1)

	case "-":
		v.nudgeDue(-1)

	case "d":
		if t := v.currentTask(); t != nil {
			v.mode = TaskModeConfirmDelete
			v.deleteID = t.ID
		}

	case "f":
		v.filter = (v.filter + 1) % 5
		v.cursor = 0
		v.scrollOffset = 0
		v.reload()
	}

	return v, nil
}

func (v TasksView) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(v.input.Value())
		if text == "" {
			v.mode = TaskModeNormal
			v.input.Blur()
			return v, nil
		}

		switch v.mode {
		case TaskModeAdd:
			task := parseTaskInput(text, v.mgr.Today())
			created := v.mgr.AddTask(task)
			v.statusMsg = fmt.Sprintf("Added %q", created.Title)
			v.focusTaskID = created.ID
		case TaskModeEdit:
			if t := v.mgr.Task(v.editingID); t != nil {
				updated := *t
				updated.Title = text
				v.mgr.UpdateTask(updated)
				v.focusTaskID = updated.ID
			}
		}

		v.mode = TaskModeNormal
		v.input.Blur()
		v.reload()
		return v, nil

	case "esc":
		v.mode = TaskModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v TasksView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		v.mgr.DeleteTask(v.deleteID)
		v.statusMsg = "Task deleted"
		v.mode = TaskModeNormal
		v.deleteID = ""
		v.reload()
	case "n", "N", "esc":
		v.mode = TaskModeNormal
		v.deleteID = ""
	}
	return v, nil
}

// nudgeDue shifts the current task's due date by days. Nudging forward a
// task without a due date starts it at today; nudging backward is a no-op.
func (v *TasksView) nudgeDue(days int) {
	t := v.currentTask()
	if t == nil {
		return
	}
	updated := *t
	if updated.DueDate == nil {
		if days < 0 {
			return
		}
		today := v.mgr.Today()
		updated.DueDate = &today
	} else {
		d := updated.DueDate.AddDate(0, 0, days)
		updated.DueDate = &d
	}
	v.mgr.UpdateTask(updated)
	v.focusTaskID = updated.ID
	v.reload()
}

// nextRecurrence cycles none -> weekly -> monthly -> yearly -> none
func nextRecurrence(r model.Recurrence) model.Recurrence {
	switch r {
	case model.RecurNone:
		return model.RecurWeekly
	case model.RecurWeekly:
		return model.RecurMonthly
	case model.RecurMonthly:
		return model.RecurYearly
	default:
		return model.RecurNone
	}
}

// nextPriority cycles low -> medium -> high -> critical -> low
func nextPriority(p model.Priority) model.Priority {
	switch p {
	case model.PriorityLow:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityHigh
	case model.PriorityHigh:
		return model.PriorityCritical
	default:
		return model.PriorityLow
	}
}

// parseTaskInput parses a quick-add line into a task. Markers anywhere in
// the line: !priority, due:<date>, every:<weekly|monthly|yearly>.
func parseTaskInput(text string, today time.Time) model.Task {
	task := model.Task{Priority: model.PriorityMedium}

	var titleParts []string
	for _, word := range strings.Fields(text) {
		lower := strings.ToLower(word)
		switch {
		case strings.HasPrefix(word, "!"):
			switch strings.TrimPrefix(lower, "!") {
			case "low", "l":
				task.Priority = model.PriorityLow
			case "medium", "med", "m":
				task.Priority = model.PriorityMedium
			case "high", "hi", "h":
				task.Priority = model.PriorityHigh
			case "critical", "crit", "c":
				task.Priority = model.PriorityCritical
			default:
				titleParts = append(titleParts, word)
			}

		case strings.HasPrefix(lower, "due:"):
			if parsed := parseDueDate(strings.TrimPrefix(lower, "due:"), today); parsed != nil {
				task.DueDate = parsed
			} else {
				titleParts = append(titleParts, word)
			}

		case strings.HasPrefix(lower, "every:"):
			switch strings.TrimPrefix(lower, "every:") {
			case "week", "weekly", "w":
				task.Recurrence = model.RecurWeekly
			case "month", "monthly", "m":
				task.Recurrence = model.RecurMonthly
			case "year", "yearly", "y":
				task.Recurrence = model.RecurYearly
			default:
				titleParts = append(titleParts, word)
			}

		default:
			titleParts = append(titleParts, word)
		}
	}

	task.Title = strings.Join(titleParts, " ")
	return task
}

// parseDueDate understands today, tomorrow, weekday names, and a few
// date layouts
func parseDueDate(s string, today time.Time) *time.Time {
	switch s {
	case "today":
		return &today
	case "tomorrow", "tom":
		t := today.AddDate(0, 0, 1)
		return &t
	case "nextweek":
		t := today.AddDate(0, 0, 7)
		return &t
	}

	weekdays := map[string]time.Weekday{
		"monday": time.Monday, "mon": time.Monday,
		"tuesday": time.Tuesday, "tue": time.Tuesday,
		"wednesday": time.Wednesday, "wed": time.Wednesday,
		"thursday": time.Thursday, "thu": time.Thursday,
		"friday": time.Friday, "fri": time.Friday,
		"saturday": time.Saturday, "sat": time.Saturday,
		"sunday": time.Sunday, "sun": time.Sunday,
	}
	if wd, ok := weekdays[s]; ok {
		days := int(wd - today.Weekday())
		if days <= 0 {
			days += 7
		}
		t := today.AddDate(0, 0, days)
		return &t
	}

	for _, layout := range []string{"2006-01-02", "01/02/2006", "01-02-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	return nil
}

// View renders the tasks view
func (v TasksView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	t := theme.Current.Theme

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	header := fmt.Sprintf("Tasks ─ %s (%d)", v.filter, len(v.tasks))
	sections = append(sections, titleStyle.Render(header))

	if v.mode == TaskModeAdd || v.mode == TaskModeEdit {
		sections = append(sections, theme.Current.Styles.InputFocused.Render(v.input.View()))
	}

	if v.mode == TaskModeConfirmDelete {
		confirm := lipgloss.NewStyle().Foreground(t.Error).Bold(true)
		sections = append(sections, confirm.Render("Delete this task? (y/n)"))
	}

	sections = append(sections, "")

	if len(v.tasks) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)
		sections = append(sections, empty.Render("  No tasks. Press 'a' to add one."))
	} else {
		sections = append(sections, v.renderRows())
	}

	if v.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().Foreground(t.Info).MarginTop(1)
		sections = append(sections, statusStyle.Render(v.statusMsg))
	}

	return strings.Join(sections, "\n")
}

// renderRows renders the visible window of task rows
func (v TasksView) renderRows() string {
	t := theme.Current.Theme
	today := v.mgr.Today()

	var lines []string

	end := v.scrollOffset + v.visibleCount()
	if end > len(v.tasks) {
		end = len(v.tasks)
	}

	for i := v.scrollOffset; i < end; i++ {
		task := v.tasks[i]
		isCursor := i == v.cursor

		statusIcon, statusColor := taskStatusIcon(task.Status)
		icon := lipgloss.NewStyle().Foreground(statusColor).Render(statusIcon)

		priorityChar := ""
		switch task.Priority {
		case model.PriorityCritical:
			priorityChar = lipgloss.NewStyle().Foreground(t.PriorityCritical).Render("!")
		case model.PriorityHigh:
			priorityChar = lipgloss.NewStyle().Foreground(t.PriorityHigh).Render("▲")
		case model.PriorityMedium:
			priorityChar = lipgloss.NewStyle().Foreground(t.PriorityMedium).Render("●")
		case model.PriorityLow:
			priorityChar = lipgloss.NewStyle().Foreground(t.PriorityLow).Render("▽")
		}

		recurMark := ""
		if task.IsRecurring() {
			recurMark = lipgloss.NewStyle().Foreground(t.Info).Render(" ↻")
		}

		dueStr := ""
		if task.DueDate != nil {
			color := t.Subtle
			if task.IsOverdue(today) {
				color = t.Error
			} else if task.IsDueOn(today) {
				color = t.Warning
			}
			dueStr = lipgloss.NewStyle().Foreground(color).Render("  " + task.DueDate.Format("Jan 2"))
		}

		applianceStr := ""
		if task.ApplianceID != nil {
			if name := v.mgr.ApplianceName(task.ApplianceID); name != "" {
				applianceStr = lipgloss.NewStyle().Foreground(t.Secondary).Render("  [" + name + "]")
			}
		}

		title := task.Title
		if task.Status == model.StatusCompleted {
			title = lipgloss.NewStyle().Foreground(t.Subtle).Strikethrough(true).Render(title)
		}

		line := fmt.Sprintf("%s %s %s%s%s%s", icon, priorityChar, title, recurMark, dueStr, applianceStr)

		rowStyle := lipgloss.NewStyle().Padding(0, 1)
		if isCursor {
			rowStyle = rowStyle.Background(t.Highlight).Bold(true)
		}
		lines = append(lines, rowStyle.Render(line))
	}

	if end < len(v.tasks) {
		more := lipgloss.NewStyle().Foreground(t.Subtle)
		lines = append(lines, more.Render(fmt.Sprintf("  ... +%d more", len(v.tasks)-end)))
	}

	return strings.Join(lines, "\n")
}

// taskStatusIcon maps a status to its list marker and color
func taskStatusIcon(s model.Status) (string, lipgloss.Color) {
	t := theme.Current.Theme
	switch s {
	case model.StatusInProgress:
		return "[~]", t.StatusInProgress
	case model.StatusCompleted:
		return "[x]", t.StatusCompleted
	case model.StatusDeferred:
		return "[z]", t.StatusDeferred
	default:
		return "[ ]", t.StatusNotStarted
	}
}

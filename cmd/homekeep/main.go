package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dori/homekeep/internal/app"
	"github.com/dori/homekeep/internal/config"
	"github.com/dori/homekeep/internal/maint"
	"github.com/dori/homekeep/internal/model"
	"github.com/dori/homekeep/internal/store"
	"github.com/dori/homekeep/internal/ui"
	"github.com/dori/homekeep/internal/ui/theme"
)

var (
	version = "0.1.0"
)

func main() {
	// Subcommand handling
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "add":
			handleAdd(os.Args[2:])
			return
		case "version":
			fmt.Printf("homekeep v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		}
	}

	// Parse flags for TUI mode
	viewFlag := flag.String("view", "dashboard", "Starting view (dashboard, tasks, appliances, issues, seasonal, hurricane, knowledge)")
	themeFlag := flag.String("theme", "", "Theme name (nord, dracula, gruvbox, catppuccin)")
	configFlag := flag.String("config", "", "Config file path")
	flag.Parse()

	if err := runTUI(*viewFlag, *themeFlag, *configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `homekeep - Home maintenance tracking for your terminal

Usage:
  homekeep                  Start the TUI
  homekeep add <task>       Quick add a maintenance task
  homekeep version          Show version
  homekeep help             Show this help

Quick Add Syntax:
  homekeep add "Clean gutters"
  homekeep add "Change HVAC filter !high every:monthly due:friday"

  Priority:    !low !medium !high !critical
  Due date:    due:tomorrow due:friday due:2026-09-15
  Recurrence:  every:weekly every:monthly every:yearly

TUI Options:
  --view <name>     Starting view (dashboard, tasks, appliances, issues,
                    seasonal, hurricane, knowledge)
  --theme <name>    Theme (nord, dracula, gruvbox, catppuccin)
  --config <path>   Config file path

Keybindings:
  Navigation:   ↑/↓ or j/k    Move cursor
                g/G           Go to top/bottom
                h/l           Switch tabs or seasons

  Actions:      a             Add item
                enter         Edit item
                tab           Complete task / toggle checklist item
                x             Resolve issue
                d             Delete (with confirm)

  Views:        1-7           Switch views
                ?             Help
                q             Quit

For more info: https://github.com/dori/homekeep`

	fmt.Println(help)
}

func handleAdd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: homekeep add <task>")
		fmt.Fprintln(os.Stderr, "Example: homekeep add \"Clean gutters !high every:yearly due:saturday\"")
		os.Exit(1)
	}

	text := strings.Join(args, " ")
	task := parseQuickAdd(text)
	if task.Title == "" {
		fmt.Fprintln(os.Stderr, "Task title is empty")
		os.Exit(1)
	}

	cfgPath := config.DefaultPath()
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data directory: %v\n", err)
		os.Exit(1)
	}

	// No instance lock for quick add; the manager persists on mutation
	st, err := store.Open(filepath.Join(cfg.DataDir, "homekeep.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	mgr := maint.New(st, maint.WithMonthlyAnchor(cfg.MonthlyAnchorDay))
	created := mgr.AddTask(task)

	fmt.Printf("Created: %s\n", created.Title)
	if created.DueDate != nil {
		fmt.Printf("Due: %s\n", formatDueDate(*created.DueDate))
	}
	if created.Priority != model.PriorityMedium {
		fmt.Printf("Priority: %s\n", created.Priority)
	}
	if created.IsRecurring() {
		fmt.Printf("Repeats: %s\n", created.Recurrence)
	}
}

// parseQuickAdd parses markers out of a quick-add line: !priority,
// due:<date>, every:<weekly|monthly|yearly>. Everything else is the title.
func parseQuickAdd(text string) model.Task {
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
			if parsed := parseNaturalDate(strings.TrimPrefix(lower, "due:")); parsed != nil {
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

func parseNaturalDate(s string) *time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch strings.ToLower(s) {
	case "today":
		return &today
	case "tomorrow", "tom":
		t := today.AddDate(0, 0, 1)
		return &t
	case "monday", "mon":
		return nextWeekday(time.Monday)
	case "tuesday", "tue":
		return nextWeekday(time.Tuesday)
	case "wednesday", "wed":
		return nextWeekday(time.Wednesday)
	case "thursday", "thu":
		return nextWeekday(time.Thursday)
	case "friday", "fri":
		return nextWeekday(time.Friday)
	case "saturday", "sat":
		return nextWeekday(time.Saturday)
	case "sunday", "sun":
		return nextWeekday(time.Sunday)
	case "nextweek":
		t := today.AddDate(0, 0, 7)
		return &t
	}

	formats := []string{
		"2006-01-02",
		"01/02/2006",
		"01-02-2006",
		"Jan 2",
		"Jan 2, 2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			if t.Year() == 0 {
				t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
			}
			return &t
		}
	}

	return nil
}

func nextWeekday(day time.Weekday) *time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	daysUntil := int(day - now.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	t := today.AddDate(0, 0, daysUntil)
	return &t
}

func formatDueDate(t time.Time) string {
	now := time.Now()

	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return "today"
	}

	tomorrow := now.AddDate(0, 0, 1)
	if t.Year() == tomorrow.Year() && t.YearDay() == tomorrow.YearDay() {
		return "tomorrow"
	}

	if t.Year() == now.Year() {
		return t.Format("Mon, Jan 2")
	}

	return t.Format("Jan 2, 2006")
}

func runTUI(startView, themeName, configPath string) error {
	application, err := app.New(configPath)
	if err != nil {
		return err
	}
	defer application.Close()

	// Flag overrides config; config theme applies otherwise
	name := themeName
	if name == "" {
		name = application.Config.Theme
	}
	if t, ok := theme.ByName(name); ok {
		theme.SetTheme(t)
	}

	root := ui.NewRootModel(application)
	root = root.SetStartView(parseStartView(startView))

	p := tea.NewProgram(
		root,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

func parseStartView(name string) ui.View {
	switch strings.ToLower(name) {
	case "tasks":
		return ui.ViewTasks
	case "appliances":
		return ui.ViewAppliances
	case "issues":
		return ui.ViewIssues
	case "seasonal":
		return ui.ViewSeasonal
	case "hurricane":
		return ui.ViewHurricane
	case "knowledge":
		return ui.ViewKnowledge
	default:
		return ui.ViewDashboard
	}
}

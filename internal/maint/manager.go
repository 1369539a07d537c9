package maint

import (
	"time"

	"go.uber.org/zap"

	"github.com/dori/homekeep/internal/model"
)

// Prefs is the key-value preference store the manager persists into. Every
// collection is one key holding one JSON document. Reads that fail report
// the key as absent; write failures surface as errors the manager logs and
// otherwise ignores, so the in-memory state stays the source of truth.
type Prefs interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Manager is the central in-memory owner of all home-maintenance state:
// property, appliances, tasks, issues, and checklists. All mutations are
// synchronous and persist best-effort after each change.
type Manager struct {
	prefs Prefs
	log   *zap.Logger
	now   func() time.Time

	anchorDay   int // default monthly anchor day
	restartDays int // checklist done-state expiry

	Property   model.Property
	Appliances []model.Appliance
	Tasks      []model.Task
	Issues     []model.Issue // active
	History    []model.Issue // resolved

	checklists map[model.Season][]string
	done       map[model.Season][]model.DoneRecord
	Hurricane  []string

	Notes      []string // persisted user notes
	Tools      []string // seeded each startup, not persisted
	UsefulLife []model.UsefulLifeRow
}

// Option configures a Manager
type Option func(*Manager)

// WithClock injects the clock used for due dates, completion stamps, and
// checklist expiry. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the logger for best-effort persistence failures
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// WithMonthlyAnchor sets the fallback day-of-month for monthly rescheduling
func WithMonthlyAnchor(day int) Option {
	return func(m *Manager) {
		if day >= 1 && day <= 31 {
			m.anchorDay = day
		}
	}
}

// WithRestartDays sets the checklist done-state expiry in days
func WithRestartDays(days int) Option {
	return func(m *Manager) {
		if days > 0 {
			m.restartDays = days
		}
	}
}

// New creates a manager, hydrates it from prefs, and seeds the demo data
// and default checklists that are still missing.
func New(prefs Prefs, opts ...Option) *Manager {
	m := &Manager{
		prefs:       prefs,
		log:         zap.NewNop(),
		now:         time.Now,
		anchorDay:   28,
		restartDays: 30,
		checklists:  make(map[model.Season][]string),
		done:        make(map[model.Season][]model.DoneRecord),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.loadAll()
	m.seed()
	m.saveAll()

	return m
}

// today returns the current day at midnight
func (m *Manager) today() time.Time {
	return dateOf(m.now())
}

// Today exposes the manager's notion of the current day to read-side callers
func (m *Manager) Today() time.Time {
	return m.today()
}

func dateOf(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}

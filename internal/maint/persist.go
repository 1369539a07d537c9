package maint

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/dori/homekeep/internal/model"
)

// Preference keys. Each holds one JSON document.
const (
	keyProperty      = "property"
	keyTasks         = "tasks"
	keyIssues        = "issues"
	keyIssuesHistory = "issues_history"
	keySeasonal      = "seasonal_lists"
	keyHurricane     = "hurricane_list"
	keyKnowledge     = "knowledge_notes"
	keyFirstRun      = "first_run_completed"

	// One key per season, suffixed with the season name
	keySeasonDonePrefix = "season_done_"
)

// seasonalBag is the persisted shape of the five seasonal lists
type seasonalBag struct {
	Spring []string `json:"spring"`
	Summer []string `json:"summer"`
	Autumn []string `json:"autumn"`
	Winter []string `json:"winter"`
	Pool   []string `json:"pool"`
}

// loadJSON decodes the document under key into out. A missing key or
// malformed document is treated as "no data" and leaves out untouched.
func (m *Manager) loadJSON(key string, out interface{}) bool {
	raw, ok := m.prefs.Get(key)
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		m.log.Warn("discarding malformed preference", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// saveJSON encodes v under key. Failures are logged and ignored; the
// in-memory state remains authoritative for the session.
func (m *Manager) saveJSON(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		m.log.Warn("failed to encode preference", zap.String("key", key), zap.Error(err))
		return
	}
	if err := m.prefs.Set(key, string(data)); err != nil {
		m.log.Warn("failed to persist preference", zap.String("key", key), zap.Error(err))
	}
}

func (m *Manager) loadAll() {
	m.loadJSON(keyProperty, &m.Property)
	m.loadJSON(keyTasks, &m.Tasks)
	m.loadJSON(keyIssues, &m.Issues)
	m.loadJSON(keyIssuesHistory, &m.History)
	m.loadJSON(keyKnowledge, &m.Notes)
	m.loadJSON(keyHurricane, &m.Hurricane)

	var bag seasonalBag
	if m.loadJSON(keySeasonal, &bag) {
		m.checklists[model.SeasonSpring] = bag.Spring
		m.checklists[model.SeasonSummer] = bag.Summer
		m.checklists[model.SeasonAutumn] = bag.Autumn
		m.checklists[model.SeasonWinter] = bag.Winter
		m.checklists[model.SeasonPool] = bag.Pool
	}

	for _, season := range model.Seasons() {
		var records []model.DoneRecord
		if m.loadJSON(keySeasonDonePrefix+string(season), &records) {
			m.done[season] = records
		}
	}
}

func (m *Manager) saveAll() {
	m.saveProperty()
	m.saveTasks()
	m.saveIssues()
	m.saveChecklists()
	m.saveKnowledge()
	for _, season := range model.Seasons() {
		m.saveDone(season)
	}
}

func (m *Manager) saveProperty() {
	m.saveJSON(keyProperty, m.Property)
}

func (m *Manager) saveTasks() {
	m.saveJSON(keyTasks, m.Tasks)
}

func (m *Manager) saveIssues() {
	m.saveJSON(keyIssues, m.Issues)
	m.saveJSON(keyIssuesHistory, m.History)
}

func (m *Manager) saveChecklists() {
	bag := seasonalBag{
		Spring: m.checklists[model.SeasonSpring],
		Summer: m.checklists[model.SeasonSummer],
		Autumn: m.checklists[model.SeasonAutumn],
		Winter: m.checklists[model.SeasonWinter],
		Pool:   m.checklists[model.SeasonPool],
	}
	m.saveJSON(keySeasonal, bag)
	m.saveJSON(keyHurricane, m.Hurricane)
}

func (m *Manager) saveKnowledge() {
	m.saveJSON(keyKnowledge, m.Notes)
}

func (m *Manager) saveDone(season model.Season) {
	m.saveJSON(keySeasonDonePrefix+string(season), m.done[season])
}

// FirstRunCompleted reports whether onboarding has finished
func (m *Manager) FirstRunCompleted() bool {
	var done bool
	m.loadJSON(keyFirstRun, &done)
	return done
}

// SetFirstRunCompleted marks onboarding as finished
func (m *Manager) SetFirstRunCompleted() {
	m.saveJSON(keyFirstRun, true)
}

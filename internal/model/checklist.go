package model

import (
	"time"
)

// Season names a checklist on the seasonal screen
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
	SeasonPool   Season = "Pool"
)

// Seasons lists all seasonal checklists in display order
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonPool}
}

// DoneRecord marks a checklist item as completed. Records are stored per
// season, out of band from the checklist itself, and matched to items by
// case-insensitive text equality.
type DoneRecord struct {
	Text        string    `json:"text"`
	CompletedOn time.Time `json:"completedOn"`
}

// UsefulLifeRow is one entry of the seeded expected-useful-life table
type UsefulLifeRow struct {
	Item string
	Life string
}

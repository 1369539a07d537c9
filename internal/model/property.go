package model

import (
	"time"
)

// Property holds details of the single tracked home
type Property struct {
	Address    string        `json:"address"`
	HasPool    bool          `json:"has_pool"`
	TrashDay   *time.Weekday `json:"trash_day,omitempty"`
	SquareFeet *float64      `json:"square_feet,omitempty"`
	YearBuilt  *int          `json:"year_built,omitempty"`
}

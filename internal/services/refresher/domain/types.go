// Package domain defines the refresher's published values and ports
package domain

import (
	"time"

	"jbatoolkit/internal/core/nightwatch"
	"jbatoolkit/internal/core/wallclock"
	"jbatoolkit/internal/core/workweek"
)

// NightSet is the night classification at one instant.
// Each refresh replaces it wholesale.
type NightSet struct {
	At      time.Time          `json:"at"`
	Window  nightwatch.Window  `json:"window"`
	Entries []nightwatch.Entry `json:"entries"`
}

// WorkWeek is the work week evaluation at one instant
type WorkWeek struct {
	At    time.Time      `json:"at"`
	State workweek.State `json:"state"`
}

// Board is every published value. Parts may come from different ticks.
type Board struct {
	Clock    wallclock.Snapshot `json:"clock"`
	Night    NightSet           `json:"night"`
	WorkWeek WorkWeek           `json:"workweek"`
}

// Cadence names used in logs and run ids
const (
	CadenceClock    = "clock"
	CadenceNight    = "night"
	CadenceWorkWeek = "workweek"
)

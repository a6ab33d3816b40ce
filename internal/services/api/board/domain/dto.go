// Package domain holds DTOs for the board http and service contracts
package domain

import (
	"time"

	"jbatoolkit/internal/core/locations"
	"jbatoolkit/internal/core/wallclock"
	rdom "jbatoolkit/internal/services/refresher/domain"
)

// Source tells the caller where a value came from
type Source string

// Sources
const (
	// SourceLive is the latest value published by the refresher
	SourceLive Source = "live"
	// SourceComputed is computed now because the refresher has not published yet
	SourceComputed Source = "computed"
	// SourcePinned is computed at the ?at= instant
	SourcePinned Source = "pinned"
)

// ClockView is the clock readout
type ClockView struct {
	Source Source `json:"source" example:"live"`
	wallclock.Snapshot
}

// NightView is the set of locations in their night window
type NightView struct {
	Source Source `json:"source" example:"live"`
	Count  int    `json:"count"  example:"3"`
	rdom.NightSet
}

// WorkWeekView is the work week progress
type WorkWeekView struct {
	Source Source `json:"source" example:"live"`
	rdom.WorkWeek
}

// BoardView is every value in one response
type BoardView struct {
	Source   Source       `json:"source" example:"live"`
	Clock    ClockView    `json:"clock"`
	Night    NightView    `json:"night"`
	WorkWeek WorkWeekView `json:"workweek"`
}

// ZonesQuery selects the zone listing order
type ZonesQuery struct {
	// Sort is "table" (configured order) or "offset" (west to east)
	Sort string `json:"sort" example:"offset"`
}

// ZonesView is every configured location with its local clock and offset
type ZonesView struct {
	At    time.Time       `json:"at"`
	Sort  string          `json:"sort"  example:"table"`
	Count int             `json:"count" example:"36"`
	Rows  []locations.Row `json:"rows"`
}

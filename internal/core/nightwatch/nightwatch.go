// Package nightwatch picks out the locations where it is currently the dead of night
package nightwatch

import (
	"time"

	"jbatoolkit/internal/core/civil"
	"jbatoolkit/internal/core/locations"
	perr "jbatoolkit/internal/platform/errors"
)

// Window is a half-open range of local hours [Start, End)
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// DefaultWindow is 01:00 up to (not including) 05:00
func DefaultWindow() Window { return Window{Start: 1, End: 5} }

// Validate requires 0 <= Start < End <= 24
func (w Window) Validate() error {
	if w.Start < 0 || w.End > 24 || w.Start >= w.End {
		return perr.InvalidArgf("night window must satisfy 0 <= start < end <= 24, got [%d, %d)", w.Start, w.End)
	}
	return nil
}

// Contains reports whether a local hour falls inside the window
func (w Window) Contains(hour int) bool { return w.Start <= hour && hour < w.End }

// Entry is a location that is in its night window, with its local clock
type Entry struct {
	locations.Record
	Hour  int    `json:"hour"`
	Clock string `json:"clock"`
}

// Classify returns the table entries whose local hour at instant lies in w,
// in table order. The result may be empty.
func Classify(at time.Time, tbl *locations.Table, w Window) []Entry {
	out := make([]Entry, 0)
	for _, e := range tbl.Entries() {
		local := at.In(e.Loc)
		if !w.Contains(local.Hour()) {
			continue
		}
		out = append(out, Entry{
			Record: e.Record,
			Hour:   local.Hour(),
			Clock:  civil.ClockIn(at, e.Loc),
		})
	}
	return out
}

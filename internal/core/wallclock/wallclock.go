// Package wallclock formats the live clock readout shown at the top of the toolkit
package wallclock

import "time"

const (
	// TimeLayout is the 24-hour readout, zero padded
	TimeLayout = "15:04:05"
	// DateLayout is the long-form date under the readout
	DateLayout = "Monday, January 2, 2006"
)

// Snapshot is one reading of the clock in the process-local zone
type Snapshot struct {
	Instant time.Time `json:"instant"`
	Time    string    `json:"time"`
	Date    string    `json:"date"`
	Zone    string    `json:"zone"`
}

// Take formats now in its own location. Callers pass an instant already
// placed in the local zone (see clock.Zoned).
func Take(now time.Time) Snapshot {
	name, _ := now.Zone()
	return Snapshot{
		Instant: now,
		Time:    now.Format(TimeLayout),
		Date:    now.Format(DateLayout),
		Zone:    name,
	}
}

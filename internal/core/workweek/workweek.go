// Package workweek tracks progress through the Monday to Friday working week
package workweek

import (
	"fmt"
	"time"

	perr "jbatoolkit/internal/platform/errors"
)

// WorkDays is the number of working days starting Monday
const WorkDays = 5

// OutsideText is the status shown outside working hours
const OutsideText = "Outside of work hours"

// Schedule is the daily working window in local wall time
type Schedule struct {
	StartHour   int `json:"start_hour"`
	StartMinute int `json:"start_minute"`
	EndHour     int `json:"end_hour"`
	EndMinute   int `json:"end_minute"`
}

// Default is 09:00 to 17:30, 8.5 hours a day, 42.5 hours a week
func Default() Schedule { return Schedule{StartHour: 9, EndHour: 17, EndMinute: 30} }

// Validate requires a well formed window that starts before it ends on the same day
func (s Schedule) Validate() error {
	ok := func(h, m int) bool { return h >= 0 && h < 24 && m >= 0 && m < 60 }
	if !ok(s.StartHour, s.StartMinute) || !ok(s.EndHour, s.EndMinute) {
		return perr.InvalidArgf("work schedule has out of range wall times")
	}
	if s.DayLength() <= 0 {
		return perr.InvalidArgf("work day must end after it starts, got %02d:%02d-%02d:%02d",
			s.StartHour, s.StartMinute, s.EndHour, s.EndMinute)
	}
	return nil
}

// DayLength is the working time in one day
func (s Schedule) DayLength() time.Duration {
	return time.Duration((s.EndHour-s.StartHour)*60+(s.EndMinute-s.StartMinute)) * time.Minute
}

// Capacity is the working time in one week
func (s Schedule) Capacity() time.Duration { return WorkDays * s.DayLength() }

// State is the work week evaluated at one instant
type State struct {
	Percentage        float64       `json:"percentage"`
	Remaining         float64       `json:"remaining"`
	PercentageDisplay string        `json:"percentage_display"`
	StatusText        string        `json:"status_text"`
	IsActive          bool          `json:"is_active"`
	Badge             string        `json:"badge"`
	Worked            time.Duration `json:"worked_ns"`
}

// Evaluate computes progress at instant using instant's own location as local time.
//
// Monday is day 0 of the work week here. A day contributes its full length once
// its end has passed, the elapsed part while it is running, and accumulation
// stops at the first day not yet started.
//
// Both edges read as outside working hours: the end minute is non-strict and
// the exact start instant (09:00:00 by default, sub-second ignored) still
// counts as not yet started.
func (s Schedule) Evaluate(at time.Time) State {
	y, mo, d := at.Date()
	loc := at.Location()
	daysFromMonday := (int(at.Weekday()) + 6) % 7

	weekStart := time.Date(y, mo, d-daysFromMonday, s.StartHour, s.StartMinute, 0, 0, loc)

	var worked time.Duration
	for i := 0; i < WorkDays; i++ {
		ws := time.Date(y, mo, d-daysFromMonday+i, s.StartHour, s.StartMinute, 0, 0, loc)
		we := time.Date(y, mo, d-daysFromMonday+i, s.EndHour, s.EndMinute, 0, 0, loc)
		if !at.Before(we) {
			worked += s.DayLength()
			continue
		}
		if !at.Before(ws) {
			worked += at.Sub(ws)
		}
		break
	}

	pc := float64(worked) / float64(s.Capacity()) * 100
	pr := 100 - pc

	h, m, sec := at.Clock()
	wd := at.Weekday()
	weekend := wd == time.Saturday || wd == time.Sunday
	afterEnd := h > s.EndHour || (h == s.EndHour && m >= s.EndMinute)
	beforeStart := h < s.StartHour ||
		(h == s.StartHour && m < s.StartMinute) ||
		(h == s.StartHour && m == s.StartMinute && sec == 0)
	outside := weekend || at.Before(weekStart) || afterEnd || beforeStart

	st := State{
		Percentage:        pc,
		Remaining:         pr,
		PercentageDisplay: fmt.Sprintf("%.1f", pc),
		IsActive:          !outside,
		Worked:            worked,
	}
	if outside {
		st.StatusText = OutsideText
		st.Badge = "Inactive"
	} else {
		st.StatusText = fmt.Sprintf("%.2f%% Completed / %.2f%% Remaining", pc, pr)
		st.Badge = "Active"
	}
	return st
}

// Evaluate runs the default schedule
func Evaluate(at time.Time) State { return Default().Evaluate(at) }

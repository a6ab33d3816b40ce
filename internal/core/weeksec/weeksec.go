// Package weeksec converts a weekday and HH:MM:SS wall time into the number of
// seconds elapsed since Sunday 00:00:00, and back.
//
// Sunday is day 0 here, unlike the work week tracker which counts from Monday.
package weeksec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	perr "jbatoolkit/internal/platform/errors"

	"golang.org/x/text/cases"
)

const (
	// SecondsPerDay is 24h in seconds
	SecondsPerDay = 24 * 60 * 60
	// MaxSeconds is Saturday 23:59:59
	MaxSeconds = 7*SecondsPerDay - 1
)

// Encoder failures. Both survive perr mutators and match with errors.Is.
var (
	ErrInvalidFormat = perr.New(perr.ErrorCodeInvalidFormat, "Invalid time format. Please use HH:MM:SS.")
	ErrInvalidValues = perr.New(perr.ErrorCodeInvalidValues, "Invalid time values. Hours (0-23), Minutes (0-59), Seconds (0-59).")
)

// Day is a weekday with Sunday = 0
type Day int

// Weekdays
const (
	Sunday Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Days lists every day in Sunday-first order
func Days() []Day { return []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday} }

// DayNames lists the day names in Sunday-first order
func DayNames() []string { return append([]string(nil), dayNames[:]...) }

// Valid reports whether d is Sunday..Saturday
func (d Day) Valid() bool { return d >= Sunday && d <= Saturday }

func (d Day) String() string {
	if !d.Valid() {
		return "Day(" + strconv.Itoa(int(d)) + ")"
	}
	return dayNames[d]
}

// ParseDay accepts a full day name, a three letter abbreviation (any case)
// or an index 0..6
func ParseDay(s string) (Day, error) {
	in := strings.TrimSpace(s)
	if n, err := strconv.Atoi(in); err == nil {
		if d := Day(n); d.Valid() {
			return d, nil
		}
	}
	fold := cases.Fold() // Casers are stateful; one per call
	key := fold.String(in)
	for i, name := range dayNames {
		full := fold.String(name)
		if key == full || (len(key) == 3 && key == full[:3]) {
			return Day(i), nil
		}
	}
	return 0, perr.WithField(perr.InvalidArgf("unknown day %q", s), "day")
}

// TimeOfDay is a wall time with second precision
type TimeOfDay struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// Valid checks the numeric ranges
func (t TimeOfDay) Valid() bool {
	return t.Hours >= 0 && t.Hours <= 23 &&
		t.Minutes >= 0 && t.Minutes <= 59 &&
		t.Seconds >= 0 && t.Seconds <= 59
}

// SecondsIntoDay is h*3600 + m*60 + s
func (t TimeOfDay) SecondsIntoDay() int { return t.Hours*3600 + t.Minutes*60 + t.Seconds }

var timeText = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d):([0-5]\d)$`)

// ParseTimeOfDay requires exactly HH:MM:SS, 24h, two digits per field.
// The pattern already bounds each field; the range check runs regardless.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	m := timeText.FindStringSubmatch(text)
	if m == nil {
		return TimeOfDay{}, ErrInvalidFormat
	}
	h, errH := strconv.Atoi(m[1])
	mi, errM := strconv.Atoi(m[2])
	s, errS := strconv.Atoi(m[3])
	t := TimeOfDay{Hours: h, Minutes: mi, Seconds: s}
	if errH != nil || errM != nil || errS != nil || !t.Valid() {
		return TimeOfDay{}, ErrInvalidValues
	}
	return t, nil
}

// Encode returns day*86400 + seconds into the day for a HH:MM:SS text
func Encode(day Day, text string) (int, error) {
	if !day.Valid() {
		return 0, perr.WithField(perr.InvalidArgf("unknown day %d", int(day)), "day")
	}
	t, err := ParseTimeOfDay(text)
	if err != nil {
		return 0, perr.WithField(err, "time")
	}
	return EncodeTime(day, t)
}

// EncodeTime is Encode for an already parsed time of day
func EncodeTime(day Day, t TimeOfDay) (int, error) {
	if !day.Valid() {
		return 0, perr.WithField(perr.InvalidArgf("unknown day %d", int(day)), "day")
	}
	if !t.Valid() {
		return 0, perr.WithField(ErrInvalidValues, "time")
	}
	return int(day)*SecondsPerDay + t.SecondsIntoDay(), nil
}

// Decode inverts Encode for 0..MaxSeconds
func Decode(total int) (Day, TimeOfDay, error) {
	if total < 0 || total > MaxSeconds {
		return 0, TimeOfDay{}, perr.WithField(ErrInvalidValues, "seconds")
	}
	day := Day(total / SecondsPerDay)
	rem := total % SecondsPerDay
	return day, TimeOfDay{Hours: rem / 3600, Minutes: rem % 3600 / 60, Seconds: rem % 60}, nil
}

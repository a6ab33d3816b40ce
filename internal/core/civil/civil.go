// Package civil answers "what time is it there" for IANA zone ids and UTC±H[:MM]
// pseudo zones. Resolved locations are cached so per-tick classification of the
// location table never reparses tzdata.
package civil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	perr "jbatoolkit/internal/platform/errors"

	"github.com/maypok86/otter/v2"
)

// pseudo zones of the form UTC+5, UTC-03:30, UTC+05:45
var offsetZone = regexp.MustCompile(`^UTC([+-])(\d{1,2})(?::([0-5]\d))?$`)

// Zones resolves zone ids to locations through a bounded cache
type Zones struct {
	cache *otter.Cache[string, *time.Location]
}

// NewZones builds a resolver caching up to size locations
func NewZones(size int) *Zones {
	if size <= 0 {
		size = 256
	}
	return &Zones{cache: otter.Must(&otter.Options[string, *time.Location]{
		MaximumSize: size,
	})}
}

// Resolve returns the location for id. Unknown ids are NotFound errors.
func (z *Zones) Resolve(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if loc, ok := z.cache.GetIfPresent(id); ok {
		return loc, nil
	}
	loc, err := load(id)
	if err != nil {
		return nil, err
	}
	z.cache.Set(id, loc)
	return loc, nil
}

// Cached reports how many resolved locations are held
func (z *Zones) Cached() int { return z.cache.EstimatedSize() }

func load(id string) (*time.Location, error) {
	if id == "" {
		return nil, perr.WithField(perr.NotFoundf("empty zone id"), "zone_id")
	}
	if loc, ok := ParseOffsetZone(id); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil || id == "Local" {
		return nil, perr.WithField(perr.NotFoundf("unknown time zone %q", id), "zone_id")
	}
	return loc, nil
}

// ParseOffsetZone parses UTC±H[:MM] into a fixed zone named after the input.
// Offsets outside UTC-12..UTC+14 are rejected.
func ParseOffsetZone(id string) (*time.Location, bool) {
	m := offsetZone.FindStringSubmatch(id)
	if m == nil {
		return nil, false
	}
	h, _ := strconv.Atoi(m[2])
	mins := 0
	if m[3] != "" {
		mins, _ = strconv.Atoi(m[3])
	}
	secs := h*3600 + mins*60
	if m[1] == "-" {
		secs = -secs
	}
	if secs < -12*3600 || secs > 14*3600 {
		return nil, false
	}
	return time.FixedZone(id, secs), true
}

// HourIn is the civil hour (0-23) at instant in zone id
func (z *Zones) HourIn(at time.Time, id string) (int, error) {
	loc, err := z.Resolve(id)
	if err != nil {
		return 0, err
	}
	return at.In(loc).Hour(), nil
}

// MinuteIn is the civil minute (0-59) at instant in zone id
func (z *Zones) MinuteIn(at time.Time, id string) (int, error) {
	loc, err := z.Resolve(id)
	if err != nil {
		return 0, err
	}
	return at.In(loc).Minute(), nil
}

// Clock renders "HH:MM" (24h, zero padded) at instant in zone id
func (z *Zones) Clock(at time.Time, id string) (string, error) {
	loc, err := z.Resolve(id)
	if err != nil {
		return "", err
	}
	return ClockIn(at, loc), nil
}

// ClockIn renders "HH:MM" at instant in loc
func ClockIn(at time.Time, loc *time.Location) string {
	return at.In(loc).Format("15:04")
}

// OffsetLabel renders the zone offset of t as UTC+05:45, UTC-03:00, UTC+00:00
func OffsetLabel(t time.Time) string {
	_, secs := t.Zone()
	sign := '+'
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, secs/3600, (secs%3600)/60)
}

// Package locations holds the static (name, zone) table the night watch and
// zone listing iterate over. Tables are validated when built: a zone id that
// does not resolve is a configuration error, never a runtime one.
package locations

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"jbatoolkit/internal/core/civil"
	perr "jbatoolkit/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

// Record is one row of the table
type Record struct {
	Name   string `json:"name"    yaml:"name"`
	ZoneID string `json:"zone_id" yaml:"zone"`
}

// Entry is a record with its resolved location
type Entry struct {
	Record
	Loc *time.Location `json:"-"`
}

// Table is an ordered, read-only list of resolved records; safe for concurrent reads
type Table struct {
	entries []Entry
}

// Default returns the built-in table, ordered west to east (UTC-12 .. UTC+14)
func Default() []Record {
	return []Record{
		{"USA - Baker Island", "Etc/GMT+12"},
		{"USA - Honolulu, HI", "Pacific/Honolulu"},
		{"USA - Anchorage, AK", "America/Anchorage"},
		{"USA - Los Angeles, CA", "America/Los_Angeles"},
		{"USA - Denver, CO", "America/Denver"},
		{"USA - Chicago, IL", "America/Chicago"},
		{"USA - New York, NY", "America/New_York"},
		{"Venezuela - Caracas", "America/Caracas"},
		{"Canada - Halifax", "America/Halifax"},
		{"Argentina - Buenos Aires", "America/Argentina/Buenos_Aires"},
		{"South Georgia - South Georgia", "Atlantic/South_Georgia"},
		{"Portugal - Azores", "Atlantic/Azores"},
		{"Iceland - Reykjavik", "Atlantic/Reykjavik"},
		{"UK - London", "Europe/London"},
		{"Germany - Berlin", "Europe/Berlin"},
		{"Egypt - Cairo", "Africa/Cairo"},
		{"Russia - Moscow", "Europe/Moscow"},
		{"Iran - Tehran", "Asia/Tehran"},
		{"UAE - Dubai", "Asia/Dubai"},
		{"Afghanistan - Kabul", "Asia/Kabul"},
		{"Pakistan - Karachi", "Asia/Karachi"},
		{"India - New Delhi", "Asia/Kolkata"},
		{"Nepal - Kathmandu", "Asia/Kathmandu"},
		{"Bangladesh - Dhaka", "Asia/Dhaka"},
		{"Myanmar - Yangon", "Asia/Yangon"},
		{"Thailand - Bangkok", "Asia/Bangkok"},
		{"Singapore - Singapore", "Asia/Singapore"},
		{"Australia - Eucla", "Australia/Eucla"},
		{"Japan - Tokyo", "Asia/Tokyo"},
		{"Australia - Adelaide", "Australia/Adelaide"},
		{"Australia - Sydney", "Australia/Sydney"},
		{"New Caledonia - Nouméa", "Pacific/Noumea"},
		{"New Zealand - Auckland", "Pacific/Auckland"},
		{"New Zealand - Chatham Islands", "Pacific/Chatham"},
		{"Samoa - Apia", "Pacific/Apia"},
		{"Kiribati - Kiritimati", "Pacific/Kiritimati"},
	}
}

// New resolves every record through zones. The first bad row fails the whole table.
func New(zones *civil.Zones, recs []Record) (*Table, error) {
	if len(recs) == 0 {
		return nil, perr.Configf("location table is empty")
	}
	seen := make(map[string]struct{}, len(recs))
	entries := make([]Entry, 0, len(recs))
	for i, r := range recs {
		r.Name = strings.TrimSpace(r.Name)
		r.ZoneID = strings.TrimSpace(r.ZoneID)
		if r.Name == "" {
			return nil, perr.WithField(perr.Configf("location %d has no name", i), "name")
		}
		if _, dup := seen[r.Name]; dup {
			return nil, perr.WithField(perr.Configf("duplicate location %q", r.Name), "name")
		}
		seen[r.Name] = struct{}{}
		loc, err := zones.Resolve(r.ZoneID)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeConfig, "location %q: unknown zone %q", r.Name, r.ZoneID)
		}
		entries = append(entries, Entry{Record: r, Loc: loc})
	}
	return &Table{entries: entries}, nil
}

// MustNew is New that panics on a bad table; for startup wiring
func MustNew(zones *civil.Zones, recs []Record) *Table {
	t, err := New(zones, recs)
	if err != nil {
		panic(err)
	}
	return t
}

// fileDoc is the YAML shape accepted by LoadFile
//
//	locations:
//	  - name: UK - London
//	    zone: Europe/London
type fileDoc struct {
	Locations []Record `yaml:"locations"`
}

// LoadFile reads records from a YAML file
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeConfig, "read location file %s", path)
	}
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeConfig, "parse location file %s", path)
	}
	return doc.Locations, nil
}

// Len is the number of entries
func (t *Table) Len() int { return len(t.entries) }

// Entries returns the resolved entries in table order. The slice is shared; do not mutate.
func (t *Table) Entries() []Entry { return t.entries }

// Records returns a copy of the records in table order
func (t *Table) Records() []Record {
	out := make([]Record, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Record
	}
	return out
}

// Row is a table entry as seen at one instant
type Row struct {
	Name          string `json:"name"`
	ZoneID        string `json:"zone_id"`
	Clock         string `json:"clock"`
	Offset        string `json:"offset"`
	OffsetSeconds int    `json:"offset_seconds"`
}

func (r Row) String() string { return fmt.Sprintf("%-32s %s  %s", r.Name, r.Clock, r.Offset) }

// Overview lists every entry with its local clock and UTC offset at instant.
// byOffset sorts west to east (stable, so ties keep table order).
func (t *Table) Overview(at time.Time, byOffset bool) []Row {
	rows := make([]Row, 0, len(t.entries))
	for _, e := range t.entries {
		local := at.In(e.Loc)
		_, off := local.Zone()
		rows = append(rows, Row{
			Name:          e.Name,
			ZoneID:        e.ZoneID,
			Clock:         civil.ClockIn(at, e.Loc),
			Offset:        civil.OffsetLabel(local),
			OffsetSeconds: off,
		})
	}
	if byOffset {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].OffsetSeconds < rows[j].OffsetSeconds })
	}
	return rows
}

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"jbatoolkit/internal/core/civil"
	"jbatoolkit/internal/core/locations"
	"jbatoolkit/internal/core/nightwatch"
	"jbatoolkit/internal/core/weeksec"
	"jbatoolkit/internal/core/workweek"
	"jbatoolkit/internal/modkit"
	"jbatoolkit/internal/platform/clock"
	"jbatoolkit/internal/platform/config"
	perr "jbatoolkit/internal/platform/errors"
	"jbatoolkit/internal/platform/testkit"

	"github.com/fatih/color"
)

func init() { color.NoColor = true }

func fixedDeps(at time.Time) Loader {
	return func() (modkit.Deps, error) {
		zones := civil.NewZones(0)
		return modkit.Deps{
			Cfg:      config.New(),
			Clock:    clock.NewFake(at),
			Zones:    zones,
			Table:    locations.MustNew(zones, locations.Default()),
			Window:   nightwatch.DefaultWindow(),
			Schedule: workweek.Default(),
			Format:   weeksec.MustFormatter("en-US"),
		}, nil
	}
}

func run(t *testing.T, load Loader, args ...string) (string, error) {
	t.Helper()
	root := NewRoot(load)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

var wed = time.Date(2025, 9, 3, 12, 30, 0, 0, time.UTC)

func TestCommands_Text(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want []string
	}{
		{"now", []string{"now"}, []string{"12:30:00", "Wednesday, September 3, 2025"}},
		{"now pinned", []string{"now", "--at", "2025-09-05T17:30:00Z"}, []string{"17:30:00", "Friday"}},
		{"night", []string{"night"}, []string{"USA - Honolulu, HI", "02:30", "01:00-05:00"}},
		{"night empty window", []string{"night", "--start", "23", "--end", "24", "--at", "2025-09-03T08:00:00Z"}, []string{"No locations are currently in the night window"}},
		{"workweek", []string{"workweek"}, []string{"Active", "Completed"}},
		{"workweek friday close", []string{"workweek", "--at", "2025-09-05T17:30:00Z"}, []string{"100.0%", "Outside of work hours"}},
		{"encode", []string{"encode", "Monday", "09:00:00"}, []string{"118,800 seconds"}},
		{"encode index", []string{"encode", "0", "00:00:01"}, []string{"Sunday", "1 seconds"}},
		{"decode", []string{"decode", "604799"}, []string{"Saturday 23:59:59"}},
		{"days", []string{"days"}, []string{"0 Sunday", "6 Saturday"}},
		{"zones", []string{"zones", "--sort", "offset"}, []string{"Pacific/Honolulu"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, fixedDeps(wed), tc.args...)
			if err != nil {
				t.Fatalf("%v: %v", tc.args, err)
			}
			for _, w := range tc.want {
				testkit.MustContain(t, out, w)
			}
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		code  perr.ErrorCode
		field string
	}{
		{"bad time format", []string{"encode", "Monday", "9:00"}, perr.ErrorCodeInvalidFormat, "time"},
		{"hour out of pattern", []string{"encode", "Monday", "24:00:00"}, perr.ErrorCodeInvalidFormat, "time"},
		{"bad day", []string{"encode", "Funday", "09:00:00"}, perr.ErrorCodeInvalidArgument, "day"},
		{"decode not int", []string{"decode", "soon"}, perr.ErrorCodeInvalidArgument, "seconds"},
		{"decode out of range", []string{"decode", "604800"}, perr.ErrorCodeInvalidValues, "seconds"},
		{"bad at", []string{"now", "--at", "yesterday"}, perr.ErrorCodeInvalidArgument, "at"},
		{"bad window", []string{"night", "--start", "5", "--end", "1"}, perr.ErrorCodeInvalidArgument, "window"},
		{"bad sort", []string{"zones", "--sort", "name"}, perr.ErrorCodeInvalidArgument, "sort"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, fixedDeps(wed), tc.args...)
			e, ok := perr.As(err)
			if !ok || e.Code() != tc.code || e.Field() != tc.field {
				t.Fatalf("%v: err = %v", tc.args, err)
			}
		})
	}
}

func TestCommands_JSON(t *testing.T) {
	out, err := run(t, fixedDeps(wed), "encode", "Monday", "09:00:00", "--json")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got struct {
		Total   int    `json:"total"`
		Grouped string `json:"grouped"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Total != 118800 || got.Grouped != "118,800" {
		t.Fatalf("got %+v", got)
	}
}

func TestLoaderFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := run(t, func() (modkit.Deps, error) { return modkit.Deps{}, boom }, "days")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, perr.WithField(weeksec.ErrInvalidFormat, "time"))
	if !strings.Contains(buf.String(), "Invalid time format") || !strings.Contains(buf.String(), "(time)") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestBar(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{0, "[....]"},
		{50, "[##..]"},
		{100, "[####]"},
		{140, "[####]"},
	}
	for _, tc := range cases {
		if got := bar(tc.pct, 4); got != tc.want {
			t.Fatalf("bar(%v) = %q want %q", tc.pct, got, tc.want)
		}
	}
}

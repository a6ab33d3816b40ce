package module

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jbatoolkit/internal/core/civil"
	"jbatoolkit/internal/core/locations"
	"jbatoolkit/internal/core/nightwatch"
	"jbatoolkit/internal/core/workweek"
	"jbatoolkit/internal/modkit"
	"jbatoolkit/internal/platform/clock"
	"jbatoolkit/internal/platform/config"
	phttp "jbatoolkit/internal/platform/net/http"
	"jbatoolkit/internal/platform/testkit"
	refmod "jbatoolkit/internal/services/refresher/module"
	rsvc "jbatoolkit/internal/services/refresher/service"

	"github.com/go-chi/chi/v5"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Field      string          `json:"field"`
	Data       json.RawMessage `json:"data"`
}

func mount(t *testing.T, at time.Time, warm bool) http.Handler {
	t.Helper()
	deps := modkit.Deps{
		Cfg:      config.New(),
		Clock:    clock.NewFake(at),
		Table:    locations.MustNew(civil.NewZones(0), locations.Default()),
		Window:   nightwatch.DefaultWindow(),
		Schedule: workweek.Default(),
	}
	ref := refmod.New(deps, rsvc.DefaultConfig())
	ports := ref.Ports().(refmod.Ports)
	if warm {
		ctx := context.Background()
		svc := ports.Runner.(*rsvc.Svc)
		svc.RefreshClock(ctx)
		svc.RefreshNight(ctx)
		svc.RefreshWorkWeek(ctx)
	}

	m := New(deps, modkit.WithPorts(Ports{Reader: ports.Reader, Evaluator: ports.Evaluator}))
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	return mux
}

func get(t *testing.T, h http.Handler, target string, out any) envelope {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s: bad body %q", target, rec.Body.String())
	}
	if env.StatusCode != rec.Code {
		t.Fatalf("%s: envelope status %d vs %d", target, env.StatusCode, rec.Code)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("%s: data: %v", target, err)
		}
	}
	return env
}

func TestBoardRoutes_Live(t *testing.T) {
	h := mount(t, time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), true)

	var clk struct {
		Source string `json:"source"`
		Time   string `json:"time"`
		Date   string `json:"date"`
	}
	if env := get(t, h, "/board/clock", &clk); env.StatusCode != http.StatusOK {
		t.Fatalf("status %d", env.StatusCode)
	}
	testkit.MustEqual(t, clk.Source, "live", "clock source")
	testkit.MustEqual(t, clk.Time, "12:00:00", "clock time")
	testkit.MustEqual(t, clk.Date, "Wednesday, January 15, 2025", "clock date")

	var night struct {
		Count   int `json:"count"`
		Entries []struct {
			Name   string `json:"name"`
			ZoneID string `json:"zone_id"`
			Clock  string `json:"clock"`
		} `json:"entries"`
	}
	get(t, h, "/board/night", &night)
	testkit.MustEqual(t, night.Count, 7, "night count")
	testkit.MustEqual(t, night.Entries[0].ZoneID, "Pacific/Honolulu", "first night zone")
	testkit.MustEqual(t, night.Entries[0].Clock, "02:00", "honolulu clock")

	var ww struct {
		State struct {
			IsActive          bool   `json:"is_active"`
			StatusText        string `json:"status_text"`
			PercentageDisplay string `json:"percentage_display"`
			Badge             string `json:"badge"`
		} `json:"state"`
	}
	get(t, h, "/board/workweek", &ww)
	testkit.MustEqual(t, ww.State.StatusText, "47.06% Completed / 52.94% Remaining", "status text")
	testkit.MustEqual(t, ww.State.Badge, "Active", "badge")

	var all struct {
		Source string `json:"source"`
	}
	get(t, h, "/board", &all)
	testkit.MustEqual(t, all.Source, "live", "board source")
}

func TestBoardRoutes_PinnedAt(t *testing.T) {
	h := mount(t, time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), false)

	var ww struct {
		Source string `json:"source"`
		State  struct {
			Percentage float64 `json:"percentage"`
			IsActive   bool    `json:"is_active"`
			StatusText string  `json:"status_text"`
		} `json:"state"`
	}
	get(t, h, "/board/workweek?at=2025-01-17T17:30:00Z", &ww)
	testkit.MustEqual(t, ww.Source, "pinned", "source")
	testkit.MustEqual(t, ww.State.Percentage, 100.0, "friday close percentage")
	testkit.MustEqual(t, ww.State.IsActive, false, "friday close active")
	testkit.MustEqual(t, ww.State.StatusText, "Outside of work hours", "friday close status")

	var clk struct {
		Source string `json:"source"`
	}
	get(t, h, "/board/clock", &clk)
	testkit.MustEqual(t, clk.Source, "computed", "cold cache source")
}

func TestBoardRoutes_BadInput(t *testing.T) {
	h := mount(t, time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), true)

	env := get(t, h, "/board/night?at=noon", nil)
	testkit.MustEqual(t, env.StatusCode, http.StatusUnprocessableEntity, "bad at status")
	testkit.MustEqual(t, env.Field, "at", "bad at field")

	env = get(t, h, "/board/zones?sort=alpha", nil)
	testkit.MustEqual(t, env.StatusCode, http.StatusUnprocessableEntity, "bad sort status")
}

func TestBoardRoutes_Zones(t *testing.T) {
	h := mount(t, time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), true)

	var z struct {
		Count int `json:"count"`
		Rows  []struct {
			Name   string `json:"name"`
			Offset string `json:"offset"`
		} `json:"rows"`
	}
	get(t, h, "/board/zones?sort=offset", &z)
	testkit.MustEqual(t, z.Count, 36, "zone count")
	testkit.MustEqual(t, z.Rows[0].Offset, "UTC-12:00", "westmost offset")
	testkit.MustEqual(t, z.Rows[len(z.Rows)-1].Offset, "UTC+14:00", "eastmost offset")
}

func TestNew_PanicsWithoutPorts(t *testing.T) {
	testkit.MustPanic(t, func() { New(modkit.Deps{}) })
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jbatoolkit/internal/core/civil"
	"jbatoolkit/internal/core/locations"
	"jbatoolkit/internal/core/nightwatch"
	"jbatoolkit/internal/core/workweek"
	"jbatoolkit/internal/modkit"
	"jbatoolkit/internal/modkit/module"
	"jbatoolkit/internal/platform/clock"
	"jbatoolkit/internal/platform/config"
	phttp "jbatoolkit/internal/platform/net/http"
	"jbatoolkit/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func testDeps() modkit.Deps {
	zones := civil.NewZones(0)
	return modkit.Deps{
		Cfg:      config.New(),
		Clock:    clock.NewFake(time.Date(2025, 9, 3, 17, 0, 0, 0, time.UTC)),
		Zones:    zones,
		Table:    locations.MustNew(zones, locations.Default()),
		Window:   nightwatch.DefaultWindow(),
		Schedule: workweek.Default(),
	}
}

func TestMount_RoutesAndRegistry(t *testing.T) {
	module.Reset()
	t.Cleanup(module.Reset)

	mux := chi.NewRouter()
	ref := Mount(phttp.AdaptChi(mux), Options{
		Config:        config.New().Prefix("TEST_API_"),
		Deps:          testDeps(),
		EnableSwagger: true,
	})
	if ref == nil {
		t.Fatalf("Mount returned no refresher")
	}

	names := strings.Join(module.Names(), ",")
	for _, want := range []string{"meta", "board", "weeksec", "refresher"} {
		if !strings.Contains(names, want) {
			t.Fatalf("registry %q missing %q", names, want)
		}
	}

	cases := []struct {
		target string
		code   int
	}{
		{"/api/v1/meta/health", http.StatusOK},
		{"/api/v1/weeksec/days", http.StatusOK},
		{"/api/v1/weeksec/decode/118800", http.StatusOK},
		{"/api/v1/board/workweek?at=2025-09-05T17:30:00Z", http.StatusOK},
		{"/api/v1/board/zones", http.StatusOK},
		{"/api/docs/doc.json", http.StatusOK},
		{"/api/v1/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))
		if rec.Code != tc.code {
			t.Fatalf("%s: status %d want %d body %q", tc.target, rec.Code, tc.code, rec.Body.String())
		}
	}
}

func TestMount_BoardComputedBeforeFirstTick(t *testing.T) {
	module.Reset()
	t.Cleanup(module.Reset)

	mux := chi.NewRouter()
	testkit.MustNotPanic(t, func() {
		Mount(phttp.AdaptChi(mux), Options{Config: config.New(), Deps: testDeps()})
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board", nil))
	var env struct {
		Data struct {
			Source string `json:"source"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Source != "computed" {
		t.Fatalf("source = %q", env.Data.Source)
	}
}

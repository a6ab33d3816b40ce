package module

import (
	"testing"
	"time"

	"jbatoolkit/internal/core/civil"
	"jbatoolkit/internal/core/locations"
	"jbatoolkit/internal/core/nightwatch"
	"jbatoolkit/internal/core/workweek"
	"jbatoolkit/internal/modkit"
	modreg "jbatoolkit/internal/modkit/module"
	"jbatoolkit/internal/platform/clock"
	"jbatoolkit/internal/platform/config"
	rdom "jbatoolkit/internal/services/refresher/domain"
)

func testDeps(t *testing.T) modkit.Deps {
	t.Helper()
	return modkit.Deps{
		Cfg:      config.New(),
		Table:    locations.MustNew(civil.NewZones(0), locations.Default()),
		Window:   nightwatch.DefaultWindow(),
		Schedule: workweek.Default(),
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("JBA_REFRESH_CLOCK", "250ms")
	t.Setenv("JBA_REFRESH_WORKWEEK", "30s")

	cfg := FromConfig(config.New())
	if cfg.ClockEvery != 250*time.Millisecond || cfg.NightEvery != time.Minute || cfg.WorkWeekEvery != 30*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestNew_ExposesPorts(t *testing.T) {
	at := time.Date(2025, 1, 18, 10, 0, 0, 0, time.UTC) // Saturday
	m := New(testDeps(t), FromConfig(config.New()), modkit.WithClock(clock.NewFake(at)))

	if m.Name() != "refresher" || m.Prefix() != "" {
		t.Fatalf("name/prefix = %q %q", m.Name(), m.Prefix())
	}
	ev := modreg.MustPortsOf[rdom.EvaluatorPort](m)
	if !ev.Now().Equal(at) {
		t.Fatalf("module clock override not applied: %v", ev.Now())
	}
	if st := ev.Evaluate(at).WorkWeek.State; st.IsActive || st.StatusText != workweek.OutsideText {
		t.Fatalf("saturday state = %+v", st)
	}
	if _, ok := modreg.PortsOf[rdom.ReaderPort](m); !ok {
		t.Fatal("reader port missing")
	}
	if _, ok := modreg.PortsOf[rdom.RunnerPort](m); !ok {
		t.Fatal("runner port missing")
	}
}

func TestRegister(t *testing.T) {
	modreg.Reset()
	t.Cleanup(modreg.Reset)

	Register(testDeps(t))
	if _, ok := modreg.PortsAs[Ports]("refresher"); !ok {
		t.Fatal("refresher ports not registered")
	}
}

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"jbatoolkit/internal/core/civil"
	"jbatoolkit/internal/core/locations"
	"jbatoolkit/internal/core/nightwatch"
	"jbatoolkit/internal/core/workweek"
	"jbatoolkit/internal/platform/clock"
	perr "jbatoolkit/internal/platform/errors"
)

func newSvc(t *testing.T, clk clock.Clock, cfg Config) *Svc {
	t.Helper()
	tbl, err := locations.New(civil.NewZones(0), locations.Default())
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	return New(clk, tbl, nightwatch.DefaultWindow(), workweek.Default(), cfg)
}

// 2025-01-15 is a Wednesday
var noonUTC = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func TestEvaluate_PureAtInstant(t *testing.T) {
	s := newSvc(t, clock.NewFake(noonUTC), DefaultConfig())

	b := s.Evaluate(noonUTC)
	if b.Clock.Time != "12:00:00" || b.Clock.Date != "Wednesday, January 15, 2025" {
		t.Fatalf("clock = %+v", b.Clock)
	}
	if len(b.Night.Entries) != 7 || b.Night.Entries[0].Name != "USA - Honolulu, HI" {
		t.Fatalf("night = %+v", b.Night.Entries)
	}
	// Mon and Tue complete, Wed 3h in: 20h of 42.5h
	if !b.WorkWeek.State.IsActive || b.WorkWeek.State.PercentageDisplay != "47.1" {
		t.Fatalf("workweek = %+v", b.WorkWeek.State)
	}

	again := s.Evaluate(noonUTC)
	if len(again.Night.Entries) != len(b.Night.Entries) || again.WorkWeek.State != b.WorkWeek.State {
		t.Fatalf("Evaluate is not idempotent")
	}
}

func TestEvaluate_PlacesInstantInClockZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	s := newSvc(t, clock.Zoned{Clock: clock.NewFake(noonUTC), Loc: tokyo}, DefaultConfig())

	b := s.Evaluate(noonUTC)
	if b.Clock.Time != "21:00:00" {
		t.Fatalf("clock = %+v", b.Clock)
	}
	if b.WorkWeek.State.IsActive {
		t.Fatalf("21:00 Tokyo should be outside work hours")
	}
}

func TestRefresh_PublishesFromOneRead(t *testing.T) {
	fake := clock.NewFake(noonUTC)
	s := newSvc(t, fake, DefaultConfig())
	board := s.Board()

	if _, ok := board.Clock(); ok {
		t.Fatal("clock published before any refresh")
	}

	ctx := context.Background()
	s.RefreshClock(ctx)
	s.RefreshNight(ctx)
	s.RefreshWorkWeek(ctx)

	c, ok := board.Clock()
	if !ok || c.Time != "12:00:00" {
		t.Fatalf("clock = %+v %v", c, ok)
	}
	n, _ := board.Night()
	if !n.At.Equal(noonUTC) || len(n.Entries) != 7 {
		t.Fatalf("night = %+v", n)
	}

	fake.Advance(time.Hour)
	s.RefreshClock(ctx)
	if c, _ := board.Clock(); c.Time != "13:00:00" {
		t.Fatalf("clock after advance = %+v", c)
	}
	// night slot is untouched until its own cadence runs
	if n2, _ := board.Night(); !n2.At.Equal(noonUTC) {
		t.Fatalf("night slot changed without refresh: %v", n2.At)
	}
	if full := board.Board(); full.Clock.Time != "13:00:00" || !full.WorkWeek.At.Equal(noonUTC) {
		t.Fatalf("board = %+v", full)
	}
}

func TestRun_RejectsBadConfig(t *testing.T) {
	s := newSvc(t, clock.NewFake(noonUTC), Config{ClockEvery: time.Second})
	if err := s.Run(context.Background()); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v", err)
	}
}

func TestRun_EvaluatesImmediatelyAndStops(t *testing.T) {
	cfg := Config{ClockEvery: 5 * time.Millisecond, NightEvery: time.Hour, WorkWeekEvery: time.Hour}
	s := newSvc(t, clock.NewFake(noonUTC), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	var runErr error
	go func() {
		defer wg.Done()
		runErr = s.Run(ctx)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		_, c := s.Board().Clock()
		_, n := s.Board().Night()
		_, w := s.Board().WorkWeek()
		if c && n && w {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("cadences did not publish at start")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if runErr != nil {
		t.Fatalf("Run: %v", runErr)
	}
}

func TestCadence_NoRunAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var mu sync.Mutex
	calls := 0
	fn := func(context.Context) {
		mu.Lock()
		calls++
		mu.Unlock()
	}

	done := make(chan struct{})
	go func() {
		cadence(ctx, "test", time.Millisecond, fn)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done

	mu.Lock()
	after := calls
	mu.Unlock()
	time.Sleep(10 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if after == 0 || calls != after {
		t.Fatalf("calls = %d after cancel, %d at cancel", calls, after)
	}
}

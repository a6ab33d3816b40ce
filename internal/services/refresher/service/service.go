// Package service runs the refresh cadences and publishes into a Board
package service

import (
	"context"
	"sync"
	"time"

	"jbatoolkit/internal/core/locations"
	"jbatoolkit/internal/core/nightwatch"
	"jbatoolkit/internal/core/wallclock"
	"jbatoolkit/internal/core/workweek"
	"jbatoolkit/internal/platform/clock"
	perr "jbatoolkit/internal/platform/errors"
	"jbatoolkit/internal/platform/logger"
	"jbatoolkit/internal/services/refresher/domain"

	"github.com/google/uuid"
)

// Config holds the cadence periods
type Config struct {
	ClockEvery    time.Duration
	NightEvery    time.Duration
	WorkWeekEvery time.Duration
}

// DefaultConfig is 1s for the clock and 1m for the night set and work week
func DefaultConfig() Config {
	return Config{ClockEvery: time.Second, NightEvery: time.Minute, WorkWeekEvery: time.Minute}
}

// Validate requires every period to be positive
func (c Config) Validate() error {
	if c.ClockEvery <= 0 || c.NightEvery <= 0 || c.WorkWeekEvery <= 0 {
		return perr.InvalidArgf("refresh periods must be positive, got clock=%s night=%s workweek=%s",
			c.ClockEvery, c.NightEvery, c.WorkWeekEvery)
	}
	return nil
}

// Svc evaluates the core computations from a single clock read per refresh
type Svc struct {
	clk      clock.Clock
	table    *locations.Table
	window   nightwatch.Window
	schedule workweek.Schedule
	cfg      Config
	board    *Board
}

// New constructs the refresher. tbl must be non nil.
func New(clk clock.Clock, tbl *locations.Table, win nightwatch.Window, sched workweek.Schedule, cfg Config) *Svc {
	if tbl == nil {
		panic("refresher.Service requires a location table")
	}
	if clk == nil {
		clk = clock.Real{}
	}
	return &Svc{clk: clk, table: tbl, window: win, schedule: sched, cfg: cfg, board: &Board{}}
}

// Board is the latest-value cache the cadences publish into
func (s *Svc) Board() *Board { return s.board }

// Now reads the clock in the process-local zone
func (s *Svc) Now() time.Time { return s.clk.Now() }

// local places an arbitrary instant in the clock's zone
func (s *Svc) local(at time.Time) time.Time { return at.In(s.clk.Now().Location()) }

// Evaluate recomputes every value at at without publishing
func (s *Svc) Evaluate(at time.Time) domain.Board {
	at = s.local(at)
	return domain.Board{
		Clock:    wallclock.Take(at),
		Night:    s.night(at),
		WorkWeek: s.workWeek(at),
	}
}

func (s *Svc) night(at time.Time) domain.NightSet {
	return domain.NightSet{At: at, Window: s.window, Entries: nightwatch.Classify(at, s.table, s.window)}
}

func (s *Svc) workWeek(at time.Time) domain.WorkWeek {
	return domain.WorkWeek{At: at, State: s.schedule.Evaluate(at)}
}

// RefreshClock publishes a new clock readout
func (s *Svc) RefreshClock(_ context.Context) {
	s.board.publishClock(wallclock.Take(s.clk.Now()))
}

// RefreshNight publishes a new night set
func (s *Svc) RefreshNight(ctx context.Context) {
	ns := s.night(s.clk.Now())
	s.board.publishNight(ns)
	logger.C(ctx).Debug().Int("night", len(ns.Entries)).Msg("night set refreshed")
}

// RefreshWorkWeek publishes a new work week state
func (s *Svc) RefreshWorkWeek(ctx context.Context) {
	ww := s.workWeek(s.clk.Now())
	s.board.publishWorkWeek(ww)
	logger.C(ctx).Debug().
		Float64("percentage", ww.State.Percentage).
		Bool("active", ww.State.IsActive).
		Msg("work week refreshed")
}

// Run evaluates each cadence immediately, then on its own ticker, until ctx
// is cancelled. An evaluation in flight completes before Run returns.
func (s *Svc) Run(ctx context.Context) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	log := logger.Named("refresher")
	log.Info().
		Dur("clock", s.cfg.ClockEvery).
		Dur("night", s.cfg.NightEvery).
		Dur("workweek", s.cfg.WorkWeekEvery).
		Int("locations", s.table.Len()).
		Msg("refresher starting")

	var wg sync.WaitGroup
	start := func(name string, every time.Duration, fn func(context.Context)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cadence(ctx, name, every, fn)
		}()
	}
	start(domain.CadenceClock, s.cfg.ClockEvery, s.RefreshClock)
	start(domain.CadenceNight, s.cfg.NightEvery, s.RefreshNight)
	start(domain.CadenceWorkWeek, s.cfg.WorkWeekEvery, s.RefreshWorkWeek)

	wg.Wait()
	log.Info().Msg("refresher stopped")
	return nil
}

// cadence runs fn now and on every tick; each run gets its own run id
func cadence(ctx context.Context, name string, every time.Duration, fn func(context.Context)) {
	t := time.NewTicker(every)
	defer t.Stop()

	run := func() {
		rctx := logger.WithRun(ctx, name+"-"+uuid.NewString())
		fn(rctx)
	}

	run()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if ctx.Err() != nil {
				return
			}
			run()
		}
	}
}

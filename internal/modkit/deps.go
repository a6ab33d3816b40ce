// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"jbatoolkit/internal/core/civil"
	"jbatoolkit/internal/core/locations"
	"jbatoolkit/internal/core/nightwatch"
	"jbatoolkit/internal/core/weeksec"
	"jbatoolkit/internal/core/workweek"
	"jbatoolkit/internal/platform/clock"
	"jbatoolkit/internal/platform/config"
	perr "jbatoolkit/internal/platform/errors"
	"jbatoolkit/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// everything here is read-only after LoadDeps returns
type Deps struct {
	Log      *logger.Logger
	Cfg      config.Conf
	Clock    clock.Clock
	Zones    *civil.Zones
	Table    *locations.Table
	Window   nightwatch.Window
	Schedule workweek.Schedule
	Format   *weeksec.Formatter
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check Table and Format
func (d Deps) ZeroOK() bool { return true }

// Now reads the configured clock, falling back to the real one
func (d Deps) Now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock.Now()
}

// LoadDeps resolves the static configuration under JBA_ and fails fast on
// anything that would otherwise surface as a runtime error later: unknown
// zones in the location table, a bad night window, a bad locale.
func LoadDeps(cfg config.Conf) (Deps, error) {
	jc := cfg.Prefix("JBA_")
	log := logger.Named("deps")

	zones := civil.NewZones(jc.MayInt("ZONE_CACHE", 256))

	recs := locations.Default()
	if path := jc.MayString("LOCATIONS_FILE", ""); path != "" {
		loaded, err := locations.LoadFile(path)
		if err != nil {
			return Deps{}, err
		}
		recs = loaded
		log.Info().Str("path", path).Int("locations", len(recs)).Msg("location table loaded from file")
	}
	tbl, err := locations.New(zones, recs)
	if err != nil {
		return Deps{}, err
	}

	win := nightwatch.Window{
		Start: jc.MayInt("NIGHT_START", nightwatch.DefaultWindow().Start),
		End:   jc.MayInt("NIGHT_END", nightwatch.DefaultWindow().End),
	}
	if err := win.Validate(); err != nil {
		return Deps{}, perr.Wrap(err, perr.ErrorCodeConfig, "JBA_NIGHT_START/JBA_NIGHT_END")
	}

	sched, err := scheduleFrom(jc)
	if err != nil {
		return Deps{}, err
	}

	format, err := weeksec.NewFormatter(jc.MayString("LOCALE", "en-US"))
	if err != nil {
		return Deps{}, err
	}

	loc := jc.MayLocation("TZ", time.Local)

	log.Debug().
		Int("locations", tbl.Len()).
		Int("night_start", win.Start).
		Int("night_end", win.End).
		Str("locale", format.Locale()).
		Str("tz", loc.String()).
		Msg("deps ready")

	return Deps{
		Log:      logger.Get(),
		Cfg:      cfg,
		Clock:    clock.Zoned{Clock: clock.Real{}, Loc: loc},
		Zones:    zones,
		Table:    tbl,
		Window:   win,
		Schedule: sched,
		Format:   format,
	}, nil
}

// scheduleFrom keeps the default hours unless JBA_WORK_CUSTOM is set
func scheduleFrom(jc config.Conf) (workweek.Schedule, error) {
	def := workweek.Default()
	if !jc.MayBool("WORK_CUSTOM", false) {
		return def, nil
	}
	start := jc.MayWallTime("WORK_START", config.WallTime{Hour: def.StartHour, Minute: def.StartMinute})
	end := jc.MayWallTime("WORK_END", config.WallTime{Hour: def.EndHour, Minute: def.EndMinute})
	s := workweek.Schedule{
		StartHour:   start.Hour,
		StartMinute: start.Minute,
		EndHour:     end.Hour,
		EndMinute:   end.Minute,
	}
	if err := s.Validate(); err != nil {
		return workweek.Schedule{}, perr.Wrap(err, perr.ErrorCodeConfig, "JBA_WORK_START/JBA_WORK_END")
	}
	return s, nil
}

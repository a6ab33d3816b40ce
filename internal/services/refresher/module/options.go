package module

import (
	"jbatoolkit/internal/platform/config"
	rsvc "jbatoolkit/internal/services/refresher/service"
)

// FromConfig fills cadence periods from the environment
// JBA_REFRESH_CLOCK (default 1s) is the clock readout period
// JBA_REFRESH_NIGHT (default 1m) is the night set period
// JBA_REFRESH_WORKWEEK (default 1m) is the work week period
func FromConfig(cfg config.Conf) rsvc.Config {
	r := cfg.Prefix("JBA_REFRESH_")
	def := rsvc.DefaultConfig()
	return rsvc.Config{
		ClockEvery:    r.MayDuration("CLOCK", def.ClockEvery),
		NightEvery:    r.MayDuration("NIGHT", def.NightEvery),
		WorkWeekEvery: r.MayDuration("WORKWEEK", def.WorkWeekEvery),
	}
}

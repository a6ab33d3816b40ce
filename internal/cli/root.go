// Package cli is the jbatoolkit command line: one shot readouts of the board,
// the week second encoder and the watch dashboard
package cli

import (
	"time"

	"jbatoolkit/internal/core/version"
	"jbatoolkit/internal/modkit"
	"jbatoolkit/internal/modkit/module"
	perr "jbatoolkit/internal/platform/errors"
	rdom "jbatoolkit/internal/services/refresher/domain"
	refmod "jbatoolkit/internal/services/refresher/module"

	"github.com/spf13/cobra"
)

// Loader resolves the process deps; main passes modkit.LoadDeps over the env
type Loader func() (modkit.Deps, error)

// app carries state shared by every command
type app struct {
	load   Loader
	deps   modkit.Deps
	asJSON bool
}

// NewRoot builds the command tree. Deps are loaded once, before any command runs.
func NewRoot(load Loader) *cobra.Command {
	a := &app{load: load}

	root := &cobra.Command{
		Use:   "jbatoolkit",
		Short: "Clock, night watch, work week progress and week second encoding",
		Long: `jbatoolkit prints the values of the toolkit board and encodes week seconds.

Commands:
  now        24h time and long date in the local zone
  night      locations currently inside the night window
  workweek   Monday to Friday progress
  zones      local time and offset of every location
  encode     seconds since Sunday 00:00:00 for a day and time
  decode     day and time for a week second
  days       day names with their indexes
  watch      live dashboard`,
		Example: `  jbatoolkit now
  jbatoolkit night --at 2025-09-03T12:30:00Z
  jbatoolkit encode Monday 09:00:00
  jbatoolkit decode 118800
  JBA_TZ=Europe/Berlin jbatoolkit watch`,
		Version:       version.Info("jbatoolkit").String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			d, err := a.load()
			if err != nil {
				return err
			}
			a.deps = d
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print JSON instead of text")

	root.AddCommand(
		a.nowCmd(),
		a.nightCmd(),
		a.workWeekCmd(),
		a.zonesCmd(),
		a.encodeCmd(),
		a.decodeCmd(),
		a.daysCmd(),
		a.watchCmd(),
	)
	return root
}

// refresher builds the refresher module over d for one shot evaluation
func refresher(d modkit.Deps) refmod.Ports {
	return module.MustPortsOf[refmod.Ports](refmod.New(d, refmod.FromConfig(d.Cfg)))
}

// eval evaluates the board at the --at instant or now
func (a *app) eval(at string) (rdom.Board, error) {
	t, err := a.instant(at)
	if err != nil {
		return rdom.Board{}, err
	}
	return refresher(a.deps).Evaluator.Evaluate(t), nil
}

// instant is --at when given, else now
func (a *app) instant(at string) (time.Time, error) {
	if at == "" {
		return a.deps.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, perr.WithField(perr.InvalidArgf("--at must be RFC3339, got %q", at), "at")
	}
	return t, nil
}

package cli

import (
	refmod "jbatoolkit/internal/services/refresher/module"
	"jbatoolkit/internal/tui/dashboard"

	"github.com/spf13/cobra"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live dashboard: clock every second, night watch and work week every minute",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return dashboard.Run(refresher(a.deps).Evaluator, a.deps.Format, refmod.FromConfig(a.deps.Cfg))
		},
	}
}

package cli

import (
	"fmt"
	"strings"

	"jbatoolkit/internal/core/nightwatch"
	perr "jbatoolkit/internal/platform/errors"

	"github.com/spf13/cobra"
)

func (a *app) nowCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "now",
		Short: "24h time and long date in the local zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.eval(at)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, b.Clock)
			}
			fmt.Fprintf(w, "%s  %s\n", heading.Sprint(b.Clock.Time), muted.Sprint(b.Clock.Zone))
			fmt.Fprintln(w, b.Clock.Date)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "RFC3339 instant instead of now")
	return cmd
}

func (a *app) nightCmd() *cobra.Command {
	var (
		at         string
		start, end int
	)
	cmd := &cobra.Command{
		Use:   "night",
		Short: "Locations whose local hour is inside the night window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.deps
			if cmd.Flags().Changed("start") {
				d.Window.Start = start
			}
			if cmd.Flags().Changed("end") {
				d.Window.End = end
			}
			if err := d.Window.Validate(); err != nil {
				return perr.WithField(err, "window")
			}
			t, err := a.instant(at)
			if err != nil {
				return err
			}
			set := refresher(d).Evaluator.Evaluate(t).Night

			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, set)
			}
			fmt.Fprintf(w, "%s %s\n", heading.Sprint("Night watch"),
				muted.Sprintf("%02d:00-%02d:00", set.Window.Start, set.Window.End))
			if len(set.Entries) == 0 {
				fmt.Fprintln(w, muted.Sprint("No locations are currently in the night window"))
				return nil
			}
			for _, e := range set.Entries {
				fmt.Fprintf(w, "  %-32s %s\n", e.Name, active.Sprint(e.Clock))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "RFC3339 instant instead of now")
	cmd.Flags().IntVar(&start, "start", nightwatch.DefaultWindow().Start, "first night hour, inclusive")
	cmd.Flags().IntVar(&end, "end", nightwatch.DefaultWindow().End, "last night hour, exclusive")
	return cmd
}

func (a *app) workWeekCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "workweek",
		Short: "Monday to Friday progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.eval(at)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, b.WorkWeek)
			}
			st := b.WorkWeek.State
			badge := muted.Sprint(st.Badge)
			if st.IsActive {
				badge = active.Sprint(st.Badge)
			}
			fmt.Fprintf(w, "%s %s%%  %s\n", heading.Sprint("Work week"), st.PercentageDisplay, badge)
			fmt.Fprintln(w, bar(st.Percentage, 40))
			fmt.Fprintln(w, st.StatusText)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "RFC3339 instant instead of now")
	return cmd
}

// bar draws pct (0-100) as width cells
func bar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func (a *app) zonesCmd() *cobra.Command {
	var at, sort string
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Local time and UTC offset of every location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var byOffset bool
			switch sort {
			case "", "table":
			case "offset":
				byOffset = true
			default:
				return perr.WithField(perr.InvalidArgf("sort must be table or offset, got %q", sort), "sort")
			}
			t, err := a.instant(at)
			if err != nil {
				return err
			}
			rows := a.deps.Table.Overview(t, byOffset)

			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, rows)
			}
			for _, r := range rows {
				fmt.Fprintln(w, r.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "RFC3339 instant instead of now")
	cmd.Flags().StringVar(&sort, "sort", "table", "row order: table or offset")
	return cmd
}

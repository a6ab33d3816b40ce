package cli

import (
	"fmt"
	"strconv"

	"jbatoolkit/internal/core/weeksec"
	perr "jbatoolkit/internal/platform/errors"
	"jbatoolkit/internal/services/api/weeksec/domain"
	wsvc "jbatoolkit/internal/services/api/weeksec/service"

	"github.com/spf13/cobra"
)

func (a *app) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "encode <day> <HH:MM:SS>",
		Short:     "Seconds since Sunday 00:00:00 for a day and time",
		Args:      cobra.ExactArgs(2),
		ValidArgs: weeksec.DayNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := wsvc.New(a.deps.Format).Encode(cmd.Context(), domain.EncodeInput{Day: args[0], Time: args[1]})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, out)
			}
			fmt.Fprintf(w, "%s %s  %s\n", out.Day, out.Time, active.Sprint(out.Display))
			return nil
		},
	}
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <seconds>",
		Short: "Day and time for a week second",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return perr.WithField(perr.InvalidArgf("seconds must be an integer, got %q", args[0]), "seconds")
			}
			out, err := wsvc.New(a.deps.Format).Decode(cmd.Context(), domain.DecodeInput{Seconds: n})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, out)
			}
			fmt.Fprintf(w, "%s %s\n", heading.Sprint(out.Day), out.Time)
			return nil
		},
	}
}

func (a *app) daysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "Day names with their indexes, Sunday first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := wsvc.New(a.deps.Format).Days(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, out)
			}
			for _, d := range out.Days {
				fmt.Fprintf(w, "%d %s\n", d.Index, d.Name)
			}
			return nil
		},
	}
}

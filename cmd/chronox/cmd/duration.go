package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/chronox/foundation/utils/timex"
	"github.com/msto63/chronox/pkg/chrono"
)

func newDurationCmd(a *app) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "duration VALUE",
		Short: "Convert a duration between units",
		Long: `Converts a duration.

VALUE is a Go duration ("1h30m"), a count and unit ("90 min") or a clock
reading ("26:02:00"). A coarser --unit truncates toward zero.

A negative VALUE must follow "--" so that it is not read as a flag:

  chronox duration --unit h -- "-90 min"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := timex.ParseDuration(args[0])
			if err != nil {
				return err
			}
			u, err := parseUnitOr(unit, v.Unit)
			if err != nil {
				return err
			}
			out, err := chrono.Convert(a.resolver, v, chrono.Target{Kind: chrono.KindDuration, Unit: u})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d %s)\n", out, out.Count, out.Unit)
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "unit of the result (default: unit of VALUE)")
	return cmd
}

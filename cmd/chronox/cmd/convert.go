package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/chronox/foundation/core/log"
	"github.com/msto63/chronox/pkg/chrono"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		from     string
		to       string
		in       string
		zoneName string
		unit     string
		choice   string
		raw      bool
	)

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert a time point between clocks, zones and units",
		Long: `Converts a time point.

VALUE is an RFC 3339 timestamp, a civil reading such as "2018-03-25 02:30"
as shown by the --from clock, or @N for N seconds since the epoch of the
--from clock. With --in the reading is a civil time in that zone instead.

The result is a point on the --to clock, or the civil time in --zone.
--unit changes the precision; a coarser unit truncates toward zero.

Examples:
  chronox convert --from utc --to tai "2016-12-31 23:59:59"
  chronox convert --zone Asia/Kolkata 2018-03-25T01:30:00Z
  chronox convert --in Europe/Berlin --choice latest "2018-10-28 02:30"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromClock, err := chrono.ParseClock(from)
			if err != nil {
				return err
			}
			c, err := a.choice(choice)
			if err != nil {
				return err
			}

			if in != "" {
				fromClock = chrono.ClockLocal
			}
			v, err := parsePoint(a.resolver, args[0], fromClock)
			if err != nil {
				return err
			}
			if in != "" {
				z, err := a.zone(in)
				if err != nil {
					return err
				}
				v, err = chrono.Convert(a.resolver, v, chrono.Target{Kind: chrono.KindZoned, Unit: v.Unit, Zone: z, Choice: c})
				if err != nil {
					return err
				}
			}

			target := chrono.Target{Kind: chrono.KindPoint, Choice: c}
			if target.Unit, err = parseUnitOr(unit, v.Unit); err != nil {
				return err
			}
			if zoneName != "" {
				z, err := a.zone(zoneName)
				if err != nil {
					return err
				}
				target.Kind, target.Zone = chrono.KindZoned, z
			} else if target.Clock, err = chrono.ParseClock(to); err != nil {
				return err
			}

			out, err := chrono.Convert(a.resolver, v, target)
			if err != nil {
				return err
			}
			a.logger.Debug("converted", mdwlog.Fields{
				"input": v.String(),
				"kind":  out.Kind.String(),
				"unit":  out.Unit.String(),
			})

			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), out.Count)
				return nil
			}
			s, err := describe(a.resolver, out)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "sys", "clock VALUE is read on: sys, utc, tai, gps, local")
	cmd.Flags().StringVar(&to, "to", "sys", "clock to convert to: sys, utc, tai, gps, local")
	cmd.Flags().StringVar(&in, "in", "", "zone VALUE is a civil time in")
	cmd.Flags().StringVar(&zoneName, "zone", "", "zone to convert to")
	cmd.Flags().StringVar(&unit, "unit", "", "precision of the result (default: precision of VALUE)")
	cmd.Flags().StringVar(&choice, "choice", "", "earliest or latest for ambiguous and skipped local times (default: config)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the count since the epoch instead of a reading")
	return cmd
}

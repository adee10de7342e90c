package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/chronox/pkg/chrono"
)

func newNowCmd(a *app) *cobra.Command {
	var (
		clock    string
		zoneName string
		unit     string
		local    bool
	)

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the current time on a clock or in a zone",
		Long: `Shows the current time.

Without flags the system clock is shown. --clock selects another clock,
--zone shows the civil time in a zone and --local uses the configured
default zone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := chrono.ParseUnit(unit)
			if err != nil {
				return err
			}
			now := chrono.Value{
				Kind:  chrono.KindPoint,
				Clock: chrono.ClockSystem,
				Unit:  chrono.UnitNanosecond,
				Count: chrono.Now().SinceEpoch().Count(),
			}

			to := chrono.Target{Kind: chrono.KindPoint, Unit: u}
			if zoneName != "" || local {
				z, err := a.zone(zoneName)
				if err != nil {
					return err
				}
				to.Kind, to.Zone = chrono.KindZoned, z
			} else if to.Clock, err = chrono.ParseClock(clock); err != nil {
				return err
			}

			v, err := chrono.Convert(a.resolver, now, to)
			if err != nil {
				return err
			}
			s, err := describe(a.resolver, v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVar(&clock, "clock", "sys", "clock to read: sys, utc, tai, gps")
	cmd.Flags().StringVar(&zoneName, "zone", "", "show the civil time in this zone")
	cmd.Flags().BoolVar(&local, "local", false, "show the civil time in the configured zone")
	cmd.Flags().StringVar(&unit, "unit", "ns", "precision: ns, us, ms, s, min, h, d")
	return cmd
}

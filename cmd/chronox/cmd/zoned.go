package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/foundation/utils/timex"
	"github.com/msto63/chronox/pkg/chrono"
)

func newZonedCmd(a *app) *cobra.Command {
	var (
		zoneName string
		choice   string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "zoned LOCAL",
		Short: "Resolve a local time in a zone",
		Long: `Resolves the civil time LOCAL in a zone and shows the instant it
denotes. A time repeated by a backward transition is ambiguous and one
skipped by a forward transition nonexistent; both candidates are shown
unless --choice picks one. --strict fails instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := timex.ParseLocal(args[0])
			if err != nil {
				return err
			}
			z, err := a.zone(zoneName)
			if err != nil {
				return err
			}
			sec, err := chrono.Convert(a.resolver, v, chrono.Target{Kind: chrono.KindPoint, Clock: chrono.ClockLocal, Unit: chrono.UnitSecond})
			if err != nil {
				return err
			}
			local := chrono.At[chrono.Local](chrono.Seconds(sec.Count))
			if strict {
				if _, err := chrono.MakeZonedUnique(z, local); err != nil {
					if errors.Is(err, mdwerror.ErrAmbiguousLocalTime) || errors.Is(err, mdwerror.ErrNonexistentLocalTime) {
						return mdwerror.Wrap(err, "strict resolution").WithDetail("hint", "pass --choice earliest or latest")
					}
					return err
				}
			}
			li := chrono.Classify(z, local)

			w := cmd.OutOrStdout()
			s := newStyles(w)
			kind := li.Kind.String()
			if li.Kind != chrono.Unique {
				kind = s.warn.Render(kind)
			}
			s.field(w, "Local", v.String()+" in "+z.Name()+" ("+kind+")")

			choices := []chrono.Choice{chrono.Earliest, chrono.Latest}
			switch {
			case choice != "":
				c, err := chrono.ParseChoice(choice)
				if err != nil {
					return err
				}
				choices = []chrono.Choice{c}
			case li.Kind == chrono.Unique:
				choices = []chrono.Choice{a.cfg.Choice()}
			}

			for _, c := range choices {
				zv, err := chrono.Convert(a.resolver, v, chrono.Target{Kind: chrono.KindZoned, Unit: v.Unit, Zone: z, Choice: c})
				if err != nil {
					return err
				}
				sys, err := chrono.Convert(a.resolver, zv, chrono.Target{Kind: chrono.KindPoint, Clock: chrono.ClockSystem, Unit: v.Unit})
				if err != nil {
					return err
				}
				d, err := describe(a.resolver, zv)
				if err != nil {
					return err
				}
				label := c.String()
				if li.Kind == chrono.Unique {
					label = "resolved"
				}
				s.field(w, label, fmt.Sprintf("%s = %s", d, sys))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&zoneName, "zone", "", "zone name (default: config)")
	cmd.Flags().StringVar(&choice, "choice", "", "show only the earliest or latest candidate")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when LOCAL is ambiguous or nonexistent")
	return cmd
}

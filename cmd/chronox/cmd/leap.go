package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/chronox/foundation/core/log"
	"github.com/msto63/chronox/pkg/chrono"
)

func newLeapCmd(a *app) *cobra.Command {
	var (
		at      string
		entries bool
	)

	cmd := &cobra.Command{
		Use:   "leap",
		Short: "Show the leap second table",
		Long: `Shows the leap second table in use: its version, expiry and
insertions. --at reports TAI - UTC at an instant given as for convert.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			s := newStyles(w)
			t := a.table

			s.field(w, "Table", s.title.Render(t.Version()))
			s.field(w, "Base offset", strconv.FormatInt(t.BaseOffset(), 10)+"s")
			s.field(w, "Insertions", strconv.Itoa(t.Len()))
			if exp, ok := t.ExpiresDate(); ok {
				status := s.ok.Render("valid")
				if t.IsExpired(chrono.ToTime(chrono.Now())) {
					status = s.warn.Render("expired")
					a.logger.Warn("leap second table expired", mdwlog.Fields{"expires": exp.String()})
				}
				s.field(w, "Expires", exp.String()+" ("+status+")")
			} else {
				s.field(w, "Expires", s.muted.Render("never"))
			}

			if at != "" {
				v, err := parsePoint(a.resolver, at, chrono.ClockSystem)
				if err != nil {
					return err
				}
				sys, err := chrono.Convert(a.resolver, v, chrono.Target{Kind: chrono.KindPoint, Clock: chrono.ClockSystem, Unit: chrono.UnitSecond})
				if err != nil {
					return err
				}
				line := fmt.Sprintf("%ds at %s", t.OffsetAt(sys.Count), sys)
				if a.resolver.Extrapolated(sys.Count) {
					line += " " + s.warn.Render("(extrapolated)")
				}
				s.field(w, "TAI - UTC", line)
			}

			if entries {
				fmt.Fprintln(w)
				for _, e := range t.Entries() {
					fmt.Fprintf(w, "  %s  %3ds\n", e.Date, e.Offset)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "instant to report TAI - UTC at")
	cmd.Flags().BoolVarP(&entries, "entries", "e", false, "list every insertion")
	return cmd
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/foundation/utils/timex"
	"github.com/msto63/chronox/pkg/calendar"
)

func newMonthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month [YYYY-MM | YEAR MONTH]",
		Short: "Print the calendar grid of a month",
		Long: `Prints a month as a grid of weeks starting on Monday. Without
arguments the current month in the configured zone is shown.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := a.monthArg(args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			s := newStyles(w)
			fmt.Fprintln(w, s.title.Render(fmt.Sprintf("%s %s", ym.Month, ym.Year)))

			var header strings.Builder
			for d := calendar.Monday; d <= calendar.Sunday; d++ {
				fmt.Fprintf(&header, "%4s", d.String())
			}
			fmt.Fprintln(w, s.muted.Render(header.String()))

			var line strings.Builder
			first := ym.Day(1).Weekday()
			line.WriteString(strings.Repeat("    ", int(first)))
			last := calendar.LastDayOf(ym.Year, ym.Month)
			for d := calendar.Day(1); d <= last; d++ {
				wd := first.Add(int(d - 1))
				cell := fmt.Sprintf("%4d", int(d))
				if wd >= calendar.Saturday {
					cell = s.weekend.Render(cell)
				}
				line.WriteString(cell)
				if wd == calendar.Sunday {
					fmt.Fprintln(w, line.String())
					line.Reset()
				}
			}
			if line.Len() > 0 {
				fmt.Fprintln(w, line.String())
			}
			return nil
		},
	}
	return cmd
}

// monthArg parses YYYY-MM, YEAR MONTH or nothing for the current month
func (a *app) monthArg(args []string) (calendar.YearMonth, error) {
	var ym calendar.YearMonth
	switch len(args) {
	case 0:
		today, err := a.dateArg(nil)
		if err != nil {
			return ym, err
		}
		return today.YearMonth(), nil
	case 1:
		ymd, err := timex.ParseDate(args[0] + "-01")
		if err != nil {
			return ym, err
		}
		return ymd.YearMonth(), nil
	}

	y, err1 := strconv.Atoi(args[0])
	m, err2 := strconv.Atoi(args[1])
	ym = calendar.YearMonth{Year: calendar.Year(y), Month: calendar.Month(m)}
	if err1 != nil || err2 != nil || m < 1 || m > 12 || !ym.Ok() {
		return ym, mdwerror.New("invalid month").
			WithCode(mdwerror.CodeInvalidCalendar).
			WithOperation("cmd.month").
			WithDetail("input", strings.Join(args, " "))
	}
	return ym, nil
}

package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/chronox/foundation/utils/timex"
	"github.com/msto63/chronox/pkg/calendar"
	"github.com/msto63/chronox/pkg/chrono"
)

func newDateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date [DATE]",
		Short: "Show calendar facts about a date",
		Long: `Shows the weekday, its occurrence in the month, the day of the year
and the day count since 1970-01-01 of DATE. Without DATE today in the
configured zone is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ymd, err := a.dateArg(args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			s := newStyles(w)
			wd := ymd.Weekday()
			nth := uint8((ymd.Day-1)/7 + 1)
			last := calendar.LastDayOf(ymd.Year, ymd.Month)
			occurrence := wd.Nth(nth).String()
			if ymd.Day+7 > last {
				occurrence += ", " + wd.Last().String()
			}
			leap := "no"
			if ymd.Year.IsLeap() {
				leap = "yes"
			}
			jan1 := calendar.Date(ymd.Year, calendar.January, 1)

			s.field(w, "Date", s.title.Render(ymd.String()))
			s.field(w, "Weekday", wd.String()+" (ISO "+strconv.Itoa(wd.ISO())+")")
			s.field(w, "Occurrence", occurrence)
			s.field(w, "Day of year", strconv.FormatInt(ymd.Days()-jan1.Days()+1, 10))
			s.field(w, "Month days", last.String())
			s.field(w, "Leap year", leap)
			s.field(w, "Day count", strconv.FormatInt(ymd.Days(), 10))
			return nil
		},
	}
	return cmd
}

// dateArg parses the optional date argument, defaulting to today in the
// configured zone
func (a *app) dateArg(args []string) (calendar.YearMonthDay, error) {
	if len(args) == 1 {
		return timex.ParseDate(args[0])
	}
	z, err := a.zone("")
	if err != nil {
		return calendar.YearMonthDay{}, err
	}
	return chrono.NowIn(z).Date(), nil
}

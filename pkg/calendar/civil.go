// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     calendar
// Description: YearMonthDay and the day count bijection
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package calendar

// YearMonthDay is a calendar date.
type YearMonthDay struct {
	Year  Year
	Month Month
	Day   Day
}

// NewYearMonthDay returns the date y-m-d or an error if it does not exist
func NewYearMonthDay(y Year, m Month, d Day) (YearMonthDay, error) {
	ymd := YearMonthDay{Year: y, Month: m, Day: d}
	if !ymd.Ok() {
		return YearMonthDay{}, invalid("calendar.NewYearMonthDay", "date does not exist").
			WithDetail("year", int(y)).
			WithDetail("month", int(m)).
			WithDetail("day", int(d))
	}
	return ymd, nil
}

// Date is the unchecked shorthand for YearMonthDay{y, m, d}
func Date(y Year, m Month, d Day) YearMonthDay {
	return YearMonthDay{Year: y, Month: m, Day: d}
}

// Ok reports whether the date exists in the proleptic Gregorian calendar
func (ymd YearMonthDay) Ok() bool {
	return ymd.Year.Ok() && ymd.Month.Ok() && ymd.Day >= 1 && ymd.Day <= LastDayOf(ymd.Year, ymd.Month)
}

// Days returns the number of days from 1970-01-01 to ymd. The result is
// meaningful only when Month is valid; an out-of-range Day counts past the
// end of the month.
func (ymd YearMonthDay) Days() int64 {
	y := int64(ymd.Year)
	m := int64(ymd.Month)
	d := int64(ymd.Day)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// FromDays returns the date days after 1970-01-01. It is the inverse of Days
// for every valid date.
func FromDays(days int64) YearMonthDay {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
	}
	if m <= 2 {
		y++
	}
	return YearMonthDay{Year: Year(y), Month: Month(m), Day: Day(d)}
}

// Weekday returns the day of the week of ymd
func (ymd YearMonthDay) Weekday() Weekday {
	return WeekdayOf(ymd.Days())
}

// YearMonth drops the day
func (ymd YearMonthDay) YearMonth() YearMonth {
	return YearMonth{Year: ymd.Year, Month: ymd.Month}
}

// AddDays returns the date n days after ymd
func (ymd YearMonthDay) AddDays(n int64) YearMonthDay {
	return FromDays(ymd.Days() + n)
}

// AddMonths moves the month field by n keeping the day. The result is not
// normalized: 2018-01-31 plus one month is 2018-02-31, which is not Ok.
func (ymd YearMonthDay) AddMonths(n int) YearMonthDay {
	ym := ymd.YearMonth().AddMonths(n)
	return YearMonthDay{Year: ym.Year, Month: ym.Month, Day: ymd.Day}
}

// AddYears moves the year field by n keeping month and day, without
// normalizing February 29.
func (ymd YearMonthDay) AddYears(n int) YearMonthDay {
	return YearMonthDay{Year: ymd.Year + Year(n), Month: ymd.Month, Day: ymd.Day}
}

// Compare orders dates chronologically
func (ymd YearMonthDay) Compare(other YearMonthDay) int {
	a, b := ymd.Days(), other.Days()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders ymd as year-MM-DD
func (ymd YearMonthDay) String() string {
	return ymd.Year.String() + "-" + pad2(int(ymd.Month)) + "-" + pad2(int(ymd.Day))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

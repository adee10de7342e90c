// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     calendar
// Description: Year, month, day and weekday fields
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package calendar

import (
	"strconv"
	"time"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
)

const (
	// MinYear and MaxYear bound the years for which Ok reports true
	MinYear Year = -32767
	MaxYear Year = 32767
)

// Year is a proleptic Gregorian year. Year 0 is 1 BCE.
type Year int32

// Ok reports whether y is inside [MinYear, MaxYear]
func (y Year) Ok() bool {
	return y >= MinYear && y <= MaxYear
}

// IsLeap reports whether y has 366 days
func (y Year) IsLeap() bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// Days returns the number of days in y
func (y Year) Days() int {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// Month combines y with m
func (y Year) Month(m Month) YearMonth {
	return YearMonth{Year: y, Month: m}
}

// String renders y as a plain decimal number, e.g. 5 or -44
func (y Year) String() string {
	return strconv.Itoa(int(y))
}

// Padded renders y with at least four digits and a leading minus sign for
// years before year 0. Time point layouts use it.
func (y Year) Padded() string {
	v := int(y)
	if v < 0 {
		return "-" + padN(-v, 4)
	}
	return padN(v, 4)
}

// Month is a month of the year, January = 1.
type Month uint8

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Ok reports whether m is in 1..12
func (m Month) Ok() bool {
	return m >= January && m <= December
}

// AddMonths returns m moved by n months, wrapping around December
func (m Month) AddMonths(n int) Month {
	i := (int(m) - 1 + n) % 12
	if i < 0 {
		i += 12
	}
	return Month(i + 1)
}

// Day combines m with d
func (m Month) Day(d Day) MonthDay {
	return MonthDay{Month: m, Day: d}
}

// Last returns the descriptor for the last day of m
func (m Month) Last() MonthDayLast {
	return MonthDayLast{Month: m}
}

// String returns the three letter English abbreviation of m
func (m Month) String() string {
	if !m.Ok() {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// Day is a day of the month.
type Day uint8

// Ok reports whether d is in 1..31
func (d Day) Ok() bool {
	return d >= 1 && d <= 31
}

// String renders d with two digits
func (d Day) String() string {
	return pad2(int(d))
}

// Weekday is a day of the week numbered from Monday = 0 to Sunday = 6, so
// the native ordering of the type is Monday < Tuesday < ... < Sunday.
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// epochWeekday is the weekday of 1970-01-01
const epochWeekday = Thursday

// WeekdayOf returns the weekday of the day count days since 1970-01-01
func WeekdayOf(days int64) Weekday {
	w := (days + int64(epochWeekday)) % 7
	if w < 0 {
		w += 7
	}
	return Weekday(w)
}

// FromStd converts a time.Weekday
func FromStd(w time.Weekday) Weekday {
	return Weekday((int(w) + 6) % 7)
}

// Ok reports whether w is in Monday..Sunday
func (w Weekday) Ok() bool {
	return w <= Sunday
}

// Std converts w to a time.Weekday
func (w Weekday) Std() time.Weekday {
	return time.Weekday((int(w) + 1) % 7)
}

// ISO returns the ISO 8601 weekday number, Monday = 1
func (w Weekday) ISO() int {
	return int(w) + 1
}

// Add returns the weekday n days after w
func (w Weekday) Add(n int) Weekday {
	return WeekdayOf(int64(w) - int64(epochWeekday) + int64(n))
}

// Since returns the number of days in 0..6 from other forward to w
func (w Weekday) Since(other Weekday) int {
	return (int(w) - int(other) + 7) % 7
}

// Nth returns the descriptor for the n-th w of a month
func (w Weekday) Nth(n uint8) WeekdayIndexed {
	return WeekdayIndexed{Weekday: w, Index: n}
}

// Last returns the descriptor for the last w of a month
func (w Weekday) Last() WeekdayLast {
	return WeekdayLast{Weekday: w}
}

// String returns the three letter English abbreviation of w
func (w Weekday) String() string {
	if !w.Ok() {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayNames[w]
}

// LastDayOf returns the last day of month m in year y. m must be valid.
func LastDayOf(y Year, m Month) Day {
	switch m {
	case February:
		if y.IsLeap() {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

func pad2(v int) string {
	return padN(v, 2)
}

func padN(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func invalid(op, msg string) *mdwerror.Error {
	return mdwerror.New(msg).
		WithCode(mdwerror.CodeInvalidCalendar).
		WithOperation(op)
}

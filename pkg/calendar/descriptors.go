// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     calendar
// Description: Composite calendar descriptors
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package calendar

import "strconv"

// ===============================
// Weekday descriptors
// ===============================

// WeekdayIndexed is the Index-th occurrence of Weekday in some month,
// Index in 1..5.
type WeekdayIndexed struct {
	Weekday Weekday
	Index   uint8
}

// NewWeekdayIndexed validates the weekday and index
func NewWeekdayIndexed(w Weekday, index uint8) (WeekdayIndexed, error) {
	wi := WeekdayIndexed{Weekday: w, Index: index}
	if !wi.Ok() {
		return WeekdayIndexed{}, invalid("calendar.NewWeekdayIndexed", "weekday index out of range").
			WithDetail("weekday", int(w)).
			WithDetail("index", int(index))
	}
	return wi, nil
}

// Ok reports whether the weekday is valid and Index is in 1..5
func (wi WeekdayIndexed) Ok() bool {
	return wi.Weekday.Ok() && wi.Index >= 1 && wi.Index <= 5
}

// String renders wi as e.g. Mon[2]
func (wi WeekdayIndexed) String() string {
	return wi.Weekday.String() + "[" + strconv.Itoa(int(wi.Index)) + "]"
}

// WeekdayLast is the last occurrence of Weekday in some month.
type WeekdayLast struct {
	Weekday Weekday
}

// Ok reports whether the weekday is valid
func (wl WeekdayLast) Ok() bool {
	return wl.Weekday.Ok()
}

// String renders wl as e.g. Mon[last]
func (wl WeekdayLast) String() string {
	return wl.Weekday.String() + "[last]"
}

// ===============================
// Month descriptors
// ===============================

// MonthDay is a day of a month in an unspecified year.
type MonthDay struct {
	Month Month
	Day   Day
}

// NewMonthDay validates m and d against the longest form of m (February has 29 days)
func NewMonthDay(m Month, d Day) (MonthDay, error) {
	md := MonthDay{Month: m, Day: d}
	if !md.Ok() {
		return MonthDay{}, invalid("calendar.NewMonthDay", "day out of range for month").
			WithDetail("month", int(m)).
			WithDetail("day", int(d))
	}
	return md, nil
}

// Ok reports whether the day exists in Month of at least one year
func (md MonthDay) Ok() bool {
	return md.Month.Ok() && md.Day >= 1 && md.Day <= LastDayOf(0, md.Month)
}

// In places md in year y
func (md MonthDay) In(y Year) YearMonthDay {
	return YearMonthDay{Year: y, Month: md.Month, Day: md.Day}
}

// String renders md as e.g. Jan/05
func (md MonthDay) String() string {
	return md.Month.String() + "/" + md.Day.String()
}

// MonthDayLast is the last day of a month in an unspecified year.
type MonthDayLast struct {
	Month Month
}

// Ok reports whether the month is valid
func (ml MonthDayLast) Ok() bool {
	return ml.Month.Ok()
}

// In places ml in year y
func (ml MonthDayLast) In(y Year) YearMonthDayLast {
	return YearMonthDayLast{Year: y, Month: ml.Month}
}

// String renders ml as e.g. Feb/last
func (ml MonthDayLast) String() string {
	return ml.Month.String() + "/last"
}

// MonthWeekday is the n-th weekday of a month in an unspecified year.
type MonthWeekday struct {
	Month   Month
	Weekday WeekdayIndexed
}

// Ok reports whether both parts are valid
func (mw MonthWeekday) Ok() bool {
	return mw.Month.Ok() && mw.Weekday.Ok()
}

// In places mw in year y
func (mw MonthWeekday) In(y Year) YearMonthWeekday {
	return YearMonthWeekday{Year: y, Month: mw.Month, Weekday: mw.Weekday}
}

// String renders mw as e.g. Jan/Mon[2]
func (mw MonthWeekday) String() string {
	return mw.Month.String() + "/" + mw.Weekday.String()
}

// MonthWeekdayLast is the last weekday of a month in an unspecified year.
type MonthWeekdayLast struct {
	Month   Month
	Weekday WeekdayLast
}

// Ok reports whether both parts are valid
func (mw MonthWeekdayLast) Ok() bool {
	return mw.Month.Ok() && mw.Weekday.Ok()
}

// In places mw in year y
func (mw MonthWeekdayLast) In(y Year) YearMonthWeekdayLast {
	return YearMonthWeekdayLast{Year: y, Month: mw.Month, Weekday: mw.Weekday}
}

// String renders mw as e.g. Jan/Mon[last]
func (mw MonthWeekdayLast) String() string {
	return mw.Month.String() + "/" + mw.Weekday.String()
}

// ===============================
// Year qualified descriptors
// ===============================

// YearMonth is a month of a specific year.
type YearMonth struct {
	Year  Year
	Month Month
}

// Ok reports whether year and month are valid
func (ym YearMonth) Ok() bool {
	return ym.Year.Ok() && ym.Month.Ok()
}

// AddMonths returns the month n months after ym
func (ym YearMonth) AddMonths(n int) YearMonth {
	total := int64(ym.Year)*12 + int64(ym.Month) - 1 + int64(n)
	y := floorDiv(total, 12)
	return YearMonth{Year: Year(y), Month: Month(total - y*12 + 1)}
}

// Day combines ym with d
func (ym YearMonth) Day(d Day) YearMonthDay {
	return YearMonthDay{Year: ym.Year, Month: ym.Month, Day: d}
}

// Last returns the last day of ym
func (ym YearMonth) Last() YearMonthDayLast {
	return YearMonthDayLast{Year: ym.Year, Month: ym.Month}
}

// Weekday returns the n-th weekday descriptor of ym
func (ym YearMonth) Weekday(wi WeekdayIndexed) YearMonthWeekday {
	return YearMonthWeekday{Year: ym.Year, Month: ym.Month, Weekday: wi}
}

// LastWeekday returns the last weekday descriptor of ym
func (ym YearMonth) LastWeekday(w Weekday) YearMonthWeekdayLast {
	return YearMonthWeekdayLast{Year: ym.Year, Month: ym.Month, Weekday: WeekdayLast{Weekday: w}}
}

// String renders ym as e.g. 2018-03
func (ym YearMonth) String() string {
	return ym.Year.String() + "-" + pad2(int(ym.Month))
}

// YearMonthDayLast is the last day of a month of a specific year.
type YearMonthDayLast struct {
	Year  Year
	Month Month
}

// Ok reports whether year and month are valid
func (yml YearMonthDayLast) Ok() bool {
	return yml.Year.Ok() && yml.Month.Ok()
}

// Day returns the last day of the month
func (yml YearMonthDayLast) Day() Day {
	return LastDayOf(yml.Year, yml.Month)
}

// YearMonthDay resolves yml to a date
func (yml YearMonthDayLast) YearMonthDay() YearMonthDay {
	return YearMonthDay{Year: yml.Year, Month: yml.Month, Day: yml.Day()}
}

// Days returns the day count of the resolved date
func (yml YearMonthDayLast) Days() int64 {
	return yml.YearMonthDay().Days()
}

// String renders yml as e.g. 2018-02/last
func (yml YearMonthDayLast) String() string {
	return YearMonth{Year: yml.Year, Month: yml.Month}.String() + "/last"
}

// YearMonthWeekday is the n-th weekday of a month of a specific year.
type YearMonthWeekday struct {
	Year    Year
	Month   Month
	Weekday WeekdayIndexed
}

// NewYearMonthWeekday validates that the n-th weekday occurs in the month
func NewYearMonthWeekday(y Year, m Month, wi WeekdayIndexed) (YearMonthWeekday, error) {
	ymw := YearMonthWeekday{Year: y, Month: m, Weekday: wi}
	if !ymw.Ok() {
		return YearMonthWeekday{}, invalid("calendar.NewYearMonthWeekday", "weekday does not occur that often in month").
			WithDetail("year", int(y)).
			WithDetail("month", int(m)).
			WithDetail("weekday", wi.String())
	}
	return ymw, nil
}

// Ok reports whether the descriptor names an existing day
func (ymw YearMonthWeekday) Ok() bool {
	if !ymw.Year.Ok() || !ymw.Month.Ok() || !ymw.Weekday.Ok() {
		return false
	}
	return ymw.day() <= int64(LastDayOf(ymw.Year, ymw.Month))
}

func (ymw YearMonthWeekday) day() int64 {
	first := YearMonthDay{Year: ymw.Year, Month: ymw.Month, Day: 1}
	offset := ymw.Weekday.Weekday.Since(first.Weekday())
	return int64(1+offset) + int64(ymw.Weekday.Index-1)*7
}

// Days returns the day count of the named day. For a descriptor that is
// not Ok the count runs past the end of the month.
func (ymw YearMonthWeekday) Days() int64 {
	return YearMonthDay{Year: ymw.Year, Month: ymw.Month, Day: 1}.Days() + ymw.day() - 1
}

// YearMonthDay resolves ymw to a date
func (ymw YearMonthWeekday) YearMonthDay() YearMonthDay {
	return FromDays(ymw.Days())
}

// String renders ymw as e.g. 2018-03/Sun[5]
func (ymw YearMonthWeekday) String() string {
	return YearMonth{Year: ymw.Year, Month: ymw.Month}.String() + "/" + ymw.Weekday.String()
}

// YearMonthWeekdayLast is the last weekday of a month of a specific year.
type YearMonthWeekdayLast struct {
	Year    Year
	Month   Month
	Weekday WeekdayLast
}

// Ok reports whether the parts are valid. A last weekday always exists.
func (yml YearMonthWeekdayLast) Ok() bool {
	return yml.Year.Ok() && yml.Month.Ok() && yml.Weekday.Ok()
}

// Days returns the day count of the named day
func (yml YearMonthWeekdayLast) Days() int64 {
	last := YearMonthDayLast{Year: yml.Year, Month: yml.Month}.Days()
	return last - int64(WeekdayOf(last).Since(yml.Weekday.Weekday))
}

// YearMonthDay resolves yml to a date
func (yml YearMonthWeekdayLast) YearMonthDay() YearMonthDay {
	return FromDays(yml.Days())
}

// String renders yml as e.g. 2018-03/Sun[last]
func (yml YearMonthWeekdayLast) String() string {
	return YearMonth{Year: yml.Year, Month: yml.Month}.String() + "/" + yml.Weekday.String()
}

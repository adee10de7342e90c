// File: timex.go
// Title: Time Input Utilities
// Description: Parses textual dates, civil readings, instants and durations
//              into chrono values and bridges time.Time to the chrono types.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Added FormatDurationCompact function, fixed business day logic,
//                       enhanced European date parsing support (DD.MM.YYYY format),
//                       improved negative duration validation
// - 2026-10-14 v0.2.0: Parsing produces chrono values with the precision of the
//                       input; business day and display helpers removed

package timex

import (
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/pkg/calendar"
	"github.com/msto63/chronox/pkg/chrono"
)

// Accepted layouts for civil readings, most specific first
const (
	ISO8601DateTime  = "2006-01-02T15:04:05.999999999"
	BusinessDateTime = "2006-01-02 15:04:05.999999999"
	ISO8601Minute    = "2006-01-02T15:04"
	BusinessMinute   = "2006-01-02 15:04"
	BusinessDate     = "2006-01-02"
	EuropeanDateTime = "02.01.2006 15:04:05.999999999"
	EuropeanMinute   = "02.01.2006 15:04"
	EuropeanDate     = "02.01.2006"
	CompactDateTime  = "20060102150405"
	CompactDate      = "20060102"
)

type layout struct {
	format string
	unit   chrono.Unit
}

// layouts lists the civil layouts with the unit they resolve to. A layout
// with a fractional part refines its unit from the digits present.
var layouts = []layout{
	{ISO8601DateTime, chrono.UnitSecond},
	{BusinessDateTime, chrono.UnitSecond},
	{ISO8601Minute, chrono.UnitMinute},
	{BusinessMinute, chrono.UnitMinute},
	{BusinessDate, chrono.UnitDay},
	{EuropeanDateTime, chrono.UnitSecond},
	{EuropeanMinute, chrono.UnitMinute},
	{EuropeanDate, chrono.UnitDay},
	{CompactDateTime, chrono.UnitSecond},
	{CompactDate, chrono.UnitDay},
}

// ===============================
// Parsing Functions
// ===============================

// ParseLocal parses a civil reading without zone into a Local point. The
// unit of the result is the finest field present: days for a date, minutes
// for HH:MM, seconds for HH:MM:SS, and ms, us or ns for 1-3, 4-6 or 7-9
// fractional digits.
func ParseLocal(value string) (chrono.Value, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return chrono.Value{}, parseError("timex.ParseLocal", "empty time string", value)
	}

	for _, l := range layouts {
		t, err := time.Parse(l.format, value)
		if err != nil {
			continue
		}
		unit := l.unit
		if unit == chrono.UnitSecond {
			unit = fractionUnit(value)
		}
		return chrono.Value{
			Kind:  chrono.KindPoint,
			Clock: chrono.ClockLocal,
			Unit:  unit,
			Count: civilCount(t, unit),
		}, nil
	}
	return chrono.Value{}, parseError("timex.ParseLocal", "unable to parse time string", value)
}

// ParseInstant parses an RFC 3339 timestamp with offset into a System point
// with nanosecond resolution
func ParseInstant(value string) (chrono.Value, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(value))
	if err != nil {
		return chrono.Value{}, mdwerror.Wrap(err, "unable to parse instant").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("timex.ParseInstant").
			WithDetail("input", value)
	}
	return FromTime(t), nil
}

// ParseDate parses a date string (without time component)
func ParseDate(value string) (calendar.YearMonthDay, error) {
	value = strings.TrimSpace(value)
	for _, format := range []string{BusinessDate, EuropeanDate, CompactDate, "2006-1-2", "2.1.2006"} {
		if t, err := time.Parse(format, value); err == nil {
			return calendar.Date(calendar.Year(t.Year()), calendar.Month(t.Month()), calendar.Day(t.Day())), nil
		}
	}
	return calendar.YearMonthDay{}, parseError("timex.ParseDate", "unable to parse date string", value)
}

// ParseDuration parses a signed duration in one of three forms: a Go
// duration ("1h30m", "-90s") at nanosecond resolution, a count and unit
// ("90 seconds", "-3 d") in that unit, or a clock reading ("26:02",
// "-01:01:01.001") in the unit of its finest field.
func ParseDuration(value string) (chrono.Value, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return chrono.Value{}, parseError("timex.ParseDuration", "empty duration string", value)
	}

	if strings.Contains(value, ":") {
		return parseClock(value)
	}

	if parts := strings.Fields(value); len(parts) == 2 {
		n, err := strconv.ParseInt(parts[0], 10, 64)
		if err == nil {
			if u, err := chrono.ParseUnit(parts[1]); err == nil {
				return chrono.Value{Kind: chrono.KindDuration, Unit: u, Count: n}, nil
			}
		}
	}

	if d, err := time.ParseDuration(value); err == nil {
		return chrono.Value{Kind: chrono.KindDuration, Unit: chrono.UnitNanosecond, Count: int64(d)}, nil
	}
	return chrono.Value{}, parseError("timex.ParseDuration", "unable to parse duration string", value)
}

// parseClock parses [-]HH:MM[:SS[.f]] where HH may exceed 23
func parseClock(value string) (chrono.Value, error) {
	neg := strings.HasPrefix(value, "-")
	fields := strings.Split(strings.TrimPrefix(value, "-"), ":")
	if len(fields) < 2 || len(fields) > 3 {
		return chrono.Value{}, parseError("timex.ParseDuration", "clock duration needs HH:MM or HH:MM:SS", value)
	}

	var frac string
	if len(fields) == 3 {
		if i := strings.IndexByte(fields[2], '.'); i >= 0 {
			fields[2], frac = fields[2][:i], fields[2][i+1:]
		}
	}
	var hms [3]int64
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil || (i > 0 && (n > 59 || len(f) != 2)) {
			return chrono.Value{}, parseError("timex.ParseDuration", "invalid clock field", value)
		}
		hms[i] = int64(n)
	}
	if len(frac) > 9 || (frac != "" && strings.Trim(frac, "0123456789") != "") {
		return chrono.Value{}, parseError("timex.ParseDuration", "invalid fraction", value)
	}

	unit := chrono.UnitMinute
	sec := hms[0]*3600 + hms[1]*60 + hms[2]
	count := sec / 60
	if len(fields) == 3 {
		unit = fractionUnit("." + frac)
		if frac == "" {
			unit = chrono.UnitSecond
		}
		count = sec*perSecond(unit) + fractionCount(frac, unit)
	}
	if neg {
		count = -count
	}
	return chrono.Value{Kind: chrono.KindDuration, Unit: unit, Count: count}, nil
}

// ===============================
// time.Time bridge
// ===============================

// FromTime converts t to a System point with nanosecond resolution
func FromTime(t time.Time) chrono.Value {
	return chrono.Value{
		Kind:  chrono.KindPoint,
		Clock: chrono.ClockSystem,
		Unit:  chrono.UnitNanosecond,
		Count: chrono.FromTime(t).SinceEpoch().Count(),
	}
}

// ToTime converts a System point to a time.Time in UTC
func ToTime(v chrono.Value) (time.Time, error) {
	if v.Kind != chrono.KindPoint || v.Clock != chrono.ClockSystem {
		return time.Time{}, mdwerror.New("only system clock points convert to time.Time").
			WithCode(mdwerror.CodeUnsupportedConversion).
			WithOperation("timex.ToTime").
			WithDetail("value", v.String())
	}
	ns, err := chrono.Convert(nil, v, chrono.Target{Kind: chrono.KindPoint, Clock: chrono.ClockSystem, Unit: chrono.UnitNanosecond})
	if err != nil {
		return time.Time{}, err
	}
	return chrono.ToTime(chrono.At[chrono.System](chrono.Nanoseconds(ns.Count))), nil
}

// ===============================
// Helpers
// ===============================

// fractionUnit returns the unit matching the fractional digits of value
func fractionUnit(value string) chrono.Unit {
	i := strings.LastIndexByte(value, '.')
	if i < 0 || i < strings.LastIndexByte(value, ':') {
		return chrono.UnitSecond
	}
	switch n := len(value) - i - 1; {
	case n == 0:
		return chrono.UnitSecond
	case n <= 3:
		return chrono.UnitMillisecond
	case n <= 6:
		return chrono.UnitMicrosecond
	default:
		return chrono.UnitNanosecond
	}
}

func perSecond(u chrono.Unit) int64 {
	switch u {
	case chrono.UnitMillisecond:
		return 1_000
	case chrono.UnitMicrosecond:
		return 1_000_000
	case chrono.UnitNanosecond:
		return 1_000_000_000
	}
	return 1
}

// fractionCount converts fractional digits to ticks of u
func fractionCount(frac string, u chrono.Unit) int64 {
	if frac == "" {
		return 0
	}
	ns, _ := strconv.ParseInt((frac + "000000000")[:9], 10, 64)
	return ns / (1_000_000_000 / perSecond(u))
}

// civilCount returns the reading of t's fields since 1970-01-01 in u. The
// location of t is ignored.
func civilCount(t time.Time, u chrono.Unit) int64 {
	days := calendar.Date(calendar.Year(t.Year()), calendar.Month(t.Month()), calendar.Day(t.Day())).Days()
	switch u {
	case chrono.UnitDay:
		return days
	case chrono.UnitMinute:
		return days*1440 + int64(t.Hour()*60+t.Minute())
	}
	sec := days*86400 + int64(t.Hour()*3600+t.Minute()*60+t.Second())
	return sec*perSecond(u) + int64(t.Nanosecond())/(1_000_000_000/perSecond(u))
}

func parseError(op, msg, input string) *mdwerror.Error {
	return mdwerror.New(msg).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation(op).
		WithDetail("input", input)
}

// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     chrono
// Description: Fixed layout rendering of durations and time points
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package chrono

import (
	"strconv"
	"strings"

	"github.com/msto63/chronox/pkg/calendar"
)

// The layout of a rendered value depends only on its period and
// representation. Floating representations always print every field with
// nine fractional digits.
//
//	period          duration          time point
//	>= 1 year       HH:00             YYYY
//	>= 1 month      HH:00             YYYY-MM
//	>= 1 day        HH:00             YYYY-MM-DD
//	>= 1 hour       HH:00             YYYY-MM-DD HH:00
//	>= 1 minute     HH:MM             YYYY-MM-DD HH:MM
//	>= 1 second     HH:MM:SS          YYYY-MM-DD HH:MM:SS
//	>= 1 ms         HH:MM:SS.fff      YYYY-MM-DD HH:MM:SS.fff
//	>= 1 us         HH:MM:SS.ffffff   YYYY-MM-DD HH:MM:SS.ffffff
//	shorter         HH:MM:SS.fffffffff

type layout uint8

const (
	layoutYear layout = iota
	layoutMonth
	layoutDay
	layoutHour
	layoutMinute
	layoutSecond
)

func layoutOf[P Period, R Rep]() layout {
	if isFloat[R]() {
		return layoutSecond
	}
	p := ratioOf[P]()
	switch {
	case !p.Less(ratioYear):
		return layoutYear
	case !p.Less(ratioMonth):
		return layoutMonth
	case !p.Less(ratioDay):
		return layoutDay
	case !p.Less(ratioHour):
		return layoutHour
	case !p.Less(ratioMinute):
		return layoutMinute
	default:
		return layoutSecond
	}
}

// fractionDigits returns 0, 3, 6 or 9
func fractionDigits[P Period, R Rep]() int {
	if isFloat[R]() {
		return 9
	}
	p := ratioOf[P]()
	switch {
	case p.Less(ratioMicro):
		return 9
	case p.Less(ratioMilli):
		return 6
	case p.Less(ratioSecond):
		return 3
	default:
		return 0
	}
}

func formatDuration[P Period, R Rep](d Duration[P, R]) string {
	var b strings.Builder
	if d.count < 0 {
		b.WriteByte('-')
	}
	abs := d.Abs()
	sec, ns := splitFloor(abs)
	writePadded(&b, sec/3600, 2)
	switch layoutOf[P, R]() {
	case layoutMinute:
		b.WriteByte(':')
		writePadded(&b, sec%3600/60, 2)
	case layoutSecond:
		writeClock(&b, sec%3600/60, sec%60, ns, fractionDigits[P, R]())
	default:
		b.WriteString(":00")
	}
	return b.String()
}

// formatPoint renders a local reading given as the duration since
// 1970-01-01 00:00:00
func formatPoint[P Period, R Rep](d Duration[P, R]) string {
	sec, ns := splitFloor(d)
	days := floorDiv(sec, secondsPerDay)
	ymd := calendar.FromDays(days)
	tod := sec - days*secondsPerDay

	var b strings.Builder
	b.WriteString(ymd.Year.Padded())
	l := layoutOf[P, R]()
	if l == layoutYear {
		return b.String()
	}
	b.WriteByte('-')
	writePadded(&b, int64(ymd.Month), 2)
	if l == layoutMonth {
		return b.String()
	}
	b.WriteByte('-')
	writePadded(&b, int64(ymd.Day), 2)
	if l == layoutDay {
		return b.String()
	}
	b.WriteByte(' ')
	writePadded(&b, tod/3600, 2)
	switch l {
	case layoutHour:
		b.WriteString(":00")
	case layoutMinute:
		b.WriteByte(':')
		writePadded(&b, tod%3600/60, 2)
	default:
		writeClock(&b, tod%3600/60, tod%60, ns, fractionDigits[P, R]())
	}
	return b.String()
}

// writeClock writes ":MM:SS" and the fraction of ns with digits digits
func writeClock(b *strings.Builder, m, s, ns int64, digits int) {
	b.WriteByte(':')
	writePadded(b, m, 2)
	b.WriteByte(':')
	writePadded(b, s, 2)
	if digits == 0 {
		return
	}
	for i := digits; i < 9; i++ {
		ns /= 10
	}
	b.WriteByte('.')
	writePadded(b, ns, digits)
}

func writePadded(b *strings.Builder, v int64, width int) {
	s := strconv.FormatInt(v, 10)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     chrono
// Description: Hours, minutes, seconds and subseconds of a duration
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package chrono

import "cmp"

// TimeOfDay splits a duration into a sign and non-negative hour, minute,
// second and subsecond fields. Hours are not reduced modulo 24.
type TimeOfDay[P Period, R Rep] struct {
	neg bool
	h   int64
	m   int64
	s   int64
	sub Duration[P, R]
}

// TimeOfDayOf decomposes d. The sign is factored out first, so -1h1m1s1ms
// has hours 1, minutes 1, seconds 1, subseconds 1ms and IsNegative true.
func TimeOfDayOf[P Period, R Rep](d Duration[P, R]) TimeOfDay[P, R] {
	abs := d.Abs()
	sec, _ := splitFloor(abs)
	whole := applySkew(R(0), sec, ratioOf[P]())
	return TimeOfDay[P, R]{
		neg: d.count < 0,
		h:   sec / 3600,
		m:   sec % 3600 / 60,
		s:   sec % 60,
		sub: Duration[P, R]{abs.count - whole},
	}
}

func (t TimeOfDay[P, R]) IsNegative() bool {
	return t.neg
}

func (t TimeOfDay[P, R]) Hours() Duration[Hour, int64] {
	return Hours(t.h)
}

func (t TimeOfDay[P, R]) Minutes() Duration[Minute, int64] {
	return Minutes(t.m)
}

func (t TimeOfDay[P, R]) Seconds() Duration[Second, int64] {
	return Seconds(t.s)
}

// Subseconds returns the part below one second in ticks of P. It is zero
// when P is a whole number of seconds.
func (t TimeOfDay[P, R]) Subseconds() Duration[P, R] {
	return t.sub
}

// Precision returns the number of fractional second digits String prints
func (t TimeOfDay[P, R]) Precision() int {
	return fractionDigits[P, R]()
}

// ToDuration recomposes the signed duration
func (t TimeOfDay[P, R]) ToDuration() Duration[P, R] {
	whole := applySkew(R(0), t.h*3600+t.m*60+t.s, ratioOf[P]())
	d := Duration[P, R]{whole + t.sub.count}
	if t.neg {
		return d.Neg()
	}
	return d
}

// Compare orders time of day values by their signed duration
func (t TimeOfDay[P, R]) Compare(o TimeOfDay[P, R]) int {
	return cmp.Compare(t.ToDuration().count, o.ToDuration().count)
}

// String renders t like the duration it was built from
func (t TimeOfDay[P, R]) String() string {
	return formatDuration(t.ToDuration())
}

// TimeOfDayIn converts t to the period To, truncating toward zero
func TimeOfDayIn[To Period, P Period, R Rep](t TimeOfDay[P, R]) Duration[To, R] {
	return Rescale[To](t.ToDuration())
}

// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     chrono
// Description: Durations and exact rescaling between periods
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package chrono

import (
	"cmp"
	"math"
	"time"

	"golang.org/x/exp/constraints"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
)

// Rep is the representation of a tick count
type Rep interface {
	constraints.Signed | constraints.Float
}

// Duration is a count of P ticks. Integer arithmetic wraps on overflow like
// the underlying Go integer; callers choose a representation wide enough
// for the range they need.
type Duration[P Period, R Rep] struct {
	count R
}

// Of returns a duration of count ticks of P
func Of[P Period, R Rep](count R) Duration[P, R] {
	return Duration[P, R]{count: count}
}

func Nanoseconds(n int64) Duration[Nano, int64] { return Duration[Nano, int64]{n} }
func Microseconds(n int64) Duration[Micro, int64] { return Duration[Micro, int64]{n} }
func Milliseconds(n int64) Duration[Milli, int64] { return Duration[Milli, int64]{n} }
func Seconds(n int64) Duration[Second, int64] { return Duration[Second, int64]{n} }
func Minutes(n int64) Duration[Minute, int64] { return Duration[Minute, int64]{n} }
func Hours(n int64) Duration[Hour, int64] { return Duration[Hour, int64]{n} }
func Days(n int64) Duration[Day, int64] { return Duration[Day, int64]{n} }
func Weeks(n int64) Duration[Week, int64] { return Duration[Week, int64]{n} }
func Months(n int64) Duration[Month, int64] { return Duration[Month, int64]{n} }
func Years(n int64) Duration[Year, int64] { return Duration[Year, int64]{n} }

// FromStd converts a time.Duration
func FromStd(d time.Duration) Duration[Nano, int64] {
	return Duration[Nano, int64]{int64(d)}
}

// Count returns the number of ticks
func (d Duration[P, R]) Count() R {
	return d.count
}

// Period returns the tick length in seconds
func (d Duration[P, R]) Period() Ratio {
	return ratioOf[P]()
}

func (d Duration[P, R]) Add(o Duration[P, R]) Duration[P, R] {
	return Duration[P, R]{d.count + o.count}
}

func (d Duration[P, R]) Sub(o Duration[P, R]) Duration[P, R] {
	return Duration[P, R]{d.count - o.count}
}

func (d Duration[P, R]) Neg() Duration[P, R] {
	return Duration[P, R]{-d.count}
}

func (d Duration[P, R]) Abs() Duration[P, R] {
	if d.count < 0 {
		return Duration[P, R]{-d.count}
	}
	return d
}

// Mul multiplies the tick count by k
func (d Duration[P, R]) Mul(k R) Duration[P, R] {
	return Duration[P, R]{d.count * k}
}

// Div divides the tick count by k, truncating for integer representations
func (d Duration[P, R]) Div(k R) Duration[P, R] {
	return Duration[P, R]{d.count / k}
}

// Compare returns -1, 0 or +1
func (d Duration[P, R]) Compare(o Duration[P, R]) int {
	return cmp.Compare(d.count, o.count)
}

func (d Duration[P, R]) IsZero() bool {
	return d.count == 0
}

func (d Duration[P, R]) IsNegative() bool {
	return d.count < 0
}

// Std converts to a time.Duration, truncating below one nanosecond
func (d Duration[P, R]) Std() time.Duration {
	return time.Duration(int64(Rescale[Nano](d).count))
}

// String renders the duration as [-]HH:MM:SS with the fields its period
// resolves, see the package documentation.
func (d Duration[P, R]) String() string {
	return formatDuration(d)
}

// ===============================
// Rescaling
// ===============================

type rounding uint8

const (
	roundTrunc rounding = iota
	roundFloor
	roundCeil
	roundHalfEven
)

// Rescale converts d to the period To. Widening to a finer period that
// divides From is exact; otherwise the result truncates toward zero, so
// Rescale[Minute](Seconds(-90)) is -1 minute. Floating representations keep
// the fraction.
func Rescale[To Period, From Period, R Rep](d Duration[From, R]) Duration[To, R] {
	return Duration[To, R]{scale(d.count, factor[From, To](), roundTrunc)}
}

// Floor converts d to To rounding toward negative infinity
func Floor[To Period, From Period, R Rep](d Duration[From, R]) Duration[To, R] {
	return Duration[To, R]{scale(d.count, factor[From, To](), roundFloor)}
}

// Ceil converts d to To rounding toward positive infinity
func Ceil[To Period, From Period, R Rep](d Duration[From, R]) Duration[To, R] {
	return Duration[To, R]{scale(d.count, factor[From, To](), roundCeil)}
}

// Round converts d to To rounding to the nearest tick, ties to even
func Round[To Period, From Period, R Rep](d Duration[From, R]) Duration[To, R] {
	return Duration[To, R]{scale(d.count, factor[From, To](), roundHalfEven)}
}

// RescaleExact converts d to To and fails with INEXACT_CONVERSION when an
// integer representation would lose ticks
func RescaleExact[To Period, From Period, R Rep](d Duration[From, R]) (Duration[To, R], error) {
	f := factor[From, To]()
	if !isFloat[R]() && f.Den != 1 {
		if v := int64(d.count) * f.Num; v%f.Den != 0 {
			return Duration[To, R]{}, mdwerror.New("conversion loses precision").
				WithCode(mdwerror.CodeInexactConversion).
				WithOperation("chrono.RescaleExact").
				WithDetail("count", int64(d.count)).
				WithDetail("from", ratioOf[From]().String()).
				WithDetail("to", ratioOf[To]().String())
		}
	}
	return Duration[To, R]{scale(d.count, f, roundTrunc)}, nil
}

// Lossless reports whether every integer count of From is a whole number of
// To ticks
func Lossless[From, To Period]() bool {
	return factor[From, To]().IsInteger()
}

// ChangeRep converts the tick count to the representation R2 with Go's
// numeric conversion rules
func ChangeRep[R2 Rep, P Period, R Rep](d Duration[P, R]) Duration[P, R2] {
	return Duration[P, R2]{R2(d.count)}
}

// Compare orders two durations of arbitrary periods exactly by expressing
// both in their common period
func Compare[P1, P2 Period, R Rep](a Duration[P1, R], b Duration[P2, R]) int {
	ra, rb := ratioOf[P1](), ratioOf[P2]()
	c := ra.Common(rb)
	return cmp.Compare(scale(a.count, ra.Div(c), roundTrunc), scale(b.count, rb.Div(c), roundTrunc))
}

// Equal reports whether a and b denote the same length of time
func Equal[P1, P2 Period, R Rep](a Duration[P1, R], b Duration[P2, R]) bool {
	return Compare(a, b) == 0
}

// factor returns From / To
func factor[From, To Period]() Ratio {
	return ratioOf[From]().Div(ratioOf[To]())
}

func isFloat[R Rep]() bool {
	var x R = 1
	x /= 2
	return x != 0
}

// scale multiplies count by f. Integer results are rounded per mode.
func scale[R Rep](count R, f Ratio, mode rounding) R {
	if isFloat[R]() {
		x := float64(count) * float64(f.Num) / float64(f.Den)
		switch mode {
		case roundFloor:
			x = math.Floor(x)
		case roundCeil:
			x = math.Ceil(x)
		case roundHalfEven:
			x = math.RoundToEven(x)
		}
		return R(x)
	}

	c := int64(count)
	switch {
	case f.Num == 1 && f.Den == 1:
		return count
	case f.Den == 1:
		return R(c * f.Num)
	}
	v := c * f.Num
	q, rem := v/f.Den, v%f.Den
	switch mode {
	case roundFloor:
		if rem < 0 {
			q--
		}
	case roundCeil:
		if rem > 0 {
			q++
		}
	case roundHalfEven:
		twice := 2 * rem
		if twice < 0 {
			twice = -twice
		}
		if twice > f.Den || (twice == f.Den && q%2 != 0) {
			if rem < 0 {
				q--
			} else {
				q++
			}
		}
	}
	return R(q)
}

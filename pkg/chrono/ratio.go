// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     chrono
// Description: Rational tick periods
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package chrono

import "strconv"

// Ratio is an exact rational number of seconds, Num/Den. Den is positive.
type Ratio struct {
	Num int64
	Den int64
}

// Period names the length of one tick. Implementations are empty value
// types; Ratio must return the same positive value on every call.
type Period interface {
	Ratio() Ratio
}

// Predefined periods. Month and Year are the average Gregorian month and
// year.
type (
	Nano   struct{}
	Micro  struct{}
	Milli  struct{}
	Second struct{}
	Minute struct{}
	Hour   struct{}
	Day    struct{}
	Week   struct{}
	Month  struct{}
	Year   struct{}
)

func (Nano) Ratio() Ratio { return Ratio{1, 1_000_000_000} }
func (Micro) Ratio() Ratio { return Ratio{1, 1_000_000} }
func (Milli) Ratio() Ratio { return Ratio{1, 1_000} }
func (Second) Ratio() Ratio { return Ratio{1, 1} }
func (Minute) Ratio() Ratio { return Ratio{60, 1} }
func (Hour) Ratio() Ratio { return Ratio{3600, 1} }
func (Day) Ratio() Ratio { return Ratio{86400, 1} }
func (Week) Ratio() Ratio { return Ratio{604800, 1} }
func (Month) Ratio() Ratio { return Ratio{2629746, 1} }
func (Year) Ratio() Ratio { return Ratio{31556952, 1} }

var (
	ratioNano   = Ratio{1, 1_000_000_000}
	ratioMicro  = Ratio{1, 1_000_000}
	ratioMilli  = Ratio{1, 1_000}
	ratioSecond = Ratio{1, 1}
	ratioMinute = Ratio{60, 1}
	ratioHour   = Ratio{3600, 1}
	ratioDay    = Ratio{86400, 1}
	ratioMonth  = Ratio{2629746, 1}
	ratioYear   = Ratio{31556952, 1}
)

// ratioOf returns the reduced ratio of P
func ratioOf[P Period]() Ratio {
	var p P
	return p.Ratio().Reduce()
}

// Reduce returns r in lowest terms with a positive denominator
func (r Ratio) Reduce() Ratio {
	if r.Den < 0 {
		r.Num, r.Den = -r.Num, -r.Den
	}
	if g := gcd(r.Num, r.Den); g > 1 {
		r.Num, r.Den = r.Num/g, r.Den/g
	}
	return r
}

// Less reports whether r < o
func (r Ratio) Less(o Ratio) bool {
	return r.Num*o.Den < o.Num*r.Den
}

// Div returns r / o reduced. Common factors are cancelled before
// multiplying to keep the intermediate products small.
func (r Ratio) Div(o Ratio) Ratio {
	g1 := gcd(r.Num, o.Num)
	g2 := gcd(r.Den, o.Den)
	return Ratio{
		Num: (r.Num / g1) * (o.Den / g2),
		Den: (o.Num / g1) * (r.Den / g2),
	}.Reduce()
}

// IsInteger reports whether r is a whole number
func (r Ratio) IsInteger() bool {
	return r.Den == 1
}

// Common returns the largest period that divides both r and o:
// gcd of the numerators over lcm of the denominators.
func (r Ratio) Common(o Ratio) Ratio {
	return Ratio{Num: gcd(r.Num, o.Num), Den: lcm(r.Den, o.Den)}.Reduce()
}

func (r Ratio) String() string {
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10) + "s"
	}
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10) + "s"
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func lcm(a, b int64) int64 {
	return a / gcd(a, b) * b
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     chrono
// Description: Epoch offsets between clocks
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package chrono

import (
	"math"
	"math/bits"
	"sort"
	"sync"

	"github.com/msto63/chronox/pkg/calendar"
	"github.com/msto63/chronox/pkg/leapsec"
)

const (
	secondsPerDay = 86400

	// taiMinusGPS is fixed by the definition of GPS time
	taiMinusGPS = 19
)

var (
	// seconds from the TAI epoch to the Unix epoch
	taiEpoch = (calendar.Date(1970, calendar.January, 1).Days() -
		calendar.Date(1958, calendar.January, 1).Days()) * secondsPerDay
	// seconds from the Unix epoch to the GPS epoch
	gpsEpoch = calendar.Date(1980, calendar.January, 6).Days() * secondsPerDay
)

// LeapTable supplies the leap second history. *leapsec.Table implements it.
type LeapTable interface {
	// Insertions returns, in increasing order, the system clock second from
	// which each inserted second is counted
	Insertions() []int64
	// BaseOffset returns TAI - UTC before the first insertion
	BaseOffset() int64
	// Expires returns the system clock second up to which the table is
	// authoritative
	Expires() (int64, bool)
}

// Skew is the number of seconds to add to a count of one clock to obtain the
// count of another at a given instant.
type Skew struct {
	Seconds int64
	// Extrapolated is set when the instant lies past the table's expiry and
	// the last known offset was used
	Extrapolated bool
	// InLeap is set when a UTC instant inside an inserted second was mapped
	// to a clock that cannot represent it
	InLeap bool

	insertion int64
}

// Resolver computes epoch offsets between clocks from a leap second table.
// It is immutable and safe for concurrent use.
//
// UTC, TAI and GPS differ by constants; the leap second count only enters
// between System and the other clocks. An instant past the expiry of the
// table resolves with the offset of the last insertion and reports
// Skew.Extrapolated.
type Resolver struct {
	base       int64
	insertions []int64
	// utc second occupied by each inserted second
	leapSeconds []int64
	expires     int64
	hasExpiry   bool
}

// NewResolver builds a resolver over table
func NewResolver(table LeapTable) *Resolver {
	r := &Resolver{
		base:       table.BaseOffset(),
		insertions: table.Insertions(),
	}
	r.leapSeconds = make([]int64, len(r.insertions))
	for i, ins := range r.insertions {
		r.leapSeconds[i] = ins + int64(i)
	}
	r.expires, r.hasExpiry = table.Expires()
	return r
}

var (
	defaultResolver     *Resolver
	defaultResolverOnce sync.Once
)

// DefaultResolver returns the resolver over the embedded leap second table.
// Functions taking a *Resolver use it when passed nil.
func DefaultResolver() *Resolver {
	defaultResolverOnce.Do(func() {
		defaultResolver = NewResolver(leapsec.Default())
	})
	return defaultResolver
}

func orDefault(r *Resolver) *Resolver {
	if r == nil {
		return DefaultResolver()
	}
	return r
}

// Leaps returns the number of seconds inserted up to the system second sys
func (r *Resolver) Leaps(sys int64) int64 {
	return int64(sort.Search(len(r.insertions), func(i int) bool { return r.insertions[i] > sys }))
}

// Extrapolated reports whether the system second sys lies past the expiry of
// the table
func (r *Resolver) Extrapolated(sys int64) bool {
	return r.hasExpiry && sys >= r.expires
}

// utcLeaps returns the number of inserted seconds completed before the UTC
// second u and whether u is itself an inserted second
func (r *Resolver) utcLeaps(u int64) (int64, bool) {
	k := sort.Search(len(r.leapSeconds), func(i int) bool { return r.leapSeconds[i] >= u })
	return int64(k), k < len(r.leapSeconds) && r.leapSeconds[k] == u
}

// TAI - UTC count difference
func (r *Resolver) taiOffset() int64 {
	return taiEpoch + r.base
}

// UTC - GPS count difference
func (r *Resolver) gpsOffset() int64 {
	return gpsEpoch + taiMinusGPS - r.base
}

// Offset returns the skew from clock from to clock to at the instant whose
// from-clock count is at seconds. Local counts are taken as the target
// clock's own calendar reading: a local 00:01:30 converted to TAI is the
// instant at which a TAI clock shows 00:01:30.
func (r *Resolver) Offset(from, to ClockID, at int64) Skew {
	switch {
	case from == to:
		return Skew{}
	case from == ClockLocal:
		return r.fromReading(to, at)
	case to == ClockLocal:
		return r.toReading(from, at)
	}
	s1, u := r.toUTC(from, at)
	s2 := r.fromUTC(to, u)
	return Skew{
		Seconds:      s1.Seconds + s2.Seconds,
		Extrapolated: s1.Extrapolated || s2.Extrapolated,
		InLeap:       s2.InLeap,
		insertion:    s2.insertion,
	}
}

func (r *Resolver) toUTC(c ClockID, at int64) (Skew, int64) {
	switch c {
	case ClockSystem:
		k := r.Leaps(at)
		return Skew{Seconds: k, Extrapolated: r.Extrapolated(at)}, at + k
	case ClockTAI:
		return Skew{Seconds: -r.taiOffset()}, at - r.taiOffset()
	case ClockGPS:
		return Skew{Seconds: r.gpsOffset()}, at + r.gpsOffset()
	}
	return Skew{}, at
}

func (r *Resolver) fromUTC(c ClockID, u int64) Skew {
	switch c {
	case ClockSystem:
		k, inLeap := r.utcLeaps(u)
		sk := Skew{Seconds: -k, Extrapolated: r.Extrapolated(u - k), InLeap: inLeap}
		if inLeap {
			sk.insertion = r.insertions[k]
		}
		return sk
	case ClockTAI:
		return Skew{Seconds: r.taiOffset()}
	case ClockGPS:
		return Skew{Seconds: -r.gpsOffset()}
	}
	return Skew{}
}

// toReading returns the skew from clock c to its own calendar reading
func (r *Resolver) toReading(c ClockID, at int64) Skew {
	switch c {
	case ClockUTC:
		return r.fromUTC(ClockSystem, at)
	case ClockTAI:
		return Skew{Seconds: -taiEpoch}
	case ClockGPS:
		return Skew{Seconds: gpsEpoch}
	}
	return Skew{}
}

// fromReading returns the skew from a calendar reading of c to c
func (r *Resolver) fromReading(c ClockID, at int64) Skew {
	switch c {
	case ClockUTC:
		sk, _ := r.toUTC(ClockSystem, at)
		return sk
	case ClockTAI:
		return Skew{Seconds: taiEpoch}
	case ClockGPS:
		return Skew{Seconds: -gpsEpoch}
	}
	return Skew{}
}

// LeapInfo describes a UTC instant
type LeapInfo struct {
	// InLeap is set during an inserted second
	InLeap bool
	// Elapsed counts the inserted seconds up to and including the instant
	Elapsed int64
}

// LeapInfoAt reports whether t falls inside an inserted second
func LeapInfoAt[P Period, R Rep](r *Resolver, t TimePoint[UTC, P, R]) LeapInfo {
	sec, _ := splitFloor(t.d)
	k, inLeap := orDefault(r).utcLeaps(sec)
	if inLeap {
		k++
	}
	return LeapInfo{InLeap: inLeap, Elapsed: k}
}

// ===============================
// Clock conversion
// ===============================

// ToClock converts t to the clock To at the period of t. The offset is
// looked up at the source instant. A UTC instant inside an inserted second
// maps to the last tick before the insertion on System and Local.
//
// At periods coarser than a second a clock change moves t by a whole number
// of ticks: the epoch part of the offset, rounded to whole days, is kept and
// the leap second part is truncated toward zero. A minute on System stays
// the same minute reading on UTC, TAI and GPS, a minute that opens with an
// inserted second is not moved, and converting back returns the original
// point.
func ToClock[To Clock, From Clock, P Period, R Rep](r *Resolver, t TimePoint[From, P, R]) TimePoint[To, P, R] {
	tp, _ := ToClockSkew[To](r, t)
	return tp
}

// ToClockSkew is ToClock that also returns the skew applied
func ToClockSkew[To Clock, From Clock, P Period, R Rep](r *Resolver, t TimePoint[From, P, R]) (TimePoint[To, P, R], Skew) {
	from, to := clockOf[From](), clockOf[To]()
	if from == to {
		return TimePoint[To, P, R]{d: t.d}, Skew{}
	}
	p := ratioOf[P]()
	sec, _ := splitFloor(t.d)
	sk := orDefault(r).Offset(from, to, sec)
	if !wholeTicks[R](p) {
		return TimePoint[To, P, R]{d: Duration[P, R]{shiftTicks(t.d.count, sk.Seconds, p)}}, sk
	}
	if sk.InLeap {
		return TimePoint[To, P, R]{d: Duration[P, R]{lastTickBefore[R](sk.insertion, p)}}, sk
	}
	return TimePoint[To, P, R]{d: Duration[P, R]{applySkew(t.d.count, sk.Seconds, p)}}, sk
}

// wholeTicks reports whether every offset in seconds is a whole number of
// ticks of p
func wholeTicks[R Rep](p Ratio) bool {
	return isFloat[R]() || p.Num == 1
}

// shiftTicks moves an integer count coarser than a second by a clock offset
// of skew seconds in whole ticks, so that opposite offsets cancel
func shiftTicks[R Rep](count R, skew int64, p Ratio) R {
	days := floorDiv(skew+secondsPerDay/2, secondsPerDay) * secondsPerDay
	rest := skew - days
	return count + R(days*p.Den/p.Num) + R(rest*p.Den/p.Num)
}

// applySkew returns count + skew seconds in ticks of p, truncating toward
// zero when skew is not a whole number of ticks
func applySkew[R Rep](count R, skew int64, p Ratio) R {
	if skew == 0 {
		return count
	}
	if isFloat[R]() {
		return count + R(float64(skew)*float64(p.Den)/float64(p.Num))
	}
	if p.Num == 1 {
		return count + R(skew*p.Den)
	}
	v := int64(count)*p.Num + skew*p.Den
	return R(v / p.Num)
}

// lastTickBefore returns the largest count of p ticks before the second sec
func lastTickBefore[R Rep](sec int64, p Ratio) R {
	if isFloat[R]() {
		return R(math.Nextafter(float64(sec)*float64(p.Den)/float64(p.Num), math.Inf(-1)))
	}
	v := sec * p.Den
	q := v / p.Num
	if q*p.Num >= v {
		q--
	}
	return R(q)
}

// splitFloor splits d into whole seconds rounded toward negative infinity
// and the remaining nanoseconds in [0, 1e9)
func splitFloor[P Period, R Rep](d Duration[P, R]) (int64, int64) {
	p := ratioOf[P]()
	if isFloat[R]() {
		x := float64(d.count) * float64(p.Num) / float64(p.Den)
		f := math.Floor(x)
		ns := int64((x - f) * 1e9)
		if ns >= 1e9 {
			ns = 1e9 - 1
		}
		return int64(f), ns
	}
	v := int64(d.count) * p.Num
	sec := floorDiv(v, p.Den)
	rem := v - sec*p.Den
	if rem == 0 {
		return sec, 0
	}
	hi, lo := bits.Mul64(uint64(rem), 1e9)
	ns, _ := bits.Div64(hi, lo, uint64(p.Den))
	return sec, int64(ns)
}

// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     chrono
// Description: Local civil time resolution and zoned time
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package chrono

import (
	"cmp"
	"strconv"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/pkg/calendar"
	"github.com/msto63/chronox/pkg/zone"
)

// Choice selects the physical instant a local reading denotes when a zone
// transition makes it ambiguous or nonexistent.
//
// In a fold Earliest picks the first occurrence and Latest the second. In a
// gap Earliest applies the offset after the transition, which lands before
// it and reads the gap width earlier; Latest applies the offset before the
// transition, which lands after it and reads the gap width later. For
// Europe/Berlin on 2018-03-25 a local 02:30 resolves to 01:30 CET with
// Earliest and 03:30 CEST with Latest. In a gap Earliest never resolves to
// the transition instant, and Latest does so only for the first reading of
// the gap: 02:00 resolves to 03:00 CEST.
type Choice uint8

const (
	Earliest Choice = iota
	Latest
)

func (c Choice) String() string {
	if c == Latest {
		return "latest"
	}
	return "earliest"
}

// ParseChoice accepts "earliest" and "latest"
func ParseChoice(s string) (Choice, error) {
	switch s {
	case "earliest", "":
		return Earliest, nil
	case "latest":
		return Latest, nil
	}
	return Earliest, mdwerror.New("unknown choice "+strconv.Quote(s)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("chrono.ParseChoice")
}

// LocalKind classifies a local reading in a zone
type LocalKind uint8

const (
	Unique LocalKind = iota
	Ambiguous
	Nonexistent
)

func (k LocalKind) String() string {
	switch k {
	case Ambiguous:
		return "ambiguous"
	case Nonexistent:
		return "nonexistent"
	default:
		return "unique"
	}
}

// LocalInfo describes how a local reading maps to physical instants. For a
// Unique reading only First is set. For an Ambiguous reading First and
// Second are the rules of the two occurrences in order. For a Nonexistent
// reading First is the rule before the gap and Second the rule after it.
type LocalInfo struct {
	Kind   LocalKind
	First  zone.Info
	Second zone.Info
}

// zone offsets never exceed this many seconds in either direction
const maxOffset = 26 * 3600

// Classify reports how the local reading t maps to physical instants in z
func Classify[P Period, R Rep](z zone.Zone, t TimePoint[Local, P, R]) LocalInfo {
	sec, _ := splitFloor(t.d)
	return classify(z, sec)
}

func classify(z zone.Zone, local int64) LocalInfo {
	rules := rulesAround(z, local)

	var hits []zone.Info
	for _, info := range rules {
		if s := local - info.Offset; s >= info.Start && s < info.End {
			hits = append(hits, info)
		}
	}
	switch len(hits) {
	case 1:
		return LocalInfo{Kind: Unique, First: hits[0]}
	case 2:
		return LocalInfo{Kind: Ambiguous, First: hits[0], Second: hits[1]}
	}
	for i := 1; i < len(rules); i++ {
		prev, next := rules[i-1], rules[i]
		if local-prev.Offset >= prev.End && local-next.Offset < next.Start {
			return LocalInfo{Kind: Nonexistent, First: prev, Second: next}
		}
	}
	// unreachable for a zone whose rules cover the whole timeline
	return LocalInfo{Kind: Unique, First: z.Lookup(local)}
}

// rulesAround returns the consecutive rules of z covering the physical
// instants a local reading local can denote
func rulesAround(z zone.Zone, local int64) []zone.Info {
	var rules []zone.Info
	s := local - maxOffset
	for i := 0; i < 16; i++ {
		info := z.Lookup(s)
		rules = append(rules, info)
		if info.End == zone.End || info.End > local+maxOffset {
			break
		}
		s = info.End
	}
	return rules
}

// resolve returns the system second and rule local denotes under choice
func resolve(z zone.Zone, local int64, choice Choice) (int64, zone.Info) {
	li := classify(z, local)
	switch li.Kind {
	case Ambiguous:
		if choice == Latest {
			return local - li.Second.Offset, li.Second
		}
		return local - li.First.Offset, li.First
	case Nonexistent:
		if choice == Latest {
			return local - li.First.Offset, li.Second
		}
		return local - li.Second.Offset, li.First
	}
	return local - li.First.Offset, li.First
}

// ===============================
// Zoned time
// ===============================

// ZonedTime is a local civil reading together with the zone and the rule in
// effect. The rule is fixed at construction, so the physical instant is
// recovered as Local minus the stored offset without disambiguating again.
// Equal and Compare use the physical instant.
//
// Sys is exact when the offset is a whole number of ticks; a zoned time with
// a period of a day or longer keeps its local reading but its Sys truncates.
type ZonedTime[P Period, R Rep] struct {
	zone  zone.Zone
	local TimePoint[Local, P, R]
	info  zone.Info
}

// MakeZoned resolves the local reading t in z, using choice when t falls in
// a fold or a gap. A reading in a gap is moved by the gap width as
// documented on Choice.
func MakeZoned[P Period, R Rep](z zone.Zone, t TimePoint[Local, P, R], choice Choice) ZonedTime[P, R] {
	sec, _ := splitFloor(t.d)
	s, info := resolve(z, sec, choice)
	if shift := s + info.Offset - sec; shift != 0 {
		t = TimePoint[Local, P, R]{d: Duration[P, R]{applySkew(t.d.count, shift, ratioOf[P]())}}
	}
	return ZonedTime[P, R]{zone: z, local: t, info: info}
}

// MakeZonedUnique resolves t in z and fails with AMBIGUOUS_LOCAL_TIME or
// NONEXISTENT_LOCAL_TIME when t needs a Choice
func MakeZonedUnique[P Period, R Rep](z zone.Zone, t TimePoint[Local, P, R]) (ZonedTime[P, R], error) {
	li := Classify(z, t)
	if li.Kind != Unique {
		code := mdwerror.CodeAmbiguousLocalTime
		if li.Kind == Nonexistent {
			code = mdwerror.CodeNonexistentLocalTime
		}
		return ZonedTime[P, R]{}, mdwerror.New("local time is "+li.Kind.String()+" in "+z.Name()).
			WithCode(code).
			WithOperation("chrono.MakeZonedUnique").
			WithDetail("zone", z.Name()).
			WithDetail("local", t.String())
	}
	return ZonedTime[P, R]{zone: z, local: t, info: li.First}, nil
}

// MakeZonedByName locates name through p and resolves t in it
func MakeZonedByName[P Period, R Rep](p zone.Provider, name string, t TimePoint[Local, P, R], choice Choice) (ZonedTime[P, R], error) {
	z, err := p.Locate(name)
	if err != nil {
		return ZonedTime[P, R]{}, err
	}
	return MakeZoned(z, t, choice), nil
}

// ZonedFrom pairs the physical instant t with z. This direction is never
// ambiguous.
func ZonedFrom[C PhysicalClock, P Period, R Rep](r *Resolver, z zone.Zone, t TimePoint[C, P, R]) ZonedTime[P, R] {
	sys := ToClock[System](r, t)
	sec, _ := splitFloor(sys.d)
	info := z.Lookup(sec)
	return ZonedTime[P, R]{
		zone:  z,
		local: TimePoint[Local, P, R]{d: Duration[P, R]{applySkew(sys.d.count, info.Offset, ratioOf[P]())}},
		info:  info,
	}
}

// Zone returns the zone of zt
func (zt ZonedTime[P, R]) Zone() zone.Zone {
	return zt.zone
}

// Info returns the rule in effect at zt
func (zt ZonedTime[P, R]) Info() zone.Info {
	return zt.info
}

// Offset returns the UTC offset of zt
func (zt ZonedTime[P, R]) Offset() Duration[Second, int64] {
	return Seconds(zt.info.Offset)
}

// Local returns the civil reading
func (zt ZonedTime[P, R]) Local() TimePoint[Local, P, R] {
	return zt.local
}

// Sys returns the physical instant: Local minus the stored offset
func (zt ZonedTime[P, R]) Sys() TimePoint[System, P, R] {
	return TimePoint[System, P, R]{d: Duration[P, R]{applySkew(zt.local.d.count, -zt.info.Offset, ratioOf[P]())}}
}

// instant returns the physical instant as whole seconds and nanoseconds
func (zt ZonedTime[P, R]) instant() (int64, int64) {
	sec, ns := splitFloor(zt.local.d)
	return sec - zt.info.Offset, ns
}

// Add moves the physical instant by d. The rule is looked up again and the
// local reading moves by d plus any change of offset.
func (zt ZonedTime[P, R]) Add(d Duration[P, R]) ZonedTime[P, R] {
	local := zt.local.Add(d)
	sec, _ := splitFloor(local.d)
	info := zt.zone.Lookup(sec - zt.info.Offset)
	if shift := info.Offset - zt.info.Offset; shift != 0 {
		local = TimePoint[Local, P, R]{d: Duration[P, R]{applySkew(local.d.count, shift, ratioOf[P]())}}
	}
	return ZonedTime[P, R]{zone: zt.zone, local: local, info: info}
}

// Sub moves the physical instant back by d
func (zt ZonedTime[P, R]) Sub(d Duration[P, R]) ZonedTime[P, R] {
	return zt.Add(d.Neg())
}

// Since returns the physical time elapsed from o to zt
func (zt ZonedTime[P, R]) Since(o ZonedTime[P, R]) Duration[P, R] {
	return Duration[P, R]{applySkew(zt.local.d.count-o.local.d.count, o.info.Offset-zt.info.Offset, ratioOf[P]())}
}

// Equal reports whether zt and o denote the same physical instant
func (zt ZonedTime[P, R]) Equal(o ZonedTime[P, R]) bool {
	return zt.Compare(o) == 0
}

// Compare orders zoned times by physical instant
func (zt ZonedTime[P, R]) Compare(o ZonedTime[P, R]) int {
	s1, ns1 := zt.instant()
	s2, ns2 := o.instant()
	if c := cmp.Compare(s1, s2); c != 0 {
		return c
	}
	return cmp.Compare(ns1, ns2)
}

// Date returns the calendar date of the local reading
func (zt ZonedTime[P, R]) Date() calendar.YearMonthDay {
	return zt.local.Date()
}

// TimeOfDay returns the local reading within its day
func (zt ZonedTime[P, R]) TimeOfDay() TimeOfDay[P, R] {
	return zt.local.TimeOfDay()
}

// String renders the local reading
func (zt ZonedTime[P, R]) String() string {
	return formatPoint(zt.local.d)
}

// RescaleZoned converts the local reading of zt to the period To,
// truncating toward zero. The stored rule is kept when it still applies to
// the new instant and derived again otherwise.
func RescaleZoned[To Period, P Period, R Rep](zt ZonedTime[P, R]) ZonedTime[To, R] {
	local := RescalePoint[To](zt.local)
	sec, _ := splitFloor(local.d)
	if s := sec - zt.info.Offset; s >= zt.info.Start && s < zt.info.End {
		return ZonedTime[To, R]{zone: zt.zone, local: local, info: zt.info}
	}
	return MakeZoned(zt.zone, local, Earliest)
}

// ZonedToClock returns the physical instant of zt on clock To
func ZonedToClock[To PhysicalClock, P Period, R Rep](r *Resolver, zt ZonedTime[P, R]) TimePoint[To, P, R] {
	return ToClock[To](r, zt.Sys())
}

// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     chrono
// Description: Run time conversion between representations
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package chrono

import (
	"strings"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/pkg/zone"
)

// The generic functions of this package select a conversion from static
// types. Tools that learn the representation only at run time (the CLI,
// configuration) describe a value with Value and convert it with Convert,
// which dispatches to the same generic functions through a table indexed by
// source kind, target kind, unit and clock.

// Unit is a period known at run time
type Unit uint8

const (
	UnitNanosecond Unit = iota
	UnitMicrosecond
	UnitMillisecond
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	numUnits
)

var unitNames = [...]string{"ns", "us", "ms", "s", "min", "h", "d"}

func (u Unit) String() string {
	if u < numUnits {
		return unitNames[u]
	}
	return "Unit(?)"
}

// Ratio returns the length of one tick of u
func (u Unit) Ratio() Ratio {
	switch u {
	case UnitNanosecond:
		return ratioNano
	case UnitMicrosecond:
		return ratioMicro
	case UnitMillisecond:
		return ratioMilli
	case UnitSecond:
		return ratioSecond
	case UnitMinute:
		return ratioMinute
	case UnitHour:
		return ratioHour
	default:
		return ratioDay
	}
}

// ParseUnit accepts the names printed by Unit.String and their long forms
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ns", "nanosecond", "nanoseconds":
		return UnitNanosecond, nil
	case "us", "µs", "microsecond", "microseconds":
		return UnitMicrosecond, nil
	case "ms", "millisecond", "milliseconds":
		return UnitMillisecond, nil
	case "s", "sec", "second", "seconds":
		return UnitSecond, nil
	case "min", "minute", "minutes":
		return UnitMinute, nil
	case "h", "hour", "hours":
		return UnitHour, nil
	case "d", "day", "days":
		return UnitDay, nil
	}
	return 0, mdwerror.New("unknown unit "+s).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("chrono.ParseUnit").
		WithDetail("unit", s)
}

// Kind is the shape of a Value
type Kind uint8

const (
	KindDuration Kind = iota
	KindPoint
	KindZoned
	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindDuration:
		return "duration"
	case KindPoint:
		return "point"
	case KindZoned:
		return "zoned"
	}
	return "Kind(?)"
}

// Value is a duration, time point or zoned time whose unit and clock are
// known at run time. For KindZoned, Count is the local reading and Offset
// the UTC offset in seconds fixed when the value was resolved.
type Value struct {
	Kind   Kind
	Clock  ClockID
	Unit   Unit
	Count  int64
	Zone   zone.Zone
	Offset int64
}

// Target describes the representation Convert produces. Clock is used for
// KindPoint, Zone and Choice for KindZoned.
type Target struct {
	Kind   Kind
	Clock  ClockID
	Unit   Unit
	Zone   zone.Zone
	Choice Choice
}

// String renders v with the layout of its unit
func (v Value) String() string {
	switch v.Kind {
	case KindDuration:
		return unitTable[v.Unit].formatDuration(v.Count)
	case KindPoint:
		return unitTable[v.Unit].formatPoint(nil, v.Clock, v.Count)
	}
	return unitTable[v.Unit].formatPoint(nil, ClockLocal, v.Count)
}

type convertFunc func(r *Resolver, v Value, to Target) (Value, error)

// castTable holds one entry per (source kind, target kind). Pairs without a
// conversion are nil and rejected with UNSUPPORTED_CONVERSION.
var castTable = [numKinds][numKinds]convertFunc{
	KindDuration: {
		KindDuration: castDuration,
	},
	KindPoint: {
		KindPoint: castPoint,
		KindZoned: castPointToZoned,
	},
	KindZoned: {
		KindPoint: castZonedToPoint,
		KindZoned: castZoned,
	},
}

// Convert converts v to the representation to. The algorithm follows the
// generic functions: a clock change looks up the offset at the source
// instant and is followed by the unit change, which truncates toward zero.
func Convert(r *Resolver, v Value, to Target) (Value, error) {
	if err := checkValue(v.Kind, v.Clock, v.Unit, v.Zone); err != nil {
		return Value{}, err
	}
	if err := checkValue(to.Kind, to.Clock, to.Unit, to.Zone); err != nil {
		return Value{}, err
	}
	fn := castTable[v.Kind][to.Kind]
	if fn == nil {
		return Value{}, mdwerror.New("no conversion from "+v.Kind.String()+" to "+to.Kind.String()).
			WithCode(mdwerror.CodeUnsupportedConversion).
			WithOperation("chrono.Convert")
	}
	return fn(orDefault(r), v, to)
}

func checkValue(k Kind, c ClockID, u Unit, z zone.Zone) error {
	var msg string
	switch {
	case k >= numKinds:
		msg = "unknown kind"
	case u >= numUnits:
		msg = "unknown unit"
	case k == KindPoint && c > ClockLocal:
		msg = "unknown clock"
	case k == KindZoned && z == nil:
		msg = "zoned value without zone"
	default:
		return nil
	}
	return mdwerror.New(msg).
		WithCode(mdwerror.CodeUnsupportedConversion).
		WithOperation("chrono.Convert")
}

func castDuration(_ *Resolver, v Value, to Target) (Value, error) {
	return Value{
		Kind:  KindDuration,
		Unit:  to.Unit,
		Count: rescaleCount(v.Count, v.Unit, to.Unit),
	}, nil
}

func castPoint(r *Resolver, v Value, to Target) (Value, error) {
	count := unitTable[v.Unit].toClock(r, v.Clock, to.Clock, v.Count)
	return Value{
		Kind:  KindPoint,
		Clock: to.Clock,
		Unit:  to.Unit,
		Count: rescaleCount(count, v.Unit, to.Unit),
	}, nil
}

func castPointToZoned(r *Resolver, v Value, to Target) (Value, error) {
	zt := unitTable[v.Unit].zoned(r, v.Clock, v.Count, to.Zone, to.Choice)
	return castZoned(r, zt, to)
}

func castZonedToPoint(r *Resolver, v Value, to Target) (Value, error) {
	if to.Clock == ClockLocal {
		return Value{
			Kind:  KindPoint,
			Clock: ClockLocal,
			Unit:  to.Unit,
			Count: rescaleCount(v.Count, v.Unit, to.Unit),
		}, nil
	}
	sys := unitTable[v.Unit].shift(v.Count, -v.Offset)
	return castPoint(r, Value{Kind: KindPoint, Clock: ClockSystem, Unit: v.Unit, Count: sys}, to)
}

func castZoned(r *Resolver, v Value, to Target) (Value, error) {
	// zones are matched by name, implementations need not be comparable
	if to.Zone.Name() != v.Zone.Name() {
		sys := unitTable[v.Unit].shift(v.Count, -v.Offset)
		v = unitTable[v.Unit].zoned(r, ClockSystem, sys, to.Zone, to.Choice)
	}
	if to.Unit == v.Unit {
		return v, nil
	}
	return rescaleZoned(v, to.Unit), nil
}

func rescaleCount(count int64, from, to Unit) int64 {
	return scale(count, from.Ratio().Div(to.Ratio()), roundTrunc)
}

// ===============================
// Generic instantiations
// ===============================

// unitOps binds the generic functions to one period
type unitOps struct {
	formatDuration func(count int64) string
	formatPoint    func(r *Resolver, c ClockID, count int64) string
	toClock        func(r *Resolver, from, to ClockID, count int64) int64
	zoned          func(r *Resolver, c ClockID, count int64, z zone.Zone, choice Choice) Value
	shift          func(count, seconds int64) int64
	seconds        func(count int64) int64
}

var unitTable [numUnits]unitOps

func init() {
	unitTable = [numUnits]unitOps{
		UnitNanosecond:  opsFor[Nano](UnitNanosecond),
		UnitMicrosecond: opsFor[Micro](UnitMicrosecond),
		UnitMillisecond: opsFor[Milli](UnitMillisecond),
		UnitSecond:      opsFor[Second](UnitSecond),
		UnitMinute:      opsFor[Minute](UnitMinute),
		UnitHour:        opsFor[Hour](UnitHour),
		UnitDay:         opsFor[Day](UnitDay),
	}
}

func opsFor[P Period](u Unit) unitOps {
	return unitOps{
		formatDuration: func(count int64) string {
			return Of[P](count).String()
		},
		formatPoint: func(r *Resolver, c ClockID, count int64) string {
			return formatPoint(Of[P](toClockAt[P](r, c, ClockLocal, count)))
		},
		toClock: toClockAt[P],
		zoned: func(r *Resolver, c ClockID, count int64, z zone.Zone, choice Choice) Value {
			var zt ZonedTime[P, int64]
			if c == ClockLocal {
				zt = MakeZoned(z, At[Local](Of[P](count)), choice)
			} else {
				zt = ZonedFrom(r, z, At[System](Of[P](toClockAt[P](r, c, ClockSystem, count))))
			}
			return zonedValue(zt, u)
		},
		shift: func(count, seconds int64) int64 {
			return applySkew(count, seconds, ratioOf[P]())
		},
		seconds: func(count int64) int64 {
			sec, _ := splitFloor(Of[P](count))
			return sec
		},
	}
}

// rescaleZoned converts the local reading of v to the unit to, keeping the
// stored offset while it still applies, like RescaleZoned
func rescaleZoned(v Value, to Unit) Value {
	ops := unitTable[to]
	local := rescaleCount(v.Count, v.Unit, to)
	if v.Zone.Lookup(ops.seconds(local)-v.Offset).Offset != v.Offset {
		return ops.zoned(nil, ClockLocal, local, v.Zone, Earliest)
	}
	v.Unit, v.Count = to, local
	return v
}

func zonedValue[P Period](zt ZonedTime[P, int64], u Unit) Value {
	return Value{
		Kind:   KindZoned,
		Clock:  ClockLocal,
		Unit:   u,
		Count:  zt.Local().d.count,
		Zone:   zt.zone,
		Offset: zt.info.Offset,
	}
}

func toClockAt[P Period](r *Resolver, from, to ClockID, count int64) int64 {
	switch from {
	case ClockSystem:
		return toClockFrom[System, P](r, to, count)
	case ClockUTC:
		return toClockFrom[UTC, P](r, to, count)
	case ClockTAI:
		return toClockFrom[TAI, P](r, to, count)
	case ClockGPS:
		return toClockFrom[GPS, P](r, to, count)
	default:
		return toClockFrom[Local, P](r, to, count)
	}
}

func toClockFrom[From Clock, P Period](r *Resolver, to ClockID, count int64) int64 {
	tp := At[From](Of[P](count))
	switch to {
	case ClockSystem:
		return ToClock[System](r, tp).d.count
	case ClockUTC:
		return ToClock[UTC](r, tp).d.count
	case ClockTAI:
		return ToClock[TAI](r, tp).d.count
	case ClockGPS:
		return ToClock[GPS](r, tp).d.count
	default:
		return ToClock[Local](r, tp).d.count
	}
}

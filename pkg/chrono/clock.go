// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     chrono
// Description: Clock identities and time points
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package chrono

import (
	"cmp"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/pkg/calendar"
)

// ClockID identifies a clock at run time
type ClockID uint8

const (
	ClockSystem ClockID = iota
	ClockUTC
	ClockTAI
	ClockGPS
	ClockLocal
)

var clockNames = [...]string{"sys", "utc", "tai", "gps", "local"}

func (c ClockID) String() string {
	if int(c) < len(clockNames) {
		return clockNames[c]
	}
	return "ClockID(" + strconv.Itoa(int(c)) + ")"
}

// Physical reports whether c measures physical instants; Local does not
func (c ClockID) Physical() bool {
	return c < ClockLocal
}

// ParseClock accepts the names printed by ClockID.String and "system"
func ParseClock(s string) (ClockID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sys", "system":
		return ClockSystem, nil
	case "utc":
		return ClockUTC, nil
	case "tai":
		return ClockTAI, nil
	case "gps":
		return ClockGPS, nil
	case "local":
		return ClockLocal, nil
	}
	return 0, mdwerror.New("unknown clock "+s).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("chrono.ParseClock").
		WithDetail("clock", s)
}

// Clock is implemented by the clock tags of this package only.
//
// Epochs and count semantics:
//
//	System  1970-01-01 00:00:00 UTC, leap seconds not counted
//	UTC     1970-01-01 00:00:00 UTC, inserted leap seconds counted
//	TAI     1958-01-01 00:00:00 TAI
//	GPS     1980-01-06 00:00:00 UTC, TAI - 19s
//	Local   1970-01-01 00:00:00 of an unspecified civil reading
type Clock interface {
	ID() ClockID
	clock()
}

// PhysicalClock is a clock measuring physical instants
type PhysicalClock interface {
	Clock
	physical()
}

type (
	System struct{}
	UTC    struct{}
	TAI    struct{}
	GPS    struct{}
	Local  struct{}
)

func (System) ID() ClockID { return ClockSystem }
func (UTC) ID() ClockID { return ClockUTC }
func (TAI) ID() ClockID { return ClockTAI }
func (GPS) ID() ClockID { return ClockGPS }
func (Local) ID() ClockID { return ClockLocal }

func (System) clock() {}
func (UTC) clock() {}
func (TAI) clock() {}
func (GPS) clock() {}
func (Local) clock() {}

func (System) physical() {}
func (UTC) physical() {}
func (TAI) physical() {}
func (GPS) physical() {}

func clockOf[C Clock]() ClockID {
	var c C
	return c.ID()
}

// ===============================
// Time points
// ===============================

// TimePoint is a duration since the epoch of clock C. Points of different
// clocks do not mix; ToClock converts between them.
type TimePoint[C Clock, P Period, R Rep] struct {
	d Duration[P, R]
}

// At returns the point d after the epoch of C
func At[C Clock, P Period, R Rep](d Duration[P, R]) TimePoint[C, P, R] {
	return TimePoint[C, P, R]{d: d}
}

// AtDate returns midnight of ymd as a local point. A bare date has no
// physical instant until it is zoned.
func AtDate(ymd calendar.YearMonthDay) TimePoint[Local, Day, int64] {
	return TimePoint[Local, Day, int64]{d: Days(ymd.Days())}
}

// SinceEpoch returns the duration since the epoch of C
func (t TimePoint[C, P, R]) SinceEpoch() Duration[P, R] {
	return t.d
}

// Clock returns the identity of C
func (t TimePoint[C, P, R]) Clock() ClockID {
	return clockOf[C]()
}

func (t TimePoint[C, P, R]) Add(d Duration[P, R]) TimePoint[C, P, R] {
	return TimePoint[C, P, R]{d: t.d.Add(d)}
}

// Sub moves the point backwards by d
func (t TimePoint[C, P, R]) Sub(d Duration[P, R]) TimePoint[C, P, R] {
	return TimePoint[C, P, R]{d: t.d.Sub(d)}
}

// Since returns t - o
func (t TimePoint[C, P, R]) Since(o TimePoint[C, P, R]) Duration[P, R] {
	return t.d.Sub(o.d)
}

func (t TimePoint[C, P, R]) Compare(o TimePoint[C, P, R]) int {
	return cmp.Compare(t.d.count, o.d.count)
}

func (t TimePoint[C, P, R]) Before(o TimePoint[C, P, R]) bool {
	return t.d.count < o.d.count
}

func (t TimePoint[C, P, R]) After(o TimePoint[C, P, R]) bool {
	return t.d.count > o.d.count
}

// Date returns the calendar date of the clock's own reading of t. UTC points
// are read through the default Resolver; use CalendarOf to supply another.
func (t TimePoint[C, P, R]) Date() calendar.YearMonthDay {
	return CalendarOf(nil, t)
}

// TimeOfDay returns the clock's own reading of t within its day
func (t TimePoint[C, P, R]) TimeOfDay() TimeOfDay[P, R] {
	return TimeOfDayAt(nil, t)
}

// String renders the clock's own reading of t, see Duration.String for the
// field layout
func (t TimePoint[C, P, R]) String() string {
	return formatPoint(ToClock[Local](nil, t).d)
}

// RescalePoint converts t to the period To, truncating toward zero like
// Rescale
func RescalePoint[To Period, C Clock, From Period, R Rep](t TimePoint[C, From, R]) TimePoint[C, To, R] {
	return TimePoint[C, To, R]{d: Rescale[To](t.d)}
}

// FloorPoint converts t to the period To rounding toward the past
func FloorPoint[To Period, C Clock, From Period, R Rep](t TimePoint[C, From, R]) TimePoint[C, To, R] {
	return TimePoint[C, To, R]{d: Floor[To](t.d)}
}

// CalendarOf returns the date of the clock's own reading of t
func CalendarOf[C Clock, P Period, R Rep](r *Resolver, t TimePoint[C, P, R]) calendar.YearMonthDay {
	local := ToClock[Local](r, t)
	sec, _ := splitFloor(local.d)
	return calendar.FromDays(floorDiv(sec, secondsPerDay))
}

// TimeOfDayAt returns the clock's own reading of t within its day
func TimeOfDayAt[C Clock, P Period, R Rep](r *Resolver, t TimePoint[C, P, R]) TimeOfDay[P, R] {
	local := ToClock[Local](r, t)
	sec, _ := splitFloor(local.d)
	midnight := applySkew(R(0), floorDiv(sec, secondsPerDay)*secondsPerDay, ratioOf[P]())
	return TimeOfDayOf(Duration[P, R]{local.d.count - midnight})
}

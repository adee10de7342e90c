// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     chrono
// Description: Current instant on every clock
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package chrono

import (
	"sync/atomic"
	"time"

	"github.com/msto63/chronox/pkg/zone"
)

// Source supplies the current wall clock time
type Source interface {
	Now() time.Time
}

// SystemSource reads time.Now
type SystemSource struct{}

func (SystemSource) Now() time.Time {
	return time.Now()
}

// FixedSource always returns the same instant
type FixedSource time.Time

func (f FixedSource) Now() time.Time {
	return time.Time(f)
}

type sourceBox struct{ Source }

var source atomic.Pointer[sourceBox]

func init() {
	source.Store(&sourceBox{SystemSource{}})
}

// SetSource replaces the source behind Now and returns a function that
// restores the previous one
func SetSource(s Source) (restore func()) {
	prev := source.Swap(&sourceBox{s})
	return func() { source.Store(prev) }
}

// FromTime converts t to a system clock point
func FromTime(t time.Time) TimePoint[System, Nano, int64] {
	return TimePoint[System, Nano, int64]{d: Nanoseconds(t.UnixNano())}
}

// ToTime converts a system clock point to a time.Time in UTC
func ToTime[P Period, R Rep](t TimePoint[System, P, R]) time.Time {
	sec, ns := splitFloor(t.d)
	return time.Unix(sec, ns).UTC()
}

// Now returns the current instant on the system clock
func Now() TimePoint[System, Nano, int64] {
	return FromTime(source.Load().Now())
}

// NowOn returns the current instant on clock C
func NowOn[C PhysicalClock](r *Resolver) TimePoint[C, Nano, int64] {
	return ToClock[C](r, Now())
}

// NowIn returns the current instant in zone z
func NowIn(z zone.Zone) ZonedTime[Nano, int64] {
	return ZonedFrom(nil, z, Now())
}

// NowInNamed locates name through p and returns the current instant there
func NowInNamed(p zone.Provider, name string) (ZonedTime[Nano, int64], error) {
	z, err := p.Locate(name)
	if err != nil {
		return ZonedTime[Nano, int64]{}, err
	}
	return NowIn(z), nil
}

// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     chrono
// Description: Durations, clocks, time points and zoned time
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

// Package chrono converts and renders time values whose unit, clock and zone
// are part of their static type.
//
// A Duration[P, R] counts ticks of the rational period P in the
// representation R. A TimePoint[C, P, R] is a Duration measured from the
// epoch of clock C. A ZonedTime[P, R] pairs a local civil reading with the
// zone and the offset that resolve it to a physical instant.
//
// Conversions are plain generic functions whose type parameters select the
// algorithm:
//
//	Rescale[To](d)            unit change, truncating toward zero
//	RescalePoint[To](tp)      unit change of a time point
//	ToClock[To](r, tp)        clock change through a Resolver
//	MakeZoned(z, local, c)    local reading to zoned time
//	ZonedFrom(r, z, tp)       physical instant to zoned time
//	RescaleZoned[To](zt)      unit change of a zoned time
//
// A combination without a conversion does not compile. Clock identity is a
// closed set: System, UTC, TAI, GPS and Local.
//
// Every value renders itself through String with a field layout chosen by
// its period: a millisecond point prints as "2018-03-25 01:30:00.000", a
// minute duration as "26:02".
//
// Convert performs the same conversions on a Value whose kind, unit, clock
// and zone are known only at run time. Now reads the current instant from a
// replaceable Source.
//
// All values are immutable and safe for concurrent use. The leap second
// table behind a Resolver and the zone rules behind a zone.Zone are
// consulted by reference and never modified.
package chrono

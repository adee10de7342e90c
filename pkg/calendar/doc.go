// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     calendar
// Description: Proleptic Gregorian calendar fields and descriptors
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

// Package calendar implements the proleptic Gregorian calendar used by the
// chrono package: year, month, day and weekday fields, composite descriptors
// such as "second Monday of March 2018" or "last day of February", and the
// bijection between a YearMonthDay and a signed count of days since
// 1970-01-01.
//
// Year 0 exists and precedes year 1. All types are small comparable values.
// Composite literals are unchecked; each type has an Ok method, and the New*
// constructors return an error with code INVALID_CALENDAR instead of
// normalizing an out-of-range value.
package calendar

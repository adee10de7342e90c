// Package timex parses textual time input into chrono values.
//
// Package: timex
// Title: Time Input Utilities
// Description: Parsing of dates, civil readings, instants and durations into
//              chrono values that keep the precision of the input, and the
//              bridge between time.Time and chrono system clock points. The
//              command line tool uses it for every positional argument.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-14 v0.2.0: Reduced to input parsing for chrono values
//
// # Parsing Functions
//
// The parsers try a fixed list of layouts in order and return the first
// match:
//   - ParseLocal: "2018-03-25 02:30:01.002", "2018-03-25T02:30", "25.03.2018", ...
//   - ParseInstant: RFC 3339 with a zone offset
//   - ParseDate: "2018-03-25", "25.03.2018", "20180325"
//   - ParseDuration: "1h30m", "90 seconds", "-01:01:01.001"
//
// The unit of a parsed value follows its finest field, so "2018-03-25 02:30"
// yields a minute point and "2018-03-25 02:30:01.002" a millisecond point.
//
// Usage:
//
//	v, err := timex.ParseLocal("2018-03-25 02:30")
//	if err != nil {
//		return err
//	}
//	zoned, err := chrono.Convert(nil, v, chrono.Target{
//		Kind:   chrono.KindZoned,
//		Unit:   v.Unit,
//		Zone:   berlin,
//		Choice: chrono.Latest,
//	})
//
// All errors carry the code INVALID_FORMAT.
package timex

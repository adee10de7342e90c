// Package error provides structured error handling for the chronox libraries.
//
// Package: error
// Title: chronox Error Handling
// Description: Structured error type carrying a classification code, a severity,
//              key/value details and the failing operation. Calendar validation,
//              zone lookup, local time disambiguation and table loading all report
//              failures through this type so callers can branch on the code.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Reduced to the time domain, added calendar and zone codes
// - 2026-10-14 v0.3.0: Sentinels per domain code for errors.Is
//
// Usage:
//   import mdwerror "github.com/msto63/chronox/foundation/core/error"
//
//   err := mdwerror.New("day out of range for month").
//     WithCode(mdwerror.CodeInvalidCalendar).
//     WithDetail("month", 2).
//     WithDetail("day", 30)
//
//   if errors.Is(err, mdwerror.ErrInvalidCalendar) {
//     // reject the input
//   }
package error

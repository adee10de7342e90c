// Package log provides structured logging for chronox.
//
// Package: log
// Title: chronox Structured Logging
// Description: Leveled, structured logger with immutable With* derivation,
//              JSON, text, logfmt and console formatters, and integration with
//              the chronox error type. Conversion code never logs; the logger is
//              used at collaborator boundaries (table loading, zone lookup) and
//              by the command line tool.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-14 v0.2.0: Removed async mode and request context, lipgloss console colours, Nop logger
// - 2026-10-14 v0.3.0: Shared sink for derived loggers, common key names across formats
//
// Usage:
//   import mdwlog "github.com/msto63/chronox/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatLogfmt,
//     Name:   "leapsec",
//   })
//
//   logger.Debug("leap table loaded", mdwlog.Fields{
//     "entries": 27,
//     "expires": "2026-12-28",
//   })
//   logger.LogError(err)
package log

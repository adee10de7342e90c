// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across chronox. Codes classify a
//              failure independently of its message so callers and the CLI can
//              react to the kind of failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Replaced platform codes with time domain codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Calendar and clock domain
	CodeInvalidCalendar       Code = "INVALID_CALENDAR"
	CodeUnknownZone           Code = "UNKNOWN_ZONE"
	CodeAmbiguousLocalTime    Code = "AMBIGUOUS_LOCAL_TIME"
	CodeNonexistentLocalTime  Code = "NONEXISTENT_LOCAL_TIME"
	CodeInexactConversion     Code = "INEXACT_CONVERSION"
	CodeUnsupportedConversion Code = "UNSUPPORTED_CONVERSION"

	// Leap second tables
	CodeTableFormat  Code = "TABLE_FORMAT"
	CodeTableExpired Code = "TABLE_EXPIRED"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidCalendar, CodeUnknownZone, CodeAmbiguousLocalTime, CodeNonexistentLocalTime,
		CodeInexactConversion, CodeUnsupportedConversion,
		CodeTableFormat, CodeTableExpired,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidCalendar:
		return "calendar"
	case CodeUnknownZone, CodeAmbiguousLocalTime, CodeNonexistentLocalTime:
		return "zone"
	case CodeInexactConversion, CodeUnsupportedConversion:
		return "conversion"
	case CodeTableFormat, CodeTableExpired:
		return "table"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "configuration":
		return 3
	case "table":
		return 4
	case "calendar", "zone", "conversion", "validation":
		return 2
	default:
		if c == CodeInvalidInput || c == CodeNotFound {
			return 2
		}
		return 1
	}
}

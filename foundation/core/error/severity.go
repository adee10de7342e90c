// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              onto log levels when an error is logged with LogError.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-14 v0.2.0: Severity mapping for time domain codes
// - 2026-10-14 v0.3.0: Severity derived from the code category

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a rejected input, e.g. an invalid calendar date
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with a workaround, e.g. an expired leap table
	SeverityMedium

	// SeverityHigh indicates that an operation cannot proceed, e.g. an unreadable table
	SeverityHigh

	// SeverityCritical indicates that the process cannot continue
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

// String returns the lower case name of the severity
func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// GetSeverityFromCode returns the default severity of code. Rejected inputs
// are low, problems the caller can work around are medium, and broken
// configuration or tables are high.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError:
		return SeverityCritical
	case CodeInternal:
		return SeverityHigh
	case CodeTableExpired, CodeUnsupportedConversion:
		return SeverityMedium
	case CodeInvalidInput, CodeNotFound:
		return SeverityLow
	}
	switch code.Category() {
	case "configuration", "table":
		return SeverityHigh
	case "calendar", "zone", "conversion", "validation":
		return SeverityLow
	}
	return SeverityMedium
}

// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type with code, severity, ordered details
//              and the failing operation. Error stays compatible with the
//              standard error interface and with errors.Is / errors.As.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-14 v0.2.0: Dropped request and localization metadata, code lookup via errors.As
// - 2026-10-14 v0.3.0: Errors are plain values without timestamp or stack trace,
//                       ordered details, per-code sentinels for errors.Is

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error represents a structured error with a code, a severity and context
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	operation string
	details   []Detail

	sentinel bool
}

// Detail is one key/value pair attached to an error. Details keep the order
// in which they were added.
type Detail struct {
	Key   string
	Value interface{}
}

// Sentinels for errors.Is. A sentinel matches every *Error in a chain that
// carries its code, whatever the message.
var (
	ErrInvalidCalendar       = sentinel(CodeInvalidCalendar, "invalid calendar value")
	ErrUnknownZone           = sentinel(CodeUnknownZone, "unknown zone")
	ErrAmbiguousLocalTime    = sentinel(CodeAmbiguousLocalTime, "ambiguous local time")
	ErrNonexistentLocalTime  = sentinel(CodeNonexistentLocalTime, "nonexistent local time")
	ErrInexactConversion     = sentinel(CodeInexactConversion, "inexact conversion")
	ErrUnsupportedConversion = sentinel(CodeUnsupportedConversion, "unsupported conversion")
	ErrTableFormat           = sentinel(CodeTableFormat, "malformed leap second table")
)

func sentinel(code Code, message string) *Error {
	return &Error{message: message, code: code, severity: GetSeverityFromCode(code), sentinel: true}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. Code, severity and
// details of the nearest *Error in the chain of err are inherited.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message:  message,
		cause:    err,
		code:     CodeUnknown,
		severity: SeverityMedium,
	}
	var inner *Error
	if errors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		wrapped.details = append([]Detail(nil), inner.details...)
	}
	return wrapped
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is the sentinel for the code of e
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.sentinel && t.code == e.code
}

// WithCode sets the error code. The severity follows the code unless it was
// set explicitly.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail, replacing an earlier value for key
func (e *Error) WithDetail(key string, value interface{}) *Error {
	for i := range e.details {
		if e.details[i].Key == key {
			e.details[i].Value = value
			return e
		}
	}
	e.details = append(e.details, Detail{Key: key, Value: value})
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Message returns the message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Details returns a copy of the details in insertion order
func (e *Error) Details() []Detail {
	return append([]Detail(nil), e.details...)
}

// Detail returns a single detail value
func (e *Error) Detail(key string) (interface{}, bool) {
	for _, d := range e.details {
		if d.Key == key {
			return d.Value, true
		}
	}
	return nil, false
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// RootCause returns the deepest error of the chain
func (e *Error) RootCause() error {
	var last error = e
	for current := errors.Unwrap(last); current != nil; current = errors.Unwrap(current) {
		last = current
	}
	return last
}

// String renders e on one line as
// [CODE] operation: message: cause {key=value ...}
func (e *Error) String() string {
	var b strings.Builder
	b.WriteString("[" + string(e.code) + "] ")
	if e.operation != "" {
		b.WriteString(e.operation + ": ")
	}
	b.WriteString(e.Error())
	if len(e.details) > 0 {
		b.WriteString(" {")
		for i, d := range e.details {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", d.Key, d.Value)
		}
		b.WriteByte('}')
	}
	return b.String()
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":  e.message,
		"code":     e.code,
		"severity": e.severity.String(),
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if len(e.details) > 0 {
		details := make(map[string]interface{}, len(e.details))
		for _, d := range e.details {
			details[d.Key] = d.Value
		}
		data["details"] = details
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	return json.Marshal(data)
}

// HasCode reports whether any *Error in the chain of err carries code
func HasCode(err error, code Code) bool {
	for err != nil {
		var mdwErr *Error
		if !errors.As(err, &mdwErr) {
			return false
		}
		if mdwErr.code == code {
			return true
		}
		err = mdwErr.cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in the chain, or CodeUnknown
func GetCode(err error) Code {
	var mdwErr *Error
	if errors.As(err, &mdwErr) {
		return mdwErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the outermost *Error in the chain, or SeverityMedium
func GetSeverity(err error) Severity {
	var mdwErr *Error
	if errors.As(err, &mdwErr) {
		return mdwErr.severity
	}
	return SeverityMedium
}

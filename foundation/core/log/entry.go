// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry and the Fields helpers used to attach
//              structured values to a message.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-14 v0.2.0: Removed request context, sorted field keys
// - 2026-10-14 v0.3.0: Caller reduced to file:line, entries built by the logger only

package log

import (
	"sort"
	"time"
)

// Entry is one formatted log record
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Logger  string
	Fields  Fields
	Err     error

	// Caller is file:line of the logging call, empty unless enabled
	Caller string
}

// Fields represents key-value pairs attached to a message
type Fields map[string]interface{}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// merge copies the fields of each set into f, later sets win
func (f Fields) merge(sets ...Fields) Fields {
	for _, set := range sets {
		for k, v := range set {
			f[k] = v
		}
	}
	return f
}

// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     leapsec
// Description: Leap second table type
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package leapsec

import (
	"sort"
	"time"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/pkg/calendar"
)

const secondsPerDay = 86400

// Entry is one leap second insertion. Date is the UTC day from whose
// midnight on the new offset applies; Offset is TAI - UTC from then on.
type Entry struct {
	Date   calendar.YearMonthDay
	Offset int64
}

// Table is an immutable, ordered leap second table. It is safe for
// concurrent use.
type Table struct {
	version    string
	baseOffset int64
	expires    calendar.YearMonthDay
	hasExpiry  bool
	entries    []Entry
	insertions []int64
}

// Spec describes a table to build with New
type Spec struct {
	Version    string
	BaseOffset int64
	// Expires is the zero value when the table carries no expiry date
	Expires calendar.YearMonthDay
	Dates   []calendar.YearMonthDay
}

// New validates spec and builds a table. Dates must be valid and strictly
// increasing.
func New(spec Spec) (*Table, error) {
	t := &Table{
		version:    spec.Version,
		baseOffset: spec.BaseOffset,
		entries:    make([]Entry, 0, len(spec.Dates)),
		insertions: make([]int64, 0, len(spec.Dates)),
	}

	if spec.Expires != (calendar.YearMonthDay{}) {
		if !spec.Expires.Ok() {
			return nil, tableError("leapsec.New", "invalid expiry date").WithDetail("expires", spec.Expires.String())
		}
		t.expires, t.hasExpiry = spec.Expires, true
	}

	offset := spec.BaseOffset
	for i, d := range spec.Dates {
		if !d.Ok() {
			return nil, tableError("leapsec.New", "invalid leap date").WithDetail("date", d.String())
		}
		if i > 0 && d.Compare(spec.Dates[i-1]) <= 0 {
			return nil, tableError("leapsec.New", "leap dates must be strictly increasing").
				WithDetail("date", d.String()).
				WithDetail("previous", spec.Dates[i-1].String())
		}
		offset++
		t.entries = append(t.entries, Entry{Date: d, Offset: offset})
		t.insertions = append(t.insertions, d.Days()*secondsPerDay)
	}
	return t, nil
}

// Version returns the publisher's version string
func (t *Table) Version() string {
	return t.version
}

// Len returns the number of insertions
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the insertions in chronological order
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// BaseOffset returns TAI - UTC in seconds before the first insertion
func (t *Table) BaseOffset() int64 {
	return t.baseOffset
}

// Insertions returns, for every insertion, the system clock second (seconds
// since 1970-01-01 without leap seconds) from which the new offset applies.
func (t *Table) Insertions() []int64 {
	out := make([]int64, len(t.insertions))
	copy(out, t.insertions)
	return out
}

// Expires returns the system clock second at which the table stops being
// authoritative
func (t *Table) Expires() (int64, bool) {
	if !t.hasExpiry {
		return 0, false
	}
	return t.expires.Days() * secondsPerDay, true
}

// ExpiresDate returns the expiry date
func (t *Table) ExpiresDate() (calendar.YearMonthDay, bool) {
	return t.expires, t.hasExpiry
}

// IsExpired reports whether now lies past the expiry date
func (t *Table) IsExpired(now time.Time) bool {
	exp, ok := t.Expires()
	return ok && now.Unix() >= exp
}

// Count returns the number of insertions in effect at the system clock
// second sys
func (t *Table) Count(sys int64) int {
	return sort.Search(len(t.insertions), func(i int) bool { return t.insertions[i] > sys })
}

// OffsetAt returns TAI - UTC in seconds at the system clock second sys
func (t *Table) OffsetAt(sys int64) int64 {
	return t.baseOffset + int64(t.Count(sys))
}

func tableError(op, msg string) *mdwerror.Error {
	return mdwerror.New(msg).WithCode(mdwerror.CodeTableFormat).WithOperation(op)
}

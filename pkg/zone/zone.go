// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     zone
// Description: Timezone rule provider interfaces and implementations
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

// Package zone supplies UTC offsets for named timezones. A Zone answers, for
// a physical instant, which offset, abbreviation and DST flag apply and over
// which interval they stay constant; a Provider resolves zone names. The
// chrono package resolves local civil time against these interfaces and never
// reads the timezone database itself.
package zone

import (
	"math"
	"strconv"
	"sync"
	"time"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	mdwlog "github.com/msto63/chronox/foundation/core/log"
)

// Bounds of an Info interval that is open on one side
const (
	Beginning int64 = math.MinInt64
	End       int64 = math.MaxInt64
)

// Info describes the rule in effect at an instant. Start and End are system
// clock seconds (seconds since 1970-01-01 UTC, no leap seconds) delimiting
// the half-open interval [Start, End) over which the rule applies.
type Info struct {
	Offset int64 // seconds east of UTC
	Abbrev string
	IsDST  bool
	Start  int64
	End    int64
}

// Zone maps physical instants to the rule in effect. Implementations must be
// safe for concurrent use.
type Zone interface {
	Name() string
	Lookup(sys int64) Info
}

// Provider resolves zone names
type Provider interface {
	// Locate returns the zone called name, or an error with code
	// UNKNOWN_ZONE. It never substitutes a default zone.
	Locate(name string) (Zone, error)
}

// ===============================
// Fixed offsets
// ===============================

type fixedZone struct {
	name   string
	offset int64
	abbrev string
}

// Fixed returns a zone with a constant offset in seconds east of UTC
func Fixed(name string, offset int64, abbrev string) Zone {
	return fixedZone{name: name, offset: offset, abbrev: abbrev}
}

// UTC is the zone with offset zero
var UTC = Fixed("UTC", 0, "UTC")

func (z fixedZone) Name() string { return z.name }

func (z fixedZone) Lookup(int64) Info {
	return Info{Offset: z.offset, Abbrev: z.abbrev, Start: Beginning, End: End}
}

// ===============================
// time.Location backed zones
// ===============================

type locationZone struct {
	name string
	loc  *time.Location
}

// FromLocation adapts a *time.Location
func FromLocation(loc *time.Location) Zone {
	return locationZone{name: loc.String(), loc: loc}
}

func (z locationZone) Name() string { return z.name }

func (z locationZone) Lookup(sys int64) Info {
	t := time.Unix(sys, 0).In(z.loc)
	abbrev, offset := t.Zone()
	info := Info{Offset: int64(offset), Abbrev: abbrev, IsDST: t.IsDST(), Start: Beginning, End: End}
	start, end := t.ZoneBounds()
	if !start.IsZero() {
		info.Start = start.Unix()
	}
	if !end.IsZero() {
		info.End = end.Unix()
	}
	return info
}

// TZProvider resolves IANA zone names through the Go runtime timezone
// database, caching loaded zones. Importing time/tzdata makes it independent
// of the host's zoneinfo files.
type TZProvider struct {
	mu     sync.RWMutex
	cache  map[string]Zone
	logger *mdwlog.Logger
}

// NewTZProvider creates a provider; logger may be nil
func NewTZProvider(logger *mdwlog.Logger) *TZProvider {
	return &TZProvider{
		cache:  make(map[string]Zone),
		logger: mdwlog.OrNop(logger).WithName("zone"),
	}
}

var (
	defaultProvider     *TZProvider
	defaultProviderOnce sync.Once
)

// Default returns the process wide TZProvider
func Default() *TZProvider {
	defaultProviderOnce.Do(func() {
		defaultProvider = NewTZProvider(nil)
	})
	return defaultProvider
}

// Locate implements Provider. "UTC" resolves to UTC and "Local" to the
// process zone. Anything else is looked up in the timezone database. The
// empty name is rejected with UNKNOWN_ZONE.
func (p *TZProvider) Locate(name string) (Zone, error) {
	p.mu.RLock()
	if z, ok := p.cache[name]; ok {
		p.mu.RUnlock()
		return z, nil
	}
	p.mu.RUnlock()

	if name == "" {
		return nil, unknownZone(name, nil)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		p.logger.Warn("unknown zone", mdwlog.Fields{"zone": name})
		return nil, unknownZone(name, err)
	}

	var z Zone = locationZone{name: name, loc: loc}
	if name == "UTC" {
		z = UTC
	}
	p.logger.Debug("zone loaded", mdwlog.Fields{"zone": name})

	p.mu.Lock()
	p.cache[name] = z
	p.mu.Unlock()
	return z, nil
}

// MapProvider resolves names from a fixed set of zones, for tests and
// embedded use
type MapProvider map[string]Zone

// Locate implements Provider
func (m MapProvider) Locate(name string) (Zone, error) {
	if z, ok := m[name]; ok {
		return z, nil
	}
	return nil, unknownZone(name, nil)
}

func unknownZone(name string, cause error) *mdwerror.Error {
	var e *mdwerror.Error
	if cause != nil {
		e = mdwerror.Wrap(cause, "unknown zone "+strconv.Quote(name))
	} else {
		e = mdwerror.New("unknown zone " + strconv.Quote(name))
	}
	return e.WithCode(mdwerror.CodeUnknownZone).
		WithOperation("zone.Locate").
		WithDetail("zone", name)
}

// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     leapsec
// Description: Versioned leap second tables
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

// Package leapsec provides the leap second table consumed by the chrono
// epoch resolver. A Table lists the UTC days on which an inserted leap
// second took effect together with TAI - UTC before the first insertion and
// the date until which the publisher guarantees the list is complete.
//
// Tables are read from TOML, YAML or the IANA leapseconds file format. The
// table published with this version is embedded and returned by Default.
package leapsec

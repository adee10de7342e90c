// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and tool
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package version

import (
	"runtime/debug"

	"github.com/msto63/chronox/pkg/leapsec"
)

// Version constants
const (
	// Library version of the chrono, calendar, leapsec and zone packages
	Library = "1.0.0"

	// CLI version of cmd/chronox
	CLI = "1.0.0"
)

// Commit is set at link time with -ldflags "-X .../version.Commit=..."
var Commit = ""

// Info describes a build
type Info struct {
	Library   string
	CLI       string
	Commit    string
	GoVersion string
	LeapTable string
}

// Get returns the version of this build. Commit falls back to the VCS
// revision recorded by the Go toolchain.
func Get() Info {
	info := Info{
		Library:   Library,
		CLI:       CLI,
		Commit:    Commit,
		LeapTable: leapsec.Default().Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		if info.Commit == "" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.Commit = s.Value
				}
			}
		}
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "chronox":
		return CLI
	default:
		return Library
	}
}

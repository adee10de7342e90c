// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering log output.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-14 v0.2.0: Dropped audit level, lipgloss colours, LevelOff
// - 2026-10-14 v0.3.0: Level attributes kept in one table

package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	// LevelWarn is used for recoverable conditions such as an expired leap table
	LevelWarn
	LevelError
	LevelFatal

	// LevelOff disables all output
	LevelOff
)

type levelAttrs struct {
	name    string
	short   string
	colour  string
	aliases []string
}

var levelTable = [...]levelAttrs{
	LevelTrace: {"trace", "TRC", "7", []string{"trc"}},
	LevelDebug: {"debug", "DBG", "6", []string{"dbg"}},
	LevelInfo:  {"info", "INF", "2", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", "3", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", "1", []string{"err"}},
	LevelFatal: {"fatal", "FTL", "5", []string{"ftl"}},
	LevelOff:   {"off", "OFF", "", []string{"none", "silent"}},
}

func (l Level) attrs() (levelAttrs, bool) {
	if l < 0 || int(l) >= len(levelTable) {
		return levelAttrs{}, false
	}
	return levelTable[l], true
}

// String returns the lower case name of the level
func (l Level) String() string {
	if a, ok := l.attrs(); ok {
		return a.name
	}
	return "unknown"
}

// ShortString returns the three letter tag used by the text formats
func (l Level) ShortString() string {
	if a, ok := l.attrs(); ok {
		return a.short
	}
	return "???"
}

// Color returns the terminal colour of the level for console output
func (l Level) Color() lipgloss.TerminalColor {
	if a, ok := l.attrs(); ok && a.colour != "" {
		return lipgloss.Color(a.colour)
	}
	return lipgloss.NoColor{}
}

// Enabled reports whether a message at l passes the threshold min
func (l Level) Enabled(min Level) bool {
	return l < LevelOff && l >= min
}

// ParseLevel parses a level name or one of its aliases, ignoring case
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, a := range levelTable {
		if s == a.name {
			return Level(i), nil
		}
		for _, alias := range a.aliases {
			if s == alias {
				return Level(i), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: s, Type: "level"}
}

// ParseError reports an unknown level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

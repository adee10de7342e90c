// File: format_test.go
// Title: Log Format Tests
// Description: Tests for level and format parsing and for each formatter.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Deterministic field order, console formatter
// - 2026-10-14 v0.3.0: Shared key names, logfmt quoting

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedEntry() *Entry {
	return &Entry{
		Time:    time.Date(2027, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   LevelWarn,
		Message: "leap table expired",
		Logger:  "leapsec",
		Fields:  Fields{"version": "IERS Bulletin C 71", "entries": 27},
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"trc", LevelTrace, false},
		{"silent", LevelOff, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelAttributes(t *testing.T) {
	for l := LevelTrace; l <= LevelOff; l++ {
		got, err := ParseLevel(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v", l.String(), got, err)
		}
	}
	if Level(42).String() != "unknown" || Level(-1).ShortString() != "???" {
		t.Error("out of range levels must not index the table")
	}
	if LevelWarn.ShortString() != "WRN" {
		t.Errorf("ShortString() = %q", LevelWarn.ShortString())
	}
}

func TestLevelEnabled(t *testing.T) {
	if !LevelError.Enabled(LevelWarn) {
		t.Error("error should pass warn threshold")
	}
	if LevelDebug.Enabled(LevelInfo) {
		t.Error("debug should not pass info threshold")
	}
	if LevelOff.Enabled(LevelTrace) {
		t.Error("LevelOff never logs")
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatText, FormatConsole, FormatLogfmt} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	} else if err.Error() != "invalid format: xml" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := NewFormatter(FormatText).Format(fixedEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := "03:04:05 WRN leapsec: leap table expired entries=27 version=\"IERS Bulletin C 71\"\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := fixedEntry()
	e.Err = errors.New("stale")
	e.Caller = "load.go:77"
	out, err := NewFormatter(FormatLogfmt).Format(e)
	if err != nil {
		t.Fatal(err)
	}
	want := `time=2027-01-02T03:04:05Z level=warn logger=leapsec msg="leap table expired" entries=27 version="IERS Bulletin C 71" error=stale caller=load.go:77` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLogfmtValue(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{"Europe/Berlin", "Europe/Berlin"},
		{"", `""`},
		{"a=b", `"a=b"`},
		{37, "37"},
		{LevelInfo, "info"},
		{errors.New("two words"), `"two words"`},
	}
	for _, tt := range tests {
		if got := logfmtValue(tt.in); got != tt.want {
			t.Errorf("logfmtValue(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestConsoleFormatterPlain(t *testing.T) {
	f := NewFormatter(FormatConsole).(*ConsoleFormatter)
	f.NoColor = true
	out, err := f.Format(fixedEntry())
	if err != nil {
		t.Fatal(err)
	}
	text, _ := NewFormatter(FormatText).Format(fixedEntry())
	if string(out) != string(text) {
		t.Errorf("plain console output %q differs from text %q", out, text)
	}
}

func TestConsoleFormatterKeepsContent(t *testing.T) {
	out, err := NewFormatter(FormatConsole).Format(fixedEntry())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"WRN", "leapsec: leap table expired", "entries=27"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("console output %q missing %q", out, want)
		}
	}
}

func TestJSONFormatterErrorField(t *testing.T) {
	e := fixedEntry()
	e.Fields["cause"] = errors.New("eof")
	out, err := NewFormatter(FormatJSON).Format(e)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"cause":"eof"`, `"msg":"leap table expired"`, `"time":"2027-01-02T03:04:05Z"`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("JSON output %s missing %s", out, want)
		}
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON lines must end with a newline")
	}
}

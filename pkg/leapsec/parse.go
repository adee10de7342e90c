// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     leapsec
// Description: TOML, YAML, IANA and NTP list table decoding
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package leapsec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/pkg/calendar"
)

// Format identifies a table encoding
type Format int

const (
	// FormatAuto selects the format from the file extension or content
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
	// FormatIANA is the leapseconds file distributed with the tz database
	FormatIANA
	// FormatNTP is the leap-seconds.list file in NTP seconds
	FormatNTP
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatIANA:
		return "iana"
	case FormatNTP:
		return "ntp"
	default:
		return "auto"
	}
}

// ParseFormat parses a format name as used in configuration files
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "iana", "tzdata", "leapseconds":
		return FormatIANA, nil
	case "ntp", "list", "leap-seconds.list":
		return FormatNTP, nil
	default:
		return FormatAuto, mdwerror.New("unknown leap table format").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("leapsec.ParseFormat").
			WithDetail("format", s)
	}
}

// FormatFromPath guesses the format from the file extension
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".list":
		return FormatNTP
	case "":
		return FormatIANA
	default:
		return FormatAuto
	}
}

func sniff(data []byte) Format {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "#@") || strings.HasPrefix(line, "#$"):
			return FormatNTP
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "Leap") && !strings.HasPrefix(line, "Leap:"),
			strings.HasPrefix(line, "Expires") && !strings.HasPrefix(line, "Expires:"):
			return FormatIANA
		case strings.HasPrefix(line, "[[") || strings.Contains(line, " = "):
			return FormatTOML
		case line[0] >= '0' && line[0] <= '9':
			return FormatNTP
		default:
			return FormatYAML
		}
	}
	return FormatTOML
}

// ===============================
// Structured formats
// ===============================

type tableDate struct {
	ymd calendar.YearMonthDay
	set bool
}

// UnmarshalTOML accepts TOML local dates and date strings
func (d *tableDate) UnmarshalTOML(v interface{}) error {
	switch x := v.(type) {
	case time.Time:
		d.ymd = calendar.Date(calendar.Year(x.Year()), calendar.Month(x.Month()), calendar.Day(x.Day()))
		d.set = true
		return nil
	case string:
		return d.parse(x)
	default:
		return fmt.Errorf("expected a date, got %T", v)
	}
}

// UnmarshalYAML accepts YAML timestamps and date strings
func (d *tableDate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a date", node.Line)
	}
	return d.parse(node.Value)
}

func (d *tableDate) parse(s string) error {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return err
	}
	d.ymd = calendar.Date(calendar.Year(t.Year()), calendar.Month(t.Month()), calendar.Day(t.Day()))
	d.set = true
	return nil
}

type rawLeap struct {
	Date       tableDate `toml:"date" yaml:"date"`
	Correction string    `toml:"correction" yaml:"correction"`
}

type rawTable struct {
	Version    string    `toml:"version" yaml:"version"`
	Expires    tableDate `toml:"expires" yaml:"expires"`
	BaseOffset int64     `toml:"base_offset" yaml:"base_offset"`
	Leap       []rawLeap `toml:"leap" yaml:"leap"`
}

func (r rawTable) spec(op string) (Spec, error) {
	spec := Spec{Version: r.Version, BaseOffset: r.BaseOffset}
	if r.Expires.set {
		spec.Expires = r.Expires.ymd
	}
	for i, l := range r.Leap {
		if !l.Date.set {
			return Spec{}, tableError(op, "leap entry without date").WithDetail("index", i)
		}
		switch l.Correction {
		case "", "+":
		case "-":
			return Spec{}, tableError(op, "negative leap seconds are not supported").WithDetail("date", l.Date.ymd.String())
		default:
			return Spec{}, tableError(op, "invalid leap correction").WithDetail("correction", l.Correction)
		}
		spec.Dates = append(spec.Dates, l.Date.ymd)
	}
	return spec, nil
}

// ===============================
// IANA leapseconds
// ===============================

type lineError struct {
	lineNumber int
	line       string
	err        error
}

func (e *lineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.lineNumber, e.line, e.err)
}

func (e *lineError) Unwrap() error {
	return e.err
}

var ianaMonths = map[string]calendar.Month{
	"Jan": calendar.January, "Feb": calendar.February, "Mar": calendar.March,
	"Apr": calendar.April, "May": calendar.May, "Jun": calendar.June,
	"Jul": calendar.July, "Aug": calendar.August, "Sep": calendar.September,
	"Oct": calendar.October, "Nov": calendar.November, "Dec": calendar.December,
}

func parseIANADate(year, month, day string) (calendar.YearMonthDay, error) {
	var errs error
	y, err := strconv.Atoi(year)
	if err != nil {
		errs = errors.Join(errs, fmt.Errorf("YEAR %q: %w", year, err))
	}
	m, ok := ianaMonths[month]
	if !ok {
		errs = errors.Join(errs, fmt.Errorf("MONTH %q: unknown month", month))
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		errs = errors.Join(errs, fmt.Errorf("DAY %q: %w", day, err))
	}
	if errs != nil {
		return calendar.YearMonthDay{}, errs
	}
	ymd, err := calendar.NewYearMonthDay(calendar.Year(y), m, calendar.Day(d))
	if err != nil {
		return calendar.YearMonthDay{}, err
	}
	return ymd, nil
}

// parseIANA reads the tz database leapseconds format:
//
//	Leap	YEAR	MONTH	DAY	HH:MM:SS	CORR	R/S
//	Expires	YEAR	MONTH	DAY	HH:MM:SS
//
// Only positive, stationary insertions at 23:59:60 are accepted. The file
// carries no base offset; TAI - UTC before the first insertion is 10 s.
func parseIANA(data []byte) (Spec, error) {
	spec := Spec{BaseOffset: 10}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			if v, ok := strings.CutPrefix(line, "# Updated through "); ok {
				spec.Version = strings.TrimSpace(v)
			}
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "Leap":
			if len(fields) != 7 {
				return Spec{}, &lineError{lineNumber, line, fmt.Errorf("expected 7 fields, got %d", len(fields))}
			}
			ymd, err := parseIANADate(fields[1], fields[2], fields[3])
			if err != nil {
				return Spec{}, &lineError{lineNumber, line, err}
			}
			if fields[4] != "23:59:60" {
				return Spec{}, &lineError{lineNumber, line, fmt.Errorf("unsupported leap time %q", fields[4])}
			}
			if fields[5] != "+" {
				return Spec{}, &lineError{lineNumber, line, errors.New("negative leap seconds are not supported")}
			}
			if fields[6] != "S" {
				return Spec{}, &lineError{lineNumber, line, errors.New("rolling leap seconds are not supported")}
			}
			spec.Dates = append(spec.Dates, ymd.AddDays(1))
		case "Expires":
			if len(fields) != 5 {
				return Spec{}, &lineError{lineNumber, line, fmt.Errorf("expected 5 fields, got %d", len(fields))}
			}
			ymd, err := parseIANADate(fields[1], fields[2], fields[3])
			if err != nil {
				return Spec{}, &lineError{lineNumber, line, err}
			}
			spec.Expires = ymd
		default:
			return Spec{}, &lineError{lineNumber, line, errors.New("unexpected line")}
		}
	}
	if err := scanner.Err(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// ===============================
// NTP leap-seconds.list
// ===============================

// seconds from 1900-01-01, the NTP epoch, to 1970-01-01
const ntpEpochOffset = 2_208_988_800

func parseNTPDate(field string) (calendar.YearMonthDay, error) {
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return calendar.YearMonthDay{}, fmt.Errorf("NTP seconds %q: %w", field, err)
	}
	unix := n - ntpEpochOffset
	if unix%86400 != 0 {
		return calendar.YearMonthDay{}, fmt.Errorf("NTP seconds %d are not at midnight", n)
	}
	return calendar.FromDays(unix / 86400), nil
}

// parseNTP reads the leap-seconds.list format:
//
//	#$	<NTP seconds of the last update>
//	#@	<NTP seconds of the expiry>
//	<NTP seconds>	<TAI - UTC>	# comment
//
// The first entry gives the base offset. Every later one must raise TAI - UTC
// by exactly one second.
func parseNTP(data []byte) (Spec, error) {
	spec := Spec{BaseOffset: 10}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNumber := 0
	entries := 0
	var last int64
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if tag, ok := strings.CutPrefix(line, "#"); ok && (strings.HasPrefix(tag, "$") || strings.HasPrefix(tag, "@")) {
			ymd, err := parseNTPDate(strings.TrimSpace(tag[1:]))
			if err != nil {
				return Spec{}, &lineError{lineNumber, line, err}
			}
			if tag[0] == '@' {
				spec.Expires = ymd
			} else {
				spec.Version = "updated " + ymd.String()
			}
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return Spec{}, &lineError{lineNumber, line, fmt.Errorf("expected 2 fields, got %d", len(fields))}
		}
		ymd, err := parseNTPDate(fields[0])
		if err != nil {
			return Spec{}, &lineError{lineNumber, line, err}
		}
		offset, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return Spec{}, &lineError{lineNumber, line, fmt.Errorf("TAI - UTC %q: %w", fields[1], err)}
		}
		entries++
		if entries == 1 {
			spec.BaseOffset, last = offset, offset
			continue
		}
		switch offset - last {
		case 1:
		case -1:
			return Spec{}, &lineError{lineNumber, line, errors.New("negative leap seconds are not supported")}
		default:
			return Spec{}, &lineError{lineNumber, line, fmt.Errorf("TAI - UTC jumps from %d to %d", last, offset)}
		}
		last = offset
		spec.Dates = append(spec.Dates, ymd)
	}
	if err := scanner.Err(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// Parse decodes a table. FormatAuto inspects the content.
func Parse(data []byte, format Format) (*Table, error) {
	const op = "leapsec.Parse"
	if format == FormatAuto {
		format = sniff(data)
	}

	var (
		spec Spec
		err  error
	)
	switch format {
	case FormatTOML:
		var raw rawTable
		if _, err = toml.Decode(string(data), &raw); err == nil {
			spec, err = raw.spec(op)
		}
	case FormatYAML:
		var raw rawTable
		if err = yaml.Unmarshal(data, &raw); err == nil {
			spec, err = raw.spec(op)
		}
	case FormatIANA:
		spec, err = parseIANA(data)
	case FormatNTP:
		spec, err = parseNTP(data)
	default:
		err = fmt.Errorf("unsupported format %v", format)
	}
	if err != nil {
		if mdwerror.HasCode(err, mdwerror.CodeTableFormat) {
			return nil, err
		}
		return nil, mdwerror.Wrap(err, "decode leap second table").
			WithCode(mdwerror.CodeTableFormat).
			WithOperation(op).
			WithDetail("format", format.String())
	}
	return New(spec)
}

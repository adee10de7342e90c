// File: format.go
// Title: Log Format Definitions
// Description: Output formats for log messages: JSON lines, text, logfmt and
//              a colour console format rendered with lipgloss.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-14 v0.2.0: Deterministic field order, lipgloss console styling
// - 2026-10-14 v0.3.0: Shared key names across formats, logfmt quoting on demand

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Format represents the output format for log messages
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatConsole
	// FormatLogfmt writes key=value pairs
	FormatLogfmt
)

var formatNames = [...]string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
	FormatLogfmt:  "logfmt",
}

// String returns the configuration name of the format
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat parses a format name, ignoring case
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}
	return FormatJSON, &ParseError{Input: s, Type: "format"}
}

// Key names shared by the structured formats
const (
	KeyTime   = "time"
	KeyLevel  = "level"
	KeyLogger = "logger"
	KeyMsg    = "msg"
	KeyError  = "error"
	KeyCaller = "caller"
)

// Formatter turns an entry into one line of output including the newline
type Formatter interface {
	Format(e *Entry) ([]byte, error)
}

// FormatterFunc adapts a function to Formatter
type FormatterFunc func(e *Entry) ([]byte, error)

// Format calls f(e)
func (f FormatterFunc) Format(e *Entry) ([]byte, error) { return f(e) }

// NewFormatter returns the formatter for format
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return &TextFormatter{TimeLayout: "15:04:05"}
	case FormatConsole:
		return &ConsoleFormatter{Text: TextFormatter{TimeLayout: "15:04:05"}}
	case FormatLogfmt:
		return FormatterFunc(formatLogfmt)
	default:
		return FormatterFunc(formatJSON)
	}
}

func formatJSON(e *Entry) ([]byte, error) {
	obj := make(map[string]interface{}, len(e.Fields)+6)
	for k, v := range e.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		obj[k] = v
	}
	obj[KeyTime] = e.Time.Format(time.RFC3339Nano)
	obj[KeyLevel] = e.Level.String()
	obj[KeyMsg] = e.Message
	if e.Logger != "" {
		obj[KeyLogger] = e.Logger
	}
	if e.Caller != "" {
		obj[KeyCaller] = e.Caller
	}
	if e.Err != nil {
		obj[KeyError] = e.Err.Error()
		if m, ok := e.Err.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				obj["error_details"] = json.RawMessage(raw)
			}
		}
	}
	out, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func formatLogfmt(e *Entry) ([]byte, error) {
	var b strings.Builder
	pair := func(k string, v interface{}) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(logfmtValue(v))
	}
	pair(KeyTime, e.Time.Format(time.RFC3339))
	pair(KeyLevel, e.Level.String())
	if e.Logger != "" {
		pair(KeyLogger, e.Logger)
	}
	pair(KeyMsg, e.Message)
	for _, k := range e.Fields.Keys() {
		pair(k, e.Fields[k])
	}
	if e.Err != nil {
		pair(KeyError, e.Err.Error())
	}
	if e.Caller != "" {
		pair(KeyCaller, e.Caller)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// logfmtValue renders v, quoting it only when it contains a space, a quote,
// an equals sign or nothing at all
func logfmtValue(v interface{}) string {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case error:
		s = x.Error()
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprint(x)
	}
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// TextFormatter writes "15:04:05 WRN name: message key=value ..."
type TextFormatter struct {
	TimeLayout string
	// NoTime omits the time column
	NoTime bool
}

func (f *TextFormatter) split(e *Entry) (head, body string) {
	var h []string
	if !f.NoTime {
		h = append(h, e.Time.Format(f.TimeLayout))
	}
	h = append(h, e.Level.ShortString())

	var b strings.Builder
	if e.Logger != "" {
		b.WriteString(e.Logger + ": ")
	}
	b.WriteString(e.Message)
	for _, k := range e.Fields.Keys() {
		b.WriteString(" " + k + "=" + logfmtValue(e.Fields[k]))
	}
	if e.Err != nil {
		b.WriteString(" " + KeyError + "=" + logfmtValue(e.Err.Error()))
	}
	if e.Caller != "" {
		b.WriteString(" (" + e.Caller + ")")
	}
	return strings.Join(h, " "), b.String()
}

// Format implements Formatter
func (f *TextFormatter) Format(e *Entry) ([]byte, error) {
	head, body := f.split(e)
	return []byte(head + " " + body + "\n"), nil
}

// ConsoleFormatter is the text format with a coloured time and level column.
// Colour support is decided by the renderer, so output to a pipe or file
// stays plain.
type ConsoleFormatter struct {
	Text     TextFormatter
	Renderer *lipgloss.Renderer
	NoColor  bool
}

// Format implements Formatter
func (f *ConsoleFormatter) Format(e *Entry) ([]byte, error) {
	head, body := f.Text.split(e)
	if !f.NoColor {
		style := lipgloss.NewStyle()
		if f.Renderer != nil {
			style = f.Renderer.NewStyle()
		}
		head = style.Foreground(e.Level.Color()).Bold(e.Level >= LevelError).Render(head)
	}
	return []byte(head + " " + body + "\n"), nil
}

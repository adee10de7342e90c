// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: leveled structured logging with
//              immutable derivation and integration with the chronox error type.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-14 v0.2.0: Removed async mode and request context, added Nop
// - 2026-10-14 v0.3.0: Derived loggers share one sink, package level logger removed

package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
)

// sink serializes writes of all loggers derived from one root
type sink struct {
	mu  sync.Mutex
	out io.Writer
}

func (s *sink) write(p []byte) {
	s.mu.Lock()
	_, _ = s.out.Write(p)
	s.mu.Unlock()
}

// Logger writes leveled structured messages. A Logger is safe for concurrent
// use. The With* methods return a derived logger and leave the receiver
// untouched.
type Logger struct {
	level  Level
	format Formatter
	sink   *sink
	name   string
	fields Fields

	caller     bool
	callerSkip int

	// now is replaced in tests
	now func() time.Time
}

// Config represents logger configuration
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer
	Name             string
	EnableCaller     bool
	CallerSkipFrames int
}

// New creates a logger writing JSON lines at info level to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON})
}

// NewWithConfig creates a logger from config. A nil Output means stderr.
func NewWithConfig(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level:      config.Level,
		format:     NewFormatter(config.Format),
		sink:       &sink{out: out},
		name:       config.Name,
		fields:     Fields{},
		caller:     config.EnableCaller,
		callerSkip: config.CallerSkipFrames,
		now:        time.Now,
	}
}

// Nop returns a logger that discards everything. Library packages fall back
// to it when the caller supplies no logger.
func Nop() *Logger {
	return NewWithConfig(Config{Level: LevelOff, Output: io.Discard})
}

// OrNop returns l, or a Nop logger if l is nil
func OrNop(l *Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return l
}

func (l *Logger) derive(fn func(*Logger)) *Logger {
	c := *l
	c.fields = Fields{}.merge(l.fields)
	fn(&c)
	return &c
}

// WithLevel returns a logger with threshold level
func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.level = level })
}

// WithFormat returns a logger writing format
func (l *Logger) WithFormat(format Format) *Logger {
	return l.WithFormatter(NewFormatter(format))
}

// WithFormatter returns a logger using f
func (l *Logger) WithFormatter(f Formatter) *Logger {
	return l.derive(func(c *Logger) { c.format = f })
}

// WithOutput returns a logger writing to w
func (l *Logger) WithOutput(w io.Writer) *Logger {
	return l.derive(func(c *Logger) { c.sink = &sink{out: w} })
}

// WithName returns a logger with name appended to the current one, joined
// with a dot
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) {
		if l.name != "" && name != "" {
			c.name = l.name + "." + name
		} else {
			c.name = name
		}
	})
}

// WithField returns a logger that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(func(c *Logger) { c.fields[key] = value })
}

// WithFields returns a logger that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) { c.fields.merge(fields) })
}

// WithCaller returns a logger that records file:line of the call site,
// skipping skip additional frames
func (l *Logger) WithCaller(skip int) *Logger {
	return l.derive(func(c *Logger) { c.caller, c.callerSkip = true, skip })
}

func (l *Logger) Trace(msg string, fields ...Fields) { l.emit(LevelTrace, msg, nil, fields) }
func (l *Logger) Debug(msg string, fields ...Fields) { l.emit(LevelDebug, msg, nil, fields) }
func (l *Logger) Info(msg string, fields ...Fields)  { l.emit(LevelInfo, msg, nil, fields) }
func (l *Logger) Warn(msg string, fields ...Fields)  { l.emit(LevelWarn, msg, nil, fields) }
func (l *Logger) Error(msg string, fields ...Fields) { l.emit(LevelError, msg, nil, fields) }

// LogError logs err at a level derived from its severity: low severity at
// info, medium at warn, everything else at error. Code, operation and details
// of a chronox error become fields prefixed with "error_".
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var e *mdwerror.Error
	if !errors.As(err, &e) {
		l.emit(LevelError, err.Error(), err, nil)
		return
	}

	fields := Fields{
		"error_code":     e.Code(),
		"error_severity": e.Severity().String(),
	}
	if op := e.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for _, d := range e.Details() {
		fields["error_"+d.Key] = d.Value
	}

	level := LevelError
	switch e.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}
	l.emit(level, err.Error(), err, []Fields{fields})
}

// IsLevelEnabled reports whether messages at level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.Enabled(l.level)
}

// GetLevel returns the threshold level
func (l *Logger) GetLevel() Level {
	return l.level
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) emit(level Level, msg string, err error, fields []Fields) {
	if !level.Enabled(l.level) {
		return
	}

	e := &Entry{
		Time:    l.now(),
		Level:   level,
		Message: msg,
		Logger:  l.name,
		Fields:  Fields{}.merge(l.fields).merge(fields...),
		Err:     err,
	}
	if l.caller {
		// emit, exported method, call site
		if _, file, line, ok := runtime.Caller(2 + l.callerSkip); ok {
			e.Caller = filepath.Base(file) + ":" + strconv.Itoa(line)
		}
	}

	out, ferr := l.format.Format(e)
	if ferr != nil {
		return
	}
	l.sink.write(out)
}

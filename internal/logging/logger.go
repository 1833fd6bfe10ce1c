package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Field represents a single structured logging field as a key/value pair.
// Fields are attached to log events to provide machine-readable context.
type Field struct {
	// Key is the field name.
	Key string
	// Value is the field value; supported types are applied natively,
	// anything else falls back to fmt-style interface encoding.
	Value any
}

// String creates a string-valued field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int-valued field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates an int64-valued field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64-valued field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64-valued field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Bool creates a bool-valued field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Strings creates a string-slice-valued field.
func Strings(key string, value []string) Field { return Field{Key: key, Value: value} }

// Err creates an error field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used throughout the application.
// It decouples components from the concrete logging backend so tests can
// substitute a buffer-backed logger and the backend can change without
// touching call sites.
type Logger interface {
	// Debug logs a message at debug level with optional fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional fields.
	Info(msg string, fields ...Field)
	// Warn logs a message at warn level with optional fields.
	Warn(msg string, fields ...Field)
	// Error logs a message at error level with the given error and optional fields.
	Error(msg string, err error, fields ...Field)
	// Printf logs a formatted message at info level (log.Printf compatibility).
	Printf(format string, args ...any)
	// Println logs its arguments at info level (log.Println compatibility).
	Println(args ...any)
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// Verify interface compliance.
var _ Logger = (*ZerologAdapter)(nil)

// NewZerologAdapter wraps an existing zerolog.Logger.
//
// Parameters:
//   - zl: The zerolog logger to adapt.
//
// Returns:
//   - *ZerologAdapter: The adapted logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewLogger creates a component-scoped logger writing JSON events to w.
// The component name is attached to every event under the "component" key.
//
// Parameters:
//   - w: The destination writer.
//   - component: The component name for event attribution.
//
// Returns:
//   - *ZerologAdapter: The component logger.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{zl: zl}
}

// NewDefaultLogger creates a logger writing human-readable output to stderr.
//
// Returns:
//   - *ZerologAdapter: The default logger.
func NewDefaultLogger() *ZerologAdapter {
	console := zerolog.ConsoleWriter{Out: os.Stderr}
	zl := zerolog.New(console).With().Timestamp().Logger()
	return &ZerologAdapter{zl: zl}
}

// NewProcessLogger creates the application's process logger. Events are
// written both to out (console format) and to a log file under dir, matching
// the original file-plus-stdout handler pair. The file writer is returned so
// the caller can close it at process exit.
//
// Parameters:
//   - out: The console destination (normally os.Stdout).
//   - dir: The directory for the log file; created if absent.
//   - level: The minimum level, as parsed by ParseLevel.
//
// Returns:
//   - *ZerologAdapter: The process logger.
//   - io.Closer: The underlying log file, or nil if it could not be opened.
func NewProcessLogger(out io.Writer, dir string, level zerolog.Level) (*ZerologAdapter, io.Closer) {
	console := zerolog.ConsoleWriter{Out: out}
	writers := []io.Writer{console}

	var closer io.Closer
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			path := filepath.Join(dir, "finagent.log")
			file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				writers = append(writers, file)
				closer = file
			}
		}
	}
	// A missing log file degrades to console-only output; the run itself
	// must not fail because the log sink is unavailable.

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	return &ZerologAdapter{zl: zl}, closer
}

// ParseLevel converts a LOG_LEVEL setting to a zerolog level. The debug flag
// forces debug level regardless of the configured name. Unknown names fall
// back to info.
//
// Parameters:
//   - name: The level name (case-insensitive: debug, info, warn/warning, error).
//   - debug: Whether the DEBUG flag is set.
//
// Returns:
//   - zerolog.Level: The resolved level.
func ParseLevel(name string, debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	switch strings.ToLower(name) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithComponent returns a child logger with the component field attached.
//
// Parameters:
//   - component: The component name.
//
// Returns:
//   - *ZerologAdapter: The child logger.
func (a *ZerologAdapter) WithComponent(component string) *ZerologAdapter {
	return &ZerologAdapter{zl: a.zl.With().Str("component", component).Logger()}
}

// Debug logs a message at debug level with optional fields.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.zl.Debug(), fields).Msg(msg)
}

// Info logs a message at info level with optional fields.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.zl.Info(), fields).Msg(msg)
}

// Warn logs a message at warn level with optional fields.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	applyFields(a.zl.Warn(), fields).Msg(msg)
}

// Error logs a message at error level with the given error and optional fields.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(a.zl.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message at info level (log.Printf compatibility).
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.zl.Info().Msg(fmt.Sprintf(format, args...))
}

// Println logs its arguments at info level (log.Println compatibility).
func (a *ZerologAdapter) Println(args ...any) {
	a.zl.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// applyFields attaches the fields to the event, dispatching on value type
// so native zerolog encoders are used where possible.
func applyFields(ev *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case int64:
			ev = ev.Int64(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case float64:
			ev = ev.Float64(f.Key, v)
		case bool:
			ev = ev.Bool(f.Key, v)
		case []string:
			ev = ev.Strs(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	return ev
}

// StdLoggerAdapter adapts a standard library *log.Logger to the Logger
// interface. It is mainly useful in tests and for libraries that only accept
// the standard logger.
type StdLoggerAdapter struct {
	l *log.Logger
}

// Verify interface compliance.
var _ Logger = (*StdLoggerAdapter)(nil)

// NewStdLoggerAdapter wraps a standard library logger.
func NewStdLoggerAdapter(l *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{l: l}
}

// Debug logs a message at debug level with optional fields.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.l.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Info logs a message at info level with optional fields.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.l.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Warn logs a message at warn level with optional fields.
func (a *StdLoggerAdapter) Warn(msg string, fields ...Field) {
	a.l.Printf("[WARN] %s%s", msg, formatFields(fields))
}

// Error logs a message at error level with the given error and optional fields.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if err != nil {
		fields = append(fields, Err(err))
	}
	a.l.Printf("[ERROR] %s%s", msg, formatFields(fields))
}

// Printf logs a formatted message at info level.
func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.l.Printf("[INFO] "+format, args...)
}

// Println logs its arguments at info level.
func (a *StdLoggerAdapter) Println(args ...any) {
	a.l.Printf("[INFO] %s", strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// formatFields renders fields as " key=value" pairs for plain-text output.
func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&sb, " %s=%v", f.Key, f.Value)
	}
	return sb.String()
}

// Nop returns a logger that discards everything. Useful as a default in
// constructors that accept an optional logger.
func Nop() *ZerologAdapter {
	return &ZerologAdapter{zl: zerolog.Nop()}
}

package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rs/zerolog"
)

// Field represents a structured logging field as a key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a Field with a string value.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates a Field with an int value.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Uint64 creates a Field with a uint64 value.
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a Field with a float64 value.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Err creates a Field carrying an error under the conventional "error" key.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Logger is the logging interface used throughout the application.
// It supports structured fields as well as the printf-style methods
// expected by libraries that accept a standard logger.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// ─────────────────────────────────────────────────────────────────────────────
// Zerolog backend
// ─────────────────────────────────────────────────────────────────────────────

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger returns a Logger writing human-readable output to stderr.
func NewDefaultLogger() *ZerologAdapter {
	return NewLogger(os.Stderr, "beesim")
}

// NewLogger returns a Logger writing to w, tagged with a component field.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().
		Timestamp().
		Str("component", component).
		Logger()
	return &ZerologAdapter{logger: zl}
}

// Info logs an informational message with optional structured fields.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	ev := z.logger.Info()
	applyFields(ev, fields)
	ev.Msg(msg)
}

// Error logs an error message. A nil err is tolerated.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	ev := z.logger.Error().Err(err)
	applyFields(ev, fields)
	ev.Msg(msg)
}

// Debug logs a debug message with optional structured fields.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	ev := z.logger.Debug()
	applyFields(ev, fields)
	ev.Msg(msg)
}

// Printf implements printf-style logging at info level.
func (z *ZerologAdapter) Printf(format string, v ...interface{}) {
	z.logger.Info().Msgf(format, v...)
}

// Println implements println-style logging at info level.
func (z *ZerologAdapter) Println(v ...interface{}) {
	z.logger.Info().Msg(fmt.Sprintln(v...))
}

// applyFields attaches typed fields to a zerolog event.
func applyFields(ev *zerolog.Event, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev.Str(f.Key, v)
		case int:
			ev.Int(f.Key, v)
		case int64:
			ev.Int64(f.Key, v)
		case uint64:
			ev.Uint64(f.Key, v)
		case float64:
			ev.Float64(f.Key, v)
		case bool:
			ev.Bool(f.Key, v)
		case error:
			ev.AnErr(f.Key, v)
		default:
			ev.Interface(f.Key, v)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Standard library backend
// ─────────────────────────────────────────────────────────────────────────────

// StdLoggerAdapter adapts the standard library *log.Logger to the
// Logger interface. Fields are rendered as key=value pairs.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps an existing standard library logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Info logs an informational message with a [INFO] prefix.
func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	s.logger.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error logs an error message with a [ERROR] prefix.
func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if err != nil {
		s.logger.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
		return
	}
	s.logger.Printf("[ERROR] %s%s", msg, formatFields(fields))
}

// Debug logs a debug message with a [DEBUG] prefix.
func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	s.logger.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Printf implements printf-style logging.
func (s *StdLoggerAdapter) Printf(format string, v ...interface{}) {
	s.logger.Printf(format, v...)
}

// Println implements println-style logging.
func (s *StdLoggerAdapter) Println(v ...interface{}) {
	s.logger.Println(v...)
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	out := ""
	for _, f := range fields {
		out += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	return out
}

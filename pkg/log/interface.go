// Package log provides a structured logging interface for mlprep data preparation.
//
// The interface is slog-compatible so callers can plug in any backend. The package
// ships a zerolog backend (NewZerologLogger), a no-op logger, a slog setup helper
// that extracts cockroachdb/errors stack traces, and a TestLogger for assertions.
//
// Example usage:
//
//	logger := log.GetLogger().With(log.ComponentKey, "dataset")
//	logger.Info("Dataset loaded",
//	    log.SamplesKey, 5000,
//	    log.FeaturesKey, 401,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are passed as alternating key/value pairs. With returns a child logger
// carrying the given fields on every subsequent record.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// An error value under the "error" key is rendered with its message.
	//
	// Example:
	//   logger.Error("Load failed",
	//       "error", err,
	//       log.OperationKey, log.OperationLoad,
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip building expensive fields, e.g. polynomial term names.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

package log

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger on top of github.com/rs/zerolog.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger creates a JSON logger writing to w at the given minimum level.
//
// Example:
//
//	logger := log.NewZerologLogger(os.Stderr, log.LevelInfo)
//	log.SetLogger(logger)
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl}
}

// FromZerolog wraps an already configured zerolog.Logger.
func FromZerolog(zl zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{zl: zl}
}

// Zerolog returns the underlying zerolog.Logger.
func (z *ZerologLogger) Zerolog() zerolog.Logger {
	return z.zl
}

// Debug implements Logger.Debug.
func (z *ZerologLogger) Debug(msg string, fields ...any) {
	z.zl.Debug().Fields(normalizeFields(fields)).Msg(msg)
}

// Info implements Logger.Info.
func (z *ZerologLogger) Info(msg string, fields ...any) {
	z.zl.Info().Fields(normalizeFields(fields)).Msg(msg)
}

// Warn implements Logger.Warn.
func (z *ZerologLogger) Warn(msg string, fields ...any) {
	z.zl.Warn().Fields(normalizeFields(fields)).Msg(msg)
}

// Error implements Logger.Error.
func (z *ZerologLogger) Error(msg string, fields ...any) {
	z.zl.Error().Fields(normalizeFields(fields)).Msg(msg)
}

// With implements Logger.With.
func (z *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{zl: z.zl.With().Fields(normalizeFields(fields)).Logger()}
}

// Enabled implements Logger.Enabled.
func (z *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	return z.zl.GetLevel() <= toZerologLevel(level)
}

// WarnFunc returns a function suitable for errors.SetZerologWarnFunc. Warnings
// that implement zerolog.LogObjectMarshaler are logged as a structured object.
func (z *ZerologLogger) WarnFunc() func(warning error) {
	return func(w error) {
		ev := z.zl.Warn()
		if obj, ok := w.(zerolog.LogObjectMarshaler); ok {
			ev = ev.Object("warning", obj)
		}
		ev.Msg(w.Error())
	}
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// normalizeFields turns key/value pairs into the []interface{} form accepted by
// zerolog's Fields, dropping a trailing key without a value.
func normalizeFields(fields []any) []interface{} {
	n := len(fields) - len(fields)%2
	out := make([]interface{}, 0, n)
	for i := 0; i < n; i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		out = append(out, key, fields[i+1])
	}
	return out
}

// nopLogger discards everything.
type nopLogger struct{}

// NewNopLogger returns a Logger that discards all records.
func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func (n nopLogger) With(...any) Logger { return n }

func (nopLogger) Enabled(context.Context, Level) bool { return false }

var (
	globalMu     sync.RWMutex
	globalLogger Logger = NewNopLogger()
)

// GetLogger returns the package-level logger. It discards records until
// SetLogger is called.
func GetLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetLogger replaces the package-level logger. A nil logger restores the no-op logger.
func SetLogger(l Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if l == nil {
		l = NewNopLogger()
	}
	globalLogger = l
}

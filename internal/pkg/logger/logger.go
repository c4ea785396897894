package logger

import (
	"io"
	"log/slog"
)

// Logger defines the logging interface. Messages are constant strings; variable data
// goes into alternating key/value pairs, as with log/slog.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})

	// With returns a Logger that adds keyvals to every record.
	With(keyvals ...interface{}) Logger
}

// slogLogger implements Logger on top of a *slog.Logger.
type slogLogger struct {
	logger *slog.Logger
}

func newSlogLogger(handler slog.Handler) Logger {
	return &slogLogger{logger: slog.New(handler)}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return newSlogLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: LevelCritical}))
}

// Debug logs a debug message.
func (l *slogLogger) Debug(msg string, keyvals ...interface{}) {
	l.logger.Debug(msg, keyvals...)
}

// Info logs an informational message.
func (l *slogLogger) Info(msg string, keyvals ...interface{}) {
	l.logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func (l *slogLogger) Warn(msg string, keyvals ...interface{}) {
	l.logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func (l *slogLogger) Error(msg string, keyvals ...interface{}) {
	l.logger.Error(msg, keyvals...)
}

// With returns a child logger carrying keyvals.
func (l *slogLogger) With(keyvals ...interface{}) Logger {
	return &slogLogger{logger: l.logger.With(keyvals...)}
}

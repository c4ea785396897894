package logger

import (
	"log/slog"
	"os"
)

// NewConsoleLogger creates a logger writing text records to stdout at the given level.
func NewConsoleLogger(level string) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return newSlogLogger(slog.NewTextHandler(os.Stdout, opts))
}

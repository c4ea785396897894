//go:build unit
// +build unit

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) Logger {
	return newSlogLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestSlogLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf, slog.LevelInfo)

	log.Debug("debug message")
	log.Info("info message", "digits", 10)
	log.Warn("warn message")
	log.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "digits=10")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf, slog.LevelDebug).With("component", "keygen")

	log.Debug("drawing prime")

	assert.Contains(t, buf.String(), "component=keygen")
	assert.Contains(t, buf.String(), "drawing prime")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, LevelCritical},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

func TestNewConsoleLogger(t *testing.T) {
	log := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, log)

	require.NotPanics(t, func() {
		log.Info("test")
		log.Warn("test")
		log.Error("test")
	})
}

func TestNewNopLogger(t *testing.T) {
	log := NewNopLogger()
	require.NotPanics(t, func() {
		log.With("k", "v").Error("discarded")
	})
}

func TestNewFileLogger_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textbook-rsa.log")
	log := NewFileLogger(config.LogLevelDebug, path, 1, 1, 1)

	log.Info("key generated", "digits", 12)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &record))
	assert.Equal(t, "key generated", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.EqualValues(t, 12, record["digits"])
}

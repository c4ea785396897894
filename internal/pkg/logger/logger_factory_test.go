//go:build unit
// +build unit

package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func fileSettings(t *testing.T, level string) *config.LoggerSettings {
	t.Helper()
	return &config.LoggerSettings{
		LogLevel:   level,
		LogType:    config.LogTypeFile,
		FilePath:   filepath.Join(t.TempDir(), "textbook-rsa.log"),
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}
}

func readRecords(t *testing.T, path string) []map[string]interface{} {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var record map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		records = append(records, record)
	}
	require.NoError(t, scanner.Err())
	return records
}

func TestInitLogger_KeyValueRecords(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	settings := fileSettings(t, config.LogLevelDebug)
	require.NoError(t, InitLogger(settings))

	log, err := GetLogger()
	require.NoError(t, err)

	keygen := log.With("component", "rsa_key_generator")
	keygen.Debug("Prime search exhausted, retrying", "digits", 5, "attempt", 2)
	keygen.Warn("Giving up on prime search", "digits", 5, "retries", 3)

	records := readRecords(t, settings.FilePath)
	require.Len(t, records, 2)

	assert.Equal(t, "DEBUG", records[0]["level"])
	assert.Equal(t, "rsa_key_generator", records[0]["component"])
	assert.EqualValues(t, 5, records[0]["digits"])
	assert.EqualValues(t, 2, records[0]["attempt"])

	assert.Equal(t, "WARN", records[1]["level"])
	assert.EqualValues(t, 3, records[1]["retries"])
}

func TestInitLogger_CriticalLevelDropsErrors(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	settings := fileSettings(t, config.LogLevelCritical)
	require.NoError(t, InitLogger(settings))

	log, err := GetLogger()
	require.NoError(t, err)

	log.Info("dropped")
	log.Error("dropped too", "digits", 3)

	// nothing reached the writer, so the file was never opened
	assert.NoFileExists(t, settings.FilePath)
	assert.Equal(t, LevelCritical, parseLevel(settings.LogLevel))
}

func TestInitLogger_InvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.LoggerSettings)
	}{
		{"unknown level", func(s *config.LoggerSettings) { s.LogLevel = "verbose" }},
		{"unknown type", func(s *config.LoggerSettings) { s.LogType = "syslog" }},
		{"file without path", func(s *config.LoggerSettings) { s.FilePath = "" }},
		{"file without rotation", func(s *config.LoggerSettings) { s.MaxSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			settings := fileSettings(t, config.LogLevelInfo)
			tt.mutate(settings)

			assert.Error(t, InitLogger(settings))

			log, err := GetLogger()
			assert.Error(t, err)
			assert.Nil(t, log)
		})
	}
}

func TestInitLogger_FirstCallWins(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelCritical,
		LogType:  config.LogTypeConsole,
	}))
	first, err := GetLogger()
	require.NoError(t, err)

	second := fileSettings(t, config.LogLevelDebug)
	assert.NoError(t, InitLogger(second))

	log, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, log)

	log.Error("goes to the console logger at critical level, so nowhere")
	assert.NoFileExists(t, second.FilePath)
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	log, err := GetLogger()
	assert.Error(t, err)
	assert.Nil(t, log)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestNew_DoesNotTouchSingleton(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	log, err := New(&config.LoggerSettings{
		LogLevel: config.LogLevelCritical,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err)
	require.NotNil(t, log)

	_, err = GetLogger()
	assert.Error(t, err)
}

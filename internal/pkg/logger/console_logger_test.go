//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/Kartikpatidar0006/Staffy/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(config.LogLevelInfo, &buf)

	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestWriterLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(config.LogLevelWarning, &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
}

func TestWriterLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(config.LogLevelInfo, &buf)

	logger.With("method", "GET", "status", 200).Info("request")

	output := buf.String()
	assert.Contains(t, output, "msg=request")
	assert.Contains(t, output, "method=GET")
	assert.Contains(t, output, "status=200")
}

func TestWriterLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(config.LogLevelInfo, &buf)

	assert.PanicsWithValue(t, "boom", func() {
		logger.Panic("boom")
	})
	assert.Contains(t, buf.String(), "boom")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}

package testutil

import (
	"testing"

	"github.com/Kartikpatidar0006/Staffy/internal/pkg/config"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/logger"
)

// testWriter forwards log output to t.Log so it only shows up for failing or verbose runs.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	return logger.NewWriterLogger(config.LogLevelDebug, testWriter{t: t})
}

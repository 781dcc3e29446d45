package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewConsoleLogger creates a logger writing human readable lines to stdout.
func NewConsoleLogger(level string) Logger {
	return NewWriterLogger(level, os.Stdout)
}

// NewWriterLogger creates a text logger writing to w. Tests use it to capture output.
func NewWriterLogger(level string, w io.Writer) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &slogLogger{logger: slog.New(handler)}
}

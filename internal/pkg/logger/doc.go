// Package logger provides the process logger, backed by log/slog, with a
// console variant and a rotating file variant.
package logger

/*
Package tlog is a custom log package which uses github.com/lmittmann/tint.
*/
package tlog

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// ParseLevel converts level name to slog.Level, falls back to LOG_LEVEL env
// when level is empty. Unknown values resolve to info.
func ParseLevel(level string) slog.Level {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}

	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New instantiates custom logger writing to stderr.
func New(level string, colorize bool) *slog.Logger {
	return NewWithWriter(os.Stderr, level, colorize)
}

// NewWithWriter instantiates custom logger writing to w.
func NewWithWriter(w io.Writer, level string, colorize bool) *slog.Logger {
	if os.Getenv("LOG_COLORIZE") != "" {
		colorize = true
	}

	opts := &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: "15:04:05",
		NoColor:    !colorize,
	}

	return slog.New(tint.NewHandler(w, opts))
}

// Discard returns a logger that drops every record, handy for tests.
func Discard() *slog.Logger {
	return NewWithWriter(io.Discard, "error", false)
}

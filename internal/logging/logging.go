// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init creates and sets the package-level default slog logger on stderr.
// When jsonOutput is true, uses JSONHandler so diagnostics stay machine-readable
// next to a JSON report. Otherwise uses TextHandler for human readability.
func Init(jsonOutput bool, level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, jsonOutput, level)))
}

// NewHandler returns the handler Init installs, writing to w.
func NewHandler(w io.Writer, jsonOutput bool, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if jsonOutput {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Empty and unknown strings default to LevelWarn, keeping reports uncluttered.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Package logging builds the structured logger used across ytresolve.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a config level name onto a slog level. Unknown names
// fall back to info and report ok=false.
func ParseLevel(l string) (level slog.Level, ok bool) {
	switch strings.ToLower(l) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New returns a logger writing to w with the given level and format
// ("text" or "json"). Invalid values fall back to info and text, and the
// fallback is reported through the new logger itself.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl, levelOK := ParseLevel(level)
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	formatOK := true
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
		formatOK = false
	}

	logger := slog.New(handler)
	if !levelOK {
		logger.Warn("invalid log level, defaulting to 'info'", "level", level)
	}
	if !formatOK {
		logger.Warn("invalid log format, defaulting to 'text'", "format", format)
	}
	return logger
}

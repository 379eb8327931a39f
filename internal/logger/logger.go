// Package logger configures the application's slog logger. A TUI owns the
// terminal, so logs go to a file named by the SASH_LOG environment
// variable; without it everything is discarded. LOG_LEVEL selects the
// minimum level (default info).
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *slog.Logger
	once   sync.Once
)

// L returns the process logger, initializing it from the environment on
// first use.
func L() *slog.Logger {
	once.Do(func() {
		logger = newLogger(os.Getenv("SASH_LOG"), os.Getenv("LOG_LEVEL"))
	})
	return logger
}

// newLogger builds a logger writing to path at the given level. An empty
// or unopenable path discards all output.
func newLogger(path, level string) *slog.Logger {
	var w io.Writer = io.Discard
	if path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			w = f
		}
	}
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

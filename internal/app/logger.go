package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/bullion-registry/internal/config"
)

// NewLogger builds the process logger on os.Stderr and installs it as the
// slog default. See NewLoggerTo for the format rules.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := NewLoggerTo(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// NewLoggerTo builds a logger writing to w.
//
// Format "json" produces structured JSON output (production); anything else
// produces text with source positions (development). Every record carries
// the build version so lines from mixed deployments can be told apart.
func NewLoggerTo(w io.Writer, cfg config.LogConfig) *slog.Logger {
	structured := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !structured,
	}

	var handler slog.Handler
	if structured {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("build", Version))
}

// parseLevel maps debug, info, warn/warning and error (case-insensitive).
// Unknown values fall back to info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

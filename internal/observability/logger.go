// Package observability provides the logger and Prometheus metrics of the
// law checker.
package observability

import (
	"io"
	"log/slog"

	"github.com/authcorp/libs/go/maybe/internal/config"
)

// NewLogger creates a structured logger writing to w based on configuration.
// The command passes stderr and leaves stdout to the report.
func NewLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Logging.Level),
	}

	switch cfg.Logging.Format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
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

// Package logging configures the application-wide structured logger.
package logging

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/workboardhq/workboard/internal/platform/correlation"
)

// InitLogger initializes the global logger with the specified level and format.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json" or "text" (defaults to "text")
func InitLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	handler = correlation.NewHandler(handler)

	slog.SetDefault(slog.New(handler))
}

// WithWorkspace returns a logger with a workspace_id field.
func WithWorkspace(workspaceID uuid.UUID) *slog.Logger {
	return slog.Default().With("workspace_id", workspaceID.String())
}

// WithSection returns a logger with a section_key field.
func WithSection(key string) *slog.Logger {
	return slog.Default().With("section_key", key)
}

package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/internal/config"
)

// Setup configures the global slog logger based on environment.
// Logs go to stderr; stdout belongs to the menu.
func Setup(cfg *config.Config) *slog.Logger {
	logger := New(cfg, os.Stderr)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// New builds a logger writing to w without touching the default logger.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// NewSessionID returns a short identifier for one run of the shell.
func NewSessionID() string {
	return "session-" + uuid.New().String()[:8]
}

// WithSession adds the session ID to logger context
func WithSession(logger *slog.Logger, sessionID string) *slog.Logger {
	return logger.With("session_id", sessionID)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}

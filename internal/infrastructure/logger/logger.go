package logger

import (
	"io"
	"log/slog"
	"os"
	ports "pr-dashboard/internal/domain/ports/output"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envTest  = "test"
)

type Logger struct {
	*slog.Logger
}

var _ ports.Logger = (*Logger)(nil)

// New picks a handler for the environment: readable text locally, nothing in
// tests and JSON everywhere else.
func New(env string) *Logger {
	var handler slog.Handler
	switch env {
	case envLocal, envDev:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envTest:
		handler = slog.NewTextHandler(io.Discard, nil)
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

func (l *Logger) With(args ...any) ports.Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

package logging

import (
	"io"
	"log/slog"
	"os"
)

// Field names shared by log lines across the server.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
)

// New returns a text logger writing to stdout at the given level and installs it as the default.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(FieldComponent, name)
}

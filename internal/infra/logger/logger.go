package logger

import (
	"log/slog"
	"os"
)

// New собирает логгер по окружению: dev — подробный текст в stdout,
// остальные — JSON для сборщика логов.
func New(env string) *slog.Logger {
	if env == "dev" {
		h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
		return slog.New(h)
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h)
}

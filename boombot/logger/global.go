package logger

import (
	"log/slog"
	"time"
)

// LogSearch logs an answered card query
func LogSearch(command, query string, found bool, duration time.Duration) {
	slog.Info("Search answered",
		slog.String("type", "query"),
		slog.String("command", command),
		slog.String("query", query),
		slog.Bool("found", found),
		slog.Duration("took", duration),
	)
}

// LogSystem logs system events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}

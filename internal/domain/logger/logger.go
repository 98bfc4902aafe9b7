package logger

import (
	"log/slog"
	"time"
)

// QueryLogger times one catalog search.
type QueryLogger struct {
	Operation string
	Query     string
	Caller    string
	StartTime time.Time
}

func NewQueryLogger(operation, query, caller string) *QueryLogger {
	return &QueryLogger{
		Operation: operation,
		Query:     query,
		Caller:    caller,
		StartTime: time.Now(),
	}
}

// Log records how many cards matched and which page offset was served.
func (l *QueryLogger) Log(matches, offset int) {
	slog.Debug("Query executed",
		slog.String("type", "query"),
		slog.String("operation", l.Operation),
		slog.String("query", l.Query),
		slog.String("caller", l.Caller),
		slog.Int("matches", matches),
		slog.Int("offset", offset),
		slog.Duration("took", time.Since(l.StartTime)),
	)
}

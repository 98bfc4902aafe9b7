package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/boombot/boombot/commands"
	"github.com/google/uuid"
)

// Command run limits.
var (
	SlowCommand    = 2 * time.Second
	CommandTimeout = 10 * time.Second
)

// WrapWithLogging wraps a command handler with logging, a timeout and panic
// recovery. It satisfies commands.Middleware.
func WrapWithLogging(name string, h commands.Handler) commands.Handler {
	return func(ctx context.Context, r commands.Request) (string, error) {
		start := time.Now()
		if r.RequestID == "" {
			r.RequestID = uuid.NewString()
		}

		slog.Debug("Command started",
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", r.Caller),
			slog.String("user_name", r.UserName),
			slog.String("channel_id", r.ChannelID),
			slog.String("query", r.Query),
			slog.String("request_id", r.RequestID),
		)

		ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
		defer cancel()

		type result struct {
			out string
			err error
		}
		done := make(chan result, 1)
		go func() {
			defer func() {
				if p := recover(); p != nil {
					done <- result{err: fmt.Errorf("command panicked: %v", p)}
				}
			}()
			out, err := h(ctx, r)
			done <- result{out: out, err: err}
		}()

		attrs := []any{
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", r.Caller),
			slog.String("user_name", r.UserName),
			slog.String("request_id", r.RequestID),
		}

		select {
		case res := <-done:
			duration := time.Since(start)
			attrs = append(attrs, slog.Duration("took", duration))

			switch {
			case res.err != nil:
				slog.Error("Command failed", append(attrs,
					slog.Any("error", res.err),
					slog.String("status", "failed"),
				)...)
			case duration > SlowCommand:
				slog.Warn("Command executed slowly", append(attrs,
					slog.String("status", "slow"),
				)...)
			default:
				slog.Info("Command completed", append(attrs,
					slog.String("status", "success"),
				)...)
			}
			return res.out, res.err

		case <-ctx.Done():
			slog.Error("Command timed out", append(attrs,
				slog.String("status", "timeout"),
				slog.Duration("timeout", CommandTimeout),
			)...)
			return "", fmt.Errorf("command %s: %w", name, ctx.Err())
		}
	}
}

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/disgoorg/boombot/boombot/commands"
	lru "github.com/hashicorp/golang-lru"
)

// ErrRateLimited is returned for commands over the caller's budget.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimiter is an in-memory sliding window limiter keyed by caller. The
// least recently seen callers are evicted once size is reached.
type RateLimiter struct {
	mu       sync.Mutex
	requests *lru.Cache
	window   time.Duration
	limit    int
	now      func() time.Time
}

func NewRateLimiter(limit int, window time.Duration, size int) (*RateLimiter, error) {
	requests, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &RateLimiter{
		requests: requests,
		window:   window,
		limit:    limit,
		now:      time.Now,
	}, nil
}

// Allow records a request for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	var valid []time.Time
	if v, ok := rl.requests.Get(key); ok {
		for _, t := range v.([]time.Time) {
			if t.After(cutoff) {
				valid = append(valid, t)
			}
		}
	}

	if len(valid) >= rl.limit {
		rl.requests.Add(key, valid)
		return false
	}
	rl.requests.Add(key, append(valid, now))
	return true
}

// Middleware rejects commands from callers over the limit. Rejected commands
// produce no reply.
func (rl *RateLimiter) Middleware(name string, h commands.Handler) commands.Handler {
	return func(ctx context.Context, r commands.Request) (string, error) {
		if !rl.Allow(r.Caller) {
			slog.Warn("Rate limit exceeded",
				slog.String("type", "cmd"),
				slog.String("name", name),
				slog.String("user_id", r.Caller),
				slog.Int("limit", rl.limit),
				slog.Duration("window", rl.window))
			return "", ErrRateLimited
		}
		return h(ctx, r)
	}
}

package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/disgoorg/boombot/boombot/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllow(t *testing.T) {
	rl, err := NewRateLimiter(2, time.Minute, 16)
	require.NoError(t, err)

	now := time.Unix(1000, 0)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))

	now = now.Add(61 * time.Second)
	assert.True(t, rl.Allow("a"))
}

func TestRateLimiterMiddleware(t *testing.T) {
	captureLogs(t)

	rl, err := NewRateLimiter(1, time.Minute, 16)
	require.NoError(t, err)

	r := commands.NewRouter(commands.WithMiddleware(rl.Middleware))
	r.Handle("ping", func(context.Context, commands.Request) (string, error) {
		return "pong", nil
	})

	req := commands.Request{Caller: "7"}
	assert.Equal(t, []string{"pong"}, r.Dispatch(context.Background(), req, "!ping"))
	assert.Empty(t, r.Dispatch(context.Background(), req, "!ping"))
	assert.Equal(t, []string{"pong"}, r.Dispatch(context.Background(), commands.Request{Caller: "8"}, "!ping"))
}

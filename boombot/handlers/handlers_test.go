package handlers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/disgoorg/boombot/boombot/commands"
	"github.com/disgoorg/boombot/boombot/logger"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(logger.NewHandlerWithWriter(&buf, slog.LevelDebug)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestWrapWithLogging(t *testing.T) {
	tests := []struct {
		name    string
		handler commands.Handler
		want    string
		wantErr bool
		logged  string
	}{
		{
			name: "success",
			handler: func(_ context.Context, r commands.Request) (string, error) {
				return "found " + r.Query, nil
			},
			want:   "found ysera",
			logged: "[Status: success]",
		},
		{
			name: "failure",
			handler: func(context.Context, commands.Request) (string, error) {
				return "", errors.New("catalog gone")
			},
			wantErr: true,
			logged:  "catalog gone",
		},
		{
			name: "panic",
			handler: func(context.Context, commands.Request) (string, error) {
				panic("bad card")
			},
			wantErr: true,
			logged:  "command panicked: bad card",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)

			out, err := WrapWithLogging("card", tt.handler)(context.Background(), commands.Request{
				Caller:   "42",
				UserName: "thrall",
				Query:    "ysera",
			})

			assert.Equal(t, tt.want, out)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Contains(t, logs.String(), tt.logged)
			assert.Contains(t, logs.String(), "[card by thrall]")
			assert.Contains(t, logs.String(), "request_id=")
		})
	}
}

func TestWrapWithLoggingKeepsRequestID(t *testing.T) {
	logs := captureLogs(t)

	var seen string
	h := WrapWithLogging("find", func(_ context.Context, r commands.Request) (string, error) {
		seen = r.RequestID
		return "", nil
	})
	_, err := h(context.Background(), commands.Request{RequestID: "req-1"})
	require.NoError(t, err)

	assert.Equal(t, "req-1", seen)
	assert.Contains(t, logs.String(), "request_id=req-1")
}

func TestWrapWithLoggingTimeout(t *testing.T) {
	logs := captureLogs(t)

	prev := CommandTimeout
	CommandTimeout = 20 * time.Millisecond
	t.Cleanup(func() { CommandTimeout = prev })

	h := WrapWithLogging("find", func(ctx context.Context, _ commands.Request) (string, error) {
		<-ctx.Done()
		return "late", ctx.Err()
	})
	out, err := h(context.Background(), commands.Request{})

	assert.Empty(t, out)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, logs.String(), "Command timed out")
}

func newTestHandler(channels ...snowflake.ID) *MessageHandler {
	r := commands.NewRouter()
	r.Handle("echo", func(_ context.Context, req commands.Request) (string, error) {
		return req.Caller + ":" + req.Query, nil
	})
	r.Handle("long", func(context.Context, commands.Request) (string, error) {
		return strings.Repeat("é", MaxMessageLength+10), nil
	})
	return NewMessageHandler(r, channels)
}

func TestMessageHandlerReplies(t *testing.T) {
	msg := func(channel snowflake.ID, bot bool, content string) discord.Message {
		return discord.Message{
			ChannelID: channel,
			Content:   content,
			Author:    discord.User{ID: 7, Username: "jaina", Bot: bot},
		}
	}

	tests := []struct {
		name     string
		channels []snowflake.ID
		message  discord.Message
		want     []string
	}{
		{"any channel", nil, msg(1, false, "!echo Hi"), []string{"7:hi"}},
		{"allowed channel", []snowflake.ID{1}, msg(1, false, "!echo hi"), []string{"7:hi"}},
		{"other channel", []snowflake.ID{2}, msg(1, false, "!echo hi"), nil},
		{"bot author", nil, msg(1, true, "!echo hi"), nil},
		{"no command", nil, msg(1, false, "hello"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestHandler(tt.channels...).Replies(context.Background(), tt.message))
		})
	}
}

func TestMessageHandlerTruncates(t *testing.T) {
	replies := newTestHandler().Replies(context.Background(), discord.Message{Content: "!long"})
	require.Len(t, replies, 1)
	assert.Equal(t, MaxMessageLength, len([]rune(replies[0])))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "ée", Truncate("éeé", 2))
	assert.Equal(t, "", Truncate("abc", 0))
}

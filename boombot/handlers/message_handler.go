package handlers

import (
	"context"
	"log/slog"

	"github.com/disgoorg/boombot/boombot/commands"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
)

// MaxMessageLength is the longest message Discord accepts.
const MaxMessageLength = 2000

// MessageHandler answers chat commands posted in text channels.
type MessageHandler struct {
	router   *commands.Router
	channels map[snowflake.ID]struct{}
}

// NewMessageHandler answers in the given channels only, or everywhere when
// none are given.
func NewMessageHandler(router *commands.Router, channels []snowflake.ID) *MessageHandler {
	h := &MessageHandler{router: router}
	if len(channels) > 0 {
		h.channels = make(map[snowflake.ID]struct{}, len(channels))
		for _, id := range channels {
			h.channels[id] = struct{}{}
		}
	}
	return h
}

// Replies returns what the bot should post in response to m.
func (h *MessageHandler) Replies(ctx context.Context, m discord.Message) []string {
	if m.Author.Bot || m.Content == "" {
		return nil
	}
	if h.channels != nil {
		if _, ok := h.channels[m.ChannelID]; !ok {
			return nil
		}
	}

	replies := h.router.Dispatch(ctx, commands.Request{
		Caller:    m.Author.ID.String(),
		UserName:  m.Author.Username,
		ChannelID: m.ChannelID.String(),
	}, m.Content)
	for i, r := range replies {
		replies[i] = Truncate(r, MaxMessageLength)
	}
	return replies
}

// OnMessageCreate is the gateway listener for new messages.
func (h *MessageHandler) OnMessageCreate(e *events.MessageCreate) {
	for _, content := range h.Replies(context.Background(), e.Message) {
		if _, err := e.Client().Rest().CreateMessage(e.ChannelID, discord.MessageCreate{Content: content}); err != nil {
			slog.Error("Failed to send reply",
				slog.String("type", "error"),
				slog.String("channel_id", e.ChannelID.String()),
				slog.Any("error", err),
			)
		}
	}
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(NewHandlerWithWriter(&buf, level)), &buf
}

func levelTag(color, level string) string {
	return "[" + color + level + colorWhite + "]"
}

func TestHandlerFormatsCommand(t *testing.T) {
	log, buf := newTestLogger(slog.LevelDebug)

	log.Info("Command completed",
		slog.String("type", "cmd"),
		slog.String("name", "find"),
		slog.String("user_name", "thrall"),
		slog.String("status", "success"),
		slog.Duration("took", 3*time.Millisecond),
		slog.String("request_id", "abc"),
	)

	out := buf.String()
	assert.Contains(t, out, "[BoomBot]")
	assert.Contains(t, out, levelTag(colorGreen, "INFO"))
	assert.Contains(t, out, "[CMD] Command completed [find by thrall] [Status: success] (took 3ms)")
	assert.Contains(t, out, " request_id=abc")
	assert.NotContains(t, out, "user_name=")
}

func TestHandlerErrorDetails(t *testing.T) {
	log, buf := newTestLogger(slog.LevelInfo)

	log.Error("Catalog load failed", slog.String("type", "error"), slog.Any("error", errors.New("no such file")))

	out := buf.String()
	assert.Contains(t, out, levelTag(colorRed, "ERROR"))
	assert.Contains(t, out, "[ERR] Catalog load failed (logger_test.go:")
	assert.Contains(t, out, "): no such file")
}

func TestHandlerLevelAndSkips(t *testing.T) {
	log, buf := newTestLogger(slog.LevelInfo)

	log.Debug("Query executed", slog.String("type", "query"))
	log.Info("sending heartbeat")
	assert.Empty(t, buf.String())

	log.Warn("Command executed slowly", slog.String("type", "cmd"))
	assert.Contains(t, buf.String(), levelTag(colorYellow, "WARN"))
}

func TestHandlerWithAttrsAndGroup(t *testing.T) {
	log, buf := newTestLogger(slog.LevelInfo)

	log.With(slog.String("component", "engine")).WithGroup("search").Info("ready")

	assert.True(t, strings.Contains(buf.String(), " search.component=engine"), buf.String())
	assert.Contains(t, buf.String(), "[SYS] ready")
}

func TestForFormat(t *testing.T) {
	_, isJSON := ForFormat("json", slog.LevelInfo, true).(*slog.JSONHandler)
	assert.True(t, isJSON)

	_, isCustom := ForFormat("text", slog.LevelInfo, false).(*CustomHandler)
	assert.True(t, isCustom)
}

func TestGlobalHelpers(t *testing.T) {
	log, buf := newTestLogger(slog.LevelInfo)
	prev := slog.Default()
	slog.SetDefault(log)
	t.Cleanup(func() { slog.SetDefault(prev) })

	LogSystem("Bot is running", slog.Int("cards", 3))
	LogSearch("find", "dragon", true, time.Millisecond)
	LogError("Failed to send reply", errors.New("closed"))

	out := buf.String()
	assert.Contains(t, out, "[SYS] Bot is running cards=3")
	assert.Contains(t, out, "[QUERY] Search answered (took 1ms) command=find query=dragon found=true")
	assert.Contains(t, out, "[ERR] Failed to send reply")
	assert.Contains(t, out, ": closed")
}

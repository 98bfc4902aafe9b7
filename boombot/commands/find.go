package commands

import (
	"context"
	"time"

	"github.com/disgoorg/boombot/boombot/logger"
	"github.com/disgoorg/boombot/boombot/search"
)

// FindHandler pages through the cards matching a filter query.
func FindHandler(engine *search.Engine) Handler {
	return func(_ context.Context, r Request) (string, error) {
		start := time.Now()
		out := engine.SearchFor(r.Caller, r.Query)
		logger.LogSearch("find", r.Query, out != "", time.Since(start))
		return out, nil
	}
}

package commands

import (
	"context"
	"strings"
	"time"

	"github.com/disgoorg/boombot/boombot/logger"
	"github.com/disgoorg/boombot/boombot/search"
)

// MaxSuggestions bounds the names offered when !card finds nothing.
const MaxSuggestions = 3

// CardHandler looks a card up by ID or name. When nothing matches it answers
// with close names instead, or nothing at all.
func CardHandler(engine *search.Engine) Handler {
	return func(_ context.Context, r Request) (string, error) {
		start := time.Now()
		out := engine.LookupFor(r.Caller, r.Query)
		logger.LogSearch("card", r.Query, out != "", time.Since(start))
		if out != "" {
			return out, nil
		}

		suggestions := engine.Suggest(r.Query, MaxSuggestions)
		if len(suggestions) == 0 {
			return "", nil
		}
		s := engine.Surface()
		return s.Italic + "no results" + s.ItalicEnd + " (did you mean " + strings.Join(suggestions, ", ") + "?)", nil
	}
}

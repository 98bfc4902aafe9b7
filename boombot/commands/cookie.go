package commands

import (
	"context"

	"github.com/disgoorg/boombot/boombot/search"
)

// CookieHandler answers the bot's own name with a random flavor text.
func CookieHandler(engine *search.Engine) Handler {
	return func(context.Context, Request) (string, error) {
		return engine.Flavor(nil), nil
	}
}

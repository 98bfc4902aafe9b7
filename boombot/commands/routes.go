package commands

import (
	"github.com/disgoorg/boombot/boombot/search"
	"github.com/disgoorg/boombot/internal/domain/cards"
)

// Register installs the bot's commands on r: card, find, tag, playreq and
// the bot nick.
func Register(r *Router, engine *search.Engine, catalog *cards.Catalog, nick string) {
	r.Handle("card", CardHandler(engine))
	r.Handle("find", FindHandler(engine))
	r.Handle("tag", EnumHandler(catalog.GameTags))
	r.Handle("playreq", EnumHandler(catalog.PlayReqs))
	if nick != "" {
		r.Handle(nick, CookieHandler(engine))
	}
}

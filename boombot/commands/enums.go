package commands

import (
	"context"

	"github.com/disgoorg/boombot/internal/domain/cards"
)

// EnumHandler answers !tag and !playreq with the matching name = value pairs.
func EnumHandler(enum cards.Enum) Handler {
	return func(_ context.Context, r Request) (string, error) {
		return enum.Lookup(r.Query), nil
	}
}

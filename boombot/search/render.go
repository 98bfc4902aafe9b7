package search

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/disgoorg/boombot/boombot/markup"
	"github.com/disgoorg/boombot/internal/domain/cards"
)

// Title capitalises enum names. Words shorter than four characters are
// kept as they are since they are usually acronyms.
func Title(name string) string {
	if utf8.RuneCountInString(name) < 4 {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r)) + strings.ToLower(name[size:])
}

// Render formats a card as a single reply line:
//
//	Name  [ID Set][Class Race][cost  mana, attack/durabilityhealth]:  text   flavor
func Render(c *cards.Card, s markup.Surface) string {
	var b strings.Builder

	b.WriteString(s.Bold)
	b.WriteString(s.Color(c.Rarity))
	b.WriteString(c.Name)
	b.WriteString(s.BoldEnd)
	b.WriteString("  ")

	b.WriteString("[" + s.Bold + c.ID + s.BoldEnd + " " + Title(c.Set) + "]")

	kind := c.Race
	if kind == "" {
		kind = c.Type
	}
	b.WriteString("[" + Title(c.Class) + " " + s.Bold + Title(kind) + s.BoldEnd + "]")

	b.WriteString("[")
	if c.Cost != nil {
		b.WriteString(strconv.Itoa(*c.Cost) + "  mana")
	}
	if c.Attack != nil {
		b.WriteString(", " + strconv.Itoa(*c.Attack) + "/")
	}
	if c.Durability != nil {
		b.WriteString(strconv.Itoa(*c.Durability))
	}
	if c.Health != nil {
		b.WriteString(strconv.Itoa(*c.Health))
	}
	if c.Type == cards.HeroType {
		b.WriteString(" HP] ")
	} else {
		b.WriteString("]:  ")
	}

	b.WriteString(s.Translate(c.Text))
	b.WriteString("   ")
	if c.Flavor != "" {
		b.WriteString(s.Italic + s.Translate(c.Flavor) + s.ItalicEnd)
	}

	return b.String()
}

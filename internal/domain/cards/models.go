package cards

import "strings"

// NeutralClass is assumed for cards without a player class.
const NeutralClass = "NEUTRAL"

// HeroType is the card type whose health is rendered as hit points.
const HeroType = "HERO"

var rarityRanks = map[string]int{
	"COMMON":    1,
	"FREE":      2,
	"RARE":      3,
	"EPIC":      4,
	"LEGENDARY": 5,
}

var typeRanks = map[string]int{
	"GAME":        1,
	"PLAYER":      2,
	"HERO":        3,
	"MINION":      4,
	"SPELL":       5,
	"ENCHANTMENT": 6,
	"WEAPON":      7,
	"ITEM":        8,
	"TOKEN":       9,
	"HERO_POWER":  10,
}

// RarityRank orders rarities from COMMON (1) to LEGENDARY (5); unknown is 0.
func RarityRank(rarity string) int {
	return rarityRanks[rarity]
}

// TypeRank returns the enum value of a card type; unknown is 0.
func TypeRank(cardType string) int {
	return typeRanks[cardType]
}

// Record is a card as delivered by a repository, before enrichment.
type Record struct {
	ID               string
	DbfID            int
	Name             string
	Text             string
	Flavor           string
	Type             string
	Rarity           string
	Set              string
	Race             string
	Class            string
	Collectible      bool
	Cost             *int
	Attack           *int
	Health           *int
	Durability       *int
	Armor            *int
	Overload         *int
	SpellDamage      *int
	Mechanics        []string
	PlayRequirements []string
}

// Card is an immutable catalog entry. Flags and order are fixed by NewCard.
type Card struct {
	Record
	flags map[string]struct{}
	order int
}

// NewCard copies r and derives its flag set and sort order.
func NewCard(r Record) *Card {
	if r.Class == "" {
		r.Class = NeutralClass
	}
	r.Mechanics = append([]string(nil), r.Mechanics...)
	r.PlayRequirements = append([]string(nil), r.PlayRequirements...)

	c := &Card{Record: r, flags: make(map[string]struct{})}
	for _, group := range [][]string{
		r.Mechanics,
		r.PlayRequirements,
		{r.Type, r.Set, r.Rarity, r.Race, r.Class},
	} {
		for _, f := range group {
			if f != "" {
				c.flags[strings.ToUpper(f)] = struct{}{}
			}
		}
	}

	collectible := 0
	if r.Collectible {
		collectible = 1
	}
	c.order = 100*collectible + 10*RarityRank(r.Rarity) - TypeRank(r.Type)
	return c
}

// HasFlag reports whether the uppercase flag is set on the card.
func (c *Card) HasFlag(flag string) bool {
	_, ok := c.flags[flag]
	return ok
}

// Flags returns a copy of the card's flag set.
func (c *Card) Flags() []string {
	out := make([]string, 0, len(c.flags))
	for f := range c.flags {
		out = append(out, f)
	}
	return out
}

// Order ranks collectible cards first, then rarity, then type.
func (c *Card) Order() int {
	return c.order
}

// Catalog is the fixed-order card list with its lookup enums.
type Catalog struct {
	Cards    []*Card
	GameTags Enum
	PlayReqs Enum
}

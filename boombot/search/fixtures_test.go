package search

import (
	"testing"

	"github.com/disgoorg/boombot/internal/domain/cards"
)

func intp(v int) *int { return &v }

func testRecords() []cards.Record {
	return []cards.Record{
		{ID: "d1", Name: "Ysera", Type: "MINION", Rarity: "LEGENDARY", Set: "EXPERT1", Race: "DRAGON", Collectible: true,
			Cost: intp(9), Attack: intp(4), Health: intp(12),
			Text: "<b>Dream:</b> summon a big shiny red winged dragon."},
		{ID: "d2", Name: "Azure Drake", Type: "MINION", Rarity: "RARE", Set: "EXPERT1", Race: "DRAGON", Collectible: true,
			Cost: intp(5), Attack: intp(4), Health: intp(4), Mechanics: []string{"BATTLECRY"},
			Text: "<b>Spell Damage +1</b>\n<b>Battlecry:</b> Draw a card."},
		{ID: "d3", Name: "Faerie Dragon", Type: "MINION", Rarity: "COMMON", Set: "EXPERT1", Race: "DRAGON", Collectible: true,
			Cost: intp(2), Attack: intp(3), Health: intp(2), Text: "Can't be targeted by spells or Hero Powers."},
		{ID: "d4", Name: "Whelp", Type: "MINION", Rarity: "COMMON", Set: "EXPERT1", Race: "DRAGON",
			Cost: intp(1), Attack: intp(1), Health: intp(1)},
		{ID: "d5", Name: "Onyxia", Type: "MINION", Rarity: "LEGENDARY", Set: "EXPERT1", Race: "DRAGON", Collectible: true,
			Cost: intp(9), Attack: intp(8), Health: intp(8), Text: "<b>Battlecry:</b> Summon 1/1 Whelps until your side of the battlefield is full."},
		{ID: "d6", Name: "Twilight Drake", Type: "MINION", Rarity: "EPIC", Set: "EXPERT1", Race: "DRAGON", Collectible: true,
			Cost: intp(6), Attack: intp(4), Health: intp(1), Text: "<b>Battlecry:</b> Gain +1 Health for each card in your hand."},
		{ID: "d7", Name: "Dragonkin Token", Type: "MINION", Race: "DRAGON", Cost: intp(0), Attack: intp(1), Health: intp(1)},
		{ID: "m1", Name: "Annoy-o-Tron", Type: "MINION", Rarity: "COMMON", Set: "GVG", Race: "MECHANICAL", Collectible: true,
			Cost: intp(2), Attack: intp(1), Health: intp(2), Mechanics: []string{"TAUNT", "DIVINE_SHIELD"},
			Text: "[x]<b>Taunt</b>\n<b>Divine Shield</b>", Flavor: "The inventor of Annoy-o-Tron was immediately expelled."},
		{ID: "s1", Name: "Fireball", Type: "SPELL", Rarity: "FREE", Set: "CORE", Class: "MAGE", Collectible: true,
			Cost: intp(4), Text: "Deal $6 damage.", Flavor: "This spell is useful for burning things.",
			PlayRequirements: []string{"REQ_TARGET_TO_PLAY"}},
		{ID: "h1", Name: "Jaina Proudmoore", Type: "HERO", Rarity: "FREE", Set: "CORE", Class: "MAGE", Health: intp(30)},
		{ID: "w1", Name: "Fiery War Axe", Type: "WEAPON", Rarity: "FREE", Set: "CORE", Class: "WARRIOR", Collectible: true,
			Cost: intp(3), Attack: intp(3), Durability: intp(2)},
		{ID: "o1", Name: "Onyxia Brood", Type: "SPELL", Rarity: "RARE", Set: "BRM", Class: "PRIEST", Collectible: true,
			Cost: intp(3), Text: "Summon two <i>dragons</i>."},
	}
}

func testCatalog() []*cards.Card {
	records := testRecords()
	out := make([]*cards.Card, len(records))
	for i, r := range records {
		out[i] = cards.NewCard(r)
	}
	return out
}

func cardByID(t *testing.T, catalog []*cards.Card, id string) *cards.Card {
	t.Helper()
	for _, c := range catalog {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("no card %q in fixture", id)
	return nil
}

func newTestEngine(t *testing.T, opts Options) (*Engine, []*cards.Card) {
	t.Helper()
	catalog := testCatalog()
	e, err := New(catalog, opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e, catalog
}

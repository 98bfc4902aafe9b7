package search

import (
	"testing"

	"github.com/disgoorg/boombot/boombot/markup"
)

const (
	bold   = markup.Bold
	ital   = markup.Italic
	under  = markup.Underline
	reset  = markup.Reset
	colour = markup.Color
)

func TestTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "GVG", want: "GVG"},
		{in: "BRM", want: "BRM"},
		{in: "MAGE", want: "Mage"},
		{in: "EXPERT1", want: "Expert1"},
		{in: "HERO_POWER", want: "Hero_power"},
		{in: "dragon", want: "Dragon"},
	}

	for _, tt := range tests {
		if got := Title(tt.in); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		id   string
		want string
	}{
		{
			id: "d1",
			want: bold + colour + "7" + "Ysera" + reset + "  " +
				"[" + bold + "d1" + reset + " Expert1]" +
				"[Neutral " + bold + "Dragon" + reset + "]" +
				"[9  mana, 4/12]:  " + bold + "Dream:" + bold + " summon a big shiny red winged dragon." + "   ",
		},
		{
			id: "m1",
			want: bold + "Annoy-o-Tron" + reset + "  " +
				"[" + bold + "m1" + reset + " GVG]" +
				"[Neutral " + bold + "Mechanical" + reset + "]" +
				"[2  mana, 1/2]:  " + " " + bold + "Taunt" + bold + " " + bold + "Divine Shield" + bold +
				"   " + ital + "The inventor of Annoy-o-Tron was immediately expelled.",
		},
		{
			id: "s1",
			want: bold + "Fireball" + reset + "  " +
				"[" + bold + "s1" + reset + " Core]" +
				"[Mage " + bold + "Spell" + reset + "]" +
				"[4  mana]:  Deal " + under + "6" + reset + " damage." +
				"   " + ital + "This spell is useful for burning things.",
		},
		{
			id: "h1",
			want: bold + "Jaina Proudmoore" + reset + "  " +
				"[" + bold + "h1" + reset + " Core]" +
				"[Mage " + bold + "Hero" + reset + "]" +
				"[30 HP] " + "   ",
		},
		{
			id: "w1",
			want: bold + "Fiery War Axe" + reset + "  " +
				"[" + bold + "w1" + reset + " Core]" +
				"[Warrior " + bold + "Weapon" + reset + "]" +
				"[3  mana, 3/2]:  " + "   ",
		},
		{
			id: "d6",
			want: bold + colour + "6" + "Twilight Drake" + reset + "  " +
				"[" + bold + "d6" + reset + " Expert1]" +
				"[Neutral " + bold + "Dragon" + reset + "]" +
				"[6  mana, 4/1]:  " + bold + "Battlecry:" + bold + " Gain +1 Health for each card in your hand." + "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Render(cardByID(t, catalog, tt.id), markup.IRC); got != tt.want {
				t.Errorf("Render(%s)\n got = %q\nwant = %q", tt.id, got, tt.want)
			}
		})
	}
}

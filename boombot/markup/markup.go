// Package markup converts the small HTML-like subset used in card text into
// the control sequences of a chat surface.
package markup

import (
	"regexp"
	"strings"
)

// IRC control codes.
const (
	Bold      = "\x02"
	Italic    = "\x1d"
	Underline = "\x1f"
	Color     = "\x03"
	Reset     = "\x0f"
)

// Surface describes how a chat client draws emphasis.
// Bold and Italic toggle; the *End fields close a span opened by the renderer.
type Surface struct {
	Name         string
	Bold         string
	BoldEnd      string
	Italic       string
	ItalicEnd    string
	Underline    string
	UnderlineEnd string
	// Palette maps a rarity name to the colour sequence drawn before card names.
	Palette map[string]string
}

// IRC draws with mIRC control codes.
var IRC = Surface{
	Name:         "irc",
	Bold:         Bold,
	BoldEnd:      Reset,
	Italic:       Italic,
	ItalicEnd:    "",
	Underline:    Underline,
	UnderlineEnd: Reset,
	Palette: map[string]string{
		"RARE":      Color + "12",
		"EPIC":      Color + "6",
		"LEGENDARY": Color + "7",
	},
}

// Markdown draws with Discord flavoured markdown.
var Markdown = Surface{
	Name:         "markdown",
	Bold:         "**",
	BoldEnd:      "**",
	Italic:       "*",
	ItalicEnd:    "*",
	Underline:    "__",
	UnderlineEnd: "__",
}

// SurfaceByName returns the named surface, falling back to IRC.
func SurfaceByName(name string) Surface {
	switch strings.ToLower(name) {
	case Markdown.Name:
		return Markdown
	default:
		return IRC
	}
}

var tokenPattern = regexp.MustCompile(`</?([bi])>|\$(\d+)|\n|\[x\]`)

// Translate rewrites tags, $N placeholders, newlines and [x] markers in s.
// Unbalanced tags are translated as they appear.
func (s Surface) Translate(text string) string {
	if text == "" {
		return ""
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(tok string) string {
		switch {
		case tok == "<b>" || tok == "</b>":
			return s.Bold
		case tok == "<i>" || tok == "</i>":
			return s.Italic
		case tok[0] == '$':
			return s.Underline + tok[1:] + s.UnderlineEnd
		default:
			return " "
		}
	})
}

// Color returns the palette entry for rarity, or "" when there is none.
func (s Surface) Color(rarity string) string {
	return s.Palette[rarity]
}

// Translate rewrites text for the IRC surface.
func Translate(text string) string {
	return IRC.Translate(text)
}

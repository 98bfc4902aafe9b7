package search

import (
	"errors"
	"strconv"
	"strings"

	"github.com/disgoorg/boombot/internal/domain/cards"
)

// Predicate decides whether a card belongs to a result set. Predicates hold
// no state and may be shared between queries.
type Predicate func(c *cards.Card) bool

// Never matches no card.
func Never(*cards.Card) bool { return false }

type accessor func(c *cards.Card) *int

// fields maps comparator names to card stats.
var fields = map[string]accessor{
	"cost":        func(c *cards.Card) *int { return c.Cost },
	"attack":      func(c *cards.Card) *int { return c.Attack },
	"health":      func(c *cards.Card) *int { return c.Health },
	"durability":  func(c *cards.Card) *int { return c.Durability },
	"armor":       func(c *cards.Card) *int { return c.Armor },
	"overload":    func(c *cards.Card) *int { return c.Overload },
	"spelldamage": func(c *cards.Card) *int { return c.SpellDamage },
	"dbfid":       func(c *cards.Card) *int { return &c.DbfID },
}

// Compile parses query and returns one predicate per clause.
func Compile(query string) []Predicate {
	clauses := Parse(query)
	preds := make([]Predicate, 0, len(clauses))
	for _, c := range clauses {
		preds = append(preds, c.Predicate())
	}
	return preds
}

// Predicate compiles a single clause.
func (c Clause) Predicate() Predicate {
	switch c.Kind {
	case ClauseQuoted:
		return TextContains(c.Text)
	case ClauseComparator:
		return Compare(c.Text, c.Op, c.Value)
	case ClauseFlag:
		return HasFlag(c.Text, c.Negated)
	default:
		return Never
	}
}

// TextContains matches card text holding the words of phrase in order,
// case-insensitively, with at least one character between words. A phrase of
// only whitespace matches any card that has text.
func TextContains(phrase string) Predicate {
	words := strings.Fields(strings.ToLower(phrase))
	if len(words) == 0 && phrase != "" {
		return func(c *cards.Card) bool { return c.Text != "" }
	}
	return func(c *cards.Card) bool {
		return containsInOrder(strings.ToLower(c.Text), words, 1)
	}
}

// Compare matches cards whose named stat compares to value. Unknown fields
// and absent stats never match. Values too large for an int compare as
// beyond every stat.
func Compare(field string, op byte, value string) Predicate {
	get, ok := fields[strings.ToLower(field)]
	if !ok {
		return Never
	}
	want, err := strconv.Atoi(value)
	if errors.Is(err, strconv.ErrRange) {
		return saturated(get, op, strings.HasPrefix(value, "-"))
	}
	if err != nil {
		return Never
	}

	var cmp func(int) bool
	switch op {
	case '>':
		cmp = func(v int) bool { return v > want }
	case '<':
		cmp = func(v int) bool { return v < want }
	case '=':
		cmp = func(v int) bool { return v == want }
	default:
		return Never
	}

	return func(c *cards.Card) bool {
		v := get(c)
		return v != nil && cmp(*v)
	}
}

// saturated compares against a value outside the int range, so only the
// direction of the comparison matters.
func saturated(get accessor, op byte, negative bool) Predicate {
	if (op == '<' && !negative) || (op == '>' && negative) {
		return func(c *cards.Card) bool { return get(c) != nil }
	}
	return Never
}

// HasFlag matches cards carrying the uppercased flag, or lacking it when negated.
func HasFlag(flag string, negated bool) Predicate {
	flag = strings.ToUpper(flag)
	return func(c *cards.Card) bool {
		return c.HasFlag(flag) != negated
	}
}

// containsInOrder reports whether every word occurs in s in order, with at
// least minGap bytes between the end of one word and the start of the next.
func containsInOrder(s string, words []string, minGap int) bool {
	pos := 0
	for i, w := range words {
		if i > 0 {
			pos += minGap
		}
		if pos > len(s) {
			return false
		}
		j := strings.Index(s[pos:], w)
		if j < 0 {
			return false
		}
		pos += j + len(w)
	}
	return true
}

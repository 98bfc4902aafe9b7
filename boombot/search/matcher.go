package search

import "github.com/disgoorg/boombot/internal/domain/cards"

// Match returns the indexes, in catalog order, of cards satisfying every
// predicate. With no predicates every card matches.
func Match(catalog []*cards.Card, preds []Predicate) []int {
	matched := make([]int, 0)
	for i, c := range catalog {
		if matchesAll(c, preds) {
			matched = append(matched, i)
		}
	}
	return matched
}

func matchesAll(c *cards.Card, preds []Predicate) bool {
	for _, p := range preds {
		if !p(c) {
			return false
		}
	}
	return true
}

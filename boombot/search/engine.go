// Package search compiles card queries, matches them against the catalog and
// pages the rendered results.
package search

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/disgoorg/boombot/boombot/markup"
	"github.com/disgoorg/boombot/internal/domain/cards"
	"github.com/disgoorg/boombot/internal/domain/logger"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"
)

// DefaultCacheSize bounds the compiled query cache.
const DefaultCacheSize = 256

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	PageSize  int
	Surface   markup.Surface
	Cursors   CursorStore
	CacheSize int
}

type entry struct {
	card *cards.Card
	line string
}

// Engine answers !find and !card style queries over a fixed catalog.
// A single lock spans compile, match, page and render, so pagination
// cursors stay consistent when called from several goroutines.
type Engine struct {
	mu       sync.Mutex
	cards    []*cards.Card
	entries  []entry
	names    nameSource
	flavored []int
	surface  markup.Surface
	pageSize int
	cursors  CursorStore
	compiled *lru.Cache
}

// New builds an engine over catalog, rendering every card once.
func New(catalog []*cards.Card, opts Options) (*Engine, error) {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Surface.Name == "" {
		opts.Surface = markup.IRC
	}
	if opts.Cursors == nil {
		opts.Cursors = NewSharedCursor()
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}

	compiled, err := lru.New(opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create query cache: %w", err)
	}

	e := &Engine{
		cards:    catalog,
		entries:  make([]entry, len(catalog)),
		names:    make(nameSource, len(catalog)),
		surface:  opts.Surface,
		pageSize: opts.PageSize,
		cursors:  opts.Cursors,
		compiled: compiled,
	}
	for i, c := range catalog {
		e.entries[i] = entry{card: c, line: Render(c, opts.Surface)}
		e.names[i] = strings.ToLower(c.Name)
		if c.Flavor != "" {
			e.flavored = append(e.flavored, i)
		}
	}
	return e, nil
}

// Search runs a !find query with the shared caller.
func (e *Engine) Search(query string) string {
	return e.SearchFor(SharedCaller, query)
}

// SearchFor compiles query, matches it and returns the next page for caller.
// An empty string means nothing matched.
func (e *Engine) SearchFor(caller, query string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	ql := logger.NewQueryLogger("find", query, caller)
	matched := Match(e.cards, e.compile(query))
	out, offset := page(e.cursors, e.pageSize, caller, query, e.collect(matched))
	ql.Log(len(matched), offset)
	return out
}

// Lookup runs a !card query with the shared caller.
func (e *Engine) Lookup(query string) string {
	return e.LookupFor(SharedCaller, query)
}

// LookupFor matches cards whose ID or name equals query, ignoring case. When
// there is none it falls back to names containing the query words in order.
func (e *Engine) LookupFor(caller, query string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	ql := logger.NewQueryLogger("card", query, caller)

	var matched []int
	for i, c := range e.cards {
		if strings.EqualFold(c.ID, query) || strings.EqualFold(c.Name, query) {
			matched = append(matched, i)
		}
	}
	if len(matched) == 0 {
		words := strings.Fields(strings.ToLower(query))
		for i, name := range e.names {
			if containsInOrder(name, words, 0) {
				matched = append(matched, i)
			}
		}
	}

	out, offset := page(e.cursors, e.pageSize, caller, query, e.collect(matched))
	ql.Log(len(matched), offset)
	return out
}

// Surface reports the markup surface replies are rendered for.
func (e *Engine) Surface() markup.Surface {
	return e.surface
}

// Render formats a single card for the engine's surface.
func (e *Engine) Render(c *cards.Card) string {
	return Render(c, e.surface)
}

// Flavor returns the flavor text of a random card, in italics. A nil r uses
// the global source.
func (e *Engine) Flavor(r *rand.Rand) string {
	if len(e.flavored) == 0 {
		return ""
	}
	var n int
	if r == nil {
		n = rand.IntN(len(e.flavored))
	} else {
		n = r.IntN(len(e.flavored))
	}
	c := e.cards[e.flavored[n]]
	return e.surface.Italic + e.surface.Translate(c.Flavor) + e.surface.ItalicEnd
}

// Suggest returns up to limit distinct card names close to query.
func (e *Engine) Suggest(query string, limit int) []string {
	query = strings.ToLower(strings.Join(strings.Fields(query), " "))
	if query == "" || limit <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, m := range fuzzy.FindFrom(query, e.names) {
		name := e.cards[m.Index].Name
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (e *Engine) compile(query string) []Predicate {
	if v, ok := e.compiled.Get(query); ok {
		return v.([]Predicate)
	}
	preds := Compile(query)
	e.compiled.Add(query, preds)
	return preds
}

func (e *Engine) collect(idx []int) []entry {
	out := make([]entry, len(idx))
	for i, n := range idx {
		out[i] = e.entries[n]
	}
	return out
}

// nameSource implements fuzzy.Source over lowercased card names.
type nameSource []string

func (n nameSource) String(i int) string {
	return n[i]
}

func (n nameSource) Len() int {
	return len(n)
}

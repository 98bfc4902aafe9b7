package search

import (
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultPageSize is the number of cards shown per reply.
const DefaultPageSize = 3

// SharedCaller is the caller identity used when callers are not told apart.
const SharedCaller = ""

// Cursor remembers where the last paged query stopped.
type Cursor struct {
	Query  string
	Offset int
	active bool
}

// Exhausted is the cursor stored after a query's last page. It resumes no
// query, not even the empty one.
var Exhausted = Cursor{}

// NewCursor returns a cursor that resumes query at offset.
func NewCursor(query string, offset int) Cursor {
	return Cursor{Query: query, Offset: offset, active: true}
}

// Resumes reports whether query continues from this cursor.
func (c Cursor) Resumes(query string) bool {
	return c.active && c.Query == query
}

// CursorStore keeps pagination cursors between calls.
type CursorStore interface {
	Load(caller string) Cursor
	Store(caller string, c Cursor)
}

// SharedCursor is one cursor for every caller: repeating a query continues
// the page sequence whoever asked before.
type SharedCursor struct {
	cursor Cursor
}

func NewSharedCursor() *SharedCursor {
	return &SharedCursor{}
}

func (s *SharedCursor) Load(string) Cursor {
	return s.cursor
}

func (s *SharedCursor) Store(_ string, c Cursor) {
	s.cursor = c
}

// CallerCursors keeps one cursor per caller, evicting the least recently
// used callers beyond its size.
type CallerCursors struct {
	cache *lru.Cache
}

func NewCallerCursors(size int) (*CallerCursors, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create cursor cache: %w", err)
	}
	return &CallerCursors{cache: cache}, nil
}

func (s *CallerCursors) Load(caller string) Cursor {
	if v, ok := s.cache.Get(caller); ok {
		return v.(Cursor)
	}
	return Exhausted
}

func (s *CallerCursors) Store(caller string, c Cursor) {
	if !c.active {
		s.cache.Remove(caller)
		return
	}
	s.cache.Add(caller, c)
}

// page renders matched entries for query. It returns the reply and the
// offset it started from.
func page(store CursorStore, pageSize int, caller, query string, matched []entry) (string, int) {
	switch len(matched) {
	case 0:
		store.Store(caller, Exhausted)
		return "", 0
	case 1:
		store.Store(caller, Exhausted)
		return matched[0].line, 0
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].card.Order() > matched[j].card.Order()
	})

	total := len(matched)
	offset := 0
	if cur := store.Load(caller); cur.Resumes(query) && cur.Offset < total {
		offset = cur.Offset
	}
	end := min(offset+pageSize, total)

	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		lines = append(lines, fmt.Sprintf("(%d/%d) %s", i+1, total, matched[i].line))
	}

	if offset+pageSize < total {
		store.Store(caller, NewCursor(query, offset+pageSize))
	} else {
		store.Store(caller, Exhausted)
	}

	return strings.Join(lines, "\n"), offset
}

package boombot

import (
	"context"
	"fmt"

	"github.com/disgoorg/boombot/boombot/markup"
	"github.com/disgoorg/boombot/boombot/search"
	"github.com/disgoorg/boombot/internal/domain/cards"
	"github.com/disgoorg/boombot/internal/gateways/storage"
)

// OpenStore returns the blob store the catalog is read from.
func (c *Config) OpenStore(ctx context.Context) (storage.BlobStore, error) {
	switch c.Catalog.Source {
	case SourceSpaces:
		return storage.NewSpacesStore(ctx,
			c.Spaces.Key,
			c.Spaces.Secret,
			c.Spaces.Region,
			c.Spaces.Bucket,
			c.Spaces.Root,
		)
	case SourceFile, "":
		return storage.NewDirStore(c.Catalog.Dir), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
}

// LoadCatalog reads the card dataset described by the config.
func (c *Config) LoadCatalog(ctx context.Context) (*cards.Catalog, error) {
	store, err := c.OpenStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog store: %w", err)
	}
	repo := storage.NewCardRepository(store, c.Catalog.Cards, c.Catalog.Enums)
	return cards.NewService(repo).LoadCatalog(ctx)
}

// Surface returns the markup surface replies are rendered for.
func (c *Config) Surface() markup.Surface {
	return markup.SurfaceByName(c.Search.Surface)
}

// NewEngine builds the search engine over catalog with the configured
// paging, cursor scope and surface.
func (c *Config) NewEngine(catalog *cards.Catalog) (*search.Engine, error) {
	var cursors search.CursorStore = search.NewSharedCursor()
	if c.Search.CursorScope == ScopeCaller {
		cc, err := search.NewCallerCursors(c.Search.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create cursor store: %w", err)
		}
		cursors = cc
	}

	return search.New(catalog.Cards, search.Options{
		PageSize:  c.Search.PageSize,
		Surface:   c.Surface(),
		Cursors:   cursors,
		CacheSize: c.Search.CacheSize,
	})
}

package cards

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Enum table names inside the enums document.
const (
	EnumGameTag = "GameTag"
	EnumPlayReq = "PlayReq"
)

type Service interface {
	LoadCatalog(ctx context.Context) (*Catalog, error)
}

type service struct {
	repository Repository
}

func NewService(repository Repository) *service {
	return &service{
		repository: repository,
	}
}

// LoadCatalog fetches cards and enums concurrently and builds the immutable catalog.
func (s *service) LoadCatalog(ctx context.Context) (*Catalog, error) {
	start := time.Now()

	var (
		records []Record
		enums   map[string]map[string]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.repository.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch cards: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		enums, err = s.repository.GetEnums(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch enums: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no cards found")
	}

	catalog := &Catalog{
		Cards:    make([]*Card, 0, len(records)),
		GameTags: NewEnum(enums[EnumGameTag]),
		PlayReqs: NewEnum(enums[EnumPlayReq]),
	}
	for _, r := range records {
		catalog.Cards = append(catalog.Cards, NewCard(r))
	}

	slog.Info("Catalog loaded",
		slog.String("type", "db"),
		slog.Int("cards", len(catalog.Cards)),
		slog.Int("game_tags", len(catalog.GameTags)),
		slog.Int("play_reqs", len(catalog.PlayReqs)),
		slog.Duration("took", time.Since(start)))

	return catalog, nil
}

package storage

import (
	"context"
	"fmt"
	"sort"

	"github.com/disgoorg/boombot/internal/domain/cards"
	"github.com/disgoorg/json"
)

// Default object names of the card dataset.
const (
	DefaultCardsKey = "cards.json"
	DefaultEnumsKey = "enums.json"
)

// cardDocument mirrors one entry of a HearthstoneJSON cards.json file.
type cardDocument struct {
	ID               string         `json:"id"`
	DbfID            int            `json:"dbfId"`
	Name             string         `json:"name"`
	Text             string         `json:"text"`
	Flavor           string         `json:"flavor"`
	Type             string         `json:"type"`
	Rarity           string         `json:"rarity"`
	Set              string         `json:"set"`
	Race             string         `json:"race"`
	PlayerClass      string         `json:"playerClass"`
	Collectible      bool           `json:"collectible"`
	Cost             *int           `json:"cost"`
	Attack           *int           `json:"attack"`
	Health           *int           `json:"health"`
	Durability       *int           `json:"durability"`
	Armor            *int           `json:"armor"`
	Overload         *int           `json:"overload"`
	SpellDamage      *int           `json:"spellDamage"`
	Mechanics        []string       `json:"mechanics"`
	PlayRequirements map[string]int `json:"playRequirements"`
}

func (d cardDocument) record() cards.Record {
	reqs := make([]string, 0, len(d.PlayRequirements))
	for k := range d.PlayRequirements {
		reqs = append(reqs, k)
	}
	sort.Strings(reqs)

	return cards.Record{
		ID:               d.ID,
		DbfID:            d.DbfID,
		Name:             d.Name,
		Text:             d.Text,
		Flavor:           d.Flavor,
		Type:             d.Type,
		Rarity:           d.Rarity,
		Set:              d.Set,
		Race:             d.Race,
		Class:            d.PlayerClass,
		Collectible:      d.Collectible,
		Cost:             d.Cost,
		Attack:           d.Attack,
		Health:           d.Health,
		Durability:       d.Durability,
		Armor:            d.Armor,
		Overload:         d.Overload,
		SpellDamage:      d.SpellDamage,
		Mechanics:        d.Mechanics,
		PlayRequirements: reqs,
	}
}

// CardRepository decodes the card dataset from a blob store.
type CardRepository struct {
	store    BlobStore
	cardsKey string
	enumsKey string
}

func NewCardRepository(store BlobStore, cardsKey, enumsKey string) *CardRepository {
	if cardsKey == "" {
		cardsKey = DefaultCardsKey
	}
	if enumsKey == "" {
		enumsKey = DefaultEnumsKey
	}
	return &CardRepository{
		store:    store,
		cardsKey: cardsKey,
		enumsKey: enumsKey,
	}
}

func (r *CardRepository) GetAll(ctx context.Context) ([]cards.Record, error) {
	data, err := r.store.Get(ctx, r.cardsKey)
	if err != nil {
		return nil, err
	}

	var docs []cardDocument
	if err = json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.cardsKey, err)
	}

	records := make([]cards.Record, len(docs))
	for i, d := range docs {
		records[i] = d.record()
	}
	return records, nil
}

func (r *CardRepository) GetEnums(ctx context.Context) (map[string]map[string]int, error) {
	data, err := r.store.Get(ctx, r.enumsKey)
	if err != nil {
		return nil, err
	}

	var enums map[string]map[string]int
	if err = json.Unmarshal(data, &enums); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.enumsKey, err)
	}
	return enums, nil
}

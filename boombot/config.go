package boombot

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/disgoorg/boombot/boombot/search"
	"github.com/disgoorg/snowflake/v2"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Cursor scopes.
const (
	ScopeShared = "shared"
	ScopeCaller = "caller"
)

// Catalog sources.
const (
	SourceFile   = "file"
	SourceSpaces = "spaces"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err = toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the settings used for keys missing from the file.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: slog.LevelInfo},
		Bot: BotConfig{Nick: "boombot", RateLimit: 20},
		Catalog: CatalogConfig{
			Source: SourceFile,
			Dir:    "data",
			Cards:  "cards.json",
			Enums:  "enums.json",
		},
		Search: SearchConfig{
			PageSize:    search.DefaultPageSize,
			CursorScope: ScopeShared,
			CacheSize:   search.DefaultCacheSize,
			Surface:     "markdown",
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and the settings the chosen source needs.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Catalog.Source == SourceSpaces {
		if err := validate.Struct(c.Spaces); err != nil {
			return fmt.Errorf("invalid spaces config: %w", err)
		}
	}
	return nil
}

type Config struct {
	Log     LogConfig     `toml:"log"`
	Bot     BotConfig     `toml:"bot"`
	Catalog CatalogConfig `toml:"catalog"`
	Spaces  SpacesConfig  `toml:"spaces" validate:"-"`
	Search  SearchConfig  `toml:"search"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format" validate:"omitempty,oneof=text json"`
	AddSource bool       `toml:"add_source"`
}

type BotConfig struct {
	Token string `toml:"token"`
	Nick  string `toml:"nick" validate:"required,alphanum"`
	// Channels limits the channels the bot answers in; empty means all.
	Channels []snowflake.ID `toml:"channels"`
	// RateLimit is the number of commands a user may run per minute; 0 disables it.
	RateLimit int `toml:"rate_limit" validate:"min=0"`
}

type CatalogConfig struct {
	Source string `toml:"source" validate:"oneof=file spaces"`
	Dir    string `toml:"dir"`
	Cards  string `toml:"cards" validate:"required"`
	Enums  string `toml:"enums" validate:"required"`
}

type SpacesConfig struct {
	Key    string `toml:"key" validate:"required"`
	Secret string `toml:"secret" validate:"required"`
	Region string `toml:"region" validate:"required"`
	Bucket string `toml:"bucket" validate:"required"`
	Root   string `toml:"root"`
}

type SearchConfig struct {
	PageSize int `toml:"page_size" validate:"min=1,max=10"`
	// CursorScope selects one pagination cursor for everybody or one per user.
	CursorScope string `toml:"cursor_scope" validate:"oneof=shared caller"`
	CacheSize   int    `toml:"cache_size" validate:"min=1"`
	Surface     string `toml:"surface" validate:"oneof=irc markdown"`
}

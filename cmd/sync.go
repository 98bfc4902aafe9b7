package cmd

import (
	"fmt"
	"log/slog"

	"github.com/disgoorg/boombot/boombot"
	"github.com/disgoorg/boombot/boombot/logger"
	"github.com/disgoorg/boombot/internal/gateways/storage"
	"github.com/spf13/cobra"
)

var syncCMD = &cobra.Command{
	Use:   "sync <dir>",
	Short: "copy the card dataset from Spaces into a local directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg := boombot.DefaultConfig()
		if configPath != "" {
			var err error
			if cfg, err = boombot.LoadConfig(configPath); err != nil {
				return err
			}
		}
		if cfg.Catalog.Source != boombot.SourceSpaces {
			return fmt.Errorf("catalog source is %q, sync needs %q", cfg.Catalog.Source, boombot.SourceSpaces)
		}

		src, err := cfg.OpenStore(ctx)
		if err != nil {
			logger.LogError("Failed to open Spaces", err, slog.String("bucket", cfg.Spaces.Bucket))
			return err
		}
		dst := storage.NewDirStore(args[0])

		for _, key := range []string{cfg.Catalog.Cards, cfg.Catalog.Enums} {
			data, err := src.Get(ctx, key)
			if err != nil {
				return err
			}
			if err = dst.Put(ctx, key, data); err != nil {
				return err
			}
			slog.Info("Synced catalog object",
				slog.String("type", "db"),
				slog.String("key", key),
				slog.Int("bytes", len(data)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCMD)
}

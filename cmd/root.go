// Package cmd holds the boombot-cli commands.
package cmd

import (
	"context"
	"log/slog"

	"github.com/disgoorg/boombot/boombot"
	"github.com/disgoorg/boombot/boombot/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dataDir    string
)

var rootCmd = &cobra.Command{
	Use:           "boombot-cli",
	Short:         "query the card catalog without a Discord connection",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config (defaults apply when empty)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "read the catalog from this directory instead")
}

// ExecuteContext runs the command line with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig reads --config, or the defaults when it is unset, and applies
// --dir on top.
func loadConfig() (*boombot.Config, error) {
	cfg := boombot.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = boombot.LoadConfig(configPath); err != nil {
			return nil, err
		}
	}
	if dataDir != "" {
		cfg.Catalog.Source = boombot.SourceFile
		cfg.Catalog.Dir = dataDir
	}
	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))
	return cfg, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/boombot/boombot"
	"github.com/disgoorg/boombot/boombot/commands"
	"github.com/disgoorg/boombot/boombot/handlers"
	"github.com/disgoorg/boombot/boombot/logger"
	"github.com/disgoorg/disgo/bot"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := boombot.LoadConfig(*path)
	if err != nil {
		slog.SetDefault(slog.New(logger.NewHandler(slog.LevelInfo)))
		slog.Error("Failed to load configuration", slog.String("type", "sys"), slog.Any("error", err))
		os.Exit(-1)
	}

	slog.SetDefault(slog.New(logger.ForFormat(cfg.Log.Format, cfg.Log.Level, cfg.Log.AddSource)))
	slog.Info("Starting BoomBot",
		slog.String("type", "sys"),
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	catalogStart := time.Now()
	catalog, err := cfg.LoadCatalog(ctx)
	if err != nil {
		slog.Error("Failed to load card catalog",
			slog.String("type", "db"),
			slog.String("source", cfg.Catalog.Source),
			slog.Any("error", err),
			slog.Duration("attempted_for", time.Since(catalogStart)))
		os.Exit(-1)
	}

	b := boombot.New(*cfg, version, commit)
	b.Catalog = catalog

	if b.Engine, err = cfg.NewEngine(catalog); err != nil {
		logger.LogError("Failed to build search engine", err)
		os.Exit(-1)
	}

	middleware := []commands.Middleware{handlers.WrapWithLogging}
	if cfg.Bot.RateLimit > 0 {
		limiter, err := handlers.NewRateLimiter(cfg.Bot.RateLimit, time.Minute, cfg.Search.CacheSize)
		if err != nil {
			logger.LogError("Failed to create rate limiter", err)
			os.Exit(-1)
		}
		middleware = append([]commands.Middleware{limiter.Middleware}, middleware...)
	}

	b.Router = commands.NewRouter(
		commands.WithSurface(cfg.Surface()),
		commands.WithMiddleware(middleware...),
	)
	commands.Register(b.Router, b.Engine, catalog, cfg.Bot.Nick)

	messages := handlers.NewMessageHandler(b.Router, cfg.Bot.Channels)
	if err = b.SetupBot(bot.NewListenerFunc(b.OnReady), bot.NewListenerFunc(messages.OnMessageCreate)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
			slog.String("component", "bot_setup"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = b.Client.OpenGateway(ctx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("component", "gateway"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	logger.LogSystem("Bot is running. Press CTRL-C to exit.", slog.Any("commands", b.Router.Names()))
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	logger.LogSystem("Shutting down bot...")
}

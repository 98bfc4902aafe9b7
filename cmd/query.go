package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/disgoorg/boombot/boombot/commands"
	"github.com/disgoorg/boombot/boombot/handlers"
	"github.com/spf13/cobra"
)

var (
	queryCaller  string
	querySurface string
)

var queryCMD = &cobra.Command{
	Use:   "query [line...]",
	Short: "answer a chat line such as \"!find dragon\", or read lines from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if querySurface != "" {
			cfg.Search.Surface = querySurface
		}

		catalog, err := cfg.LoadCatalog(ctx)
		if err != nil {
			return err
		}
		engine, err := cfg.NewEngine(catalog)
		if err != nil {
			return err
		}

		router := commands.NewRouter(
			commands.WithSurface(cfg.Surface()),
			commands.WithMiddleware(handlers.WrapWithLogging),
		)
		commands.Register(router, engine, catalog, cfg.Bot.Nick)

		if len(args) > 0 {
			answer(ctx, cmd.OutOrStdout(), router, strings.Join(args, " "))
			return nil
		}
		return repl(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), router)
	},
}

func init() {
	queryCMD.Flags().StringVar(&queryCaller, "caller", "cli", "caller name used for pagination cursors")
	queryCMD.Flags().StringVar(&querySurface, "surface", "", "markup surface: irc or markdown (defaults to the config's)")
	rootCmd.AddCommand(queryCMD)
}

func answer(ctx context.Context, w io.Writer, router *commands.Router, line string) {
	replies := router.Dispatch(ctx, commands.Request{Caller: queryCaller, UserName: queryCaller}, line)
	for _, r := range replies {
		fmt.Fprintln(w, r)
	}
}

func repl(ctx context.Context, r io.Reader, w io.Writer, router *commands.Router) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		answer(ctx, w, router, line)
	}
	return scanner.Err()
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/five82/dex/internal/app"
	"github.com/five82/dex/internal/config"
	"github.com/five82/dex/internal/logging"
	"github.com/five82/dex/internal/prefs"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

type flags struct {
	LogLevel string
	LogFile  string
	Options  app.Options
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		f            flags
		deferredLogs = &logging.DeferredWriter{}
	)

	cmd := &cli.Command{
		Name:      "dex",
		Usage:     "Browse the creature catalog from the terminal",
		UsageText: "dex [options]",
		Description: `dex looks up single entries by name or id and browses the full catalog
as a card grid, either page by page or in batches with infinite scroll.

Settings are read from ~/.config/dex/config.toml; flags override them.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DEX_LOG_LEVEL"),
				Value:       "info",
				Destination: &f.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (optional)",
				Sources:     cli.EnvVars("DEX_LOG_FILE"),
				Destination: &f.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DEX_CONFIG"),
				Value:       config.DefaultPath(),
				Destination: &f.Options.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "prefs",
				Usage:       "path to preferences file",
				Sources:     cli.EnvVars("DEX_PREFS"),
				Value:       prefs.DefaultPath(),
				Destination: &f.Options.PrefsPath,
			},
			&cli.StringFlag{
				Name:        "api-url",
				Usage:       "API root url (overrides config)",
				Sources:     cli.EnvVars("DEX_API_URL", "POKEAPI_URL"),
				Destination: &f.Options.APIURL,
			},
			&cli.IntFlag{
				Name:        "page-size",
				Aliases:     []string{"n"},
				Usage:       "entries per page or batch (overrides config)",
				Sources:     cli.EnvVars("DEX_PAGE_SIZE"),
				Destination: &f.Options.PageSize,
			},
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "entry to look up on startup (overrides config)",
				Destination: &f.Options.Search,
			},
			&cli.BoolFlag{
				Name:        "no-search",
				Usage:       "skip the startup search",
				Destination: &f.Options.NoSearch,
			},
			&cli.BoolFlag{
				Name:        "infinite",
				Usage:       "start with infinite scroll enabled",
				Sources:     cli.EnvVars("DEX_INFINITE"),
				Destination: &f.Options.Infinite,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// The TUI owns the terminal, so buffer logs until it exits.
			if err := logging.Setup(f.LogLevel, f.LogFile, deferredLogs); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unexpected argument %q. Run 'dex --help' for usage", c.Args().First())
			}
			f.Options.Logger = log.With().Str("component", "dex").Logger()
			return app.Run(ctx, f.Options)
		},
	}

	exitCode := 0
	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "dex: %v\n", err)
		exitCode = 1
	}

	// Flush deferred logs to console after TUI exits
	if err := deferredLogs.Flush(zerolog.ConsoleWriter{Out: os.Stderr}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to flush logs: %v\n", err)
	}

	return exitCode
}

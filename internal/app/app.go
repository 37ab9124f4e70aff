package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/config"
	"github.com/five82/dex/internal/pokeapi"
	"github.com/five82/dex/internal/prefs"
	"github.com/five82/dex/internal/ui"
)

// Options configure the dex application. Zero values defer to the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/dex/prefs.toml
	APIURL     string
	PageSize   int
	Search     string
	NoSearch   bool // skip the startup search even when one is configured
	Infinite   bool

	Logger zerolog.Logger
}

// detectDark reports the terminal background; nil asks lipgloss.
var detectDark func() bool

// Run boots the dex TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	uiOpts, err := build(ctx, opts)
	if err != nil {
		return err
	}
	return ui.Run(uiOpts)
}

// build loads configuration and wires the client and controller into UI options.
func build(ctx context.Context, opts Options) (ui.Options, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, fmt.Errorf("load config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)

	logger := opts.Logger
	logger.Debug().
		Str("api", cfg.APIURL).
		Int("page_size", cfg.PageSize).
		Dur("timeout", cfg.RequestTimeout).
		Bool("fence", cfg.FenceResponses).
		Msg("starting dex")

	client, err := pokeapi.NewClient(cfg.APIURL,
		pokeapi.WithTimeout(cfg.RequestTimeout),
		pokeapi.WithLogger(logger),
	)
	if err != nil {
		return ui.Options{}, fmt.Errorf("init api client: %w", err)
	}

	artworkBase := cfg.ArtworkURL
	ctrl := catalog.New(catalog.Options{
		PageSize:        cfg.PageSize,
		MaxButtons:      cfg.MaxPageButtons,
		ScrollThreshold: cfg.ScrollThreshold,
		ListLimit:       cfg.ListLimit,
		Artwork:         func(id int) string { return pokeapi.ArtworkURL(artworkBase, id) },
		Infinite:        cfg.Infinite,
		FenceResponses:  cfg.FenceResponses,
		Logger:          logger,
	})

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn().Err(err).Msg("load preferences")
	}

	return ui.Options{
		Context:       ctx,
		Fetcher:       client,
		Controller:    ctrl,
		ThemeName:     ui.ResolveThemeName(userPrefs.Theme, detectDark),
		PrefsPath:     opts.PrefsPath,
		DefaultSearch: cfg.DefaultSearch,
		Logger:        logger,
	}, nil
}

// applyOverrides layers command-line values over the loaded config.
func applyOverrides(cfg config.Config, opts Options) config.Config {
	if v := strings.TrimSpace(opts.APIURL); v != "" {
		cfg.APIURL = v
	}
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}
	if v := strings.TrimSpace(opts.Search); v != "" {
		cfg.DefaultSearch = v
	}
	if opts.NoSearch {
		cfg.DefaultSearch = ""
	}
	if opts.Infinite {
		cfg.Infinite = true
	}
	return cfg
}

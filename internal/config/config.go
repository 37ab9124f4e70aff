package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokeapi"
)

// Config holds the settings dex reads at startup.
type Config struct {
	APIURL          string
	ArtworkURL      string
	PageSize        int
	ListLimit       int
	MaxPageButtons  int
	ScrollThreshold int
	DefaultSearch   string
	RequestTimeout  time.Duration
	FenceResponses  bool
	Infinite        bool
}

const (
	defaultConfigPath      = "~/.config/dex/config.toml"
	defaultScrollThreshold = 4
	defaultSearch          = "ditto"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:          pokeapi.DefaultAPIURL,
		ArtworkURL:      pokeapi.DefaultArtworkURL,
		PageSize:        catalog.DefaultPageSize,
		ListLimit:       catalog.DefaultListLimit,
		MaxPageButtons:  catalog.DefaultMaxButtons,
		ScrollThreshold: defaultScrollThreshold,
		DefaultSearch:   defaultSearch,
		FenceResponses:  true,
	}
}

// DefaultPath returns the unexpanded default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

type fileConfig struct {
	APIURL          string  `toml:"api_url"`
	ArtworkURL      string  `toml:"artwork_url"`
	PageSize        *int    `toml:"page_size"`
	BatchSize       *int    `toml:"batch_size"`
	ListLimit       *int    `toml:"list_limit"`
	MaxPageButtons  *int    `toml:"max_page_buttons"`
	ScrollThreshold *int    `toml:"scroll_threshold"`
	DefaultSearch   *string `toml:"default_search"`
	RequestTimeout  string  `toml:"request_timeout"`
	FenceResponses  *bool   `toml:"fence_responses"`
	Infinite        *bool   `toml:"infinite"`
}

// Load locates and parses the dex config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(raw.ArtworkURL); v != "" {
		cfg.ArtworkURL = v
	}
	if n, ok := firstPositive(raw.PageSize, raw.BatchSize); ok {
		cfg.PageSize = n
	}
	if n, ok := firstPositive(raw.ListLimit); ok {
		cfg.ListLimit = n
	}
	if n, ok := firstPositive(raw.MaxPageButtons); ok {
		cfg.MaxPageButtons = n
	}
	if raw.ScrollThreshold != nil && *raw.ScrollThreshold >= 0 {
		cfg.ScrollThreshold = *raw.ScrollThreshold
	}
	if raw.DefaultSearch != nil {
		cfg.DefaultSearch = strings.TrimSpace(*raw.DefaultSearch)
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("request_timeout must not be negative: %s", v)
		}
		cfg.RequestTimeout = d
	}
	if raw.FenceResponses != nil {
		cfg.FenceResponses = *raw.FenceResponses
	}
	if raw.Infinite != nil {
		cfg.Infinite = *raw.Infinite
	}

	return cfg, nil
}

// firstPositive returns the first set, positive value among candidates, which
// are listed in order of preference.
func firstPositive(candidates ...*int) (int, bool) {
	for _, c := range candidates {
		if c != nil && *c > 0 {
			return *c, true
		}
	}
	return 0, false
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

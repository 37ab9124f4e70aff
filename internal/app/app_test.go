package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/config"
	"github.com/five82/dex/internal/prefs"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestBuildUsesConfigAndPrefs(t *testing.T) {
	detectDark = func() bool { return true }
	t.Cleanup(func() { detectDark = nil })

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.toml", `
page_size = 7
default_search = "mew"
request_timeout = "5s"
`)
	prefsPath := filepath.Join(dir, "prefs.toml")
	require.NoError(t, prefs.Save(prefsPath, prefs.Prefs{Theme: prefs.ThemeLight}))

	got, err := build(context.Background(), Options{ConfigPath: cfgPath, PrefsPath: prefsPath})
	require.NoError(t, err)

	assert.Equal(t, "mew", got.DefaultSearch)
	assert.Equal(t, prefs.ThemeLight, got.ThemeName)
	assert.Equal(t, prefsPath, got.PrefsPath)
	assert.NotNil(t, got.Fetcher)
	require.NotNil(t, got.Controller)
	assert.Equal(t, 7, got.Controller.State().PageSize)
}

func TestBuildFallsBackToDetectedTheme(t *testing.T) {
	detectDark = func() bool { return false }
	t.Cleanup(func() { detectDark = nil })

	dir := t.TempDir()
	got, err := build(context.Background(), Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
	})
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeLight, got.ThemeName)
	assert.Equal(t, catalog.DefaultPageSize, got.Controller.State().PageSize)
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.toml", `request_timeout = "soon"`)

	_, err := build(context.Background(), Options{ConfigPath: cfgPath, PrefsPath: filepath.Join(dir, "prefs.toml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestApplyOverrides(t *testing.T) {
	base := config.Default()
	base.RequestTimeout = time.Second

	tests := []struct {
		name  string
		opts  Options
		check func(t *testing.T, cfg config.Config)
	}{
		{
			name: "empty options keep config",
			opts: Options{},
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, base, cfg)
			},
		},
		{
			name: "api url and page size",
			opts: Options{APIURL: " http://localhost:9000/api ", PageSize: 12},
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "http://localhost:9000/api", cfg.APIURL)
				assert.Equal(t, 12, cfg.PageSize)
			},
		},
		{
			name: "non-positive page size ignored",
			opts: Options{PageSize: -3},
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, base.PageSize, cfg.PageSize)
			},
		},
		{
			name: "search replaces default",
			opts: Options{Search: "pikachu"},
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "pikachu", cfg.DefaultSearch)
			},
		},
		{
			name: "no search wins",
			opts: Options{Search: "pikachu", NoSearch: true},
			check: func(t *testing.T, cfg config.Config) {
				assert.Empty(t, cfg.DefaultSearch)
			},
		},
		{
			name: "infinite",
			opts: Options{Infinite: true},
			check: func(t *testing.T, cfg config.Config) {
				assert.True(t, cfg.Infinite)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, applyOverrides(base, tt.opts))
		})
	}
}

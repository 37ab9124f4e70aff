package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokeapi"
	"github.com/five82/dex/internal/prefs"
)

type fakeFetcher struct {
	entries map[string]*pokeapi.Entry
	list    []pokeapi.NamedResource
	listErr error
}

func (f *fakeFetcher) FetchEntry(_ context.Context, term string) (*pokeapi.Entry, error) {
	if e, ok := f.entries[term]; ok {
		return e, nil
	}
	return nil, &pokeapi.StatusError{Path: "/pokemon/" + term, Code: 404}
}

func (f *fakeFetcher) FetchList(_ context.Context, _, _ int) ([]pokeapi.NamedResource, error) {
	return f.list, f.listErr
}

func newFakeFetcher(n int) *fakeFetcher {
	f := &fakeFetcher{entries: map[string]*pokeapi.Entry{
		"ditto": {
			ID:        132,
			Name:      "ditto",
			Types:     []string{"normal"},
			Abilities: []string{"limber", "imposter"},
			Stats:     []pokeapi.Stat{{Name: "hp", BaseValue: 48}, {Name: "speed", BaseValue: 48}},
		},
		"mew":   {ID: 151, Name: "mew", Types: []string{"psychic"}},
	}}
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("mon%d", i)
		f.list = append(f.list, pokeapi.NamedResource{Name: name, URL: fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", i)})
		f.entries[name] = &pokeapi.Entry{
			ID:    i,
			Name:  name,
			Stats: []pokeapi.Stat{{Name: "hp", BaseValue: 45}},
			Moves: []string{"tackle", "growl"},
		}
	}
	return f
}

func newTestModel(t *testing.T, f *fakeFetcher, search string) Model {
	t.Helper()
	ctrl := catalog.New(catalog.Options{PageSize: 5, ScrollThreshold: 4, FenceResponses: true})
	m := New(Options{
		Fetcher:       f,
		Controller:    ctrl,
		ThemeName:     "dark",
		PrefsPath:     filepath.Join(t.TempDir(), "prefs.toml"),
		DefaultSearch: search,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

// run executes cmd and every command it produces, feeding fetch results back
// into Update. Other messages (spinner ticks, quit) are dropped.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case resolvedMsg:
			next, more := m.Update(msg)
			m = next.(Model)
			queue = append(queue, more)
		}
	}
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, cmd := m.Update(msg)
		m = next.(Model)
		if m.input == inputNone {
			m = run(t, m, cmd)
		}
	}
	return m
}

func TestStartupSearch(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(0), "ditto")
	m = run(t, m, m.Init())

	st := m.ctrl.State()
	require.Equal(t, catalog.StatusLoaded, st.Single.Status)
	assert.Equal(t, "ditto", st.Result.Name)
	view := m.View()
	assert.Contains(t, view, "#132 Ditto")
	assert.Contains(t, view, "HP 48  SPE 48")
}

func TestNoStartupSearchWhenDisabled(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(0), "")
	assert.Nil(t, m.Init())
	assert.Equal(t, catalog.StatusIdle, m.ctrl.State().Single.Status)
}

func TestPagedBrowsing(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(12), "")
	m = press(t, m, "a")

	st := m.ctrl.State()
	require.Equal(t, catalog.StatusLoaded, st.List.Status)
	assert.Equal(t, catalog.ModeReplace, st.Paging.Mode)
	assert.Len(t, st.Grid, 5)
	assert.Contains(t, m.View(), "Showing 1-5 of 12")

	m = press(t, m, "]")
	assert.Contains(t, m.View(), "Showing 6-10 of 12")
	m = press(t, m, "G")
	assert.Equal(t, 2, m.ctrl.State().Paging.Page)
	m = press(t, m, "[", "g")
	assert.Equal(t, 0, m.ctrl.State().Paging.Page)
}

func TestSearchInputAndInvalidTerm(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(0), "")

	m = press(t, m, "/", "m", "e", "w", "enter")
	st := m.ctrl.State()
	require.Equal(t, catalog.StatusLoaded, st.Single.Status)
	assert.Equal(t, 151, st.Result.ID)
	assert.Equal(t, inputNone, m.input)

	m = press(t, m, "/", "enter")
	assert.Equal(t, catalog.StatusError, m.ctrl.State().Single.Status)
	assert.Contains(t, m.View(), "Enter a valid name or id.")

	m = press(t, m, "/", "x", "enter")
	assert.Contains(t, m.View(), "No matching entry found.")
}

func TestSearchKeepsGrid(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(12), "")
	m = press(t, m, "a", "]")
	before := m.ctrl.State().Grid

	m = press(t, m, "/", "m", "e", "w", "enter")
	st := m.ctrl.State()
	assert.Equal(t, before, st.Grid)
	assert.Equal(t, catalog.FocusSingleResult, st.Focus)
}

func TestDetailOverlayOpensAndCloses(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(12), "")
	m = press(t, m, "a", "enter")

	st := m.ctrl.State()
	require.True(t, st.DetailOpen)
	require.Equal(t, catalog.StatusLoaded, st.Detail.Status)
	view := m.View()
	assert.Contains(t, view, "#1 Mon1")
	assert.Contains(t, view, "Base stats")

	m = press(t, m, "esc")
	assert.False(t, m.ctrl.State().DetailOpen)

	m = press(t, m, "tab", "enter")
	require.True(t, m.ctrl.State().DetailOpen)
	assert.Equal(t, "mon2", m.ctrl.State().DetailTerm)

	next, cmd := m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = run(t, next.(Model), cmd)
	assert.False(t, m.ctrl.State().DetailOpen, "backdrop click closes the overlay")
}

func TestMovingSelectionFocusesGridAfterSearch(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(12), "")
	m = press(t, m, "a", "/", "m", "e", "w", "enter")
	require.Equal(t, catalog.FocusSingleResult, m.ctrl.State().Focus)

	m = press(t, m, "tab", "tab")
	assert.Equal(t, catalog.FocusPagedList, m.ctrl.State().Focus)
	m = press(t, m, "enter")
	assert.Equal(t, "mon3", m.ctrl.State().DetailTerm)
}

func TestClickingCardFocusesGrid(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(12), "")
	m = press(t, m, "a", "/", "m", "e", "w", "enter")
	st := m.ctrl.State()

	// Second card of the first grid row.
	x := cardWidth + cardGap + 1
	y := m.gridTop(st) + 1
	next, cmd := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = run(t, next.(Model), cmd)

	st = m.ctrl.State()
	assert.Equal(t, catalog.FocusPagedList, st.Focus)
	assert.Equal(t, "mon2", st.DetailTerm)
}

func TestInfiniteBadgeOnlyInBatchMode(t *testing.T) {
	f := newFakeFetcher(12)
	m := New(Options{
		Fetcher:    f,
		Controller: catalog.New(catalog.Options{PageSize: 5, ScrollThreshold: 4, Infinite: true, FenceResponses: true}),
		ThemeName:  "dark",
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	m = press(t, m, "a")
	require.True(t, m.ctrl.State().Infinite)
	assert.NotContains(t, m.renderHeader(m.ctrl.State()), "infinite")

	m = press(t, m, "b")
	assert.Contains(t, m.renderHeader(m.ctrl.State()), "infinite")
}

func TestEnterOpensSearchResultWhenFocused(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(0), "ditto")
	m = run(t, m, m.Init())
	m = press(t, m, "enter")
	assert.Equal(t, "ditto", m.ctrl.State().DetailTerm)
}

func TestInfiniteToggle(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(12), "")
	m = press(t, m, "a", "i")
	st := m.ctrl.State()
	assert.False(t, st.Infinite)
	assert.NotEmpty(t, m.notice)

	m = press(t, m, "b")
	require.Equal(t, catalog.ModeAppend, m.ctrl.State().Paging.Mode)
	m = press(t, m, "i")
	st = m.ctrl.State()
	assert.True(t, st.Infinite)
	assert.True(t, st.Watching)
	assert.Len(t, st.Grid, 10, "a short grid pulls the next batch straight away")

	m = press(t, m, "i")
	assert.False(t, m.ctrl.State().Watching)
}

func TestLoadMoreInBatchMode(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(12), "")
	m = press(t, m, "b", "m", "m", "m")
	st := m.ctrl.State()
	assert.Len(t, st.Grid, 12)
	assert.False(t, st.HasMore)
	assert.Contains(t, m.View(), "end of list")
}

func TestPageSizeInput(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(12), "")
	m = press(t, m, "a", "s", "backspace", "4", "enter")
	st := m.ctrl.State()
	assert.Equal(t, 4, st.PageSize)
	assert.Equal(t, 3, st.Paging.TotalPages)

	m = press(t, m, "s", "backspace", "x", "enter")
	assert.Equal(t, 4, m.ctrl.State().PageSize, "invalid size is ignored")
}

func TestListErrorIsShownInline(t *testing.T) {
	f := newFakeFetcher(0)
	m := newTestModel(t, f, "")
	m = press(t, m, "a")
	assert.Contains(t, m.View(), "No entries found.")

	f.listErr = fmt.Errorf("dial tcp: connection refused")
	m = press(t, m, "a")
	assert.Contains(t, m.View(), "connection refused")
}

func TestThemeToggleSavesPreference(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(0), "")
	m = press(t, m, "T")
	assert.Equal(t, "light", m.theme.Name)

	p, err := prefs.Load(m.prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "light", p.Theme)
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, newFakeFetcher(0), "")
	m = press(t, m, "?")
	assert.True(t, strings.Contains(m.View(), "Keyboard Shortcuts"))
	m = press(t, m, "x")
	assert.False(t, m.showHelp)
}

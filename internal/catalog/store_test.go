package catalog

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dex/internal/pokeapi"
)

func rawItems(n int) []RawItem {
	raw := make([]RawItem, n)
	for i := range raw {
		raw[i] = RawItem{ID: i + 1, Name: "Entry" + strconv.Itoa(i+1)}
	}
	return raw
}

func testArtwork(id int) string {
	return "art/" + strconv.Itoa(id) + ".png"
}

func TestStoreLoadNormalizesAndKeepsOrder(t *testing.T) {
	s := NewStore(5)
	err := s.Load([]RawItem{
		{ID: 25, Name: "  Pikachu "},
		{ID: 0, Name: "MissingNo"},
		{ID: 7, Name: "squirtle", ImageURL: "custom.png"},
	}, testArtwork)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	items := s.Items()
	assert.Equal(t, Item{ID: 25, Name: "pikachu", ImageURL: "art/25.png"}, items[0])
	assert.Equal(t, Item{ID: 0, Name: "missingno"}, items[1])
	assert.Equal(t, Item{ID: 7, Name: "squirtle", ImageURL: "custom.png"}, items[2])
}

func TestStoreLoadEmpty(t *testing.T) {
	s := NewStore(5)
	require.NoError(t, s.Load(rawItems(3), nil))

	err := s.Load(nil, nil)
	assert.True(t, errors.Is(err, ErrEmptyList))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.TotalPages())
}

func TestStoreSetPageSizeKeepsLastValid(t *testing.T) {
	s := NewStore(0)
	assert.Equal(t, DefaultPageSize, s.PageSize())

	cases := []struct {
		raw  string
		ok   bool
		want int
	}{
		{"20", true, 20},
		{"abc", false, 20},
		{"0", false, 20},
		{"-4", false, 20},
		{"", false, 20},
		{" 7 ", true, 7},
		{"3.5", false, 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, s.SetPageSize(tc.raw), "SetPageSize(%q)", tc.raw)
		assert.Equal(t, tc.want, s.PageSize(), "after SetPageSize(%q)", tc.raw)
	}
}

func TestStoreTotalPages(t *testing.T) {
	s := NewStore(5)
	require.NoError(t, s.Load(rawItems(12), nil))
	assert.Equal(t, 3, s.TotalPages())

	s.SetPageSizeInt(12)
	assert.Equal(t, 1, s.TotalPages())

	s.SetPageSizeInt(50)
	require.NoError(t, s.Load(rawItems(500), nil))
	assert.Equal(t, 10, s.TotalPages())

	s.Reset()
	assert.Equal(t, 0, s.TotalPages())
	assert.Equal(t, 50, s.PageSize())
}

func TestRawItemsFromResourcesToleratesMissingIDs(t *testing.T) {
	raw := RawItemsFromResources([]pokeapi.NamedResource{
		{Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon/1/"},
		{Name: "oddity", URL: "https://pokeapi.co/api/v2/pokemon/abc/"},
	})
	require.Len(t, raw, 2)
	assert.Equal(t, RawItem{ID: 1, Name: "bulbasaur"}, raw[0])
	assert.Equal(t, RawItem{ID: 0, Name: "oddity"}, raw[1])
	assert.Nil(t, RawItemsFromResources(nil))
}

func TestItemLabelAndKey(t *testing.T) {
	assert.Equal(t, "#25 pikachu", Item{ID: 25, Name: "pikachu"}.Label())
	assert.Equal(t, "#? oddity", Item{Name: "oddity"}.Label())
	assert.Equal(t, "pikachu", Item{ID: 25, Name: "pikachu"}.Key())
	assert.Equal(t, "25", Item{ID: 25}.Key())
	assert.Equal(t, "", Item{}.Key())
}

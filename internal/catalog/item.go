package catalog

import (
	"strconv"
	"strings"

	"github.com/five82/dex/internal/pokeapi"
)

// Item is one normalized entry of the loaded list.
type Item struct {
	ID       int // 0 when the list url carried no id
	Name     string
	ImageURL string
}

// Label is the short "#id name" form used on cards.
func (i Item) Label() string {
	if i.ID <= 0 {
		return "#? " + i.Name
	}
	return "#" + strconv.Itoa(i.ID) + " " + i.Name
}

// Key returns the lookup term for the item's detail: the name, or the id when
// the name is missing.
func (i Item) Key() string {
	if i.Name != "" {
		return i.Name
	}
	if i.ID > 0 {
		return strconv.Itoa(i.ID)
	}
	return ""
}

// RawItem is one element of the fetched list before normalization.
// An empty ImageURL means the image is derived from ID.
type RawItem struct {
	ID       int
	Name     string
	ImageURL string
}

// ArtworkFunc derives an image url from an id.
type ArtworkFunc func(id int) string

// RawItemsFromResources converts the API's list results, keeping entries whose
// url has no parsable id.
func RawItemsFromResources(results []pokeapi.NamedResource) []RawItem {
	if len(results) == 0 {
		return nil
	}
	raw := make([]RawItem, 0, len(results))
	for _, r := range results {
		id, _ := r.ID()
		raw = append(raw, RawItem{ID: id, Name: r.Name})
	}
	return raw
}

func normalize(raw RawItem, artwork ArtworkFunc) Item {
	item := Item{
		Name:     strings.ToLower(strings.TrimSpace(raw.Name)),
		ImageURL: strings.TrimSpace(raw.ImageURL),
	}
	if raw.ID > 0 {
		item.ID = raw.ID
	}
	if item.ImageURL == "" && item.ID > 0 && artwork != nil {
		item.ImageURL = artwork(item.ID)
	}
	return item
}

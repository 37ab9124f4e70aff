package pokeapi

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultArtworkURL is the root of the official artwork sprites, keyed by id.
const DefaultArtworkURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork"

// ListResponse mirrors GET /pokemon?limit=&offset=.
type ListResponse struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// NamedResource is a {name, url} reference used throughout the API.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var entryIDPattern = regexp.MustCompile(`/pokemon/(\d+)/?$`)

// ID extracts the numeric id embedded in the resource url.
func (r NamedResource) ID() (int, bool) {
	m := entryIDPattern.FindStringSubmatch(strings.TrimSpace(r.URL))
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// EntryResponse mirrors GET /pokemon/{nameOrId}, trimmed to the fields dex shows.
type EntryResponse struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	BaseExperience int           `json:"base_experience"`
	Sprites        Sprites       `json:"sprites"`
	Types          []TypeSlot    `json:"types"`
	Abilities      []AbilitySlot `json:"abilities"`
	Stats          []StatSlot    `json:"stats"`
	Moves          []MoveSlot    `json:"moves"`
}

// Sprites holds image urls; Other is keyed by artwork family ("official-artwork").
type Sprites struct {
	FrontDefault string                  `json:"front_default"`
	Other        map[string]SpriteFamily `json:"other"`
}

// SpriteFamily is one nested sprite set.
type SpriteFamily struct {
	FrontDefault string `json:"front_default"`
}

// TypeSlot is one element of the types array.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// AbilitySlot is one element of the abilities array.
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
}

// StatSlot is one element of the stats array.
type StatSlot struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// MoveSlot is one element of the moves array.
type MoveSlot struct {
	Move NamedResource `json:"move"`
}

// Stat is a named base value.
type Stat struct {
	Name      string
	BaseValue int
}

// Entry is the transport-independent detail record for one catalog entry.
type Entry struct {
	ID             int
	Name           string
	ImageURL       string
	Types          []string
	Abilities      []string
	Stats          []Stat
	Moves          []string
	Height         int
	Weight         int
	BaseExperience int
}

// Entry flattens the response into an Entry. The official artwork wins over
// the default sprite when both are present.
func (r EntryResponse) Entry() Entry {
	e := Entry{
		ID:             r.ID,
		Name:           strings.ToLower(strings.TrimSpace(r.Name)),
		ImageURL:       r.Sprites.imageURL(),
		Height:         r.Height,
		Weight:         r.Weight,
		BaseExperience: r.BaseExperience,
	}
	for _, t := range r.Types {
		e.Types = append(e.Types, t.Type.Name)
	}
	for _, a := range r.Abilities {
		e.Abilities = append(e.Abilities, a.Ability.Name)
	}
	for _, s := range r.Stats {
		e.Stats = append(e.Stats, Stat{Name: s.Stat.Name, BaseValue: s.BaseStat})
	}
	for _, m := range r.Moves {
		e.Moves = append(e.Moves, m.Move.Name)
	}
	return e
}

// SampleMoves returns at most n moves in API order.
func (e Entry) SampleMoves(n int) []string {
	if n <= 0 || len(e.Moves) <= n {
		return e.Moves
	}
	return e.Moves[:n]
}

func (s Sprites) imageURL() string {
	if art, ok := s.Other["official-artwork"]; ok && strings.TrimSpace(art.FrontDefault) != "" {
		return art.FrontDefault
	}
	return s.FrontDefault
}

// ArtworkURL derives the official artwork url for an id under base.
// An empty base uses DefaultArtworkURL; a non-positive id yields "".
func ArtworkURL(base string, id int) string {
	if id <= 0 {
		return ""
	}
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultArtworkURL
	}
	return base + "/" + strconv.Itoa(id) + ".png"
}

package pokeapi

import "testing"

func TestNamedResourceID(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		want   int
		wantOK bool
	}{
		{"trailing slash", "https://pokeapi.co/api/v2/pokemon/25/", 25, true},
		{"no trailing slash", "https://pokeapi.co/api/v2/pokemon/10034", 10034, true},
		{"not an entry url", "https://pokeapi.co/api/v2/type/3/", 0, false},
		{"empty", "", 0, false},
		{"zero id", "https://pokeapi.co/api/v2/pokemon/0/", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NamedResource{URL: tc.url}.ID()
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("ID(%q) = (%d, %v), want (%d, %v)", tc.url, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestArtworkURL(t *testing.T) {
	if got := ArtworkURL("", 7); got != DefaultArtworkURL+"/7.png" {
		t.Fatalf("ArtworkURL default = %q", got)
	}
	if got := ArtworkURL("https://cdn.example/art/", 7); got != "https://cdn.example/art/7.png" {
		t.Fatalf("ArtworkURL custom = %q", got)
	}
	if got := ArtworkURL("https://cdn.example/art", 0); got != "" {
		t.Fatalf("ArtworkURL(0) = %q, want empty", got)
	}
}

func TestEntryFallsBackToDefaultSprite(t *testing.T) {
	r := EntryResponse{ID: 1, Name: "Bulbasaur", Sprites: Sprites{FrontDefault: "front.png"}}
	if got := r.Entry().ImageURL; got != "front.png" {
		t.Fatalf("ImageURL = %q, want front.png", got)
	}
	r.Sprites.Other = map[string]SpriteFamily{"official-artwork": {FrontDefault: "  "}}
	if got := r.Entry().ImageURL; got != "front.png" {
		t.Fatalf("ImageURL with blank artwork = %q, want front.png", got)
	}
}

func TestSampleMoves(t *testing.T) {
	e := Entry{Moves: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}}
	if got := e.SampleMoves(8); len(got) != 8 || got[7] != "h" {
		t.Fatalf("SampleMoves(8) = %v", got)
	}
	if got := e.SampleMoves(0); len(got) != 10 {
		t.Fatalf("SampleMoves(0) = %v, want all", got)
	}
}

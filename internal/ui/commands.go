package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokeapi"
)

// resolvedMsg carries a completed fetch back into Update.
type resolvedMsg struct {
	intent catalog.Intent
}

var errNoFetcher = errors.New("no api client configured")

// fetchCmd runs one controller request off the event loop.
func fetchCmd(ctx context.Context, f pokeapi.Fetcher, r catalog.Request) tea.Cmd {
	return func() tea.Msg {
		switch r.Kind {
		case catalog.RequestEntry:
			entry, err := fetchEntry(ctx, f, r.Term)
			return resolvedMsg{catalog.SearchResolved{Seq: r.Seq, Entry: entry, Err: err}}

		case catalog.RequestDetail:
			entry, err := fetchEntry(ctx, f, r.Term)
			return resolvedMsg{catalog.DetailResolved{Seq: r.Seq, Entry: entry, Err: err}}

		case catalog.RequestList:
			if f == nil {
				return resolvedMsg{catalog.ListResolved{Seq: r.Seq, Err: errNoFetcher}}
			}
			results, err := f.FetchList(ctx, r.Limit, r.Offset)
			return resolvedMsg{catalog.ListResolved{Seq: r.Seq, Items: catalog.RawItemsFromResources(results), Err: err}}
		}
		return nil
	}
}

func fetchEntry(ctx context.Context, f pokeapi.Fetcher, term string) (*pokeapi.Entry, error) {
	if f == nil {
		return nil, errNoFetcher
	}
	return f.FetchEntry(ctx, term)
}

// Package pokeapi provides an HTTP client for the public creature-data API.
//
// # Overview
//
// This package defines the read-only client dex uses to search single entries
// and to fetch the full entry index. It handles HTTP communication, JSON
// decoding, and flattening of the nested API payloads into the small Entry
// record the UI renders.
//
// # Architecture
//
//   - client.go: HTTP client, options, and request/response handling
//   - types.go: Structures mirroring the API schema plus the flattened Entry
//
// # Client Usage
//
//	client, err := pokeapi.NewClient("", pokeapi.WithTimeout(5*time.Second))
//	if err != nil {
//		return err
//	}
//
//	entry, err := client.FetchEntry(ctx, "ditto")
//	list, err := client.FetchList(ctx, 100000, 0)
//
// # API Endpoints
//
//   - GET /pokemon/{nameOrId}: one entry with sprites, types, abilities, stats and moves
//   - GET /pokemon?limit=L&offset=O: {results: [{name, url}]}
//
// List results carry no id of their own; NamedResource.ID extracts it from the
// trailing /pokemon/{digits}/ segment of the url. Results without a parsable id
// are still returned and must be tolerated by callers.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and User-Agent: dex/0.1
//   - Have no timeout unless WithTimeout is given
//
// # Error Handling
//
// Any non-2xx status becomes a *StatusError; transport and decode failures are
// wrapped with fmt.Errorf. Nothing is retried: a failed fetch is reported once
// and the user re-triggers the action.
package pokeapi

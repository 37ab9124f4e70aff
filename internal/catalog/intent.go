package catalog

import "github.com/five82/dex/internal/pokeapi"

// Intent is a discrete user action or fetch completion consumed by
// Controller.Dispatch.
type Intent interface {
	isIntent()
}

// Search looks up a single entry by name or id.
type Search struct{ Term string }

// LoadAll fetches the full list and shows it in Mode.
type LoadAll struct{ Mode Mode }

// NextPage moves to the next page (Replace) or renders the next batch (Append).
type NextPage struct{}

// PrevPage moves to the previous page. Replace mode only.
type PrevPage struct{}

// FirstPage returns to the first page, or restarts batching in Append mode.
type FirstPage struct{}

// LastPage jumps to the last page. Replace mode only.
type LastPage struct{}

// GoToPage jumps to a 0-based page index. Replace mode only.
type GoToPage struct{ Index int }

// LoadMore renders the next batch. Append mode only.
type LoadMore struct{}

// SetPageSize changes the page size; unparsable or non-positive values are ignored.
type SetPageSize struct{ Raw string }

// ToggleInfinite turns infinite scrolling on or off.
type ToggleInfinite struct{ Enabled bool }

// Scrolled reports the grid's scroll position.
type Scrolled struct{ Metrics Metrics }

// OpenDetail opens the detail overlay for an entry.
type OpenDetail struct{ NameOrID string }

// FocusList hands focus back to the grid, e.g. when the selection moves.
type FocusList struct{}

// CloseDetail dismisses the detail overlay.
type CloseDetail struct{}

// SearchResolved completes a Search request.
type SearchResolved struct {
	Seq   uint64
	Entry *pokeapi.Entry
	Err   error
}

// ListResolved completes a LoadAll request.
type ListResolved struct {
	Seq   uint64
	Items []RawItem
	Err   error
}

// DetailResolved completes an OpenDetail request.
type DetailResolved struct {
	Seq   uint64
	Entry *pokeapi.Entry
	Err   error
}

func (Search) isIntent()         {}
func (LoadAll) isIntent()        {}
func (NextPage) isIntent()       {}
func (PrevPage) isIntent()       {}
func (FirstPage) isIntent()      {}
func (LastPage) isIntent()       {}
func (GoToPage) isIntent()       {}
func (LoadMore) isIntent()       {}
func (SetPageSize) isIntent()    {}
func (ToggleInfinite) isIntent() {}
func (Scrolled) isIntent()       {}
func (OpenDetail) isIntent()     {}
func (FocusList) isIntent()      {}
func (CloseDetail) isIntent()    {}
func (SearchResolved) isIntent() {}
func (ListResolved) isIntent()   {}
func (DetailResolved) isIntent() {}

// RequestKind selects the fetch a Request asks for.
type RequestKind int

const (
	RequestEntry RequestKind = iota
	RequestList
	RequestDetail
)

func (k RequestKind) String() string {
	switch k {
	case RequestEntry:
		return "entry"
	case RequestList:
		return "list"
	case RequestDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Request is a fetch the caller must perform and report back with the
// matching *Resolved intent carrying the same Seq.
type Request struct {
	Kind   RequestKind
	Seq    uint64
	Term   string // entry and detail requests
	Limit  int    // list requests
	Offset int
}

// Package catalog holds the view state of the catalog browser: the loaded
// entry list, its pagination, the page-button window, the infinite-scroll
// subscription and the three fetch regions (search result, list grid and
// detail overlay).
//
// # Dispatch
//
// Controller is the single owner of that state. The UI turns every key press,
// scroll event and fetch completion into an Intent and calls Dispatch, which
// mutates state and returns the Requests to start. Fetching is the caller's
// job; a completed fetch comes back as SearchResolved, ListResolved or
// DetailResolved carrying the Request's Seq.
//
//	reqs := ctrl.Dispatch(catalog.LoadAll{Mode: catalog.ModeReplace})
//	// ... later, from the fetch result:
//	ctrl.Dispatch(catalog.ListResolved{Seq: reqs[0].Seq, Items: raw})
//	view := ctrl.State()
//
// # Modes
//
// ModeAppend renders the list in cumulative batches (explicit "load more" or
// the scroll watcher). ModeReplace shows one page at a time with a sliding
// window of page buttons from ComputeWindow. Entering either mode resets the
// cursors and detaches the scroll watcher; the watcher is only ever attached in
// ModeAppend.
//
// # Ordering
//
// With Options.FenceResponses set, each region remembers the Seq of its latest
// request and completions carrying any other Seq are dropped. Without it the
// last completion to arrive wins, even if it answers an older request.
package catalog

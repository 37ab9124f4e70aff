// Package ui provides the terminal user interface for dex.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. All browsing state lives in a
// catalog.Controller; the Model only owns presentation state (window size,
// selected card, text inputs, viewports, theme). Every key press or mouse
// event becomes a catalog intent, and every fetch the controller asks for
// runs as a tea.Cmd whose result is dispatched back as a *Resolved intent.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key and mouse handling, Run
//   - commands.go: fetch commands that call the API off the event loop
//   - input.go: search and page-size text inputs
//   - view.go: header, search result panel, grid area and footer
//   - grid.go: card grid layout
//   - pager.go: page-button window and batch progress row
//   - detail.go: detail overlay with stats and moves
//   - help.go: keyboard shortcut overlay
//   - theme.go, keys.go, layout.go: styling, key bindings, dimensions
//
// # Regions
//
// The search result, the grid and the detail overlay are rendered from
// independent controller regions. A failed search never clears the grid and
// a failed list load never clears the search result.
//
// # Key Bindings
//
//   - /: Search by name or id
//   - a: Load the full list, one page at a time
//   - b: Load the full list in batches
//   - m: Render the next batch
//   - ] [ g G: Next, previous, first and last page
//   - s: Set page size
//   - i: Toggle infinite scroll (batch mode)
//   - enter: Open details for the focused entry
//   - esc: Close details or cancel input
//   - T: Toggle light/dark theme
//   - ?: Help
//   - q or Ctrl+C: Exit
package ui

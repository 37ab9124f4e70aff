package catalog

import "fmt"

// RenderBatch returns items[cursor:cursor+pageSize] clamped to the list and
// the cursor just past the returned slice. A cursor at or beyond the end
// yields an empty slice and an unchanged cursor.
func RenderBatch(items []Item, cursor, pageSize int) ([]Item, int) {
	if cursor < 0 {
		cursor = 0
	}
	if pageSize < 1 || cursor >= len(items) {
		return nil, cursor
	}
	end := cursor + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[cursor:end], end
}

// Grid is the many-items region. It is independent of the single search result.
type Grid struct {
	items []Item
}

// Append adds slice after the already rendered items.
func (g *Grid) Append(slice []Item) {
	g.items = append(g.items, slice...)
}

// Replace clears the grid to exactly slice.
func (g *Grid) Replace(slice []Item) {
	g.items = append(g.items[:0:0], slice...)
}

// Reset empties the grid.
func (g *Grid) Reset() {
	g.items = nil
}

// Len returns the number of rendered items.
func (g *Grid) Len() int {
	return len(g.items)
}

// Items returns a copy of the rendered items.
func (g *Grid) Items() []Item {
	if len(g.items) == 0 {
		return nil
	}
	out := make([]Item, len(g.items))
	copy(out, g.items)
	return out
}

// ProgressText describes how much of the list is on screen.
//
// Append mode: "Showing N of T". Replace mode: "Showing a-b of T" with a
// 1-based inclusive range.
func ProgressText(p PagingState, pageSize, total int) string {
	if total <= 0 {
		return ""
	}
	if p.Mode == ModeReplace {
		start := p.Page*pageSize + 1
		end := min((p.Page+1)*pageSize, total)
		return fmt.Sprintf("Showing %d-%d of %d", start, end, total)
	}
	return fmt.Sprintf("Showing %d of %d", min(p.Cursor, total), total)
}

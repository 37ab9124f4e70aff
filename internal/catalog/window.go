package catalog

// DefaultMaxButtons is the page-number control budget.
const DefaultMaxButtons = 5

// Window describes which page controls to expose around the current page.
type Window struct {
	// Buttons are the page indices (0-based) of the sliding window, in order.
	Buttons []int

	// ShowFirst is set when the window starts after page 0; the UI then shows
	// an explicit control for the first page plus a leading ellipsis.
	ShowFirst bool
	// LeadingGap is set when at least one page sits between the first page
	// and the window.
	LeadingGap bool

	ShowLast    bool
	TrailingGap bool

	LeftEnabled  bool
	RightEnabled bool
}

// ComputeWindow is a pure function of its arguments.
func ComputeWindow(page, totalPages, maxButtons int) Window {
	if totalPages <= 0 {
		return Window{}
	}
	if maxButtons < 1 {
		maxButtons = DefaultMaxButtons
	}
	page = clamp(page, 0, totalPages-1)

	w := Window{
		LeftEnabled:  page > 0,
		RightEnabled: page < totalPages-1,
	}

	if totalPages <= maxButtons {
		w.Buttons = pageRange(0, totalPages-1)
		return w
	}

	half := maxButtons / 2
	start := page - half
	end := start + maxButtons - 1
	if start < 0 {
		start = 0
		end = maxButtons - 1
	}
	if end > totalPages-1 {
		end = totalPages - 1
		start = end - maxButtons + 1
	}

	w.Buttons = pageRange(start, end)
	w.ShowFirst = start > 0
	w.LeadingGap = start > 1
	w.ShowLast = end < totalPages-1
	w.TrailingGap = end < totalPages-2
	return w
}

func pageRange(start, end int) []int {
	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

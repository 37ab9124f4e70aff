package ui

// Card geometry. A card is cardInnerWidth columns of text inside a rounded
// border with one column of padding on each side.
const (
	cardInnerWidth = 18
	cardWidth      = cardInnerWidth + 4
	cardHeight     = 4 // two text lines plus top and bottom border
	cardGap        = 1
)

// Chrome heights around the grid.
const (
	headerHeight = 1
	inputHeight  = 1
	pagerHeight  = 1
	footerHeight = 1

	// resultHeight is the single search result panel including its border.
	resultHeight = 6
)

// Detail overlay limits.
const (
	detailModalWidth  = 64
	detailMaxMoves    = 8
	detailStatBarSize = 24
	detailStatMax     = 255
)

// wheelStep is how many lines one mouse wheel notch scrolls the grid.
const wheelStep = 3

// compactPagerWidth is the width below which the page window collapses to
// a "page x/y" indicator.
const compactPagerWidth = 60

package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dex/internal/catalog"
)

// gridColumns is how many cards fit across width.
func gridColumns(width int) int {
	cols := (width + cardGap) / (cardWidth + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// renderGrid lays items out in rows of cols cards. Every row is exactly
// cardHeight lines so a line offset maps back to a card row.
func renderGrid(items []catalog.Item, selected, cols int, styles Styles) string {
	if len(items) == 0 {
		return ""
	}
	if cols < 1 {
		cols = 1
	}
	gap := strings.Repeat(" ", cardGap)
	rows := make([]string, 0, (len(items)+cols-1)/cols)
	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))
		cards := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, gap)
			}
			cards = append(cards, renderCard(items[i], i == selected, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func renderCard(it catalog.Item, selected bool, styles Styles) string {
	style := styles.Card
	if selected {
		style = styles.CardSelected
	}

	name := titleCase(it.Name)
	if name == "" {
		name = "Unknown"
	}
	id := ternary(it.ID > 0, "#"+strconv.Itoa(it.ID), "#?")
	art := ternary(it.ImageURL != "", "artwork", "no image")

	nameStyle := styles.Text.Bold(selected)
	line1 := nameStyle.Render(truncate(name, cardInnerWidth))
	line2 := styles.FaintText.Render(padRight(id, 7)) +
		styles.MutedText.Render(truncate(art, cardInnerWidth-7))

	return style.Width(cardInnerWidth + 2).Render(line1 + "\n" + line2)
}

package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dex/internal/catalog"
)

type tokenKind int

const (
	tokenArrow tokenKind = iota
	tokenArrowDisabled
	tokenPage
	tokenCurrent
	tokenGap
)

// pagerToken is one control of the page-button row.
type pagerToken struct {
	label string
	kind  tokenKind
}

// windowTokens lays out a Window as controls: arrows, the explicit first and
// last page, gap markers and the sliding buttons. Labels are 1-based.
func windowTokens(w catalog.Window, page, totalPages int) []pagerToken {
	if totalPages <= 0 {
		return nil
	}
	arrow := func(label string, enabled bool) pagerToken {
		if enabled {
			return pagerToken{label, tokenArrow}
		}
		return pagerToken{label, tokenArrowDisabled}
	}
	button := func(p int) pagerToken {
		if p == page {
			return pagerToken{strconv.Itoa(p + 1), tokenCurrent}
		}
		return pagerToken{strconv.Itoa(p + 1), tokenPage}
	}

	tokens := []pagerToken{arrow("‹", w.LeftEnabled)}
	if w.ShowFirst {
		tokens = append(tokens, button(0))
		if w.LeadingGap {
			tokens = append(tokens, pagerToken{"…", tokenGap})
		}
	}
	for _, b := range w.Buttons {
		tokens = append(tokens, button(b))
	}
	if w.ShowLast {
		if w.TrailingGap {
			tokens = append(tokens, pagerToken{"…", tokenGap})
		}
		tokens = append(tokens, button(totalPages-1))
	}
	return append(tokens, arrow("›", w.RightEnabled))
}

func renderTokens(tokens []pagerToken, styles Styles) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		switch t.kind {
		case tokenCurrent:
			parts = append(parts, styles.PageCurrent.Render(t.label))
		case tokenPage:
			parts = append(parts, styles.PageButton.Render(t.label))
		case tokenArrow:
			parts = append(parts, styles.AccentText.Render(t.label))
		default:
			parts = append(parts, styles.FaintText.Render(t.label))
		}
	}
	return strings.Join(parts, " ")
}

// renderPager renders the control row under the grid. Replace mode shows the
// page-button window, collapsing to a paginator when it does not fit; Append
// mode shows progress and how to get the next batch.
func renderPager(st catalog.ViewState, pg paginator.Model, styles Styles, width int) string {
	if st.Total == 0 {
		return ""
	}
	progress := styles.MutedText.Render(st.Progress)

	if st.Paging.Mode == catalog.ModeAppend {
		hint := "end of list"
		switch {
		case st.HasMore && st.Watching:
			hint = "scroll for more"
		case st.HasMore:
			hint = "m: load more"
		}
		return progress + "  " + styles.FaintText.Render(hint)
	}

	line := renderTokens(windowTokens(st.Window, st.Paging.Page, st.Paging.TotalPages), styles) + "  " + progress
	if width >= compactPagerWidth && lipgloss.Width(line) <= width {
		return line
	}

	pg.Type = paginator.Arabic
	pg.TotalPages = st.Paging.TotalPages
	pg.Page = st.Paging.Page
	left := renderTokens([]pagerToken{{"‹", ternaryKind(st.Window.LeftEnabled)}}, styles)
	right := renderTokens([]pagerToken{{"›", ternaryKind(st.Window.RightEnabled)}}, styles)
	return left + " " + styles.Text.Render(pg.View()) + " " + right + "  " + progress
}

func ternaryKind(enabled bool) tokenKind {
	if enabled {
		return tokenArrow
	}
	return tokenArrowDisabled
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dex/internal/catalog"
)

// renderDetail renders the detail overlay centred over the screen.
func (m Model) renderDetail(st catalog.ViewState) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.renderDetailModal(st),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderDetailModal renders the bordered modal without placement.
func (m Model) renderDetailModal(st catalog.ViewState) string {
	styles := m.theme.Styles()

	title := styles.Text.Bold(true).Render(titleCase(st.DetailTerm))
	if e := st.DetailEntry; e != nil {
		title = styles.Text.Bold(true).Render(fmt.Sprintf("#%d %s", e.ID, titleCase(e.Name)))
	}

	var body string
	switch st.Detail.Status {
	case catalog.StatusLoading:
		body = m.spinner.View() + styles.WarningText.Render("Loading details...")
	case catalog.StatusError:
		body = styles.DangerText.Render(errorText(st.Detail.Err))
	default:
		body = m.detail.View()
	}

	hint := styles.FaintText.Render("esc close   j/k scroll   click outside to close")

	content := strings.Join([]string{
		title,
		styles.FaintText.Render(strings.Repeat("─", m.detail.Width)),
		body,
		"",
		hint,
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Padding(1, 2).
		Width(m.detail.Width + 4).
		Render(content)
}

// renderDetailBody is the scrollable part of the overlay.
func (m Model) renderDetailBody(st catalog.ViewState) string {
	e := st.DetailEntry
	if e == nil {
		return ""
	}
	styles := m.theme.Styles()

	var b strings.Builder
	if len(e.Types) > 0 {
		b.WriteString(m.renderTypes(e.Types))
		b.WriteString("\n\n")
	}
	b.WriteString(styles.MutedText.Render(measures(e)))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render("Abilities"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(joinTitle(e.Abilities)))
	b.WriteString("\n\n")

	if len(e.Stats) > 0 {
		b.WriteString(styles.AccentText.Bold(true).Render("Base stats"))
		b.WriteString("\n")
		for _, s := range e.Stats {
			b.WriteString(styles.MutedText.Render(padRight(truncate(titleCase(s.Name), 16), 17)))
			b.WriteString(styles.Text.Render(fmt.Sprintf("%3d ", s.BaseValue)))
			b.WriteString(styles.SuccessText.Render(statBar(s.BaseValue, detailStatBarSize)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	moves := e.SampleMoves(detailMaxMoves)
	b.WriteString(styles.AccentText.Bold(true).Render("Moves"))
	if len(e.Moves) > len(moves) {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf(" (%d of %d)", len(moves), len(e.Moves))))
	}
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(joinTitle(moves)))

	if e.ImageURL != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render(e.ImageURL))
	}

	return lipgloss.NewStyle().Width(m.detail.Width).Render(b.String())
}

// statBar draws value against detailStatMax as a bar of size cells.
func statBar(value, size int) string {
	if size <= 0 {
		return ""
	}
	filled := value * size / detailStatMax
	filled = max(0, min(filled, size))
	return strings.Repeat("█", filled) + strings.Repeat("░", size-filled)
}

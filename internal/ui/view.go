package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokeapi"
)

// renderMain stacks header, input line, search result, grid, pager and footer.
func (m Model) renderMain(st catalog.ViewState) string {
	sections := []string{
		m.renderHeader(st),
		m.renderInputLine(),
	}
	if m.showResult(st) {
		sections = append(sections, m.renderResult(st))
	}
	sections = append(sections,
		m.renderGridArea(st),
		lipgloss.NewStyle().Width(m.width).Render(renderPager(st, m.paginator, m.theme.Styles(), m.width)),
		m.theme.Styles().Footer.Width(m.width).Render(m.help.View(m.keys)),
	)
	return strings.Join(sections, "\n")
}

// renderHeader renders the status bar.
func (m Model) renderHeader(st catalog.ViewState) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("dex", styles.Logo)}

	if st.List.Status != catalog.StatusIdle {
		parts = append(parts, bg.Render(st.Paging.Mode.String(), styles.AccentText))
	}
	switch st.List.Status {
	case catalog.StatusLoading:
		parts = append(parts, bg.Render("loading list...", styles.WarningText))
	case catalog.StatusError:
		parts = append(parts, bg.Render(errorText(st.List.Err), styles.DangerText))
	case catalog.StatusLoaded:
		parts = append(parts, bg.Render(st.Progress, styles.MutedText))
	}
	parts = append(parts, bg.Render("size "+strconv.Itoa(st.PageSize), styles.FaintText))
	if st.Infinite && st.Paging.Mode == catalog.ModeAppend {
		parts = append(parts, bg.Render("infinite", styles.InfoText))
	}
	if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.WarningText))
	}

	return styles.Header.Width(m.width).MaxHeight(headerHeight).Render(bg.Join(parts, "  "))
}

func (m Model) renderInputLine() string {
	styles := m.theme.Styles()
	var line string
	switch m.input {
	case inputSearch:
		line = m.searchInput.View()
	case inputPageSize:
		line = m.sizeInput.View()
	default:
		line = styles.FaintText.Render("/ search   a load all   b batches   ? help")
	}
	return lipgloss.NewStyle().Width(m.width).MaxHeight(inputHeight).Padding(0, 1).Render(line)
}

// renderResult renders the single search result panel. It is independent of
// the grid below it.
func (m Model) renderResult(st catalog.ViewState) string {
	styles := m.theme.Styles()
	border := m.theme.Border
	if st.Focus == catalog.FocusSingleResult {
		border = m.theme.BorderFocus
	}

	var lines []string
	switch st.Single.Status {
	case catalog.StatusLoading:
		lines = []string{m.spinner.View() + styles.WarningText.Render("Searching...")}
	case catalog.StatusError:
		lines = []string{styles.DangerText.Render(errorText(st.Single.Err))}
	case catalog.StatusLoaded:
		if e := st.Result; e != nil {
			title := styles.Text.Bold(true).Render(fmt.Sprintf("#%d %s", e.ID, titleCase(e.Name)))
			lines = []string{
				title + "  " + m.renderTypes(e.Types),
				styles.MutedText.Render("Abilities: ") + styles.Text.Render(joinTitle(e.Abilities)),
				styles.Text.Render(compactStats(e.Stats)),
				styles.FaintText.Render(measures(e) + ternary(st.Focus == catalog.FocusSingleResult, "   enter: details", "")),
			}
		}
	}
	for len(lines) < resultHeight-2 {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(max(m.width-2, 10)).
		MaxHeight(resultHeight).
		Render(strings.Join(lines[:resultHeight-2], "\n"))
}

// renderGridArea renders the grid viewport, or a placeholder when the grid
// is empty.
func (m Model) renderGridArea(st catalog.ViewState) string {
	styles := m.theme.Styles()
	var placeholder string
	switch {
	case len(st.Grid) > 0:
		return m.grid.View()
	case st.List.Status == catalog.StatusLoading:
		placeholder = m.spinner.View() + styles.WarningText.Render("Loading entries...")
	case st.List.Status == catalog.StatusError:
		placeholder = styles.DangerText.Render(errorText(st.List.Err)) + "\n" +
			styles.MutedText.Render("press a or b to try again")
	default:
		placeholder = styles.MutedText.Render("Press a to browse every entry page by page, or b to load them in batches.")
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.grid.Height).
		Padding(1, 2).
		Render(placeholder)
}

func (m Model) renderTypes(types []string) string {
	styles := m.theme.Styles()
	badges := make([]string, 0, len(types))
	for _, t := range types {
		badges = append(badges, styles.TypeStyle(t).Render(strings.ToUpper(t)))
	}
	return strings.Join(badges, " ")
}

// errorText turns a region error into the inline message shown to the user.
func errorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, catalog.ErrInvalidInput):
		return "Enter a valid name or id."
	case errors.Is(err, catalog.ErrEmptyList):
		return "No entries found."
	case pokeapi.IsNotFound(err):
		return "No matching entry found."
	default:
		return "Could not load data: " + err.Error()
	}
}

// measures formats height (decimetres), weight (hectograms) and base experience.
func measures(e *pokeapi.Entry) string {
	return fmt.Sprintf("HT %.1f m   WT %.1f kg   XP %d",
		float64(e.Height)/10, float64(e.Weight)/10, e.BaseExperience)
}

// compactStats renders base stats on one line, e.g. "HP 48  ATK 48  SPE 48".
func compactStats(stats []pokeapi.Stat) string {
	if len(stats) == 0 {
		return "-"
	}
	parts := make([]string, len(stats))
	for i, s := range stats {
		parts[i] = fmt.Sprintf("%s %d", statLabel(s.Name), s.BaseValue)
	}
	return strings.Join(parts, "  ")
}

func statLabel(name string) string {
	switch name {
	case "hp":
		return "HP"
	case "attack":
		return "ATK"
	case "defense":
		return "DEF"
	case "special-attack":
		return "SPA"
	case "special-defense":
		return "SPD"
	case "speed":
		return "SPE"
	default:
		return strings.ToUpper(name)
	}
}

func joinTitle(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = titleCase(v)
	}
	return strings.Join(out, ", ")
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dex/internal/prefs"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header, footer and cards
	SurfaceAlt string // Modal body
	FocusBg    string // Focused card

	SelectionBg   string
	SelectionText string

	Border      string
	BorderMuted string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Entry type badges, keyed by type name
	TypeColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		PageButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		PageCurrent: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true).
			Padding(0, 1),

		typeColors: t.TypeColors,
		background: t.Background,
		muted:      t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header       lipgloss.Style
	Footer       lipgloss.Style
	Logo         lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	PageButton   lipgloss.Style
	PageCurrent  lipgloss.Style

	typeColors map[string]string
	background string
	muted      string
}

// TypeStyle returns a badge style for an entry type.
func (s Styles) TypeStyle(typeName string) lipgloss.Style {
	color := s.typeColors[strings.ToLower(strings.TrimSpace(typeName))]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

var themes = map[string]Theme{
	prefs.ThemeDark:  darkTheme(),
	prefs.ThemeLight: lightTheme(),
}

var themeOrder = []string{prefs.ThemeDark, prefs.ThemeLight}

// GetTheme returns a theme by name, falling back to dark.
func GetTheme(name string) Theme {
	if t, ok := themes[prefs.Normalize(name)]; ok {
		return t
	}
	return darkTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

// ResolveThemeName returns the saved preference, or the theme matching the
// terminal background when nothing has been saved.
func ResolveThemeName(saved string, hasDarkBackground func() bool) string {
	if name := prefs.Normalize(saved); name != "" {
		return name
	}
	if hasDarkBackground == nil {
		hasDarkBackground = lipgloss.HasDarkBackground
	}
	if hasDarkBackground() {
		return prefs.ThemeDark
	}
	return prefs.ThemeLight
}

// Type palette shared by both themes; the badge text color flips instead.
func typeColors() map[string]string {
	return map[string]string{
		"normal":   "#A8A77A",
		"fire":     "#EE8130",
		"water":    "#6390F0",
		"electric": "#F7D02C",
		"grass":    "#7AC74C",
		"ice":      "#96D9D6",
		"fighting": "#C22E28",
		"poison":   "#A33EA1",
		"ground":   "#E2BF65",
		"flying":   "#A98FF3",
		"psychic":  "#F95587",
		"bug":      "#A6B91A",
		"rock":     "#B6A136",
		"ghost":    "#735797",
		"dragon":   "#6F35FC",
		"dark":     "#705746",
		"steel":    "#B7B7CE",
		"fairy":    "#D685AD",
	}
}

func darkTheme() Theme {
	// Tailwind CSS Slate palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: prefs.ThemeDark,

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548",

		SelectionBg:   "#dc2626", // red-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderMuted: "#1e293b", // slate-800
		BorderFocus: "#f87171", // red-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		TypeColors: typeColors(),
	}
}

func lightTheme() Theme {
	return Theme{
		Name: prefs.ThemeLight,

		Background: "#f8fafc", // slate-50
		Surface:    "#e2e8f0", // slate-200
		SurfaceAlt: "#ffffff",
		FocusBg:    "#cbd5e1", // slate-300

		SelectionBg:   "#dc2626", // red-600
		SelectionText: "#ffffff",

		Border:      "#94a3b8", // slate-400
		BorderMuted: "#cbd5e1", // slate-300
		BorderFocus: "#dc2626", // red-600

		Text:    "#0f172a", // slate-900
		Muted:   "#475569", // slate-600
		Faint:   "#94a3b8", // slate-400
		Accent:  "#0284c7", // sky-600
		Success: "#16a34a", // green-600
		Warning: "#d97706", // amber-600
		Danger:  "#dc2626", // red-600
		Info:    "#0891b2", // cyan-600

		TypeColors: typeColors(),
	}
}

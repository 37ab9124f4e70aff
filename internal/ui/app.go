package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokeapi"
	"github.com/five82/dex/internal/prefs"
)

// inputMode is the text input that currently has focus.
type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputPageSize
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Fetcher    pokeapi.Fetcher
	Controller *catalog.Controller
	ThemeName  string
	PrefsPath  string

	// DefaultSearch is looked up on startup; empty skips the startup search.
	DefaultSearch string

	Logger zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx           context.Context
	fetcher       pokeapi.Fetcher
	ctrl          *catalog.Controller
	log           zerolog.Logger
	prefsPath     string
	defaultSearch string

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string

	// Inputs
	input       inputMode
	searchInput textinput.Model
	sizeInput   textinput.Model

	// Grid state
	grid        viewport.Model
	gridCols    int
	selected    int
	gridSig     gridSignature
	lastGridLen int

	detail    viewport.Model
	spinner   spinner.Model
	paginator paginator.Model
}

// gridSignature changes whenever the grid shows a different page or list.
type gridSignature struct {
	mode  catalog.Mode
	page  int
	first string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = catalog.New(catalog.Options{FenceResponses: true, Logger: opts.Logger})
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Prompt = "search: "
	search.Placeholder = "name or id"
	search.CharLimit = 64

	size := textinput.New()
	size.Prompt = "page size: "
	size.CharLimit = 6

	s := spinner.New()
	s.Spinner = spinner.Dot

	pg := paginator.New()
	pg.Type = paginator.Arabic

	m := Model{
		ctx:           ctx,
		fetcher:       opts.Fetcher,
		ctrl:          ctrl,
		log:           opts.Logger.With().Str("component", "ui").Logger(),
		prefsPath:     prefsPath,
		defaultSearch: strings.TrimSpace(opts.DefaultSearch),
		theme:         GetTheme(opts.ThemeName),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		searchInput:   search,
		sizeInput:     size,
		gridCols:      1,
		spinner:       s,
		paginator:     pg,
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.defaultSearch == "" {
		return nil
	}
	return m.issue(m.ctrl.Dispatch(catalog.Search{Term: m.defaultSearch}))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case resolvedMsg:
		reqs := m.ctrl.Dispatch(msg.intent)
		m.refresh()
		return m, m.issue(reqs)

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.input != inputNone {
		return m.updateInput(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	st := m.ctrl.State()
	if st.DetailOpen {
		return m.renderDetail(st)
	}
	return m.renderMain(st)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.input != inputNone {
		return m.handleInputKey(msg)
	}

	st := m.ctrl.State()
	if st.DetailOpen {
		return m.handleDetailKey(msg)
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.log.Warn().Err(err).Msg("save theme preference")
			}
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.input = inputSearch
		m.searchInput.Reset()
		m.refresh()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.PageSize):
		m.input = inputPageSize
		m.sizeInput.SetValue(strconv.Itoa(st.PageSize))
		m.sizeInput.CursorEnd()
		m.refresh()
		return m, m.sizeInput.Focus()

	case key.Matches(msg, m.keys.LoadPaged):
		return m, m.dispatch(catalog.LoadAll{Mode: catalog.ModeReplace})

	case key.Matches(msg, m.keys.LoadBatch):
		return m, m.dispatch(catalog.LoadAll{Mode: catalog.ModeAppend})

	case key.Matches(msg, m.keys.LoadMore):
		if st.Paging.Mode == catalog.ModeReplace && st.Total > 0 {
			m.notice = "load more works in batch mode (b)"
		}
		return m, m.dispatch(catalog.LoadMore{})

	case key.Matches(msg, m.keys.NextPage):
		return m, m.dispatch(catalog.NextPage{})

	case key.Matches(msg, m.keys.PrevPage):
		return m, m.dispatch(catalog.PrevPage{})

	case key.Matches(msg, m.keys.FirstPage):
		return m, m.dispatch(catalog.FirstPage{})

	case key.Matches(msg, m.keys.LastPage):
		return m, m.dispatch(catalog.LastPage{})

	case key.Matches(msg, m.keys.Infinite):
		return m.toggleInfinite(st)

	case key.Matches(msg, m.keys.Confirm):
		return m, m.openSelected(st)

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-m.gridCols)
		return m, m.scrolled()

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(m.gridCols)
		return m, m.scrolled()

	case key.Matches(msg, m.keys.PrevCard):
		m.moveSelection(-1)
		return m, m.scrolled()

	case key.Matches(msg, m.keys.NextCard):
		m.moveSelection(1)
		return m, m.scrolled()

	case key.Matches(msg, m.keys.PageUp):
		m.grid.HalfPageUp()
		return m, m.scrolled()

	case key.Matches(msg, m.keys.PageDown):
		m.grid.HalfPageDown()
		return m, m.scrolled()
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Confirm):
		return m, m.dispatch(catalog.CloseDetail{})
	case key.Matches(msg, m.keys.Up):
		m.detail.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.detail.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.detail.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.detail.HalfPageDown()
	}
	return m, nil
}

func (m Model) toggleInfinite(st catalog.ViewState) (tea.Model, tea.Cmd) {
	enable := !st.Infinite
	cmd := m.dispatch(catalog.ToggleInfinite{Enabled: enable})
	if !enable {
		return m, cmd
	}
	if !m.ctrl.State().Infinite {
		m.notice = "infinite scroll is off while paging through several pages"
		return m, cmd
	}
	// A grid shorter than the viewport never scrolls, so check once now.
	return m, tea.Batch(cmd, m.scrolled())
}

// openSelected opens the detail overlay for whatever currently has focus.
func (m Model) openSelected(st catalog.ViewState) tea.Cmd {
	if st.Focus == catalog.FocusSingleResult && st.Result != nil {
		return m.dispatch(catalog.OpenDetail{NameOrID: st.Result.Name})
	}
	if m.selected >= 0 && m.selected < len(st.Grid) {
		return m.dispatch(catalog.OpenDetail{NameOrID: st.Grid[m.selected].Key()})
	}
	return nil
}

// dispatch applies an intent and starts the fetches it asks for.
func (m *Model) dispatch(in catalog.Intent) tea.Cmd {
	reqs := m.ctrl.Dispatch(in)
	m.refresh()
	return m.issue(reqs)
}

// scrolled reports the grid position so an attached scroll watcher can load
// the next batch.
func (m *Model) scrolled() tea.Cmd {
	return m.dispatch(catalog.Scrolled{Metrics: catalog.Metrics{
		ViewportHeight: m.grid.Height,
		ScrollOffset:   m.grid.YOffset,
		ContentHeight:  m.grid.TotalLineCount(),
	}})
}

// issue turns controller requests into fetch commands.
func (m Model) issue(reqs []catalog.Request) tea.Cmd {
	if len(reqs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(reqs)+1)
	for _, r := range reqs {
		cmds = append(cmds, fetchCmd(m.ctx, m.fetcher, r))
	}
	cmds = append(cmds, m.spinner.Tick)
	return tea.Batch(cmds...)
}

func (m Model) loading() bool {
	st := m.ctrl.State()
	return st.Single.Status == catalog.StatusLoading ||
		st.List.Status == catalog.StatusLoading ||
		(st.DetailOpen && st.Detail.Status == catalog.StatusLoading)
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.spinner.Style = styles.AccentText
	for _, in := range []*textinput.Model{&m.searchInput, &m.sizeInput} {
		in.PromptStyle = styles.AccentText
		in.TextStyle = styles.Text
		in.PlaceholderStyle = styles.FaintText
	}
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

// refresh re-derives viewport sizes and contents from controller state.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	st := m.ctrl.State()

	m.gridCols = gridColumns(m.width)
	m.grid.Width = m.width
	m.grid.Height = m.gridHeight(st)

	sig := gridSignature{mode: st.Paging.Mode, page: st.Paging.Page}
	if len(st.Grid) > 0 {
		sig.first = st.Grid[0].Key()
	}
	if sig != m.gridSig || len(st.Grid) < m.lastGridLen {
		m.selected = 0
		m.grid.GotoTop()
	}
	m.gridSig = sig
	m.lastGridLen = len(st.Grid)
	if m.selected >= len(st.Grid) {
		m.selected = max(len(st.Grid)-1, 0)
	}

	m.grid.SetContent(renderGrid(st.Grid, m.selected, m.gridCols, m.theme.Styles()))
	m.ensureSelectedVisible()

	m.detail.Width = min(detailModalWidth, max(m.width-6, 20))
	m.detail.Height = max(m.height-10, 3)
	if st.DetailOpen {
		m.detail.SetContent(m.renderDetailBody(st))
	} else {
		m.detail.SetContent("")
		m.detail.GotoTop()
	}
}

// gridHeight is whatever the chrome around the grid leaves over.
func (m Model) gridHeight(st catalog.ViewState) int {
	h := m.height - headerHeight - inputHeight - pagerHeight - footerHeight
	if m.showResult(st) {
		h -= resultHeight
	}
	return max(h, 1)
}

// gridTop is the screen row of the first grid line.
func (m Model) gridTop(st catalog.ViewState) int {
	top := headerHeight + inputHeight
	if m.showResult(st) {
		top += resultHeight
	}
	return top
}

func (m Model) showResult(st catalog.ViewState) bool {
	return st.Single.Status != catalog.StatusIdle
}

func (m *Model) moveSelection(delta int) {
	n := m.lastGridLen
	if n == 0 {
		return
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if next > n-1 {
		next = n - 1
	}
	m.selected = next
	m.ctrl.Dispatch(catalog.FocusList{})
	st := m.ctrl.State()
	m.grid.SetContent(renderGrid(st.Grid, m.selected, m.gridCols, m.theme.Styles()))
	m.ensureSelectedVisible()
}

func (m *Model) ensureSelectedVisible() {
	if m.lastGridLen == 0 || m.gridCols < 1 {
		return
	}
	top := (m.selected / m.gridCols) * cardHeight
	bottom := top + cardHeight
	if top < m.grid.YOffset {
		m.grid.SetYOffset(top)
	} else if bottom > m.grid.YOffset+m.grid.Height {
		m.grid.SetYOffset(bottom - m.grid.Height)
	}
}

// handleMouse scrolls the grid with the wheel, opens a clicked card and
// closes the detail overlay on a click outside it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	st := m.ctrl.State()

	if st.DetailOpen {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.detail.ScrollUp(wheelStep)
		case tea.MouseButtonWheelDown:
			m.detail.ScrollDown(wheelStep)
		case tea.MouseButtonLeft:
			if !m.insideDetail(st, msg.X, msg.Y) {
				return m, m.dispatch(catalog.CloseDetail{})
			}
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.grid.ScrollUp(wheelStep)
		return m, m.scrolled()
	case tea.MouseButtonWheelDown:
		m.grid.ScrollDown(wheelStep)
		return m, m.scrolled()
	case tea.MouseButtonLeft:
		if idx, ok := m.cardAt(st, msg.X, msg.Y); ok {
			m.selected = idx
			m.ctrl.Dispatch(catalog.FocusList{})
			return m, m.dispatch(catalog.OpenDetail{NameOrID: st.Grid[idx].Key()})
		}
	}
	return m, nil
}

// cardAt maps a screen position to a grid index.
func (m Model) cardAt(st catalog.ViewState, x, y int) (int, bool) {
	top := m.gridTop(st)
	if y < top || y >= top+m.grid.Height || x < 0 {
		return 0, false
	}
	col := x / (cardWidth + cardGap)
	if col >= m.gridCols || x%(cardWidth+cardGap) >= cardWidth {
		return 0, false
	}
	row := (y - top + m.grid.YOffset) / cardHeight
	idx := row*m.gridCols + col
	if idx >= len(st.Grid) {
		return 0, false
	}
	return idx, true
}

func (m Model) insideDetail(st catalog.ViewState, x, y int) bool {
	w, h := lipgloss.Size(m.renderDetailModal(st))
	left := (m.width - w) / 2
	top := (m.height - h) / 2
	return x >= left && x < left+w && y >= top && y < top+h
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	return err
}

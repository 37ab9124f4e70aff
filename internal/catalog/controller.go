package catalog

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/dex/internal/pokeapi"
)

// DefaultListLimit asks the bulk endpoint for every entry in one response.
const DefaultListLimit = 100000

// Options configure a Controller.
type Options struct {
	PageSize        int
	MaxButtons      int
	ScrollThreshold int // negative uses DefaultNearEndThreshold
	ListLimit       int
	Artwork         ArtworkFunc
	Infinite        bool

	// FenceResponses discards completions whose Seq is not the latest issued
	// for their region. Off restores "last response to resolve wins".
	FenceResponses bool

	Logger zerolog.Logger
}

// ViewState is everything the renderer needs; rendering is a pure function of it.
type ViewState struct {
	Focus Focus

	Single Region
	Result *pokeapi.Entry

	List       Region
	Grid       []Item
	Paging     PagingState
	PageSize   int
	Total      int
	Progress   string
	Window     Window
	HasMore    bool
	Infinite   bool
	Watching   bool
	MaxButtons int

	Detail      Region
	DetailOpen  bool
	DetailTerm  string
	DetailEntry *pokeapi.Entry
}

// Controller owns the list, paging state, grid and scroll subscription for one
// session. All mutation goes through Dispatch; it is not safe for concurrent use.
type Controller struct {
	opts    Options
	log     zerolog.Logger
	store   *Store
	paging  PagingState
	grid    Grid
	watcher *ScrollWatcher
	focus   Focus
	seq     uint64

	infinite bool

	single Region
	result *pokeapi.Entry

	list Region

	detail      Region
	detailOpen  bool
	detailTerm  string
	detailEntry *pokeapi.Entry
}

// New builds a Controller in its reset state.
func New(opts Options) *Controller {
	if opts.MaxButtons < 1 {
		opts.MaxButtons = DefaultMaxButtons
	}
	if opts.ListLimit < 1 {
		opts.ListLimit = DefaultListLimit
	}
	if opts.Artwork == nil {
		opts.Artwork = func(id int) string { return pokeapi.ArtworkURL("", id) }
	}
	return &Controller{
		opts:     opts,
		log:      opts.Logger.With().Str("component", "catalog").Logger(),
		store:    NewStore(opts.PageSize),
		paging:   PagingState{Mode: ModeAppend},
		watcher:  NewScrollWatcher(opts.ScrollThreshold),
		infinite: opts.Infinite,
	}
}

// Dispatch applies one intent and returns the fetches the caller must start.
func (c *Controller) Dispatch(in Intent) []Request {
	switch in := in.(type) {
	case Search:
		return c.search(in.Term)
	case SearchResolved:
		c.resolveSearch(in)
	case LoadAll:
		return c.loadAll(in.Mode)
	case ListResolved:
		c.resolveList(in)
	case NextPage:
		c.nextPage()
	case PrevPage:
		if c.paging.Mode == ModeReplace {
			c.renderPage(c.paging.Page - 1)
		}
	case FirstPage:
		c.firstPage()
	case LastPage:
		if c.paging.Mode == ModeReplace {
			c.renderPage(c.paging.TotalPages - 1)
		}
	case GoToPage:
		if c.paging.Mode == ModeReplace {
			c.renderPage(in.Index)
		}
	case LoadMore:
		if c.paging.Mode == ModeAppend {
			c.renderNextBatch()
		}
	case SetPageSize:
		c.setPageSize(in.Raw)
	case ToggleInfinite:
		c.toggleInfinite(in.Enabled)
	case Scrolled:
		c.watcher.Check(in.Metrics)
	case OpenDetail:
		return c.openDetail(in.NameOrID)
	case DetailResolved:
		c.resolveDetail(in)
	case FocusList:
		if c.grid.Len() > 0 {
			c.focus = FocusPagedList
		}
	case CloseDetail:
		c.detailOpen = false
		c.detail.Status = StatusIdle
		c.detail.Err = nil
		c.detailEntry = nil
	default:
		c.log.Warn().Msgf("unhandled intent %T", in)
	}
	return nil
}

// State returns a copy of the current view state.
func (c *Controller) State() ViewState {
	total := c.store.Len()
	vs := ViewState{
		Focus:       c.focus,
		Single:      c.single,
		Result:      c.result,
		List:        c.list,
		Grid:        c.grid.Items(),
		Paging:      c.paging,
		PageSize:    c.store.PageSize(),
		Total:       total,
		Progress:    ProgressText(c.paging, c.store.PageSize(), total),
		Infinite:    c.infinite,
		Watching:    c.watcher.Attached(),
		MaxButtons:  c.opts.MaxButtons,
		Detail:      c.detail,
		DetailOpen:  c.detailOpen,
		DetailTerm:  c.detailTerm,
		DetailEntry: c.detailEntry,
	}
	if c.paging.Mode == ModeReplace && c.paging.TotalPages > 0 {
		vs.Window = ComputeWindow(c.paging.Page, c.paging.TotalPages, c.opts.MaxButtons)
	}
	if c.paging.Mode == ModeAppend {
		vs.HasMore = total > 0 && c.paging.Cursor < total
	}
	return vs
}

// ScrollThreshold returns the watcher's near-end distance.
func (c *Controller) ScrollThreshold() int {
	return c.watcher.Threshold()
}

func (c *Controller) nextSeq() uint64 {
	c.seq++
	return c.seq
}

// stale reports whether a completion must be discarded.
func (c *Controller) stale(r Region, seq uint64) bool {
	return c.opts.FenceResponses && seq != r.Seq
}

func (c *Controller) search(term string) []Request {
	term = strings.ToLower(strings.TrimSpace(term))
	c.focus = FocusSingleResult
	if term == "" {
		// A new seq supersedes any search still in flight.
		c.single = Region{Status: StatusError, Err: ErrInvalidInput, Seq: c.nextSeq()}
		c.result = nil
		return nil
	}
	seq := c.nextSeq()
	c.single = Region{Status: StatusLoading, Seq: seq}
	c.log.Debug().Str("term", term).Uint64("seq", seq).Msg("search")
	return []Request{{Kind: RequestEntry, Seq: seq, Term: term}}
}

func (c *Controller) resolveSearch(in SearchResolved) {
	if c.stale(c.single, in.Seq) {
		c.log.Debug().Uint64("seq", in.Seq).Uint64("want", c.single.Seq).Msg("discarding stale search response")
		return
	}
	if in.Err != nil || in.Entry == nil {
		err := in.Err
		if err == nil {
			err = ErrEmptyList
		}
		c.single = Region{Status: StatusError, Err: &NetworkError{Op: "search", Err: err}, Seq: in.Seq}
		c.result = nil
		c.log.Warn().Err(err).Msg("search failed")
		return
	}
	c.single = Region{Status: StatusLoaded, Seq: in.Seq}
	c.result = in.Entry
}

func (c *Controller) loadAll(mode Mode) []Request {
	c.resetList()
	c.paging.Mode = mode
	c.focus = FocusPagedList
	seq := c.nextSeq()
	c.list = Region{Status: StatusLoading, Seq: seq}
	c.log.Debug().Stringer("mode", mode).Uint64("seq", seq).Msg("load all")
	return []Request{{Kind: RequestList, Seq: seq, Limit: c.opts.ListLimit}}
}

func (c *Controller) resetList() {
	c.store.Reset()
	c.grid.Reset()
	c.watcher.Detach()
	c.paging = PagingState{Mode: ModeAppend}
}

func (c *Controller) resolveList(in ListResolved) {
	if c.stale(c.list, in.Seq) {
		c.log.Debug().Uint64("seq", in.Seq).Uint64("want", c.list.Seq).Msg("discarding stale list response")
		return
	}
	mode := c.paging.Mode
	c.resetList()
	c.paging.Mode = mode
	if in.Err != nil {
		c.list = Region{Status: StatusError, Err: &NetworkError{Op: "load list", Err: in.Err}, Seq: in.Seq}
		c.log.Warn().Err(in.Err).Msg("list load failed")
		return
	}
	if err := c.store.Load(in.Items, c.opts.Artwork); err != nil {
		c.list = Region{Status: StatusError, Err: err, Seq: in.Seq}
		return
	}
	c.list = Region{Status: StatusLoaded, Seq: in.Seq}
	c.enterMode(mode)
	c.log.Info().Int("entries", c.store.Len()).Stringer("mode", mode).Msg("list loaded")
}

// enterMode switches pagination strategy, resetting cursors and the grid and
// releasing the scroll subscription, then renders the first page or batch.
func (c *Controller) enterMode(mode Mode) {
	c.watcher.Detach()
	c.grid.Reset()
	c.paging = PagingState{Mode: mode, TotalPages: c.store.TotalPages()}
	if mode == ModeReplace {
		c.renderPage(0)
		return
	}
	c.renderNextBatch()
	if c.infinite {
		c.attachWatcher()
	}
}

func (c *Controller) attachWatcher() {
	c.watcher.Attach(c.onNearEnd)
}

func (c *Controller) onNearEnd() {
	if c.paging.Mode != ModeAppend {
		return
	}
	c.renderNextBatch()
}

// renderNextBatch appends the next slice. It is a no-op at the end of the list.
func (c *Controller) renderNextBatch() bool {
	if c.store.Len() == 0 {
		return false
	}
	slice, next := RenderBatch(c.store.Items(), c.paging.Cursor, c.store.PageSize())
	if len(slice) == 0 {
		return false
	}
	c.grid.Append(slice)
	c.paging.Cursor = next
	return true
}

// renderPage replaces the grid with page p, clamped to the valid range.
func (c *Controller) renderPage(p int) {
	total := c.store.TotalPages()
	c.paging.TotalPages = total
	if total == 0 {
		c.paging.Page = 0
		c.grid.Reset()
		return
	}
	p = clamp(p, 0, total-1)
	slice, _ := RenderBatch(c.store.Items(), p*c.store.PageSize(), c.store.PageSize())
	c.grid.Replace(slice)
	c.paging.Page = p
}

func (c *Controller) nextPage() {
	if c.paging.Mode == ModeReplace {
		c.renderPage(c.paging.Page + 1)
		return
	}
	c.renderNextBatch()
}

func (c *Controller) firstPage() {
	if c.paging.Mode == ModeReplace {
		c.renderPage(0)
		return
	}
	if c.store.Len() == 0 {
		return
	}
	c.grid.Reset()
	c.paging.Cursor = 0
	c.renderNextBatch()
}

func (c *Controller) setPageSize(raw string) {
	oldSize := c.store.PageSize()
	if !c.store.SetPageSize(raw) {
		c.log.Debug().Str("raw", raw).Int("page_size", oldSize).Msg("ignoring invalid page size")
		return
	}
	c.paging.TotalPages = c.store.TotalPages()
	if c.paging.Mode == ModeReplace && c.store.Len() > 0 {
		first := c.paging.Page * oldSize
		c.renderPage(first / c.store.PageSize())
	}
}

func (c *Controller) toggleInfinite(enabled bool) {
	if !enabled {
		c.infinite = false
		c.watcher.Detach()
		return
	}
	if c.paging.Mode == ModeReplace && c.paging.TotalPages > 1 {
		c.log.Debug().Int("pages", c.paging.TotalPages).Msg("infinite scroll rejected in paged mode")
		return
	}
	c.infinite = true
	if c.paging.Mode == ModeAppend && c.store.Len() > 0 {
		c.attachWatcher()
	}
}

func (c *Controller) openDetail(nameOrID string) []Request {
	term := strings.ToLower(strings.TrimSpace(nameOrID))
	if term == "" {
		return nil
	}
	seq := c.nextSeq()
	c.detailOpen = true
	c.detailTerm = term
	c.detailEntry = nil
	c.detail = Region{Status: StatusLoading, Seq: seq}
	return []Request{{Kind: RequestDetail, Seq: seq, Term: term}}
}

func (c *Controller) resolveDetail(in DetailResolved) {
	if c.stale(c.detail, in.Seq) || (c.opts.FenceResponses && !c.detailOpen) {
		c.log.Debug().Uint64("seq", in.Seq).Msg("discarding stale detail response")
		return
	}
	if in.Err != nil || in.Entry == nil {
		err := in.Err
		if err == nil {
			err = ErrEmptyList
		}
		c.detail = Region{Status: StatusError, Err: &NetworkError{Op: "load detail", Err: err}, Seq: in.Seq}
		c.detailEntry = nil
		return
	}
	c.detail = Region{Status: StatusLoaded, Seq: in.Seq}
	c.detailEntry = in.Entry
}

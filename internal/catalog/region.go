package catalog

// Status is the state of one screen region's fetch track.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Region tracks one independent screen region. Seq identifies the latest
// request issued for it.
type Region struct {
	Status Status
	Err    error
	Seq    uint64
}

// Mode is the list pagination strategy.
type Mode int

const (
	// ModeAppend adds each batch after the previous ones.
	ModeAppend Mode = iota
	// ModeReplace shows exactly one page at a time.
	ModeReplace
)

func (m Mode) String() string {
	if m == ModeReplace {
		return "paged"
	}
	return "batch"
}

// PagingState holds the list cursors. Cursor is authoritative in Append mode,
// Page in Replace mode.
type PagingState struct {
	Mode       Mode
	Cursor     int
	Page       int
	TotalPages int
}

// Focus records which action last populated the screen.
type Focus int

const (
	FocusNone Focus = iota
	FocusSingleResult
	FocusPagedList
)

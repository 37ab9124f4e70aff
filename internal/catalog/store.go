package catalog

import (
	"strconv"
	"strings"
)

// DefaultPageSize is used until a valid size has been set.
const DefaultPageSize = 50

// Store holds the immutable fetched list and the page size used to slice it.
type Store struct {
	items    []Item
	pageSize int
}

// NewStore returns an empty Store. A non-positive pageSize uses DefaultPageSize.
func NewStore(pageSize int) *Store {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Store{pageSize: pageSize}
}

// Load replaces the list with the normalized raw items, keeping their order.
// An empty input leaves the store empty and returns ErrEmptyList.
func (s *Store) Load(raw []RawItem, artwork ArtworkFunc) error {
	s.items = nil
	if len(raw) == 0 {
		return ErrEmptyList
	}
	items := make([]Item, len(raw))
	for i, r := range raw {
		items[i] = normalize(r, artwork)
	}
	s.items = items
	return nil
}

// Reset drops the list. The page size is kept.
func (s *Store) Reset() {
	s.items = nil
}

// SetPageSize parses raw and applies it when it is a positive integer.
// Anything else leaves the previous size in place.
func (s *Store) SetPageSize(raw string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return s.SetPageSizeInt(n)
}

// SetPageSizeInt applies n when positive.
func (s *Store) SetPageSizeInt(n int) bool {
	if n < 1 {
		return false
	}
	s.pageSize = n
	return true
}

// PageSize returns the current page size (always >= 1).
func (s *Store) PageSize() int {
	if s.pageSize < 1 {
		return DefaultPageSize
	}
	return s.pageSize
}

// Len returns the number of loaded items.
func (s *Store) Len() int {
	return len(s.items)
}

// Items returns the loaded list. Callers must not modify it.
func (s *Store) Items() []Item {
	return s.items
}

// TotalPages is ceil(Len/PageSize), or 0 for an empty list.
func (s *Store) TotalPages() int {
	return totalPages(len(s.items), s.PageSize())
}

func totalPages(n, size int) int {
	if n <= 0 || size < 1 {
		return 0
	}
	return (n + size - 1) / size
}

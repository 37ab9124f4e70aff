package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyList is reported when the bulk endpoint returns no entries.
	ErrEmptyList = errors.New("no entries found")

	// ErrInvalidInput is reported for a blank search term.
	ErrInvalidInput = errors.New("enter a valid name or id")
)

// NetworkError wraps a failed fetch (non-2xx status, transport or decode failure).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

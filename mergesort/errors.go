package mergesort

import "errors"

var (
	// ErrEmptyInput indicates the input sequence has no elements.
	ErrEmptyInput = errors.New("mergesort: input sequence must be non-empty")
	// ErrNilLess indicates a nil comparison function was supplied.
	ErrNilLess = errors.New("mergesort: comparison function must be non-nil")
)

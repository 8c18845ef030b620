package strassen

import "errors"

var (
	// ErrNilMatrix indicates a nil operand.
	ErrNilMatrix = errors.New("strassen: matrices must be non-nil")
	// ErrBadShape indicates an operand with zero rows.
	ErrBadShape = errors.New("strassen: matrices must have at least one row and one column")
	// ErrNonSquare indicates ragged rows or height != width.
	ErrNonSquare = errors.New("strassen: matrices must be square")
	// ErrDimensionMismatch indicates operands of different side lengths.
	ErrDimensionMismatch = errors.New("strassen: matrices must have the same side length")
	// ErrBadOptions indicates an invalid Options value.
	ErrBadOptions = errors.New("strassen: NaiveBelow must be at least 1")
)

// Options configures the recursion.
//
// Fields:
//   - NaiveBelow — side length at or below which a block is multiplied
//     by the naive triple loop instead of recursing further. The
//     default of 1 runs the recursion all the way down to the scalar
//     base case; raising it trades algorithmic purity for constant
//     factors. Exactness is unaffected either way.
type Options struct {
	NaiveBelow int
}

// DefaultOptions returns the canonical configuration: recurse to the
// 1×1 scalar base case.
func DefaultOptions() Options {
	return Options{NaiveBelow: 1}
}

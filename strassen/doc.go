// Package strassen multiplies square matrices exactly using Strassen's
// divide-and-conquer scheme.
//
// 🚀 What is strassen?
//
//	The naive product of two n×n matrices costs O(n³). Strassen splits
//	each operand into four quadrants and combines them into seven
//	recursive sub-products instead of the obvious eight, giving
//	T(n) = 7·T(n/2) + O(n²), i.e. O(n^log₂7) ≈ O(n^2.807).
//
//	The recursion needs a power-of-two side length, so operands are
//	first padded with zero rows and columns up to the next power of
//	two, and the padding is stripped from the result before returning —
//	callers never see it.
//
// ✨ Key features:
//   - exact: cell-for-cell equal to the naive triple-loop product
//     (integer-valued matrices incur no floating rounding while the
//     products stay inside float64's exact-integer range)
//   - any side length n ≥ 1, power of two or not
//   - optional leaf cutoff (Options.NaiveBelow) to hand small blocks
//     to the naive product; the default recurses all the way to the
//     1×1 scalar base case
//   - inputs are never mutated
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dandc/strassen"
//
//	a := [][]float64{{7, 11}, {14, 2}}
//	b := [][]float64{{12, 2}, {19, 2}}
//	p, err := strassen.Multiply(a, b)
//	if err != nil {
//	  // handle ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch / ErrBadShape
//	}
//	fmt.Println(p) // [[293 36] [206 32]]
//
// Performance:
//   - Time:   O(n^log₂7) ≈ O(n^2.807)
//   - Memory: O(n²) per level, recursion depth O(log n)
package strassen

package strassen

import "math/bits"

// Multiply returns the exact product a·b of two square matrices of
// equal side length, using DefaultOptions.
//
// Algorithm Outline:
//  1. Validate both operands (square, equal side length n ≥ 1).
//  2. Pad each with zero rows/columns up to the next power of two.
//  3. Recurse: split into quadrants, form the seven Strassen
//     sub-products, assemble the four result quadrants.
//  4. Truncate the padded product back to n×n.
//
// Complexity:
//
//	Time   = O(n^log₂7) ≈ O(n^2.807)
//	Memory = O(n²) per level, recursion depth O(log n)
//
// Errors:
//   - ErrNilMatrix         — a or b is nil.
//   - ErrBadShape          — a or b has no rows.
//   - ErrNonSquare         — ragged rows, or height != width.
//   - ErrDimensionMismatch — side lengths differ.
func Multiply(a, b [][]float64) ([][]float64, error) {
	return MultiplyWith(a, b, DefaultOptions())
}

// MultiplyWith is Multiply under explicit Options.
//
// Errors: those of Multiply, plus ErrBadOptions when
// opts.NaiveBelow < 1.
func MultiplyWith(a, b [][]float64, opts Options) ([][]float64, error) {
	if opts.NaiveBelow < 1 {
		return nil, ErrBadOptions
	}

	n, err := validateSquare(a)
	if err != nil {
		return nil, err
	}
	m, err := validateSquare(b)
	if err != nil {
		return nil, err
	}
	if n != m {
		return nil, ErrDimensionMismatch
	}

	// Pad up to a power-of-two side so every split lands on even
	// halves; the padding never escapes this function.
	size := nextPowerOfTwo(n)
	product := multiply(pad(a, size), pad(b, size), opts.NaiveBelow)

	return trim(product, n), nil
}

// multiply is the recursive core; both operands are size×size with
// size a power of two.
func multiply(a, b [][]float64, cutoff int) [][]float64 {
	n := len(a)
	if n <= cutoff {
		// With the default cutoff of 1 this is the scalar base case:
		// a 1×1 naive product is a single multiplication.
		return naiveMultiply(a, b)
	}

	k := n / 2
	a11, a12, a21, a22 := quadrants(a)
	b11, b12, b21, b22 := quadrants(b)

	// The seven Strassen sub-products.
	p1 := multiply(a11, sub(b12, b22), cutoff)
	p2 := multiply(add(a11, a12), b22, cutoff)
	p3 := multiply(add(a21, a22), b11, cutoff)
	p4 := multiply(a22, sub(b21, b11), cutoff)
	p5 := multiply(add(a11, a22), add(b11, b22), cutoff)
	p6 := multiply(sub(a12, a22), add(b21, b22), cutoff)
	p7 := multiply(sub(a11, a21), add(b11, b12), cutoff)

	// Assemble the result quadrants:
	//   c11 = p5 + p4 − p2 + p6    c12 = p1 + p2
	//   c21 = p3 + p4              c22 = p1 + p5 − p3 − p7
	c := newGrid(n)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			c[i][j] = p5[i][j] + p4[i][j] - p2[i][j] + p6[i][j]
			c[i][j+k] = p1[i][j] + p2[i][j]
			c[i+k][j] = p3[i][j] + p4[i][j]
			c[i+k][j+k] = p1[i][j] + p5[i][j] - p3[i][j] - p7[i][j]
		}
	}

	return c
}

// naiveMultiply is the O(n³) triple-loop product, used at and below the
// recursion cutoff.
func naiveMultiply(a, b [][]float64) [][]float64 {
	n := len(a)
	c := newGrid(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for l := 0; l < n; l++ {
				sum += a[i][l] * b[l][j]
			}
			c[i][j] = sum
		}
	}

	return c
}

// validateSquare checks that m is a non-empty square grid and returns
// its side length.
func validateSquare(m [][]float64) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	n := len(m)
	if n == 0 {
		return 0, ErrBadShape
	}
	for _, row := range m {
		if len(row) != n {
			return 0, ErrNonSquare
		}
	}

	return n, nil
}

// nextPowerOfTwo returns n when n is a power of two, otherwise the
// first power of two above n.
func nextPowerOfTwo(n int) int {
	if n&(n-1) == 0 {
		return n
	}

	return 1 << bits.Len(uint(n))
}

// pad copies m into a fresh size×size grid, zero-filling the added
// rows and columns. size must be >= len(m).
func pad(m [][]float64, size int) [][]float64 {
	out := newGrid(size)
	for i, row := range m {
		copy(out[i], row)
	}

	return out
}

// trim returns the top-left n×n block of m as a fresh grid, discarding
// any padding.
func trim(m [][]float64, n int) [][]float64 {
	out := newGrid(n)
	for i := 0; i < n; i++ {
		copy(out[i], m[i][:n])
	}

	return out
}

// quadrants splits m (even side length) into four fresh k×k blocks in
// row-major order: top-left, top-right, bottom-left, bottom-right.
func quadrants(m [][]float64) (tl, tr, bl, br [][]float64) {
	k := len(m) / 2
	tl, tr, bl, br = newGrid(k), newGrid(k), newGrid(k), newGrid(k)
	for i := 0; i < k; i++ {
		copy(tl[i], m[i][:k])
		copy(tr[i], m[i][k:])
		copy(bl[i], m[i+k][:k])
		copy(br[i], m[i+k][k:])
	}

	return tl, tr, bl, br
}

// add returns the elementwise sum a+b of two equally sized grids.
func add(a, b [][]float64) [][]float64 {
	n := len(a)
	out := newGrid(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = a[i][j] + b[i][j]
		}
	}

	return out
}

// sub returns the elementwise difference a−b of two equally sized grids.
func sub(a, b [][]float64) [][]float64 {
	n := len(a)
	out := newGrid(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = a[i][j] - b[i][j]
		}
	}

	return out
}

// newGrid allocates an n×n grid of zeros backed by one flat slice.
func newGrid(n int) [][]float64 {
	flat := make([]float64, n*n)
	out := make([][]float64, n)
	for i := range out {
		out[i] = flat[i*n : (i+1)*n : (i+1)*n]
	}

	return out
}

package strassen_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/dandc/strassen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveProduct is the O(n³) reference the recursive product must match
// cell-for-cell.
func naiveProduct(a, b [][]float64) [][]float64 {
	n := len(a)
	c := make([][]float64, n)
	for i := 0; i < n; i++ {
		c[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			for l := 0; l < n; l++ {
				c[i][j] += a[i][l] * b[l][j]
			}
		}
	}

	return c
}

// randomMatrix returns an n×n matrix of small random integer values,
// so products stay exactly representable.
func randomMatrix(rng *rand.Rand, n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = float64(rng.Intn(41) - 20)
		}
	}

	return m
}

// TestMultiply_InvalidInputs verifies each precondition sentinel.
func TestMultiply_InvalidInputs(t *testing.T) {
	square := [][]float64{{1, 2}, {3, 4}}

	_, err := strassen.Multiply(nil, square)
	assert.ErrorIs(t, err, strassen.ErrNilMatrix, "nil left operand")

	_, err = strassen.Multiply(square, nil)
	assert.ErrorIs(t, err, strassen.ErrNilMatrix, "nil right operand")

	_, err = strassen.Multiply([][]float64{}, square)
	assert.ErrorIs(t, err, strassen.ErrBadShape, "empty operand")

	_, err = strassen.Multiply([][]float64{{1, 2}}, square)
	assert.ErrorIs(t, err, strassen.ErrNonSquare, "1×2 operand")

	_, err = strassen.Multiply([][]float64{{1, 2}, {3}}, square)
	assert.ErrorIs(t, err, strassen.ErrNonSquare, "ragged operand")

	_, err = strassen.Multiply(square, [][]float64{{1}})
	assert.ErrorIs(t, err, strassen.ErrDimensionMismatch, "2×2 by 1×1")
}

// TestMultiplyWith_BadOptions verifies rejection of an invalid cutoff.
func TestMultiplyWith_BadOptions(t *testing.T) {
	square := [][]float64{{1}}

	_, err := strassen.MultiplyWith(square, square, strassen.Options{NaiveBelow: 0})
	assert.ErrorIs(t, err, strassen.ErrBadOptions)
}

// TestMultiply_Scalar verifies the 1×1 base case.
func TestMultiply_Scalar(t *testing.T) {
	got, err := strassen.Multiply([][]float64{{-3}}, [][]float64{{7}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-21}}, got)
}

// TestMultiply_TwoByTwo checks a known 2×2 product.
func TestMultiply_TwoByTwo(t *testing.T) {
	a := [][]float64{{7, 11}, {14, 2}}
	b := [][]float64{{12, 2}, {19, 2}}

	got, err := strassen.Multiply(a, b)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([][]float64{{293, 36}, {206, 32}}, got))
}

// TestMultiply_Identity verifies A·I == A on a non-power-of-two side.
func TestMultiply_Identity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := randomMatrix(rng, 5)
	identity := make([][]float64, 5)
	for i := range identity {
		identity[i] = make([]float64, 5)
		identity[i][i] = 1
	}

	got, err := strassen.Multiply(a, identity)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(a, got))
}

// TestMultiply_PaddingIsInvisible multiplies odd-sized operands and
// checks the result has the original shape with no padding residue.
func TestMultiply_PaddingIsInvisible(t *testing.T) {
	a := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	b := [][]float64{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}}

	got, err := strassen.Multiply(a, b)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, row := range got {
		require.Len(t, row, 3)
	}
	assert.Empty(t, cmp.Diff(naiveProduct(a, b), got))
}

// TestMultiply_DoesNotMutateInputs verifies operands survive unchanged,
// including through the padding path.
func TestMultiply_DoesNotMutateInputs(t *testing.T) {
	a := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	b := [][]float64{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}}

	_, err := strassen.Multiply(a, b)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, a))
	assert.Empty(t, cmp.Diff([][]float64{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}}, b))
}

// TestMultiply_RandomAgainstNaive cross-checks every side length from
// 1 to 16 (powers of two and not) against the naive product.
func TestMultiply_RandomAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 1; n <= 16; n++ {
		for trial := 0; trial < 5; trial++ {
			a := randomMatrix(rng, n)
			b := randomMatrix(rng, n)

			got, err := strassen.Multiply(a, b)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(naiveProduct(a, b), got), "side %d trial %d", n, trial)
		}
	}
}

// TestMultiplyWith_CutoffMatchesDefault verifies a naive-leaf cutoff
// changes nothing about the result.
func TestMultiplyWith_CutoffMatchesDefault(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	a := randomMatrix(rng, 12)
	b := randomMatrix(rng, 12)

	pure, err := strassen.Multiply(a, b)
	require.NoError(t, err)

	cut, err := strassen.MultiplyWith(a, b, strassen.Options{NaiveBelow: 4})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(pure, cut))
}

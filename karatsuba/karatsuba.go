package karatsuba

import (
	"errors"
	"math/big"
)

var (
	// ErrNilOperand indicates one or both operands are nil.
	ErrNilOperand = errors.New("karatsuba: operands must be non-nil")
	// ErrNegativeOperand indicates one or both operands are negative.
	ErrNegativeOperand = errors.New("karatsuba: operands must be non-negative")
)

// one is the shared constant used to build low-part masks.
var one = big.NewInt(1)

// Multiply returns the exact product x·y of two non-negative integers.
//
// Algorithm Outline:
//  1. Base cases on bit-length: an operand of bit-length 0 is zero
//     (product 0); bit-length 1 means the operand is exactly 1, so the
//     product is the other operand.
//  2. Split both operands at h = ⌊max(bitlen)/2⌋ into high and low
//     parts: x = a·2ʰ + b, y = c·2ʰ + d.
//  3. Recursively compute ac, bd, and z = (a+b)·(c+d) − ac − bd.
//  4. Recombine: ac·2²ʰ + z·2ʰ + bd.
//
// Operands are never mutated; the result is freshly allocated.
//
// Complexity:
//
//	Time   = O(n^log₂3) ≈ O(n^1.585) bit operations
//	Memory = O(n) per level, recursion depth O(log n)
//
// Errors:
//   - ErrNilOperand      — if x or y is nil.
//   - ErrNegativeOperand — if x or y is negative.
func Multiply(x, y *big.Int) (*big.Int, error) {
	if x == nil || y == nil {
		return nil, ErrNilOperand
	}
	if x.Sign() < 0 || y.Sign() < 0 {
		return nil, ErrNegativeOperand
	}

	return multiply(x, y), nil
}

// multiply is the recursive core; both operands are known non-negative.
func multiply(x, y *big.Int) *big.Int {
	xl, yl := x.BitLen(), y.BitLen()

	// Base cases: bit-length 0 is the value 0, bit-length 1 is the
	// value 1, and multiplying by either is trivial.
	if xl == 0 || yl == 0 {
		return new(big.Int)
	}
	if xl == 1 {
		return new(big.Int).Set(y)
	}
	if yl == 1 {
		return new(big.Int).Set(x)
	}

	// Treat both operands as n bits wide, the shorter one implicitly
	// zero-padded, and split at the middle bit.
	n := max(xl, yl)
	h := uint(n / 2)

	a, b := splitInt(x, h)
	c, d := splitInt(y, h)

	ac := multiply(a, c)
	bd := multiply(b, d)

	// z = (a+b)·(c+d) − ac − bd, the cross term ad + bc obtained with
	// a single extra multiplication.
	z := multiply(new(big.Int).Add(a, b), new(big.Int).Add(c, d))
	z.Sub(z, ac)
	z.Sub(z, bd)

	result := new(big.Int).Lsh(ac, 2*h)
	result.Add(result, z.Lsh(z, h))
	result.Add(result, bd)

	return result
}

// splitInt splits n at bit position l: hi holds the bits above l, lo
// the lowest l bits, so n == hi·2ˡ + lo. When l meets or exceeds n's
// bit-length, hi is zero and lo is n itself.
func splitInt(n *big.Int, l uint) (hi, lo *big.Int) {
	hi = new(big.Int).Rsh(n, l)

	mask := new(big.Int).Lsh(one, l)
	mask.Sub(mask, one)
	lo = mask.And(mask, n)

	return hi, lo
}

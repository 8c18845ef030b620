package karatsuba

import "math/big"

// SplitInt exposes splitInt to the package tests.
func SplitInt(n *big.Int, l uint) (hi, lo *big.Int) { return splitInt(n, l) }

package karatsuba_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/dandc/karatsuba"
)

// ExampleMultiply computes a small product.
func ExampleMultiply() {
	p, err := karatsuba.Multiply(big.NewInt(11), big.NewInt(9))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)
	// Output: 99
}

// ExampleMultiply_large multiplies operands far beyond native width.
func ExampleMultiply_large() {
	x, _ := new(big.Int).SetString("340282366920938463463374607431768211457", 10) // 2^128 + 1
	y, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10) // 2^128 - 1

	p, err := karatsuba.Multiply(x, y)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// (2^128+1)(2^128-1) == 2^256 - 1
	fmt.Println(p.Cmp(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))))
	// Output: 0
}

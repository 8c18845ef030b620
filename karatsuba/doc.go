// Package karatsuba multiplies arbitrary-precision non-negative
// integers exactly, using Karatsuba's divide-and-conquer scheme.
//
// 🚀 What is karatsuba?
//
//	Schoolbook multiplication of two n-bit integers costs O(n²) bit
//	operations. Karatsuba splits each operand at the middle bit,
//	x = a·2ʰ + b and y = c·2ʰ + d, and observes that the naive four
//	sub-products collapse into three:
//
//	  ac = a·c
//	  bd = b·d
//	  z  = (a+b)·(c+d) − ac − bd     // the single extra multiplication
//	  xy = ac·2²ʰ + z·2ʰ + bd
//
//	Three recursive calls on half-size operands give the recurrence
//	T(n) = 3·T(n/2) + O(n), i.e. O(n^log₂3) ≈ O(n^1.585).
//
// ✨ Key features:
//   - exact for all non-negative operands, any magnitude
//   - pure function over *big.Int; operands are never mutated
//   - fail-fast sentinel errors for nil or negative operands
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dandc/karatsuba"
//
//	p, err := karatsuba.Multiply(big.NewInt(11), big.NewInt(9))
//	if err != nil {
//	  // handle ErrNilOperand / ErrNegativeOperand
//	}
//	fmt.Println(p) // 99
//
// The subtraction in z is exact: z equals the cross term a·d + b·c, so
// the recombination reconstructs a true distributive expansion of x·y
// with no rounding anywhere.
//
// Performance:
//   - Time:   O(n^1.585) bit operations for n-bit operands
//   - Memory: O(n) per level, recursion depth O(log n)
package karatsuba

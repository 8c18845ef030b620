// Package mergesort provides a generic top-down merge sort and the
// linear-time stable merge it is built on.
//
// 🚀 What is mergesort?
//
//	The textbook divide-and-conquer sort: split the sequence at the
//	midpoint, sort each half recursively, then merge the two sorted
//	halves in linear time. The merge is exposed on its own because it
//	is a useful primitive in its own right — closestpair reuses its
//	key-function form to maintain y-order during its combine step.
//
// ✨ Key features:
//   - Sort / SortFunc — O(n·log n) worst case, optimal for comparison sorting
//   - Merge / MergeFunc — O(|a|+|b|) stable merge of two pre-sorted slices
//   - Stability — on equal keys the element from the left input is emitted first
//   - Inputs are never mutated; every call returns freshly built slices
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dandc/mergesort"
//
//	sorted, err := mergesort.Sort([]int{4, 1, 2, 5, 3})
//	if err != nil {
//	  // handle ErrEmptyInput
//	}
//	fmt.Println(sorted) // [1 2 3 4 5]
//
// Preconditions:
//   - Sort/SortFunc require a non-empty input slice (ErrEmptyInput).
//   - Merge/MergeFunc require both inputs already sorted by the shared
//     key; this is a documented contract, not a runtime-checked error —
//     unsorted inputs yield an unspecified (not sorted) result.
//
// Performance:
//   - Sort:  O(n·log n) time, O(n) extra memory, recursion depth O(log n)
//   - Merge: O(|a|+|b|) time and memory
package mergesort

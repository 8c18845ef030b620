package mergesort

import "golang.org/x/exp/constraints"

// Sort returns a sorted copy of s in ascending order.
//
// Algorithm Outline:
//  1. Base case: a single-element slice is already sorted.
//  2. Split s at mid = len(s)/2 into two contiguous halves
//     (left half is the smaller one when len(s) is odd).
//  3. Recursively sort each half.
//  4. Merge the two sorted halves in linear time.
//
// The recursion tree is balanced with depth O(log n), so stack-based
// recursion is safe for any realistic input size.
//
// Complexity:
//
//	Time   = O(n·log n), worst case — optimal for comparison sorting
//	Memory = O(n)
//
// Errors:
//   - ErrEmptyInput — if s has no elements.
func Sort[T constraints.Ordered](s []T) ([]T, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}
	return sortRec(s, lessOrdered[T]), nil
}

// SortFunc is Sort under a caller-supplied strict ordering: less(a, b)
// reports whether a must sort before b. The same contract and
// complexity as Sort apply.
//
// Errors:
//   - ErrEmptyInput — if s has no elements.
//   - ErrNilLess    — if less is nil.
func SortFunc[T any](s []T, less func(a, b T) bool) ([]T, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}
	if less == nil {
		return nil, ErrNilLess
	}
	return sortRec(s, less), nil
}

// sortRec sorts s recursively. It only reads s; every returned slice is
// freshly built (the single-element base case copies, so the result
// never aliases the input).
func sortRec[T any](s []T, less func(a, b T) bool) []T {
	if len(s) == 1 {
		return []T{s[0]}
	}
	mid := len(s) / 2
	return MergeFunc(sortRec(s[:mid], less), sortRec(s[mid:], less), less)
}

// Merge combines two slices, each already sorted in ascending order,
// into one sorted slice containing every element of both.
//
// Stability: when elements compare equal, the element from a is emitted
// before the element from b. Either input may be empty; Merge(a, nil)
// copies a.
//
// Precondition (not runtime-checked): a and b are each sorted. Unsorted
// inputs yield an unspecified result.
//
// Complexity: O(|a|+|b|) time and memory.
func Merge[T constraints.Ordered](a, b []T) []T {
	return MergeFunc(a, b, lessOrdered[T])
}

// MergeFunc is Merge under a caller-supplied strict ordering; it is the
// key-function variant used by closestpair to merge point slices by
// y-coordinate. less must be non-nil and consistent with the order both
// inputs are sorted by.
//
// Complexity: O(|a|+|b|) time and memory.
func MergeFunc[T any](a, b []T, less func(a, b T) bool) []T {
	result := make([]T, 0, len(a)+len(b))

	// Advance two index cursors over immutable views; consuming the
	// head by re-slicing per element would degrade nothing in Go, but
	// cursors keep the linear bound explicit.
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		// Take from a unless b's head is strictly smaller — this is
		// what makes the merge stable (left wins ties).
		if less(b[j], a[i]) {
			result = append(result, b[j])
			j++
		} else {
			result = append(result, a[i])
			i++
		}
	}

	// At most one of the two tails is non-empty.
	result = append(result, a[i:]...)
	result = append(result, b[j:]...)

	return result
}

// lessOrdered is the natural ascending order for Ordered element types.
func lessOrdered[T constraints.Ordered](a, b T) bool { return a < b }

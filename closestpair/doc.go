// Package closestpair finds the closest pair of points in the plane in
// O(n·log n) time — no slower, asymptotically, than sorting the points.
//
// 🚀 What is closestpair?
//
//	A divide-and-conquer search over a point set: pre-sort by x once,
//	split at the median, solve each half, then catch pairs that
//	straddle the split with a bounded "strip" scan in y-order. The
//	y-order is maintained level-by-level with the same linear merge
//	that powers mergesort, so no re-sorting ever happens inside the
//	recursion.
//
// ✨ Key features:
//   - exact result: the returned pair realizes the global minimum
//     Euclidean distance, verified against brute force in tests
//   - squared-distance comparisons throughout (no square roots on the
//     hot path; squaring is monotonic on non-negative distances)
//   - deterministic tie-breaks: the winning pair is the one discovered
//     first, returned smaller-x first
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dandc/closestpair"
//
//	pts := []closestpair.Point{{X: -4, Y: 76}, {X: 37, Y: -15}, {X: 59, Y: -4}}
//	p, q, err := closestpair.ClosestPair(pts)
//	if err != nil {
//	  // handle ErrTooFewPoints
//	}
//	fmt.Println(p, q)
//
// The strip scan compares each strip point against at most the 7
// points that follow it in y-order. That window is a correctness
// invariant backed by a packing argument, not a tunable constant:
// shrinking it can miss the true closest pair, growing it only wastes
// work.
//
// Performance:
//   - Time:   O(n·log n)
//   - Memory: O(n), recursion depth O(log n)
package closestpair

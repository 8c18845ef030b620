package closestpair

import (
	"math"

	"github.com/katalvlaran/dandc/mergesort"
)

// stripWindow bounds how many y-successors each strip point is compared
// against. A packing argument guarantees that any pair closer than the
// current best whose members straddle the split lies within 7 strip
// positions of each other in y-order; smaller windows break
// correctness, larger ones only cost time.
const stripWindow = 7

// ClosestPair returns the two points of the input realizing the minimum
// Euclidean distance over all pairs, smaller x-coordinate first.
//
// Algorithm Outline:
//  1. Sort all points by x once, up front (stable merge sort).
//  2. Recurse on the x-sorted slice: split at the midpoint, solve each
//     half, and take the better of the two half-results.
//  3. Combine: merge the halves' y-sorted slices in linear time, build
//     the strip of points within the current best distance of the
//     median x, and scan each strip point against its next 7 y-order
//     successors, keeping any strictly closer pair found.
//
// Ties are broken by discovery order; when a strip pair wins, it is
// normalized so the smaller-x point comes first.
//
// Complexity:
//
//	Time   = O(n·log n)
//	Memory = O(n), recursion depth O(log n)
//
// Errors:
//   - ErrTooFewPoints — if len(points) < 2.
func ClosestPair(points []Point) (Point, Point, error) {
	if len(points) < 2 {
		return Point{}, Point{}, ErrTooFewPoints
	}

	xSorted, err := mergesort.SortFunc(points, byX)
	if err != nil {
		return Point{}, Point{}, err
	}
	p, q, _, _ := closestRec(xSorted)

	return p, q, nil
}

// closestRec solves the closest-pair problem on a slice already sorted
// by x. It returns the best pair found (found=false only for the
// pathological single-point call) together with the input re-sorted by
// y, which the caller's combine step merges in linear time.
func closestRec(pts []Point) (p, q Point, found bool, ySorted []Point) {
	switch len(pts) {
	case 2:
		// Normal base case: the only pair is the answer. The slice is
		// x-sorted, so the pair is already in smaller-x-first order.
		if byY(pts[1], pts[0]) {
			ySorted = []Point{pts[1], pts[0]}
		} else {
			ySorted = []Point{pts[0], pts[1]}
		}

		return pts[0], pts[1], true, ySorted
	case 1:
		// Pathological base case: a 3-element call splits into a
		// singleton and a duple. No pair exists here; the singleton
		// half is disqualified via found=false.
		return Point{}, Point{}, false, pts
	}

	mid := len(pts) / 2
	pl, ql, foundL, yLeft := closestRec(pts[:mid])
	pr, qr, foundR, yRight := closestRec(pts[mid:])

	// A half without a pair counts as infinitely distant.
	dLeft, dRight := math.Inf(1), math.Inf(1)
	if foundL {
		dLeft = DistanceSquared(pl, ql)
	}
	if foundR {
		dRight = DistanceSquared(pr, qr)
	}

	var bestD float64
	if dLeft <= dRight {
		bestD, p, q = dLeft, pl, ql
	} else {
		bestD, p, q = dRight, pr, qr
	}

	ySorted = mergesort.MergeFunc(yLeft, yRight, byY)

	// Any cross-half pair closer than bestD must lie in a strip of
	// half-width bestD around the median x. Build it in y-order from
	// the freshly merged slice. Comparing squared x-offsets against the
	// squared distance keeps the whole routine root-free.
	median := pts[mid].X
	strip := make([]Point, 0, len(ySorted))
	for _, pt := range ySorted {
		dx := pt.X - median
		if dx*dx <= bestD {
			strip = append(strip, pt)
		}
	}

	for i, q1 := range strip {
		for j := i + 1; j <= i+stripWindow && j < len(strip); j++ {
			q2 := strip[j]
			if d := DistanceSquared(q1, q2); d < bestD {
				bestD = d
				if q1.X <= q2.X {
					p, q = q1, q2
				} else {
					p, q = q2, q1
				}
			}
		}
	}

	return p, q, true, ySorted
}

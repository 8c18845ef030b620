package closestpair

import (
	"errors"
	"math"
)

// ErrTooFewPoints indicates the input holds fewer than two points, so
// no pair exists.
var ErrTooFewPoints = errors.New("closestpair: finding a closest pair requires 2 or more points")

// Point is a location in the plane. Points carry no identity beyond
// their coordinates; duplicates are allowed (a duplicated point forms a
// zero-distance closest pair with its twin).
type Point struct {
	X, Y float64
}

// DistanceSquared returns the squared Euclidean distance between p and q.
// All internal comparisons use squared distances; squaring is monotonic
// on non-negative values, so orderings are unaffected.
func DistanceSquared(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Sqrt(DistanceSquared(p, q))
}

// byX orders points by x-coordinate. The sort it feeds is stable, so
// points sharing an x keep their input order.
func byX(a, b Point) bool { return a.X < b.X }

// byY orders points by y-coordinate, for the merge that maintains
// y-order through the recursion.
func byY(a, b Point) bool { return a.Y < b.Y }

package shapes

import "math"

// The package-wide epsilon values. They are deliberately not configurable.
// A few local thresholds (the near-straight corner test, the near-coincident
// arc test, the minimum mapping segment span) are literals in the functions
// that use them.
const (
	// distanceEpsilon is the threshold under which two points, or two
	// outline progress values, are considered coincident.
	distanceEpsilon = 1e-5

	// angleEpsilon is the threshold under which a determinant or angle is
	// considered degenerate.
	angleEpsilon = 1e-6

	// relaxedDistanceEpsilon relaxes distanceEpsilon for checks that span
	// many chained operations and accumulate rounding error.
	relaxedDistanceEpsilon = 5e-3
)

const twoPi = 2 * math.Pi

func interpolate(start, stop, fraction float64) float64 {
	return (1-fraction)*start + fraction*stop
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// positiveModulo returns num mod mod, in [0, mod).
func positiveModulo(num, mod float64) float64 {
	m := math.Mod(num, mod)
	if m < 0 {
		m += mod
	}
	return m
}

// progressDistance returns the distance between two outline progress values,
// aware that progress wraps at 1. The result is at most 0.5.
func progressDistance(p1, p2 float64) float64 {
	d := math.Abs(p1 - p2)
	return min(d, 1-d)
}

// progressInRange reports whether progress lies in the cyclic range from
// progressFrom to progressTo, where a range with progressTo < progressFrom
// wraps around 1.
func progressInRange(progress, progressFrom, progressTo float64) bool {
	if progressTo >= progressFrom {
		return progress >= progressFrom && progress <= progressTo
	}
	return progress >= progressFrom || progress <= progressTo
}

// direction returns the unit vector with the same angle as v.
func direction(v Vec2) Vec2 {
	d := v.Hypot()
	if d <= 0 {
		invalidStatef("shapes: cannot take the direction of a zero-length vector")
	}
	return v.Div(d)
}

// radialToCartesian returns the point at the given distance from center in
// the direction of the given angle.
func radialToCartesian(radius, angle float64, center Point) Point {
	return center.Translate(VecFromAngle(angle).Mul(radius))
}

// convex reports whether the vertex curr turns outward, i.e. whether the
// edges into and out of curr make a positive cross product. The result flips
// if the caller's y-axis flips.
func convex(prev, curr, next Point) bool {
	return curr.Sub(prev).Cross(next.Sub(curr)) > 0
}

// findLineIntersection intersects the lines p0 + d0·s and p1 + d1·u. It
// reports false when the lines are close enough to parallel that the solve
// is degenerate.
func findLineIntersection(p0 Point, d0 Vec2, p1 Point, d1 Vec2) (Point, bool) {
	rotatedD1 := d1.Rot90()
	den := d0.Dot(rotatedD1)
	if math.Abs(den) < angleEpsilon {
		return Point{}, false
	}
	num := p1.Sub(p0).Dot(rotatedD1)
	// Also check the relative magnitude, for lines that are nearly parallel
	// but whose intersection would be very far away.
	if math.Abs(den) < angleEpsilon*math.Abs(num) {
		return Point{}, false
	}
	return p0.Translate(d0.Mul(num / den)), true
}

// solveQuadratic finds real roots of c0 + c1·x + c2·x² = 0, favoring
// numerical robustness over strictness: a degenerate quadratic is treated as
// a linear equation. Roots are returned in ascending order in the first
// return value, with the second specifying how many were found.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) {
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		}
		return [2]float64{root2, root1}, 2
	}
	return [2]float64{root1}, 1
}

// option is a tiny Option type for hot paths where pointer-shaped state
// would allocate.
type option[T any] struct {
	value T
	isSet bool
}

func (opt *option[T]) set(v T) {
	opt.value = v
	opt.isSet = true
}

func (opt *option[T]) clear() {
	*opt = option[T]{}
}

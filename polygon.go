package shapes

import (
	"math"
	"slices"
)

// RoundedPolygon is a closed shape built from an ordered, logically cyclic
// list of features whose concatenated curves form a contiguous loop. It is
// immutable; all transforming operations return new polygons.
//
// Polygons are built either from a vertex list with per-vertex
// [CornerRounding] (see [PolygonFromVertices] and the parametric factories
// in this package) or from a pre-built feature list (see
// [PolygonFromFeatures]).
type RoundedPolygon struct {
	features []Feature
	cubics   []Cubic
	center   Point
}

// Features returns the polygon's features in outline order. The slice must
// not be modified.
func (p RoundedPolygon) Features() []Feature {
	return p.features
}

// Cubics returns the polygon's flattened curve list. The list is contiguous
// and closed: each curve's anchor1 meets the next curve's anchor0, and the
// last curve ends where the first begins. Zero-length curves present in the
// features are dropped here. The slice must not be modified.
func (p RoundedPolygon) Cubics() []Cubic {
	return p.cubics
}

// Center returns the polygon's center, either the one supplied at
// construction or the average of the curve anchors.
func (p RoundedPolygon) Center() Point {
	return p.center
}

// Equal reports whether the two polygons have equal features.
func (p RoundedPolygon) Equal(o RoundedPolygon) bool {
	return slices.EqualFunc(p.features, o.features, Feature.Equal)
}

// Transform applies f to the polygon and returns the result. The center is
// mapped through f as well.
func (p RoundedPolygon) Transform(f func(Point) Point) RoundedPolygon {
	features := make([]Feature, len(p.features))
	for i, feature := range p.features {
		features[i] = feature.Transform(f)
	}
	return newRoundedPolygon(features, f(p.center))
}

// Bounds returns the exact bounding box of the polygon.
func (p RoundedPolygon) Bounds() Rect {
	return p.bounds(Cubic.Bounds)
}

// ApproxBounds returns the bounding box of all control points. It contains
// the exact bounds and is cheaper to compute, but looser wherever the
// outline curves.
func (p RoundedPolygon) ApproxBounds() Rect {
	return p.bounds(Cubic.ApproxBounds)
}

func (p RoundedPolygon) bounds(cubicBounds func(Cubic) Rect) Rect {
	b := cubicBounds(p.cubics[0])
	for _, c := range p.cubics[1:] {
		b = b.Union(cubicBounds(c))
	}
	return b
}

// MaxBounds returns a square centered at the polygon's center that contains
// the shape under arbitrary rotation about that center. Its half-side is the
// maximum distance from the center to any curve's start anchor or midpoint.
func (p RoundedPolygon) MaxBounds() Rect {
	var maxDistSquared float64
	for _, c := range p.cubics {
		anchorDistance := c.Anchor0.DistanceSquared(p.center)
		middleDistance := c.Eval(0.5).DistanceSquared(p.center)
		maxDistSquared = max(maxDistSquared, anchorDistance, middleDistance)
	}
	d := math.Sqrt(maxDistSquared)
	return Rect{p.center.X - d, p.center.Y - d, p.center.X + d, p.center.Y + d}
}

// Normalized returns the polygon scaled and translated so that its bounding
// box fits in the unit square (0,0)–(1,1), centered along the shorter axis.
func (p RoundedPolygon) Normalized() RoundedPolygon {
	bounds := p.Bounds()
	width := bounds.Width()
	height := bounds.Height()
	side := max(width, height)
	// Center the shape in the unit square along whichever axis it is
	// smaller on.
	offsetX := (side-width)/2 - bounds.X0
	offsetY := (side-height)/2 - bounds.Y0
	return p.Transform(func(pt Point) Point {
		return Pt((pt.X+offsetX)/side, (pt.Y+offsetY)/side)
	})
}

// newRoundedPolygon is the single internal constructor both factory paths
// converge on. It flattens the features, validates continuity of the
// resulting loop, and resolves the center.
func newRoundedPolygon(features []Feature, center Point) RoundedPolygon {
	if !center.IsFinite() {
		center = calculateCenter(features)
	}
	cubics := flattenFeatures(features, center)
	prev := cubics[len(cubics)-1]
	for _, c := range cubics {
		if math.Abs(c.Anchor0.X-prev.Anchor1.X) > distanceEpsilon ||
			math.Abs(c.Anchor0.Y-prev.Anchor1.Y) > distanceEpsilon {
			invalidArgf("shapes: polygon features must be contiguous, anchor1 %v does not meet anchor0 %v",
				prev.Anchor1, c.Anchor0)
		}
		prev = c
	}
	return RoundedPolygon{features: features, cubics: cubics, center: center}
}

// calculateCenter returns the arithmetic mean of the start anchors of all
// curves in all features.
func calculateCenter(features []Feature) Point {
	var sum Vec2
	var n int
	for _, f := range features {
		for _, c := range f.cubics {
			sum = sum.Add(Vec2(c.Anchor0))
			n++
		}
	}
	if n == 0 {
		return Point{}
	}
	return Point(sum.Div(float64(n)))
}

// flattenFeatures produces the polygon's flat curve list. If the first
// feature is a three-cubic corner, its central arc is split at t=0.5 and the
// list is rotated to start at that split, so that the outline's origin falls
// mid-corner rather than on a corner boundary; morph matching relies on
// this. Zero-length curves are dropped, but their endpoint overwrites the
// preceding curve's anchor so the chain stays continuous, and the final
// curve is rewritten to end exactly at the first curve's start.
func flattenFeatures(features []Feature, center Point) []Cubic {
	var firstSplitStart, firstSplitEnd []Cubic
	if len(features) > 0 && features[0].IsCorner() && len(features[0].cubics) == 3 {
		centerCubic := features[0].cubics[1]
		start, end := centerCubic.Split(0.5)
		firstSplitStart = []Cubic{features[0].cubics[0], start}
		firstSplitEnd = []Cubic{end, features[0].cubics[2]}
	}

	var cubics []Cubic
	var first, last option[Cubic]
	for i := 0; i <= len(features); i++ {
		var featureCubics []Cubic
		switch {
		case i == 0 && firstSplitEnd != nil:
			featureCubics = firstSplitEnd
		case i == len(features):
			if firstSplitStart == nil {
				continue
			}
			featureCubics = firstSplitStart
		default:
			featureCubics = features[i].cubics
		}
		for _, cubic := range featureCubics {
			if !cubic.ZeroLength() {
				if last.isSet {
					cubics = append(cubics, last.value)
				}
				last.set(cubic)
				if !first.isSet {
					first.set(cubic)
				}
			} else if last.isSet {
				// Dropping a zero-length curve can open a hole in the
				// chain; carry its endpoint into the previous curve.
				lc := last.value
				lc.Anchor1 = cubic.Anchor1
				last.set(lc)
			}
		}
	}
	if first.isSet && last.isSet {
		lc := last.value
		cubics = append(cubics, Cubic{lc.Anchor0, lc.Control0, lc.Control1, first.value.Anchor0})
	} else {
		cubics = append(cubics, EmptyCubic(center))
	}
	return cubics
}

// polygonFromVertices runs the corner construction: one rounded-corner
// record per vertex, cut allocation along each side, then corner curves and
// straight edges stitched into a cyclic (corner, edge, ...) feature list.
func polygonFromVertices(vertices []Point, rounding CornerRounding, perVertexRounding []CornerRounding, center Point) RoundedPolygon {
	n := len(vertices)
	if n < 3 {
		invalidArgf("shapes: polygons must have at least 3 vertices, got %d", n)
	}
	if perVertexRounding != nil && len(perVertexRounding) != n {
		invalidArgf("shapes: perVertexRounding must have one entry per vertex, got %d entries for %d vertices",
			len(perVertexRounding), n)
	}
	for _, v := range vertices {
		if !v.IsFinite() {
			invalidArgf("shapes: vertex coordinates must be finite, got %v", v)
		}
	}

	roundedCorners := make([]roundedCorner, n)
	for i := range vertices {
		r := rounding
		if perVertexRounding != nil {
			r = perVertexRounding[i]
		}
		if r.Radius < 0 || r.Smoothing < 0 || r.Smoothing > 1 {
			invalidArgf("shapes: corner rounding for vertex %d must have a non-negative radius and smoothing in [0, 1], got %+v", i, r)
		}
		prev := vertices[(i+n-1)%n]
		next := vertices[(i+1)%n]
		roundedCorners[i] = newRoundedCorner(prev, vertices[i], next, r)
	}

	// Cut allocation: each side has finite length, which the two corners at
	// its ends compete for. Round cuts win over smoothing cuts.
	cutAdjusts := make([][2]float64, n)
	for i := range cutAdjusts {
		next := (i + 1) % n
		expectedRoundCut := roundedCorners[i].expectedRoundCut + roundedCorners[next].expectedRoundCut
		expectedCut := roundedCorners[i].expectedCut() + roundedCorners[next].expectedCut()
		sideSize := vertices[i].Distance(vertices[next])
		switch {
		case expectedRoundCut > sideSize:
			// Rounding alone doesn't fit; scale the rounds proportionally
			// and drop all smoothing.
			cutAdjusts[i] = [2]float64{sideSize / expectedRoundCut, 0}
		case expectedCut > sideSize:
			cutAdjusts[i] = [2]float64{1, (sideSize - expectedRoundCut) / (expectedCut - expectedRoundCut)}
		default:
			cutAdjusts[i] = [2]float64{1, 1}
		}
	}

	corners := make([][]Cubic, n)
	for i := range corners {
		var allowedCuts [2]float64
		for delta := 0; delta < 2; delta++ {
			adjust := cutAdjusts[(i+n-1+delta)%n]
			allowedCuts[delta] = roundedCorners[i].expectedRoundCut*adjust[0] +
				(roundedCorners[i].expectedCut()-roundedCorners[i].expectedRoundCut)*adjust[1]
		}
		corners[i] = roundedCorners[i].corner(allowedCuts[0], allowedCuts[1])
	}

	features := make([]Feature, 0, 2*n)
	for i := range vertices {
		prev := vertices[(i+n-1)%n]
		next := vertices[(i+1)%n]
		features = append(features, newFeature(featureCorner, convex(prev, vertices[i], next), corners[i]))

		cornerEnd := corners[i][len(corners[i])-1].Anchor1
		nextCornerStart := corners[(i+1)%n][0].Anchor0
		features = append(features, newFeature(featureEdge, false, []Cubic{StraightLine(cornerEnd, nextCornerStart)}))
	}
	return newRoundedPolygon(features, center)
}

// roundedCorner precomputes the geometry of one vertex's rounding: the unit
// vectors along its two edges and how much edge length the requested
// rounding wants to consume.
type roundedCorner struct {
	p0, p1, p2   Point
	d1, d2       Vec2
	cornerRadius float64
	smoothing    float64
	cosAngle     float64
	sinAngle     float64

	// expectedRoundCut is the distance along each edge consumed by the
	// inner circular arc, r·(1+cos θ)/sin θ, which follows from
	// tan(θ/2) = sin θ / (1 + cos θ).
	expectedRoundCut float64
}

func newRoundedCorner(p0, p1, p2 Point, rounding CornerRounding) roundedCorner {
	c := roundedCorner{
		p0: p0, p1: p1, p2: p2,
		cornerRadius: rounding.Radius,
		smoothing:    rounding.Smoothing,
	}
	v01 := p0.Sub(p1)
	v21 := p2.Sub(p1)
	d01 := v01.Hypot()
	d21 := v21.Hypot()
	// A zero-length edge collapses the corner to "no rounding".
	if d01 > 0 && d21 > 0 {
		c.d1 = v01.Div(d01)
		c.d2 = v21.Div(d21)
		c.cosAngle = c.d1.Dot(c.d2)
		c.sinAngle = math.Sqrt(1 - c.cosAngle*c.cosAngle)
		if c.sinAngle > 1e-3 {
			c.expectedRoundCut = c.cornerRadius * (c.cosAngle + 1) / c.sinAngle
		}
	}
	return c
}

// expectedCut is the total edge length the corner wants, rounding plus
// smoothing flanks.
func (c *roundedCorner) expectedCut() float64 {
	return (1 + c.smoothing) * c.expectedRoundCut
}

// corner returns the corner's curves given the edge length it was actually
// allowed to consume on each side. The result is either a single zero-length
// curve at the vertex (unrounded or degenerate corners) or the triple
// (flanking curve, central circular arc, reversed flanking curve).
func (c *roundedCorner) corner(allowedCut0, allowedCut1 float64) []Cubic {
	allowedCut := min(allowedCut0, allowedCut1)
	if c.expectedRoundCut < distanceEpsilon ||
		allowedCut < distanceEpsilon ||
		c.cornerRadius < distanceEpsilon {
		return []Cubic{EmptyCubic(c.p1)}
	}
	actualRoundCut := min(allowedCut, c.expectedRoundCut)
	actualSmoothing0 := c.actualSmoothing(allowedCut0)
	actualSmoothing1 := c.actualSmoothing(allowedCut1)
	actualR := c.cornerRadius * actualRoundCut / c.expectedRoundCut
	// The arc center sits along the bisector, at the hypotenuse of the
	// (radius, cut) right triangle.
	centerDistance := math.Sqrt(actualR*actualR + actualRoundCut*actualRoundCut)
	center := c.p1.Translate(direction(c.d1.Add(c.d2).Div(2)).Mul(centerDistance))
	tangent0 := c.p1.Translate(c.d1.Mul(actualRoundCut))
	tangent1 := c.p1.Translate(c.d2.Mul(actualRoundCut))
	flanking0 := c.flankingCurve(actualRoundCut, actualSmoothing0, c.p0, tangent0, tangent1, center, actualR)
	flanking1 := c.flankingCurve(actualRoundCut, actualSmoothing1, c.p2, tangent1, tangent0, center, actualR).Reverse()
	return []Cubic{
		flanking0,
		CircularArc(center, flanking0.Anchor1, flanking1.Anchor0),
		flanking1,
	}
}

// actualSmoothing scales the configured smoothing by how much of the wanted
// cut actually fits: full smoothing when the whole expected cut fits, none
// when not even the round cut does, linear in between.
func (c *roundedCorner) actualSmoothing(allowedCut float64) float64 {
	switch {
	case allowedCut > c.expectedCut():
		return c.smoothing
	case allowedCut > c.expectedRoundCut:
		return c.smoothing * (allowedCut - c.expectedRoundCut) / (c.expectedCut() - c.expectedRoundCut)
	default:
		return 0
	}
}

// flankingCurve bridges the straight edge toward sideStart and the central
// circular arc. With zero smoothing it degenerates to a curve lying exactly
// on the arc's tangent point.
func (c *roundedCorner) flankingCurve(actualRoundCut, actualSmoothing float64, sideStart Point,
	circleSegmentIntersection, otherCircleSegmentIntersection, circleCenter Point, actualR float64) Cubic {
	sideDirection := direction(sideStart.Sub(c.p1))
	curveStart := c.p1.Translate(sideDirection.Mul(actualRoundCut * (1 + actualSmoothing)))
	// The curve end lies on the circle, pushed from the tangent point
	// toward the middle of the corner as smoothing grows.
	p := circleSegmentIntersection.Lerp(
		circleSegmentIntersection.Midpoint(otherCircleSegmentIntersection), actualSmoothing)
	curveEnd := circleCenter.Translate(direction(p.Sub(circleCenter)).Mul(actualR))
	// The end anchor sits where the edge meets the circle tangent at the
	// curve end, keeping the join smooth on both sides.
	circleTangent := curveEnd.Sub(circleCenter).Rot90()
	anchorEnd, ok := findLineIntersection(sideStart, sideDirection, curveEnd, circleTangent)
	if !ok {
		anchorEnd = curveEnd
	}
	// Straight-line controls toward the end anchor keep the start of the
	// curve flat against the edge.
	anchorStart := Pt((curveStart.X+2*anchorEnd.X)/3, (curveStart.Y+2*anchorEnd.Y)/3)
	return Cubic{curveStart, anchorStart, anchorEnd, curveEnd}
}

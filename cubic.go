package shapes

import (
	"fmt"
	"math"
)

// Cubic is an immutable cubic Bézier curve with two anchor points and two
// control points.
type Cubic struct {
	Anchor0  Point
	Control0 Point
	Control1 Point
	Anchor1  Point
}

// CubicFromPoints returns the cubic with the given anchors and controls.
func CubicFromPoints(anchor0, control0, control1, anchor1 Point) Cubic {
	return Cubic{anchor0, control0, control1, anchor1}
}

// CubicFromCoords returns the cubic with the given anchor and control
// coordinates, laid out as (anchor0, control0, control1, anchor1).
func CubicFromCoords(a0x, a0y, c0x, c0y, c1x, c1y, a1x, a1y float64) Cubic {
	return Cubic{Pt(a0x, a0y), Pt(c0x, c0y), Pt(c1x, c1y), Pt(a1x, a1y)}
}

// StraightLine returns a cubic tracing the line from p0 to p1, with the
// control points placed at ⅓ and ⅔ of the segment.
func StraightLine(p0, p1 Point) Cubic {
	return Cubic{
		Anchor0:  p0,
		Control0: p0.Lerp(p1, 1.0/3.0),
		Control1: p0.Lerp(p1, 2.0/3.0),
		Anchor1:  p1,
	}
}

// EmptyCubic returns a zero-length cubic whose four points all coincide at
// p. Zero-length cubics mark unrounded corners in [Feature] lists.
func EmptyCubic(p Point) Cubic {
	return Cubic{p, p, p, p}
}

// CircularArc returns a single cubic approximating the minor arc (at most
// 180 degrees) between p0 and p1 on the circle around center. p0 and p1 must
// be equidistant from center. The sweep direction is whichever of the two
// takes the shorter way around. For nearly coincident endpoints the arc
// degenerates to [StraightLine].
func CircularArc(center, p0, p1 Point) Cubic {
	p0d := direction(p0.Sub(center))
	p1d := direction(p1.Sub(center))
	rotatedP0 := p0d.Rot90()
	rotatedP1 := p1d.Rot90()
	clockwise := rotatedP0.Dot(p1.Sub(center)) >= 0
	cosa := p0d.Dot(p1d)
	if cosa > 0.999 {
		// The endpoints are essentially on top of each other; there is no
		// useful arc to draw.
		return StraightLine(p0, p1)
	}
	k := p0.Distance(center) * 4.0 / 3.0 *
		(math.Sqrt(2*(1-cosa)) - math.Sqrt(1-cosa*cosa)) / (1 - cosa)
	if !clockwise {
		k = -k
	}
	return Cubic{
		Anchor0:  p0,
		Control0: p0.Translate(rotatedP0.Mul(k)),
		Control1: p1.Translate(rotatedP1.Mul(-k)),
		Anchor1:  p1,
	}
}

// Eval evaluates the curve at t ∈ [0, 1] using the cubic Bernstein form.
func (c Cubic) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.Anchor0).Mul(mt * mt * mt)
	b := Vec2(c.Control0).Mul(mt * mt * 3.0)
	cc := Vec2(c.Control1).Mul(mt * 3.0)
	d := Vec2(c.Anchor1)
	return Point(a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t)))
}

// Split subdivides the curve at t, using de Casteljau. The two halves share
// the point returned by Eval(t) exactly.
func (c Cubic) Split(t float64) (Cubic, Cubic) {
	m := c.Eval(t)
	ab := c.Anchor0.Lerp(c.Control0, t)
	bc := c.Control0.Lerp(c.Control1, t)
	cd := c.Control1.Lerp(c.Anchor1, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	return Cubic{c.Anchor0, ab, abc, m}, Cubic{m, bcd, cd, c.Anchor1}
}

// ZeroLength reports whether the curve's anchors coincide within the
// package's distance epsilon, measured per coordinate.
func (c Cubic) ZeroLength() bool {
	return math.Abs(c.Anchor0.X-c.Anchor1.X) < distanceEpsilon &&
		math.Abs(c.Anchor0.Y-c.Anchor1.Y) < distanceEpsilon
}

// Reverse returns the same curve traced in the opposite direction.
func (c Cubic) Reverse() Cubic {
	return Cubic{c.Anchor1, c.Control1, c.Control0, c.Anchor0}
}

// Bounds returns the exact bounding box of the curve, solving the quadratic
// derivative per axis and evaluating at the real roots in (0, 1) as well as
// at both anchors. A zero-length curve returns its point.
func (c Cubic) Bounds() Rect {
	if c.ZeroLength() {
		return Rect{c.Anchor0.X, c.Anchor0.Y, c.Anchor0.X, c.Anchor0.Y}
	}
	bounds := NewRectFromPoints(c.Anchor0, c.Anchor1)
	d0 := c.Control0.Sub(c.Anchor0)
	d1 := c.Control1.Sub(c.Control0)
	d2 := c.Anchor1.Sub(c.Control1)
	oneCoord := func(v0, v1, v2 float64) {
		// The derivative of the Bernstein form is a quadratic with
		// coefficients built from the control point differences.
		a := v0 - 2*v1 + v2
		b := 2 * (v1 - v0)
		roots, n := solveQuadratic(v0, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				bounds = bounds.UnionPoint(c.Eval(t))
			}
		}
	}
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	return bounds
}

// ApproxBounds returns the bounding box of the four control points, which
// contains the curve by the convex hull property. It is cheaper than
// [Cubic.Bounds] but looser for curved segments.
func (c Cubic) ApproxBounds() Rect {
	return NewRectFromPoints(c.Anchor0, c.Anchor1).
		UnionPoint(c.Control0).
		UnionPoint(c.Control1)
}

// Add adds the two curves pointwise.
func (c Cubic) Add(o Cubic) Cubic {
	return Cubic{
		Anchor0:  c.Anchor0.Translate(Vec2(o.Anchor0)),
		Control0: c.Control0.Translate(Vec2(o.Control0)),
		Control1: c.Control1.Translate(Vec2(o.Control1)),
		Anchor1:  c.Anchor1.Translate(Vec2(o.Anchor1)),
	}
}

// Mul scales all four points by f.
func (c Cubic) Mul(f float64) Cubic {
	return Cubic{
		Anchor0:  Point(Vec2(c.Anchor0).Mul(f)),
		Control0: Point(Vec2(c.Control0).Mul(f)),
		Control1: Point(Vec2(c.Control1).Mul(f)),
		Anchor1:  Point(Vec2(c.Anchor1).Mul(f)),
	}
}

// Div divides all four points by f.
func (c Cubic) Div(f float64) Cubic {
	return Cubic{
		Anchor0:  Point(Vec2(c.Anchor0).Div(f)),
		Control0: Point(Vec2(c.Control0).Div(f)),
		Control1: Point(Vec2(c.Control1).Div(f)),
		Anchor1:  Point(Vec2(c.Anchor1).Div(f)),
	}
}

// Lerp interpolates between two curves pointwise.
func (c Cubic) Lerp(o Cubic, t float64) Cubic {
	return Cubic{
		Anchor0:  c.Anchor0.Lerp(o.Anchor0, t),
		Control0: c.Control0.Lerp(o.Control0, t),
		Control1: c.Control1.Lerp(o.Control1, t),
		Anchor1:  c.Anchor1.Lerp(o.Anchor1, t),
	}
}

// Transform applies f to all four points.
func (c Cubic) Transform(f func(Point) Point) Cubic {
	return Cubic{
		Anchor0:  f(c.Anchor0),
		Control0: f(c.Control0),
		Control1: f(c.Control1),
		Anchor1:  f(c.Anchor1),
	}
}

// Points returns the curve's eight coordinate values, laid out as (anchor0,
// control0, control1, anchor1).
func (c Cubic) Points() [8]float64 {
	return [8]float64{
		c.Anchor0.X, c.Anchor0.Y,
		c.Control0.X, c.Control0.Y,
		c.Control1.X, c.Control1.Y,
		c.Anchor1.X, c.Anchor1.Y,
	}
}

func (c Cubic) String() string {
	return fmt.Sprintf("anchor0: %v control0: %v control1: %v anchor1: %v",
		c.Anchor0, c.Control0, c.Control1, c.Anchor1)
}

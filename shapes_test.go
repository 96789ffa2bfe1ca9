package shapes

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestCirclePassesThroughRadius(t *testing.T) {
	for _, numVertices := range []int{3, 4, 6, 8, 12} {
		c := Circle(numVertices, 2, Pt(0, 0))
		// Anchor points of the arcs lie on the requested circle, up to the
		// radial bulge of the single-cubic arc approximation at the
		// mid-corner split.
		for _, cubic := range c.Cubics() {
			diff(t, 2.0, cubic.Anchor0.Distance(Pt(0, 0)), cmpopts.EquateApprox(0, relaxedDistanceEpsilon))
		}
		// Single-cubic arcs bulge slightly; wider arcs (fewer vertices)
		// bulge more.
		diff(t, Rect{-2, -2, 2, 2}, c.Bounds(), cmpopts.EquateApprox(0, 0.01))
	}
}

func TestCirclePerimeter(t *testing.T) {
	// The summed cubic lengths approximate the circumference within 1.5%
	// for four or more vertices.
	var measurer LengthMeasurer
	for _, numVertices := range []int{4, 5, 6, 8, 16} {
		for _, radius := range []float64{1.0, 3.5} {
			c := Circle(numVertices, radius, Pt(0, 0))
			var total float64
			for _, cubic := range c.Cubics() {
				total += measurer.Measure(cubic)
			}
			want := twoPi * radius
			if rel := math.Abs(total-want) / want; rel > 0.015 {
				t.Errorf("circle with %d vertices, radius %v: perimeter %v is %.2f%% off of %v",
					numVertices, radius, total, rel*100, want)
			}
		}
	}
}

func TestRectangle(t *testing.T) {
	r := Rectangle(4, 2, Pt(1, 1), Unrounded, nil)
	diff(t, Rect{-1, 0, 3, 2}, r.Bounds(), cmpopts.EquateApprox(0, 1e-12))
	if got := len(r.Cubics()); got != 4 {
		t.Errorf("got %d cubics, want 4", got)
	}

	rounded := Rectangle(4, 2, Pt(0, 0), Rounded(0.5), nil)
	diff(t, Rect{-2, -1, 2, 1}, rounded.Bounds(), cmpopts.EquateApprox(0, 1e-6))
}

func TestStarShape(t *testing.T) {
	s := Star(5, 2, 1, Pt(0, 0), Unrounded, nil, nil)
	var outer, inner int
	for _, f := range s.Features() {
		if !f.IsCorner() {
			continue
		}
		d := featureRepresentativePoint(f).Distance(Pt(0, 0))
		switch {
		case math.Abs(d-2) < 1e-6:
			outer++
			assert.True(t, f.IsConvexCorner(), "outer star corners should be convex")
		case math.Abs(d-1) < 1e-6:
			inner++
			assert.True(t, f.IsConcaveCorner(), "inner star corners should be concave")
		default:
			t.Errorf("corner at unexpected distance %v", d)
		}
	}
	if outer != 5 || inner != 5 {
		t.Errorf("got %d outer and %d inner corners, want 5 and 5", outer, inner)
	}
}

func TestStarInnerRounding(t *testing.T) {
	inner := Rounded(0.1)
	s := Star(4, 2, 1, Pt(0, 0), Rounded(0.3), &inner, nil)
	for _, f := range s.Features() {
		if !f.IsCorner() {
			continue
		}
		arcRadius := 0.3
		if f.IsConcaveCorner() {
			arcRadius = 0.1
		}
		// Rounded corners have three cubics; their middle arc's chord grows
		// with the rounding radius.
		if got := len(f.Cubics()); got != 3 {
			t.Fatalf("got %d corner cubics, want 3", got)
		}
		arc := f.Cubics()[1]
		if chord := arc.Anchor0.Distance(arc.Anchor1); chord <= 0 || chord > 2*arcRadius {
			t.Errorf("arc chord %v out of range for radius %v", chord, arcRadius)
		}
	}
}

func TestPillShape(t *testing.T) {
	p := Pill(3, 1, Pt(0, 0), 0)
	diff(t, Rect{-1.5, -0.5, 1.5, 0.5}, p.Bounds(), cmpopts.EquateApprox(0, 1e-3))
	// The end caps are full semicircles: the outline passes through the
	// extreme points on the cap axis.
	b := p.Bounds()
	diff(t, 1.5, b.MaxX(), cmpopts.EquateApprox(0, 1e-3))

	tall := Pill(1, 3, Pt(0, 0), 0)
	diff(t, Rect{-0.5, -1.5, 0.5, 1.5}, tall.Bounds(), cmpopts.EquateApprox(0, 1e-3))
}

func TestPillStarShape(t *testing.T) {
	p := PillStar(3, 1, 8, 0.6, Pt(0, 0), Unrounded, nil, nil, 0.5, 0)
	var outer, innerCount int
	for _, f := range p.Features() {
		if f.IsConvexCorner() {
			outer++
		}
		if f.IsConcaveCorner() {
			innerCount++
		}
	}
	diff(t, 8, outer)
	diff(t, 8, innerCount)
	// Outer vertices sit on the pill contour, so the shape spans the full
	// pill bounds.
	diff(t, Rect{-1.5, -0.5, 1.5, 0.5}, p.Bounds(), cmpopts.EquateApprox(0, 0.02))
}

func TestPillStarStartLocation(t *testing.T) {
	base := PillStar(2, 1, 5, 0.5, Pt(0, 0), Unrounded, nil, nil, 0.5, 0)
	shifted := PillStar(2, 1, 5, 0.5, Pt(0, 0), Unrounded, nil, nil, 0.5, 0.3)
	// A phase shift moves the first vertex along the contour.
	if base.Cubics()[0].Anchor0.Distance(shifted.Cubics()[0].Anchor0) < 1e-3 {
		t.Error("startLocation had no effect on the first vertex")
	}
}

func TestFactoryValidation(t *testing.T) {
	assertPanicsInvalidArg(t, func() { RegularPolygon(2, 1, Pt(0, 0), Unrounded, nil) })
	assertPanicsInvalidArg(t, func() { RegularPolygon(4, -1, Pt(0, 0), Unrounded, nil) })
	assertPanicsInvalidArg(t, func() { Circle(2, 1, Pt(0, 0)) })
	assertPanicsInvalidArg(t, func() { Circle(8, 0, Pt(0, 0)) })
	assertPanicsInvalidArg(t, func() { Rectangle(0, 1, Pt(0, 0), Unrounded, nil) })
	assertPanicsInvalidArg(t, func() { Rectangle(1, -2, Pt(0, 0), Unrounded, nil) })
	assertPanicsInvalidArg(t, func() { Star(2, 2, 1, Pt(0, 0), Unrounded, nil, nil) })
	assertPanicsInvalidArg(t, func() { Star(5, 1, 1, Pt(0, 0), Unrounded, nil, nil) })
	assertPanicsInvalidArg(t, func() { Star(5, 1, -0.5, Pt(0, 0), Unrounded, nil, nil) })
	assertPanicsInvalidArg(t, func() { Pill(0, 1, Pt(0, 0), 0) })
	assertPanicsInvalidArg(t, func() { PillStar(2, 1, 2, 0.5, Pt(0, 0), Unrounded, nil, nil, 0.5, 0) })
	assertPanicsInvalidArg(t, func() { PillStar(2, 1, 8, 1.5, Pt(0, 0), Unrounded, nil, nil, 0.5, 0) })
	assertPanicsInvalidArg(t, func() { PillStar(2, 1, 8, 0.5, Pt(0, 0), Unrounded, nil, nil, 2, 0) })
	assertPanicsInvalidArg(t, func() { PillStar(2, 1, 8, 0.5, Pt(0, 0), Unrounded, nil, nil, 0.5, -1) })
}

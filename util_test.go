package shapes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// pointComparer compares points with a tight epsilon, for results that are
// exact up to floating-point noise.
var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-9
})

// relaxedPointComparer compares points with the package's relaxed epsilon,
// for results of longer operation chains.
var relaxedPointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= relaxedDistanceEpsilon
})

// sampleShapes is a catalogue of polygons covering all factories, used for
// invariant sweeps.
func sampleShapes() map[string]RoundedPolygon {
	innerRounding := Rounded(0.05)
	return map[string]RoundedPolygon{
		"square":           RegularPolygon(4, 1, Pt(0, 0), Unrounded, nil),
		"rounded pentagon": RegularPolygon(5, 1, Pt(0, 0), Rounded(0.3), nil),
		"smoothed hexagon": RegularPolygon(6, 1, Pt(0, 0), Smoothed(0.4, 0.5), nil),
		"circle":           Circle(8, 1, Pt(0, 0)),
		"triangle circle":  Circle(3, 1, Pt(0, 0)),
		"rectangle":        Rectangle(4, 2, Pt(0, 0), Rounded(0.5), nil),
		"star":             Star(5, 1, 0.5, Pt(0, 0), Rounded(0.1), nil, nil),
		"inner star":       Star(6, 1, 0.6, Pt(0, 0), Rounded(0.15), &innerRounding, nil),
		"pill":             Pill(3, 1, Pt(0, 0), 0.2),
		"tall pill":        Pill(1, 3, Pt(0, 0), 0),
		"pill star":        PillStar(3, 1, 8, 0.6, Pt(0, 0), Rounded(0.05), nil, nil, 0.5, 0),
		"shifted pillstar": PillStar(1, 2, 5, 0.5, Pt(0, 0), Unrounded, nil, nil, 0.25, 0.2),
		"off-center":       RegularPolygon(3, 2, Pt(5, -3), Rounded(0.2), nil),
		"over-rounded":     RegularPolygon(4, 1, Pt(0, 0), Smoothed(10, 1), nil),
		"per-vertex": RegularPolygon(4, 1, Pt(0, 0), Unrounded,
			[]CornerRounding{Rounded(0.4), Unrounded, Smoothed(0.3, 1), Unrounded}),
	}
}

// assertContinuous verifies that consecutive cubics meet at their anchors
// and that the chain closes.
func assertContinuous(t *testing.T, cubics []Cubic) {
	t.Helper()
	if len(cubics) == 0 {
		t.Fatal("no cubics")
	}
	prev := cubics[len(cubics)-1]
	for i, c := range cubics {
		if d := prev.Anchor1.Distance(c.Anchor0); d > distanceEpsilon {
			t.Errorf("cubic %d starts %g away from the previous cubic's end", i, d)
		}
		prev = c
	}
}

// assertPanicsInvalidArg verifies that fn panics with an
// InvalidArgumentError.
func assertPanicsInvalidArg(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		require.IsType(t, InvalidArgumentError{}, r)
	}()
	fn()
}

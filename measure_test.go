package shapes

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLengthMeasurerOnLines(t *testing.T) {
	var m LengthMeasurer
	line := StraightLine(Pt(0, 0), Pt(3, 0))
	diff(t, 3.0, m.Measure(line), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 0.0, m.Measure(EmptyCubic(Pt(5, 5))))

	// On a straight line the cut parameter is proportional to length.
	for _, tc := range []struct{ m, t float64 }{
		{0, 0},
		{0.75, 0.25},
		{1.5, 0.5},
		{2.25, 0.75},
		{3, 1},
	} {
		diff(t, tc.t, m.FindCutParameter(line, tc.m), cmpopts.EquateApprox(0, 1e-9))
	}
	// Out-of-range lengths clamp.
	diff(t, 0.0, m.FindCutParameter(line, -1))
	diff(t, 1.0, m.FindCutParameter(line, 10))
}

func TestLengthMeasurerSplitAdditivity(t *testing.T) {
	var m LengthMeasurer
	c := CircularArc(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	total := m.Measure(c)
	for _, ts := range []float64{0.2, 0.5, 0.8} {
		c1, c2 := c.Split(ts)
		sum := m.Measure(c1) + m.Measure(c2)
		// The polyline approximation refines when split, so the parts can
		// measure slightly longer, never dramatically different.
		if math.Abs(sum-total)/total > 0.01 {
			t.Errorf("split at %v: parts measure %v, whole measures %v", ts, sum, total)
		}
	}
}

func TestMeasuredPolygonMonotonicity(t *testing.T) {
	for name, p := range sampleShapes() {
		t.Run(name, func(t *testing.T) {
			measured := MeasurePolygon(LengthMeasurer{}, p)
			if measured.At(0).StartProgress() != 0 {
				t.Errorf("first progress is %v, want 0", measured.At(0).StartProgress())
			}
			if measured.At(measured.Len()-1).EndProgress() != 1 {
				t.Errorf("last progress is %v, want 1", measured.At(measured.Len()-1).EndProgress())
			}
			for i := range measured.Len() {
				mc := measured.At(i)
				if mc.EndProgress() <= mc.StartProgress() {
					t.Errorf("cubic %d has empty progress range [%v, %v]", i, mc.StartProgress(), mc.EndProgress())
				}
				if i > 0 && mc.StartProgress() != measured.At(i-1).EndProgress() {
					t.Errorf("cubic %d starts at %v, previous ended at %v", i, mc.StartProgress(), measured.At(i-1).EndProgress())
				}
			}
			for _, f := range measured.Features() {
				if f.Progress < 0 || f.Progress >= 1 {
					t.Errorf("feature progress %v outside [0, 1)", f.Progress)
				}
				if !f.Feature.IsCorner() {
					t.Error("measured features should only contain corners")
				}
			}
		})
	}
}

func TestMeasuredCubicCut(t *testing.T) {
	measured := MeasurePolygon(LengthMeasurer{}, RegularPolygon(4, 1, Pt(0, 0), Unrounded, nil))
	mc := measured.At(1)
	mid := (mc.StartProgress() + mc.EndProgress()) / 2
	c1, c2 := mc.CutAtProgress(mid)
	diff(t, mc.StartProgress(), c1.StartProgress())
	diff(t, mid, c1.EndProgress())
	diff(t, mid, c2.StartProgress())
	diff(t, mc.EndProgress(), c2.EndProgress())
	diff(t, mc.Cubic().Anchor0, c1.Cubic().Anchor0)
	diff(t, mc.Cubic().Anchor1, c2.Cubic().Anchor1)
	diff(t, c1.Cubic().Anchor1, c2.Cubic().Anchor0)
	// Cutting outside the interval clamps to its ends.
	low, _ := mc.CutAtProgress(mc.StartProgress() - 1)
	diff(t, mc.StartProgress(), low.EndProgress())
}

func TestCutAndShift(t *testing.T) {
	square := RegularPolygon(4, 1, Pt(0, 0), Unrounded, nil)
	measured := MeasurePolygon(LengthMeasurer{}, square)

	shifted := measured.CutAndShift(0.5)
	// The new origin sits halfway around the outline.
	want := measured.At(2).Cubic().Anchor0
	diff(t, want, shifted.At(0).Cubic().Anchor0, relaxedPointComparer)
	diff(t, 0.0, shifted.At(0).StartProgress())
	diff(t, 1.0, shifted.At(shifted.Len()-1).EndProgress())

	// Feature progresses shift along.
	for i, f := range measured.Features() {
		diff(t, positiveModulo(f.Progress-0.5, 1), shifted.Features()[i].Progress, cmpopts.EquateApprox(0, 1e-12))
	}

	// A cut in the middle of a cubic splits it into two pieces.
	midCut := measured.CutAndShift(0.3)
	diff(t, measured.Len()+1, midCut.Len())
	assertMeasuredOutlineContinuous(t, midCut)
}

func assertMeasuredOutlineContinuous(t *testing.T, p MeasuredPolygon) {
	t.Helper()
	cubics := make([]Cubic, p.Len())
	for i := range p.Len() {
		cubics[i] = p.At(i).Cubic()
	}
	assertContinuous(t, cubics)
}

func TestCutAndShiftNoOp(t *testing.T) {
	measured := MeasurePolygon(LengthMeasurer{}, Circle(8, 1, Pt(0, 0)))
	same := measured.CutAndShift(0)
	diff(t, measured.Len(), same.Len())
	diff(t, measured.At(0).Cubic(), same.At(0).Cubic())
}

func TestCutAndShiftValidation(t *testing.T) {
	measured := MeasurePolygon(LengthMeasurer{}, Circle(8, 1, Pt(0, 0)))
	assertPanicsInvalidArg(t, func() { measured.CutAndShift(-0.1) })
	assertPanicsInvalidArg(t, func() { measured.CutAndShift(1.1) })
}

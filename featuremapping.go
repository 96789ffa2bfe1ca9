package shapes

import (
	"cmp"
	"math"
	"slices"
)

// featureMapper pairs the corner features of two measured outlines and
// returns the resulting progress mapping. Edges and ignorable features do
// not participate. Corners pair greedily by ascending distance of their
// representative points, under the constraints that every corner is used at
// most once, paired progresses keep their distance from already-placed
// neighbors, and the target sequence never crosses the source order more
// than the single wrap allows.
func featureMapper(features1, features2 []ProgressableFeature) DoubleMapper {
	corners1 := cornersOnly(features1)
	corners2 := cornersOnly(features2)
	return NewDoubleMapper(doMapping(corners1, corners2)...)
}

func cornersOnly(features []ProgressableFeature) []ProgressableFeature {
	var corners []ProgressableFeature
	for _, f := range features {
		if f.Feature.IsCorner() {
			corners = append(corners, f)
		}
	}
	return corners
}

type distanceVertex struct {
	distance float64
	f1, f2   int // indices into the two corner lists
}

func doMapping(corners1, corners2 []ProgressableFeature) []MappedProgress {
	var candidates []distanceVertex
	for i, f1 := range corners1 {
		for j, f2 := range corners2 {
			d := featureDistSquared(f1.Feature, f2.Feature)
			if !math.IsInf(d, 1) {
				candidates = append(candidates, distanceVertex{d, i, j})
			}
		}
	}
	slices.SortStableFunc(candidates, func(a, b distanceVertex) int {
		return cmp.Compare(a.distance, b.distance)
	})

	switch len(candidates) {
	case 0:
		return []MappedProgress{{0, 0}, {0.5, 0.5}}
	case 1:
		f1 := corners1[candidates[0].f1].Progress
		f2 := corners2[candidates[0].f2].Progress
		return []MappedProgress{
			{f1, f2},
			{positiveModulo(f1+0.5, 1), positiveModulo(f2+0.5, 1)},
		}
	}

	helper := mappingHelper{
		used1: make(map[int]struct{}),
		used2: make(map[int]struct{}),
	}
	for _, c := range candidates {
		helper.add(c.f1, c.f2, corners1[c.f1].Progress, corners2[c.f2].Progress)
	}
	return helper.mapping
}

type mappingHelper struct {
	// mapping is kept sorted by From.
	mapping      []MappedProgress
	used1, used2 map[int]struct{}
}

func (h *mappingHelper) add(i1, i2 int, p1, p2 float64) {
	if _, ok := h.used1[i1]; ok {
		return
	}
	if _, ok := h.used2[i2]; ok {
		return
	}
	index, found := slices.BinarySearchFunc(h.mapping, p1, func(m MappedProgress, target float64) int {
		return cmp.Compare(m.From, target)
	})
	if found {
		invalidStatef("shapes: two features can't have the same progress %v", p1)
	}

	if n := len(h.mapping); n >= 1 {
		before := h.mapping[(index+n-1)%n]
		after := h.mapping[index%n]
		// Reject pairings that land on top of an existing neighbor on
		// either outline.
		if progressDistance(p1, before.From) < distanceEpsilon ||
			progressDistance(p1, after.From) < distanceEpsilon ||
			progressDistance(p2, before.To) < distanceEpsilon ||
			progressDistance(p2, after.To) < distanceEpsilon {
			return
		}
		// Once two mappings exist, a new target progress must fall between
		// its source neighbors' targets, or the mapping would cross.
		if n > 1 && !progressInRange(p2, before.To, after.To) {
			return
		}
	}
	h.mapping = slices.Insert(h.mapping, index, MappedProgress{From: p1, To: p2})
	h.used1[i1] = struct{}{}
	h.used2[i2] = struct{}{}
}

// featureDistSquared compares two features by the squared distance of their
// representative points. Corners of differing convexity never pair; their
// distance is +Inf.
func featureDistSquared(f1, f2 Feature) float64 {
	if f1.IsCorner() && f2.IsCorner() && f1.convex != f2.convex {
		return math.Inf(1)
	}
	return featureRepresentativePoint(f1).DistanceSquared(featureRepresentativePoint(f2))
}

// featureRepresentativePoint is the midpoint of a feature's two endpoints.
func featureRepresentativePoint(f Feature) Point {
	first := f.cubics[0]
	last := f.cubics[len(f.cubics)-1]
	return first.Anchor0.Midpoint(last.Anchor1)
}

package shapes

import (
	"math"
	"slices"
)

type featureKind uint8

const (
	featureEdge featureKind = iota
	featureCorner
	featureIgnorable
)

// Feature groups a contiguous run of a polygon's curves into a semantic
// unit: an edge between two corners, the curves approximating one rounded
// corner, or a run the caller wants ignored during morph matching.
//
// Corner features carry a convexity flag. Convexity is determined by the
// sign of the cross product at the original vertex, so it is tied to the
// winding order and y-axis orientation the polygon was built with; callers
// constructing features manually must stay within one orientation
// convention.
type Feature struct {
	kind   featureKind
	convex bool
	cubics []Cubic
}

// NewEdge returns an edge feature over the given curves. Edges do not
// participate in morph feature matching.
func NewEdge(cubics []Cubic) Feature {
	return newValidatedFeature(featureEdge, false, cubics)
}

// NewConvexCorner returns a corner feature marked convex.
func NewConvexCorner(cubics []Cubic) Feature {
	return newValidatedFeature(featureCorner, true, cubics)
}

// NewConcaveCorner returns a corner feature marked concave.
func NewConcaveCorner(cubics []Cubic) Feature {
	return newValidatedFeature(featureCorner, false, cubics)
}

// NewIgnorableFeature returns a feature that is stored like an edge and
// skipped by the default morph matching.
func NewIgnorableFeature(cubics []Cubic) Feature {
	return newValidatedFeature(featureIgnorable, false, cubics)
}

func newValidatedFeature(kind featureKind, convex bool, cubics []Cubic) Feature {
	if len(cubics) == 0 {
		invalidArgf("shapes: a feature must have at least one cubic")
	}
	for i := 1; i < len(cubics); i++ {
		prev := cubics[i-1].Anchor1
		curr := cubics[i].Anchor0
		if math.Abs(prev.X-curr.X) > distanceEpsilon || math.Abs(prev.Y-curr.Y) > distanceEpsilon {
			invalidArgf("shapes: feature cubics must be continuous, anchor1 %v does not meet anchor0 %v", prev, curr)
		}
	}
	return Feature{kind: kind, convex: convex, cubics: slices.Clone(cubics)}
}

// newFeature builds a feature from curves the corner builder produced
// itself, skipping validation.
func newFeature(kind featureKind, convex bool, cubics []Cubic) Feature {
	return Feature{kind: kind, convex: convex, cubics: cubics}
}

// IsEdge reports whether the feature is an edge.
func (f Feature) IsEdge() bool { return f.kind == featureEdge }

// IsCorner reports whether the feature is a corner, convex or concave.
func (f Feature) IsCorner() bool { return f.kind == featureCorner }

// IsConvexCorner reports whether the feature is a convex corner.
func (f Feature) IsConvexCorner() bool { return f.kind == featureCorner && f.convex }

// IsConcaveCorner reports whether the feature is a concave corner.
func (f Feature) IsConcaveCorner() bool { return f.kind == featureCorner && !f.convex }

// IsIgnorable reports whether the feature is skipped by default morph
// matching. Both edges and explicitly ignorable features are.
func (f Feature) IsIgnorable() bool { return f.kind != featureCorner }

// Cubics returns the feature's curves. The slice must not be modified.
func (f Feature) Cubics() []Cubic {
	return f.cubics
}

// Transform applies f to every curve and returns the resulting feature.
func (f Feature) Transform(fn func(Point) Point) Feature {
	cubics := make([]Cubic, len(f.cubics))
	for i, c := range f.cubics {
		cubics[i] = c.Transform(fn)
	}
	return Feature{kind: f.kind, convex: f.convex, cubics: cubics}
}

// Reversed returns the feature traced in the opposite direction. The
// convexity flag is kept as-is, not recomputed: a reversed corner describes
// the same geometry in the opposite winding, and convexity is only
// meaningful relative to the winding of the original construction.
func (f Feature) Reversed() Feature {
	cubics := make([]Cubic, len(f.cubics))
	for i, c := range f.cubics {
		cubics[len(f.cubics)-1-i] = c.Reverse()
	}
	return Feature{kind: f.kind, convex: f.convex, cubics: cubics}
}

// Equal reports whether the two features have the same kind, convexity, and
// curves.
func (f Feature) Equal(o Feature) bool {
	return f.kind == o.kind &&
		f.convex == o.convex &&
		slices.Equal(f.cubics, o.cubics)
}

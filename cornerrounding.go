package shapes

// CornerRounding describes the desired rounding of one polygon vertex.
//
// Radius is the radius of the circular arc replacing the vertex, in the
// polygon's own coordinate frame. Smoothing, in [0, 1], controls how far
// beyond the pure circular arc the rounding extends along the edges: 0
// keeps just the arc, 1 consumes as much edge as the arc did again on each
// side, blending the corner into the edges over a longer stretch.
//
// Affine transforms applied to a built polygon carry through naturally
// because the resulting curves are transformed, not these parameters.
type CornerRounding struct {
	Radius    float64
	Smoothing float64
}

// Unrounded leaves a vertex as a sharp corner.
var Unrounded = CornerRounding{}

// Rounded returns a CornerRounding with the given radius and no smoothing.
func Rounded(radius float64) CornerRounding {
	return Smoothed(radius, 0)
}

// Smoothed returns a CornerRounding with the given radius and smoothing.
// The radius must be non-negative and the smoothing must lie in [0, 1].
func Smoothed(radius, smoothing float64) CornerRounding {
	if radius < 0 {
		invalidArgf("shapes: corner radius must be non-negative, got %v", radius)
	}
	if smoothing < 0 || smoothing > 1 {
		invalidArgf("shapes: corner smoothing must be in [0, 1], got %v", smoothing)
	}
	return CornerRounding{Radius: radius, Smoothing: smoothing}
}

package shapes

// MappedProgress pairs an outline progress on a source shape with the
// corresponding progress on a target shape.
type MappedProgress struct {
	From float64
	To   float64
}

// DoubleMapper extends a finite set of source → target progress pairs to all
// of [0, 1) by piecewise linear interpolation with wrap-around, in both
// directions.
type DoubleMapper struct {
	sourceValues []float64
	targetValues []float64
}

// IdentityMapper maps every progress to itself.
var IdentityMapper = NewDoubleMapper(MappedProgress{0, 0}, MappedProgress{0.5, 0.5})

// NewDoubleMapper builds a mapper from the given pairs. Both the From and
// the To sequence must consist of values in [0, 1) that keep a wrap-aware
// distance greater than the distance epsilon from their neighbors and that
// wrap around 1 at most once; at least two pairs are required.
func NewDoubleMapper(mappings ...MappedProgress) DoubleMapper {
	sourceValues := make([]float64, len(mappings))
	targetValues := make([]float64, len(mappings))
	for i, m := range mappings {
		sourceValues[i] = m.From
		targetValues[i] = m.To
	}
	validateProgress(sourceValues)
	validateProgress(targetValues)
	return DoubleMapper{sourceValues: sourceValues, targetValues: targetValues}
}

// Map returns the target progress for the given source progress.
func (m DoubleMapper) Map(x float64) float64 {
	return linearMap(m.sourceValues, m.targetValues, x)
}

// MapBack returns the source progress for the given target progress.
func (m DoubleMapper) MapBack(x float64) float64 {
	return linearMap(m.targetValues, m.sourceValues, x)
}

func validateProgress(p []float64) {
	if len(p) < 2 {
		invalidArgf("shapes: a progress mapping needs at least 2 values, got %d", len(p))
	}
	prev := p[len(p)-1]
	wraps := 0
	for _, curr := range p {
		if curr < 0 || curr >= 1 {
			invalidArgf("shapes: progress %v outside of range [0, 1)", curr)
		}
		if progressDistance(curr, prev) <= distanceEpsilon {
			invalidArgf("shapes: progresses %v and %v are too close to each other", prev, curr)
		}
		if curr < prev {
			wraps++
			if wraps > 1 {
				invalidArgf("shapes: progresses %v wrap more than once", p)
			}
		}
		prev = curr
	}
}

// linearMap interpolates x within the cyclic segment of xValues containing
// it, and applies the proportional position to the matching segment of
// yValues. Segments with near-zero source span map to their midpoint.
func linearMap(xValues, yValues []float64, x float64) float64 {
	if x < 0 || x > 1 {
		invalidArgf("shapes: invalid progress %v", x)
	}
	segmentStart := -1
	for i := range xValues {
		if progressInRange(x, xValues[i], xValues[(i+1)%len(xValues)]) {
			segmentStart = i
			break
		}
	}
	if segmentStart == -1 {
		invalidStatef("shapes: progress %v not contained in any mapping segment", x)
	}
	segmentEnd := (segmentStart + 1) % len(xValues)
	segmentSizeX := positiveModulo(xValues[segmentEnd]-xValues[segmentStart], 1)
	segmentSizeY := positiveModulo(yValues[segmentEnd]-yValues[segmentStart], 1)
	positionInSegment := 0.5
	if segmentSizeX >= 0.001 {
		positionInSegment = positiveModulo(x-xValues[segmentStart], 1) / segmentSizeX
	}
	return positiveModulo(yValues[segmentStart]+segmentSizeY*positionInSegment, 1)
}

package shapes

// A Measurer maps a cubic to a scalar length and solves for the curve
// parameter covering a requested partial length.
//
// Implementations must be additive under splitting: measuring both halves of
// a split curve must sum to measuring the whole within reasonable accuracy.
type Measurer interface {
	// Measure returns a non-negative size for the curve.
	Measure(c Cubic) float64
	// FindCutParameter returns t ∈ [0, 1] such that measuring
	// Split(t)'s first half yields approximately m. Values of m outside
	// [0, Measure(c)] clamp to the respective end.
	FindCutParameter(c Cubic, m float64) float64
}

// lengthSegments is the number of polyline segments LengthMeasurer samples
// per curve. Three give at least 98.5% accuracy on a quarter-circle cubic,
// the worst case among curves this package produces.
const lengthSegments = 3

// LengthMeasurer measures curves by approximating them with a three-segment
// polyline.
type LengthMeasurer struct{}

var _ Measurer = LengthMeasurer{}

// Measure implements [Measurer].
func (LengthMeasurer) Measure(c Cubic) float64 {
	var total float64
	prev := c.Anchor0
	for i := 1; i <= lengthSegments; i++ {
		p := c.Eval(float64(i) / lengthSegments)
		total += p.Distance(prev)
		prev = p
	}
	return total
}

// FindCutParameter implements [Measurer].
func (LengthMeasurer) FindCutParameter(c Cubic, m float64) float64 {
	remainder := m
	prev := c.Anchor0
	for i := 1; i <= lengthSegments; i++ {
		progress := float64(i) / lengthSegments
		p := c.Eval(progress)
		segment := p.Distance(prev)
		if segment >= remainder {
			return clamp(progress-(1-remainder/segment)/lengthSegments, 0, 1)
		}
		remainder -= segment
		prev = p
	}
	return 1
}

// MeasuredCubic pairs a cubic with its arc-progress interval [start, end] ⊂
// [0, 1] along a measured outline, plus the curve's cached size under the
// outline's measurer.
type MeasuredCubic struct {
	measurer      Measurer
	cubic         Cubic
	startProgress float64
	endProgress   float64
	size          float64
}

func newMeasuredCubic(measurer Measurer, cubic Cubic, startProgress, endProgress float64) MeasuredCubic {
	if startProgress > endProgress {
		invalidArgf("shapes: measured cubic progress start %v must not exceed end %v", startProgress, endProgress)
	}
	size := measurer.Measure(cubic)
	if size < 0 {
		invalidStatef("shapes: measured cubic size is negative")
	}
	return MeasuredCubic{
		measurer:      measurer,
		cubic:         cubic,
		startProgress: startProgress,
		endProgress:   endProgress,
		size:          size,
	}
}

// Cubic returns the underlying curve.
func (mc MeasuredCubic) Cubic() Cubic { return mc.cubic }

// StartProgress returns the outline progress at which the curve begins.
func (mc MeasuredCubic) StartProgress() float64 { return mc.startProgress }

// EndProgress returns the outline progress at which the curve ends.
func (mc MeasuredCubic) EndProgress() float64 { return mc.endProgress }

// Size returns the curve's length under the outline's measurer.
func (mc MeasuredCubic) Size() float64 { return mc.size }

func (mc *MeasuredCubic) updateProgressRange(startProgress, endProgress float64) {
	if startProgress > endProgress {
		invalidArgf("shapes: measured cubic progress start %v must not exceed end %v", startProgress, endProgress)
	}
	mc.startProgress = startProgress
	mc.endProgress = endProgress
}

// CutAtProgress splits the measured curve at the given outline progress,
// clamped into the curve's progress interval. Both pieces keep the measurer
// and cover the original interval exactly.
func (mc MeasuredCubic) CutAtProgress(progress float64) (MeasuredCubic, MeasuredCubic) {
	bounded := clamp(progress, mc.startProgress, mc.endProgress)
	intervalSize := mc.endProgress - mc.startProgress
	relativeProgress := (bounded - mc.startProgress) / intervalSize
	t := mc.measurer.FindCutParameter(mc.cubic, relativeProgress*mc.size)
	if t < 0 || t > 1 {
		invalidStatef("shapes: cut parameter %v is out of [0, 1]", t)
	}
	c1, c2 := mc.cubic.Split(t)
	return newMeasuredCubic(mc.measurer, c1, mc.startProgress, bounded),
		newMeasuredCubic(mc.measurer, c2, bounded, mc.endProgress)
}

// ProgressableFeature tags a feature with the outline progress of its
// midpoint.
type ProgressableFeature struct {
	Progress float64
	Feature  Feature
}

// MeasuredPolygon wraps a polygon's curves with monotonically increasing
// arc-progress intervals covering [0, 1], plus the outline progress of each
// corner feature. Build one with [MeasurePolygon].
type MeasuredPolygon struct {
	measurer Measurer
	features []ProgressableFeature
	cubics   []MeasuredCubic
}

// MeasurePolygon measures polygon under measurer.
func MeasurePolygon(measurer Measurer, polygon RoundedPolygon) MeasuredPolygon {
	var cubics []Cubic
	type cornerIndex struct {
		feature Feature
		index   int
	}
	var corners []cornerIndex
	for _, feature := range polygon.features {
		for j, cubic := range feature.cubics {
			// Remember each corner's middle curve; the corner's progress
			// is measured there.
			if feature.IsCorner() && j == len(feature.cubics)/2 {
				corners = append(corners, cornerIndex{feature, len(cubics)})
			}
			cubics = append(cubics, cubic)
		}
	}

	measures := make([]float64, len(cubics)+1)
	for i, cubic := range cubics {
		m := measurer.Measure(cubic)
		if m < 0 {
			invalidStatef("shapes: measured cubic size is negative")
		}
		measures[i+1] = measures[i] + m
	}
	total := measures[len(cubics)]
	if total <= 0 {
		invalidArgf("shapes: cannot measure a polygon with zero perimeter")
	}
	outlineProgress := make([]float64, len(measures))
	for i, m := range measures {
		outlineProgress[i] = m / total
	}

	features := make([]ProgressableFeature, len(corners))
	for i, corner := range corners {
		features[i] = ProgressableFeature{
			Progress: positiveModulo((outlineProgress[corner.index]+outlineProgress[corner.index+1])/2, 1),
			Feature:  corner.feature,
		}
	}
	return newMeasuredPolygon(measurer, features, cubics, outlineProgress)
}

// newMeasuredPolygon pairs each cubic with its progress interval, skipping
// curves whose interval is shorter than the distance epsilon; a skipped
// interval is absorbed by the next kept curve so that coverage of [0, 1]
// stays exact.
func newMeasuredPolygon(measurer Measurer, features []ProgressableFeature, cubics []Cubic, outlineProgress []float64) MeasuredPolygon {
	if len(outlineProgress) != len(cubics)+1 {
		invalidArgf("shapes: outline progress size %d must be the cubics size %d plus one", len(outlineProgress), len(cubics))
	}
	if outlineProgress[0] != 0 {
		invalidArgf("shapes: outline progress must start at 0, got %v", outlineProgress[0])
	}
	if outlineProgress[len(outlineProgress)-1] != 1 {
		invalidArgf("shapes: outline progress must end at 1, got %v", outlineProgress[len(outlineProgress)-1])
	}
	measuredCubics := make([]MeasuredCubic, 0, len(cubics))
	startProgress := 0.0
	for i, cubic := range cubics {
		if outlineProgress[i+1]-outlineProgress[i] > distanceEpsilon {
			measuredCubics = append(measuredCubics, newMeasuredCubic(measurer, cubic, startProgress, outlineProgress[i+1]))
			startProgress = outlineProgress[i+1]
		}
	}
	if len(measuredCubics) == 0 {
		invalidStatef("shapes: measured polygon has no measurable cubics")
	}
	last := &measuredCubics[len(measuredCubics)-1]
	last.updateProgressRange(last.startProgress, 1)
	return MeasuredPolygon{measurer: measurer, features: features, cubics: measuredCubics}
}

// Features returns the outline's corner features with their progresses.
// The slice must not be modified.
func (p MeasuredPolygon) Features() []ProgressableFeature {
	return p.features
}

// Len returns the number of measured curves.
func (p MeasuredPolygon) Len() int {
	return len(p.cubics)
}

// At returns the i-th measured curve.
func (p MeasuredPolygon) At(i int) MeasuredCubic {
	return p.cubics[i]
}

// CutAndShift returns an equivalent measured outline whose arc-parameter
// origin sits at the given progress of this one. The curve containing the
// cutting point is split there, and the list rotated so the second half
// leads and the first half trails.
func (p MeasuredPolygon) CutAndShift(cuttingPoint float64) MeasuredPolygon {
	if cuttingPoint < 0 || cuttingPoint > 1 {
		invalidArgf("shapes: cutting point must be in [0, 1], got %v", cuttingPoint)
	}
	if cuttingPoint < distanceEpsilon {
		return p
	}
	n := len(p.cubics)
	targetIndex := -1
	for i, mc := range p.cubics {
		if cuttingPoint >= mc.startProgress && cuttingPoint <= mc.endProgress {
			targetIndex = i
			break
		}
	}
	if targetIndex == -1 {
		invalidStatef("shapes: no measured cubic contains the cutting point %v", cuttingPoint)
	}
	b1, b2 := p.cubics[targetIndex].CutAtProgress(cuttingPoint)

	cubics := make([]Cubic, 0, n+1)
	cubics = append(cubics, b2.cubic)
	for i := 1; i < n; i++ {
		cubics = append(cubics, p.cubics[(i+targetIndex)%n].cubic)
	}
	cubics = append(cubics, b1.cubic)

	outlineProgress := make([]float64, n+2)
	for i := range outlineProgress {
		switch i {
		case 0:
			outlineProgress[i] = 0
		case n + 1:
			outlineProgress[i] = 1
		default:
			cubicIndex := (targetIndex + i - 1) % n
			outlineProgress[i] = positiveModulo(p.cubics[cubicIndex].endProgress-cuttingPoint, 1)
		}
	}

	features := make([]ProgressableFeature, len(p.features))
	for i, f := range p.features {
		features[i] = ProgressableFeature{
			Progress: positiveModulo(f.Progress-cuttingPoint, 1),
			Feature:  f.Feature,
		}
	}
	return newMeasuredPolygon(p.measurer, features, cubics, outlineProgress)
}

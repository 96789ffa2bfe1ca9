package shapes

// Morph interpolates between two polygons along a progress in [0, 1]. The
// expensive work — measuring both outlines, matching their corner features,
// and cutting both curve lists into a 1-to-1 pairing — happens once in
// [NewMorph]; evaluating the morph at a progress only interpolates the
// matched pairs and is cheap enough to run per animation frame, especially
// through [Morph.AppendCubics].
type Morph struct {
	start RoundedPolygon
	end   RoundedPolygon
	match []matchedPair
}

type matchedPair struct {
	first  Cubic
	second Cubic
}

// NewMorph matches the outlines of start and end.
func NewMorph(start, end RoundedPolygon) Morph {
	return Morph{
		start: start,
		end:   end,
		match: matchOutlines(start, end),
	}
}

// Start returns the polygon the morph evaluates to at progress 0.
func (m Morph) Start() RoundedPolygon { return m.start }

// End returns the polygon the morph evaluates to at progress 1.
func (m Morph) End() RoundedPolygon { return m.end }

// Cubics returns the morph's outline at the given progress. 0 yields the
// start polygon's outline, 1 the end polygon's; values in between blend the
// two, and values outside [0, 1] extrapolate. The result is always a closed
// contiguous chain.
func (m Morph) Cubics(progress float64) []Cubic {
	return m.AppendCubics(make([]Cubic, 0, len(m.match)), progress)
}

// AppendCubics appends the morph's outline at the given progress to dst and
// returns the extended slice. Reusing one buffer across animation frames
// avoids per-frame allocation.
func (m Morph) AppendCubics(dst []Cubic, progress float64) []Cubic {
	var first, last option[Cubic]
	for _, pair := range m.match {
		c := pair.first.Lerp(pair.second, progress)
		if !first.isSet {
			first.set(c)
		}
		if last.isSet {
			dst = append(dst, last.value)
		}
		last.set(c)
	}
	if first.isSet && last.isSet {
		// Snap the loop shut against accumulated floating-point drift.
		lc := last.value
		lc.Anchor1 = first.value.Anchor0
		dst = append(dst, lc)
	}
	return dst
}

// Bounds returns the union of the two source polygons' exact bounds. Every
// interpolated shape lies within it, since each point of the morph is a
// convex combination of points of the sources.
func (m Morph) Bounds() Rect {
	return m.start.Bounds().Union(m.end.Bounds())
}

// ApproxBounds returns the union of the two source polygons' approximate
// bounds.
func (m Morph) ApproxBounds() Rect {
	return m.start.ApproxBounds().Union(m.end.ApproxBounds())
}

// MaxBounds returns the union of the two source polygons' rotation-safe
// bounds.
func (m Morph) MaxBounds() Rect {
	return m.start.MaxBounds().Union(m.end.MaxBounds())
}

// matchOutlines walks the measured outlines of both polygons in lock-step,
// cutting whichever curve extends past the other's end, and emits the
// resulting 1-to-1 pairs. The second outline is first re-originated at the
// point its feature mapping assigns to the first outline's origin, so that
// matched features line up.
func matchOutlines(p1, p2 RoundedPolygon) []matchedPair {
	measured1 := MeasurePolygon(LengthMeasurer{}, p1)
	measured2 := MeasurePolygon(LengthMeasurer{}, p2)

	mapper := featureMapper(measured1.Features(), measured2.Features())
	cutPoint := mapper.Map(0)
	bs1 := measured1
	bs2 := measured2.CutAndShift(cutPoint)

	var pairs []matchedPair
	var b1, b2 option[MeasuredCubic]
	i1, i2 := 0, 0
	b1.set(bs1.At(i1))
	i1++
	b2.set(bs2.At(i2))
	i2++
	for b1.isSet && b2.isSet {
		// The end of each curve in the first outline's progress frame; the
		// very last curve of either list counts as ending exactly at 1.
		b1a := 1.0
		if i1 < bs1.Len() {
			b1a = b1.value.endProgress
		}
		b2a := 1.0
		if i2 < bs2.Len() {
			b2a = mapper.MapBack(positiveModulo(b2.value.endProgress+cutPoint, 1))
		}
		minb := min(b1a, b2a)

		// The curve that ends later gets cut at minb; the other is
		// consumed whole and its successor loaded.
		var seg1, seg2 MeasuredCubic
		if b1a > minb+angleEpsilon {
			var rest MeasuredCubic
			seg1, rest = b1.value.CutAtProgress(minb)
			b1.set(rest)
		} else {
			seg1 = b1.value
			if i1 < bs1.Len() {
				b1.set(bs1.At(i1))
				i1++
			} else {
				b1.clear()
			}
		}
		if b2a > minb+angleEpsilon {
			var rest MeasuredCubic
			seg2, rest = b2.value.CutAtProgress(positiveModulo(mapper.Map(minb)-cutPoint, 1))
			b2.set(rest)
		} else {
			seg2 = b2.value
			if i2 < bs2.Len() {
				b2.set(bs2.At(i2))
				i2++
			} else {
				b2.clear()
			}
		}
		pairs = append(pairs, matchedPair{seg1.cubic, seg2.cubic})
	}
	if b1.isSet || b2.isSet {
		invalidStatef("shapes: morph expected both outlines to be consumed at the same time")
	}
	return pairs
}

package shapes

import "math"

// CenterUnset marks the center of a polygon as "not supplied"; the
// constructor then derives one from the geometry. See
// [PolygonFromVertices].
var CenterUnset = Pt(math.NaN(), math.NaN())

// PolygonFromVertices builds a rounded polygon from the given vertices in
// outline order. rounding applies to every vertex unless perVertexRounding
// is non-nil, in which case it must hold one entry per vertex. Pass
// [CenterUnset] as center to have the center derived from the resulting
// curves.
//
// Coincident consecutive vertices are tolerated: the corner between them
// collapses to a sharp one and disappears from the flattened curve list.
func PolygonFromVertices(vertices []Point, rounding CornerRounding, perVertexRounding []CornerRounding, center Point) RoundedPolygon {
	return polygonFromVertices(vertices, rounding, perVertexRounding, center)
}

// PolygonFromFeatures builds a polygon directly from a feature list, for
// example one assembled from another polygon's features. The features'
// curves must form a continuous closed loop. Pass [CenterUnset] as center to
// have the center derived from the curves.
func PolygonFromFeatures(features []Feature, center Point) RoundedPolygon {
	if len(features) < 2 {
		invalidArgf("shapes: polygons must have at least 2 features, got %d", len(features))
	}
	return newRoundedPolygon(features, center)
}

// RegularPolygon returns a regular polygon with numVertices vertices on a
// circle of the given radius, the first vertex at angle 0. A radius of zero
// collapses the polygon to a single point.
func RegularPolygon(numVertices int, radius float64, center Point, rounding CornerRounding, perVertexRounding []CornerRounding) RoundedPolygon {
	if numVertices < 3 {
		invalidArgf("shapes: polygons must have at least 3 vertices, got %d", numVertices)
	}
	if radius < 0 {
		invalidArgf("shapes: radius must be non-negative, got %v", radius)
	}
	vertices := make([]Point, numVertices)
	for i := range vertices {
		vertices[i] = radialToCartesian(radius, float64(i)*twoPi/float64(numVertices), center)
	}
	return polygonFromVertices(vertices, rounding, perVertexRounding, center)
}

// Circle approximates a circle of the given radius as a regular polygon of
// numVertices fully rounded corners. The polygon's own radius is scaled to
// radius/cos(π/numVertices) so that the rounded outline passes through the
// requested circle, not inside it.
func Circle(numVertices int, radius float64, center Point) RoundedPolygon {
	if numVertices < 3 {
		invalidArgf("shapes: circles must have at least 3 vertices, got %d", numVertices)
	}
	if radius <= 0 {
		invalidArgf("shapes: circle radius must be positive, got %v", radius)
	}
	polygonRadius := radius / math.Cos(math.Pi/float64(numVertices))
	return RegularPolygon(numVertices, polygonRadius, center, Rounded(radius), nil)
}

// Rectangle returns a width × height rectangle around center.
func Rectangle(width, height float64, center Point, rounding CornerRounding, perVertexRounding []CornerRounding) RoundedPolygon {
	if width <= 0 || height <= 0 {
		invalidArgf("shapes: rectangle dimensions must be positive, got %v x %v", width, height)
	}
	left := center.X - width/2
	right := center.X + width/2
	top := center.Y - height/2
	bottom := center.Y + height/2
	vertices := []Point{
		Pt(right, bottom),
		Pt(left, bottom),
		Pt(left, top),
		Pt(right, top),
	}
	return polygonFromVertices(vertices, rounding, perVertexRounding, center)
}

// Star returns a star with numVerticesPerRadius outer vertices on a circle
// of the given radius, alternating with as many inner vertices at
// innerRadius. innerRounding, when non-nil, applies to the inner vertices
// while rounding applies to the outer ones; otherwise rounding applies to
// all. A non-nil perVertexRounding (one entry per each of the 2 ×
// numVerticesPerRadius vertices) overrides both.
func Star(numVerticesPerRadius int, radius, innerRadius float64, center Point, rounding CornerRounding, innerRounding *CornerRounding, perVertexRounding []CornerRounding) RoundedPolygon {
	if numVerticesPerRadius < 3 {
		invalidArgf("shapes: stars must have at least 3 vertices per radius, got %d", numVerticesPerRadius)
	}
	if radius <= 0 || innerRadius <= 0 {
		invalidArgf("shapes: star radii must be positive, got %v and %v", radius, innerRadius)
	}
	if innerRadius >= radius {
		invalidArgf("shapes: innerRadius %v must be smaller than radius %v", innerRadius, radius)
	}
	if perVertexRounding == nil && innerRounding != nil {
		perVertexRounding = make([]CornerRounding, 0, 2*numVerticesPerRadius)
		for range numVerticesPerRadius {
			perVertexRounding = append(perVertexRounding, rounding, *innerRounding)
		}
	}
	vertices := make([]Point, 0, 2*numVerticesPerRadius)
	step := twoPi / float64(numVerticesPerRadius)
	for i := range numVerticesPerRadius {
		angle := float64(i) * step
		vertices = append(vertices,
			radialToCartesian(radius, angle, center),
			radialToCartesian(innerRadius, angle+step/2, center))
	}
	return polygonFromVertices(vertices, rounding, perVertexRounding, center)
}

// Pill returns a width × height shape whose shorter sides are full
// semicircle end caps joined by straight edges. smoothing applies to all
// four corner roundings.
func Pill(width, height float64, center Point, smoothing float64) RoundedPolygon {
	if width <= 0 || height <= 0 {
		invalidArgf("shapes: pill dimensions must be positive, got %v x %v", width, height)
	}
	wHalf := width / 2
	hHalf := height / 2
	vertices := []Point{
		Pt(center.X+wHalf, center.Y+hHalf),
		Pt(center.X-wHalf, center.Y+hHalf),
		Pt(center.X-wHalf, center.Y-hHalf),
		Pt(center.X+wHalf, center.Y-hHalf),
	}
	return polygonFromVertices(vertices, Smoothed(min(wHalf, hHalf), smoothing), nil, center)
}

// PillStar returns a star whose vertices lie along the contour of a width ×
// height pill, with inner vertices pulled toward the center by
// innerRadiusRatio. vertexSpacing, in [0, 1], adjusts how vertices are
// distributed along the curved end caps: at 0 they are spaced as if the
// caps had the inner vertices' circumference, at 1 as if they had the outer
// one; 0.5 averages the two, which keeps points and troughs roughly even.
// startLocation, in [0, 1], is a phase shift of the first vertex along the
// contour. See [Star] for the rounding parameters.
func PillStar(width, height float64, numVerticesPerRadius int, innerRadiusRatio float64, center Point,
	rounding CornerRounding, innerRounding *CornerRounding, perVertexRounding []CornerRounding,
	vertexSpacing, startLocation float64) RoundedPolygon {
	if width <= 0 || height <= 0 {
		invalidArgf("shapes: pillStar dimensions must be positive, got %v x %v", width, height)
	}
	if numVerticesPerRadius < 3 {
		invalidArgf("shapes: pillStars must have at least 3 vertices per radius, got %d", numVerticesPerRadius)
	}
	if innerRadiusRatio <= 0 || innerRadiusRatio >= 1 {
		invalidArgf("shapes: innerRadiusRatio must be in (0, 1), got %v", innerRadiusRatio)
	}
	if vertexSpacing < 0 || vertexSpacing > 1 {
		invalidArgf("shapes: vertexSpacing must be in [0, 1], got %v", vertexSpacing)
	}
	if startLocation < 0 || startLocation > 1 {
		invalidArgf("shapes: startLocation must be in [0, 1], got %v", startLocation)
	}
	if perVertexRounding == nil && innerRounding != nil {
		perVertexRounding = make([]CornerRounding, 0, 2*numVerticesPerRadius)
		for range numVerticesPerRadius {
			perVertexRounding = append(perVertexRounding, rounding, *innerRounding)
		}
	}
	vertices := pillStarVertices(numVerticesPerRadius, width, height, innerRadiusRatio, vertexSpacing, startLocation, center)
	return polygonFromVertices(vertices, rounding, perVertexRounding, center)
}

// pillStarVertices walks the perimeter of the pill contour, dropping a
// vertex every 1/(2·numVerticesPerRadius) of the total, alternating between
// the contour itself and the contour scaled toward the center. The contour
// is split into nine sections: five straight pieces (the right edge in two
// halves and the other three edges) and four quarter arcs. The arc sections' share of the perimeter is weighted by
// vertexSpacing between the inner and outer circumference, because inner
// vertices travel a proportionally smaller circle around the caps.
func pillStarVertices(numVerticesPerRadius int, width, height, innerRadiusRatio, vertexSpacing, startLocation float64, center Point) []Point {
	endcapRadius := min(width, height) / 2
	vSegLen := max(height-width, 0)
	hSegLen := max(width-height, 0)
	vSegHalf := vSegLen / 2
	hSegHalf := hSegLen / 2
	circlePerimeter := twoPi * endcapRadius * interpolate(innerRadiusRatio, 1, vertexSpacing)
	perimeter := 2*hSegLen + 2*vSegLen + circlePerimeter

	// Cumulative section start offsets: right half-edge, then alternating
	// quarter arcs and straight edges around the contour, then the
	// remaining right half-edge.
	var sections [10]float64
	sections[0] = 0
	sections[1] = vSegLen / 2
	sections[2] = sections[1] + circlePerimeter/4
	sections[3] = sections[2] + hSegLen
	sections[4] = sections[3] + circlePerimeter/4
	sections[5] = sections[4] + vSegLen
	sections[6] = sections[5] + circlePerimeter/4
	sections[7] = sections[6] + hSegLen
	sections[8] = sections[7] + circlePerimeter/4
	sections[9] = perimeter

	// Corner centers of the inner rectangle, around which the end caps
	// curve.
	rectBR := Vec(hSegHalf, vSegHalf)
	rectBL := Vec(-hSegHalf, vSegHalf)
	rectTL := Vec(-hSegHalf, -vSegHalf)
	rectTR := Vec(hSegHalf, -vSegHalf)

	tPerVertex := perimeter / float64(2*numVerticesPerRadius)
	t := startLocation * perimeter
	inner := false
	vertices := make([]Point, 0, 2*numVerticesPerRadius)
	for range 2 * numVerticesPerRadius {
		boundedT := positiveModulo(t, perimeter)
		section := len(sections) - 1
		for i := range len(sections) - 1 {
			if boundedT < sections[i+1] {
				section = i
				break
			}
		}
		var tProportion float64
		if size := sections[(section+1)%len(sections)] - sections[section]; size > 0 {
			tProportion = (boundedT - sections[section]) / size
		}

		var v Vec2
		switch section {
		case 0: // lower half of the right edge
			v = Vec(hSegHalf+endcapRadius, tProportion*vSegHalf)
		case 1: // bottom-right quarter arc
			v = rectBR.Add(VecFromAngle(tProportion * math.Pi / 2).Mul(endcapRadius))
		case 2: // bottom edge
			v = Vec(hSegHalf-tProportion*hSegLen, vSegHalf+endcapRadius)
		case 3: // bottom-left quarter arc
			v = rectBL.Add(VecFromAngle(math.Pi/2 + tProportion*math.Pi/2).Mul(endcapRadius))
		case 4: // left edge
			v = Vec(-hSegHalf-endcapRadius, vSegHalf-tProportion*vSegLen)
		case 5: // top-left quarter arc
			v = rectTL.Add(VecFromAngle(math.Pi + tProportion*math.Pi/2).Mul(endcapRadius))
		case 6: // top edge
			v = Vec(-hSegHalf+tProportion*hSegLen, -vSegHalf-endcapRadius)
		case 7: // top-right quarter arc
			v = rectTR.Add(VecFromAngle(3*math.Pi/2 + tProportion*math.Pi/2).Mul(endcapRadius))
		default: // upper half of the right edge
			v = Vec(hSegHalf+endcapRadius, -vSegHalf+tProportion*vSegHalf)
		}
		if inner {
			v = v.Mul(innerRadiusRatio)
		}
		vertices = append(vertices, center.Translate(v))
		inner = !inner
		t += tPerVertex
	}
	return vertices
}

// Package shapes constructs rounded polygons and morphs smoothly between
// them.
//
// A [RoundedPolygon] replaces each vertex of a polygon with a circular arc
// and, optionally, two smoothing flanks (see [CornerRounding]), producing a
// closed outline of cubic Bézier curves. When the requested roundings do not
// fit on an edge, the two corners sharing it split the available length
// proportionally, giving up smoothing before rounding.
//
// A [Morph] matches the outlines of two polygons feature to feature —
// convex corners to convex corners, concave to concave — so that linearly
// interpolating the matched curve pairs yields a visually continuous
// animation. Evaluating a morph at a progress is cheap and allocation-free
// through [Morph.AppendCubics], suitable for calling once per frame.
//
// # Features
//
// We provide the following notable features:
//
//   - Corner rounding with smoothing and cut allocation (see
//     [PolygonFromVertices])
//   - Parametric shapes (see [Circle], [Rectangle], [Star], [Pill],
//     [PillStar])
//   - Arc-length measurement of outlines (see [MeasurePolygon])
//   - Feature-based outline matching and morphing (see [NewMorph])
//   - Affine transformations (see [Affine])
//
// # Coordinates and convexity
//
// The package is neutral between y-up and y-down coordinate systems.
// Convexity of a corner is defined by the sign of the cross product at its
// vertex, so it flips if a caller mirrors the y-axis; callers should pick
// one orientation and stay in it, or avoid relying on convexity across
// frames.
//
// # Rendering
//
// The package produces curve lists, not platform paths. A renderer consumes
// [RoundedPolygon.Cubics] or [Morph.Cubics] by emitting a moveTo to the
// first curve's anchor, a cubicTo per curve, and a close.
package shapes

// Package geom provides the geometric primitives that the sweep-line core
// (package sweep) consumes but does not own: points, vectors, infinite
// lines, and non-horizontal line segments.
//
// # Overview
//
// These types are the "external collaborators" spec.md places outside the
// core: the core is generic over a segment iterator and never constructs
// a Point, Vector, or Line itself. geom is where that construction and the
// small set of operations the core's contract requires — line/line
// intersection, distance-to-point, point-at-Y, approximate equality — are
// implemented.
//
// geom is generic over [github.com/corvidgeo/tessellate/types.Real]
// (float32 | float64), matching spec.md §3.1's requirement to support
// both IEEE-754 precisions.
package geom

// Deterministic 2D geometry for Go.
//
// Every operation gives bit-identical results on every machine: there is no
// floating point anywhere in the computation, and every overflow is reported
// instead of wrapping. Coordinates come in two families, plain 64-bit
// integers and Q32.32 fixed point, which share one generic implementation in
// package geom but never mix.
//
// This package names the concrete types of both families and parses point
// lists. The scalar and geom packages hold everything else.
package detgeom

import (
	"github.com/osuushi/detgeom/geom"
	"github.com/osuushi/detgeom/scalar"
)

type Fixed = scalar.Fixed
type Int = scalar.Int

type FixedPoint = geom.Point[Fixed]
type FixedVector = geom.Vector[Fixed]
type FixedSegment = geom.Segment[Fixed]
type FixedBBox = geom.BBox[Fixed]
type FixedPolygon = geom.Polygon[Fixed]
type FixedIntersection = geom.Intersection[Fixed]

type IntPoint = geom.Point[Int]
type IntVector = geom.Vector[Int]
type IntSegment = geom.Segment[Int]
type IntBBox = geom.BBox[Int]
type IntPolygon = geom.Polygon[Int]
type IntIntersection = geom.Intersection[Int]

// NewFixedPolygon parses a point list (see ParseFixedPoints) and builds a
// polygon from it.
func NewFixedPolygon(points string) (FixedPolygon, error) {
	return newPolygon(points, scalar.Parse)
}

// NewIntPolygon parses a point list (see ParseIntPoints) and builds a
// polygon from it.
func NewIntPolygon(points string) (IntPolygon, error) {
	return newPolygon(points, scalar.ParseInt)
}

func newPolygon[T geom.Scalar[T]](points string, parse func(string) (T, error)) (geom.Polygon[T], error) {
	vertices, err := parsePoints(points, parse)
	if err != nil {
		return geom.Polygon[T]{}, err
	}
	return geom.NewPolygon(vertices...)
}

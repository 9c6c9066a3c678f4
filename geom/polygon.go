package geom

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/osuushi/detgeom/scalar"
	"github.com/pkg/errors"
)

// Polygon is a closed loop of at least three vertices; the last vertex
// connects back to the first. It is immutable.
//
// A Polygon need not be simple. Area, Centroid and Contains are only
// meaningful for simple polygons; check with IsSimple when the input is not
// trusted.
type Polygon[T Scalar[T]] struct {
	vertices []Point[T]
	bounds   BBox[T]
	anchor   Point[T]
}

// NewPolygon copies vertices into a new polygon. A final vertex equal to the
// first is taken as an explicit closing vertex and dropped. Fewer than three
// vertices remaining is ErrInvalidPolygon.
func NewPolygon[T Scalar[T]](vertices ...Point[T]) (Polygon[T], error) {
	if n := len(vertices); n > 1 && vertices[0] == vertices[n-1] {
		vertices = vertices[:n-1]
	}
	if len(vertices) < 3 {
		return Polygon[T]{}, errors.Wrapf(ErrInvalidPolygon, "%d vertices", len(vertices))
	}
	return newPolygon(slices.Clone(vertices)), nil
}

// newPolygon takes ownership of vertices, which must hold at least three.
func newPolygon[T Scalar[T]](vertices []Point[T]) Polygon[T] {
	poly := Polygon[T]{
		vertices: vertices,
		bounds:   Bounds(vertices...),
		anchor:   vertices[0],
	}
	for _, v := range vertices[1:] {
		if v.Y < poly.anchor.Y || (v.Y == poly.anchor.Y && v.X < poly.anchor.X) {
			poly.anchor = v
		}
	}
	return poly
}

// MustPolygon is NewPolygon for literal vertex lists. It panics on error.
func MustPolygon[T Scalar[T]](vertices ...Point[T]) Polygon[T] {
	poly, err := NewPolygon(vertices...)
	if err != nil {
		panic(err)
	}
	return poly
}

func (poly Polygon[T]) Len() int {
	return len(poly.vertices)
}

// Vertex returns vertex i, treating the vertex list as circular.
func (poly Polygon[T]) Vertex(i int) Point[T] {
	return poly.vertices[CircularIndex(i, len(poly.vertices))]
}

func (poly Polygon[T]) Vertices() []Point[T] {
	return slices.Clone(poly.vertices)
}

// Edge returns the edge from vertex i to vertex i+1.
func (poly Polygon[T]) Edge(i int) Segment[T] {
	return Segment[T]{poly.Vertex(i), poly.Vertex(i + 1)}
}

// Edges yields every edge in order, ending with the closing edge.
func (poly Polygon[T]) Edges() iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		for i := range poly.vertices {
			if !yield(poly.Edge(i)) {
				return
			}
		}
	}
}

func (poly Polygon[T]) Bounds() BBox[T] {
	return poly.bounds
}

// Anchor returns the lowest vertex, the leftmost one if several share the
// lowest Y.
func (poly Polygon[T]) Anchor() Point[T] {
	return poly.anchor
}

// Reverse returns the same loop with the opposite winding.
func (poly Polygon[T]) Reverse() Polygon[T] {
	rev := poly
	rev.vertices = slices.Clone(poly.vertices)
	slices.Reverse(rev.vertices)
	return rev
}

func (poly Polygon[T]) String() string {
	var sb strings.Builder
	sb.WriteString("polygon[")
	for i, v := range poly.vertices {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// DoubledArea returns twice the signed area, positive for counterclockwise
// winding. It is the shoelace sum taken over vertices translated so that
// vertex 0 is the origin, accumulated exactly and rounded once. In the
// integer family it is exact.
func (poly Polygon[T]) DoubledArea() (area T, err error) {
	defer catch(&err)
	return must(scalar.Narrow[T](poly.doubledArea())), nil
}

func (poly Polygon[T]) doubledArea() scalar.Wide {
	var sum scalar.Wide
	for tri := range poly.fanWeights() {
		sum = sum.Add(tri.weight)
	}
	return sum
}

// Area returns the signed area, rounded down. It halves the exact doubled
// area, so it is representable whenever the area itself is. Prefer
// DoubledArea in the integer family, where halving an odd doubled area
// loses the half.
func (poly Polygon[T]) Area() (area T, err error) {
	defer catch(&err)
	return must(scalar.Quo[T](poly.doubledArea(), scalar.WideOf(constant[T](2)))), nil
}

// IsCounterClockwise reports whether the signed area is positive. For a
// non-simple polygon this is the sign of the net signed area.
func (poly Polygon[T]) IsCounterClockwise() (ccw bool, err error) {
	defer catch(&err)
	return poly.doubledArea().Sign() > 0, nil
}

// fanTriangle is one triangle of the fan from vertex 0: its doubled signed
// area and the sum of its two far corners, both relative to vertex 0 and
// both exact.
type fanTriangle struct {
	weight   scalar.Wide
	cornersX scalar.Wide
	cornersY scalar.Wide
}

func (poly Polygon[T]) fanWeights() iter.Seq[fanTriangle] {
	return func(yield func(fanTriangle) bool) {
		origin := poly.vertices[0]
		prev := poly.vertices[1].sub(origin)
		for _, v := range poly.vertices[2:] {
			d := v.sub(origin)
			tri := fanTriangle{
				weight:   prev.wideCross(d),
				cornersX: scalar.WideOf(prev.X).Add(scalar.WideOf(d.X)),
				cornersY: scalar.WideOf(prev.Y).Add(scalar.WideOf(d.Y)),
			}
			if !yield(tri) {
				return
			}
			prev = d
		}
	}
}

// Centroid returns the area-weighted center of the polygon: the mean of the
// fan triangles' centroids, weighted by their signed areas. Each coordinate
// is the exact floor of that weighted mean. Nothing is rounded before the
// final division, so the centroid is representable whenever it lies in
// range.
//
// A polygon with zero net area has no centroid and returns
// ErrDegenerateGeometry.
func (poly Polygon[T]) Centroid() (c Point[T], err error) {
	defer catch(&err)

	total := poly.doubledArea()
	if total.Sign() == 0 {
		return c, errors.Wrapf(ErrDegenerateGeometry, "centroid of zero-area %s", poly)
	}

	// Each triangle's centroid is origin + corners/3, so the weighted mean
	// is origin + Σ weight·corners / (3·total).
	var x, y scalar.Wide
	for tri := range poly.fanWeights() {
		x = x.Add(tri.weight.Mul(tri.cornersX))
		y = y.Add(tri.weight.Mul(tri.cornersY))
	}
	den := total.Add(total).Add(total)
	offset := Vector[T]{
		must(scalar.Quo[T](x, den)),
		must(scalar.Quo[T](y, den)),
	}
	return poly.vertices[0].add(offset), nil
}

// IsConvex reports whether every vertex turns the same way. Collinear
// vertices are ignored unless the path doubles back on itself there, which
// is not convex. A polygon with no turns at all is not convex.
//
// Only turns are examined, so a polygon that winds more than once, like a
// pentagram, passes. Combine with IsSimple where that matters.
func (poly Polygon[T]) IsConvex() (convex bool, err error) {
	defer catch(&err)

	turn := Collinear
	for i, v := range poly.vertices {
		in := v.sub(poly.Vertex(i - 1))
		out := poly.Vertex(i + 1).sub(v)
		o := in.Orientation(out)
		switch {
		case o == Collinear:
			if in.reverses(out) {
				return false, nil
			}
		case turn == Collinear:
			turn = o
		case o != turn:
			return false, nil
		}
	}
	return turn != Collinear, nil
}

// CounterClockwisePoints returns the vertices sorted counterclockwise by
// angle around the anchor, starting with the anchor itself. Vertices at the
// same angle are ordered nearest first. Every vertex is at or above the
// anchor, so the angles span less than a half turn and the ordering is
// decided by Orient alone.
func (poly Polygon[T]) CounterClockwisePoints() (points []Point[T], err error) {
	defer catch(&err)

	anchor := poly.anchor
	points = poly.Vertices()
	slices.SortStableFunc(points, func(a, b Point[T]) int {
		switch {
		case a == b:
			return 0
		case a == anchor:
			return -1
		case b == anchor:
			return 1
		}
		switch orient(anchor, a, b) {
		case Left:
			return -1
		case Right:
			return 1
		}
		// Same ray from the anchor: the ray points upward, or rightward
		// when horizontal, so (Y, X) order is distance order.
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return points, nil
}

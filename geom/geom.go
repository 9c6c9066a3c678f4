// Package geom implements deterministic 2D primitives and predicates over
// either coordinate family from package scalar.
//
// Every type is an immutable value. Every predicate that only needs a sign
// (orientation, on-segment, containment, convexity, simplicity, intersection
// classification) is exact: it never rounds, so the integer and fixed-point
// families agree on any input both can represent. Constructed values
// (intersection points, areas, centroids) round toward negative infinity.
//
// Operations that can overflow return scalar.ErrOverflow rather than wrap.
package geom

import (
	"fmt"

	"github.com/osuushi/detgeom/scalar"
)

// Scalar is the coordinate constraint, satisfied by scalar.Int and
// scalar.Fixed.
type Scalar[T any] interface {
	scalar.Scalar[T]
}

// Point is a location.
type Point[T Scalar[T]] struct {
	X, Y T
}

// Vector is a displacement. It is a distinct type from Point so that, for
// example, two points cannot be added.
type Vector[T Scalar[T]] struct {
	X, Y T
}

func Pt[T Scalar[T]](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func Vec[T Scalar[T]](x, y T) Vector[T] {
	return Vector[T]{X: x, Y: y}
}

// Less orders points lexicographically, by X and then by Y. Along any line
// this is a total order consistent with position on the line.
func (p Point[T]) Less(q Point[T]) bool {
	if p.X == q.X {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p Point[T]) AsVector() Vector[T] {
	return Vector[T](p)
}

func (v Vector[T]) AsPoint() Point[T] {
	return Point[T](v)
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

func (v Vector[T]) String() string {
	return fmt.Sprintf("<%s, %s>", v.X, v.Y)
}

// CircularIndex wraps i into [0, n), so that -1 is the last vertex of a
// polygon with n vertices and n is the first. n must be positive.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// constant builds a small integer constant in either family.
func constant[T Scalar[T]](n int64) T {
	var zero T
	return must(zero.FromInt64(n))
}

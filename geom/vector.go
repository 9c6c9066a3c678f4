package geom

import "github.com/osuushi/detgeom/scalar"

// Exported operations return errors. The unexported versions throw, for use
// inside algorithms that defer catch once at their entry point.

func (p Point[T]) Add(v Vector[T]) (q Point[T], err error) {
	defer catch(&err)
	return p.add(v), nil
}

func (p Point[T]) Sub(q Point[T]) (v Vector[T], err error) {
	defer catch(&err)
	return p.sub(q), nil
}

func (v Vector[T]) Add(w Vector[T]) (u Vector[T], err error) {
	defer catch(&err)
	return v.add(w), nil
}

func (v Vector[T]) Sub(w Vector[T]) (u Vector[T], err error) {
	defer catch(&err)
	return Vector[T]{must(v.X.Sub(w.X)), must(v.Y.Sub(w.Y))}, nil
}

func (v Vector[T]) Neg() (u Vector[T], err error) {
	defer catch(&err)
	return Vector[T]{must(v.X.Neg()), must(v.Y.Neg())}, nil
}

// Scale multiplies both components by k.
func (v Vector[T]) Scale(k T) (u Vector[T], err error) {
	defer catch(&err)
	return Vector[T]{must(v.X.Mul(k)), must(v.Y.Mul(k))}, nil
}

func (v Vector[T]) Dot(w Vector[T]) (d T, err error) {
	defer catch(&err)
	return v.dot(w), nil
}

// Cross returns the z component of the 3D cross product, x1*y2 - x2*y1. Its
// magnitude is twice the signed area of the triangle spanned by v and w. For
// an exact sign, use Orientation.
func (v Vector[T]) Cross(w Vector[T]) (c T, err error) {
	defer catch(&err)
	return v.cross(w), nil
}

// LenSquared returns v·v.
func (v Vector[T]) LenSquared() (l T, err error) {
	defer catch(&err)
	return v.dot(v), nil
}

// Magnitude returns sqrt(v·v), rounded down. The squared length must be
// representable even when the magnitude itself would be.
func (v Vector[T]) Magnitude() (m T, err error) {
	defer catch(&err)
	return must(v.dot(v).Sqrt()), nil
}

// Orientation returns the rotational direction from v to w. It is exact.
func (v Vector[T]) Orientation(w Vector[T]) Orientation {
	switch scalar.CrossSign(v.X, v.Y, w.X, w.Y) {
	case 1:
		return Left
	case -1:
		return Right
	}
	return Collinear
}

func (p Point[T]) add(v Vector[T]) Point[T] {
	return Point[T]{must(p.X.Add(v.X)), must(p.Y.Add(v.Y))}
}

func (p Point[T]) sub(q Point[T]) Vector[T] {
	return Vector[T]{must(p.X.Sub(q.X)), must(p.Y.Sub(q.Y))}
}

func (v Vector[T]) add(w Vector[T]) Vector[T] {
	return Vector[T]{must(v.X.Add(w.X)), must(v.Y.Add(w.Y))}
}

// dot and cross round once, after an exact sum, so only a result outside
// the range overflows.
func (v Vector[T]) dot(w Vector[T]) T {
	return must(scalar.Narrow[T](scalar.Dot(v.X, v.Y, w.X, w.Y)))
}

func (v Vector[T]) cross(w Vector[T]) T {
	return must(scalar.Narrow[T](v.wideCross(w)))
}

func (v Vector[T]) wideCross(w Vector[T]) scalar.Wide {
	return scalar.Cross(v.X, v.Y, w.X, w.Y)
}

// reverses reports whether w points back against v.
func (v Vector[T]) reverses(w Vector[T]) bool {
	return scalar.DotSign(v.X, v.Y, w.X, w.Y) < 0
}

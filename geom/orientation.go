package geom

// Orientation is the turn direction of an ordered triple of points.
type Orientation int

const (
	Collinear Orientation = iota
	// Left is a counterclockwise turn.
	Left
	// Right is a clockwise turn.
	Right
)

// Reverse swaps Left and Right. It is the orientation of the same triple in
// the opposite order.
func (o Orientation) Reverse() Orientation {
	switch o {
	case Left:
		return Right
	case Right:
		return Left
	}
	return Collinear
}

func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "collinear"
}

// Orient classifies the turn p → q → r by the sign of (q-p) × (r-p). All of
// the other predicates in this package are built on it.
//
// The sign is computed exactly from the full-width products, so the only
// possible error is overflow while forming the two difference vectors.
func Orient[T Scalar[T]](p, q, r Point[T]) (o Orientation, err error) {
	defer catch(&err)
	return orient(p, q, r), nil
}

func orient[T Scalar[T]](p, q, r Point[T]) Orientation {
	return q.sub(p).Orientation(r.sub(p))
}

// TwiceSignedArea returns (b-a) × (c-a), twice the signed area of triangle
// abc. It is positive when abc winds counterclockwise.
func TwiceSignedArea[T Scalar[T]](a, b, c Point[T]) (area T, err error) {
	defer catch(&err)
	return b.sub(a).cross(c.sub(a)), nil
}

package geom

import "fmt"

// Segment is the closed line segment from A to B. It is degenerate when A
// equals B, in which case it behaves as the single point A.
type Segment[T Scalar[T]] struct {
	A, B Point[T]
}

func Seg[T Scalar[T]](a, b Point[T]) Segment[T] {
	return Segment[T]{A: a, B: b}
}

func (s Segment[T]) IsDegenerate() bool {
	return s.A == s.B
}

// Direction returns B - A.
func (s Segment[T]) Direction() (Vector[T], error) {
	return s.B.Sub(s.A)
}

// Length returns |B - A|, rounded down. It is zero for a degenerate segment.
func (s Segment[T]) Length() (l T, err error) {
	defer catch(&err)
	return must(s.B.sub(s.A).dot(s.B.sub(s.A)).Sqrt()), nil
}

// LenSquared returns |B - A|², which is exact where Length is not.
func (s Segment[T]) LenSquared() (l T, err error) {
	defer catch(&err)
	d := s.B.sub(s.A)
	return d.dot(d), nil
}

func (s Segment[T]) Bounds() BBox[T] {
	return Bounds(s.A, s.B)
}

func (s Segment[T]) Reverse() Segment[T] {
	return Segment[T]{A: s.B, B: s.A}
}

// Contains reports whether p lies on s, endpoints included.
func (s Segment[T]) Contains(p Point[T]) (bool, error) {
	return OnSegment(p, s)
}

// ordered returns the endpoints in lexicographic order.
func (s Segment[T]) ordered() (lo, hi Point[T]) {
	if s.B.Less(s.A) {
		return s.B, s.A
	}
	return s.A, s.B
}

func (s Segment[T]) String() string {
	return fmt.Sprintf("%s-%s", s.A, s.B)
}

// OnSegment reports whether p is collinear with s and inside its bounding
// box, endpoints included. Against a degenerate segment it reduces to
// p == s.A.
func OnSegment[T Scalar[T]](p Point[T], s Segment[T]) (on bool, err error) {
	defer catch(&err)
	return onSegment(p, s), nil
}

func onSegment[T Scalar[T]](p Point[T], s Segment[T]) bool {
	// The box test is free and rules out most points before any arithmetic.
	return s.Bounds().Contains(p) && orient(s.A, s.B, p) == Collinear
}

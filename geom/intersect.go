package geom

import (
	"fmt"

	"github.com/osuushi/detgeom/scalar"
)

type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	// PointIntersection is a single shared point: a proper crossing, an
	// endpoint touching the other segment, or collinear segments meeting end
	// to end.
	PointIntersection
	// OverlapIntersection is a shared collinear stretch of positive length.
	OverlapIntersection
)

func (k IntersectionKind) String() string {
	switch k {
	case PointIntersection:
		return "point"
	case OverlapIntersection:
		return "overlap"
	}
	return "none"
}

// Intersection is the result of Intersect. Point is set for
// PointIntersection and Overlap for OverlapIntersection, with its endpoints
// in ascending Less order.
type Intersection[T Scalar[T]] struct {
	Kind    IntersectionKind
	Point   Point[T]
	Overlap Segment[T]
}

func (i Intersection[T]) String() string {
	switch i.Kind {
	case PointIntersection:
		return fmt.Sprintf("point %s", i.Point)
	case OverlapIntersection:
		return fmt.Sprintf("overlap %s", i.Overlap)
	}
	return "none"
}

func noIntersection[T Scalar[T]]() Intersection[T] {
	return Intersection[T]{}
}

func pointIntersection[T Scalar[T]](p Point[T]) Intersection[T] {
	return Intersection[T]{Kind: PointIntersection, Point: p}
}

// Intersect classifies how two closed segments meet.
//
// The classification is exact. Only the location of a proper crossing is
// constructed, rounding each coordinate down from the exact point. The
// result does not depend on argument order or endpoint order.
func Intersect[T Scalar[T]](s1, s2 Segment[T]) (i Intersection[T], err error) {
	defer catch(&err)
	return intersect(s1, s2), nil
}

// Intersects reports whether the segments share at least one point. It never
// constructs a crossing point.
func Intersects[T Scalar[T]](s1, s2 Segment[T]) (ok bool, err error) {
	defer catch(&err)
	i, _ := classify(s1, s2)
	return i.Kind != NoIntersection, nil
}

func intersect[T Scalar[T]](s1, s2 Segment[T]) Intersection[T] {
	s1, s2 = canonicalPair(s1, s2)
	i, crossing := classify(s1, s2)
	if crossing {
		i.Point = crossingPoint(s1, s2)
	}
	return i
}

// classify does everything intersect does except locate a proper crossing.
// It reports such a crossing as a PointIntersection with crossing set and
// the Point left zero.
func classify[T Scalar[T]](s1, s2 Segment[T]) (i Intersection[T], crossing bool) {
	if !s1.Bounds().Overlaps(s2.Bounds()) {
		return noIntersection[T](), false
	}

	switch {
	case s1.IsDegenerate() && s2.IsDegenerate():
		if s1.A == s2.A {
			return pointIntersection(s1.A), false
		}
		return noIntersection[T](), false
	case s1.IsDegenerate():
		if onSegment(s1.A, s2) {
			return pointIntersection(s1.A), false
		}
		return noIntersection[T](), false
	case s2.IsDegenerate():
		if onSegment(s2.A, s1) {
			return pointIntersection(s2.A), false
		}
		return noIntersection[T](), false
	}

	o1 := orient(s1.A, s1.B, s2.A)
	o2 := orient(s1.A, s1.B, s2.B)
	o3 := orient(s2.A, s2.B, s1.A)
	o4 := orient(s2.A, s2.B, s1.B)

	if o1 == Collinear && o2 == Collinear {
		return collinearOverlap(s1, s2), false
	}

	if o1 != Collinear && o2 != Collinear && o3 != Collinear && o4 != Collinear {
		if o1 != o2 && o3 != o4 {
			return Intersection[T]{Kind: PointIntersection}, true
		}
		return noIntersection[T](), false
	}

	// The segments are not collinear, so an endpoint lying within the other
	// segment is their only shared point.
	switch {
	case o1 == Collinear && s1.Bounds().Contains(s2.A):
		return pointIntersection(s2.A), false
	case o2 == Collinear && s1.Bounds().Contains(s2.B):
		return pointIntersection(s2.B), false
	case o3 == Collinear && s2.Bounds().Contains(s1.A):
		return pointIntersection(s1.A), false
	case o4 == Collinear && s2.Bounds().Contains(s1.B):
		return pointIntersection(s1.B), false
	}
	return noIntersection[T](), false
}

// canonicalPair orders the endpoints of each segment and then the segments
// themselves, so that the rounded crossing point is the same for every
// ordering of the same two segments.
func canonicalPair[T Scalar[T]](s1, s2 Segment[T]) (Segment[T], Segment[T]) {
	lo1, hi1 := s1.ordered()
	lo2, hi2 := s2.ordered()
	s1, s2 = Segment[T]{lo1, hi1}, Segment[T]{lo2, hi2}
	if lo2.Less(lo1) || (lo1 == lo2 && hi2.Less(hi1)) {
		return s2, s1
	}
	return s1, s2
}

// collinearOverlap intersects two segments on the same line. Along a line,
// Less is the order of position, so the overlap is an interval intersection.
func collinearOverlap[T Scalar[T]](s1, s2 Segment[T]) Intersection[T] {
	lo1, hi1 := s1.ordered()
	lo2, hi2 := s2.ordered()
	start, end := lo1, hi1
	if start.Less(lo2) {
		start = lo2
	}
	if hi2.Less(end) {
		end = hi2
	}
	switch {
	case end.Less(start):
		return noIntersection[T]()
	case start == end:
		return pointIntersection(start)
	}
	return Intersection[T]{Kind: OverlapIntersection, Overlap: Segment[T]{start, end}}
}

// crossingPoint locates a proper crossing as s1.A + t·r with
// t = ((s2.A - s1.A) × s) / (r × s), where r and s are the two directions.
// Numerator and denominator are exact, and each coordinate offset is a
// single floor division, so segments whose direction products exceed the
// scalar range still cross wherever the point itself is representable.
func crossingPoint[T Scalar[T]](s1, s2 Segment[T]) Point[T] {
	r := s1.B.sub(s1.A)
	s := s2.B.sub(s2.A)
	// A proper crossing is never parallel, so den is nonzero.
	den := r.wideCross(s)
	num := s2.A.sub(s1.A).wideCross(s)
	offset := func(d T) T {
		return must(scalar.Quo[T](scalar.WideOf(d).Mul(num), den))
	}
	return Point[T]{
		X: must(s1.A.X.Add(offset(r.X))),
		Y: must(s1.A.Y.Add(offset(r.Y))),
	}
}

package geom

// Containment classifies a point against a polygon.
type Containment int

const (
	Outside Containment = iota
	Inside
	// OnBoundary is any point on an edge, vertices included. It is never
	// reported as Inside or Outside.
	OnBoundary
)

func (c Containment) String() string {
	switch c {
	case Inside:
		return "inside"
	case OnBoundary:
		return "on boundary"
	}
	return "outside"
}

// Contains classifies p by the even-odd rule.
//
// Every edge is first checked with OnSegment, so boundary points are
// settled before ray casting can see them. The remaining points cast a ray
// in +X. An edge is crossed when exactly one of its endpoints is strictly
// above p, which counts a vertex on the ray once for the edge leaving it
// upward and never for a horizontal edge. Which side of the edge p lies on
// comes from Orient, so there is no division.
func (poly Polygon[T]) Contains(p Point[T]) (c Containment, err error) {
	defer catch(&err)

	if !poly.bounds.Contains(p) {
		return Outside, nil
	}
	for e := range poly.Edges() {
		if onSegment(p, e) {
			return OnBoundary, nil
		}
	}
	if poly.crossingCount(p)%2 == 1 {
		return Inside, nil
	}
	return Outside, nil
}

// Crossing count helper for even odd rule
func (poly Polygon[T]) crossingCount(p Point[T]) int {
	count := 0
	for e := range poly.Edges() {
		lower, upper := e.A, e.B
		if lower.Y > upper.Y {
			lower, upper = upper, lower
		}
		// p is left of the upward edge, so the edge is right of p.
		if (lower.Y > p.Y) != (upper.Y > p.Y) && orient(lower, upper, p) == Left {
			count++
		}
	}
	return count
}

package geom

import (
	"slices"

	"deedles.dev/xiter"
)

// IsSimple reports whether the polygon's boundary never touches itself:
// edges that are not neighbors share no point, and neighboring edges share
// only their common vertex. It compares every pair of edges, so it is
// quadratic in the vertex count, and is never checked implicitly.
//
// Crossing points are classified but never constructed, so the only
// possible error is overflow.
func (poly Polygon[T]) IsSimple() (simple bool, err error) {
	defer catch(&err)

	n := poly.Len()
	edges := slices.Collect(poly.Edges())
	for i, e := range xiter.Enumerate(poly.Edges()) {
		box := e.Bounds()
		for j := i + 1; j < n; j++ {
			f := edges[j]
			if !box.Overlaps(f.Bounds()) {
				continue
			}

			x, _ := classify(e, f)
			switch {
			case x.Kind == NoIntersection:
				continue
			case j == i+1:
				// e.B == f.A
				if x.Kind != PointIntersection || x.Point != e.B {
					return false, nil
				}
			case i == 0 && j == n-1:
				// f.B == e.A
				if x.Kind != PointIntersection || x.Point != e.A {
					return false, nil
				}
			default:
				return false, nil
			}
		}
	}
	return true, nil
}

package geom

import "fmt"

// BBox is an axis-aligned bounding box. Both corners are inclusive.
type BBox[T Scalar[T]] struct {
	Min, Max Point[T]
}

// Bounds returns the smallest box containing every point. It panics if
// points is empty.
func Bounds[T Scalar[T]](points ...Point[T]) BBox[T] {
	b := BBox[T]{points[0], points[0]}
	for _, p := range points[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}

func (b BBox[T]) Contains(p Point[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Overlaps reports whether the boxes share at least one point. Touching
// edges count.
func (b BBox[T]) Overlaps(o BBox[T]) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

func (b BBox[T]) String() string {
	return fmt.Sprintf("[%s %s]", b.Min, b.Max)
}

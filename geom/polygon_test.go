package geom

import (
	"testing"

	"github.com/osuushi/detgeom/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolygon(t *testing.T) {
	_, err := NewPolygon(ip(0, 0), ip(1, 0))
	assert.ErrorIs(t, err, ErrInvalidPolygon)

	_, err = NewPolygon[scalar.Int]()
	assert.ErrorIs(t, err, ErrInvalidPolygon)

	// The closing vertex is dropped, which can leave too few.
	_, err = NewPolygon(ip(0, 0), ip(1, 0), ip(0, 0))
	assert.ErrorIs(t, err, ErrInvalidPolygon)

	poly, err := NewPolygon(ip(0, 0), ip(1, 0), ip(1, 1), ip(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, poly.Len())

	assert.Panics(t, func() { MustPolygon(ip(0, 0)) })
}

func TestPolygonAccessors(t *testing.T) {
	input := []intPoint{ip(3, 1), ip(5, 4), ip(1, 1), ip(2, 5)}
	poly, err := NewPolygon(input...)
	require.NoError(t, err)

	input[0] = ip(100, 100)
	assert.Equal(t, ip(3, 1), poly.Vertex(0), "input is copied")
	vertices := poly.Vertices()
	vertices[0] = ip(100, 100)
	assert.Equal(t, ip(3, 1), poly.Vertex(0), "output is copied")

	assert.Equal(t, ip(2, 5), poly.Vertex(-1))
	assert.Equal(t, ip(5, 4), poly.Vertex(5))
	assert.Equal(t, ip(1, 1), poly.Anchor())
	assert.Equal(t, BBox[scalar.Int]{ip(1, 1), ip(5, 5)}, poly.Bounds())
	assert.Equal(t, iseg(2, 5, 3, 1), poly.Edge(3))

	var edges []Segment[scalar.Int]
	for e := range poly.Edges() {
		edges = append(edges, e)
	}
	assert.Equal(t, []Segment[scalar.Int]{
		iseg(3, 1, 5, 4),
		iseg(5, 4, 1, 1),
		iseg(1, 1, 2, 5),
		iseg(2, 5, 3, 1),
	}, edges)

	rev := poly.Reverse()
	assert.Equal(t, []intPoint{ip(2, 5), ip(1, 1), ip(5, 4), ip(3, 1)}, rev.Vertices())
	assert.Equal(t, poly.Anchor(), rev.Anchor())
	assert.Equal(t, ip(3, 1), poly.Vertex(0), "reverse leaves the original alone")

	assert.Equal(t, "polygon[(3, 1) (5, 4) (1, 1) (2, 5)]", poly.String())
}

func TestArea(t *testing.T) {
	a, err := unitSquare().Area()
	require.NoError(t, err)
	assert.Equal(t, scalar.One, a)

	a, err = unitSquare().Reverse().Area()
	require.NoError(t, err)
	assert.Equal(t, scalar.FromInt32(-1), a)

	d, err := intSquare(1).DoubledArea()
	require.NoError(t, err)
	assert.Equal(t, scalar.Int(2), d)

	ia, err := intSquare(1).Area()
	require.NoError(t, err)
	assert.Equal(t, scalar.Int(1), ia)

	// An odd doubled area loses its half in the integer family, rounding
	// toward negative infinity.
	tri := MustPolygon(ip(0, 0), ip(1, 0), ip(0, 1))
	d, err = tri.DoubledArea()
	require.NoError(t, err)
	assert.Equal(t, scalar.Int(1), d)
	ia, err = tri.Area()
	require.NoError(t, err)
	assert.Equal(t, scalar.Int(0), ia)
	ia, err = tri.Reverse().Area()
	require.NoError(t, err)
	assert.Equal(t, scalar.Int(-1), ia)

	fa, err := intToFixed(tri).Area()
	require.NoError(t, err)
	assert.Equal(t, scalar.MustParse("0.5"), fa)

	ccw, err := unitSquare().IsCounterClockwise()
	require.NoError(t, err)
	assert.True(t, ccw)
	ccw, err = unitSquare().Reverse().IsCounterClockwise()
	require.NoError(t, err)
	assert.False(t, ccw)
}

func TestAreaIsTranslationInvariant(t *testing.T) {
	// Far from the origin, the naive shoelace products would overflow.
	const off = 3_000_000_000
	poly := MustPolygon(ip(off, off), ip(off+10, off), ip(off+10, off+10), ip(off, off+10))
	d, err := poly.DoubledArea()
	require.NoError(t, err)
	assert.Equal(t, scalar.Int(200), d)
}

func TestLargePolygons(t *testing.T) {
	// Partial sums and products here are past the fixed-point range; the
	// area and the centroid are not.
	sq := intToFixed(intSquare(20000))
	a, err := sq.Area()
	require.NoError(t, err)
	assert.Equal(t, "400000000", a.String())
	c, err := sq.Centroid()
	require.NoError(t, err)
	assert.Equal(t, fp("10000", "10000"), c)

	sq = intToFixed(intSquare(40000))
	a, err = sq.Area()
	require.NoError(t, err)
	assert.Equal(t, "1600000000", a.String())
	_, err = sq.DoubledArea()
	assert.ErrorIs(t, err, scalar.ErrOverflow)
	ccw, err := sq.IsCounterClockwise()
	require.NoError(t, err)
	assert.True(t, ccw)
	c, err = sq.Reverse().Centroid()
	require.NoError(t, err)
	assert.Equal(t, fp("20000", "20000"), c)

	_, err = intToFixed(intSquare(50000)).Area()
	assert.ErrorIs(t, err, scalar.ErrOverflow)
}

func TestCentroid(t *testing.T) {
	c, err := unitSquare().Centroid()
	require.NoError(t, err)
	assert.Equal(t, fp("0.5", "0.5"), c)

	cases := []struct {
		name string
		poly Polygon[scalar.Int]
		want intPoint
		// fixed is the exact fixed-point centroid, by raw value.
		fixedX, fixedY int64
	}{
		{"square", intSquare(10), ip(5, 5), 5 << 32, 5 << 32},
		{"clockwise square", intSquare(10).Reverse(), ip(5, 5), 5 << 32, 5 << 32},
		{"triangle", MustPolygon(ip(0, 0), ip(1, 0), ip(0, 1)), ip(0, 0), 1431655765, 1431655765},
		{"negative triangle", MustPolygon(ip(0, 0), ip(-4, 0), ip(0, -4)), ip(-2, -2), -5726623062, -5726623062},
		{"l shape", MustPolygon(ip(0, 0), ip(2, 0), ip(2, 1), ip(1, 1), ip(1, 2), ip(0, 2)), ip(0, 0), 3579139413, 3579139413},
		{"comb", combPolygon(), ip(2, 1), 5 << 31, 5661547799},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.poly.Centroid()
			require.NoError(t, err)
			assert.Equal(t, c.want, got)

			f, err := intToFixed(c.poly).Centroid()
			require.NoError(t, err)
			assert.Equal(t, Pt(scalar.FromRaw(c.fixedX), scalar.FromRaw(c.fixedY)), f)
		})
	}
}

func combPolygon() Polygon[scalar.Int] {
	return MustPolygon(
		ip(0, 0), ip(5, 0), ip(5, 3), ip(4, 3), ip(4, 1), ip(3, 1),
		ip(3, 3), ip(2, 3), ip(2, 1), ip(1, 1), ip(1, 3), ip(0, 3),
	)
}

func TestCentroidDegenerate(t *testing.T) {
	_, err := MustPolygon(ip(0, 0), ip(1, 1), ip(2, 2)).Centroid()
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	// A bowtie's two lobes cancel.
	_, err = MustPolygon(ip(0, 0), ip(2, 2), ip(2, 0), ip(0, 2)).Centroid()
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestIsConvex(t *testing.T) {
	cases := []struct {
		name string
		poly Polygon[scalar.Int]
		want bool
	}{
		{"square", intSquare(3), true},
		{"clockwise square", intSquare(3).Reverse(), true},
		{"triangle", MustPolygon(ip(0, 0), ip(1, 0), ip(0, 1)), true},
		{"collinear vertex", MustPolygon(ip(0, 0), ip(1, 0), ip(2, 0), ip(2, 2), ip(0, 2)), true},
		{"repeated vertex", MustPolygon(ip(0, 0), ip(2, 0), ip(2, 0), ip(2, 2)), true},
		{"l shape", MustPolygon(ip(0, 0), ip(2, 0), ip(2, 1), ip(1, 1), ip(1, 2), ip(0, 2)), false},
		{"comb", combPolygon(), false},
		{"spike", MustPolygon(ip(0, 0), ip(4, 0), ip(4, 4), ip(4, 2)), false},
		{"all collinear", MustPolygon(ip(0, 0), ip(1, 1), ip(2, 2)), false},
		{"bowtie", MustPolygon(ip(0, 0), ip(2, 2), ip(2, 0), ip(0, 2)), false},
		// Turns alone cannot see that a pentagram winds twice.
		{"pentagram", pentagram(), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			convex, err := c.poly.IsConvex()
			require.NoError(t, err)
			assert.Equal(t, c.want, convex)
		})
	}
}

func pentagram() Polygon[scalar.Int] {
	return MustPolygon(ip(0, 10), ip(6, -8), ip(-10, 3), ip(10, 3), ip(-6, -8))
}

func TestIsSimple(t *testing.T) {
	cases := []struct {
		name string
		poly Polygon[scalar.Int]
		want bool
	}{
		{"square", intSquare(3), true},
		{"triangle", MustPolygon(ip(0, 0), ip(1, 0), ip(0, 1)), true},
		{"comb", combPolygon(), true},
		{"collinear vertex", MustPolygon(ip(0, 0), ip(1, 0), ip(2, 0), ip(2, 2), ip(0, 2)), true},
		{"notch touching base", MustPolygon(ip(0, 0), ip(4, 0), ip(4, 4), ip(2, 0), ip(0, 4)), false},
		{"bowtie", MustPolygon(ip(0, 0), ip(2, 2), ip(2, 0), ip(0, 2)), false},
		{"pentagram", pentagram(), false},
		{"spike", MustPolygon(ip(0, 0), ip(4, 0), ip(4, 4), ip(4, 2)), false},
		{"flat triangle", MustPolygon(ip(0, 0), ip(1, 1), ip(2, 2)), false},
		{"repeated vertex", MustPolygon(ip(0, 0), ip(1, 0), ip(1, 0), ip(1, 1), ip(0, 1)), false},
		{"closing edge crosses", MustPolygon(ip(0, 0), ip(4, 0), ip(4, 4), ip(-1, 2), ip(5, 2)), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			simple, err := c.poly.IsSimple()
			require.NoError(t, err)
			assert.Equal(t, c.want, simple)

			simple, err = intToFixed(c.poly).IsSimple()
			require.NoError(t, err)
			assert.Equal(t, c.want, simple, "fixed")
		})
	}
}

func TestCounterClockwisePoints(t *testing.T) {
	cw := MustPolygon(ip(0, 1), ip(1, 1), ip(1, 0), ip(0, 0))
	points, err := cw.CounterClockwisePoints()
	require.NoError(t, err)
	assert.Equal(t, []intPoint{ip(0, 0), ip(1, 0), ip(1, 1), ip(0, 1)}, points)

	// Points on one ray from the anchor come nearest first.
	fan := MustPolygon(ip(2, 2), ip(0, 0), ip(3, 2), ip(1, 1), ip(2, 0), ip(-1, 0))
	points, err = fan.CounterClockwisePoints()
	require.NoError(t, err)
	assert.Equal(t, []intPoint{ip(-1, 0), ip(0, 0), ip(2, 0), ip(1, 1), ip(3, 2), ip(2, 2)}, points)
}

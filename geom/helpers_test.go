package geom

import (
	"github.com/osuushi/detgeom/scalar"
)

type (
	fixedPoint = Point[scalar.Fixed]
	intPoint   = Point[scalar.Int]
)

// fp builds a fixed-point point from decimal strings.
func fp(x, y string) fixedPoint {
	return Pt(scalar.MustParse(x), scalar.MustParse(y))
}

func ip(x, y int64) intPoint {
	return Pt(scalar.Int(x), scalar.Int(y))
}

func fseg(ax, ay, bx, by string) Segment[scalar.Fixed] {
	return Seg(fp(ax, ay), fp(bx, by))
}

func iseg(ax, ay, bx, by int64) Segment[scalar.Int] {
	return Seg(ip(ax, ay), ip(bx, by))
}

func unitSquare() Polygon[scalar.Fixed] {
	return MustPolygon(fp("0", "0"), fp("1", "0"), fp("1", "1"), fp("0", "1"))
}

func intSquare(side int64) Polygon[scalar.Int] {
	return MustPolygon(ip(0, 0), ip(side, 0), ip(side, side), ip(0, side))
}

// intToFixed converts polygon vertices that are known to be in range.
func intToFixed(poly Polygon[scalar.Int]) Polygon[scalar.Fixed] {
	var vertices []fixedPoint
	for _, v := range poly.Vertices() {
		x, err := v.X.ToFixed()
		if err != nil {
			panic(err)
		}
		y, err := v.Y.ToFixed()
		if err != nil {
			panic(err)
		}
		vertices = append(vertices, Pt(x, y))
	}
	return MustPolygon(vertices...)
}

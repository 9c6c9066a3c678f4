package detgeom

import (
	"strings"
	"unicode"

	"github.com/osuushi/detgeom/geom"
	"github.com/osuushi/detgeom/scalar"
	"github.com/pkg/errors"
)

// ParseFixedPoints parses a list of points in the syntax of an SVG points
// attribute: coordinates separated by commas or whitespace, taken in x, y
// pairs, as in "0,0 1,0 1,1". Each coordinate is a decimal read with
// scalar.Parse. An odd number of coordinates is scalar.ErrSyntax.
func ParseFixedPoints(s string) ([]FixedPoint, error) {
	return parsePoints(s, scalar.Parse)
}

// ParseIntPoints is ParseFixedPoints for integer coordinates.
func ParseIntPoints(s string) ([]IntPoint, error) {
	return parsePoints(s, scalar.ParseInt)
}

// ParseFixedPoint parses a single "x,y" or "x y" point.
func ParseFixedPoint(s string) (FixedPoint, error) {
	return parsePoint(s, scalar.Parse)
}

func ParseIntPoint(s string) (IntPoint, error) {
	return parsePoint(s, scalar.ParseInt)
}

func parsePoint[T geom.Scalar[T]](s string, parse func(string) (T, error)) (geom.Point[T], error) {
	points, err := parsePoints(s, parse)
	if err != nil {
		return geom.Point[T]{}, err
	}
	if len(points) != 1 {
		return geom.Point[T]{}, errors.Wrapf(scalar.ErrSyntax, "%q is %d points, want 1", s, len(points))
	}
	return points[0], nil
}

func parsePoints[T geom.Scalar[T]](s string, parse func(string) (T, error)) ([]geom.Point[T], error) {
	coords := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(coords)%2 != 0 {
		return nil, errors.Wrapf(scalar.ErrSyntax, "odd number of coordinates in %q", s)
	}

	points := make([]geom.Point[T], 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		x, err := parse(coords[i])
		if err != nil {
			return nil, errors.WithMessagef(err, "point %d", i/2)
		}
		y, err := parse(coords[i+1])
		if err != nil {
			return nil, errors.WithMessagef(err, "point %d", i/2)
		}
		points = append(points, geom.Pt(x, y))
	}
	return points, nil
}

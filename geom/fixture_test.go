package geom

import (
	"embed"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/detgeom/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixtures are svg files in fixtures/, each holding a single polygon, loaded
// by name sans extension. Coordinates are read as exact decimals, so only
// the polygon's points attribute matters.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) Polygon[scalar.Fixed] {
	t.Helper()

	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	require.NoError(t, err, "failed to parse fixture %q", name)

	polygons := rootEl.FindAll("polygon")
	require.Len(t, polygons, 1, "fixture %q must hold exactly one polygon", name)

	var points []fixedPoint
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		require.Len(t, coords, 2, "invalid point string %q", pointString)
		x, err := scalar.Parse(coords[0])
		require.NoError(t, err)
		y, err := scalar.Parse(coords[1])
		require.NoError(t, err)
		points = append(points, Pt(x, y))
	}

	poly, err := NewPolygon(points...)
	require.NoError(t, err)
	return poly
}

var fixtureNames = []string{"square", "comb", "notch", "pentagram", "bowtie", "fraction"}

func TestFixtures(t *testing.T) {
	cases := []struct {
		name        string
		simple      bool
		convex      bool
		doubledArea string
	}{
		{"square", true, true, "2"},
		{"comb", true, false, "22"},
		{"notch", true, false, "24"},
		{"pentagram", false, true, "-304"},
		{"bowtie", false, false, "0"},
		{"fraction", true, true, "4.375"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			poly := loadFixture(t, c.name)

			simple, err := poly.IsSimple()
			require.NoError(t, err)
			assert.Equal(t, c.simple, simple, "simple")

			convex, err := poly.IsConvex()
			require.NoError(t, err)
			assert.Equal(t, c.convex, convex, "convex")

			d, err := poly.DoubledArea()
			require.NoError(t, err)
			assert.Equal(t, c.doubledArea, d.String(), "doubled area")

			rd, err := poly.Reverse().DoubledArea()
			require.NoError(t, err)
			neg, err := d.Neg()
			require.NoError(t, err)
			assert.Equal(t, neg, rd, "reversed doubled area")
		})
	}
}

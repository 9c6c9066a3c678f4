package scene

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/detgeom/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScene = `
polygons:
  - name: square
    points: "0,0 1,0 1,1 0,1"
  - name: line
    family: int
    points: "0,0 1,1 2,2"
  - name: tri
    family: int
    points: "0,0 4,0 0,4"
queries:
  - polygon: square
    point: "0.5,0.5"
  - polygon: square
    point: "2,2"
  - polygon: square
    point: "0,0.5"
  - polygon: tri
    point: "1,1"
segments:
  - family: int
    a: "0,0 2,2"
    b: "0,2 2,0"
  - a: "0,0 1,0"
    b: "2,0 3,0"
  - a: "0,0 4,0"
    b: "6,0 2,0"
`

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(sampleScene))
	require.NoError(t, err)
	require.Len(t, s.Polygons, 3)
	assert.Equal(t, Polygon{Name: "line", Family: Int, Points: "0,0 1,1 2,2"}, s.Polygons[1])
	assert.Equal(t, Family(""), s.Polygons[0].Family)
	assert.Len(t, s.Queries, 4)
	assert.Len(t, s.Segments, 3)

	var buf bytes.Buffer
	require.NoError(t, s.WriteYAML(&buf))
	again, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("polygons:\n  - name: a\n    pionts: \"0,0 1,0 0,1\"\n"))
	assert.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	s, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Polygons)
}

func TestEvaluate(t *testing.T) {
	s, err := Load(strings.NewReader(sampleScene))
	require.NoError(t, err)
	r, err := Evaluate(s)
	require.NoError(t, err)

	yes, no := true, false
	require.Len(t, r.Polygons, 3)
	assert.Equal(t, PolygonReport{
		Name:        "square",
		Family:      Fixed,
		Vertices:    4,
		Area:        "1",
		DoubledArea: "2",
		Centroid:    "(0.5, 0.5)",
		Winding:     "counterclockwise",
		Convex:      &yes,
		Simple:      &yes,
	}, r.Polygons[0])

	line := r.Polygons[1]
	assert.Equal(t, "0", line.DoubledArea)
	assert.Equal(t, "none", line.Winding)
	assert.Empty(t, line.Centroid)
	assert.Contains(t, line.Errors["centroid"], "degenerate geometry")
	assert.Equal(t, &no, line.Convex)
	assert.Equal(t, &no, line.Simple)

	tri := r.Polygons[2]
	assert.Equal(t, "8", tri.Area)
	assert.Equal(t, "(1, 1)", tri.Centroid)

	assert.Equal(t, []QueryReport{
		{Polygon: "square", Point: "0.5,0.5", Result: "inside"},
		{Polygon: "square", Point: "2,2", Result: "outside"},
		{Polygon: "square", Point: "0,0.5", Result: "on boundary"},
		{Polygon: "tri", Point: "1,1", Result: "inside"},
	}, r.Queries)

	assert.Equal(t, []IntersectionReport{
		{Family: Int, A: "0,0 2,2", B: "0,2 2,0", Kind: "point", Point: "(1, 1)"},
		{Family: Fixed, A: "0,0 1,0", B: "2,0 3,0", Kind: "none"},
		{Family: Fixed, A: "0,0 4,0", B: "6,0 2,0", Kind: "overlap", Overlap: "(2, 0)-(4, 0)"},
	}, r.Intersections)

	var buf bytes.Buffer
	require.NoError(t, r.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "doubled_area: \"2\"")
	assert.Contains(t, buf.String(), "result: on boundary")
}

func TestEvaluateInputErrors(t *testing.T) {
	cases := map[string]*Scene{
		"unknown family": {Polygons: []Polygon{{Name: "a", Family: "float", Points: "0,0 1,0 0,1"}}},
		"too few points": {Polygons: []Polygon{{Name: "a", Points: "0,0 1,0"}}},
		"bad coordinate": {Polygons: []Polygon{{Name: "a", Points: "0,0 1,0 0,y"}}},
		"no name":        {Polygons: []Polygon{{Points: "0,0 1,0 0,1"}}},
		"duplicate name": {Polygons: []Polygon{
			{Name: "a", Points: "0,0 1,0 0,1"},
			{Name: "a", Points: "0,0 1,0 0,1"},
		}},
		"unknown polygon":  {Queries: []Query{{Polygon: "a", Point: "0,0"}}},
		"three point edge": {Segments: []SegmentPair{{A: "0,0 1,1 2,2", B: "0,0 1,1"}}},
		"segment family":   {Segments: []SegmentPair{{Family: "float", A: "0,0 1,1", B: "0,0 1,1"}}},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Evaluate(s)
			assert.Error(t, err)
		})
	}

	// A query point is parsed in its polygon's family.
	_, err := Evaluate(&Scene{
		Polygons: []Polygon{{Name: "tri", Family: Int, Points: "0,0 4,0 0,4"}},
		Queries:  []Query{{Polygon: "tri", Point: "0.5,0.5"}},
	})
	assert.ErrorContains(t, err, "query 0")
	assert.ErrorIs(t, err, scalar.ErrSyntax)
}

func TestLoadSVG(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <polygon id="square" points="0,0 1,0 1,1 0,1" />
  <g>
    <polygon points="0,0 2,0 0,2" />
  </g>
</svg>`
	s, err := LoadSVG(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []Polygon{
		{Name: "square", Family: Fixed, Points: "0,0 1,0 1,1 0,1"},
		{Name: "polygon2", Family: Fixed, Points: "0,0 2,0 0,2"},
	}, s.Polygons)

	_, err = LoadSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	assert.Error(t, err)
}

func TestReadText(t *testing.T) {
	in := "0 0\n1 0\n1 1\n\n\n-1.5 2\n3 4\n  5 6  \n"
	s, err := ReadText(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Polygon{
		{Name: "polygon1", Family: Fixed, Points: "0,0 1,0 1,1"},
		{Name: "polygon2", Family: Fixed, Points: "-1.5,2 3,4 5,6"},
	}, s.Polygons)

	_, err = ReadText(strings.NewReader("0 0\n1\n"))
	assert.ErrorContains(t, err, "line 2")
}

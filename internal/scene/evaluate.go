package scene

import (
	"io"

	"github.com/osuushi/detgeom"
	"github.com/osuushi/detgeom/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Report is the result of evaluating a scene, in scene order. Failures of
// the geometry itself, such as the centroid of a zero-area polygon, are
// results and are recorded in the report. Only malformed input makes
// Evaluate fail: unparsable polygons, query points or segments, and
// references to unknown polygons or families.
type Report struct {
	Polygons      []PolygonReport      `yaml:"polygons"`
	Queries       []QueryReport        `yaml:"queries,omitempty"`
	Intersections []IntersectionReport `yaml:"intersections,omitempty"`
}

type PolygonReport struct {
	Name        string `yaml:"name"`
	Family      Family `yaml:"family"`
	Vertices    int    `yaml:"vertices"`
	Area        string `yaml:"area,omitempty"`
	DoubledArea string `yaml:"doubled_area,omitempty"`
	Centroid    string `yaml:"centroid,omitempty"`
	Winding     string `yaml:"winding,omitempty"`
	Convex      *bool  `yaml:"convex,omitempty"`
	Simple      *bool  `yaml:"simple,omitempty"`
	// Errors maps an operation to the error it returned.
	Errors map[string]string `yaml:"errors,omitempty"`
}

type QueryReport struct {
	Polygon string `yaml:"polygon"`
	Point   string `yaml:"point"`
	Result  string `yaml:"result,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

type IntersectionReport struct {
	Family  Family `yaml:"family"`
	A       string `yaml:"a"`
	B       string `yaml:"b"`
	Kind    string `yaml:"kind,omitempty"`
	Point   string `yaml:"point,omitempty"`
	Overlap string `yaml:"overlap,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// shape is an evaluated polygon of either family.
type shape interface {
	report() PolygonReport
	query(point string) (QueryReport, error)
}

type familyShape[T geom.Scalar[T]] struct {
	def        Polygon
	poly       geom.Polygon[T]
	parsePoint func(string) (geom.Point[T], error)
}

// Evaluate computes every polygon property, query and intersection in s.
func Evaluate(s *Scene) (*Report, error) {
	var report Report

	shapes := make(map[string]shape, len(s.Polygons))
	for i, def := range s.Polygons {
		if def.Name == "" {
			return nil, errors.Errorf("polygon %d has no name", i)
		}
		if _, ok := shapes[def.Name]; ok {
			return nil, errors.Errorf("duplicate polygon %q", def.Name)
		}

		var sh shape
		var err error
		switch def.Family {
		case Fixed, "":
			sh, err = newShape(def, detgeom.NewFixedPolygon, detgeom.ParseFixedPoint)
		case Int:
			sh, err = newShape(def, detgeom.NewIntPolygon, detgeom.ParseIntPoint)
		default:
			err = errors.Errorf("unknown family %q", def.Family)
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "polygon %q", def.Name)
		}
		shapes[def.Name] = sh
		report.Polygons = append(report.Polygons, sh.report())
	}

	for i, q := range s.Queries {
		sh, ok := shapes[q.Polygon]
		if !ok {
			return nil, errors.Errorf("query names unknown polygon %q", q.Polygon)
		}
		qr, err := sh.query(q.Point)
		if err != nil {
			return nil, errors.WithMessagef(err, "query %d", i)
		}
		report.Queries = append(report.Queries, qr)
	}

	for i, pair := range s.Segments {
		var ir IntersectionReport
		var err error
		switch pair.Family {
		case Fixed, "":
			ir, err = intersect(pair, detgeom.ParseFixedPoints)
		case Int:
			ir, err = intersect(pair, detgeom.ParseIntPoints)
		default:
			err = errors.Errorf("unknown family %q", pair.Family)
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "segment pair %d", i)
		}
		report.Intersections = append(report.Intersections, ir)
	}

	return &report, nil
}

func newShape[T geom.Scalar[T]](
	def Polygon,
	newPolygon func(string) (geom.Polygon[T], error),
	parsePoint func(string) (geom.Point[T], error),
) (*familyShape[T], error) {
	poly, err := newPolygon(def.Points)
	if err != nil {
		return nil, err
	}
	if def.Family == "" {
		def.Family = Fixed
	}
	return &familyShape[T]{def: def, poly: poly, parsePoint: parsePoint}, nil
}

func (sh *familyShape[T]) report() PolygonReport {
	r := PolygonReport{
		Name:     sh.def.Name,
		Family:   sh.def.Family,
		Vertices: sh.poly.Len(),
	}
	fail := func(op string, err error) {
		if r.Errors == nil {
			r.Errors = make(map[string]string)
		}
		r.Errors[op] = err.Error()
	}

	if a, err := sh.poly.Area(); err != nil {
		fail("area", err)
	} else {
		r.Area = a.String()
	}

	var zero T
	if d, err := sh.poly.DoubledArea(); err != nil {
		fail("doubled_area", err)
	} else {
		r.DoubledArea = d.String()
		switch {
		case d > zero:
			r.Winding = "counterclockwise"
		case d < zero:
			r.Winding = "clockwise"
		default:
			r.Winding = "none"
		}
	}

	if c, err := sh.poly.Centroid(); err != nil {
		fail("centroid", err)
	} else {
		r.Centroid = c.String()
	}

	if convex, err := sh.poly.IsConvex(); err != nil {
		fail("convex", err)
	} else {
		r.Convex = &convex
	}

	if simple, err := sh.poly.IsSimple(); err != nil {
		fail("simple", err)
	} else {
		r.Simple = &simple
	}
	return r
}

// query classifies a point. A point that does not parse in the polygon's
// family is an input error; a failed containment test is reported.
func (sh *familyShape[T]) query(point string) (QueryReport, error) {
	r := QueryReport{Polygon: sh.def.Name, Point: point}
	p, err := sh.parsePoint(point)
	if err != nil {
		return r, err
	}
	if c, err := sh.poly.Contains(p); err != nil {
		r.Error = err.Error()
	} else {
		r.Result = c.String()
	}
	return r, nil
}

func intersect[T geom.Scalar[T]](pair SegmentPair, parsePoints func(string) ([]geom.Point[T], error)) (IntersectionReport, error) {
	family := pair.Family
	if family == "" {
		family = Fixed
	}
	r := IntersectionReport{Family: family, A: pair.A, B: pair.B}

	var segs [2]geom.Segment[T]
	for i, text := range []string{pair.A, pair.B} {
		points, err := parsePoints(text)
		if err != nil {
			return r, err
		}
		if len(points) != 2 {
			return r, errors.Errorf("segment %q has %d points, want 2", text, len(points))
		}
		segs[i] = geom.Seg(points[0], points[1])
	}

	x, err := geom.Intersect(segs[0], segs[1])
	if err != nil {
		r.Error = err.Error()
		return r, nil
	}
	r.Kind = x.Kind.String()
	switch x.Kind {
	case geom.PointIntersection:
		r.Point = x.Point.String()
	case geom.OverlapIntersection:
		r.Overlap = x.Overlap.String()
	}
	return r, nil
}

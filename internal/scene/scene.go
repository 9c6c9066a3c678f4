// Package scene reads polygons, point queries and segment pairs from YAML,
// SVG or plain text, and evaluates them into a report.
package scene

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Family selects the coordinate type. The zero value means Fixed.
type Family string

const (
	Fixed Family = "fixed"
	Int   Family = "int"
)

// Scene is the YAML document:
//
//	polygons:
//	  - name: square
//	    family: fixed
//	    points: "0,0 1,0 1,1 0,1"
//	queries:
//	  - polygon: square
//	    point: "0.5,0.5"
//	segments:
//	  - family: int
//	    a: "0,0 2,2"
//	    b: "0,2 2,0"
//
// Point lists use the syntax of an SVG points attribute. Queries use the
// family of the polygon they name.
type Scene struct {
	Polygons []Polygon     `yaml:"polygons"`
	Queries  []Query       `yaml:"queries,omitempty"`
	Segments []SegmentPair `yaml:"segments,omitempty"`
}

type Polygon struct {
	Name   string `yaml:"name"`
	Family Family `yaml:"family,omitempty"`
	Points string `yaml:"points"`
}

func (p Polygon) String() string {
	family := p.Family
	if family == "" {
		family = Fixed
	}
	return string(family) + " " + p.Points
}

type Query struct {
	Polygon string `yaml:"polygon"`
	Point   string `yaml:"point"`
}

// SegmentPair is two segments to intersect, each given as two points.
type SegmentPair struct {
	Family Family `yaml:"family,omitempty"`
	A      string `yaml:"a"`
	B      string `yaml:"b"`
}

// Load decodes a YAML scene. Unknown fields are an error, so that a typo
// cannot silently drop part of a scene.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, errors.Wrap(err, "decode scene")
	}
	return &s, nil
}

func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// WriteYAML encodes the scene in the form Load reads.
func (s *Scene) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

package scene

import (
	"fmt"
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// LoadSVG builds a scene from every <polygon> element in an SVG document.
// This is not a full (or even correct) svg reader: transforms and styles are
// ignored, and only the points attribute is read. Polygons are named by their
// id, or by position when they have none, and use fixed-point coordinates.
func LoadSVG(r io.Reader) (*Scene, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var s Scene
	for i, el := range rootEl.FindAll("polygon") {
		points := strings.TrimSpace(el.Attributes["points"])
		if points == "" {
			return nil, errors.Errorf("polygon %d has no points", i)
		}
		name := el.Attributes["id"]
		if name == "" {
			name = fmt.Sprintf("polygon%d", i+1)
		}
		s.Polygons = append(s.Polygons, Polygon{Name: name, Family: Fixed, Points: points})
	}
	if len(s.Polygons) == 0 {
		return nil, errors.New("no polygons found in svg")
	}
	return &s, nil
}

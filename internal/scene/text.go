package scene

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ReadText reads polygons as newline separated points in the form "x y",
// with each polygon separated by an extra newline. Coordinates are decimals
// and the polygons use fixed-point coordinates.
func ReadText(r io.Reader) (*Scene, error) {
	var s Scene
	var points []string
	flush := func() {
		if len(points) > 0 {
			s.Polygons = append(s.Polygons, Polygon{
				Name:   fmt.Sprintf("polygon%d", len(s.Polygons)+1),
				Family: Fixed,
				Points: strings.Join(points, " "),
			})
			points = nil
		}
	}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			flush()
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: want \"x y\", got %q", lineNumber, line)
		}
		points = append(points, fields[0]+","+fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read polygons")
	}

	// Handle trailing polygon if any
	flush()
	return &s, nil
}

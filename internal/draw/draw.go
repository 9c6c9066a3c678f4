// Package draw renders a scene for debugging: polygons filled by the
// even-odd rule and query points coloured by their classification.
//
// This is the only place coordinates become floats, and only for display.
package draw

import (
	"image"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/detgeom"
	"github.com/osuushi/detgeom/geom"
	"github.com/osuushi/detgeom/internal/scene"
	"github.com/osuushi/detgeom/scalar"
	"github.com/pkg/errors"
)

// Padding around the shapes so that boundary points stay visible
const padding = 40

// MaxSize is the largest width or height Render will allocate, in pixels.
const MaxSize = 8192

// ErrTooLarge is returned when a scene at the requested scale does not fit
// in MaxSize.
var ErrTooLarge = errors.New("drawing too large")

// Options control the rendering. The zero value draws at one pixel per unit.
type Options struct {
	// Scale is pixels per unit.
	Scale float64
}

type outline struct {
	points [][2]float64
}

type marker struct {
	x, y   float64
	result string
}

// Render draws every polygon in s, and every query with its result from r.
// Query points that failed to parse are skipped.
func Render(s *scene.Scene, r *scene.Report, opts Options) (image.Image, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	outlines := make(map[string]outline, len(s.Polygons))
	var order []string
	families := make(map[string]scene.Family, len(s.Polygons))
	for _, p := range s.Polygons {
		o, err := toOutline(p.Family, p.Points)
		if err != nil {
			return nil, errors.WithMessagef(err, "polygon %q", p.Name)
		}
		outlines[p.Name] = o
		families[p.Name] = p.Family
		order = append(order, p.Name)
	}

	var markers []marker
	for i, q := range s.Queries {
		o, err := toOutline(families[q.Polygon], q.Point)
		if err != nil || len(o.points) != 1 {
			continue
		}
		m := marker{x: o.points[0][0], y: o.points[0][1]}
		if r != nil && i < len(r.Queries) {
			m.result = r.Queries[i].Result
		}
		markers = append(markers, m)
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for _, o := range outlines {
		for _, p := range o.points {
			extend(p[0], p[1])
		}
	}
	for _, m := range markers {
		extend(m.x, m.y)
	}
	if math.IsInf(minX, 1) {
		return nil, errors.New("nothing to draw")
	}

	// Set up the context
	w, h := scale*(maxX-minX)+padding*2, scale*(maxY-minY)+padding*2
	if w > MaxSize || h > MaxSize {
		return nil, errors.Wrapf(ErrTooLarge, "%.0fx%.0f pixels at scale %g, limit %d", w, h, scale, MaxSize)
	}
	width, height := int(w), int(h)
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, name := range order {
		o := outlines[name]
		c.MoveTo(o.points[0][0], o.points[0][1])
		for _, p := range o.points[1:] {
			c.LineTo(p[0], p[1])
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()
	}

	for _, m := range markers {
		switch m.result {
		case geom.Inside.String():
			c.SetRGB(1, 1, 0)
		case geom.OnBoundary.String():
			c.SetRGB(1, 0, 1)
		default:
			c.SetRGB(1, 0, 0)
		}
		c.DrawCircle(m.x, m.y, 4/scale)
		c.Fill()
	}

	return c.Image(), nil
}

// SavePNG renders to a PNG file.
func SavePNG(path string, s *scene.Scene, r *scene.Report, opts Options) error {
	img, err := Render(s, r, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

// Print echoes a PNG file to an iTerm compatible terminal.
func Print(path string, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	imgcat.CatFile(path, w)
}

func toOutline(family scene.Family, points string) (outline, error) {
	var o outline
	switch family {
	case scene.Int:
		ps, err := detgeom.ParseIntPoints(points)
		if err != nil {
			return o, err
		}
		for _, p := range ps {
			o.points = append(o.points, [2]float64{float64(p.X), float64(p.Y)})
		}
	default:
		ps, err := detgeom.ParseFixedPoints(points)
		if err != nil {
			return o, err
		}
		for _, p := range ps {
			o.points = append(o.points, [2]float64{fixedToFloat(p.X), fixedToFloat(p.Y)})
		}
	}
	if len(o.points) == 0 {
		return o, errors.New("no points")
	}
	return o, nil
}

func fixedToFloat(f scalar.Fixed) float64 {
	return math.Ldexp(float64(f.Raw()), -scalar.FracBits)
}

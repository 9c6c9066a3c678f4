package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/detgeom"
	"github.com/osuushi/detgeom/dbg"
	"github.com/osuushi/detgeom/internal/draw"
	"github.com/osuushi/detgeom/internal/scene"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Evaluates polygons and prints a YAML report of their area, centroid,
// convexity, simplicity, point queries and segment intersections.
//
// Input is a YAML scene, the polygons of an SVG file, or plain text on stdin:
// newline separated points in the form "x y", with each polygon separated by
// an extra newline.
var (
	app   = kingpin.New("detgeom", "Deterministic polygon geometry.")
	color = app.Flag("color", "Colour the summary lines.").Bool()
	debug = app.Flag("debug", "Log every parsed polygon.").Bool()
	out   = app.Flag("draw", "Render the scene to this PNG file and print it to the terminal.").String()
	scale = app.Flag("scale", "Pixels per unit when drawing.").Default("20").Float64()

	sceneCmd  = app.Command("scene", "Evaluate a YAML scene file.")
	sceneFile = sceneCmd.Arg("file", "Scene file.").Required().ExistingFile()

	svgCmd  = app.Command("svg", "Evaluate every polygon in an SVG file.")
	svgFile = svgCmd.Arg("file", "SVG file.").Required().ExistingFile()

	textCmd = app.Command("text", "Evaluate polygons read from stdin.")

	encodeCmd  = app.Command("encode", "Print the binary encoding of every polygon in a YAML scene.")
	encodeFile = encodeCmd.Arg("file", "Scene file.").Required().ExistingFile()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("detgeom: ")

	var s *scene.Scene
	var err error
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case sceneCmd.FullCommand():
		s, err = scene.LoadFile(*sceneFile)
	case svgCmd.FullCommand():
		s, err = loadSVG(*svgFile)
	case textCmd.FullCommand():
		s, err = scene.ReadText(os.Stdin)
	case encodeCmd.FullCommand():
		s, err = scene.LoadFile(*encodeFile)
		if err == nil {
			err = encode(os.Stdout, s)
		}
		if err != nil {
			log.Fatal(err)
		}
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if *debug {
		for _, p := range s.Polygons {
			log.Printf("%s (%s): %s", p.Name, dbg.Name(p), dbg.Dump(p))
		}
	}

	report, err := scene.Evaluate(s)
	if err != nil {
		log.Fatal(err)
	}
	if err := report.WriteYAML(os.Stdout); err != nil {
		log.Fatal(err)
	}
	summarize(os.Stderr, report, aurora.NewAurora(*color))

	if *out != "" {
		if err := draw.SavePNG(*out, s, report, draw.Options{Scale: *scale}); err != nil {
			log.Fatal(err)
		}
		draw.Print(*out, os.Stdout)
	}
}

func loadSVG(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scene.LoadSVG(f)
}

// summarize prints one line per polygon: green when it is simple, red when it
// is not, and yellow when a property could not be computed.
func summarize(w io.Writer, r *scene.Report, au aurora.Aurora) {
	for _, p := range r.Polygons {
		line := fmt.Sprintf("%s: %d vertices, area %s", p.Name, p.Vertices, p.Area)
		switch {
		case len(p.Errors) > 0:
			fmt.Fprintln(w, au.Yellow(line))
		case p.Simple != nil && *p.Simple:
			fmt.Fprintln(w, au.Green(line))
		default:
			fmt.Fprintln(w, au.Red(line+" (not simple)"))
		}
	}
}

// encode writes each polygon's name and hex encoded binary form.
func encode(w io.Writer, s *scene.Scene) error {
	for _, p := range s.Polygons {
		var b []byte
		var err error
		switch p.Family {
		case scene.Int:
			var poly detgeom.IntPolygon
			if poly, err = detgeom.NewIntPolygon(p.Points); err == nil {
				b, err = poly.MarshalBinary()
			}
		case scene.Fixed, "":
			var poly detgeom.FixedPolygon
			if poly, err = detgeom.NewFixedPolygon(p.Points); err == nil {
				b, err = poly.MarshalBinary()
			}
		default:
			err = errors.Errorf("unknown family %q", p.Family)
		}
		if err != nil {
			return errors.WithMessagef(err, "polygon %q", p.Name)
		}
		fmt.Fprintf(w, "%s: %s\n", p.Name, hex.EncodeToString(b))
	}
	return nil
}

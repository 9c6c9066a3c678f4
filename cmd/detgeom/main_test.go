package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/detgeom/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	s := &scene.Scene{Polygons: []scene.Polygon{
		{Name: "tri", Family: scene.Int, Points: "0,0 1,0 0,1"},
	}}
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, s))
	assert.Equal(t, "tri: 00000003"+
		strings.Repeat("0", 32)+
		"0000000000000001"+strings.Repeat("0", 16)+
		strings.Repeat("0", 16)+"0000000000000001\n", buf.String())

	err := encode(&buf, &scene.Scene{Polygons: []scene.Polygon{{Name: "bad", Points: "0,0"}}})
	assert.ErrorContains(t, err, `polygon "bad"`)
}

func TestSummarize(t *testing.T) {
	s, err := scene.ReadText(strings.NewReader("0 0\n1 0\n1 1\n0 1\n\n0 0\n2 2\n2 0\n0 2\n"))
	require.NoError(t, err)
	r, err := scene.Evaluate(s)
	require.NoError(t, err)

	var buf bytes.Buffer
	summarize(&buf, r, aurora.NewAurora(false))
	assert.Equal(t, "polygon1: 4 vertices, area 1\n"+
		"polygon2: 4 vertices, area 0\n", buf.String())
}

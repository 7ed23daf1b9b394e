package svgexport

import (
	"strings"
	"testing"

	"geomkernel.dev/kernel/geom"
	"geomkernel.dev/kernel/mathtext"
	"geomkernel.dev/kernel/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct{}

func (stubRenderer) Render(expr string) (mathtext.GlyphBox, error) {
	return mathtext.GlyphBox{Width: 10, Height: 12}, nil
}

// TestGuidesOmitted reproduces scenario S8: a guide Path and a
// non-guide Path in the same map; only the non-guide one is exported.
func TestGuidesOmitted(t *testing.T) {
	p1 := &object.Node{Header: object.Header{ID: 1}, Point: geom.Vec(0, 0)}
	p2 := &object.Node{Header: object.Header{ID: 2}, Point: geom.Vec(10, 0)}
	line := &object.Line{Header: object.Header{ID: 3}, Point1: 1, Point2: 2}
	path := &object.Path{Header: object.Header{ID: 4}, Points: []object.ID{1, 2}, Lines: []object.ID{3}}

	gp1 := &object.Node{Header: object.Header{ID: 11}, Point: geom.Vec(0, 0)}
	gp2 := &object.Node{Header: object.Header{ID: 12}, Point: geom.Vec(5, 5)}
	gline := &object.Line{Header: object.Header{ID: 13}, Point1: 11, Point2: 12}
	gpath := &object.Path{Header: object.Header{ID: 14, Guide: true}, Points: []object.ID{11, 12}, Lines: []object.ID{13}}

	objects := object.Map{1: p1, 2: p2, 3: line, 4: path, 11: gp1, 12: gp2, 13: gline, 14: gpath}

	var buf strings.Builder
	err := Render(&buf, objects, stubRenderer{})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "<line"))
	assert.NotContains(t, out, `data-object-id="13"`)
	assert.Contains(t, out, `data-object-id="3"`)
}

func TestTextRendersForeignObject(t *testing.T) {
	anchor := &object.Node{Header: object.Header{ID: 1}, Point: geom.Vec(1, 2)}
	text := &object.Text{Header: object.Header{ID: 2}, Anchor: 1, Body: "x^2"}
	objects := object.Map{1: anchor, 2: text}

	var buf strings.Builder
	err := Render(&buf, objects, stubRenderer{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<foreignObject")
	assert.Contains(t, out, "x^2")
	assert.Contains(t, out, `data-object-id="2"`)
}

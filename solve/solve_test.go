package solve

import (
	"math"
	"testing"

	"geomkernel.dev/kernel/geom"
	"geomkernel.dev/kernel/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNode(id object.ID, p geom.Vector) *object.Node {
	return &object.Node{Header: object.Header{ID: id}, Point: p}
}

func newFixed(id object.ID, p geom.Vector) *object.FixedNode {
	return &object.FixedNode{Header: object.Header{ID: id}, Point: p}
}

func newLine(id, p1, p2 object.ID) *object.Line {
	return &object.Line{Header: object.Header{ID: id}, Point1: p1, Point2: p2}
}

// S1 — Perpendicular.
func TestPerpendicular(t *testing.T) {
	const (
		a1, a2       object.ID = 1, 2
		b1, b2       object.ID = 3, 4
		lineA, lineB object.ID = 5, 6
	)
	objects := object.Map{
		a1:    newNode(a1, geom.Vec(0, 0)),
		a2:    newNode(a2, geom.Vec(100, 0)),
		b1:    newNode(b1, geom.Vec(50, -20)),
		b2:    newNode(b2, geom.Vec(150, 80)),
		lineA: newLine(lineA, a1, a2),
		lineB: newLine(lineB, b1, b2),
	}
	constraints := []object.Constraint{object.NewPerpendicular(lineA, lineB)}

	Transform(objects, constraints)

	la := objects[lineA].(*object.Line)
	lb := objects[lineB].(*object.Line)
	pa1 := objects[la.Point1].(*object.Node).Point
	pa2 := objects[la.Point2].(*object.Node).Point
	pb1 := objects[lb.Point1].(*object.Node).Point
	pb2 := objects[lb.Point2].(*object.Node).Point

	dot := pa2.Sub(pa1).Dot(pb2.Sub(pb1))
	assert.Less(t, math.Abs(dot), 1e-4)
}

// S2 — Horizontal.
func TestHorizontal(t *testing.T) {
	const p1, p2, line object.ID = 1, 2, 3
	objects := object.Map{
		p1:   newNode(p1, geom.Vec(0, 0)),
		p2:   newNode(p2, geom.Vec(100, 5)),
		line: newLine(line, p1, p2),
	}
	x1, x2 := 0.0, 100.0
	constraints := []object.Constraint{object.NewHorizontal(line)}

	Transform(objects, constraints)

	n1 := objects[p1].(*object.Node).Point
	n2 := objects[p2].(*object.Node).Point
	assert.InDelta(t, n1.Y, n2.Y, 1e-6)
	assert.InDelta(t, x1, n1.X, 1e-9)
	assert.InDelta(t, x2, n2.X, 1e-9)
}

// S3 — Distance with one endpoint fixed.
func TestDistanceFixedEndpoint(t *testing.T) {
	const fixed, free, line object.ID = 1, 2, 3
	objects := object.Map{
		fixed: newFixed(fixed, geom.Vec(0, 0)),
		free:  newNode(free, geom.Vec(3, 4)),
		line:  newLine(line, fixed, free),
	}
	constraints := []object.Constraint{object.NewDistanceOnLine(line, 10)}

	Transform(objects, constraints)

	fixedPt := objects[fixed].(*object.FixedNode).Point
	assert.Equal(t, geom.Vec(0, 0), fixedPt)

	freePt := objects[free].(*object.Node).Point
	assert.InDelta(t, 6, freePt.X, 1e-4)
	assert.InDelta(t, 8, freePt.Y, 1e-4)
}

// S4 — Coincident point-on-line.
func TestCoincidentPointOnLine(t *testing.T) {
	const p1, p2, line, pt object.ID = 1, 2, 3, 4
	objects := object.Map{
		p1:   newNode(p1, geom.Vec(0, 0)),
		p2:   newNode(p2, geom.Vec(10, 0)),
		line: newLine(line, p1, p2),
		pt:   newNode(pt, geom.Vec(5, 3)),
	}
	constraints := []object.Constraint{object.NewCoincident(pt, line)}

	Transform(objects, constraints)

	l := objects[line].(*object.Line)
	a := objects[l.Point1].(*object.Node).Point
	b := objects[l.Point2].(*object.Node).Point
	p := objects[pt].(*object.Node).Point

	residual := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	assert.Less(t, math.Abs(residual), 1e-4)
}

// Coincident point-point.
func TestCoincidentPointPoint(t *testing.T) {
	const a, b object.ID = 1, 2
	objects := object.Map{
		a: newNode(a, geom.Vec(0, 0)),
		b: newNode(b, geom.Vec(5, 5)),
	}
	constraints := []object.Constraint{object.NewCoincident(a, b)}

	Transform(objects, constraints)

	pa := objects[a].(*object.Node).Point
	pb := objects[b].(*object.Node).Point
	assert.InDelta(t, pa.X, pb.X, 1e-4)
	assert.InDelta(t, pa.Y, pb.Y, 1e-4)
}

// Property 6: re-invoking Transform on an already-solved state changes
// coordinates by no more than 1e-9.
func TestReinvokeIdempotent(t *testing.T) {
	const p1, p2, line object.ID = 1, 2, 3
	objects := object.Map{
		p1:   newNode(p1, geom.Vec(0, 0)),
		p2:   newNode(p2, geom.Vec(100, 5)),
		line: newLine(line, p1, p2),
	}
	constraints := []object.Constraint{object.NewHorizontal(line)}

	Transform(objects, constraints)
	before := objects[p2].(*object.Node).Point

	Transform(objects, constraints)
	after := objects[p2].(*object.Node).Point

	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
}

// Property 3: FixedNode coordinates are invariant across AddConstraint.
func TestFixedNodeInvariant(t *testing.T) {
	const fixed, free, line object.ID = 1, 2, 3
	objects := object.Map{
		fixed: newFixed(fixed, geom.Vec(1, 2)),
		free:  newNode(free, geom.Vec(3, 4)),
		line:  newLine(line, fixed, free),
	}
	before := objects[fixed].(*object.FixedNode).Point

	Transform(objects, []object.Constraint{object.NewDistanceOnLine(line, 10)})

	after := objects[fixed].(*object.FixedNode).Point
	require.Equal(t, before, after)
}

// Parallel is a stub: it contributes no rows, so solving leaves
// coordinates untouched to within floating point noise.
func TestParallelStub(t *testing.T) {
	const a1, a2, b1, b2, lineA, lineB object.ID = 1, 2, 3, 4, 5, 6
	objects := object.Map{
		a1:    newNode(a1, geom.Vec(0, 0)),
		a2:    newNode(a2, geom.Vec(10, 0)),
		b1:    newNode(b1, geom.Vec(0, 5)),
		b2:    newNode(b2, geom.Vec(9, 7)),
		lineA: newLine(lineA, a1, a2),
		lineB: newLine(lineB, b1, b2),
	}
	before := objects[b2].(*object.Node).Point

	Transform(objects, []object.Constraint{object.NewParallel(lineA, lineB)})

	after := objects[b2].(*object.Node).Point
	assert.Equal(t, before, after)
}

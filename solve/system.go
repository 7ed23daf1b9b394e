// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve assembles a nonlinear least-squares system from a
// sketch's constraint list and drives it to a root by damped Newton
// iteration over a rectangular Jacobian solved via SVD
// (gonum.org/v1/gonum/mat, the backend the teacher's tensor/stats/pca
// package uses for principal component analysis).
package solve

import "geomkernel.dev/kernel/object"

// Axis selects a point's coordinate: AxisX or AxisY.
const (
	AxisX = 0
	AxisY = 1
)

type varKey struct {
	id   object.ID
	axis int
}

// Row is one scalar residual equation and its gradient with respect to
// every solver variable. In a language without first-class closures this
// would be realised as a tagged record dispatched by kind; Go's closures
// let each Row simply capture its own operand IDs directly.
type Row struct {
	// Residual evaluates the equation at the given variable vector x;
	// the solver drives this to zero.
	Residual func(x []float64) float64
	// Jacobian writes this row's partial derivatives into row, which is
	// zero-initialised and has length len(x). Columns belonging to a
	// FixedNode (sentinel column -1) are never written.
	Jacobian func(x []float64, row []float64)
}

// System holds the variable table, the residual vector, and the Jacobian
// row closures. Transform builds a fresh System from the whole constraint
// list on every call (System.AddConstraint only appends one constraint's
// rows); constraints are few, so reconstruction is cheap compared to the
// SVD.
type System struct {
	objects    object.Map
	cols       map[varKey]int
	order      []varKey
	x          []float64
	writebacks []func(x []float64)
	rows       []Row
}

// NewSystem returns an empty System over objects. Call AddConstraint for
// every constraint in the sketch, in order, then Solve.
func NewSystem(objects object.Map) *System {
	return &System{
		objects: objects,
		cols:    make(map[varKey]int),
	}
}

// addVariable allocates a column for (id, axis) on first encounter (in
// the order constraints are walked) and is a no-op on re-encounter. Node
// coordinates get a real column whose current value seeds x and whose
// write-back closure copies the solved value back into the object.
// FixedNode coordinates get the sentinel column -1: reads return the
// constant, writes are suppressed.
func (s *System) addVariable(id object.ID, axis int) int {
	k := varKey{id, axis}
	if col, ok := s.cols[k]; ok {
		return col
	}
	switch o := s.objects[id].(type) {
	case *object.Node:
		col := len(s.x)
		s.cols[k] = col
		s.order = append(s.order, k)
		s.x = append(s.x, o.Point.Dim(axis))
		node, a := o, axis
		s.writebacks = append(s.writebacks, func(x []float64) {
			node.Point = node.Point.SetDim(a, x[col])
		})
		return col
	default:
		// FixedNode, or a referent that isn't point-like: treat as a
		// solver constant with no column.
		s.cols[k] = -1
		return -1
	}
}

// col returns the already-assigned column for (id, axis); it must have
// been registered via addVariable during constraint assembly.
func (s *System) col(id object.ID, axis int) int {
	return s.cols[varKey{id, axis}]
}

// valueAt reads the current value of (id, axis) out of the live variable
// vector x (for solver columns) or the live object map (for constants).
func (s *System) valueAt(x []float64, id object.ID, axis int) float64 {
	col := s.cols[varKey{id, axis}]
	if col < 0 {
		if p, ok := object.Point(s.objects[id]); ok {
			return p.Dim(axis)
		}
		return 0
	}
	return x[col]
}

// lineEndpoints returns a Line's two endpoint IDs.
func (s *System) lineEndpoints(lineID object.ID) (p1, p2 object.ID) {
	l, ok := s.objects[lineID].(*object.Line)
	if !ok {
		return 0, 0
	}
	return l.Point1, l.Point2
}

// setRow writes val into row's column for (id, axis), if that coordinate
// has a real column (fixed-point columns are the -1 sentinel and are
// silently dropped).
func setRow(s *System, row []float64, id object.ID, axis int, val float64) {
	c := s.col(id, axis)
	if c < 0 {
		return
	}
	row[c] += val
}

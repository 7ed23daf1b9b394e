// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import "geomkernel.dev/kernel/object"

// AddConstraint walks c's referenced entities (allocating variables for
// each relevant coordinate per addVariable's first-encounter rule) and
// appends the residual/Jacobian rows that drive it to zero. Parallel is
// a stub and contributes no rows.
func (s *System) AddConstraint(c object.Constraint) {
	switch c.Kind {
	case object.Perpendicular:
		s.addPerpendicular(c.A, c.B)
	case object.Parallel:
		// stub: the source enumerates Parallel but the solver emits no
		// equation for it; preserved verbatim per the open question.
	case object.Coincident:
		s.addCoincident(c.A, c.B)
	case object.Horizontal:
		s.addHorizontal(c.A)
	case object.Vertical:
		s.addVertical(c.A)
	case object.Distance:
		s.addDistance(c)
	}
}

func (s *System) addPerpendicular(line1, line2 object.ID) {
	p1, p2 := s.lineEndpoints(line1)
	p3, p4 := s.lineEndpoints(line2)
	for _, id := range [...]object.ID{p1, p2, p3, p4} {
		s.addVariable(id, AxisX)
		s.addVariable(id, AxisY)
	}

	residual := func(x []float64) float64 {
		d12x := s.valueAt(x, p2, AxisX) - s.valueAt(x, p1, AxisX)
		d12y := s.valueAt(x, p2, AxisY) - s.valueAt(x, p1, AxisY)
		d34x := s.valueAt(x, p4, AxisX) - s.valueAt(x, p3, AxisX)
		d34y := s.valueAt(x, p4, AxisY) - s.valueAt(x, p3, AxisY)
		return d12x*d34x + d12y*d34y
	}
	jacobian := func(x []float64, row []float64) {
		d34x := s.valueAt(x, p4, AxisX) - s.valueAt(x, p3, AxisX)
		d34y := s.valueAt(x, p4, AxisY) - s.valueAt(x, p3, AxisY)
		d12x := s.valueAt(x, p2, AxisX) - s.valueAt(x, p1, AxisX)
		d12y := s.valueAt(x, p2, AxisY) - s.valueAt(x, p1, AxisY)

		// ∂/∂p1 = p3-p4 = -d34, ∂/∂p2 = p4-p3 = d34
		setRow(s, row, p1, AxisX, -d34x)
		setRow(s, row, p1, AxisY, -d34y)
		setRow(s, row, p2, AxisX, d34x)
		setRow(s, row, p2, AxisY, d34y)
		// ∂/∂p3 = p1-p2 = -d12, ∂/∂p4 = p2-p1 = d12
		setRow(s, row, p3, AxisX, -d12x)
		setRow(s, row, p3, AxisY, -d12y)
		setRow(s, row, p4, AxisX, d12x)
		setRow(s, row, p4, AxisY, d12y)
	}
	s.rows = append(s.rows, Row{Residual: residual, Jacobian: jacobian})
}

func (s *System) addHorizontal(line object.ID) {
	p1, p2 := s.lineEndpoints(line)
	s.addVariable(p1, AxisY)
	s.addVariable(p2, AxisY)

	s.rows = append(s.rows, Row{
		Residual: func(x []float64) float64 {
			return s.valueAt(x, p1, AxisY) - s.valueAt(x, p2, AxisY)
		},
		Jacobian: func(x []float64, row []float64) {
			setRow(s, row, p1, AxisY, 1)
			setRow(s, row, p2, AxisY, -1)
		},
	})
}

func (s *System) addVertical(line object.ID) {
	p1, p2 := s.lineEndpoints(line)
	s.addVariable(p1, AxisX)
	s.addVariable(p2, AxisX)

	s.rows = append(s.rows, Row{
		Residual: func(x []float64) float64 {
			return s.valueAt(x, p1, AxisX) - s.valueAt(x, p2, AxisX)
		},
		Jacobian: func(x []float64, row []float64) {
			setRow(s, row, p1, AxisX, 1)
			setRow(s, row, p2, AxisX, -1)
		},
	})
}

func (s *System) addDistance(c object.Constraint) {
	var p1, p2 object.ID
	if c.HasB {
		p1, p2 = c.A, c.B
	} else {
		p1, p2 = s.lineEndpoints(c.A)
	}
	s.addVariable(p1, AxisX)
	s.addVariable(p1, AxisY)
	s.addVariable(p2, AxisX)
	s.addVariable(p2, AxisY)

	d := c.Distance
	s.rows = append(s.rows, Row{
		Residual: func(x []float64) float64 {
			dx := s.valueAt(x, p2, AxisX) - s.valueAt(x, p1, AxisX)
			dy := s.valueAt(x, p2, AxisY) - s.valueAt(x, p1, AxisY)
			return dx*dx + dy*dy - d*d
		},
		Jacobian: func(x []float64, row []float64) {
			dx := s.valueAt(x, p2, AxisX) - s.valueAt(x, p1, AxisX)
			dy := s.valueAt(x, p2, AxisY) - s.valueAt(x, p1, AxisY)
			setRow(s, row, p1, AxisX, -2*dx)
			setRow(s, row, p1, AxisY, -2*dy)
			setRow(s, row, p2, AxisX, 2*dx)
			setRow(s, row, p2, AxisY, 2*dy)
		},
	})
}

// isLine reports whether id refers to a *object.Line in s.objects.
func (s *System) isLine(id object.ID) bool {
	_, ok := s.objects[id].(*object.Line)
	return ok
}

func (s *System) addCoincident(a, b object.ID) {
	switch {
	case s.isLine(b) && !s.isLine(a):
		s.addCoincidentPointLine(a, b)
	case s.isLine(a) && !s.isLine(b):
		s.addCoincidentPointLine(b, a)
	default:
		s.addCoincidentPointPoint(a, b)
	}
}

func (s *System) addCoincidentPointPoint(a, b object.ID) {
	s.addVariable(a, AxisX)
	s.addVariable(a, AxisY)
	s.addVariable(b, AxisX)
	s.addVariable(b, AxisY)

	// Two residuals, Δx and Δy, each an identity row with ±1 entries.
	s.rows = append(s.rows, Row{
		Residual: func(x []float64) float64 {
			return s.valueAt(x, b, AxisX) - s.valueAt(x, a, AxisX)
		},
		Jacobian: func(x []float64, row []float64) {
			setRow(s, row, a, AxisX, -1)
			setRow(s, row, b, AxisX, 1)
		},
	})
	s.rows = append(s.rows, Row{
		Residual: func(x []float64) float64 {
			return s.valueAt(x, b, AxisY) - s.valueAt(x, a, AxisY)
		},
		Jacobian: func(x []float64, row []float64) {
			setRow(s, row, a, AxisY, -1)
			setRow(s, row, b, AxisY, 1)
		},
	})
}

func (s *System) addCoincidentPointLine(point, line object.ID) {
	p1, p2 := s.lineEndpoints(line)
	s.addVariable(point, AxisX)
	s.addVariable(point, AxisY)
	s.addVariable(p1, AxisX)
	s.addVariable(p1, AxisY)
	s.addVariable(p2, AxisX)
	s.addVariable(p2, AxisY)

	residual := func(x []float64) float64 {
		p1x, p1y := s.valueAt(x, p1, AxisX), s.valueAt(x, p1, AxisY)
		p2x, p2y := s.valueAt(x, p2, AxisX), s.valueAt(x, p2, AxisY)
		px, py := s.valueAt(x, point, AxisX), s.valueAt(x, point, AxisY)
		return (p2x-p1x)*(py-p1y) - (p2y-p1y)*(px-p1x)
	}
	jacobian := func(x []float64, row []float64) {
		p1x, p1y := s.valueAt(x, p1, AxisX), s.valueAt(x, p1, AxisY)
		p2x, p2y := s.valueAt(x, p2, AxisX), s.valueAt(x, p2, AxisY)
		px, py := s.valueAt(x, point, AxisX), s.valueAt(x, point, AxisY)

		setRow(s, row, p1, AxisX, p1y-py)
		setRow(s, row, p1, AxisY, p2y-p1y)
		setRow(s, row, p2, AxisX, py-p1y)
		setRow(s, row, p2, AxisY, p1x-px)
		setRow(s, row, point, AxisX, p1y-p2y)
		setRow(s, row, point, AxisY, p2x-p1x)
	}
	s.rows = append(s.rows, Row{Residual: residual, Jacobian: jacobian})
}

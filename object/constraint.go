// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

// Kind enumerates the constraint predicates the solver understands.
type Kind int

const (
	// Perpendicular(line1, line2).
	Perpendicular Kind = iota
	// Parallel(line1, line2) is a stub: the solver emits no equation for
	// it, matching the teacher-spec's acknowledged TODO.
	Parallel
	// Coincident(object1, object2): (point,point) or (point,line).
	Coincident
	// Horizontal(line).
	Horizontal
	// Vertical(line).
	Vertical
	// Distance(object1, object2?, d): either two points, or a single
	// line using its own endpoints.
	Distance
)

// Constraint is the tagged sum of geometric predicates attached to a
// sketch. Operand semantics vary by Kind: A/B are line IDs for
// Perpendicular/Parallel; point-or-line IDs for Coincident; a single line
// ID in A for Horizontal/Vertical; either two point IDs in A/B or a
// single line ID in A (B unused) for Distance.
type Constraint struct {
	Kind     Kind
	A, B     ID
	HasB     bool
	Distance float64
}

// NewPerpendicular builds a Perpendicular(line1, line2) constraint.
func NewPerpendicular(line1, line2 ID) Constraint {
	return Constraint{Kind: Perpendicular, A: line1, B: line2, HasB: true}
}

// NewParallel builds a Parallel(line1, line2) constraint (stub, no
// equation emitted by the solver).
func NewParallel(line1, line2 ID) Constraint {
	return Constraint{Kind: Parallel, A: line1, B: line2, HasB: true}
}

// NewCoincident builds a Coincident(object1, object2) constraint, valid
// for (point,point) or (point,line) operand pairs.
func NewCoincident(object1, object2 ID) Constraint {
	return Constraint{Kind: Coincident, A: object1, B: object2, HasB: true}
}

// NewHorizontal builds a Horizontal(line) constraint.
func NewHorizontal(line ID) Constraint {
	return Constraint{Kind: Horizontal, A: line}
}

// NewVertical builds a Vertical(line) constraint.
func NewVertical(line ID) Constraint {
	return Constraint{Kind: Vertical, A: line}
}

// NewDistanceBetweenPoints builds a Distance(p1, p2, d) constraint.
func NewDistanceBetweenPoints(p1, p2 ID, d float64) Constraint {
	return Constraint{Kind: Distance, A: p1, B: p2, HasB: true, Distance: d}
}

// NewDistanceOnLine builds a Distance(line, d) constraint using the
// line's own endpoints.
func NewDistanceOnLine(line ID, d float64) Constraint {
	return Constraint{Kind: Distance, A: line, Distance: d}
}

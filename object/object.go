// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import "geomkernel.dev/kernel/geom"

// Object is the common interface every canvas object satisfies: an ID and
// a guide flag shared by the Header embedded in every concrete type.
// Objects reference each other by weak ID, resolved through a Map lookup,
// never by owning pointer — a Path references Lines which reference
// Nodes, and cyclic/shared structure like that is untenable with owning
// pointers.
type Object interface {
	ObjectID() ID
	IsGuide() bool
}

// Header is the common prefix of every canvas object.
type Header struct {
	ID    ID
	Guide bool
}

// ObjectID implements Object.
func (h Header) ObjectID() ID { return h.ID }

// IsGuide implements Object.
func (h Header) IsGuide() bool { return h.Guide }

// Node is a free point: the only kind of object whose coordinates are
// variables of the constraint solver.
type Node struct {
	Header
	Point geom.Vector
}

// FixedNode is a point treated as a solver constant, e.g. the origin guide.
type FixedNode struct {
	Header
	Point geom.Vector
}

// Line is a straight segment referencing two Nodes/FixedNodes by ID. It
// has no coordinates of its own.
type Line struct {
	Header
	Point1, Point2 ID
}

// Path is an ordered polyline aggregate. Lines[i] connects Points[i] to
// Points[i+1].
type Path struct {
	Header
	Points []ID
	Lines  []ID
}

// Text is a mathematical expression anchored to a Node.
type Text struct {
	Header
	Anchor ID
	Body   string
}

// Point returns the coordinate of obj if it is a Node or FixedNode, and
// whether obj is point-like at all.
func Point(obj Object) (geom.Vector, bool) {
	switch o := obj.(type) {
	case *Node:
		return o.Point, true
	case *FixedNode:
		return o.Point, true
	}
	return geom.Vector{}, false
}

// IsFree reports whether obj's coordinates are solver variables (true
// only for *Node; a *FixedNode is a solver constant).
func IsFree(obj Object) bool {
	_, ok := obj.(*Node)
	return ok
}

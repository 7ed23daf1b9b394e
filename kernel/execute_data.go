// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"geomkernel.dev/kernel/action"
	"geomkernel.dev/kernel/object"
	"geomkernel.dev/kernel/solve"
)

// applyDataAction applies a single DataAction to ds mutably and reports
// whether anything changed. A schema violation — a referent that is
// missing or of the wrong concrete kind — is skipped silently and
// reports no change, per spec.md §7: it never partially mutates ds.
// AddConstraintKind re-solves the whole system after appending, per
// spec.md §4.7.
func applyDataAction(ds *DataState, a action.Data) bool {
	switch a.Kind {
	case action.AddObjectKind:
		if len(a.Objects) == 0 {
			return false
		}
		if !referentsResolve(ds.Objects, a.Objects) {
			return false
		}
		if ds.Objects == nil {
			ds.Objects = object.Map{}
		}
		ds.Objects.Merge(a.Objects)
		return true

	case action.AddConstraintKind:
		if !constraintResolves(ds.Objects, a.Constraint) {
			return false
		}
		ds.Constraints = append(ds.Constraints, a.Constraint)
		solve.Transform(ds.Objects, ds.Constraints)
		return true
	}
	return false
}

// lookup resolves id against the batch being added first, falling back
// to the already-committed objects, so a Path's own Nodes/Lines
// introduced in the same AddObject resolve without yet being merged.
func lookup(existing, batch object.Map, id object.ID) (object.Object, bool) {
	if obj, ok := batch[id]; ok {
		return obj, true
	}
	obj, ok := existing[id]
	return obj, ok
}

// referentsResolve reports whether every ID batch's objects reference —
// Line endpoints, Path points/lines, Text anchors — resolves to an
// object of the expected kind, either in batch itself or in existing.
func referentsResolve(existing, batch object.Map) bool {
	for _, obj := range batch {
		switch o := obj.(type) {
		case *object.Line:
			if !resolvesToPoint(existing, batch, o.Point1) || !resolvesToPoint(existing, batch, o.Point2) {
				return false
			}
		case *object.Path:
			for _, id := range o.Points {
				if !resolvesToPoint(existing, batch, id) {
					return false
				}
			}
			for _, id := range o.Lines {
				if !resolvesToLine(existing, batch, id) {
					return false
				}
			}
		case *object.Text:
			if !resolvesToPoint(existing, batch, o.Anchor) {
				return false
			}
		}
	}
	return true
}

func resolvesToPoint(existing, batch object.Map, id object.ID) bool {
	obj, ok := lookup(existing, batch, id)
	if !ok {
		return false
	}
	_, isPoint := object.Point(obj)
	return isPoint
}

func resolvesToLine(existing, batch object.Map, id object.ID) bool {
	obj, ok := lookup(existing, batch, id)
	if !ok {
		return false
	}
	_, isLine := obj.(*object.Line)
	return isLine
}

// constraintResolves reports whether c's operands resolve to live
// objects of the kind c.Kind requires.
func constraintResolves(objects object.Map, c object.Constraint) bool {
	isLine := func(id object.ID) bool {
		_, ok := objects[id].(*object.Line)
		return ok
	}
	isPoint := func(id object.ID) bool {
		_, ok := object.Point(objects[id])
		return ok
	}

	switch c.Kind {
	case object.Perpendicular, object.Parallel:
		return isLine(c.A) && isLine(c.B)
	case object.Coincident:
		pointPoint := isPoint(c.A) && isPoint(c.B)
		pointLineA := isPoint(c.A) && isLine(c.B)
		pointLineB := isLine(c.A) && isPoint(c.B)
		return pointPoint || pointLineA || pointLineB
	case object.Horizontal, object.Vertical:
		return isLine(c.A)
	case object.Distance:
		if c.HasB {
			return isPoint(c.A) && isPoint(c.B)
		}
		return isLine(c.A)
	}
	return false
}

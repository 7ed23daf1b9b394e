// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

// Map is the mapping from ID to object. It preserves no order; iteration
// order is whatever Go's map gives, which matters only for Selector
// hit-test scan order (see hitTest in package kernel) and is documented
// there as implementation-defined.
type Map map[ID]Object

// Clone returns a shallow copy of m (new map, same object pointers).
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for id, obj := range m {
		out[id] = obj
	}
	return out
}

// Merge copies every entry of other into m, right-biased on collision.
// The ID-uniqueness invariant means a collision should never occur in
// practice; AddObject relies on that, not on this function enforcing it.
func (m Map) Merge(other Map) {
	for id, obj := range other {
		m[id] = obj
	}
}

// childIDs returns the IDs obj directly references as children, the way
// filterObjectMap needs to walk a Path down to its Points and Lines.
func childIDs(obj Object) []ID {
	switch o := obj.(type) {
	case *Path:
		ids := make([]ID, 0, len(o.Points)+len(o.Lines))
		ids = append(ids, o.Points...)
		ids = append(ids, o.Lines...)
		return ids
	case *Line:
		return []ID{o.Point1, o.Point2}
	case *Text:
		return []ID{o.Anchor}
	default:
		return nil
	}
}

// Filter retains only rootIDs plus the transitive closure of each root's
// direct children, deleting everything else. Used to prune a Pen tool's
// scratch map down to the actually-committed Path, dropping the trailing
// rubber-band Node/Line. Filter applied twice yields the same map as
// applied once: it is a pure retain-reachable operation over the fixed
// root set, not a relative expansion.
func (m Map) Filter(rootIDs []ID) Map {
	keep := make(map[ID]bool)
	var walk func(id ID)
	walk = func(id ID) {
		if keep[id] {
			return
		}
		keep[id] = true
		obj, ok := m[id]
		if !ok {
			return
		}
		for _, child := range childIDs(obj) {
			walk(child)
		}
	}
	for _, id := range rootIDs {
		walk(id)
	}
	out := make(Map, len(keep))
	for id := range keep {
		if obj, ok := m[id]; ok {
			out[id] = obj
		}
	}
	return out
}

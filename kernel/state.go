// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel wires together event, action, toolstate, object and
// solve into the single Drawing façade: the event-driven dual state
// machine at the core of the sketcher (see spec.md §2).
package kernel

import "geomkernel.dev/kernel/object"

// DataState is the durable geometric record: the object graph plus its
// attached constraints. Mutated only by data actions.
type DataState struct {
	Objects     object.Map
	Constraints []object.Constraint
}

// Clone returns a deep-enough copy of d suitable for a read-only view:
// a fresh Objects map (same object pointers; callers must not mutate a
// Node/Line/etc through the view) and a fresh Constraints slice.
func (d DataState) Clone() DataState {
	constraints := make([]object.Constraint, len(d.Constraints))
	copy(constraints, d.Constraints)
	return DataState{Objects: d.Objects.Clone(), Constraints: constraints}
}

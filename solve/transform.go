// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import "geomkernel.dev/kernel/object"

// Transform rebuilds the variable table, residual vector, and Jacobian
// closures from the given constraint list and re-solves the whole
// system, mutating Node coordinates in objects in place. This is
// transformConstraints from spec §4.7: the data executor's AddConstraint
// branch calls it after appending the new constraint, and re-invoking it
// on an already-solved state (spec §8 property 6) changes no coordinate
// by more than 1e-9 since the residuals are already ~0.
func Transform(objects object.Map, constraints []object.Constraint) {
	sys := NewSystem(objects)
	for _, c := range constraints {
		sys.AddConstraint(c)
	}
	sys.Solve()
}

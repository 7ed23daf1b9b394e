// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package object defines the canvas object graph: the typed sum of
// geometric entities keyed by ID, the referential invariants between
// them, and the constraint list attached to a sketch.
package object

// ID is a monotonically increasing object identifier handed out by an
// IDGenerator. One generator never hands out the same ID twice; there is
// no process-wide counter, so IDs from separate generators (each
// kernel.Drawing owns one) can coincide.
type ID int64

// IDGenerator hands out monotonically increasing IDs. The zero value is
// not usable; construct one with NewIDGenerator so tests can inject a
// seed and get reproducible IDs.
type IDGenerator struct {
	next ID
}

// NewIDGenerator returns a generator whose first Next() call returns seed.
func NewIDGenerator(seed ID) *IDGenerator {
	return &IDGenerator{next: seed}
}

// Next returns the next unused ID and advances the generator.
func (g *IDGenerator) Next() ID {
	id := g.next
	g.next++
	return id
}

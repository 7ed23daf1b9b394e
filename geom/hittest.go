// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// HitNode reports whether q lands within tol of point p (a Node/FixedNode
// hit-test). Uses squared distance to avoid a sqrt on the hot path.
func HitNode(p Vector, tol float64, q Vector) bool {
	d := q.Sub(p)
	return d.LengthSquared() < tol*tol
}

// degenerateLenSq is the squared-length threshold below which a segment is
// considered degenerate and never hits.
const degenerateLenSq = 1e-2

// HitSegment reports whether q lands within tol of the segment a→b.
//
// The perpendicular projection of q onto the infinite line through a,b must
// land within the segment (extended by tol on either end), and the
// perpendicular distance from q to that line must be <= tol. Entirely
// computed with squared quantities: the projection fraction is compared
// against the segment's own squared length scaled by tol, and the
// perpendicular distance is compared squared, so no sqrt is needed.
func HitSegment(a, b Vector, tol float64, q Vector) bool {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq < degenerateLenSq {
		return false
	}
	aq := q.Sub(a)
	proj := aq.Dot(ab) // = t * lenSq, where t is the projection fraction
	tolSq := tol * tol
	switch {
	case proj < 0:
		if proj*proj > tolSq*lenSq {
			return false
		}
	case proj > lenSq:
		over := proj - lenSq
		if over*over > tolSq*lenSq {
			return false
		}
	}
	// perpendicular distance: |ab × aq| / |ab|
	perp := ab.Cross(aq)
	distSq := (perp * perp) / lenSq
	return distSq <= tol*tol
}

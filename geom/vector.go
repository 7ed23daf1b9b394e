// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides 2D Cartesian vector arithmetic and the hit-test
// primitives the sketch kernel uses to pick objects under the cursor.
//
// Vectors are float64, not float32: the constraint solver in package
// solve needs to converge to 1e-9, which math32-style float32 vectors
// cannot represent.
package geom

import "math"

// Vector is a point or displacement in the Cartesian plane.
type Vector struct {
	X, Y float64
}

// Vec constructs a Vector from its components.
func Vec(x, y float64) Vector { return Vector{X: x, Y: y} }

// Add returns v+o.
func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s.
func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s} }

// Dot returns the scalar dot product v·o.
func (v Vector) Dot(o Vector) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the scalar (2D) cross product v×o = v.X*o.Y - v.Y*o.X.
func (v Vector) Cross(o Vector) float64 { return v.X*o.Y - v.Y*o.X }

// LengthSquared returns ‖v‖².
func (v Vector) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Length returns ‖v‖.
func (v Vector) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Dim returns the coordinate of v along the given axis (0=X, 1=Y).
func (v Vector) Dim(axis int) float64 {
	if axis == 0 {
		return v.X
	}
	return v.Y
}

// SetDim returns v with the given axis replaced by val.
func (v Vector) SetDim(axis int, val float64) Vector {
	if axis == 0 {
		v.X = val
	} else {
		v.Y = val
	}
	return v
}

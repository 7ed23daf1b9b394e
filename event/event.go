// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package event defines the kernel's event ingress vocabulary, grounded
// on the shape of the teacher's events package (a Types-tagged Base
// struct, Button enum, key modifiers) but trimmed to exactly the kinds
// spec.md §6 lists the kernel as consuming.
package event

import "geomkernel.dev/kernel/geom"

// Button is a mouse button.
type Button int

const (
	Primary Button = iota
	Auxiliary
	Secondary
)

// Kind is the tag of an Event.
type Kind int

const (
	MouseMove Kind = iota
	MouseDown
	MouseUp
	KeyDown
	KeyUp
	ResizeView
	ScaleView
	SetViewOffset
	AddPerpendicularConstraint
	AddCoincidentConstraint
	AddHorizontalConstraint
	AddVerticalConstraint
	AddDistanceConstraint
	SelectTextTool
	SetTextValue
	AddObject
)

// Event is the kernel's sole ingress type. Only the fields relevant to
// Kind are populated.
type Event struct {
	Kind Kind

	// P is the viewport-space point, for mouse events.
	P geom.Vector

	// Button is the mouse button, for MouseDown/MouseUp.
	Button Button

	// Ctrl is the ctrl-modifier flag, for MouseDown/MouseUp.
	Ctrl bool

	// Key is the key name, for KeyDown/KeyUp ('p', 's', 'Enter', ...).
	Key string

	// Width/Height, for ResizeView.
	Width, Height float64

	// Scale, for ScaleView.
	Scale float64

	// Offset, for SetViewOffset.
	Offset geom.Vector

	// Distance, for AddDistanceConstraint.
	Distance float64

	// Text, for SetTextValue.
	Text string

	// Guide, for AddObject.
	Guide bool
}

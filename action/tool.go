// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package action

import (
	"geomkernel.dev/kernel/geom"
	"geomkernel.dev/kernel/object"
)

// ToolKind selects which of the three tool state machines is active.
type ToolKind int

const (
	Selector ToolKind = iota
	Pen
	Text
)

// ToolActionKind enumerates the transient mutations the translator can
// emit against ToolState.
type ToolActionKind int

const (
	UpdateMousePoint ToolActionKind = iota
	SelectTool
	PenMouseMove
	PenMouseDown
	PenCommit
	TextMouseMove
	TextSetValue
	TextCommit
	SelectorAdd
	SelectorRemove
	SelectorClear
	PanStart
	PanMove
	PanEnd
	ResizeView
	ScaleView
	SetViewOffset
	AddHistory
)

// Tool is one transient mutation of ToolState, computed by the pure
// translator and applied mutably by the tool executor. Only the fields
// relevant to Kind are populated; the rest are zero.
type Tool struct {
	Kind ToolActionKind

	// Point carries a data-space coordinate for PenMouseMove/PenMouseDown
	// /TextMouseMove, or a viewport-space coordinate for
	// UpdateMousePoint; see the executor for which frame applies.
	Point geom.Vector

	// Target is the tool to switch to, for SelectTool.
	Target ToolKind

	// ObjectID names the hit object, for SelectorAdd/SelectorRemove.
	ObjectID object.ID

	// Text is the replacement body, for TextSetValue.
	Text string

	// Width/Height, for ResizeView.
	Width, Height float64

	// Scale, for ScaleView.
	Scale float64

	// Offset, for SetViewOffset.
	Offset geom.Vector

	// DataAction is the recorded action, for AddHistory.
	DataAction Data
}

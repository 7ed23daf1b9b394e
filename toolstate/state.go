// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package toolstate implements the per-tool transient state machine
// (Selector, Pen, Text) and its orthogonal Pan sub-state, plus the tool
// executor that applies ToolActions mutably.
package toolstate

import (
	"geomkernel.dev/kernel/action"
	"geomkernel.dev/kernel/geom"
	"geomkernel.dev/kernel/history"
	"geomkernel.dev/kernel/object"
	"geomkernel.dev/kernel/view"
)

// PanPhase is the orthogonal Pan sub-state.
type PanPhase int

const (
	PanIdle PanPhase = iota
	PanActive
)

// Pan holds the Pan sub-state: Idle, or Panning with the SVG-space point
// where the secondary-button drag began.
type Pan struct {
	Phase PanPhase
	Start geom.Vector
}

// SelectorState is the Selector tool's transient state: the set of
// selected object IDs, in insertion order (order matters for which
// operands a multi-operand constraint gets, per spec §4.5).
type SelectorState struct {
	Selected []object.ID
}

// Contains reports whether id is currently selected.
func (s *SelectorState) Contains(id object.ID) bool {
	for _, sel := range s.Selected {
		if sel == id {
			return true
		}
	}
	return false
}

// Add appends id to the selection if not already present.
func (s *SelectorState) Add(id object.ID) {
	if !s.Contains(id) {
		s.Selected = append(s.Selected, id)
	}
}

// Remove deletes id from the selection, if present.
func (s *SelectorState) Remove(id object.ID) {
	for i, sel := range s.Selected {
		if sel == id {
			s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
			return
		}
	}
}

// Clear empties the selection.
func (s *SelectorState) Clear() {
	s.Selected = nil
}

// PenState is the Pen tool's transient state: a scratch object map
// holding the in-progress committing Path plus its trailing rubber-band
// sub-path.
type PenState struct {
	TempMap       object.Map
	RootPathID    object.ID
	LiveSubPathID object.ID // the Node currently tracking the cursor
	// LiveLineID is the rubber-band Line to LiveSubPathID, or the zero
	// ID if the subpath has only a single point so far (no line yet).
	// Callers must seed object IDs from 1, not 0, for this sentinel to
	// be unambiguous.
	LiveLineID object.ID
}

// TextState is the Text tool's transient state: a scratch map holding
// the anchor Node and its Text annotation.
type TextState struct {
	TempMap    object.Map
	AnchorID   object.ID
	LiveTextID object.ID
}

// State is the full transient per-session state: the active tool, the
// action-history tree, the last-known mouse point (viewport coords), the
// view box, the data-origin, scale, and Pan sub-state. Never persisted
// directly; only History survives a save/load cycle.
type State struct {
	Tool       action.ToolKind
	Selector   SelectorState
	PenTool    PenState
	TextTool   TextState
	History    history.Tree
	MousePoint geom.Vector // viewport coordinates
	ViewBox    view.Box
	DataOrigin view.Origin
	Scale      float64
	Pan        Pan
}

// New returns a fresh ToolState in the Selector tool with unit scale,
// the state a Load operation resets to.
func New() *State {
	return &State{
		Tool:  action.Selector,
		Scale: 1,
	}
}

// Clone returns a copy of s safe to hand to a caller as a read-only
// view: the Selector's selection slice and the Pen/Text tools' scratch
// maps are copied rather than shared, so a caller mutating the returned
// value cannot reach back into the live façade state.
func (s State) Clone() State {
	out := s
	if s.Selector.Selected != nil {
		out.Selector.Selected = append([]object.ID(nil), s.Selector.Selected...)
	}
	out.PenTool.TempMap = s.PenTool.TempMap.Clone()
	out.TextTool.TempMap = s.TextTool.TempMap.Clone()
	return out
}

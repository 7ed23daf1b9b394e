// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"log/slog"

	"geomkernel.dev/kernel/action"
	"geomkernel.dev/kernel/event"
	"geomkernel.dev/kernel/history"
	"geomkernel.dev/kernel/object"
	"geomkernel.dev/kernel/toolstate"
)

// Drawing is the kernel's single façade: it owns ToolState and DataState
// exclusively, and is the sole entry point external code uses to mutate
// either one. Construct with NewDrawing; the zero value is not usable
// (its ID generator is nil).
type Drawing struct {
	tool      *toolstate.State
	data      DataState
	ids       *object.IDGenerator
	listeners []func()
	entered   bool // re-entrancy guard for SendEvent
}

// NewDrawing returns a Drawing in its fresh initial state: Selector tool,
// empty object map, an ID generator seeded at 1.
func NewDrawing() *Drawing {
	return &Drawing{
		tool: toolstate.New(),
		data: DataState{Objects: object.Map{}},
		ids:  object.NewIDGenerator(1),
	}
}

// ToolState returns a read-only view of the transient tool state: its
// slice and map fields are cloned, so mutating the returned value never
// reaches the façade's live state.
func (d *Drawing) ToolState() toolstate.State {
	return d.tool.Clone()
}

// DataState returns a read-only view of the durable geometric state,
// likewise cloned: mutating the returned Objects map or Constraints
// slice does not touch the façade's live state.
func (d *Drawing) DataState() DataState {
	return d.data.Clone()
}

// AddListener registers a callback delivered a bare "state changed" ping
// after any SendEvent that mutated tool or data state. Listeners are
// stored in an insertion-indexed slice and delivered in that order.
func (d *Drawing) AddListener(fn func()) {
	d.listeners = append(d.listeners, fn)
}

// SendEvent is the kernel's sole event ingress. It translates e through
// the pure action generator, applies the resulting tool and data
// actions in order, and — if anything changed — notifies every
// listener with the complete post-event state already in place.
//
// Re-entrant calls (a listener calling SendEvent from within its own
// callback) are rejected: the nested call is logged and ignored, rather
// than left to corrupt state mid-notification.
func (d *Drawing) SendEvent(e event.Event) {
	if d.entered {
		slog.Warn("SendEvent re-entered from a listener callback; ignoring nested event", "kind", e.Kind)
		return
	}
	d.entered = true
	defer func() { d.entered = false }()

	if e.Kind == event.AddObject {
		d.sendAddObject(e)
		return
	}

	toolActions, dataActions := generateActions(d.tool, &d.data, e)

	changed := false
	for _, a := range toolActions {
		if toolstate.Apply(d.tool, d.ids, a) {
			changed = true
		}
	}
	for _, a := range dataActions {
		if applyDataAction(&d.data, a) {
			changed = true
		}
	}

	if changed {
		d.notify()
	}
}

// sendAddObject handles event.AddObject outside the pure translator: it
// needs to mint a fresh object ID, which generateActions never does.
func (d *Drawing) sendAddObject(e event.Event) {
	id := d.ids.Next()
	node := &object.Node{Header: object.Header{ID: id, Guide: e.Guide}, Point: e.P}
	a := action.AddObject(object.Map{id: node})

	changed := applyDataAction(&d.data, a)
	if toolstate.Apply(d.tool, d.ids, action.Tool{Kind: action.AddHistory, DataAction: a}) {
		changed = true
	}
	if changed {
		d.notify()
	}
}

func (d *Drawing) notify() {
	for _, fn := range d.listeners {
		fn()
	}
}

// Load resets ToolState to a fresh initial state, then replays tree's
// linear path (spec.md §6: branches beyond the first child are ignored)
// through the data executor, rebuilding DataState. The replayed history
// becomes the new ToolState's history, so a subsequent Append continues
// it rather than starting over. The ID generator is advanced past every
// replayed object's ID, so objects minted afterwards never collide with
// loaded ones. Malformed trees are the caller's concern (see package
// persist); Load itself never rejects a tree, only replays whatever it
// is given.
func (d *Drawing) Load(tree *history.Tree) {
	d.tool = toolstate.New()
	d.tool.History = *tree
	d.data = DataState{Objects: object.Map{}}

	for _, a := range tree.LinearPath() {
		applyDataAction(&d.data, a)
	}
	next := d.ids.Next()
	for id := range d.data.Objects {
		if id >= next {
			next = id + 1
		}
	}
	d.ids = object.NewIDGenerator(next)
	d.notify()
}

// History returns a borrowed pointer to the façade's action-history
// tree, for package persist to serialise. Callers must not mutate it.
func (d *Drawing) History() *history.Tree {
	return &d.tool.History
}

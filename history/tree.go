// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history implements the append-only action-history tree,
// grounded on the teacher's tree.Node parent/child shape (see
// tree/node_test.go) but specialised to a write-only structure: nodes
// carry a DataAction and are never reparented or pruned.
package history

import (
	"encoding/json"

	"geomkernel.dev/kernel/action"
)

// Node is one entry in the history tree. Children supports future
// undo/redo branching (spec §9 "History as a tree, used linearly"); only
// Children[0] is ever followed on replay today.
type Node struct {
	Action   action.Data `json:"action"`
	Children []*Node     `json:"children,omitempty"`
}

// Tree is the append-only action-history tree owned by ToolState. The
// zero value is an empty tree ready for Append.
type Tree struct {
	Root *Node `json:"root,omitempty"`
	cur  *Node
}

// Append records a, creating a child of the current cursor node and
// advancing the cursor to it (or setting Root/cur if the tree is empty).
func (t *Tree) Append(a action.Data) {
	n := &Node{Action: a}
	if t.cur == nil {
		t.Root = n
		t.cur = n
		return
	}
	t.cur.Children = append(t.cur.Children, n)
	t.cur = n
}

// Walk visits every node in the tree in pre-order, branches included
// (MarshalJSON does not use it: it encodes Root directly; replay uses
// LinearPath, which follows only the first child at each branch).
func (t *Tree) Walk(visit func(*Node)) {
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		visit(n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
}

// MarshalJSON encodes the tree's Root (the unexported cursor is
// reconstructed on load, not persisted).
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Root *Node `json:"root,omitempty"`
	}{Root: t.Root})
}

// UnmarshalJSON decodes a tree and repositions the cursor at its tip
// (the end of the first-child chain), so further Append calls continue
// extending the loaded history rather than starting a new root.
func (t *Tree) UnmarshalJSON(b []byte) error {
	var wire struct {
		Root *Node `json:"root,omitempty"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	t.Root = wire.Root
	n := t.Root
	for n != nil && len(n.Children) > 0 {
		n = n.Children[0]
	}
	t.cur = n
	return nil
}

// LinearPath returns the actions from Root to the tree's original tip,
// following Children[0] at every branch point. Branches beyond the first
// are ignored, preserving current (load-time) behaviour: the tree
// supports future branching, but today's replay treats it as a linear
// history.
func (t *Tree) LinearPath() []action.Data {
	var path []action.Data
	n := t.Root
	for n != nil {
		path = append(path, n.Action)
		if len(n.Children) == 0 {
			break
		}
		n = n.Children[0]
	}
	return path
}

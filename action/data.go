// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package action defines the two action vocabularies the kernel's
// translator emits: DataAction, durable mutations of DataState recorded
// in the action-history tree, and ToolAction, transient mutations of
// ToolState that are never persisted directly.
package action

import "geomkernel.dev/kernel/object"

// DataKind enumerates the data executor's mutating operations.
type DataKind int

const (
	// AddObjectKind merges Objects into DataState.Objects.
	AddObjectKind DataKind = iota
	// AddConstraintKind appends Constraint and re-solves the system.
	AddConstraintKind
)

// Data is a durable mutation of DataState, the unit the action-history
// tree stores and replays on load.
type Data struct {
	Kind       DataKind
	Objects    object.Map        `json:",omitempty"`
	Constraint object.Constraint `json:",omitempty"`
}

// AddObject builds a Data action that merges objects into DataState.
func AddObject(objects object.Map) Data {
	return Data{Kind: AddObjectKind, Objects: objects}
}

// AddConstraint builds a Data action that appends c and triggers a solve.
func AddConstraint(c object.Constraint) Data {
	return Data{Kind: AddConstraintKind, Constraint: c}
}

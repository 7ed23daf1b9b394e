// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package persist (de)serialises the action-history tree as a single
// JSON document, the byte-stream boundary spec.md §6 leaves as an
// external collaborator. It mirrors the teacher's own serialise-pairing
// idiom: one exported verb per direction, error-returning, no panics.
package persist

import (
	"encoding/json"
	"fmt"
	"io"

	"geomkernel.dev/kernel/history"
)

// Save writes h as a single JSON document to w.
func Save(w io.Writer, h *history.Tree) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(h); err != nil {
		return fmt.Errorf("persist: encoding history: %w", err)
	}
	return nil
}

// Load reads a single JSON document from r and decodes it into a fresh
// history.Tree. A malformed document is rejected outright: the caller's
// existing tool state is left untouched (spec.md §7, "malformed
// persisted state on load").
func Load(r io.Reader) (*history.Tree, error) {
	var h history.Tree
	dec := json.NewDecoder(r)
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("persist: decoding history: %w", err)
	}
	return &h, nil
}

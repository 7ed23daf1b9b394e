// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathtext is the kernel's math-typesetting boundary: spec.md
// treats the typesetting library as an opaque "render math string to
// glyph box" collaborator, so the kernel only ever talks to the narrow
// Renderer interface defined here, never to a typesetting engine
// directly.
package mathtext

// GlyphBox is the bounding box a rendered expression occupies, in
// typographic points, plus the expression's rendered glyph stream.
type GlyphBox struct {
	Width, Height float64
	// Glyphs is the rendered output in whatever form the backend
	// produces (e.g. a DVI byte stream); svgexport treats it opaquely.
	Glyphs []byte
}

// Renderer typesets a math expression into a GlyphBox. Implementations
// may fail on malformed TeX input.
type Renderer interface {
	Render(expr string) (GlyphBox, error)
}

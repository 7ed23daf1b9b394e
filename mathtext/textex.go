// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathtext

import (
	"bytes"
	"fmt"
	"strings"

	startex "star-tex.org/x/tex"
)

// approxPointWidth and approxLineHeight turn a star-tex box/glue layout
// into an approximate typographic bounding box: star-tex's Context
// reports shipout pages as DVI byte streams, not exposed metrics, so the
// width is estimated from the expression source's length in runes
// (TeX control sequences included) at a nominal 10pt math font and the
// height is fixed at one
// math-mode line. This is a deliberately coarse approximation; callers
// that need exact metrics should measure the DVI output themselves.
const (
	approxPointWidth = 6.2
	approxLineHeight = 14.0
)

// TeXRenderer typesets expr as inline TeX math (`$expr$`) through
// star-tex.org/x/tex and reports an approximate bounding box alongside
// the raw DVI bytes star-tex produced.
type TeXRenderer struct{}

// Render implements Renderer.
func (TeXRenderer) Render(expr string) (GlyphBox, error) {
	var out bytes.Buffer
	ctx := startex.NewContext(&out, nil)

	src := fmt.Sprintf("\\shipout\\hbox{$%s$}\n\\end\n", expr)
	if err := ctx.Process("expr.tex", strings.NewReader(src)); err != nil {
		return GlyphBox{}, fmt.Errorf("mathtext: typesetting %q: %w", expr, err)
	}

	return GlyphBox{
		Width:  float64(len([]rune(expr))) * approxPointWidth,
		Height: approxLineHeight,
		Glyphs: out.Bytes(),
	}, nil
}

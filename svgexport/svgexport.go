// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgexport renders a committed object map to SVG, grounded on
// the strings.Builder-accumulated writer idiom surveyed in the pack's
// MetaPost SVG writer: one exported Render entry point, building the
// document as a string rather than through an XML encoder, since the
// document shape here (lines plus foreignObject text) is simpler than
// round-tripping through encoding/xml's struct tags.
package svgexport

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"geomkernel.dev/kernel/mathtext"
	"geomkernel.dev/kernel/object"
)

// Render writes objects as an SVG document to w. Non-guide Path objects
// become one <line> element per sub-segment, stroke "black" width 1.
// Text objects render as a <foreignObject> wrapper around math typeset
// by renderer. Guide objects are omitted entirely. Every emitted element
// carries a data-object-id attribute naming the source object.
func Render(w io.Writer, objects object.Map, renderer mathtext.Renderer) error {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg">` + "\n")

	for id, obj := range objects {
		path, ok := obj.(*object.Path)
		if !ok || path.IsGuide() {
			continue
		}
		if err := renderPathLines(&b, id, path, objects); err != nil {
			return err
		}
	}

	for id, obj := range objects {
		text, ok := obj.(*object.Text)
		if !ok || text.IsGuide() {
			continue
		}
		if err := renderText(&b, id, text, objects, renderer); err != nil {
			return err
		}
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// renderPathLines writes one <line> per sub-segment of path.
func renderPathLines(b *strings.Builder, pathID object.ID, path *object.Path, objects object.Map) error {
	for _, lineID := range path.Lines {
		lineObj, ok := objects[lineID]
		if !ok {
			continue
		}
		line, ok := lineObj.(*object.Line)
		if !ok {
			continue
		}
		p1, ok1 := object.Point(objects[line.Point1])
		p2, ok2 := object.Point(objects[line.Point2])
		if !ok1 || !ok2 {
			continue
		}
		fmt.Fprintf(b,
			`<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="black" stroke-width="1" data-object-id="%d"/>`+"\n",
			p1.X, p1.Y, p2.X, p2.Y, lineID)
	}
	return nil
}

// renderText writes a <foreignObject> wrapper holding the rendered math
// for one Text annotation, anchored at its Node's coordinate. The
// foreignObject body embeds renderer's actual typeset output (box.Glyphs,
// the DVI bytes star-tex produced) as a base64 data URI rather than the
// raw expression text, since the DVI byte stream is not itself valid XML
// content.
func renderText(b *strings.Builder, textID object.ID, text *object.Text, objects object.Map, renderer mathtext.Renderer) error {
	anchor, ok := object.Point(objects[text.Anchor])
	if !ok {
		return nil
	}
	box, err := renderer.Render(text.Body)
	if err != nil {
		return fmt.Errorf("svgexport: rendering text %d: %w", textID, err)
	}
	encoded := base64.StdEncoding.EncodeToString(box.Glyphs)
	fmt.Fprintf(b,
		`<foreignObject x="%g" y="%g" width="%g" height="%g" data-object-id="%d">`+
			`<img src="data:application/x-dvi;base64,%s" width="%g" height="%g" alt="%s"/>`+
			`</foreignObject>`+"\n",
		anchor.X, anchor.Y, box.Width, box.Height, textID, encoded, box.Width, box.Height, escapeXML(text.Body))
	return nil
}

// escapeXML escapes the characters that matter inside the double-quoted
// alt attribute renderText writes the expression into.
func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view implements the bijection between the three coordinate
// frames the kernel juggles: viewport (screen, y down), SVG (viewport
// shifted by a pan offset, y down), and data (mathematical plane, y up),
// grounded on the svg.ViewBox shape surveyed in the teacher package.
package view

import "geomkernel.dev/kernel/geom"

// Box mirrors the teacher's svg.ViewBox: an offset plus a width/height in
// SVG-space units.
type Box struct {
	Offset        geom.Vector
	Width, Height float64
}

// Origin is the SVG-space position of the data-space origin (0,0):
// data→svg is (x+ox, oy-y), svg→data is (x-ox, oy-y).
type Origin struct {
	X, Y float64
}

// ViewportToSVG shifts viewport coordinates by the Box's offset.
func ViewportToSVG(box Box, p geom.Vector) geom.Vector {
	return p.Add(box.Offset)
}

// SVGToViewport is the inverse of ViewportToSVG.
func SVGToViewport(box Box, p geom.Vector) geom.Vector {
	return p.Sub(box.Offset)
}

// SVGToData converts an SVG-space point (y down) to data space (y up).
func SVGToData(origin Origin, p geom.Vector) geom.Vector {
	return geom.Vec(p.X-origin.X, origin.Y-p.Y)
}

// DataToSVG is the inverse of SVGToData.
func DataToSVG(origin Origin, p geom.Vector) geom.Vector {
	return geom.Vec(p.X+origin.X, origin.Y-p.Y)
}

// ViewportToData composes SVGToData ∘ ViewportToSVG.
func ViewportToData(box Box, origin Origin, p geom.Vector) geom.Vector {
	return SVGToData(origin, ViewportToSVG(box, p))
}

// DataToViewport composes SVGToViewport ∘ DataToSVG.
func DataToViewport(box Box, origin Origin, p geom.Vector) geom.Vector {
	return SVGToViewport(box, DataToSVG(origin, p))
}

// Resize sets the Box's SVG-space width/height from a pixel size and the
// current scale factor, as ResizeView(w,h) does in the event-handling spec.
func (b *Box) Resize(w, h, scale float64) {
	b.Width = w / scale
	b.Height = h / scale
}

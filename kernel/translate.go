// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"log/slog"

	"geomkernel.dev/kernel/action"
	"geomkernel.dev/kernel/event"
	"geomkernel.dev/kernel/geom"
	"geomkernel.dev/kernel/object"
	"geomkernel.dev/kernel/toolstate"
	"geomkernel.dev/kernel/view"
)

// hitNodeTol and hitLineTol are the data-space hit-test tolerances for
// Selector mouse-down picking.
const (
	hitNodeTol = 15
	hitLineTol = 10
)

// generateActions is the pure event → action translator: it reads
// toolState and dataState but mutates neither, producing the tool and
// data actions the façade then applies in order.
func generateActions(ts *toolstate.State, ds *DataState, e event.Event) ([]action.Tool, []action.Data) {
	var tools []action.Tool
	var data []action.Data

	addData := func(d action.Data) {
		data = append(data, d)
		tools = append(tools, action.Tool{Kind: action.AddHistory, DataAction: d})
	}

	switch e.Kind {
	case event.MouseMove:
		tools = append(tools, action.Tool{Kind: action.UpdateMousePoint, Point: e.P})
		if ts.Pan.Phase == toolstate.PanActive {
			tools = append(tools, action.Tool{Kind: action.PanMove})
			break
		}
		dataPt := view.ViewportToData(ts.ViewBox, ts.DataOrigin, e.P)
		switch ts.Tool {
		case action.Pen:
			tools = append(tools, action.Tool{Kind: action.PenMouseMove, Point: dataPt})
		case action.Text:
			tools = append(tools, action.Tool{Kind: action.TextMouseMove, Point: dataPt})
		}

	case event.MouseDown:
		if e.Button == event.Secondary {
			tools = append(tools, action.Tool{Kind: action.PanStart, Point: view.ViewportToSVG(ts.ViewBox, e.P)})
			break
		}
		if e.Button != event.Primary {
			break
		}
		dataPt := view.ViewportToData(ts.ViewBox, ts.DataOrigin, e.P)
		switch ts.Tool {
		case action.Pen:
			tools = append(tools, action.Tool{Kind: action.PenMouseDown, Point: dataPt})
		case action.Text:
			tools = append(tools, action.Tool{Kind: action.TextCommit})
			addData(action.AddObject(ts.TextTool.TempMap.Clone()))
		case action.Selector:
			tools = append(tools, selectorMouseDown(ts, ds, dataPt, e.Ctrl)...)
		}

	case event.MouseUp:
		if e.Button == event.Secondary {
			tools = append(tools, action.Tool{Kind: action.PanEnd})
		}

	case event.KeyDown:
		switch e.Key {
		case "p":
			tools = append(tools, action.Tool{
				Kind:   action.SelectTool,
				Target: action.Pen,
				Point:  view.ViewportToData(ts.ViewBox, ts.DataOrigin, ts.MousePoint),
			})
		case "s":
			tools = append(tools, action.Tool{Kind: action.SelectTool, Target: action.Selector})
		case "Enter":
			if ts.Tool == action.Pen {
				pruned := ts.PenTool.TempMap.Filter([]object.ID{ts.PenTool.RootPathID})
				addData(action.AddObject(pruned))
				tools = append(tools, action.Tool{Kind: action.PenCommit})
			}
		}

	case event.ResizeView:
		tools = append(tools, action.Tool{Kind: action.ResizeView, Width: e.Width, Height: e.Height})

	case event.ScaleView:
		tools = append(tools, action.Tool{Kind: action.ScaleView, Scale: e.Scale})

	case event.SetViewOffset:
		tools = append(tools, action.Tool{Kind: action.SetViewOffset, Offset: e.Offset})

	case event.SelectTextTool:
		tools = append(tools, action.Tool{
			Kind:   action.SelectTool,
			Target: action.Text,
			Point:  view.ViewportToData(ts.ViewBox, ts.DataOrigin, ts.MousePoint),
		})

	case event.SetTextValue:
		tools = append(tools, action.Tool{Kind: action.TextSetValue, Text: e.Text})

	// event.AddObject is handled in Drawing.SendEvent, not here: minting a
	// durable object requires allocating a fresh ID, which this pure
	// translator never does.

	case event.AddPerpendicularConstraint, event.AddCoincidentConstraint,
		event.AddHorizontalConstraint, event.AddVerticalConstraint, event.AddDistanceConstraint:
		c, ok := buildConstraint(e, ts.Selector.Selected)
		if !ok {
			slog.Warn("constraint operand arity violation", "kind", e.Kind, "selected", len(ts.Selector.Selected))
			break
		}
		addData(action.AddConstraint(c))
	}

	return tools, data
}

// selectorMouseDown implements the Selector tool's pick-and-select logic:
// first hit wins, ctrl deselects, a miss without ctrl clears the selection.
func selectorMouseDown(ts *toolstate.State, ds *DataState, q geom.Vector, ctrl bool) []action.Tool {
	id, hit := hitTest(ds.Objects, q)
	if ctrl {
		if hit {
			return []action.Tool{{Kind: action.SelectorRemove, ObjectID: id}}
		}
		return nil
	}
	if hit {
		return []action.Tool{{Kind: action.SelectorAdd, ObjectID: id}}
	}
	return []action.Tool{{Kind: action.SelectorClear}}
}

// hitTest scans objs for the first Node, FixedNode, or Line under q,
// in map iteration order (implementation-defined, documented in
// object.Map).
func hitTest(objs object.Map, q geom.Vector) (object.ID, bool) {
	for id, obj := range objs {
		switch o := obj.(type) {
		case *object.Node:
			if geom.HitNode(o.Point, hitNodeTol, q) {
				return id, true
			}
		case *object.FixedNode:
			if geom.HitNode(o.Point, hitNodeTol, q) {
				return id, true
			}
		case *object.Line:
			p1, ok1 := object.Point(objs[o.Point1])
			p2, ok2 := object.Point(objs[o.Point2])
			if ok1 && ok2 && geom.HitSegment(p1, p2, hitLineTol, q) {
				return id, true
			}
		}
	}
	return 0, false
}

// buildConstraint validates operand arity for e.Kind against selected and
// builds the corresponding Constraint. ok is false on an arity violation.
func buildConstraint(e event.Event, selected []object.ID) (object.Constraint, bool) {
	switch e.Kind {
	case event.AddPerpendicularConstraint:
		if len(selected) != 2 {
			return object.Constraint{}, false
		}
		return object.NewPerpendicular(selected[0], selected[1]), true

	case event.AddCoincidentConstraint:
		if len(selected) != 2 {
			return object.Constraint{}, false
		}
		return object.NewCoincident(selected[0], selected[1]), true

	case event.AddHorizontalConstraint:
		if len(selected) != 1 {
			return object.Constraint{}, false
		}
		return object.NewHorizontal(selected[0]), true

	case event.AddVerticalConstraint:
		if len(selected) != 1 {
			return object.Constraint{}, false
		}
		return object.NewVertical(selected[0]), true

	case event.AddDistanceConstraint:
		switch len(selected) {
		case 1:
			return object.NewDistanceOnLine(selected[0], e.Distance), true
		case 2:
			return object.NewDistanceBetweenPoints(selected[0], selected[1], e.Distance), true
		default:
			return object.Constraint{}, false
		}
	}
	return object.Constraint{}, false
}

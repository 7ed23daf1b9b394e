// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toolstate

import (
	"geomkernel.dev/kernel/action"
	"geomkernel.dev/kernel/geom"
	"geomkernel.dev/kernel/object"
)

// Apply applies a single ToolAction to s mutably and reports whether
// anything changed. ids allocates fresh object IDs for the scratch
// objects a Pen/Text tool entry creates.
func Apply(s *State, ids *object.IDGenerator, a action.Tool) bool {
	switch a.Kind {
	case action.UpdateMousePoint:
		s.MousePoint = a.Point
		return true

	case action.SelectTool:
		return applySelectTool(s, ids, a.Target, a.Point)

	case action.PenMouseMove:
		if node, ok := s.PenTool.TempMap[s.PenTool.LiveSubPathID].(*object.Node); ok {
			node.Point = a.Point
			return true
		}
		return false

	case action.PenMouseDown:
		applyPenMouseDown(s, ids, a.Point)
		return true

	case action.PenCommit:
		s.Tool = action.Selector
		s.PenTool = PenState{}
		return true

	case action.TextMouseMove:
		if node, ok := s.TextTool.TempMap[s.TextTool.AnchorID].(*object.Node); ok {
			node.Point = a.Point
			return true
		}
		return false

	case action.TextSetValue:
		if txt, ok := s.TextTool.TempMap[s.TextTool.LiveTextID].(*object.Text); ok {
			txt.Body = a.Text
			return true
		}
		return false

	case action.TextCommit:
		s.Tool = action.Selector
		s.TextTool = TextState{}
		return true

	case action.SelectorAdd:
		s.Selector.Add(a.ObjectID)
		return true

	case action.SelectorRemove:
		s.Selector.Remove(a.ObjectID)
		return true

	case action.SelectorClear:
		s.Selector.Clear()
		return true

	case action.PanStart:
		s.Pan = Pan{Phase: PanActive, Start: a.Point}
		return true

	case action.PanMove:
		s.ViewBox.Offset = s.Pan.Start.Sub(s.MousePoint)
		return true

	case action.PanEnd:
		s.Pan = Pan{Phase: PanIdle}
		return true

	case action.ResizeView:
		s.ViewBox.Resize(a.Width, a.Height, s.Scale)
		return true

	case action.ScaleView:
		s.Scale = a.Scale
		return true

	case action.SetViewOffset:
		s.ViewBox.Offset = a.Offset
		return true

	case action.AddHistory:
		s.History.Append(a.DataAction)
		return true
	}
	return false
}

// applySelectTool handles same-tool no-ops and the scratch-map setup on
// entry to Pen or Text (spec §4.5).
func applySelectTool(s *State, ids *object.IDGenerator, target action.ToolKind, mouseData geom.Vector) bool {
	if s.Tool == target {
		return false
	}
	s.Tool = target
	switch target {
	case action.Pen:
		rootID := ids.Next()
		seedID := ids.Next()
		s.PenTool = PenState{
			TempMap: object.Map{
				rootID: &object.Path{Header: object.Header{ID: rootID}},
				seedID: &object.Node{Header: object.Header{ID: seedID}, Point: mouseData},
			},
			RootPathID:    rootID,
			LiveSubPathID: seedID,
		}
	case action.Text:
		nodeID := ids.Next()
		textID := ids.Next()
		s.TextTool = TextState{
			TempMap: object.Map{
				nodeID: &object.Node{Header: object.Header{ID: nodeID}, Point: mouseData},
				textID: &object.Text{Header: object.Header{ID: textID}, Anchor: nodeID, Body: ""},
			},
			AnchorID:   nodeID,
			LiveTextID: textID,
		}
	}
	return true
}

// applyPenMouseDown implements AddNode: the current rubber-band tail is
// pinned into the committing Path, and a new rubber-band Node/Line pair
// takes its place.
func applyPenMouseDown(s *State, ids *object.IDGenerator, mouseData geom.Vector) {
	pt := &s.PenTool
	path := pt.TempMap[pt.RootPathID].(*object.Path)

	path.Points = append(path.Points, pt.LiveSubPathID)
	if pt.LiveLineID != 0 {
		path.Lines = append(path.Lines, pt.LiveLineID)
	}

	newNodeID := ids.Next()
	newLineID := ids.Next()
	pt.TempMap[newNodeID] = &object.Node{Header: object.Header{ID: newNodeID}, Point: mouseData}
	pt.TempMap[newLineID] = &object.Line{Header: object.Header{ID: newLineID}, Point1: pt.LiveSubPathID, Point2: newNodeID}

	pt.LiveSubPathID = newNodeID
	pt.LiveLineID = newLineID
}

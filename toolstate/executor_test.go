package toolstate

import (
	"testing"

	"geomkernel.dev/kernel/action"
	"geomkernel.dev/kernel/geom"
	"geomkernel.dev/kernel/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectToolSameToolIsNoop(t *testing.T) {
	s := New()
	ids := object.NewIDGenerator(1)
	changed := Apply(s, ids, action.Tool{Kind: action.SelectTool, Target: action.Selector})
	assert.False(t, changed)
}

func TestPenToolEntrySeedsScratchMap(t *testing.T) {
	s := New()
	ids := object.NewIDGenerator(1)
	changed := Apply(s, ids, action.Tool{Kind: action.SelectTool, Target: action.Pen, Point: geom.Vec(10, 10)})
	require.True(t, changed)
	assert.Equal(t, action.Pen, s.Tool)
	assert.Len(t, s.PenTool.TempMap, 2)
	seed := s.PenTool.TempMap[s.PenTool.LiveSubPathID].(*object.Node)
	assert.Equal(t, geom.Vec(10, 10), seed.Point)
	assert.Equal(t, object.ID(0), s.PenTool.LiveLineID)
}

func TestPenMouseMoveTracksCursor(t *testing.T) {
	s := New()
	ids := object.NewIDGenerator(1)
	Apply(s, ids, action.Tool{Kind: action.SelectTool, Target: action.Pen, Point: geom.Vec(10, 10)})
	Apply(s, ids, action.Tool{Kind: action.PenMouseMove, Point: geom.Vec(20, 20)})

	seed := s.PenTool.TempMap[s.PenTool.LiveSubPathID].(*object.Node)
	assert.Equal(t, geom.Vec(20, 20), seed.Point)
}

func TestPenMouseDownPinsAndContinues(t *testing.T) {
	s := New()
	ids := object.NewIDGenerator(1)
	Apply(s, ids, action.Tool{Kind: action.SelectTool, Target: action.Pen, Point: geom.Vec(10, 10)})
	firstSeedID := s.PenTool.LiveSubPathID

	Apply(s, ids, action.Tool{Kind: action.PenMouseDown, Point: geom.Vec(10, 10)})

	path := s.PenTool.TempMap[s.PenTool.RootPathID].(*object.Path)
	assert.Equal(t, []object.ID{firstSeedID}, path.Points)
	assert.Empty(t, path.Lines)
	assert.NotEqual(t, firstSeedID, s.PenTool.LiveSubPathID)
	assert.NotEqual(t, object.ID(0), s.PenTool.LiveLineID)

	secondTail := s.PenTool.LiveSubPathID
	secondLine := s.PenTool.LiveLineID

	Apply(s, ids, action.Tool{Kind: action.PenMouseDown, Point: geom.Vec(20, 30)})
	path = s.PenTool.TempMap[s.PenTool.RootPathID].(*object.Path)
	assert.Equal(t, []object.ID{firstSeedID, secondTail}, path.Points)
	assert.Equal(t, []object.ID{secondLine}, path.Lines)
}

func TestPenCommitResetsToSelector(t *testing.T) {
	s := New()
	ids := object.NewIDGenerator(1)
	Apply(s, ids, action.Tool{Kind: action.SelectTool, Target: action.Pen, Point: geom.Vec(0, 0)})
	Apply(s, ids, action.Tool{Kind: action.PenCommit})
	assert.Equal(t, action.Selector, s.Tool)
	assert.Empty(t, s.PenTool.TempMap)
}

func TestTextToolEntryAndEdit(t *testing.T) {
	s := New()
	ids := object.NewIDGenerator(1)
	Apply(s, ids, action.Tool{Kind: action.SelectTool, Target: action.Text, Point: geom.Vec(5, 5)})
	Apply(s, ids, action.Tool{Kind: action.TextSetValue, Text: "x^2"})

	txt := s.TextTool.TempMap[s.TextTool.LiveTextID].(*object.Text)
	assert.Equal(t, "x^2", txt.Body)
}

func TestSelectorAddRemoveClear(t *testing.T) {
	s := New()
	ids := object.NewIDGenerator(1)
	Apply(s, ids, action.Tool{Kind: action.SelectorAdd, ObjectID: 5})
	Apply(s, ids, action.Tool{Kind: action.SelectorAdd, ObjectID: 6})
	assert.Equal(t, []object.ID{5, 6}, s.Selector.Selected)

	Apply(s, ids, action.Tool{Kind: action.SelectorRemove, ObjectID: 5})
	assert.Equal(t, []object.ID{6}, s.Selector.Selected)

	Apply(s, ids, action.Tool{Kind: action.SelectorClear})
	assert.Empty(t, s.Selector.Selected)
}

func TestPanRoundTrip(t *testing.T) {
	s := New()
	ids := object.NewIDGenerator(1)
	Apply(s, ids, action.Tool{Kind: action.SetViewOffset, Offset: geom.Vec(0, 0)})
	Apply(s, ids, action.Tool{Kind: action.PanStart, Point: geom.Vec(100, 100)})

	Apply(s, ids, action.Tool{Kind: action.UpdateMousePoint, Point: geom.Vec(120, 130)})
	Apply(s, ids, action.Tool{Kind: action.PanMove})
	assert.InDelta(t, -20, s.ViewBox.Offset.X, 1e-9)
	assert.InDelta(t, -30, s.ViewBox.Offset.Y, 1e-9)

	Apply(s, ids, action.Tool{Kind: action.UpdateMousePoint, Point: geom.Vec(100, 100)})
	Apply(s, ids, action.Tool{Kind: action.PanMove})
	Apply(s, ids, action.Tool{Kind: action.PanEnd})

	assert.InDelta(t, 0, s.ViewBox.Offset.X, 1e-9)
	assert.InDelta(t, 0, s.ViewBox.Offset.Y, 1e-9)
	assert.Equal(t, PanIdle, s.Pan.Phase)
}

package object

import (
	"encoding/json"
	"testing"

	"geomkernel.dev/kernel/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapJSONRoundTrip(t *testing.T) {
	m := Map{
		1: &Node{Header: Header{ID: 1}, Point: geom.Vec(1, 2)},
		2: &FixedNode{Header: Header{ID: 2, Guide: true}, Point: geom.Vec(0, 0)},
		3: &Line{Header: Header{ID: 3}, Point1: 1, Point2: 2},
		4: &Path{Header: Header{ID: 4}, Points: []ID{1, 2}, Lines: []ID{3}},
		5: &Text{Header: Header{ID: 5}, Anchor: 1, Body: "x^2"},
	}

	b, err := json.Marshal(m)
	require.NoError(t, err)

	var out Map
	require.NoError(t, json.Unmarshal(b, &out))

	assert.Len(t, out, len(m))
	n := out[1].(*Node)
	assert.Equal(t, geom.Vec(1, 2), n.Point)
	fn := out[2].(*FixedNode)
	assert.True(t, fn.Guide)
	l := out[3].(*Line)
	assert.Equal(t, ID(1), l.Point1)
	p := out[4].(*Path)
	assert.Equal(t, []ID{1, 2}, p.Points)
	txt := out[5].(*Text)
	assert.Equal(t, "x^2", txt.Body)
}

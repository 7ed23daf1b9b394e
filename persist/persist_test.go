package persist

import (
	"strings"
	"testing"

	"geomkernel.dev/kernel/action"
	"geomkernel.dev/kernel/geom"
	"geomkernel.dev/kernel/history"
	"geomkernel.dev/kernel/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSaveLoadRoundTrip reproduces testable property 5: a saved and
// reloaded history reproduces its actions pointwise.
func TestSaveLoadRoundTrip(t *testing.T) {
	var tree history.Tree
	node := &object.Node{Header: object.Header{ID: 1}, Point: geom.Vec(3, 4)}
	tree.Append(action.AddObject(object.Map{1: node}))
	tree.Append(action.AddConstraint(object.NewHorizontal(1)))

	var buf strings.Builder
	require.NoError(t, Save(&buf, &tree))

	loaded, err := Load(strings.NewReader(buf.String()))
	require.NoError(t, err)

	path := loaded.LinearPath()
	require.Len(t, path, 2)
	assert.Equal(t, action.AddObjectKind, path[0].Kind)
	got := path[0].Objects[1].(*object.Node)
	assert.InDelta(t, 3, got.Point.X, 1e-6)
	assert.InDelta(t, 4, got.Point.Y, 1e-6)
	assert.Equal(t, action.AddConstraintKind, path[1].Kind)
	assert.Equal(t, object.Horizontal, path[1].Constraint.Kind)
}

func TestLoadRejectsMalformedDocument(t *testing.T) {
	_, err := Load(strings.NewReader("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist:")
}

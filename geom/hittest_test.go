package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitNode(t *testing.T) {
	p := Vec(10, 10)
	assert.True(t, HitNode(p, 15, Vec(12, 12)))
	assert.False(t, HitNode(p, 15, Vec(100, 100)))
}

func TestHitSegment(t *testing.T) {
	a, b := Vec(0, 0), Vec(100, 0)
	assert.True(t, HitSegment(a, b, 10, Vec(50, 5)))
	assert.False(t, HitSegment(a, b, 10, Vec(50, 50)))
	// beyond the endpoint, within tol of its extension
	assert.True(t, HitSegment(a, b, 10, Vec(105, 0)))
	assert.False(t, HitSegment(a, b, 10, Vec(130, 0)))
}

func TestHitSegmentDegenerate(t *testing.T) {
	a := Vec(5, 5)
	b := Vec(5.01, 5.01)
	assert.False(t, HitSegment(a, b, 10, Vec(5, 5)))
}

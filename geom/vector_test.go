package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vec(3, 4)
	b := Vec(1, 2)

	assert.Equal(t, Vec(4, 6), a.Add(b))
	assert.Equal(t, Vec(2, 2), a.Sub(b))
	assert.Equal(t, Vec(6, 8), a.Scale(2))
	assert.Equal(t, float64(11), a.Dot(b))
	assert.Equal(t, float64(3*2-4*1), a.Cross(b))
	assert.Equal(t, float64(25), a.LengthSquared())
	assert.Equal(t, float64(5), a.Length())
}

func TestVectorDim(t *testing.T) {
	v := Vec(3, 4)
	assert.Equal(t, float64(3), v.Dim(0))
	assert.Equal(t, float64(4), v.Dim(1))
	assert.Equal(t, Vec(9, 4), v.SetDim(0, 9))
	assert.Equal(t, Vec(3, 9), v.SetDim(1, 9))
}

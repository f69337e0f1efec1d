package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	N := 3
	v1 := NewVector(N).Set(1)
	require.Equal(t, 1., v1.V.RawVector().Data[N-1])
	v1.Set(2)
	require.Equal(t, 2., v1.V.RawVector().Data[N-1])

	// DataP aliases the VecDense storage
	v1.DataP[0] = 42
	require.Equal(t, 42., v1.AtVec(0))
	v1.V.SetVec(1, 43)
	require.Equal(t, 43., v1.DataP[1])

	// Chained scaling
	v2 := NewVector(3, []float64{1, 2, 3}).POW(2).Scale(2)
	assert.Equal(t, []float64{2, 8, 18}, v2.DataP)

	// Copy is independent of the source
	v3 := v2.Copy()
	v3.Set(0)
	assert.Equal(t, []float64{2, 8, 18}, v2.DataP)
	assert.Equal(t, []float64{0, 0, 0}, v3.DataP)

	// Linspace
	{
		req := NewVector(2).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 1., req.AtVec(1))
		req = NewVector(3).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 0., req.AtVec(1))
		assert.Equal(t, 1., req.AtVec(2))
	}
}

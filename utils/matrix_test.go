package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, A.RawMatrix().Data, []float64{1, 4, 2, 5, 3, 6})
	}
	// Mul
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		A := M.Mul(M.Transpose())
		assert.Equal(t, A.RawMatrix().Data, []float64{14, 32, 32, 77})
	}
	// Apply / Max / Min
	{
		M := NewMatrix(2, 2, []float64{
			1, -4,
			-2, 3,
		})
		assert.Equal(t, -4., M.Min())
		assert.Equal(t, 3., M.Max())
		M.Apply(math.Abs)
		assert.Equal(t, 4., M.Max())
	}
	// Col / Row
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{2, 5}, M.Col(1).DataP)
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).DataP)
	}
	// Copy is independent of the source
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := M.Copy()
		A.Set(0, 0, 100)
		assert.Equal(t, 1., M.At(0, 0))
		assert.Equal(t, 100., A.At(0, 0))
	}
}

func TestSymTriDiagonal(t *testing.T) {
	J := NewSymTriDiagonal([]float64{1, 2, 3}, []float64{4, 5})
	assert.Equal(t, 3, J.SymmetricDim())
	assert.Equal(t, 2., J.At(1, 1))
	assert.Equal(t, 4., J.At(0, 1))
	assert.Equal(t, 4., J.At(1, 0))
	assert.Equal(t, 5., J.At(2, 1))
	assert.Equal(t, 0., J.At(0, 2))
}

package legendre

import (
	"math"
	"testing"

	"github.com/opueyociutad/goquad/utils"
)

func TestGamma0(t *testing.T) {
	if math.Abs(Gamma0(0, 0)-2) > 1e-15 {
		t.Errorf("Gamma0(0,0): got %v, want 2", Gamma0(0, 0))
	}
	if math.Abs(Gamma0(1, 1)-4./3.) > 1e-15 {
		t.Errorf("Gamma0(1,1): got %v, want 4/3", Gamma0(1, 1))
	}
}

func TestJacobiPNormalization(t *testing.T) {
	// For alpha = beta = 0 the orthonormal basis is sqrt((2j+1)/2)*P_j
	R := utils.NewVector(9).Linspace(-1, 1)
	for j := 0; j <= 8; j++ {
		p := JacobiP(R, 0, 0, j)
		scale := math.Sqrt((2*float64(j) + 1) / 2)
		for i := 0; i < R.Len(); i++ {
			want := scale * P(j, R.AtVec(i))
			if math.Abs(p[i]-want) > 1e-13 {
				t.Errorf("JacobiP order %d at %v: got %v, want %v", j, R.AtVec(i), p[i], want)
			}
		}
	}
}

func TestVandermonde1D(t *testing.T) {
	R := utils.NewVector(7).Linspace(-1, 1)
	V := Vandermonde1D(5, R)
	nr, nc := V.Dims()
	if nr != 7 || nc != 6 {
		t.Errorf("wrong dimensions: got %d,%d, want 7,6", nr, nc)
	}
	for j := 0; j <= 5; j++ {
		col := V.Col(j)
		p := JacobiP(R, 0, 0, j)
		for i := 0; i < nr; i++ {
			if col.AtVec(i) != p[i] {
				t.Errorf("V[%d,%d]: got %v, want %v", i, j, col.AtVec(i), p[i])
			}
		}
	}
}

package legendre

import (
	"math"

	"github.com/opueyociutad/goquad/utils"
)

// Gamma0 is the L2 norm squared of the Jacobi polynomial of degree 0 under
// the (alpha,beta) weight, the normalization constant of the orthonormal
// basis. For alpha = beta = 0 it is the measure of [-1,1].
func Gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

func gamma1(alpha, beta float64) float64 {
	ab := alpha + beta
	a1 := alpha + 1.
	b1 := beta + 1.
	return a1 * b1 * Gamma0(alpha, beta) / (ab + 3.0)
}

// JacobiP evaluates the orthonormalized Jacobi polynomial of order N at all
// points of r.
func JacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	var (
		nc = r.Len()
		ab = alpha + beta
	)
	rg := 1 / math.Sqrt(Gamma0(alpha, beta))
	if N == 0 {
		return utils.ConstArray(rg, nc)
	}
	rg1 := 1 / math.Sqrt(gamma1(alpha, beta))
	pm2 := utils.ConstArray(rg, nc)
	pm1 := make([]float64, nc)
	for i := range pm1 {
		pm1[i] = rg1 * ((ab+2)*r.AtVec(i)/2 + (alpha-beta)/2)
	}
	if N == 1 {
		return pm1
	}
	aold := 2 / (ab + 2) * math.Sqrt((alpha+1)*(beta+1)/(ab+3))
	for k := 1; k < N; k++ {
		kF := float64(k)
		h1 := 2*kF + ab
		anew := 2 / (h1 + 2) * math.Sqrt((kF+1)*(kF+ab+1)*(kF+alpha+1)*(kF+beta+1)/((h1+1)*(h1+3)))
		bnew := -(alpha*alpha - beta*beta) / (h1 * (h1 + 2))
		p = make([]float64, nc)
		for i := range p {
			p[i] = ((r.AtVec(i)-bnew)*pm1[i] - aold*pm2[i]) / anew
		}
		pm2, pm1 = pm1, p
		aold = anew
	}
	return pm1
}

// Vandermonde1D builds the generalized Vandermonde matrix of the orthonormal
// Legendre basis up to order N evaluated at the points R, V[i,j] = Pj(R_i).
func Vandermonde1D(N int, R utils.Vector) (V utils.Matrix) {
	V = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j <= N; j++ {
		V.SetCol(j, JacobiP(R, 0, 0, j))
	}
	return
}

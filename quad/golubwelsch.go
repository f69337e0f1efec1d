package quad

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/opueyociutad/goquad/legendre"
	"github.com/opueyociutad/goquad/utils"
)

// GolubWelschLegendre computes the n point Gauss-Legendre rule by
// eigen-decomposition of the symmetric tridiagonal Jacobi matrix. It shares
// no code with the Newton path in GaussLegendre, which makes it a usable
// independent reference for validating that path. Double precision only.
func GolubWelschLegendre(n int) (X, W utils.Vector) {
	X, W = jacobiGQ(0, 0, n-1)
	return
}

// GolubWelschLobatto computes the n point Gauss-Lobatto rule. The interior
// nodes are the Gauss points of the Jacobi (1,1) weight, again located by
// eigen-decomposition rather than Newton iteration.
func GolubWelschLobatto(n int) (X, W utils.Vector) {
	var (
		degree = n - 1
		x      = make([]float64, n)
		w      = make([]float64, n)
	)
	x[0], x[degree] = -1, 1
	if degree >= 2 {
		xint, _ := jacobiGQ(1, 1, degree-2)
		copy(x[1:degree], xint.DataP)
	}
	for i := range x {
		ln := legendre.P(degree, x[i])
		w[i] = 2 / (float64(degree*(degree+1)) * ln * ln)
	}
	X, W = utils.NewVector(n, x), utils.NewVector(n, w)
	return
}

// jacobiGQ returns the N+1 point Gauss quadrature for the Jacobi
// (alpha,beta) weight, nodes as eigenvalues of the Jacobi matrix and weights
// from the first eigenvector components.
func jacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	var (
		x, w       []float64
		fac        float64
		h1, d0, d1 []float64
		VVr        *mat.Dense
	)
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{2.}
		return utils.NewVector(len(x), x), utils.NewVector(len(w), w)
	}

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: diag(-1/2*(alpha^2-beta^2)./(h1+2)./h1)
	d0 = make([]float64, N+1)
	fac = -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal: 2/(h1+2)*sqrt(i*(i+alpha+beta)*(i+alpha)*(i+beta)/(h1+1)/(h1+3))
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	ok := eig.Factorize(JJ, true)
	if !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(x)
	X = utils.NewVector(N+1, x)

	VVr = mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	W = utils.NewVector(len(x), VVr.RawRowView(0)).POW(2).Scale(legendre.Gamma0(alpha, beta))
	return X, W
}

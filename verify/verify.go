// Package verify measures the defining properties of quadrature rules over
// [-1,1]: weight normalization, node ordering and mirror symmetry, polynomial
// exactness, and orthonormality of the Legendre basis under the discrete
// inner product. All functions are pure measurements, thresholds are left to
// the caller.
package verify

import (
	"fmt"
	"math"

	"github.com/opueyociutad/goquad/legendre"
	"github.com/opueyociutad/goquad/utils"
)

// WeightSumDefect returns |sum(weights) - 2|, the distance from the measure
// of the reference interval.
func WeightSumDefect(weights []float64) float64 {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	return math.Abs(sum - 2)
}

// SymmetryDefect returns the worst violation of mirror symmetry about zero
// over all node and weight pairs.
func SymmetryDefect(nodes, weights []float64) (defect float64) {
	n := len(nodes)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if d := math.Abs(nodes[i] + nodes[j]); d > defect {
			defect = d
		}
		if d := math.Abs(weights[i] - weights[j]); d > defect {
			defect = d
		}
	}
	return
}

// Monotone reports whether the nodes are strictly increasing.
func Monotone(nodes []float64) bool {
	for i := 1; i < len(nodes); i++ {
		if nodes[i] <= nodes[i-1] {
			return false
		}
	}
	return true
}

// HasEndpoints reports whether the rule pins both interval endpoints exactly.
func HasEndpoints(nodes []float64) bool {
	return len(nodes) != 0 && nodes[0] == -1 && nodes[len(nodes)-1] == 1
}

// MonomialDefect integrates the monomials x^k for k up to maxDegree and
// returns the worst error against the closed form along with the degree
// where it occurs.
func MonomialDefect(nodes, weights []float64, maxDegree int) (worst float64, worstDegree int) {
	for k := 0; k <= maxDegree; k++ {
		var s float64
		for i, x := range nodes {
			s += weights[i] * utils.POW(x, k)
		}
		exact := 0.
		if k%2 == 0 {
			exact = 2 / float64(k+1)
		}
		if d := math.Abs(s - exact); d > worst {
			worst = d
			worstDegree = k
		}
	}
	return
}

// GramDefect forms the Gram matrix of the orthonormal Legendre basis up to
// the given order under the discrete inner product <f,g> = sum(w*f(x)*g(x))
// and returns the worst entrywise distance from the identity. A rule exact
// through polynomial degree 2*order reduces this to rounding noise.
func GramDefect(nodes, weights []float64, order int) float64 {
	var (
		n = len(nodes)
		R = utils.NewVector(n, nodes)
	)
	V := legendre.Vandermonde1D(order, R)
	V.SetReadOnly("Vandermonde")
	D := utils.NewDiagDOK(weights).ToCSR()
	WV := utils.NewMatrix(n, order+1)
	WV.M.Mul(D.M, V.M)
	G := V.Transpose().Mul(WV)
	for i := 0; i <= order; i++ {
		G.Set(i, i, G.At(i, i)-1)
	}
	return G.Apply(math.Abs).Max()
}

// Report bundles every measured property of one rule.
type Report struct {
	WeightSumDefect   float64
	SymmetryDefect    float64
	Monotone          bool
	HasEndpoints      bool
	MonomialDefect    float64
	MonomialWorstAt   int
	MonomialMaxDegree int
	GramDefect        float64
	GramOrder         int
}

// Check measures all properties of a rule. exactDegree is the polynomial
// degree through which the family is algebraically exact. gramOrder selects
// the basis order of the Gram check, negative skips it.
func Check(nodes, weights []float64, exactDegree, gramOrder int) (rep Report) {
	rep.WeightSumDefect = WeightSumDefect(weights)
	rep.SymmetryDefect = SymmetryDefect(nodes, weights)
	rep.Monotone = Monotone(nodes)
	rep.HasEndpoints = HasEndpoints(nodes)
	rep.MonomialMaxDegree = exactDegree
	rep.MonomialDefect, rep.MonomialWorstAt = MonomialDefect(nodes, weights, exactDegree)
	rep.GramOrder = gramOrder
	if gramOrder >= 0 {
		rep.GramDefect = GramDefect(nodes, weights, gramOrder)
	}
	return
}

func (rep Report) Print() {
	fmt.Printf("%8.1e\t\t= Weight Sum Defect\n", rep.WeightSumDefect)
	fmt.Printf("%8.1e\t\t= Symmetry Defect\n", rep.SymmetryDefect)
	fmt.Printf("[%v]\t\t\t= Strictly Increasing Nodes\n", rep.Monotone)
	fmt.Printf("[%v]\t\t\t= Endpoints Included\n", rep.HasEndpoints)
	fmt.Printf("%8.1e\t\t= Monomial Defect (worst at degree %d of %d)\n",
		rep.MonomialDefect, rep.MonomialWorstAt, rep.MonomialMaxDegree)
	if rep.GramOrder >= 0 {
		fmt.Printf("%8.1e\t\t= Gram Defect (basis order %d)\n", rep.GramDefect, rep.GramOrder)
	}
}

package quad

import (
	"errors"
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opueyociutad/goquad/legendre"
)

func TestRefineRoot(t *testing.T) {
	// sqrt(2) as the positive root of x^2-2
	x, err := refineRoot(func(x float64) (float64, float64) {
		return x*x - 2, 2 * x
	}, 1.5, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-15)
}

func TestRefineRootIterationBudget(t *testing.T) {
	// Every root search of every Gauss-Legendre rule up to 200 points must
	// converge well inside the iteration cap from its Chebyshev guess.
	var counts []float64
	for n := 1; n <= 200; n++ {
		degree := n - 1
		m := (degree + 1) / 2
		for i := 0; i < m; i++ {
			x0 := -math.Cos((2*float64(i) + 1) / (2*float64(degree) + 2) * math.Pi)
			var evals int
			_, err := refineRoot(func(x float64) (float64, float64) {
				evals++
				return legendre.PD(degree+1, x)
			}, x0, degree+1)
			require.NoError(t, err, "n=%d root %d", n, i)
			counts = append(counts, float64(evals))
		}
	}
	max, err := stats.Max(counts)
	require.NoError(t, err)
	mean, err := stats.Mean(counts)
	require.NoError(t, err)
	assert.True(t, max <= float64(maxNewtonIter))
	t.Logf("newton evaluations over %d roots: mean %.2f, max %.0f", len(counts), mean, max)
}

func TestRefineRootDiverges(t *testing.T) {
	// Constant objective with unit slope: every step moves x by -1 and the
	// stopping test can never fire. The budget must be spent exactly, with
	// no further evaluation after the final failed step.
	var evals int
	_, err := refineRoot(func(x float64) (float64, float64) {
		evals++
		return 1, 1
	}, 0, 9)
	require.Error(t, err)
	assert.Equal(t, maxNewtonIter, evals)

	var ce *ConvergenceError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 9, ce.Degree)
	assert.Equal(t, maxNewtonIter, ce.Iterations)
	assert.Contains(t, ce.Error(), "degree 9")
}

// pathologicalEvaluator reports a constant nonzero value with unit slope so
// no Newton search over it can converge.
type pathologicalEvaluator struct{}

func (pathologicalEvaluator) LegendreP(l int, x float64) float64 { return 1 }

func (pathologicalEvaluator) LegendrePD(l int, x float64) (p, d float64) { return 1, 1 }

func (pathologicalEvaluator) LegendrePDDiff(l int, x float64) (d, dd float64) { return 1, 1 }

func TestGeneratorConvergenceError(t *testing.T) {
	g := NewGenerator[float64](pathologicalEvaluator{})

	r, err := g.GaussLegendre(5)
	var ce *ConvergenceError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 5, ce.Degree) // root search runs on the degree n polynomial
	assert.Nil(t, r.Nodes)

	r, err = g.GaussLobatto(7)
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 6, ce.Degree) // interior roots come from the degree n-1 derivative
	assert.Nil(t, r.Nodes)

	// Composite families never iterate, so they cannot fail this way.
	_, err = g.CompositeSimpson(5)
	assert.NoError(t, err)
	_, err = g.CompositeSimpson38(7)
	assert.NoError(t, err)
}

func TestGeneratorCustomEvaluator(t *testing.T) {
	// A correct drop-in evaluator reproduces the default rule bit for bit.
	g := NewGenerator[float64](legendre.Recurrence{})
	r1, err := g.GaussLegendre(9)
	require.NoError(t, err)
	r2, err := GaussLegendre[float64](9)
	require.NoError(t, err)
	assert.Equal(t, r2.Nodes, r1.Nodes)
	assert.Equal(t, r2.Weights, r1.Weights)
}

// Package quad constructs one dimensional numerical quadrature rules over the
// reference interval [-1,1]. Four families are supported: Gauss-Legendre and
// Gauss-Lobatto rules found by Newton refinement of Legendre polynomial roots,
// and composite Simpson and Simpson 3/8 rules assembled in closed form.
//
// All root finding and weight computation runs in double precision. The
// element type of a Rule only narrows the final values, so a float32 rule is
// the rounded image of the float64 rule of the same family and size.
package quad

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/opueyociutad/goquad/legendre"
)

// Evaluator supplies the Legendre evaluations the Gauss family generators
// depend on. LegendreP returns the Legendre polynomial of degree l at x.
// LegendrePD additionally returns the first derivative. LegendrePDDiff
// returns the value and first derivative of P(l+1,x)-P(l-1,x), the objective
// whose interior roots are the Gauss-Lobatto nodes.
//
// Implementations must be usable from concurrent goroutines.
type Evaluator interface {
	LegendreP(l int, x float64) float64
	LegendrePD(l int, x float64) (p, d float64)
	LegendrePDDiff(l int, x float64) (d, dd float64)
}

// Rule holds the nodes and matching weights of a quadrature rule over [-1,1].
// Nodes are in strictly increasing order and len(Weights) == len(Nodes).
type Rule[T constraints.Float] struct {
	Nodes   []T
	Weights []T
}

// Len returns the number of evaluation points of the rule.
func (r Rule[T]) Len() int { return len(r.Nodes) }

// Generator builds quadrature rules using a pluggable Evaluator. The zero
// value is not usable, construct with NewGenerator.
type Generator[T constraints.Float] struct {
	Eval Evaluator
}

// NewGenerator returns a Generator backed by ev. Passing nil selects the
// recurrence evaluator from the legendre package.
func NewGenerator[T constraints.Float](ev Evaluator) Generator[T] {
	if ev == nil {
		ev = legendre.Recurrence{}
	}
	return Generator[T]{Eval: ev}
}

// GaussLegendre returns the n point Gauss-Legendre rule, exact for
// polynomials up to degree 2n-1, using the default evaluator.
func GaussLegendre[T constraints.Float](n int) (Rule[T], error) {
	return NewGenerator[T](nil).GaussLegendre(n)
}

// GaussLobatto returns the n point Gauss-Lobatto rule, exact for polynomials
// up to degree 2n-3 with both endpoints included, using the default
// evaluator.
func GaussLobatto[T constraints.Float](n int) (Rule[T], error) {
	return NewGenerator[T](nil).GaussLobatto(n)
}

// CompositeSimpson returns the n point composite Simpson rule.
func CompositeSimpson[T constraints.Float](n int) (Rule[T], error) {
	return NewGenerator[T](nil).CompositeSimpson(n)
}

// CompositeSimpson38 returns the n point composite Simpson 3/8 rule.
func CompositeSimpson38[T constraints.Float](n int) (Rule[T], error) {
	return NewGenerator[T](nil).CompositeSimpson38(n)
}

// GaussLegendre builds the n point Gauss-Legendre rule. The nodes are the
// roots of the Legendre polynomial of degree n, refined by Newton iteration
// from Chebyshev starting guesses. Only the left half is solved, the right
// half follows by symmetry.
func (g Generator[T]) GaussLegendre(n int) (Rule[T], error) {
	if n < 1 {
		return Rule[T]{}, fmt.Errorf("gauss_legendre: %w: n must be >= 1, have %d", ErrInvalidCount, n)
	}
	var (
		nodes   = make([]T, n)
		weights = make([]T, n)
		degree  = n - 1
		m       = (degree + 1) / 2
	)
	for i := 0; i < m; i++ {
		x0 := -math.Cos((2*float64(i) + 1) / (2*float64(degree) + 2) * math.Pi)
		x, err := refineRoot(func(x float64) (val, der float64) {
			return g.Eval.LegendrePD(degree+1, x)
		}, x0, degree+1)
		if err != nil {
			return Rule[T]{}, err
		}
		_, der := g.Eval.LegendrePD(degree+1, x)
		w := 2 / ((1 - x*x) * der * der)
		nodes[i], nodes[degree-i] = T(x), T(-x)
		weights[i], weights[degree-i] = T(w), T(w)
	}
	if degree%2 == 0 {
		_, der := g.Eval.LegendrePD(degree+1, 0)
		nodes[degree/2] = 0
		weights[degree/2] = T(2 / (der * der))
	}
	return Rule[T]{Nodes: nodes, Weights: weights}, nil
}

// GaussLobatto builds the n point Gauss-Lobatto rule. Both endpoints are
// fixed nodes. The interior nodes are the roots of the derivative of the
// Legendre polynomial of degree n-1, refined by Newton iteration from
// asymptotic starting guesses.
func (g Generator[T]) GaussLobatto(n int) (Rule[T], error) {
	if n < 2 {
		return Rule[T]{}, fmt.Errorf("gauss_lobatto: %w: n must be >= 2, have %d", ErrInvalidCount, n)
	}
	var (
		nodes   = make([]T, n)
		weights = make([]T, n)
		degree  = n - 1
		m       = (degree + 1) / 2
	)
	endpoint := 2 / float64(degree*(degree+1))
	nodes[0], nodes[degree] = -1, 1
	weights[0], weights[degree] = T(endpoint), T(endpoint)
	for i := 1; i < m; i++ {
		fi := float64(i) + 0.25
		x0 := -math.Cos(fi*math.Pi/float64(degree) - 3/(8*float64(degree)*math.Pi*fi))
		x, err := refineRoot(func(x float64) (val, der float64) {
			return g.Eval.LegendrePDDiff(degree, x)
		}, x0, degree)
		if err != nil {
			return Rule[T]{}, err
		}
		ln := g.Eval.LegendreP(degree, x)
		w := 2 / (float64(degree*(degree+1)) * ln * ln)
		nodes[i], nodes[degree-i] = T(x), T(-x)
		weights[i], weights[degree-i] = T(w), T(w)
	}
	if degree%2 == 0 {
		ln := g.Eval.LegendreP(degree, 0)
		nodes[degree/2] = 0
		weights[degree/2] = T(2 / (float64(degree*(degree+1)) * ln * ln))
	}
	return Rule[T]{Nodes: nodes, Weights: weights}, nil
}

// CompositeSimpson builds the n point composite Simpson rule, n odd and at
// least 3, covering [-1,1] with (n-1)/2 panels of three points each.
func (g Generator[T]) CompositeSimpson(n int) (Rule[T], error) {
	if n%2 != 1 || n < 3 {
		return Rule[T]{}, fmt.Errorf("composite_simpson: %w: n must be >= 3 and odd, have %d", ErrInvalidCount, n)
	}
	var (
		nodes   = make([]T, n)
		weights = make([]T, n)
		panels  = (n - 1) / 2
		h       = 2 / float64(2*panels)
		weight  = h / 3
	)
	for i := 0; i < panels; i++ {
		x := -1 + h*float64(2*i)
		nodes[2*i] = T(x)
		nodes[2*i+1] = T(x + h)
		if i == 0 {
			weights[2*i] = T(weight)
		} else {
			weights[2*i] = T(2 * weight)
		}
		weights[2*i+1] = T(4 * weight)
	}
	nodes[2*panels] = 1
	weights[2*panels] = T(weight)
	return Rule[T]{Nodes: nodes, Weights: weights}, nil
}

// CompositeSimpson38 builds the n point composite Simpson 3/8 rule, n at
// least 4 with n-1 divisible by 3, covering [-1,1] with (n-1)/3 panels of
// four points each.
func (g Generator[T]) CompositeSimpson38(n int) (Rule[T], error) {
	if (n-1)%3 != 0 || n < 4 {
		return Rule[T]{}, fmt.Errorf("composite_simpson_38: %w: n must be >= 4 with n-1 divisible by 3, have %d", ErrInvalidCount, n)
	}
	var (
		nodes   = make([]T, n)
		weights = make([]T, n)
		panels  = (n - 1) / 3
		h       = 2 / float64(3*panels)
		weight  = 3 * h / 8
	)
	for i := 0; i < panels; i++ {
		x := -1 + h*float64(3*i)
		nodes[3*i] = T(x)
		nodes[3*i+1] = T(x + h)
		nodes[3*i+2] = T(x + 2*h)
		if i == 0 {
			weights[3*i] = T(weight)
		} else {
			weights[3*i] = T(2 * weight)
		}
		weights[3*i+1] = T(3 * weight)
		weights[3*i+2] = T(3 * weight)
	}
	nodes[3*panels] = 1
	weights[3*panels] = T(weight)
	return Rule[T]{Nodes: nodes, Weights: weights}, nil
}

// Package legendre evaluates Legendre polynomials and their derivatives on
// [-1,1] using three-term recurrences. All polynomial root searches and weight
// computations in the quadrature generators run through these evaluations.
package legendre

import "fmt"

// Recurrence is the recurrence-based evaluation strategy. It is stateless and
// safe for concurrent use.
type Recurrence struct{}

func (Recurrence) LegendreP(l int, x float64) float64 { return P(l, x) }

func (Recurrence) LegendrePD(l int, x float64) (p, d float64) { return PD(l, x) }

func (Recurrence) LegendrePDDiff(l int, x float64) (d, dd float64) { return PDDiff(l, x) }

// P computes the Legendre polynomial of degree l at x.
func P(l int, x float64) float64 {
	if l == 0 {
		return 1.0
	}
	if l == 1 {
		return x
	}

	// Three-term recurrence
	p0 := 1.0
	p1 := x

	for k := 2; k <= l; k++ {
		kF := float64(k)
		p2 := ((2*kF-1)*x*p1 - (kF-1)*p0) / kF
		p0 = p1
		p1 = p2
	}

	return p1
}

// PD computes the Legendre polynomial of degree l and its first derivative
// at x in a single pass.
func PD(l int, x float64) (p, d float64) {
	if l == 0 {
		return 1.0, 0.0
	}
	if l == 1 {
		return x, 1.0
	}

	p0, p1 := 1.0, x
	d0, d1 := 0.0, 1.0

	for k := 2; k <= l; k++ {
		kF := float64(k)
		p2 := ((2*kF-1)*x*p1 - (kF-1)*p0) / kF
		d2 := d0 + (2*kF-1)*p1
		p0, p1 = p1, p2
		d0, d1 = d1, d2
	}

	return p1, d1
}

// PDDiff computes L(x) = P(l+1,x) - P(l-1,x) and its first derivative, the
// objective whose interior roots locate the Gauss-Lobatto nodes. l must be
// at least 1.
func PDDiff(l int, x float64) (d, dd float64) {
	if l < 1 {
		panic(fmt.Errorf("PDDiff requires l >= 1, have %d", l))
	}
	if l == 1 {
		// P(2,x) - P(0,x)
		return 0.5*(3*x*x-1) - 1, 3 * x
	}

	p0, p1 := 1.0, x
	d0, d1 := 0.0, 1.0

	for k := 2; k <= l; k++ {
		kF := float64(k)
		p2 := ((2*kF-1)*x*p1 - (kF-1)*p0) / kF
		d2 := d0 + (2*kF-1)*p1
		p0, p1 = p1, p2
		d0, d1 = d1, d2
	}

	// One further step of the recurrence gives degree l+1 while the degree
	// l-1 terms are still at hand.
	kF := float64(l + 1)
	p2 := ((2*kF-1)*x*p1 - (kF-1)*p0) / kF
	d2 := d0 + (2*kF-1)*p1

	return p2 - p0, d2 - d0
}

package quad

import "math"

const (
	// eps is the IEEE-754 double precision machine epsilon, 2^-52.
	eps = 2.220446049250313e-16

	// maxNewtonIter caps the Newton refinement of a single root. The
	// Chebyshev and asymptotic starting guesses converge in a handful of
	// steps, so hitting the cap means the objective is not behaving like a
	// Legendre polynomial near the guess.
	maxNewtonIter = 20
)

// refineRoot drives a Newton iteration from the starting guess x0 until the
// step size falls to within a few ulps of the iterate, |step| <= 4*|x|*eps.
// f returns the objective value and its first derivative. degree names the
// polynomial degree under search for error reporting only.
func refineRoot(f func(x float64) (val, der float64), x0 float64, degree int) (x float64, err error) {
	x = x0
	for it := 1; ; it++ {
		if it > maxNewtonIter {
			return 0, &ConvergenceError{Degree: degree, Iterations: maxNewtonIter}
		}
		val, der := f(x)
		step := val / der
		x -= step
		if math.Abs(step) <= 4*math.Abs(x)*eps {
			break
		}
	}
	return x, nil
}

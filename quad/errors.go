package quad

import (
	"errors"
	"fmt"
)

// ErrInvalidCount reports an evaluation point count that violates the
// precondition of the requested rule family. Callers can match it with
// errors.Is.
var ErrInvalidCount = errors.New("invalid evaluation point count")

// ConvergenceError reports a root search that did not reach the stopping
// tolerance within the iteration budget. It identifies the polynomial degree
// being searched so a failing degree can be reproduced directly.
type ConvergenceError struct {
	Degree     int
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("root search for Legendre degree %d did not converge after %d iterations",
		e.Degree, e.Iterations)
}

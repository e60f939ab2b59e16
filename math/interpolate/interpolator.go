package interpolate

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when a table of x and y values cannot be
	// interpolated over.
	ErrMalformed = errors.New("interpolate: malformed table")
	// ErrOutOfDomain is returned when a point lies outside the range of x
	// values an Interpolator was built from.
	ErrOutOfDomain = errors.New("interpolate: point out of domain")
)

// Interpolator evaluates a function tabulated at a fixed set of points.
type Interpolator interface {
	Eval(x float64) (float64, error)
	EvalAll(xs []float64, out ...[]float64) ([]float64, error)
	Domain() (lo, hi float64)
}

var (
	_ Interpolator = &Linear{}
)

// DomainError reports a point which fell outside [Lo, Hi].
type DomainError struct {
	X, Lo, Hi float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf(
		"interpolate: point %g is outside the range [%g, %g]", e.X, e.Lo, e.Hi,
	)
}

func (e *DomainError) Unwrap() error { return ErrOutOfDomain }

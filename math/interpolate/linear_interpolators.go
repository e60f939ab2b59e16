package interpolate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Linear is a piecewise linear interpolator.
type Linear struct {
	xs, vals []float64
	pl       interp.PiecewiseLinear
}

// NewLinear creates a linear interpolator for a sequence of strictly increasing
// points, xs, which take on the values given by vals.
//
// xs and vals must not be modified throughout the lifetime of the Linear.
func NewLinear(xs, vals []float64) (*Linear, error) {
	if err := checkTable(xs, vals); err != nil {
		return nil, err
	}

	lin := &Linear{xs: xs, vals: vals}
	if err := lin.pl.Fit(xs, vals); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err.Error())
	}
	return lin, nil
}

// checkTable enforces everything interp.PiecewiseLinear panics on.
func checkTable(xs, vals []float64) error {
	if len(xs) != len(vals) {
		return fmt.Errorf(
			"%w: len(xs) = %d but len(vals) = %d",
			ErrMalformed, len(xs), len(vals),
		)
	} else if len(xs) < 2 {
		return fmt.Errorf(
			"%w: need at least 2 points, got %d", ErrMalformed, len(xs),
		)
	}

	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) {
			return fmt.Errorf(
				"%w: xs[%d] = %g is not finite", ErrMalformed, i, xs[i],
			)
		}
		if i > 0 && !(xs[i] > xs[i-1]) {
			return fmt.Errorf(
				"%w: xs not strictly increasing at index %d (%g after %g)",
				ErrMalformed, i, xs[i], xs[i-1],
			)
		}
	}
	return nil
}

// Domain returns the smallest and largest x values which can be evaluated.
func (lin *Linear) Domain() (lo, hi float64) {
	return lin.xs[0], lin.xs[len(lin.xs)-1]
}

// Eval returns the interpolated value at x.
//
// Eval returns a *DomainError if x is outside the range of the input table.
// There is no extrapolation.
func (lin *Linear) Eval(x float64) (float64, error) {
	lo, hi := lin.Domain()
	if !(x >= lo && x <= hi) {
		return 0, &DomainError{X: x, Lo: lo, Hi: hi}
	}
	return lin.pl.Predict(x), nil
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used. It must
// be at least as long as xs or EvalAll panics. Nothing is written unless every
// point is in range.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	lo, hi := lin.Domain()
	for _, x := range xs {
		if !(x >= lo && x <= hi) {
			return nil, &DomainError{X: x, Lo: lo, Hi: hi}
		}
	}

	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	if len(out[0]) < len(xs) {
		panic(fmt.Sprintf(
			"len(out) = %d, but len(xs) = %d", len(out[0]), len(xs),
		))
	}
	for i, x := range xs {
		out[0][i] = lin.pl.Predict(x)
	}
	return out[0][:len(xs)], nil
}

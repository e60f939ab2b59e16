// Package resample resamples a tabulated 1D curve onto an evenly spaced grid
// using piecewise linear interpolation.
package resample

import (
	"errors"
	"fmt"

	"github.com/phil-mansfield/resample/math/interpolate"
)

var (
	// ErrPointCount is returned when fewer than one grid point is requested.
	ErrPointCount = errors.New("resample: number of points must be positive")
	// ErrBounds is returned when the lower limit of a Range is above its
	// upper limit.
	ErrBounds = errors.New("resample: lower limit above upper limit")
)

// Series is an ordered sequence of points.
type Series struct {
	Xs, Ys []float64
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.Xs) }

// XY returns the i-th point. Together with Len, this lets a Series be drawn
// directly by gonum/plot.
func (s Series) XY(i int) (x, y float64) { return s.Xs[i], s.Ys[i] }

// Renderer draws the original samples (trace) alongside the resampled curve.
type Renderer interface {
	Render(trace, curve Series) error
}

// Range selects the span of a query grid: either the full range of the
// samples or an explicit pair of limits.
type Range struct {
	custom       bool
	lower, upper float64
}

// SampleRange spans the first to last sample x value.
func SampleRange() Range { return Range{} }

// Limits spans [lower, upper].
func Limits(lower, upper float64) Range {
	return Range{custom: true, lower: lower, upper: upper}
}

// IsCustom returns true if the Range was created by Limits.
func (r Range) IsCustom() bool { return r.custom }

// Bounds returns the limits of the range for the sample x values xs.
func (r Range) Bounds(xs []float64) (lower, upper float64) {
	if r.custom {
		return r.lower, r.upper
	}
	return xs[0], xs[len(xs)-1]
}

func (r Range) String() string {
	if !r.custom {
		return "SampleRange"
	}
	return fmt.Sprintf("[%g, %g]", r.lower, r.upper)
}

// Resampler interpolates a fixed set of samples onto new grids. It is safe for
// concurrent use: nothing is written after New returns.
type Resampler struct {
	xs, ys []float64
	lin    *interpolate.Linear
}

// New creates a Resampler for the samples (xs[i], ys[i]). xs must be strictly
// increasing and have the same length as ys, and there must be at least two
// samples. Errors wrap interpolate.ErrMalformed.
//
// The slices are not copied and must not be modified afterwards.
func New(xs, ys []float64) (*Resampler, error) {
	lin, err := interpolate.NewLinear(xs, ys)
	if err != nil {
		return nil, err
	}
	return &Resampler{xs: xs, ys: ys, lin: lin}, nil
}

// Samples returns the samples the Resampler was created with.
func (rs *Resampler) Samples() Series {
	return Series{Xs: rs.xs, Ys: rs.ys}
}

// Grid returns numPoints evenly spaced x values spanning rng, endpoints
// included.
func (rs *Resampler) Grid(numPoints int, rng Range) ([]float64, error) {
	if numPoints < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrPointCount, numPoints)
	}
	lower, upper := rng.Bounds(rs.xs)
	if lower > upper {
		return nil, fmt.Errorf("%w: %g > %g", ErrBounds, lower, upper)
	}
	return Linspace(lower, upper, numPoints), nil
}

// Resample evaluates the samples on the grid given by numPoints and rng and
// returns the grid together with the interpolated values. Any renderers are
// handed the samples and the result before Resample returns.
//
// Grid points outside the range of the samples produce an error wrapping
// interpolate.ErrOutOfDomain. Values are never extrapolated or clamped.
func (rs *Resampler) Resample(
	numPoints int, rng Range, renderers ...Renderer,
) (Series, error) {
	xs, err := rs.Grid(numPoints, rng)
	if err != nil {
		return Series{}, err
	}

	ys, err := rs.lin.EvalAll(xs)
	if err != nil {
		return Series{}, fmt.Errorf("resample: grid %s: %w", rng, err)
	}

	curve := Series{Xs: xs, Ys: ys}
	for _, r := range renderers {
		if err := r.Render(rs.Samples(), curve); err != nil {
			return Series{}, fmt.Errorf("resample: rendering: %w", err)
		}
	}
	return curve, nil
}

// Interpolate is Resample without the grid: it returns only the interpolated
// values, in grid order.
func (rs *Resampler) Interpolate(
	numPoints int, rng Range, renderers ...Renderer,
) ([]float64, error) {
	curve, err := rs.Resample(numPoints, rng, renderers...)
	if err != nil {
		return nil, err
	}
	return curve.Ys, nil
}

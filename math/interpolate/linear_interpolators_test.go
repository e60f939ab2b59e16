package interpolate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	traceXs = []float64{0, 1, 2, 3, 4, 5}
	traceYs = []float64{0, 2, 3, 1, 4, 5}
)

func value(x float64) float64 {
	return 3*x - 7
}

// segment independently evaluates the line through the two samples bracketing
// x.
func segment(xs, ys []float64, x float64) float64 {
	i := 0
	for i < len(xs)-2 && x > xs[i+1] {
		i++
	}
	slope := (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
	return ys[i] + slope*(x-xs[i])
}

func TestLinearOnLine(t *testing.T) {
	xs := []float64{-1, 0, 0.5, 2, 10}
	vals := make([]float64, len(xs))
	for i, x := range xs {
		vals[i] = value(x)
	}
	lin, err := NewLinear(xs, vals)
	require.NoError(t, err)

	for _, x := range []float64{-1, -0.25, 0.1, 0.5, 1.75, 6, 9.99, 10} {
		y, err := lin.Eval(x)
		require.NoError(t, err)
		assert.InDelta(t, value(x), y, 1e-12, "x = %g", x)
	}
}

func TestLinearTrace(t *testing.T) {
	lin, err := NewLinear(traceXs, traceYs)
	require.NoError(t, err)

	table := []struct {
		x, y float64
	}{
		{0, 0}, {0.5, 1}, {1, 2}, {1.5, 2.5}, {2.5, 2}, {3, 1},
		{3.25, 1.75}, {4.5, 4.5}, {5, 5},
	}
	for i, test := range table {
		y, err := lin.Eval(test.x)
		require.NoError(t, err)
		if y != test.y {
			t.Errorf("%d) Expected f(%g) = %g. Got %g.", i+1, test.x, test.y, y)
		}
	}

	for x := 0.0; x <= 5; x += 0.037 {
		y, err := lin.Eval(x)
		require.NoError(t, err)
		assert.InDelta(t, segment(traceXs, traceYs, x), y, 1e-12, "x = %g", x)
	}
}

func TestLinearEndpoints(t *testing.T) {
	xs := []float64{0.1, 0.7, 1.3}
	ys := []float64{1.0 / 3, 2.0 / 7, 5.0 / 11}
	lin, err := NewLinear(xs, ys)
	require.NoError(t, err)

	lo, hi := lin.Domain()
	assert.Equal(t, 0.1, lo)
	assert.Equal(t, 1.3, hi)

	y, err := lin.Eval(lo)
	require.NoError(t, err)
	assert.Equal(t, ys[0], y)

	y, err = lin.Eval(hi)
	require.NoError(t, err)
	assert.Equal(t, ys[2], y)
}

func TestLinearOutOfDomain(t *testing.T) {
	lin, err := NewLinear(traceXs, traceYs)
	require.NoError(t, err)

	for _, x := range []float64{-1, -1e-9, 5 + 1e-9, 6, math.NaN(), math.Inf(1)} {
		_, err := lin.Eval(x)
		assert.True(t, errors.Is(err, ErrOutOfDomain), "x = %g", x)

		var de *DomainError
		if assert.True(t, errors.As(err, &de)) {
			assert.Equal(t, 0.0, de.Lo)
			assert.Equal(t, 5.0, de.Hi)
		}
	}
}

func TestLinearEvalAll(t *testing.T) {
	lin, err := NewLinear(traceXs, traceYs)
	require.NoError(t, err)

	xs := []float64{0.5, 2.5, 4}
	ys, err := lin.EvalAll(xs)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4}, ys)

	buf := make([]float64, 3)
	ys, err = lin.EvalAll(xs, buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4}, buf)
	assert.Same(t, &buf[0], &ys[0], "output written in place")

	buf = []float64{-1, -1, -1}
	_, err = lin.EvalAll([]float64{1, 7, 2}, buf)
	assert.True(t, errors.Is(err, ErrOutOfDomain))
	assert.Equal(t, []float64{-1, -1, -1}, buf, "no partial output")

	assert.Panics(t, func() { lin.EvalAll(xs, make([]float64, 2)) }, "short buffer")
}

func TestNewLinearMalformed(t *testing.T) {
	table := []struct {
		name   string
		xs, ys []float64
	}{
		{"lengths", []float64{0, 1, 2}, []float64{0, 1}},
		{"empty", nil, nil},
		{"single", []float64{1}, []float64{1}},
		{"unsorted", []float64{0, 2, 1}, []float64{0, 1, 2}},
		{"decreasing", []float64{3, 2, 1}, []float64{0, 1, 2}},
		{"repeated", []float64{0, 1, 1, 2}, []float64{0, 1, 2, 3}},
		{"nan", []float64{0, math.NaN(), 2}, []float64{0, 1, 2}},
		{"inf", []float64{0, 1, math.Inf(1)}, []float64{0, 1, 2}},
	}
	for _, test := range table {
		lin, err := NewLinear(test.xs, test.ys)
		assert.Nil(t, lin, test.name)
		assert.True(t, errors.Is(err, ErrMalformed), test.name)
	}
}

func BenchmarkLinearEvalAll100(b *testing.B) {
	lin, err := NewLinear(traceXs, traceYs)
	if err != nil {
		b.Fatal(err.Error())
	}
	xs, out := make([]float64, 100), make([]float64, 100)
	for i := range xs {
		xs[i] = 5 * float64(i) / 99
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lin.EvalAll(xs, out)
	}
}

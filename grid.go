package resample

import (
	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values from lo to hi inclusive. The first
// and last values are exactly lo and hi. If an output array is given, the
// output is written to that array.
//
// n must be positive, and an output array, if given, must have a length of at
// least n. Linspace panics otherwise. Linspace(lo, hi, 1) is []float64{lo}.
func Linspace(lo, hi float64, n int, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, n)}
	}
	buf := out[0][:n]

	if n == 1 {
		buf[0] = lo
		return buf
	}
	floats.Span(buf, lo, hi)
	buf[n-1] = hi
	return buf
}

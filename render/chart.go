// Package render draws resampled curves next to the samples they were
// interpolated from.
package render

import (
	"fmt"

	"github.com/phil-mansfield/resample"
)

// Chart annotations shared by every renderer.
const (
	Title      = "Linear interpolation"
	XLabel     = "X"
	YLabel     = "Y"
	TraceLabel = "Original trace"
	CurveLabel = "Interpolation"

	// Figure size in inches.
	Width, Height = 8, 6
)

var (
	_ resample.Renderer = &File{}
	_ resample.Renderer = &Screen{}
)

func checkSeries(name string, s resample.Series) error {
	if len(s.Xs) != len(s.Ys) {
		return fmt.Errorf(
			"%s series has %d x values but %d y values.",
			name, len(s.Xs), len(s.Ys),
		)
	} else if len(s.Xs) == 0 {
		return fmt.Errorf("%s series is empty.", name)
	}
	return nil
}

func checkChart(trace, curve resample.Series) error {
	if err := checkSeries(TraceLabel, trace); err != nil {
		return err
	}
	return checkSeries(CurveLabel, curve)
}

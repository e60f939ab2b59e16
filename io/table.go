package io

import (
	"bufio"
	"fmt"
	"io"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/resample"
)

// ReadSamples reads the x and y columns of a whitespace-separated text table.
func ReadSamples(fname string, xCol, yCol int) (resample.Series, error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return resample.Series{}, err
	}
	return resample.Series{Xs: cols[0], Ys: cols[1]}, nil
}

// WriteSeries writes s to w as a two-column text table with a commented
// header line.
func WriteSeries(w io.Writer, s resample.Series) error {
	if len(s.Xs) != len(s.Ys) {
		return fmt.Errorf(
			"Series has %d x values but %d y values.", len(s.Xs), len(s.Ys),
		)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# X Y")
	for i := range s.Xs {
		fmt.Fprintf(bw, "%.10g %.10g\n", s.Xs[i], s.Ys[i])
	}
	return bw.Flush()
}

package render

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/phil-mansfield/resample"
)

var (
	traceColor = color.RGBA{B: 255, A: 255}
	curveColor = color.RGBA{R: 255, A: 255}
)

// File saves charts to an image file using gonum/plot. The image format is
// taken from the extension of Path (.png, .svg, .pdf, .eps, .jpg, .tif).
type File struct {
	Path string
}

// Render implements resample.Renderer.
func (f *File) Render(trace, curve resample.Series) error {
	if f.Path == "" {
		return fmt.Errorf("No output path given to File renderer.")
	}
	p, err := Plot(trace, curve)
	if err != nil {
		return err
	}
	return p.Save(Width*vg.Inch, Height*vg.Inch, filepath.Clean(f.Path))
}

// Plot builds the chart for trace and curve without saving it.
func Plot(trace, curve resample.Series) (*plot.Plot, error) {
	if err := checkChart(trace, curve); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Add(plotter.NewGrid())

	sc, err := plotter.NewScatter(trace)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = traceColor
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(3)

	ln, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	ln.LineStyle.Color = curveColor
	ln.LineStyle.Width = vg.Points(1.5)

	p.Add(sc, ln)
	p.Legend.Add(TraceLabel, sc)
	p.Legend.Add(CurveLabel, ln)
	p.Legend.Top = true

	return p, nil
}

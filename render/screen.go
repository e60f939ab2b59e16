package render

import (
	"fmt"
	"os/exec"
	"sync"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/resample"
)

// pyplot keeps a single global script, so only one chart can be built at a
// time.
var pltMu sync.Mutex

// pythonCmd is the interpreter pyplot runs its script with.
const pythonCmd = "python"

// Screen displays charts in a matplotlib window through pyplot. Render does
// not return until the window is closed.
type Screen struct{}

// Render implements resample.Renderer. It returns an error if no python
// interpreter can be found on the PATH.
func (s *Screen) Render(trace, curve resample.Series) error {
	if err := checkChart(trace, curve); err != nil {
		return err
	}
	if _, err := exec.LookPath(pythonCmd); err != nil {
		return fmt.Errorf("Cannot draw on screen: %s", err.Error())
	}

	pltMu.Lock()
	defer pltMu.Unlock()

	plt.Reset()
	plt.Figure(plt.FigSize(Width, Height))
	plt.Plot(trace.Xs, trace.Ys, "ob", plt.Label(TraceLabel))
	plt.Plot(curve.Xs, curve.Ys, "r", plt.LW(2), plt.Label(CurveLabel))
	plt.Title(Title)
	plt.XLabel(XLabel)
	plt.YLabel(YLabel)
	plt.Legend()
	plt.Grid(plt.Axis("both"))
	// Show runs the script.
	plt.Show()

	return nil
}

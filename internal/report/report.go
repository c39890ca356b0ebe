// Package report renders training results for humans: loss-curve PNGs and
// the console evaluation block.
package report

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/tornado-damage-classifier/internal/evaluate"
	"github.com/couchcryptid/tornado-damage-classifier/internal/training"
)

// SaveLossCurves writes a train-vs-test loss line plot for one model to a
// PNG file. The x axis is the iteration number.
func SaveLossCurves(h *training.History, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "binary cross-entropy"

	trainLine, err := plotter.NewLine(lossXYs(h.TrainLoss))
	if err != nil {
		return fmt.Errorf("plot %s: train line: %w", title, err)
	}
	testLine, err := plotter.NewLine(lossXYs(h.TestLoss))
	if err != nil {
		return fmt.Errorf("plot %s: test line: %w", title, err)
	}
	testLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(trainLine, testLine)
	p.Legend.Add("train", trainLine)
	p.Legend.Add("test", testLine)
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("plot %s: save %s: %w", title, path, err)
	}
	return nil
}

func lossXYs(losses []float64) plotter.XYs {
	xys := make(plotter.XYs, len(losses))
	for i, l := range losses {
		xys[i].X = float64(i)
		xys[i].Y = l
	}
	return xys
}

// Format renders one model's evaluation as a console block with accuracy
// and the labelled confusion matrix.
func Format(name string, r evaluate.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", name)
	fmt.Fprintf(&b, "accuracy: %.4f\n", r.Accuracy)
	fmt.Fprintf(&b, "confusion matrix (rows: predicted, cols: actual):\n")
	fmt.Fprintf(&b, "              actual 0   actual 1\n")
	fmt.Fprintf(&b, "  predicted 0   %6d     %6d\n", r.Confusion[0][0], r.Confusion[0][1])
	fmt.Fprintf(&b, "  predicted 1   %6d     %6d\n", r.Confusion[1][0], r.Confusion[1][1])
	return b.String()
}

package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotScores saves a PNG of the per-episode scores with a trailing
// moving average overlaid.
func PlotScores(scores []int, window int, path string) error {
	p := plot.New()
	p.Title.Text = "Training scores"
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Score"

	points := make(plotter.XYs, len(scores))
	for i, s := range scores {
		points[i] = plotter.XY{X: float64(i + 1), Y: float64(s)}
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("report: plotting scores: %w", err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line)
	p.Legend.Add("score", line)

	if len(scores) > 2 {
		avg := MovingAverage(toFloats(scores), window)
		avgPoints := make(plotter.XYs, len(avg))
		for i, v := range avg {
			avgPoints[i] = plotter.XY{X: float64(i + 1), Y: v}
		}
		avgLine, err := plotter.NewLine(avgPoints)
		if err != nil {
			return fmt.Errorf("report: plotting moving average: %w", err)
		}
		avgLine.Color = plotutil.Color(1)
		p.Add(avgLine)
		p.Legend.Add(fmt.Sprintf("moving avg (%d)", window), avgLine)
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: saving plot: %w", err)
	}
	return nil
}

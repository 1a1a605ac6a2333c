package charts

import (
	"fmt"

	"evinsight/domain/dataset"
	"evinsight/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BoxPlots draws one box plot per numeric column, arranged in a
// three-column grid, and writes boxplots.png
func (r *Renderer) BoxPlots(t *dataset.Table, numericCols []string, outDir string) (string, error) {
	var plots []*plot.Plot
	for _, name := range numericCols {
		col, ok := t.Column(name)
		if !ok || col.Kind != dataset.KindNumeric {
			continue
		}
		values := col.NonNullFloats()
		if len(values) == 0 {
			continue
		}

		p := plot.New()
		p.Title.Text = fmt.Sprintf("Box Plot: %s", name)
		p.Y.Label.Text = name

		box, err := plotter.NewBoxPlot(vg.Points(30), 0, plotter.Values(values))
		if err != nil {
			return "", errors.Wrapf(err, "box plot for %q", name)
		}
		p.Add(box, plotter.NewGrid())
		p.NominalX(name)
		plots = append(plots, p)
	}

	if len(plots) == 0 {
		return "", errors.New(errors.CodeRenderError, "no numeric columns to visualize")
	}
	return saveGrid(plots, 3, outDir, BoxPlotsFile)
}

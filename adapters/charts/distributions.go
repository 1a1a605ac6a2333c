package charts

import (
	"fmt"

	"evinsight/domain/dataset"
	"evinsight/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Distributions draws one histogram per numeric column, arranged in a
// three-column grid, and writes distributions.png
func (r *Renderer) Distributions(t *dataset.Table, numericCols []string, outDir string) (string, error) {
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
		p.Title.Text = fmt.Sprintf("Distribution of %s", name)
		p.X.Label.Text = name
		p.Y.Label.Text = "Frequency"

		hist, err := plotter.NewHist(plotter.Values(values), r.Bins)
		if err != nil {
			return "", errors.Wrapf(err, "histogram for %q", name)
		}
		p.Add(hist, plotter.NewGrid())
		plots = append(plots, p)
	}

	if len(plots) == 0 {
		return "", errors.New(errors.CodeRenderError, "no numeric columns to visualize")
	}
	return saveGrid(plots, 3, outDir, DistributionsFile)
}

package charts

import (
	"fmt"

	"evinsight/domain/dataset"
	"evinsight/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Categorical draws a horizontal bar chart of the top-N most frequent
// values for each categorical column, with count labels, arranged in a
// two-column grid, and writes categorical_analysis.png
func (r *Renderer) Categorical(t *dataset.Table, categoricalCols []string, topN int, outDir string) (string, error) {
	if topN < 1 {
		topN = 10
	}

	var plots []*plot.Plot
	for _, name := range categoricalCols {
		col, ok := t.Column(name)
		if !ok || col.Kind != dataset.KindCategorical {
			continue
		}
		values, counts := col.ValueCounts()
		if len(values) == 0 {
			continue
		}
		if len(values) > topN {
			values = values[:topN]
			counts = counts[:topN]
		}

		p, err := topCategoriesPlot(name, values, counts, topN)
		if err != nil {
			return "", errors.Wrapf(err, "bar chart for %q", name)
		}
		plots = append(plots, p)
	}

	if len(plots) == 0 {
		return "", errors.New(errors.CodeRenderError, "no categorical columns to visualize")
	}
	return saveGrid(plots, 2, outDir, CategoricalFile)
}

func topCategoriesPlot(name string, values []string, counts []int, topN int) (*plot.Plot, error) {
	// Reverse so the most frequent category sits at the top of the chart
	n := len(values)
	heights := make(plotter.Values, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		heights[i] = float64(counts[n-1-i])
		labels[i] = values[n-1-i]
	}

	bars, err := plotter.NewBarChart(heights, vg.Points(12))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top %d Categories: %s", topN, name)
	p.X.Label.Text = "Count"
	p.Add(bars)
	p.NominalY(labels...)

	countLabels, err := barCountLabels(heights)
	if err != nil {
		return nil, err
	}
	p.Add(countLabels)
	return p, nil
}

// barCountLabels places the count value at the end of each bar
func barCountLabels(heights plotter.Values) (*plotter.Labels, error) {
	var xys plotter.XYs
	var texts []string
	for i, v := range heights {
		xys = append(xys, plotter.XY{X: v, Y: float64(i)})
		texts = append(texts, fmt.Sprintf(" %d", int(v)))
	}
	return plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
}

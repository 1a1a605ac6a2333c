package charts

import (
	"fmt"
	"math"

	"evinsight/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// corrGrid adapts a correlation matrix to the plotter.GridXYZ interface.
// Row 0 is drawn at the bottom of the figure.
type corrGrid struct {
	matrix [][]float64
}

func (g corrGrid) Dims() (c, r int) { return len(g.matrix), len(g.matrix) }
func (g corrGrid) X(c int) float64  { return float64(c) }
func (g corrGrid) Y(r int) float64  { return float64(r) }

func (g corrGrid) Z(c, r int) float64 {
	v := g.matrix[r][c]
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// nominalTicks labels integer axis positions with column names
type nominalTicks struct {
	names []string
}

func (n nominalTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, name := range n.names {
		v := float64(i)
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: name})
	}
	return ticks
}

// CorrelationHeatmap draws an annotated heatmap of the pairwise Pearson
// matrix with a diverging blue-red scale fixed to [-1, 1] so the colors
// center at zero, and writes correlation_heatmap.png
func (r *Renderer) CorrelationHeatmap(matrix [][]float64, cols []string, outDir string) (string, error) {
	if len(cols) < 2 || len(matrix) != len(cols) {
		return "", errors.New(errors.CodeRenderError, "need at least 2 numeric columns for correlation analysis")
	}

	colorMap := moreland.SmoothBlueRed()
	colorMap.SetMin(-1)
	colorMap.SetMax(1)

	hm := plotter.NewHeatMap(corrGrid{matrix: matrix}, colorMap.Palette(256))
	hm.Min = -1
	hm.Max = 1

	p := plot.New()
	p.Title.Text = "Correlation Matrix - Electric Vehicle Population"
	p.X.Tick.Marker = nominalTicks{names: cols}
	p.Y.Tick.Marker = nominalTicks{names: cols}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = -1
	p.Add(hm)

	labels, err := annotationLabels(matrix)
	if err != nil {
		return "", errors.Wrap(err, "heatmap annotations")
	}
	p.Add(labels)

	side := vg.Length(len(cols))*1.2*vg.Inch + 2*vg.Inch
	return savePlot(p, side, side, outDir, HeatmapFile)
}

// annotationLabels places the rounded coefficient at each cell center
func annotationLabels(matrix [][]float64) (*plotter.Labels, error) {
	var xys plotter.XYs
	var texts []string
	for r := range matrix {
		for c := range matrix[r] {
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			v := matrix[r][c]
			if math.IsNaN(v) {
				texts = append(texts, "n/a")
			} else {
				texts = append(texts, fmt.Sprintf("%.2f", v))
			}
		}
	}
	return plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
}

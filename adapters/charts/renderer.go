// Package charts renders the four standard EDA figures to PNG files
// using gonum/plot. Each renderer writes one file with a fixed name into
// the configured output directory.
package charts

import (
	"os"
	"path/filepath"

	"evinsight/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Fixed output file names
const (
	DistributionsFile = "distributions.png"
	HeatmapFile       = "correlation_heatmap.png"
	CategoricalFile   = "categorical_analysis.png"
	BoxPlotsFile      = "boxplots.png"
)

// Tile size per subplot in the grid figures
const (
	tileWidth  = 5 * vg.Inch
	tileHeight = 3.75 * vg.Inch
)

// Renderer implements ports.ChartRenderer with gonum/plot
type Renderer struct {
	// Bins is the histogram bin count for distribution plots
	Bins int
}

// NewRenderer creates a renderer with the given histogram bin count
func NewRenderer(bins int) *Renderer {
	if bins < 1 {
		bins = 30
	}
	return &Renderer{Bins: bins}
}

// saveGrid lays the plots out row-major in a grid with the given column
// count and writes the composed figure as a PNG. Unused grid cells stay
// blank. Returns the written path.
func saveGrid(plots []*plot.Plot, cols int, dir, name string) (string, error) {
	if len(plots) == 0 {
		return "", errors.New(errors.CodeRenderError, "no plots to draw")
	}
	rows := (len(plots) + cols - 1) / cols

	grid := make([][]*plot.Plot, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]*plot.Plot, cols)
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if idx < len(plots) {
				grid[r][c] = plots[idx]
			}
		}
	}

	img := vgimg.New(vg.Length(cols)*tileWidth, vg.Length(rows)*tileHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}

	canvases := plot.Align(grid, tiles, dc)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] != nil {
				grid[r][c].Draw(canvases[r][c])
			}
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}

// savePlot writes a single plot as a PNG and returns the written path
func savePlot(p *plot.Plot, w, h vg.Length, dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if err := p.Save(w, h, path); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}

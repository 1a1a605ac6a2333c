package ports

import (
	"evinsight/domain/dataset"
)

// ChartRenderer renders the four standard EDA figures to PNG files. Each
// method writes exactly one file into outDir under a fixed name and
// returns the written path. Implementations never mutate the table.
type ChartRenderer interface {
	// Distributions draws one histogram per numeric column in a
	// three-column grid
	Distributions(t *dataset.Table, numericCols []string, outDir string) (string, error)

	// CorrelationHeatmap draws an annotated heatmap of the pairwise
	// Pearson matrix. Requires at least two numeric columns.
	CorrelationHeatmap(matrix [][]float64, cols []string, outDir string) (string, error)

	// Categorical draws a horizontal top-N bar chart per categorical
	// column in a two-column grid, with count labels
	Categorical(t *dataset.Table, categoricalCols []string, topN int, outDir string) (string, error)

	// BoxPlots draws one box plot per numeric column in a three-column grid
	BoxPlots(t *dataset.Table, numericCols []string, outDir string) (string, error)
}

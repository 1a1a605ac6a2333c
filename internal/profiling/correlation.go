package profiling

import (
	"math"

	"evinsight/domain/dataset"

	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix computes the pairwise Pearson correlation matrix for
// the named numeric columns, in the given order. Each pair is computed
// over the rows where both columns are non-null; a pair with fewer than
// two complete observations, or with a zero-variance column, yields NaN.
func CorrelationMatrix(t *dataset.Table, numericCols []string) [][]float64 {
	n := len(numericCols)
	cols := make([]*dataset.Column, n)
	for i, name := range numericCols {
		cols[i], _ = t.Column(name)
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pairwiseCorrelation(cols[i], cols[j])
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}
	return matrix
}

func pairwiseCorrelation(a, b *dataset.Column) float64 {
	var x, y []float64
	for i := 0; i < a.Len() && i < b.Len(); i++ {
		if a.IsNull(i) || b.IsNull(i) {
			continue
		}
		x = append(x, a.Floats[i])
		y = append(y, b.Floats[i])
	}
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

// Round3 rounds a correlation value to three decimals for display
func Round3(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Round(v*1000) / 1000
}

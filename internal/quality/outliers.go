package quality

import (
	"math"

	"evinsight/domain/dataset"
	"evinsight/domain/quality"
	"evinsight/internal/profiling"

	"github.com/montanaflynn/stats"
)

// DetectOutliers flags values in the named numeric columns under the
// chosen method. Rows with nulls are excluded from every computation and
// are never flagged. The table is not mutated; columns with zero
// outliers are omitted from the report.
func DetectOutliers(t *dataset.Table, numericCols []string, method quality.OutlierMethod) quality.OutlierReport {
	report := quality.OutlierReport{
		Method: method,
		Counts: make(map[string]int),
	}

	for _, name := range numericCols {
		col, ok := t.Column(name)
		if !ok || col.Kind != dataset.KindNumeric {
			continue
		}
		values := col.NonNullFloats()
		if len(values) == 0 {
			continue
		}

		var count int
		switch method {
		case quality.MethodIQR:
			count = countIQROutliers(values)
		case quality.MethodZScore:
			count = countZScoreOutliers(values)
		}
		if count > 0 {
			report.Counts[name] = count
		}
	}
	return report
}

// countIQROutliers counts values strictly outside the 1.5*IQR fence.
// Identical values collapse the fence onto the value itself, so nothing
// is flagged.
func countIQROutliers(values []float64) int {
	q1 := profiling.Quantile(values, 0.25)
	q3 := profiling.Quantile(values, 0.75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	count := 0
	for _, v := range values {
		if v < lower || v > upper {
			count++
		}
	}
	return count
}

// countZScoreOutliers counts values with |z| > 3, computed over the
// non-null values. A zero-variance column has no meaningful score and
// reports zero outliers.
func countZScoreOutliers(values []float64) int {
	mean, _ := stats.Mean(values)
	stdDev, _ := stats.StandardDeviation(values)
	if stdDev == 0 || math.IsNaN(stdDev) {
		return 0
	}

	count := 0
	for _, v := range values {
		if math.Abs((v-mean)/stdDev) > 3 {
			count++
		}
	}
	return count
}

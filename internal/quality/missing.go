// Package quality implements the data-quality stages: missing-value
// analysis and resolution, and outlier detection.
package quality

import (
	"sort"

	"evinsight/domain/dataset"
	"evinsight/domain/quality"
)

// AnalyzeMissing computes per-column null counts and percentages,
// keeping only columns with at least one null, ordered by descending
// percentage. The report is computed fresh from current table state on
// every call.
func AnalyzeMissing(t *dataset.Table) quality.MissingReport {
	report := quality.MissingReport{TotalRows: t.RowCount()}

	for _, col := range t.Columns() {
		nulls := col.NullCount()
		if nulls == 0 {
			continue
		}
		pct := 0.0
		if t.RowCount() > 0 {
			pct = float64(nulls) / float64(t.RowCount()) * 100
		}
		report.Columns = append(report.Columns, quality.MissingColumn{
			Column:     col.Name,
			NullCount:  nulls,
			Percentage: pct,
			Kind:       col.Kind.String(),
		})
	}

	// Stable so equal percentages keep table-column order
	sort.SliceStable(report.Columns, func(i, j int) bool {
		return report.Columns[i].Percentage > report.Columns[j].Percentage
	})
	return report
}

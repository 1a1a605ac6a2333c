// Package report assembles the plain-text EDA summary and writes it to
// disk.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"evinsight/domain/core"
	"evinsight/domain/dataset"
	"evinsight/internal/profiling"
)

// FileName is the fixed report file name, written into the output dir
const FileName = "eda_report.txt"

// maxKeyColumns caps how many numeric columns get per-statistic lines
const maxKeyColumns = 5

// Build assembles the report text: shape, memory, data-quality totals,
// and mean/median/std for up to the first five numeric columns in table
// order.
func Build(t *dataset.Table, numeric, categorical []string, runID core.RunID) string {
	var sb strings.Builder
	rule := strings.Repeat("=", 80)

	sb.WriteString("\nElectric Vehicle Population - EDA Report\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("Run: %s\n", runID))

	sb.WriteString("\nDataset Overview:\n-----------------\n")
	sb.WriteString(fmt.Sprintf("- Total Records: %d\n", t.RowCount()))
	sb.WriteString(fmt.Sprintf("- Total Features: %d\n", t.ColumnCount()))
	sb.WriteString(fmt.Sprintf("- Memory Usage: %.2f MB\n", float64(t.MemoryBytes())/(1024*1024)))
	sb.WriteString(fmt.Sprintf("- Numeric Columns: %d\n", len(numeric)))
	sb.WriteString(fmt.Sprintf("- Categorical Columns: %d\n", len(categorical)))

	totalCells := t.RowCount() * t.ColumnCount()
	missing := t.TotalNulls()
	missingPct := 0.0
	if totalCells > 0 {
		missingPct = float64(missing) / float64(totalCells) * 100
	}
	sb.WriteString("\nData Quality:\n-------------\n")
	sb.WriteString(fmt.Sprintf("- Missing Values: %d (%.2f%%)\n", missing, missingPct))
	sb.WriteString(fmt.Sprintf("- Duplicate Rows: %d\n", t.DuplicateRows()))

	sb.WriteString("\nKey Statistics:\n---------------\n")
	shown := numeric
	if len(shown) > maxKeyColumns {
		shown = shown[:maxKeyColumns]
	}
	for _, name := range shown {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		values := col.NonNullFloats()
		sb.WriteString(fmt.Sprintf("\n%s:\n", name))
		if len(values) == 0 {
			sb.WriteString("  (no non-null values)\n")
			continue
		}
		m, err := profiling.ColumnMoments(values)
		if err != nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("  Mean: %.2f\n", m.Mean))
		sb.WriteString(fmt.Sprintf("  Median: %.2f\n", m.Median))
		sb.WriteString(fmt.Sprintf("  Std: %.2f\n", m.StdDev))
	}

	return sb.String()
}

// Write stores the report verbatim at dir/FileName, overwriting any
// existing file, and returns the written path
func Write(dir, content string) (string, error) {
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

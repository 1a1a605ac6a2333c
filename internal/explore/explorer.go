// Package explore implements the initial-exploration stage: row samples,
// column dtypes, memory footprint, and summary statistics.
package explore

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"evinsight/domain/dataset"
	"evinsight/internal/profiling"
)

const sampleRows = 5

// Summarize prints the structural overview of the table: head and tail
// samples, dtypes, memory footprint in megabytes, and summary statistics
// for numeric and (when present) categorical columns.
func Summarize(w io.Writer, t *dataset.Table) {
	numeric, categorical := t.Classify()

	fmt.Fprintf(w, "\nFirst %d rows of the dataset:\n", sampleRows)
	printRows(w, t, headIndices(t))

	fmt.Fprintf(w, "\nLast %d rows of the dataset:\n", sampleRows)
	printRows(w, t, tailIndices(t))

	fmt.Fprintf(w, "\nDataset information:\n")
	fmt.Fprintf(w, "  Total rows: %d\n", t.RowCount())
	fmt.Fprintf(w, "  Total columns: %d\n", t.ColumnCount())
	fmt.Fprintf(w, "  Memory usage: %.2f MB\n", float64(t.MemoryBytes())/(1024*1024))

	fmt.Fprintf(w, "\nColumn data types:\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, col := range t.Columns() {
		fmt.Fprintf(tw, "  %s\t%s\n", col.Name, col.Kind)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nNumeric columns (%d): %s\n", len(numeric), strings.Join(numeric, ", "))
	fmt.Fprintf(w, "Categorical columns (%d): %s\n", len(categorical), strings.Join(categorical, ", "))

	if len(numeric) > 0 {
		fmt.Fprintf(w, "\nStatistical summary (numeric):\n")
		printNumericSummary(w, t, numeric)
	}
	if len(categorical) > 0 {
		fmt.Fprintf(w, "\nCategorical columns summary:\n")
		printCategoricalSummary(w, t, categorical)
	}
}

func headIndices(t *dataset.Table) []int {
	n := t.RowCount()
	if n > sampleRows {
		n = sampleRows
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func tailIndices(t *dataset.Table) []int {
	total := t.RowCount()
	start := total - sampleRows
	if start < 0 {
		start = 0
	}
	idx := make([]int, 0, total-start)
	for i := start; i < total; i++ {
		idx = append(idx, i)
	}
	return idx
}

func printRows(w io.Writer, t *dataset.Table, indices []int) {
	if len(indices) == 0 {
		fmt.Fprintln(w, "  (no rows)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := make([]string, 0, t.ColumnCount()+1)
	header = append(header, "")
	header = append(header, t.ColumnNames()...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, i := range indices {
		cells := make([]string, 0, t.ColumnCount()+1)
		cells = append(cells, fmt.Sprintf("%d", i))
		for _, col := range t.Columns() {
			cells = append(cells, col.Cell(i))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

func printNumericSummary(w io.Writer, t *dataset.Table, numeric []string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  column\tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax")
	for _, name := range numeric {
		col, _ := t.Column(name)
		values := col.NonNullFloats()
		if len(values) == 0 {
			fmt.Fprintf(tw, "  %s\t0\t-\t-\t-\t-\t-\t-\t-\n", name)
			continue
		}
		m, err := profiling.ColumnMoments(values)
		if err != nil {
			continue
		}
		fmt.Fprintf(tw, "  %s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			name, m.Count, m.Mean, m.StdDev, m.Min, m.Q25, m.Median, m.Q75, m.Max)
	}
	tw.Flush()
}

func printCategoricalSummary(w io.Writer, t *dataset.Table, categorical []string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  column\tcount\tunique\ttop\tfreq")
	for _, name := range categorical {
		col, _ := t.Column(name)
		nonNull := len(col.NonNullStrings())
		values, counts := col.ValueCounts()
		top, freq := "-", 0
		if len(values) > 0 {
			top, freq = values[0], counts[0]
		}
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%s\t%d\n", name, nonNull, col.UniqueCount(), top, freq)
	}
	tw.Flush()
}

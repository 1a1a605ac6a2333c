// Package session coordinates the EDA pipeline. A Session owns the one
// mutable table produced by the loader plus the numeric/categorical
// classification derived from it, and runs the analysis stages against
// that shared state in caller-controlled order.
package session

import (
	"fmt"
	"io"
	"os"
	"strings"

	"evinsight/adapters/charts"
	"evinsight/adapters/tabular"
	"evinsight/domain/core"
	"evinsight/domain/dataset"
	"evinsight/domain/quality"
	"evinsight/internal"
	"evinsight/internal/config"
	"evinsight/internal/errors"
	"evinsight/internal/explore"
	"evinsight/internal/profiling"
	qualitystage "evinsight/internal/quality"
	"evinsight/internal/report"
	"evinsight/ports"
)

// Session is the stateful EDA coordinator. Stages read the shared table;
// only HandleMissing mutates it.
type Session struct {
	cfg    *config.Config
	logger *internal.Logger
	out    io.Writer
	reader ports.TableReader
	charts ports.ChartRenderer
	runID  core.RunID

	table           *dataset.Table
	numericCols     []string
	categoricalCols []string
}

// New creates a session with the default file reader and chart renderer
func New(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	return NewWithDeps(cfg, tabular.NewFileReader(), charts.NewRenderer(cfg.HistBins), os.Stdout)
}

// NewWithDeps creates a session with explicit dependencies
func NewWithDeps(cfg *config.Config, reader ports.TableReader, renderer ports.ChartRenderer, out io.Writer) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Session{
		cfg:    cfg,
		logger: internal.DefaultLogger,
		out:    out,
		reader: reader,
		charts: renderer,
		runID:  core.NewRunID(),
	}
}

// RunID returns the identifier tagging this session's output
func (s *Session) RunID() core.RunID {
	return s.runID
}

// Table returns the currently loaded table, nil when nothing is loaded
func (s *Session) Table() *dataset.Table {
	return s.table
}

// NumericColumns returns the numeric column names from the last
// classification
func (s *Session) NumericColumns() []string {
	return s.numericCols
}

// CategoricalColumns returns the categorical column names from the last
// classification
func (s *Session) CategoricalColumns() []string {
	return s.categoricalCols
}

func (s *Session) banner(title string) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(s.out, "\n%s\n%s\n%s\n", rule, title, rule)
}

// guard reports whether a table is loaded, printing guidance when not
func (s *Session) guard() bool {
	if s.table == nil {
		fmt.Fprintln(s.out, "No dataset loaded. Load data first with Load().")
		return false
	}
	return true
}

func (s *Session) refreshClassification() {
	s.numericCols, s.categoricalCols = s.table.Classify()
}

// Load reads the file at path into the session, replacing any previously
// loaded table. Failures are reported as guidance messages and leave the
// prior state intact; the caller checks the return value before
// proceeding.
func (s *Session) Load(path string) *dataset.Table {
	if path == "" {
		fmt.Fprintln(s.out, "Please provide a data path to load the dataset.")
		fmt.Fprintln(s.out, "Example: session.Load(\"path/to/ev_population.csv\")")
		return nil
	}

	table, err := s.reader.Read(path)
	if err != nil {
		switch errors.GetCode(err) {
		case errors.CodeFileNotFound:
			fmt.Fprintf(s.out, "Error: file not found at %s\n", path)
		default:
			fmt.Fprintf(s.out, "Error loading data: %v\n", err)
		}
		s.logger.Error("load failed for %s: %v", path, err)
		return nil
	}

	s.table = table
	s.refreshClassification()
	fmt.Fprintln(s.out, "Data loaded successfully!")
	fmt.Fprintf(s.out, "  Shape: %d rows x %d columns\n", table.RowCount(), table.ColumnCount())
	return table
}

// Explore prints the structural overview and recomputes the
// numeric/categorical column lists used by every later stage
func (s *Session) Explore() {
	if !s.guard() {
		return
	}
	s.banner("INITIAL DATA EXPLORATION")
	explore.Summarize(s.out, s.table)
	s.refreshClassification()
}

// CheckMissing reports per-column null counts and percentages, with a
// console bar chart when any column has nulls. The report is empty when
// the table is complete.
func (s *Session) CheckMissing() quality.MissingReport {
	if !s.guard() {
		return quality.MissingReport{}
	}
	s.banner("MISSING VALUES ANALYSIS")

	rep := qualitystage.AnalyzeMissing(s.table)
	if rep.IsClean() {
		fmt.Fprintln(s.out, "No missing values found in the dataset!")
		return rep
	}

	fmt.Fprintf(s.out, "Found missing values in %d columns:\n\n", len(rep.Columns))
	fmt.Fprintf(s.out, "  %-30s %10s %10s  %s\n", "column", "missing", "percent", "dtype")
	for _, mc := range rep.Columns {
		fmt.Fprintf(s.out, "  %-30s %10d %9.2f%%  %s\n", mc.Column, mc.NullCount, mc.Percentage, mc.Kind)
	}

	fmt.Fprintln(s.out, "\nMissing percentage by column:")
	printTextBars(s.out, rep)
	return rep
}

// printTextBars renders the missing-value bar chart as console text;
// displayed, never persisted
func printTextBars(w io.Writer, rep quality.MissingReport) {
	const barWidth = 40
	for _, mc := range rep.Columns {
		n := int(mc.Percentage / 100 * barWidth)
		if n < 1 {
			n = 1
		}
		fmt.Fprintf(w, "  %-30s %s %.2f%%\n", mc.Column, strings.Repeat("#", n), mc.Percentage)
	}
}

// HandleMissing applies an imputation strategy to the shared table in
// place, reporting before/after null totals. Columns with no non-null
// values cannot be filled and are reported as skipped.
func (s *Session) HandleMissing(strategy quality.Strategy) (quality.ResolveResult, error) {
	if !s.guard() {
		return quality.ResolveResult{}, errors.NoTable()
	}
	s.banner("HANDLING MISSING VALUES")

	result, err := qualitystage.Resolve(s.table, s.numericCols, s.categoricalCols, strategy)
	if err != nil {
		fmt.Fprintf(s.out, "Error handling missing values: %v\n", err)
		return result, err
	}

	for _, action := range result.Actions {
		fmt.Fprintf(s.out, "  %s\n", action.Detail)
	}
	for _, col := range result.Skipped {
		fmt.Fprintf(s.out, "  Warning: column %q is entirely null and was skipped\n", col)
		s.logger.Warn("no defined fill value for all-null column %q", col)
	}
	if result.RowsDropped > 0 {
		s.refreshClassification()
	}

	fmt.Fprintf(s.out, "\nMissing values: %d -> %d\n", result.MissingBefore, result.MissingAfter)
	return result, nil
}

// DetectOutliers flags numeric values under the chosen method and
// reports per-column counts. The table is not mutated.
func (s *Session) DetectOutliers(method quality.OutlierMethod) quality.OutlierReport {
	if !s.guard() {
		return quality.OutlierReport{}
	}
	s.banner("OUTLIER DETECTION")

	rep := qualitystage.DetectOutliers(s.table, s.numericCols, method)
	if len(rep.Counts) == 0 {
		fmt.Fprintln(s.out, "No significant outliers detected")
		return rep
	}

	total := s.table.RowCount()
	for _, name := range s.numericCols {
		count, ok := rep.Counts[name]
		if !ok {
			continue
		}
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		fmt.Fprintf(s.out, "  %q: %d outliers (%.2f%%)\n", name, count, pct)
	}
	return rep
}

// StatisticalAnalysis prints distribution metrics for numeric columns,
// unique-value counts for every column, and the Pearson correlation
// matrix when at least two numeric columns exist
func (s *Session) StatisticalAnalysis() {
	if !s.guard() {
		return
	}
	s.banner("STATISTICAL ANALYSIS")

	fmt.Fprintln(s.out, "\nDistribution metrics (numeric columns):")
	for _, name := range s.numericCols {
		col, _ := s.table.Column(name)
		values := col.NonNullFloats()
		fmt.Fprintf(s.out, "\n  %s:\n", name)
		if len(values) == 0 {
			fmt.Fprintln(s.out, "    (no non-null values)")
			continue
		}
		m, err := profiling.ColumnMoments(values)
		if err != nil {
			s.logger.Error("moments for %q: %v", name, err)
			continue
		}
		fmt.Fprintf(s.out, "    Mean: %.2f\n", m.Mean)
		fmt.Fprintf(s.out, "    Median: %.2f\n", m.Median)
		fmt.Fprintf(s.out, "    Std Dev: %.2f\n", m.StdDev)
		fmt.Fprintf(s.out, "    Skewness: %.2f %s\n", m.Skewness, profiling.SkewLabel(m.Skewness))
		fmt.Fprintf(s.out, "    Kurtosis: %.2f\n", m.Kurtosis)
	}

	fmt.Fprintln(s.out, "\nUnique values count:")
	total := s.table.RowCount()
	for _, col := range s.table.Columns() {
		unique := col.UniqueCount()
		pct := 0.0
		if total > 0 {
			pct = float64(unique) / float64(total) * 100
		}
		fmt.Fprintf(s.out, "  %s: %d unique values (%.1f%%)\n", col.Name, unique, pct)
	}

	if len(s.numericCols) > 1 {
		fmt.Fprintln(s.out, "\nCorrelation analysis:")
		fmt.Fprintln(s.out, "  (Pearson coefficients between numeric variables)")
		matrix := profiling.CorrelationMatrix(s.table, s.numericCols)
		printMatrix(s.out, matrix, s.numericCols)
	}
}

func printMatrix(w io.Writer, matrix [][]float64, cols []string) {
	fmt.Fprintf(w, "  %-20s", "")
	for _, name := range cols {
		fmt.Fprintf(w, " %14s", truncate(name, 14))
	}
	fmt.Fprintln(w)
	for i, name := range cols {
		fmt.Fprintf(w, "  %-20s", truncate(name, 20))
		for j := range cols {
			fmt.Fprintf(w, " %14.3f", profiling.Round3(matrix[i][j]))
		}
		fmt.Fprintln(w)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// VisualizeDistributions renders the per-column histograms
func (s *Session) VisualizeDistributions() error {
	if !s.guard() {
		return errors.NoTable()
	}
	s.banner("VISUALIZING DISTRIBUTIONS")
	if len(s.numericCols) == 0 {
		fmt.Fprintln(s.out, "No numeric columns to visualize")
		return nil
	}
	path, err := s.charts.Distributions(s.table, s.numericCols, s.cfg.OutputDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Distribution plots saved as '%s'\n", path)
	return nil
}

// VisualizeCorrelations renders the annotated correlation heatmap;
// requires at least two numeric columns
func (s *Session) VisualizeCorrelations() error {
	if !s.guard() {
		return errors.NoTable()
	}
	if len(s.numericCols) < 2 {
		fmt.Fprintln(s.out, "Need at least 2 numeric columns for correlation analysis")
		return nil
	}
	s.banner("CORRELATION HEATMAP")
	matrix := profiling.CorrelationMatrix(s.table, s.numericCols)
	path, err := s.charts.CorrelationHeatmap(matrix, s.numericCols, s.cfg.OutputDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Correlation heatmap saved as '%s'\n", path)
	return nil
}

// VisualizeCategorical renders top-N bar charts per categorical column.
// topN <= 0 uses the configured default.
func (s *Session) VisualizeCategorical(topN int) error {
	if !s.guard() {
		return errors.NoTable()
	}
	if len(s.categoricalCols) == 0 {
		fmt.Fprintln(s.out, "No categorical columns to visualize")
		return nil
	}
	if topN <= 0 {
		topN = s.cfg.TopN
	}
	s.banner("CATEGORICAL DATA VISUALIZATION")
	path, err := s.charts.Categorical(s.table, s.categoricalCols, topN, s.cfg.OutputDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Categorical analysis saved as '%s'\n", path)
	return nil
}

// VisualizeBoxPlots renders the per-column box plots
func (s *Session) VisualizeBoxPlots() error {
	if !s.guard() {
		return errors.NoTable()
	}
	s.banner("BOX PLOTS (Outlier Detection)")
	if len(s.numericCols) == 0 {
		fmt.Fprintln(s.out, "No numeric columns to visualize")
		return nil
	}
	path, err := s.charts.BoxPlots(s.table, s.numericCols, s.cfg.OutputDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Box plots saved as '%s'\n", path)
	return nil
}

// GenerateReport builds the text report, prints it, and overwrites the
// report file in the output directory
func (s *Session) GenerateReport() error {
	if !s.guard() {
		return errors.NoTable()
	}
	s.banner("COMPREHENSIVE EDA REPORT")

	content := report.Build(s.table, s.numericCols, s.categoricalCols, s.runID)
	fmt.Fprint(s.out, content)

	path, err := report.Write(s.cfg.OutputDir, content)
	if err != nil {
		return errors.Wrap(err, "failed to save report")
	}
	fmt.Fprintf(s.out, "\nReport saved as '%s'\n", path)
	return nil
}

// RunCompleteEDA runs every stage in fixed order with default
// parameters. A failing stage is logged and later stages still run; the
// only hard precondition is a loaded table.
func (s *Session) RunCompleteEDA() {
	s.banner("RUNNING COMPLETE EDA PIPELINE")
	if s.table == nil {
		fmt.Fprintln(s.out, "No data loaded. Please load data first.")
		return
	}

	s.Explore()
	s.CheckMissing()
	if _, err := s.HandleMissing(quality.Auto()); err != nil {
		s.logger.Error("missing-value resolution failed: %v", err)
	}
	s.DetectOutliers(quality.MethodIQR)
	s.StatisticalAnalysis()

	for _, step := range []func() error{
		s.VisualizeDistributions,
		s.VisualizeCorrelations,
		func() error { return s.VisualizeCategorical(0) },
		s.VisualizeBoxPlots,
		s.GenerateReport,
	} {
		if err := step(); err != nil {
			s.logger.Error("pipeline stage failed: %v", err)
		}
	}

	s.banner("COMPLETE EDA FINISHED!")
	fmt.Fprintln(s.out, "\nGenerated files:")
	fmt.Fprintf(s.out, "  - %s\n", charts.DistributionsFile)
	fmt.Fprintf(s.out, "  - %s\n", charts.HeatmapFile)
	fmt.Fprintf(s.out, "  - %s\n", charts.CategoricalFile)
	fmt.Fprintf(s.out, "  - %s\n", charts.BoxPlotsFile)
	fmt.Fprintf(s.out, "  - %s\n", report.FileName)
}

package main

import (
	"fmt"
	"os"

	"evinsight/domain/quality"
	"evinsight/internal/config"
	"evinsight/internal/session"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "evinsight",
		Short: "Guided exploratory data analysis for electric-vehicle population datasets",
		Long: `evinsight performs exploratory data analysis on tabular (CSV or Excel)
electric-vehicle population datasets: structure and quality summaries,
missing-value imputation, outlier detection, descriptive and correlation
statistics, standard charts, and a text report.

Typical usage:

  evinsight run ev_population.csv

runs the complete pipeline and writes:
  - distributions.png
  - correlation_heatmap.png
  - categorical_analysis.png
  - boxplots.png
  - eda_report.txt

Individual stages are available as subcommands; see 'evinsight help'.

Expected dataset columns (typical EV population data): VIN, County, City,
State, Postal Code, Model Year, Make, Model, Electric Vehicle Type, CAFV
Eligibility, Electric Range, Base MSRP, Legislative District, DOL Vehicle
ID, Vehicle Location, Electric Utility, 2020 Census Tract. None are
required: columns are classified numeric or categorical by value, not by
name.`,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newExploreCmd(),
		newMissingCmd(),
		newOutliersCmd(),
		newStatsCmd(),
		newPlotCmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newSession builds a session from env config with flag overrides applied
func newSession(outDir string, topN int) (*session.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}
	if topN > 0 {
		cfg.TopN = topN
	}
	return session.New(cfg), nil
}

// loadSession builds a session and loads the dataset, failing when the
// file cannot be loaded
func loadSession(path, outDir string, topN int) (*session.Session, error) {
	s, err := newSession(outDir, topN)
	if err != nil {
		return nil, err
	}
	if s.Load(path) == nil {
		return nil, fmt.Errorf("could not load dataset from %s", path)
	}
	return s, nil
}

func newRunCmd() *cobra.Command {
	var outDir string
	var topN int

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run the complete EDA pipeline",
		Long: `Run every stage in fixed order: exploration, missing-value analysis,
automatic imputation, IQR outlier detection, statistical analysis, all
four chart renderers, and the text report.

Example: evinsight run ev_population.csv --out ./analysis`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(args[0], outDir, topN)
			if err != nil {
				return err
			}
			s.RunCompleteEDA()
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Directory for generated files (default: current directory)")
	cmd.Flags().IntVar(&topN, "top-n", 0, "Categories per categorical chart (default: 10)")

	return cmd
}

func newExploreCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "explore [file]",
		Short: "Print structure, dtypes, memory footprint, and summary statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(args[0], outDir, 0)
			if err != nil {
				return err
			}
			s.Explore()
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Directory for generated files")

	return cmd
}

func newMissingCmd() *cobra.Command {
	var fix string

	cmd := &cobra.Command{
		Use:   "missing [file]",
		Short: "Analyze missing values, optionally applying an imputation strategy",
		Long: `Report per-column null counts and percentages. With --fix, apply an
imputation strategy afterwards: auto, drop, fill_mean, fill_median, or
fill_mode.

Example: evinsight missing ev_population.csv --fix auto`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(args[0], "", 0)
			if err != nil {
				return err
			}
			s.CheckMissing()
			if fix == "" {
				return nil
			}
			strategy, err := quality.ParseStrategy(fix)
			if err != nil {
				return err
			}
			_, err = s.HandleMissing(strategy)
			return err
		},
	}

	cmd.Flags().StringVar(&fix, "fix", "", "Imputation strategy to apply after analysis")

	return cmd
}

func newOutliersCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "outliers [file]",
		Short: "Detect outliers in numeric columns",
		Long: `Flag numeric values outside an interquartile-range fence (iqr) or with
an absolute standard score above 3 (zscore).

Example: evinsight outliers ev_population.csv --method zscore`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := quality.ParseOutlierMethod(method)
			if err != nil {
				return err
			}
			s, err := loadSession(args[0], "", 0)
			if err != nil {
				return err
			}
			s.DetectOutliers(m)
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "iqr", "Detection method: iqr or zscore")

	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Print distribution metrics, unique counts, and the correlation matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(args[0], "", 0)
			if err != nil {
				return err
			}
			s.StatisticalAnalysis()
			return nil
		},
	}
}

func newPlotCmd() *cobra.Command {
	var outDir string
	var topN int

	cmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "Render all four chart files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(args[0], outDir, topN)
			if err != nil {
				return err
			}
			for _, step := range []func() error{
				s.VisualizeDistributions,
				s.VisualizeCorrelations,
				func() error { return s.VisualizeCategorical(0) },
				s.VisualizeBoxPlots,
			} {
				if err := step(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Directory for generated files")
	cmd.Flags().IntVar(&topN, "top-n", 0, "Categories per categorical chart")

	return cmd
}

func newReportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Generate the plain-text EDA report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(args[0], outDir, 0)
			if err != nil {
				return err
			}
			return s.GenerateReport()
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Directory for generated files")

	return cmd
}

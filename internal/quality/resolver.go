package quality

import (
	"fmt"

	"evinsight/domain/dataset"
	"evinsight/domain/quality"
	"evinsight/internal/errors"

	"github.com/montanaflynn/stats"
)

// Resolve applies an imputation strategy to the table in place. It is
// the only stage permitted to mutate the shared table. Columns whose
// every value is null have no defined fill value; they are skipped and
// reported in the result rather than silently ignored.
func Resolve(t *dataset.Table, numericCols, categoricalCols []string, strategy quality.Strategy) (quality.ResolveResult, error) {
	result := quality.ResolveResult{
		Strategy:      strategy,
		MissingBefore: t.TotalNulls(),
	}

	var err error
	switch strategy.Kind() {
	case quality.StrategyAuto:
		resolveAuto(t, numericCols, categoricalCols, &result)
	case quality.StrategyDrop:
		result.RowsDropped = t.DropNullRows()
		result.Actions = append(result.Actions, quality.ResolveAction{
			Detail: fmt.Sprintf("dropped %d rows with missing values", result.RowsDropped),
		})
	case quality.StrategyFillMean:
		fillNumeric(t, numericCols, quality.MethodMean, &result)
	case quality.StrategyFillMedian:
		fillNumeric(t, numericCols, quality.MethodMedian, &result)
	case quality.StrategyFillMode:
		resolveFillMode(t, &result)
	case quality.StrategyPerColumn:
		err = resolvePerColumn(t, &result, strategy)
	}
	if err != nil {
		return result, err
	}

	result.MissingAfter = t.TotalNulls()
	return result, nil
}

// resolveAuto fills numeric columns with their median and categorical
// columns with their most frequent value
func resolveAuto(t *dataset.Table, numericCols, categoricalCols []string, result *quality.ResolveResult) {
	for _, name := range numericCols {
		col, ok := t.Column(name)
		if !ok || col.NullCount() == 0 {
			continue
		}
		fillNumericColumn(col, quality.MethodMedian, result)
	}
	for _, name := range categoricalCols {
		col, ok := t.Column(name)
		if !ok || col.NullCount() == 0 {
			continue
		}
		fillCategoricalMode(col, result)
	}
}

// fillNumeric fills nulls in the listed numeric columns with the given
// statistic; non-numeric columns are untouched
func fillNumeric(t *dataset.Table, numericCols []string, method quality.ColumnMethod, result *quality.ResolveResult) {
	for _, name := range numericCols {
		col, ok := t.Column(name)
		if !ok || col.Kind != dataset.KindNumeric || col.NullCount() == 0 {
			continue
		}
		fillNumericColumn(col, method, result)
	}
}

// resolveFillMode fills every column with its most frequent value,
// regardless of kind
func resolveFillMode(t *dataset.Table, result *quality.ResolveResult) {
	for _, col := range t.Columns() {
		if col.NullCount() == 0 {
			continue
		}
		if col.Kind == dataset.KindNumeric {
			fillNumericColumn(col, quality.MethodMode, result)
		} else {
			fillCategoricalMode(col, result)
		}
	}
}

// resolvePerColumn applies the mapping form: each listed column present
// in the table with at least one null gets its declared method
func resolvePerColumn(t *dataset.Table, result *quality.ResolveResult, strategy quality.Strategy) error {
	names, methods := strategy.ColumnMethods()
	for _, name := range names {
		col, ok := t.Column(name)
		if !ok || col.NullCount() == 0 {
			continue
		}
		method := methods[name]

		if method == quality.MethodDrop {
			dropped := t.DropNullRows(name)
			result.RowsDropped += dropped
			result.Actions = append(result.Actions, quality.ResolveAction{
				Column: name,
				Detail: fmt.Sprintf("dropped %d rows with missing %q", dropped, name),
			})
			continue
		}

		if col.Kind == dataset.KindNumeric {
			fillNumericColumn(col, method, result)
			continue
		}
		if method != quality.MethodMode {
			return errors.New(errors.CodeBadStrategy,
				fmt.Sprintf("method %q not applicable to categorical column %q", method, name))
		}
		fillCategoricalMode(col, result)
	}
	return nil
}

func fillNumericColumn(col *dataset.Column, method quality.ColumnMethod, result *quality.ResolveResult) {
	values := col.NonNullFloats()
	if len(values) == 0 {
		result.Skipped = append(result.Skipped, col.Name)
		return
	}

	var fill float64
	switch method {
	case quality.MethodMean:
		fill, _ = stats.Mean(values)
	case quality.MethodMedian:
		fill, _ = stats.Median(values)
	case quality.MethodMode:
		fill, _ = col.ModeFloat()
	}
	col.FillNulls(fill)
	result.Actions = append(result.Actions, quality.ResolveAction{
		Column: col.Name,
		Detail: fmt.Sprintf("filled %q with %s (%.2f)", col.Name, method, fill),
	})
}

func fillCategoricalMode(col *dataset.Column, result *quality.ResolveResult) {
	mode, ok := col.ModeString()
	if !ok {
		result.Skipped = append(result.Skipped, col.Name)
		return
	}
	col.FillNullStrings(mode)
	result.Actions = append(result.Actions, quality.ResolveAction{
		Column: col.Name,
		Detail: fmt.Sprintf("filled %q with mode (%s)", col.Name, mode),
	})
}

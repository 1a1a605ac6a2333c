// Package quality defines the data-quality vocabulary shared by the
// missing-value and outlier stages: imputation strategies, detection
// methods, and the reports they produce.
package quality

import (
	"sort"

	"evinsight/internal/errors"
)

// StrategyKind enumerates the closed set of imputation policies. The set
// is closed on purpose: an unknown policy token is a construction-time
// error, never a silently ignored branch.
type StrategyKind int

const (
	// StrategyAuto fills numeric columns with their median and
	// categorical columns with their most frequent value
	StrategyAuto StrategyKind = iota
	// StrategyDrop removes every row containing any null
	StrategyDrop
	// StrategyFillMean fills numeric columns with their mean
	StrategyFillMean
	// StrategyFillMedian fills numeric columns with their median
	StrategyFillMedian
	// StrategyFillMode fills every column with its most frequent value
	StrategyFillMode
	// StrategyPerColumn applies a per-column method mapping
	StrategyPerColumn
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyAuto:
		return "auto"
	case StrategyDrop:
		return "drop"
	case StrategyFillMean:
		return "fill_mean"
	case StrategyFillMedian:
		return "fill_median"
	case StrategyFillMode:
		return "fill_mode"
	case StrategyPerColumn:
		return "per_column"
	}
	return "unknown"
}

// ColumnMethod is the per-column imputation method used by the mapping
// form of a strategy
type ColumnMethod int

const (
	MethodMean ColumnMethod = iota
	MethodMedian
	MethodMode
	MethodDrop
)

func (m ColumnMethod) String() string {
	switch m {
	case MethodMean:
		return "mean"
	case MethodMedian:
		return "median"
	case MethodMode:
		return "mode"
	case MethodDrop:
		return "drop"
	}
	return "unknown"
}

// Strategy is an imputation policy: either one of the uniform kinds or a
// per-column mapping. Construct through the Strategy constructors or
// ParseStrategy so an invalid policy can never reach the resolver.
type Strategy struct {
	kind      StrategyKind
	perColumn map[string]ColumnMethod
}

// Kind returns the strategy kind
func (s Strategy) Kind() StrategyKind {
	return s.kind
}

// ColumnMethods returns the per-column mapping with its column names in
// deterministic (sorted) order. Empty for uniform strategies.
func (s Strategy) ColumnMethods() ([]string, map[string]ColumnMethod) {
	names := make([]string, 0, len(s.perColumn))
	for name := range s.perColumn {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, s.perColumn
}

func (s Strategy) String() string {
	return s.kind.String()
}

// Auto returns the automatic strategy (median for numeric, mode for categorical)
func Auto() Strategy {
	return Strategy{kind: StrategyAuto}
}

// Drop returns the drop-incomplete-rows strategy
func Drop() Strategy {
	return Strategy{kind: StrategyDrop}
}

// FillMean returns the fill-numeric-with-mean strategy
func FillMean() Strategy {
	return Strategy{kind: StrategyFillMean}
}

// FillMedian returns the fill-numeric-with-median strategy
func FillMedian() Strategy {
	return Strategy{kind: StrategyFillMedian}
}

// FillMode returns the fill-everything-with-mode strategy
func FillMode() Strategy {
	return Strategy{kind: StrategyFillMode}
}

// PerColumn returns a strategy applying a named method to each listed
// column. Columns not listed are left untouched by the resolver.
func PerColumn(methods map[string]ColumnMethod) Strategy {
	copied := make(map[string]ColumnMethod, len(methods))
	for k, v := range methods {
		copied[k] = v
	}
	return Strategy{kind: StrategyPerColumn, perColumn: copied}
}

// ParseStrategy converts a policy token into a Strategy. Unknown tokens
// are rejected with a BAD_STRATEGY error.
func ParseStrategy(token string) (Strategy, error) {
	switch token {
	case "auto":
		return Auto(), nil
	case "drop":
		return Drop(), nil
	case "fill_mean":
		return FillMean(), nil
	case "fill_median":
		return FillMedian(), nil
	case "fill_mode":
		return FillMode(), nil
	}
	return Strategy{}, errors.BadStrategy(token)
}

// ParseColumnMethod converts a per-column method token. Unknown tokens
// are rejected with a BAD_STRATEGY error.
func ParseColumnMethod(token string) (ColumnMethod, error) {
	switch token {
	case "mean":
		return MethodMean, nil
	case "median":
		return MethodMedian, nil
	case "mode":
		return MethodMode, nil
	case "drop":
		return MethodDrop, nil
	}
	return 0, errors.BadStrategy(token)
}

package quality

import "evinsight/internal/errors"

// MissingColumn is one row of the missing-value report: a column with at
// least one null
type MissingColumn struct {
	Column     string
	NullCount  int
	Percentage float64
	Kind       string
}

// MissingReport lists the columns with nulls, ordered by descending
// percentage. Empty when the table is complete.
type MissingReport struct {
	Columns   []MissingColumn
	TotalRows int
}

// IsClean reports whether no column has missing values
func (r MissingReport) IsClean() bool {
	return len(r.Columns) == 0
}

// OutlierMethod selects the detection rule applied to numeric columns
type OutlierMethod int

const (
	// MethodIQR flags values strictly outside Q1-1.5*IQR .. Q3+1.5*IQR
	MethodIQR OutlierMethod = iota
	// MethodZScore flags values whose standard score exceeds 3 in
	// absolute value, computed over non-null values
	MethodZScore
)

func (m OutlierMethod) String() string {
	if m == MethodIQR {
		return "iqr"
	}
	return "zscore"
}

// ParseOutlierMethod converts a method token. Unknown tokens are
// rejected with a BAD_STRATEGY error.
func ParseOutlierMethod(token string) (OutlierMethod, error) {
	switch token {
	case "iqr":
		return MethodIQR, nil
	case "zscore":
		return MethodZScore, nil
	}
	return 0, errors.BadStrategy(token)
}

// OutlierReport maps numeric column names to outlier counts under the
// active method. Columns with zero outliers are omitted.
type OutlierReport struct {
	Method OutlierMethod
	Counts map[string]int
}

// ResolveAction records one column-level action taken by the resolver
type ResolveAction struct {
	Column string
	Detail string
}

// ResolveResult summarizes a resolver run: total nulls before and after,
// the actions applied, and columns skipped because they had no defined
// fill value (entirely null).
type ResolveResult struct {
	Strategy      Strategy
	MissingBefore int
	MissingAfter  int
	RowsDropped   int
	Actions       []ResolveAction
	Skipped       []string
}

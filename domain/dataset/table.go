// Package dataset holds the in-memory tabular model shared by every
// pipeline stage: a table of named, typed columns plus the numeric /
// categorical classification derived from it.
package dataset

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind classifies a column by inferred value type. The classification
// drives which statistics and charts apply to the column.
type Kind int

const (
	KindNumeric Kind = iota
	KindCategorical
)

func (k Kind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "categorical"
}

// Column is a named sequence of values of one inferred kind. Numeric
// columns store float64 values with NaN as the null marker; categorical
// columns store strings with "" as the null marker.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Strings []string
}

// Len returns the number of values (including nulls)
func (c *Column) Len() int {
	if c.Kind == KindNumeric {
		return len(c.Floats)
	}
	return len(c.Strings)
}

// IsNull reports whether the value at index i is missing
func (c *Column) IsNull(i int) bool {
	if c.Kind == KindNumeric {
		return math.IsNaN(c.Floats[i])
	}
	return c.Strings[i] == ""
}

// NullCount returns the number of missing values
func (c *Column) NullCount() int {
	count := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			count++
		}
	}
	return count
}

// NonNullFloats returns the non-null values of a numeric column
func (c *Column) NonNullFloats() []float64 {
	out := make([]float64, 0, len(c.Floats))
	for _, v := range c.Floats {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// NonNullStrings returns the non-null values of a categorical column
func (c *Column) NonNullStrings() []string {
	out := make([]string, 0, len(c.Strings))
	for _, v := range c.Strings {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// UniqueCount returns the number of distinct non-null values
func (c *Column) UniqueCount() int {
	if c.Kind == KindNumeric {
		seen := make(map[float64]struct{})
		for _, v := range c.Floats {
			if !math.IsNaN(v) {
				seen[v] = struct{}{}
			}
		}
		return len(seen)
	}
	seen := make(map[string]struct{})
	for _, v := range c.Strings {
		if v != "" {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}

// ValueCounts returns distinct non-null values of a categorical column
// with their occurrence counts, most frequent first. Ties break on the
// smaller value so repeated calls produce the same ordering.
func (c *Column) ValueCounts() ([]string, []int) {
	counts := make(map[string]int)
	for _, v := range c.Strings {
		if v != "" {
			counts[v]++
		}
	}
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if counts[values[i]] != counts[values[j]] {
			return counts[values[i]] > counts[values[j]]
		}
		return values[i] < values[j]
	})
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = counts[v]
	}
	return values, out
}

// ModeString returns the most frequent non-null value of a categorical
// column. ok is false when the column has no non-null values.
func (c *Column) ModeString() (string, bool) {
	values, _ := c.ValueCounts()
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// ModeFloat returns the most frequent non-null value of a numeric column,
// smallest first on ties. ok is false when every value is null.
func (c *Column) ModeFloat() (float64, bool) {
	counts := make(map[float64]int)
	for _, v := range c.Floats {
		if !math.IsNaN(v) {
			counts[v]++
		}
	}
	if len(counts) == 0 {
		return 0, false
	}
	best := math.Inf(1)
	bestCount := 0
	for v, n := range counts {
		if n > bestCount || (n == bestCount && v < best) {
			best, bestCount = v, n
		}
	}
	return best, true
}

// FillNulls replaces every null in a numeric column with v and returns
// the number of values filled
func (c *Column) FillNulls(v float64) int {
	filled := 0
	for i, x := range c.Floats {
		if math.IsNaN(x) {
			c.Floats[i] = v
			filled++
		}
	}
	return filled
}

// FillNullStrings replaces every null in a categorical column with s and
// returns the number of values filled
func (c *Column) FillNullStrings(s string) int {
	filled := 0
	for i, x := range c.Strings {
		if x == "" {
			c.Strings[i] = s
			filled++
		}
	}
	return filled
}

// Cell returns the display form of the value at index i ("" for null)
func (c *Column) Cell(i int) string {
	if c.IsNull(i) {
		return ""
	}
	if c.Kind == KindNumeric {
		return strconv.FormatFloat(c.Floats[i], 'g', -1, 64)
	}
	return c.Strings[i]
}

// Table is the shared mutable dataset: ordered named columns of equal
// length. The loader creates it; the missing-value resolver is the only
// stage that mutates it.
type Table struct {
	cols   []*Column
	byName map[string]*Column
}

// New builds a table from a header row and raw string records, inferring
// each column's kind. A column is numeric when every non-null value
// parses as a float; a column with no non-null values is numeric as well
// (mirrors an all-null float column). Cells are trimmed and empty cells
// are nulls. Records shorter than the header are padded with nulls.
func New(headers []string, records [][]string) *Table {
	t := &Table{byName: make(map[string]*Column, len(headers))}
	for idx, name := range headers {
		raw := make([]string, len(records))
		for i, rec := range records {
			if idx < len(rec) {
				raw[i] = strings.TrimSpace(rec[idx])
			}
		}
		col := buildColumn(strings.TrimSpace(name), raw)
		t.cols = append(t.cols, col)
		t.byName[col.Name] = col
	}
	return t
}

func buildColumn(name string, raw []string) *Column {
	numeric := true
	for _, v := range raw {
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			numeric = false
			break
		}
	}
	if numeric {
		floats := make([]float64, len(raw))
		for i, v := range raw {
			if v == "" {
				floats[i] = math.NaN()
				continue
			}
			f, _ := strconv.ParseFloat(v, 64)
			floats[i] = f
		}
		return &Column{Name: name, Kind: KindNumeric, Floats: floats}
	}
	strs := make([]string, len(raw))
	copy(strs, raw)
	return &Column{Name: name, Kind: KindCategorical, Strings: strs}
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.cols)
}

// Columns returns the columns in table order
func (t *Table) Columns() []*Column {
	return t.cols
}

// Column looks a column up by name
func (t *Table) Column(name string) (*Column, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// ColumnNames returns the column names in table order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Classify partitions the column names into numeric and categorical
// lists, in table order. Callers must re-run this after any mutation
// that could change the schema.
func (t *Table) Classify() (numeric, categorical []string) {
	for _, c := range t.cols {
		if c.Kind == KindNumeric {
			numeric = append(numeric, c.Name)
		} else {
			categorical = append(categorical, c.Name)
		}
	}
	return numeric, categorical
}

// TotalNulls returns the total number of missing values across all columns
func (t *Table) TotalNulls() int {
	total := 0
	for _, c := range t.cols {
		total += c.NullCount()
	}
	return total
}

// DuplicateRows counts rows that are exact duplicates of an earlier row
func (t *Table) DuplicateRows() int {
	seen := make(map[string]struct{}, t.RowCount())
	dups := 0
	var sb strings.Builder
	for i := 0; i < t.RowCount(); i++ {
		sb.Reset()
		for _, c := range t.cols {
			sb.WriteString(c.Cell(i))
			sb.WriteByte('\x1f')
		}
		key := sb.String()
		if _, ok := seen[key]; ok {
			dups++
		} else {
			seen[key] = struct{}{}
		}
	}
	return dups
}

// MemoryBytes estimates the in-memory footprint: 8 bytes per numeric
// cell, string length plus 16 bytes of header per categorical cell
func (t *Table) MemoryBytes() int64 {
	var total int64
	for _, c := range t.cols {
		if c.Kind == KindNumeric {
			total += int64(len(c.Floats)) * 8
			continue
		}
		for _, s := range c.Strings {
			total += int64(len(s)) + 16
		}
	}
	return total
}

// DropNullRows removes every row holding a null in any of the named
// columns, or in any column at all when none are named. It returns the
// number of rows removed.
func (t *Table) DropNullRows(cols ...string) int {
	subset := t.cols
	if len(cols) > 0 {
		subset = subset[:0:0]
		for _, name := range cols {
			if c, ok := t.byName[name]; ok {
				subset = append(subset, c)
			}
		}
	}

	keep := make([]int, 0, t.RowCount())
	for i := 0; i < t.RowCount(); i++ {
		hasNull := false
		for _, c := range subset {
			if c.IsNull(i) {
				hasNull = true
				break
			}
		}
		if !hasNull {
			keep = append(keep, i)
		}
	}

	dropped := t.RowCount() - len(keep)
	if dropped == 0 {
		return 0
	}
	for _, c := range t.cols {
		if c.Kind == KindNumeric {
			floats := make([]float64, len(keep))
			for j, i := range keep {
				floats[j] = c.Floats[i]
			}
			c.Floats = floats
		} else {
			strs := make([]string, len(keep))
			for j, i := range keep {
				strs[j] = c.Strings[i]
			}
			c.Strings = strs
		}
	}
	return dropped
}

package dataset

import (
	"math"
	"testing"
)

func sampleTable() *Table {
	headers := []string{"Make", "Electric Range", "Model Year"}
	records := [][]string{
		{"Tesla", "10", "2020"},
		{"Nissan", "20", "2019"},
		{"Tesla", "30", "2021"},
		{"Ford", "1000", "2022"},
		{"", "", "2020"},
	}
	return New(headers, records)
}

// TestNewInfersColumnKinds tests that numeric and categorical columns
// partition the table with no overlap and no omission
func TestNewInfersColumnKinds(t *testing.T) {
	table := sampleTable()

	numeric, categorical := table.Classify()
	if len(numeric)+len(categorical) != table.ColumnCount() {
		t.Fatalf("Expected classification to cover all %d columns, got %d numeric + %d categorical",
			table.ColumnCount(), len(numeric), len(categorical))
	}

	if len(numeric) != 2 {
		t.Errorf("Expected 2 numeric columns, got %d: %v", len(numeric), numeric)
	}
	if len(categorical) != 1 || categorical[0] != "Make" {
		t.Errorf("Expected categorical columns [Make], got %v", categorical)
	}

	seen := make(map[string]bool)
	for _, name := range append(append([]string{}, numeric...), categorical...) {
		if seen[name] {
			t.Errorf("Column %q classified twice", name)
		}
		seen[name] = true
	}
}

// TestRowAndColumnCounts tests that loaded shape matches the records
func TestRowAndColumnCounts(t *testing.T) {
	table := sampleTable()
	if table.RowCount() != 5 {
		t.Errorf("Expected 5 rows, got %d", table.RowCount())
	}
	if table.ColumnCount() != 3 {
		t.Errorf("Expected 3 columns, got %d", table.ColumnCount())
	}
}

// TestHeaderOnlyTable tests that a header-only input yields a valid
// zero-row table
func TestHeaderOnlyTable(t *testing.T) {
	table := New([]string{"a", "b"}, nil)
	if table.RowCount() != 0 {
		t.Errorf("Expected 0 rows, got %d", table.RowCount())
	}
	if table.ColumnCount() != 2 {
		t.Errorf("Expected 2 columns, got %d", table.ColumnCount())
	}
	// All-null columns default to numeric, like an all-NaN float column
	numeric, categorical := table.Classify()
	if len(numeric) != 2 || len(categorical) != 0 {
		t.Errorf("Expected both columns numeric, got numeric=%v categorical=%v", numeric, categorical)
	}
	if table.TotalNulls() != 0 {
		t.Errorf("Expected no nulls in empty table, got %d", table.TotalNulls())
	}
}

// TestNullHandling tests null markers and counts for both kinds
func TestNullHandling(t *testing.T) {
	table := sampleTable()

	rangeCol, ok := table.Column("Electric Range")
	if !ok {
		t.Fatal("Expected column 'Electric Range'")
	}
	if rangeCol.NullCount() != 1 {
		t.Errorf("Expected 1 null in Electric Range, got %d", rangeCol.NullCount())
	}
	if !math.IsNaN(rangeCol.Floats[4]) {
		t.Errorf("Expected NaN null marker, got %v", rangeCol.Floats[4])
	}

	makeCol, _ := table.Column("Make")
	if makeCol.NullCount() != 1 {
		t.Errorf("Expected 1 null in Make, got %d", makeCol.NullCount())
	}
	if table.TotalNulls() != 2 {
		t.Errorf("Expected 2 total nulls, got %d", table.TotalNulls())
	}
}

// TestModeString tests most-frequent-value selection with deterministic ties
func TestModeString(t *testing.T) {
	table := sampleTable()
	makeCol, _ := table.Column("Make")

	mode, ok := makeCol.ModeString()
	if !ok {
		t.Fatal("Expected a defined mode")
	}
	if mode != "Tesla" {
		t.Errorf("Expected mode 'Tesla', got %q", mode)
	}

	// Tie between two values resolves to the smaller one
	tied := New([]string{"c"}, [][]string{{"b"}, {"a"}, {"b"}, {"a"}})
	col, _ := tied.Column("c")
	mode, _ = col.ModeString()
	if mode != "a" {
		t.Errorf("Expected tie to resolve to 'a', got %q", mode)
	}
}

// TestModeAllNull tests that an entirely null column has no defined mode
func TestModeAllNull(t *testing.T) {
	table := New([]string{"x"}, [][]string{{""}, {""}})
	col, _ := table.Column("x")
	if _, ok := col.ModeFloat(); ok {
		t.Error("Expected no defined mode for all-null column")
	}
}

// TestDropNullRows tests full and column-restricted row dropping
func TestDropNullRows(t *testing.T) {
	table := sampleTable()
	dropped := table.DropNullRows()
	if dropped != 1 {
		t.Errorf("Expected 1 dropped row, got %d", dropped)
	}
	if table.RowCount() != 4 {
		t.Errorf("Expected 4 rows after drop, got %d", table.RowCount())
	}
	if table.TotalNulls() != 0 {
		t.Errorf("Expected 0 nulls after drop, got %d", table.TotalNulls())
	}

	// Restricted drop only considers the named column
	table = New([]string{"a", "b"}, [][]string{{"", "1"}, {"x", ""}})
	dropped = table.DropNullRows("b")
	if dropped != 1 {
		t.Errorf("Expected 1 dropped row, got %d", dropped)
	}
	col, _ := table.Column("a")
	if col.Strings[0] != "" {
		t.Errorf("Expected null in 'a' to survive restricted drop, got %q", col.Strings[0])
	}
}

// TestDuplicateRows tests exact-duplicate counting
func TestDuplicateRows(t *testing.T) {
	table := New([]string{"a", "b"}, [][]string{
		{"x", "1"},
		{"x", "1"},
		{"y", "2"},
		{"x", "1"},
	})
	if got := table.DuplicateRows(); got != 2 {
		t.Errorf("Expected 2 duplicate rows, got %d", got)
	}
}

// TestValueCounts tests frequency ordering of categorical values
func TestValueCounts(t *testing.T) {
	table := sampleTable()
	col, _ := table.Column("Make")
	values, counts := col.ValueCounts()
	if len(values) != 3 {
		t.Fatalf("Expected 3 distinct values, got %d", len(values))
	}
	if values[0] != "Tesla" || counts[0] != 2 {
		t.Errorf("Expected Tesla x2 first, got %s x%d", values[0], counts[0])
	}
}

// TestFillNulls tests in-place fills for both kinds
func TestFillNulls(t *testing.T) {
	table := sampleTable()

	rangeCol, _ := table.Column("Electric Range")
	if filled := rangeCol.FillNulls(25); filled != 1 {
		t.Errorf("Expected 1 filled value, got %d", filled)
	}
	if rangeCol.Floats[4] != 25 {
		t.Errorf("Expected filled value 25, got %v", rangeCol.Floats[4])
	}

	makeCol, _ := table.Column("Make")
	if filled := makeCol.FillNullStrings("Tesla"); filled != 1 {
		t.Errorf("Expected 1 filled value, got %d", filled)
	}
	if table.TotalNulls() != 0 {
		t.Errorf("Expected no nulls after fills, got %d", table.TotalNulls())
	}
}

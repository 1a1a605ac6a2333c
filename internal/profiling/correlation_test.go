package profiling

import (
	"math"
	"testing"

	"evinsight/domain/dataset"
)

// TestCorrelationMatrix tests perfect positive and negative pairings
func TestCorrelationMatrix(t *testing.T) {
	table := dataset.New([]string{"a", "b", "c"}, [][]string{
		{"1", "2", "9"},
		{"2", "4", "6"},
		{"3", "6", "3"},
	})

	matrix := CorrelationMatrix(table, []string{"a", "b", "c"})
	if len(matrix) != 3 {
		t.Fatalf("Expected 3x3 matrix, got %d rows", len(matrix))
	}
	for i := 0; i < 3; i++ {
		if matrix[i][i] != 1 {
			t.Errorf("Expected 1 on the diagonal at %d, got %v", i, matrix[i][i])
		}
	}
	if !almostEqual(matrix[0][1], 1) {
		t.Errorf("Expected a~b correlation 1, got %v", matrix[0][1])
	}
	if !almostEqual(matrix[0][2], -1) {
		t.Errorf("Expected a~c correlation -1, got %v", matrix[0][2])
	}
	if matrix[0][1] != matrix[1][0] {
		t.Errorf("Expected symmetric matrix, got %v and %v", matrix[0][1], matrix[1][0])
	}
}

// TestCorrelationMatrixPairwiseNulls tests that each pair uses only rows
// where both columns are present
func TestCorrelationMatrixPairwiseNulls(t *testing.T) {
	table := dataset.New([]string{"a", "b"}, [][]string{
		{"1", "10"},
		{"2", ""},
		{"3", "30"},
		{"4", "40"},
	})

	matrix := CorrelationMatrix(table, []string{"a", "b"})
	if !almostEqual(matrix[0][1], 1) {
		t.Errorf("Expected correlation 1 over complete rows, got %v", matrix[0][1])
	}
}

// TestCorrelationMatrixDegenerate tests NaN for zero variance and for
// too few complete observations
func TestCorrelationMatrixDegenerate(t *testing.T) {
	table := dataset.New([]string{"a", "flat", "sparse"}, [][]string{
		{"1", "7", "5"},
		{"2", "7", ""},
		{"3", "7", ""},
	})

	matrix := CorrelationMatrix(table, []string{"a", "flat", "sparse"})
	if !math.IsNaN(matrix[0][1]) {
		t.Errorf("Expected NaN against zero-variance column, got %v", matrix[0][1])
	}
	if !math.IsNaN(matrix[0][2]) {
		t.Errorf("Expected NaN with one complete observation, got %v", matrix[0][2])
	}
}

// TestRound3 tests display rounding and NaN passthrough
func TestRound3(t *testing.T) {
	if got := Round3(0.123456); got != 0.123 {
		t.Errorf("Expected 0.123, got %v", got)
	}
	if got := Round3(-0.9996); got != -1 {
		t.Errorf("Expected -1, got %v", got)
	}
	if !math.IsNaN(Round3(math.NaN())) {
		t.Error("Expected NaN passthrough")
	}
}

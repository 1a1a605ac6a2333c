package charts

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"evinsight/domain/dataset"
	"evinsight/internal/errors"
)

func chartTable() *dataset.Table {
	return dataset.New(
		[]string{"Make", "Electric Range", "Model Year"},
		[][]string{
			{"Tesla", "10", "2020"},
			{"Tesla", "20", "2021"},
			{"Nissan", "30", "2021"},
			{"Chevrolet", "1000", "2022"},
			{"Tesla", "25", "2022"},
			{"Nissan", "40", "2023"},
		},
	)
}

func assertPNG(t *testing.T, path, expectedName string) {
	t.Helper()
	if filepath.Base(path) != expectedName {
		t.Errorf("Expected file name %s, got %s", expectedName, filepath.Base(path))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected file at %s, got %v", path, err)
	}
	if info.Size() == 0 {
		t.Errorf("Expected non-empty PNG at %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected readable file, got %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("Expected PNG signature in %s", path)
	}
}

// TestDistributions tests histogram rendering for the numeric columns
func TestDistributions(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(10)

	path, err := r.Distributions(chartTable(), []string{"Electric Range", "Model Year"}, dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assertPNG(t, path, DistributionsFile)
}

// TestDistributionsNoNumeric tests the no-data error
func TestDistributionsNoNumeric(t *testing.T) {
	r := NewRenderer(10)

	_, err := r.Distributions(chartTable(), nil, t.TempDir())
	if err == nil {
		t.Fatal("Expected error with no numeric columns, got nil")
	}
	if errors.GetCode(err) != errors.CodeRenderError {
		t.Errorf("Expected RENDER_ERROR, got %s", errors.GetCode(err))
	}
}

// TestCorrelationHeatmap tests heatmap rendering including a NaN cell
func TestCorrelationHeatmap(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(10)

	matrix := [][]float64{
		{1, 0.5, math.NaN()},
		{0.5, 1, -0.25},
		{math.NaN(), -0.25, 1},
	}
	path, err := r.CorrelationHeatmap(matrix, []string{"a", "b", "c"}, dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assertPNG(t, path, HeatmapFile)
}

// TestCategorical tests top-N bar chart rendering
func TestCategorical(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(10)

	path, err := r.Categorical(chartTable(), []string{"Make"}, 10, dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assertPNG(t, path, CategoricalFile)
}

// TestCategoricalTopNTruncates tests that topN below the distinct count
// still renders
func TestCategoricalTopNTruncates(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(10)

	path, err := r.Categorical(chartTable(), []string{"Make"}, 2, dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assertPNG(t, path, CategoricalFile)
}

// TestBoxPlots tests box plot rendering
func TestBoxPlots(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(10)

	path, err := r.BoxPlots(chartTable(), []string{"Electric Range", "Model Year"}, dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assertPNG(t, path, BoxPlotsFile)
}

// TestSaveGridUnusedCells tests a grid with fewer plots than cells
func TestSaveGridUnusedCells(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(10)

	// one numeric column in a three-wide grid leaves two cells blank
	path, err := r.Distributions(chartTable(), []string{"Electric Range"}, dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assertPNG(t, path, DistributionsFile)
}

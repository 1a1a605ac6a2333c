package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evinsight/domain/dataset"
	"evinsight/domain/quality"
	"evinsight/internal/errors"
)

// evTable builds the small fixture used across resolver tests: one
// numeric column with a gap and one categorical column with a gap
func evTable() *dataset.Table {
	return dataset.New(
		[]string{"Make", "Electric Range", "Model Year"},
		[][]string{
			{"Tesla", "10", "2020"},
			{"Tesla", "20", "2021"},
			{"Nissan", "30", "2021"},
			{"", "1000", "2022"},
			{"Tesla", "", "2022"},
		},
	)
}

// TestResolveAuto tests that the auto strategy fills numeric gaps with
// the median and categorical gaps with the most frequent value
func TestResolveAuto(t *testing.T) {
	table := evTable()
	result, err := Resolve(table, []string{"Electric Range", "Model Year"}, []string{"Make"}, quality.Auto())
	require.NoError(t, err)

	assert.Equal(t, 2, result.MissingBefore)
	assert.Equal(t, 0, result.MissingAfter)
	assert.Equal(t, 0, result.RowsDropped)
	assert.Len(t, result.Actions, 2)
	assert.Empty(t, result.Skipped)

	rng, ok := table.Column("Electric Range")
	require.True(t, ok)
	// median of {10, 20, 30, 1000}
	assert.Equal(t, 25.0, rng.Floats[4])

	makeCol, ok := table.Column("Make")
	require.True(t, ok)
	assert.Equal(t, "Tesla", makeCol.Strings[3])
}

// TestResolveDrop tests that the drop strategy removes every row with a
// null and leaves the table complete
func TestResolveDrop(t *testing.T) {
	table := evTable()
	result, err := Resolve(table, []string{"Electric Range", "Model Year"}, []string{"Make"}, quality.Drop())
	require.NoError(t, err)

	assert.Equal(t, 2, result.RowsDropped)
	assert.Equal(t, 0, result.MissingAfter)
	assert.Equal(t, 3, table.RowCount())
}

// TestResolveFillMean tests the mean fill on numeric columns only
func TestResolveFillMean(t *testing.T) {
	table := evTable()
	result, err := Resolve(table, []string{"Electric Range", "Model Year"}, []string{"Make"}, quality.FillMean())
	require.NoError(t, err)

	rng, _ := table.Column("Electric Range")
	// mean of {10, 20, 30, 1000}
	assert.Equal(t, 265.0, rng.Floats[4])

	// categorical column untouched
	makeCol, _ := table.Column("Make")
	assert.True(t, makeCol.IsNull(3))
	assert.Equal(t, 1, result.MissingAfter)
}

// TestResolveFillMode tests that fill_mode covers numeric and
// categorical columns alike
func TestResolveFillMode(t *testing.T) {
	table := evTable()
	result, err := Resolve(table, []string{"Electric Range", "Model Year"}, []string{"Make"}, quality.FillMode())
	require.NoError(t, err)

	assert.Equal(t, 0, result.MissingAfter)
	makeCol, _ := table.Column("Make")
	assert.Equal(t, "Tesla", makeCol.Strings[3])
	rng, _ := table.Column("Electric Range")
	// all range values unique, mode ties resolve to the smallest
	assert.Equal(t, 10.0, rng.Floats[4])
}

// TestResolvePerColumn tests the mapping form with mixed methods
func TestResolvePerColumn(t *testing.T) {
	table := evTable()
	strategy := quality.PerColumn(map[string]quality.ColumnMethod{
		"Electric Range": quality.MethodMedian,
		"Make":           quality.MethodDrop,
	})
	result, err := Resolve(table, []string{"Electric Range", "Model Year"}, []string{"Make"}, strategy)
	require.NoError(t, err)

	assert.Equal(t, 1, result.RowsDropped)
	assert.Equal(t, 4, table.RowCount())
	assert.Equal(t, 0, result.MissingAfter)
}

// TestResolvePerColumnBadMethod tests that a numeric-only method on a
// categorical column is rejected
func TestResolvePerColumnBadMethod(t *testing.T) {
	table := evTable()
	strategy := quality.PerColumn(map[string]quality.ColumnMethod{
		"Make": quality.MethodMean,
	})
	_, err := Resolve(table, nil, []string{"Make"}, strategy)
	require.Error(t, err)
	assert.Equal(t, errors.CodeBadStrategy, errors.GetCode(err))
}

// TestResolveAllNullColumn tests that a column with no non-null values
// is skipped and reported instead of filled
func TestResolveAllNullColumn(t *testing.T) {
	table := dataset.New([]string{"a", "b"}, [][]string{
		{"1", ""},
		{"2", ""},
	})
	numeric, categorical := table.Classify()

	result, err := Resolve(table, numeric, categorical, quality.Auto())
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, result.Skipped)
	assert.Equal(t, 2, result.MissingAfter)
}

// Package profiling computes descriptive statistics for numeric columns:
// moments, quantiles, and the pairwise Pearson correlation matrix.
package profiling

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// Moments summarizes the distribution of one numeric column
type Moments struct {
	Mean     float64
	Median   float64
	StdDev   float64
	Skewness float64
	Kurtosis float64
	Min      float64
	Max      float64
	Q25      float64
	Q75      float64
	Count    int
}

// ColumnMoments computes the distribution summary over non-null values.
// The input must contain no NaNs; an empty input yields an error.
func ColumnMoments(data []float64) (Moments, error) {
	m := Moments{Count: len(data)}

	mean, err := stats.Mean(data)
	if err != nil {
		return m, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return m, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return m, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return m, err
	}

	// Sample standard deviation; a single observation has none
	stdDev := 0.0
	if len(data) > 1 {
		stdDev, err = stats.StandardDeviationSample(data)
		if err != nil {
			return m, err
		}
	}

	m.Mean = mean
	m.Median = median
	m.StdDev = stdDev
	m.Min = min
	m.Max = max
	m.Q25 = Quantile(data, 0.25)
	m.Q75 = Quantile(data, 0.75)
	m.Skewness = sampleSkewness(data, mean, stdDev)
	m.Kurtosis = sampleKurtosis(data, mean, stdDev)
	return m, nil
}

// SkewLabel classifies a skewness value the way the report prints it
func SkewLabel(skew float64) string {
	switch {
	case skew > 0:
		return "(Right-skewed)"
	case skew < 0:
		return "(Left-skewed)"
	default:
		return "(Symmetric)"
	}
}

// sampleSkewness computes the adjusted Fisher-Pearson coefficient of
// skewness over the sample standard deviation
func sampleSkewness(data []float64, mean, stdDev float64) float64 {
	n := float64(len(data))
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	sumCubed := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}
	return n / ((n - 1) * (n - 2)) * sumCubed
}

// sampleKurtosis computes bias-corrected sample excess kurtosis
func sampleKurtosis(data []float64, mean, stdDev float64) float64 {
	n := float64(len(data))
	if len(data) < 4 || stdDev == 0 {
		return 0
	}

	sumFourth := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumFourth += d * d * d * d
	}
	return (n*(n+1))/((n-1)*(n-2)*(n-3))*sumFourth -
		3*(n-1)*(n-1)/((n-2)*(n-3))
}

// Quantile returns the q-th quantile (0..1) of data using linear
// interpolation between order statistics. A single value is its own
// quantile; an empty input returns NaN.
func Quantile(data []float64, q float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

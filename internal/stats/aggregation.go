// Package stats provides the aggregate computations used by the query router
// and the statistics endpoints. All functions tolerate empty input: they
// return 0 rather than NaN so that empty groups degrade to "no data" text
// upstream instead of failing.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// StdDev calculates the sample standard deviation.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// Median calculates the median value.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	// Quantile requires sorted input; copy to avoid mutating the caller's slice.
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// Min returns the minimum value.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Sum returns the sum of all values.
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Round2 rounds to 2 decimal places, the display precision for all traffic
// averages.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Package stats computes descriptive statistics over a sequence of
// numeric samples.
package stats

import (
	"math"
	"sort"
)

// Summary holds the full set of descriptive statistics for one input.
// Variance and StdDev are the population figures, which is what the
// report presents.
type Summary struct {
	Count  int
	Mean   float64
	Median float64

	// Mode is the most frequent value. HasMode is false when every value
	// occurs exactly once, in which case the report shows #N/A.
	Mode    float64
	HasMode bool

	Variance float64
	StdDev   float64
}

// Describe computes the summary for the given samples. The slice must be
// non-empty; callers reject empty input before reaching this point.
func Describe(values []float64) Summary {
	s := Summary{Count: len(values)}

	s.Mean = Mean(values)
	s.Median = Median(values)
	s.Mode, s.HasMode = Mode(values)

	sample := SampleVariance(values, s.Mean)
	s.Variance = PopulationVariance(sample, len(values))
	s.StdDev = math.Sqrt(s.Variance)

	return s
}

// Mean returns the arithmetic mean of the values.
func Mean(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// Median returns the middle value of the sorted sequence, or the average
// of the two central values when the count is even. The input slice is
// not modified.
func Median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	middle := n / 2

	if n%2 == 1 {
		return sorted[middle]
	}
	return (sorted[middle-1] + sorted[middle]) / 2
}

// Mode returns the most frequent value and true, or (0, false) when every
// value is unique. When several values tie at the maximum frequency the
// largest of them wins.
func Mode(values []float64) (float64, bool) {
	frequency := make(map[float64]int, len(values))
	for _, v := range values {
		frequency[v]++
	}

	maxCount := 0
	for _, count := range frequency {
		if count > maxCount {
			maxCount = count
		}
	}

	if maxCount == 1 {
		return 0, false
	}

	best := math.Inf(-1)
	for v, count := range frequency {
		if count == maxCount && v > best {
			best = v
		}
	}

	return best, true
}

// SampleVariance returns the sum of squared deviations from the given
// mean divided by (n - 1). Defined as 0 when fewer than two values exist,
// which guards the division.
func SampleVariance(values []float64, mean float64) float64 {
	total := 0.0
	for _, v := range values {
		diff := v - mean
		total += diff * diff
	}

	n := len(values)
	if n < 2 {
		return 0.0
	}

	return total / float64(n-1)
}

// PopulationVariance rescales a sample variance to the population figure.
// The two-step derivation (sample variance first, then rescale) is what
// the report presents and must not be collapsed into a direct /n sum.
func PopulationVariance(sampleVariance float64, n int) float64 {
	return sampleVariance * float64(n-1) / float64(n)
}

// StdDev returns the square root of the given variance.
func StdDev(variance float64) float64 {
	return math.Sqrt(variance)
}

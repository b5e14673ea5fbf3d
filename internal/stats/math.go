// Package stats holds the statistical machinery behind the scorecard:
// bootstrap confidence intervals for net flow, EWMA trend smoothing, CUSUM
// shift detection, and volatility measures. Everything operates on plain
// float64 slices so it stays decoupled from the flow domain types.
package stats

import (
	"math"
	"slices"
)

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// StdDev returns the population standard deviation, or 0 for fewer than
// two points.
func StdDev(vs []float64) float64 {
	if len(vs) < 2 {
		return 0
	}
	mean := Mean(vs)
	var ss float64
	for _, v := range vs {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vs)))
}

// Percentile returns the nearest-rank percentile of vs for q in [0,1].
// The input is not modified.
func Percentile(vs []float64, q float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sorted := slices.Clone(vs)
	slices.Sort(sorted)
	rank := int(math.Ceil(q*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}

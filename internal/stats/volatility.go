package stats

import "math"

// VolatilityMetrics bundles the dispersion view of the counting series.
type VolatilityMetrics struct {
	ArrivalsCV     float64    `json:"arrivals_cv_pct"`
	ThroughputCV   float64    `json:"throughput_cv_pct"`
	StabilityIndex float64    `json:"stability_index_pct"`
	RollingCV      []*float64 `json:"rolling_cv_pct"`
}

// CV returns the coefficient of variation as a percentage. A zero mean
// makes the ratio undefined; it is reported as 0.
func CV(vs []float64) float64 {
	mean := Mean(vs)
	if mean == 0 {
		return 0
	}
	return 100 * StdDev(vs) / math.Abs(mean)
}

// RollingCV computes the CV over a trailing window at each point. Positions
// with fewer than two points in the window are nil rather than zero, so
// callers can tell "not enough data" from "perfectly stable".
func RollingCV(vs []float64, window int) []*float64 {
	if window < 2 {
		window = 2
	}
	out := make([]*float64, len(vs))
	for i := range vs {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		if i-start+1 < 2 {
			continue
		}
		cv := CV(vs[start : i+1])
		out[i] = &cv
	}
	return out
}

// StabilityIndex is the percentage of the trailing min(window, len) points
// that lie within one standard deviation of the window mean. A series that
// never moved is perfectly stable at 100.
func StabilityIndex(vs []float64, window int) float64 {
	if len(vs) == 0 {
		return 0
	}
	if window > 0 && len(vs) > window {
		vs = vs[len(vs)-window:]
	}
	sigma := StdDev(vs)
	if sigma == 0 {
		return 100
	}
	mean := Mean(vs)
	within := 0
	for _, v := range vs {
		if math.Abs(v-mean) <= sigma {
			within++
		}
	}
	return 100 * float64(within) / float64(len(vs))
}

package stats

// Shift reports a sustained level change found by a tabular CUSUM scan.
type Shift struct {
	Detected  bool    `json:"detected"`
	Index     int     `json:"index,omitempty"`
	Direction string  `json:"direction,omitempty"`
	Magnitude float64 `json:"magnitude,omitempty"`
}

// DetectShift runs a two-sided CUSUM over the series with slack k and
// decision threshold h expressed as multiples of the series' standard
// deviation. Series shorter than three points, or with zero variance,
// cannot evidence a shift and report none.
func DetectShift(series []float64, kFactor, hFactor float64) Shift {
	if len(series) < 3 {
		return Shift{}
	}
	sigma := StdDev(series)
	if sigma == 0 {
		return Shift{}
	}
	mean := Mean(series)
	k := kFactor * sigma
	h := hFactor * sigma

	var high, low float64
	for i, v := range series {
		high = max(0, high+v-mean-k)
		low = max(0, low+mean-v-k)
		if high > h {
			return Shift{Detected: true, Index: i, Direction: TrendUp, Magnitude: high}
		}
		if low > h {
			return Shift{Detected: true, Index: i, Direction: TrendDown, Magnitude: low}
		}
	}
	return Shift{}
}

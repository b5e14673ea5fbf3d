package stats

// Trend direction labels.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

// Trend is the smoothed direction of a metric series.
type Trend struct {
	EWMA      float64 `json:"ewma"`
	Direction string  `json:"direction"`
	Alpha     float64 `json:"alpha"`
}

// EWMASeries returns the full smoothed series: out[0] = series[0], then
// out[i] = alpha*series[i] + (1-alpha)*out[i-1].
func EWMASeries(series []float64, alpha float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	out := make([]float64, len(series))
	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = alpha*series[i] + (1-alpha)*out[i-1]
	}
	return out
}

// CalculateEWMA smooths the series with the given alpha and returns the
// final smoothed value. With alpha 1 the result is just the last point.
func CalculateEWMA(series []float64, alpha float64) float64 {
	s := EWMASeries(series, alpha)
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// AnalyzeTrend smooths the series and compares the final EWMA against the
// previous one. Movement has to clear a 2% band to count as a direction;
// anything inside the band is flat, as are series too short to compare.
func AnalyzeTrend(series []float64, alpha float64) Trend {
	t := Trend{Direction: TrendFlat, Alpha: alpha}
	if len(series) == 0 {
		return t
	}
	t.EWMA = CalculateEWMA(series, alpha)
	if len(series) < 2 {
		return t
	}
	prev := CalculateEWMA(series[:len(series)-1], alpha)
	switch {
	case t.EWMA > prev*1.02:
		t.Direction = TrendUp
	case t.EWMA < prev*0.98:
		t.Direction = TrendDown
	}
	return t
}

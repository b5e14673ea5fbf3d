package stats

// FlowDebt describes how unfinished work piled up across the analyzed
// periods. Debt only ever grows: weeks that paid work down reduce the
// backlog but do not erase the fact that it accumulated.
type FlowDebt struct {
	Cumulative []float64 `json:"cumulative"`
	Total      float64   `json:"total"`
	PeakIndex  int       `json:"peak_index"`
}

// AccumulateFlowDebt sums the positive portion of each period's net flow
// into a running total. PeakIndex is the first period at which the final
// total was reached.
func AccumulateFlowDebt(netFlows []float64) FlowDebt {
	d := FlowDebt{Cumulative: make([]float64, len(netFlows))}
	var running float64
	for i, nf := range netFlows {
		if nf > 0 {
			running += nf
			d.PeakIndex = i
		}
		d.Cumulative[i] = running
	}
	d.Total = running
	return d
}

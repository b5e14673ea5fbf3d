package flow

import "sort"

// SegmentMetrics are per-category counting metrics for one window.
type SegmentMetrics struct {
	Category   string `json:"category"`
	Arrivals   int    `json:"arrivals"`
	Throughput int    `json:"throughput"`
	NetFlow    int    `json:"net_flow"`
}

// SegmentPeriod splits the window's counting metrics by item category.
// Every category present in either set gets a row, so the per-segment sums
// reproduce the period totals. Rows are sorted by category for stable
// output.
func SegmentPeriod(arrivals, completions []WorkItem, window PeriodWindow, wf *WorkflowConfig) []SegmentMetrics {
	byCat := map[string]*SegmentMetrics{}
	get := func(cat string) *SegmentMetrics {
		m, ok := byCat[cat]
		if !ok {
			m = &SegmentMetrics{Category: cat}
			byCat[cat] = m
		}
		return m
	}
	for _, item := range arrivals {
		if window.Contains(item.Created) {
			get(item.Category).Arrivals++
		}
	}
	for _, item := range completions {
		if isCompletedIn(item, window, wf) {
			get(item.Category).Throughput++
		}
	}
	out := make([]SegmentMetrics, 0, len(byCat))
	for _, m := range byCat {
		m.NetFlow = m.Arrivals - m.Throughput
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

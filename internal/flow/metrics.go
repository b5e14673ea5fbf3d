package flow

// Flow status labels, ordered from worst to best.
const (
	FlowCriticalBottleneck = "CRITICAL_BOTTLENECK"
	FlowMinorBottleneck    = "MINOR_BOTTLENECK"
	FlowHealthy            = "HEALTHY_FLOW"
	FlowBalanced           = "BALANCED"
)

// PeriodMetrics are the counting metrics for one weekly window. FlowRatio
// is completions per hundred arrivals.
type PeriodMetrics struct {
	Window      PeriodWindow `json:"window"`
	Arrivals    int          `json:"arrivals"`
	Completions int          `json:"completions"`
	NetFlow     int          `json:"net_flow"`
	FlowRatio   float64      `json:"flow_ratio"`
	FlowStatus  string       `json:"flow_status"`
}

// CountPeriod tallies arrivals and completions for one window. An item
// arrives when its creation falls inside the window; it completes when its
// resolution does and its terminal status is in the done set. Flow ratio is
// 0 when nothing arrived.
func CountPeriod(arrivals, completions []WorkItem, window PeriodWindow, wf *WorkflowConfig) PeriodMetrics {
	m := PeriodMetrics{Window: window}
	for _, item := range arrivals {
		if window.Contains(item.Created) {
			m.Arrivals++
		}
	}
	for _, item := range completions {
		if isCompletedIn(item, window, wf) {
			m.Completions++
		}
	}
	m.NetFlow = m.Arrivals - m.Completions
	if m.Arrivals > 0 {
		m.FlowRatio = 100 * float64(m.Completions) / float64(m.Arrivals)
	}
	m.FlowStatus = ClassifyFlowStatus(m.Arrivals, m.NetFlow)
	return m
}

// ClassifyFlowStatus labels a period by how far its backlog moved relative
// to demand. Net accumulation beyond 20% of arrivals is a critical
// bottleneck; any positive accumulation is a minor one; net reduction is
// healthy; an exact balance is balanced.
func ClassifyFlowStatus(arrivals, netFlow int) string {
	switch {
	case netFlow > 0 && float64(netFlow) > 0.2*float64(arrivals):
		return FlowCriticalBottleneck
	case netFlow > 0:
		return FlowMinorBottleneck
	case netFlow < 0:
		return FlowHealthy
	default:
		return FlowBalanced
	}
}

func isCompletedIn(item WorkItem, window PeriodWindow, wf *WorkflowConfig) bool {
	return item.Resolved != nil && window.Contains(*item.Resolved) && wf.IsDone(item.Status)
}

// CompletedIn returns the items whose resolution falls inside the window
// and whose terminal status is in the done set.
func CompletedIn(items []WorkItem, window PeriodWindow, wf *WorkflowConfig) []WorkItem {
	var out []WorkItem
	for _, item := range items {
		if isCompletedIn(item, window, wf) {
			out = append(out, item)
		}
	}
	return out
}

package flow

import (
	"math"
	"slices"
	"sort"
)

// AssigneeLoad is the per-person workload snapshot.
type AssigneeLoad struct {
	Assignee string `json:"assignee"`
	Assigned int    `json:"assigned"`
	WIP      int    `json:"wip"`
}

// AssignmentMetrics summarizes ownership behavior over a set of items.
// The assigned/unassigned split follows the recorded assignment history:
// an item with no valid assignment events counts as unassigned even when
// it carries a current assignee. Load is built from current ownership
// instead, so such an item still appears under its assignee there.
type AssignmentMetrics struct {
	MeanFirstLagHours float64        `json:"mean_first_assignment_lag_hours"`
	P85FirstLagHours  float64        `json:"p85_first_assignment_lag_hours"`
	MeanReassignments float64        `json:"mean_reassignments"`
	MeanHandoffScore  float64        `json:"mean_handoff_score"`
	AssignedItems     int            `json:"assigned_items"`
	UnassignedItems   int            `json:"unassigned_items"`
	UnassignedPct     float64        `json:"unassigned_pct"`
	Load              []AssigneeLoad `json:"load,omitempty"`

	// FirstLags keeps the raw per-item lags so callers can derive
	// additional percentiles without re-walking the histories.
	FirstLags []float64 `json:"-"`
}

// AnalyzeAssignment walks assignment histories for the given items. Only
// events that assign to someone count; unassignment events are skipped.
// First-assignment lag is the time from creation to the first real
// assignment, clamped at zero. Each reassignment after the first costs 20
// handoff points off a 100-point score; items never assigned score zero.
func AnalyzeAssignment(items []WorkItem, wf *WorkflowConfig) AssignmentMetrics {
	var m AssignmentMetrics
	var handoffSum, reassignSum float64
	load := map[string]*AssigneeLoad{}

	addLoad := func(item WorkItem, owner string) {
		l, ok := load[owner]
		if !ok {
			l = &AssigneeLoad{Assignee: owner}
			load[owner] = l
		}
		l.Assigned++
		if wf.IsActive(item.Status) {
			l.WIP++
		}
	}

	for _, item := range items {
		valid := make([]AssignmentEvent, 0, len(item.AssignmentEvents))
		for _, ev := range item.AssignmentEvents {
			if ev.ToAssignee != "" {
				valid = append(valid, ev)
			}
		}
		if len(valid) == 0 {
			// No assignment history; a current assignee still counts
			// toward load even though lag is unknowable.
			m.UnassignedItems++
			if item.Assignee != "" {
				addLoad(item, item.Assignee)
			}
			continue
		}
		slices.SortFunc(valid, func(a, b AssignmentEvent) int {
			return a.Date.Compare(b.Date)
		})
		m.AssignedItems++

		lag := valid[0].Date.Sub(item.Created).Hours()
		if lag < 0 {
			lag = 0
		}
		m.FirstLags = append(m.FirstLags, lag)

		reassignments := len(valid) - 1
		reassignSum += float64(reassignments)
		score := 100.0 - 20.0*float64(reassignments)
		if score < 0 {
			score = 0
		}
		handoffSum += score

		owner := item.Assignee
		if owner == "" {
			owner = valid[len(valid)-1].ToAssignee
		}
		addLoad(item, owner)
	}

	if n := len(m.FirstLags); n > 0 {
		var sum float64
		for _, v := range m.FirstLags {
			sum += v
		}
		m.MeanFirstLagHours = sum / float64(n)
		m.P85FirstLagHours = nearestRank(m.FirstLags, 0.85)
	}
	if m.AssignedItems > 0 {
		m.MeanReassignments = reassignSum / float64(m.AssignedItems)
	}
	if total := m.AssignedItems + m.UnassignedItems; total > 0 {
		m.MeanHandoffScore = handoffSum / float64(total)
		m.UnassignedPct = 100 * float64(m.UnassignedItems) / float64(total)
	}

	for _, l := range load {
		m.Load = append(m.Load, *l)
	}
	sort.Slice(m.Load, func(i, j int) bool { return m.Load[i].Assignee < m.Load[j].Assignee })
	return m
}

// nearestRank is the ceil-based nearest-rank percentile over a copy of vs.
func nearestRank(vs []float64, q float64) float64 {
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

package flow

import (
	"sort"
	"time"
)

// EfficiencyResult summarizes how much of the classified cycle time was
// spent doing value-adding work, and where time pooled.
type EfficiencyResult struct {
	EfficiencyPct float64 `json:"efficiency_pct"`
	ActiveHours   float64 `json:"active_hours"`
	WaitingHours  float64 `json:"waiting_hours"`
	Bottleneck    string  `json:"bottleneck"`
	BottleneckHrs float64 `json:"bottleneck_hours"`
	SampleSize    int     `json:"sample_size"`
}

// AnalyzeEfficiency computes flow efficiency over the reconstructed
// transitions of the given items. Only in-cycle time spent in stages the
// workflow classifies as active or waiting participates: the entry
// transition into the cycle carries pre-cycle queue time and is skipped,
// as are unclassified stages (the virtual Created stage, statuses outside
// the taxonomy). The bottleneck is the single stage, active or waiting,
// that accumulated the most time; ties break toward the lexicographically
// smaller stage name.
func AnalyzeEfficiency(items []WorkItem, wf *WorkflowConfig) EfficiencyResult {
	res := EfficiencyResult{Bottleneck: "N/A"}
	var active, waiting time.Duration
	byStage := map[string]time.Duration{}

	for _, item := range items {
		trs := ReconstructTransitions(item.Created, item.StatusEvents, wf.CycleStartStatus, wf.CycleEndStatus)
		if len(trs) == 0 {
			continue
		}
		res.SampleSize++
		for i, tr := range trs {
			if i == 0 && tr.ToStage == wf.CycleStartStatus {
				continue
			}
			class, ok := wf.Classification[tr.FromStage]
			if !ok {
				continue
			}
			byStage[tr.FromStage] += tr.Duration
			if class == StageActive {
				active += tr.Duration
			} else {
				waiting += tr.Duration
			}
		}
	}

	res.ActiveHours = active.Hours()
	res.WaitingHours = waiting.Hours()
	if total := active + waiting; total > 0 {
		pct := 100 * float64(active) / float64(total)
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		res.EfficiencyPct = pct
	}

	stages := make([]string, 0, len(byStage))
	for s := range byStage {
		stages = append(stages, s)
	}
	sort.Strings(stages)
	var worst time.Duration
	for _, s := range stages {
		if byStage[s] > worst {
			worst = byStage[s]
			res.Bottleneck = s
			res.BottleneckHrs = byStage[s].Hours()
		}
	}
	return res
}

// StageDurations collects, per classified stage, the hours each item spent
// there while in cycle. The entry transition's pre-cycle queue time is
// skipped. Used for stage aging percentiles.
func StageDurations(items []WorkItem, wf *WorkflowConfig) map[string][]float64 {
	out := map[string][]float64{}
	for _, item := range items {
		trs := ReconstructTransitions(item.Created, item.StatusEvents, wf.CycleStartStatus, wf.CycleEndStatus)
		perItem := map[string]time.Duration{}
		for i, tr := range trs {
			if i == 0 && tr.ToStage == wf.CycleStartStatus {
				continue
			}
			if _, ok := wf.Classification[tr.FromStage]; !ok {
				continue
			}
			perItem[tr.FromStage] += tr.Duration
		}
		for s, d := range perItem {
			out[s] = append(out[s], d.Hours())
		}
	}
	return out
}

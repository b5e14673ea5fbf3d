package flow

import "fmt"

// WorkflowConfig describes the status taxonomy the engine works against.
// Everything here comes from configuration, never from code: which statuses
// exist, which are active vs waiting, where the cycle starts and ends, and
// which statuses count as done.
type WorkflowConfig struct {
	StatusOrder      []string              `json:"status_order"`
	Classification   map[string]StageClass `json:"classification"`
	CycleStartStatus string                `json:"cycle_start_status"`
	CycleEndStatus   string                `json:"cycle_end_status"`
	DoneStatuses     []string              `json:"done_statuses"`
	ActiveStatuses   []string              `json:"active_statuses"`
	SlowStage        string                `json:"slow_stage,omitempty"`
}

// Validate rejects configs that would silently produce empty analytics.
func (w *WorkflowConfig) Validate() error {
	if len(w.StatusOrder) == 0 {
		return fmt.Errorf("workflow: status_order is empty")
	}
	if w.CycleStartStatus == "" || w.CycleEndStatus == "" {
		return fmt.Errorf("workflow: cycle start/end statuses are required")
	}
	known := make(map[string]bool, len(w.StatusOrder))
	for _, s := range w.StatusOrder {
		known[s] = true
	}
	if !known[w.CycleStartStatus] {
		return fmt.Errorf("workflow: cycle_start_status %q not in status_order", w.CycleStartStatus)
	}
	if !known[w.CycleEndStatus] {
		return fmt.Errorf("workflow: cycle_end_status %q not in status_order", w.CycleEndStatus)
	}
	for s, c := range w.Classification {
		if c != StageActive && c != StageWaiting {
			return fmt.Errorf("workflow: status %q has unknown class %q", s, c)
		}
	}
	if len(w.DoneStatuses) == 0 {
		return fmt.Errorf("workflow: done_statuses is empty")
	}
	return nil
}

// IsDone reports whether a status terminates the workflow.
func (w *WorkflowConfig) IsDone(status string) bool {
	for _, s := range w.DoneStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsActive reports whether a status counts as in-progress for WIP purposes.
func (w *WorkflowConfig) IsActive(status string) bool {
	for _, s := range w.ActiveStatuses {
		if s == status {
			return true
		}
	}
	return false
}

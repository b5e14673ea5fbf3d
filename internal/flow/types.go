package flow

import "time"

// WorkItem is the canonical, fully-typed representation of one tracked item.
// Upstream payloads are converted into this shape by the boundary adapter;
// the engine never inspects raw fields.
type WorkItem struct {
	Key         string     `json:"key"`
	Category    string     `json:"category"`
	Created     time.Time  `json:"created"`
	Resolved    *time.Time `json:"resolved,omitempty"`
	Status      string     `json:"status"`
	Assignee    string     `json:"assignee,omitempty"`

	StatusEvents     []StatusEvent     `json:"status_events,omitempty"`
	AssignmentEvents []AssignmentEvent `json:"assignment_events,omitempty"`
}

// StatusEvent is a single status change. Events for an item are not
// guaranteed sorted on input.
type StatusEvent struct {
	Date       time.Time `json:"date"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
}

// AssignmentEvent is a single assignee change. An empty ToAssignee means
// the item was unassigned by the event.
type AssignmentEvent struct {
	Date         time.Time `json:"date"`
	FromAssignee string    `json:"from_assignee,omitempty"`
	ToAssignee   string    `json:"to_assignee,omitempty"`
}

// StageTransition is a derived move between two stages with the time spent
// in the from-stage. Durations are never negative; out-of-order timestamps
// are clamped to zero during reconstruction.
type StageTransition struct {
	FromStage  string        `json:"from_stage"`
	ToStage    string        `json:"to_stage"`
	Duration   time.Duration `json:"duration"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// StageClass labels a status as value-adding or waiting.
type StageClass string

const (
	StageActive  StageClass = "active"
	StageWaiting StageClass = "waiting"
)

// Exclusions counts data-quality skips made at the boundary. They are
// reported, never raised.
type Exclusions struct {
	ItemsSkipped  int `json:"items_skipped"`
	EventsSkipped int `json:"events_skipped"`
}

// Add merges counters from another batch.
func (e *Exclusions) Add(other Exclusions) {
	e.ItemsSkipped += other.ItemsSkipped
	e.EventsSkipped += other.EventsSkipped
}

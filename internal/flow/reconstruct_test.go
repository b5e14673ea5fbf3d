package flow

import (
	"testing"
	"time"
)

func TestReconstructTransitionsJourney(t *testing.T) {
	created := date("2026-03-02T08:00:00Z")
	events := []StatusEvent{
		{Date: created.Add(1 * time.Hour), FromStatus: "To Do", ToStatus: "In Progress"},
		{Date: created.Add(25 * time.Hour), FromStatus: "In Progress", ToStatus: "Code Review"},
		{Date: created.Add(30 * time.Hour), FromStatus: "Code Review", ToStatus: "Done"},
	}

	trs := ReconstructTransitions(created, events, "In Progress", "Done")

	if len(trs) != 3 {
		t.Fatalf("got %d transitions, want 3", len(trs))
	}
	wantDurations := []time.Duration{1 * time.Hour, 24 * time.Hour, 5 * time.Hour}
	wantFrom := []string{CreatedStage, "In Progress", "Code Review"}
	for i, tr := range trs {
		if tr.Duration != wantDurations[i] {
			t.Errorf("transition %d duration = %v, want %v", i, tr.Duration, wantDurations[i])
		}
		if tr.FromStage != wantFrom[i] {
			t.Errorf("transition %d from = %q, want %q", i, tr.FromStage, wantFrom[i])
		}
	}

	if ct := CycleTime(trs, "In Progress"); ct != 29*time.Hour {
		t.Errorf("cycle time = %v, want 29h", ct)
	}
}

func TestReconstructTransitionsUnsortedEvents(t *testing.T) {
	created := date("2026-03-02T08:00:00Z")
	events := []StatusEvent{
		{Date: created.Add(30 * time.Hour), FromStatus: "Code Review", ToStatus: "Done"},
		{Date: created.Add(1 * time.Hour), FromStatus: "To Do", ToStatus: "In Progress"},
		{Date: created.Add(25 * time.Hour), FromStatus: "In Progress", ToStatus: "Code Review"},
	}

	trs := ReconstructTransitions(created, events, "In Progress", "Done")

	if len(trs) != 3 {
		t.Fatalf("got %d transitions, want 3", len(trs))
	}
	for i := 1; i < len(trs); i++ {
		if trs[i].OccurredAt.Before(trs[i-1].OccurredAt) {
			t.Errorf("transitions out of order at %d", i)
		}
	}
}

func TestReconstructTransitionsClampsClockSkew(t *testing.T) {
	created := date("2026-03-02T08:00:00Z")
	events := []StatusEvent{
		// Event recorded before the item existed.
		{Date: created.Add(-2 * time.Hour), FromStatus: "To Do", ToStatus: "In Progress"},
		{Date: created.Add(4 * time.Hour), FromStatus: "In Progress", ToStatus: "Done"},
	}

	trs := ReconstructTransitions(created, events, "In Progress", "Done")

	if len(trs) != 2 {
		t.Fatalf("got %d transitions, want 2", len(trs))
	}
	if trs[0].Duration != 0 {
		t.Errorf("skewed transition duration = %v, want 0", trs[0].Duration)
	}
	for i, tr := range trs {
		if tr.Duration < 0 {
			t.Errorf("transition %d has negative duration %v", i, tr.Duration)
		}
	}
}

func TestReconstructTransitionsNeverEntersCycle(t *testing.T) {
	created := date("2026-03-02T08:00:00Z")
	events := []StatusEvent{
		{Date: created.Add(1 * time.Hour), FromStatus: "To Do", ToStatus: "Blocked"},
		{Date: created.Add(2 * time.Hour), FromStatus: "Blocked", ToStatus: "To Do"},
	}

	if trs := ReconstructTransitions(created, events, "In Progress", "Done"); len(trs) != 0 {
		t.Errorf("got %d transitions, want none before the cycle start", len(trs))
	}
}

func TestReconstructTransitionsStopsAtCycleEnd(t *testing.T) {
	created := date("2026-03-02T08:00:00Z")
	events := []StatusEvent{
		{Date: created.Add(1 * time.Hour), FromStatus: "To Do", ToStatus: "In Progress"},
		{Date: created.Add(10 * time.Hour), FromStatus: "In Progress", ToStatus: "Done"},
		// Reopened after completion; outside the measured cycle.
		{Date: created.Add(48 * time.Hour), FromStatus: "Done", ToStatus: "In Progress"},
		{Date: created.Add(72 * time.Hour), FromStatus: "In Progress", ToStatus: "Done"},
	}

	trs := ReconstructTransitions(created, events, "In Progress", "Done")

	if len(trs) != 2 {
		t.Fatalf("got %d transitions, want 2 (stop at first cycle end)", len(trs))
	}
	if last := trs[len(trs)-1]; last.ToStage != "Done" {
		t.Errorf("last transition goes to %q, want Done", last.ToStage)
	}
}

func TestReconstructTransitionsCreatedInCycleStart(t *testing.T) {
	// Item never transitioned into In Progress because it was created there.
	created := date("2026-03-02T08:00:00Z")
	events := []StatusEvent{
		{Date: created.Add(6 * time.Hour), FromStatus: "In Progress", ToStatus: "Done"},
	}

	trs := ReconstructTransitions(created, events, "In Progress", "Done")

	if len(trs) != 1 {
		t.Fatalf("got %d transitions, want 1", len(trs))
	}
	if trs[0].Duration != 6*time.Hour {
		t.Errorf("duration = %v, want 6h", trs[0].Duration)
	}
	if ct := CycleTime(trs, "In Progress"); ct != 6*time.Hour {
		t.Errorf("cycle time = %v, want 6h", ct)
	}
}

func TestReconstructTransitionsNoEvents(t *testing.T) {
	if trs := ReconstructTransitions(date("2026-03-02T08:00:00Z"), nil, "In Progress", "Done"); trs != nil {
		t.Errorf("got %v, want nil for an item with no history", trs)
	}
}

package flow

import (
	"slices"
	"time"
)

// CreatedStage is the virtual stage an item occupies from creation until
// its first recorded status change.
const CreatedStage = "Created"

// ReconstructTransitions rebuilds the per-stage journey of an item from its
// raw status history. The walk starts in the virtual Created stage at the
// creation instant and emits one transition per status change, carrying the
// time spent in the stage being left. Only the portion of the journey inside
// the configured cycle is emitted: accumulation starts with the transition
// into cycleStart and stops, inclusively, with the transition into cycleEnd.
// Negative durations from out-of-order timestamps are clamped to zero.
func ReconstructTransitions(created time.Time, events []StatusEvent, cycleStart, cycleEnd string) []StageTransition {
	if len(events) == 0 {
		return nil
	}
	sorted := slices.Clone(events)
	slices.SortFunc(sorted, func(a, b StatusEvent) int {
		return a.Date.Compare(b.Date)
	})

	var transitions []StageTransition
	current := CreatedStage
	enteredAt := created
	inCycle := current == cycleStart

	for _, ev := range sorted {
		d := ev.Date.Sub(enteredAt)
		if d < 0 {
			d = 0
		}
		// The cycle opens when the walk transitions into cycleStart, or
		// when an event leaves it (items created directly in the status).
		if inCycle || ev.ToStatus == cycleStart || ev.FromStatus == cycleStart {
			transitions = append(transitions, StageTransition{
				FromStage:  current,
				ToStage:    ev.ToStatus,
				Duration:   d,
				OccurredAt: ev.Date,
			})
			inCycle = true
		}
		current = ev.ToStatus
		enteredAt = ev.Date
		if inCycle && ev.ToStatus == cycleEnd {
			break
		}
	}
	return transitions
}

// CycleTime sums the in-cycle transition durations, i.e. the elapsed time
// between entering the cycle and reaching its end. When the first
// transition is the entry into cycleStart its duration is pre-cycle time
// and does not count.
func CycleTime(transitions []StageTransition, cycleStart string) time.Duration {
	var total time.Duration
	for i, tr := range transitions {
		if i == 0 && tr.ToStage == cycleStart {
			continue
		}
		total += tr.Duration
	}
	return total
}

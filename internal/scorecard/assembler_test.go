package scorecard

import (
	"fmt"
	"testing"
	"time"

	"flowhealth/internal/flow"
)

func testWorkflow() *flow.WorkflowConfig {
	return &flow.WorkflowConfig{
		StatusOrder: []string{"To Do", "In Progress", "Code Review", "Testing", "Done"},
		Classification: map[string]flow.StageClass{
			"To Do":       flow.StageWaiting,
			"In Progress": flow.StageActive,
			"Code Review": flow.StageWaiting,
			"Testing":     flow.StageActive,
		},
		CycleStartStatus: "In Progress",
		CycleEndStatus:   "Done",
		DoneStatuses:     []string{"Done"},
		ActiveStatuses:   []string{"In Progress", "Code Review", "Testing"},
		SlowStage:        "Testing",
	}
}

// fourWeekInput builds items spread over the four weekly windows ending at
// anchor: perWeekArrivals new items per week, perWeekDone of them finished
// within the same week.
func fourWeekInput(anchor time.Time, perWeekArrivals, perWeekDone int) Input {
	windows := flow.RollingWindows(anchor, 4)
	var in Input
	n := 0
	for _, w := range windows {
		for i := 0; i < perWeekArrivals; i++ {
			n++
			created := w.Start.Add(time.Duration(i+1) * 6 * time.Hour)
			item := flow.WorkItem{
				Key:      fmt.Sprintf("W-%d", n),
				Category: "Story",
				Created:  created,
				Status:   "In Progress",
			}
			if i < perWeekDone {
				start := created.Add(2 * time.Hour)
				test := created.Add(20 * time.Hour)
				done := created.Add(26 * time.Hour)
				item.Status = "Done"
				item.Resolved = &done
				item.StatusEvents = []flow.StatusEvent{
					{Date: start, FromStatus: "To Do", ToStatus: "In Progress"},
					{Date: test, FromStatus: "In Progress", ToStatus: "Testing"},
					{Date: done, FromStatus: "Testing", ToStatus: "Done"},
				}
				item.AssignmentEvents = []flow.AssignmentEvent{
					{Date: created.Add(time.Hour), ToAssignee: "Avery Chen"},
				}
				item.Assignee = "Avery Chen"
			}
			in.Arrivals = append(in.Arrivals, item)
			if item.Resolved != nil {
				in.Completions = append(in.Completions, item)
			}
		}
	}
	return in
}

func TestAnalyzeShape(t *testing.T) {
	anchor := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	in := fourWeekInput(anchor, 5, 3)

	res, err := Analyze(in, testWorkflow(), DefaultParams(), anchor)
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Periods) != 4 {
		t.Fatalf("got %d periods, want 4", len(res.Periods))
	}
	for i := 1; i < len(res.Periods); i++ {
		if !res.Periods[i-1].Window.End.Before(res.Periods[i].Window.Start) {
			t.Errorf("periods not ordered oldest first at %d", i)
		}
	}
	for i, p := range res.Periods {
		if p.NetFlow != p.Arrivals-p.Completions {
			t.Errorf("period %d: net flow %d != arrivals-completions %d", i, p.NetFlow, p.Arrivals-p.Completions)
		}
		if p.Arrivals != 5 || p.Completions != 3 {
			t.Errorf("period %d: counts %d/%d, want 5/3", i, p.Arrivals, p.Completions)
		}
	}
	if len(res.Alerts) != 4 {
		t.Errorf("got %d alerts, want the full catalog", len(res.Alerts))
	}
	if res.Meta.PeriodsAnalyzed != 4 {
		t.Errorf("meta periods = %d, want 4", res.Meta.PeriodsAnalyzed)
	}
	if len(res.Trend.EWMASeries) != 4 {
		t.Errorf("ewma series length = %d, want 4", len(res.Trend.EWMASeries))
	}
	if len(res.Insights) == 0 {
		t.Error("no insights produced")
	}
}

func TestAnalyzeReproducible(t *testing.T) {
	anchor := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	in := fourWeekInput(anchor, 8, 4)
	wf := testWorkflow()

	a, err := Analyze(in, wf, DefaultParams(), anchor)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Analyze(in, wf, DefaultParams(), anchor)
	if err != nil {
		t.Fatal(err)
	}

	if a.Signal != b.Signal {
		t.Errorf("same seed, different signals: %+v vs %+v", a.Signal, b.Signal)
	}
	if a.Trend.CurrentEWMA != b.Trend.CurrentEWMA || a.Trend.Direction != b.Trend.Direction {
		t.Errorf("same inputs, different trends: %+v vs %+v", a.Trend, b.Trend)
	}
}

func TestAnalyzeStableSeriesIsCalm(t *testing.T) {
	anchor := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	in := fourWeekInput(anchor, 6, 6)

	res, err := Analyze(in, testWorkflow(), DefaultParams(), anchor)
	if err != nil {
		t.Fatal(err)
	}

	// Identical weeks: no dispersion, no shift, no debt.
	if res.Volatility.ArrivalsCV != 0 {
		t.Errorf("arrivals CV = %v, want 0 for identical weeks", res.Volatility.ArrivalsCV)
	}
	if res.Volatility.StabilityIndex != 100 {
		t.Errorf("stability index = %v, want 100", res.Volatility.StabilityIndex)
	}
	if res.Trend.ShiftDetected {
		t.Error("shift detected in a constant series")
	}
	if res.Trend.Direction != "flat" {
		t.Errorf("trend direction = %q, want flat", res.Trend.Direction)
	}
	if res.FlowDebt.Total != 0 {
		t.Errorf("flow debt = %v, want 0 when every week balances", res.FlowDebt.Total)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	anchor := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	res, err := Analyze(Input{}, testWorkflow(), DefaultParams(), anchor)
	if err != nil {
		t.Fatal(err)
	}

	if res.Signal.Label != "inconclusive" || res.Signal.CILow != 0 || res.Signal.CIHigh != 0 {
		t.Errorf("empty input signal = %+v, want degenerate inconclusive", res.Signal)
	}
	for _, a := range res.Alerts {
		if a.Triggered {
			t.Errorf("alert %q triggered on empty input", a.ID)
		}
	}
	if len(res.Segments) != 0 {
		t.Errorf("got %d segments, want none", len(res.Segments))
	}
}

func TestAnalyzeRejectsBadConfig(t *testing.T) {
	anchor := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	badParams := DefaultParams()
	badParams.ConfidenceLevel = 2.0
	if _, err := Analyze(Input{}, testWorkflow(), badParams, anchor); err == nil {
		t.Error("invalid params accepted")
	}

	badWF := testWorkflow()
	badWF.CycleStartStatus = "Nonexistent"
	if _, err := Analyze(Input{}, badWF, DefaultParams(), anchor); err == nil {
		t.Error("invalid workflow accepted")
	}
}

func TestAnalyzeSegmentsSumToTotals(t *testing.T) {
	anchor := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	in := fourWeekInput(anchor, 7, 2)
	// Recolor some items so the current week has several categories.
	for i := range in.Arrivals {
		if i%3 == 0 {
			in.Arrivals[i].Category = "Bug"
		}
	}

	res, err := Analyze(in, testWorkflow(), DefaultParams(), anchor)
	if err != nil {
		t.Fatal(err)
	}

	var segArrivals int
	for _, s := range res.Segments {
		segArrivals += s.Arrivals
	}
	if segArrivals != res.Current().Arrivals {
		t.Errorf("segment arrivals sum = %d, want %d", segArrivals, res.Current().Arrivals)
	}
}

package scorecard

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"flowhealth/internal/flow"
	"flowhealth/internal/stats"
)

// periodCount is the rolling trend depth: the current week plus the three
// before it.
const periodCount = 4

// Input is the raw material for one scorecard run, already normalized by
// the boundary adapter.
type Input struct {
	Arrivals    []flow.WorkItem `json:"arrivals"`
	Completions []flow.WorkItem `json:"completions"`
	Exclusions  flow.Exclusions `json:"exclusions"`
}

// Period is one weekly window's counting metrics plus its efficiency view.
type Period struct {
	flow.PeriodMetrics
	Efficiency flow.EfficiencyResult `json:"efficiency"`
}

// TrendState is the smoothed history of the flow ratio.
type TrendState struct {
	EWMASeries    []float64   `json:"ewma_series"`
	CurrentEWMA   float64     `json:"current_ewma"`
	Direction     string      `json:"direction"`
	ShiftDetected bool        `json:"shift_detected"`
	Shift         stats.Shift `json:"shift"`
}

// Meta records when and how the scorecard was produced.
type Meta struct {
	GeneratedAt     time.Time `json:"generated_at"`
	Anchor          time.Time `json:"anchor"`
	Year            int       `json:"year"`
	Week            int       `json:"week"`
	PeriodsAnalyzed int       `json:"periods_analyzed"`
	Params          Params    `json:"params"`
}

// Result is the complete scorecard handed to a renderer. Periods run
// oldest to newest; the last entry is the current week.
type Result struct {
	Meta       Meta                    `json:"meta"`
	Periods    []Period                `json:"periods"`
	Signal     stats.Signal            `json:"signal"`
	Trend      TrendState              `json:"trend"`
	Volatility stats.VolatilityMetrics `json:"volatility"`
	FlowDebt   stats.FlowDebt          `json:"flow_debt"`
	Segments   []flow.SegmentMetrics   `json:"segments"`
	Assignment flow.AssignmentMetrics  `json:"assignment"`
	Alerts     []Alert                 `json:"alerts"`
	Insights   []string                `json:"insights"`
	Exclusions flow.Exclusions         `json:"exclusions"`
}

// Current returns the newest period.
func (r *Result) Current() Period {
	return r.Periods[len(r.Periods)-1]
}

// Analyze runs the full pipeline: four rolling weekly windows of counting
// and efficiency metrics, statistical signals over their series, and the
// current window's segmentation, ownership, and alert evaluation. The
// anchor fixes the newest window; pass time.Now() for a live run. The
// computation is pure: identical inputs, params, and anchor always produce
// an identical result.
func Analyze(in Input, wf *flow.WorkflowConfig, params Params, anchor time.Time) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := wf.Validate(); err != nil {
		return nil, err
	}

	windows := flow.RollingWindows(anchor, periodCount)
	periods := make([]Period, periodCount)

	// The windows are independent, so count them in parallel. Each closure
	// writes only its own slot.
	var g errgroup.Group
	for i, w := range windows {
		g.Go(func() error {
			m := flow.CountPeriod(in.Arrivals, in.Completions, w, wf)
			eff := flow.AnalyzeEfficiency(flow.CompletedIn(in.Completions, w, wf), wf)
			periods[i] = Period{PeriodMetrics: m, Efficiency: eff}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	flowRatios := make([]float64, periodCount)
	arrivals := make([]float64, periodCount)
	throughput := make([]float64, periodCount)
	netFlows := make([]float64, periodCount)
	for i, p := range periods {
		flowRatios[i] = p.FlowRatio
		arrivals[i] = float64(p.Arrivals)
		throughput[i] = float64(p.Completions)
		netFlows[i] = float64(p.NetFlow)
	}

	current := periods[periodCount-1]
	log.Debug().
		Int("arrivals", current.Arrivals).
		Int("completions", current.Completions).
		Str("flow_status", current.FlowStatus).
		Msg("current period counted")

	rng := rand.New(rand.NewSource(params.Seed))
	signal := stats.BootstrapNetFlowCI(
		float64(current.Arrivals), float64(current.Completions),
		params.Resamples, params.ConfidenceLevel, rng)

	trend := stats.AnalyzeTrend(flowRatios, params.EWMAAlpha)
	shift := stats.DetectShift(flowRatios, params.CUSUMKFactor, params.CUSUMHFactor)

	vol := stats.VolatilityMetrics{
		ArrivalsCV:     stats.CV(arrivals),
		ThroughputCV:   stats.CV(throughput),
		StabilityIndex: stats.StabilityIndex(netFlows, params.CVWindow),
		RollingCV:      stats.RollingCV(flowRatios, params.CVWindow),
	}
	debt := stats.AccumulateFlowDebt(netFlows)

	currentWindow := windows[periodCount-1]
	currentDone := flow.CompletedIn(in.Completions, currentWindow, wf)
	segments := flow.SegmentPeriod(in.Arrivals, in.Completions, currentWindow, wf)
	assignment := flow.AnalyzeAssignment(currentDone, wf)

	slowP85Days := 0.0
	if wf.SlowStage != "" {
		if ages := flow.StageDurations(currentDone, wf)[wf.SlowStage]; len(ages) > 0 {
			slowP85Days = stats.Percentile(ages, 0.85) / 24
		}
	}

	alerts := EvaluateAlerts(AlertInputs{
		SignalLabel:      signal.Label,
		ArrivalsCV:       vol.ArrivalsCV,
		FlowEfficiency:   current.Efficiency.EfficiencyPct,
		SlowStage:        wf.SlowStage,
		SlowStageP85Days: slowP85Days,
		ThresholdDays:    params.TestingThresholdDays,
		EWMAFlowRatio:    trend.EWMA,
		TrendDirection:   trend.Direction,
	})

	year, week := windows[periodCount-1].End.ISOWeek()
	res := &Result{
		Meta: Meta{
			GeneratedAt:     time.Now().UTC(),
			Anchor:          anchor.UTC(),
			Year:            year,
			Week:            week,
			PeriodsAnalyzed: periodCount,
			Params:          params,
		},
		Periods: periods,
		Signal:  signal,
		Trend: TrendState{
			EWMASeries:    stats.EWMASeries(flowRatios, params.EWMAAlpha),
			CurrentEWMA:   trend.EWMA,
			Direction:     trend.Direction,
			ShiftDetected: shift.Detected,
			Shift:         shift,
		},
		Volatility: vol,
		FlowDebt:   debt,
		Segments:   segments,
		Assignment: assignment,
		Alerts:     alerts,
		Exclusions: in.Exclusions,
	}
	res.Insights = buildInsights(res)

	triggered := 0
	for _, a := range alerts {
		if a.Triggered {
			triggered++
		}
	}
	log.Info().
		Str("signal", signal.Label).
		Str("trend", trend.Direction).
		Int("alerts_triggered", triggered).
		Msg("scorecard assembled")
	return res, nil
}

// buildInsights turns the computed numbers into short plain-language
// observations for the top of a rendered report.
func buildInsights(r *Result) []string {
	cur := r.Current()
	var out []string

	switch cur.FlowStatus {
	case flow.FlowCriticalBottleneck:
		out = append(out, fmt.Sprintf(
			"Backlog grew by %d items this week, more than 20%% of intake; completions are not keeping up.",
			cur.NetFlow))
	case flow.FlowMinorBottleneck:
		out = append(out, fmt.Sprintf("Backlog grew slightly (+%d items) this week.", cur.NetFlow))
	case flow.FlowHealthy:
		out = append(out, fmt.Sprintf("The team paid down %d items of backlog this week.", -cur.NetFlow))
	default:
		out = append(out, "Intake and completions were exactly balanced this week.")
	}

	if r.Signal.Label == stats.SignalAccumulation {
		out = append(out, fmt.Sprintf(
			"The net-flow confidence interval [%.0f, %.0f] sits entirely above zero; accumulation is likely real, not noise.",
			r.Signal.CILow, r.Signal.CIHigh))
	}
	if cur.Efficiency.Bottleneck != "N/A" {
		out = append(out, fmt.Sprintf(
			"Most cycle time pooled in %q (%.1f hours across completed items).",
			cur.Efficiency.Bottleneck, cur.Efficiency.BottleneckHrs))
	}
	if r.Trend.ShiftDetected {
		out = append(out, "A sustained shift in the flow ratio was detected; the recent change is not a one-week blip.")
	}
	return out
}

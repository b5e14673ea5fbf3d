package scorecard

import (
	"fmt"

	"flowhealth/internal/stats"
)

// Alert is one entry of the fixed alert catalog. Every alert is always
// present in the output with its triggered flag, so consumers can render a
// complete checklist instead of diffing which rules fired.
type Alert struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Triggered   bool   `json:"triggered"`
	Rationale   string `json:"rationale"`
	Remediation string `json:"remediation"`
}

// AlertInputs are the already-computed signals the rules read. The rule
// engine itself does no computation beyond comparisons.
type AlertInputs struct {
	SignalLabel      string
	ArrivalsCV       float64
	FlowEfficiency   float64
	SlowStage        string
	SlowStageP85Days float64
	ThresholdDays    float64
	EWMAFlowRatio    float64
	TrendDirection   string
}

// EvaluateAlerts runs the fixed rule catalog against the computed signals.
func EvaluateAlerts(in AlertInputs) []Alert {
	alerts := make([]Alert, 0, 4)

	acc := in.SignalLabel == stats.SignalAccumulation
	alerts = append(alerts, Alert{
		ID:        "probable_accumulation",
		Title:     "Probable backlog accumulation",
		Triggered: acc,
		Rationale: fmt.Sprintf("bootstrap signal label is %q", in.SignalLabel),
		Remediation: "Throttle intake or add completion capacity until the " +
			"net-flow confidence interval returns to zero.",
	})

	unstable := in.ArrivalsCV > 30.0
	alerts = append(alerts, Alert{
		ID:        "unstable_intake",
		Title:     "Unstable intake",
		Triggered: unstable,
		Rationale: fmt.Sprintf("arrivals CV is %.1f%% (threshold 30.0%%)", in.ArrivalsCV),
		Remediation: "Batch intake into a weekly triage cadence to smooth " +
			"arrival bursts.",
	})

	testing := in.FlowEfficiency < 40.0 && in.SlowStageP85Days > in.ThresholdDays
	alerts = append(alerts, Alert{
		ID:        "testing_bottleneck",
		Title:     "Verification stage bottleneck",
		Triggered: testing,
		Rationale: fmt.Sprintf("flow efficiency is %.1f%% and P85 age in %q is %.1f days (threshold %.1f)",
			in.FlowEfficiency, in.SlowStage, in.SlowStageP85Days, in.ThresholdDays),
		Remediation: "Pair on verification work or raise the WIP limit ahead " +
			"of the slow stage to drain its queue.",
	})

	drift := in.EWMAFlowRatio > 110.0 && in.TrendDirection == stats.TrendUp
	alerts = append(alerts, Alert{
		ID:        "intake_drift",
		Title:     "Completion rate drifting above intake",
		Triggered: drift,
		Rationale: fmt.Sprintf("EWMA flow ratio is %.1f%% with direction %q", in.EWMAFlowRatio, in.TrendDirection),
		Remediation: "Pull forward planned work; the team is completing " +
			"faster than items arrive and will starve.",
	})

	return alerts
}

// Package scorecard assembles the full flow-health scorecard: four rolling
// weekly periods of counting metrics plus the current period's statistical
// signals, segmentation, ownership view, and alert evaluation.
package scorecard

import "fmt"

// Params are the caller-tunable statistical knobs. Zero values are not
// usable; start from DefaultParams and override.
type Params struct {
	Resamples            int     `json:"resamples"`
	ConfidenceLevel      float64 `json:"confidence_level"`
	EWMAAlpha            float64 `json:"ewma_alpha"`
	CUSUMKFactor         float64 `json:"cusum_k_factor"`
	CUSUMHFactor         float64 `json:"cusum_h_factor"`
	CVWindow             int     `json:"cv_window"`
	TestingThresholdDays float64 `json:"testing_threshold_days"`
	Seed                 int64   `json:"seed"`
}

// DefaultParams returns the standard parameterization.
func DefaultParams() Params {
	return Params{
		Resamples:            2000,
		ConfidenceLevel:      0.95,
		EWMAAlpha:            0.2,
		CUSUMKFactor:         0.5,
		CUSUMHFactor:         5.0,
		CVWindow:             8,
		TestingThresholdDays: 7.0,
		Seed:                 42,
	}
}

// Validate rejects parameterizations that would make the statistics
// meaningless. These are caller configuration errors, not data errors.
func (p Params) Validate() error {
	if p.Resamples <= 0 {
		return fmt.Errorf("params: resamples must be positive, got %d", p.Resamples)
	}
	if p.ConfidenceLevel <= 0 || p.ConfidenceLevel >= 1 {
		return fmt.Errorf("params: confidence_level must be in (0,1), got %g", p.ConfidenceLevel)
	}
	if p.EWMAAlpha <= 0 || p.EWMAAlpha > 1 {
		return fmt.Errorf("params: ewma_alpha must be in (0,1], got %g", p.EWMAAlpha)
	}
	if p.CUSUMKFactor <= 0 {
		return fmt.Errorf("params: cusum_k_factor must be positive, got %g", p.CUSUMKFactor)
	}
	if p.CUSUMHFactor <= 0 {
		return fmt.Errorf("params: cusum_h_factor must be positive, got %g", p.CUSUMHFactor)
	}
	if p.CVWindow < 2 {
		return fmt.Errorf("params: cv_window must be at least 2, got %d", p.CVWindow)
	}
	if p.TestingThresholdDays < 0 {
		return fmt.Errorf("params: testing_threshold_days must not be negative, got %g", p.TestingThresholdDays)
	}
	return nil
}

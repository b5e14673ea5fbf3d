package scorecard

import "testing"

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"Defaults", func(p *Params) {}, false},
		{"ZeroResamples", func(p *Params) { p.Resamples = 0 }, true},
		{"NegativeResamples", func(p *Params) { p.Resamples = -5 }, true},
		{"ConfidenceZero", func(p *Params) { p.ConfidenceLevel = 0 }, true},
		{"ConfidenceOne", func(p *Params) { p.ConfidenceLevel = 1 }, true},
		{"AlphaZero", func(p *Params) { p.EWMAAlpha = 0 }, true},
		{"AlphaOneIsFine", func(p *Params) { p.EWMAAlpha = 1 }, false},
		{"AlphaAboveOne", func(p *Params) { p.EWMAAlpha = 1.1 }, true},
		{"NegativeK", func(p *Params) { p.CUSUMKFactor = -1 }, true},
		{"ZeroH", func(p *Params) { p.CUSUMHFactor = 0 }, true},
		{"TinyCVWindow", func(p *Params) { p.CVWindow = 1 }, true},
		{"NegativeThreshold", func(p *Params) { p.TestingThresholdDays = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.Resamples != 2000 || p.ConfidenceLevel != 0.95 || p.EWMAAlpha != 0.2 {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if p.CUSUMKFactor != 0.5 || p.CUSUMHFactor != 5.0 || p.CVWindow != 8 || p.TestingThresholdDays != 7.0 {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

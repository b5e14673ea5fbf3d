package stats

import "testing"

func TestDetectShiftGuards(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
	}{
		{"Empty", nil},
		{"TwoPoints", []float64{5, 50}},
		{"ZeroVariance", []float64{10, 10, 10, 10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectShift(tt.series, 0.5, 5.0); got.Detected {
				t.Errorf("DetectShift() = %+v, want no shift", got)
			}
		})
	}
}

func TestDetectShiftUpwardSpike(t *testing.T) {
	// Flat level with a single large excursion at the end. The slack k
	// swallows the small deviations of the flat stretch, so only the high
	// side accumulates.
	series := []float64{10, 10, 10, 10, 10, 10, 10, 10, 40}
	got := DetectShift(series, 0.5, 2.0)

	if !got.Detected {
		t.Fatalf("no shift detected in spike series")
	}
	if got.Direction != TrendUp {
		t.Errorf("direction = %q, want %q", got.Direction, TrendUp)
	}
	if got.Index != 8 {
		t.Errorf("shift index = %d, want 8", got.Index)
	}
}

func TestDetectShiftDownwardSpike(t *testing.T) {
	series := []float64{20, 20, 20, 20, 20, 20, 20, 20, 2}
	got := DetectShift(series, 0.5, 2.0)

	if !got.Detected {
		t.Fatalf("no shift detected in spike series")
	}
	if got.Direction != TrendDown {
		t.Errorf("direction = %q, want %q", got.Direction, TrendDown)
	}
}

func TestDetectShiftStableSeries(t *testing.T) {
	series := []float64{10, 11, 9, 10, 11, 9, 10, 11, 9, 10}
	if got := DetectShift(series, 0.5, 5.0); got.Detected {
		t.Errorf("stable series reported a shift: %+v", got)
	}
}

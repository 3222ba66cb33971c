package testutil

import (
	"math"
	"testing"
)

func TestWorstDiff(t *testing.T) {
	tests := []struct {
		name      string
		a, b      []float64
		wantAt    int
		wantWorst float64
	}{
		{"largest wins", []float64{1, 2, 3}, []float64{1, 2.5, 2}, 2, 1},
		{"identical", []float64{4, 5}, []float64{4, 5}, 0, 0},
		{"common prefix", []float64{1, 9}, []float64{1}, 0, 0},
		{"empty", nil, nil, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, worst := WorstDiff(tt.a, tt.b)
			if at != tt.wantAt || math.Abs(worst-tt.wantWorst) > 1e-15 {
				t.Errorf("WorstDiff = (%d, %v), want (%d, %v)", at, worst, tt.wantAt, tt.wantWorst)
			}
		})
	}
}

func TestWithin(t *testing.T) {
	tests := []struct {
		got, want float64
		ok        bool
	}{
		{1, 1 + 1e-13, true},
		{1, 1.1, false},
		{math.NaN(), math.NaN(), true},
		{0, math.NaN(), false},
		{math.Inf(1), math.Inf(1), true},
		{math.Inf(-1), math.Inf(1), false},
		{1e300, math.Inf(1), false},
	}

	for _, tt := range tests {
		if got := within(tt.got, tt.want, 1e-12); got != tt.ok {
			t.Errorf("within(%v, %v) = %v, want %v", tt.got, tt.want, got, tt.ok)
		}
	}
}

func TestRequireHelpersPass(t *testing.T) {
	RequireNearlyEqual(t, "r", 0.5, 0.5+1e-13, 1e-12)
	RequireNearlyEqual(t, "p", math.NaN(), math.NaN(), 0)
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-13}, 1e-12)
	RequireSliceNearlyEqual(t, nil, nil, 0)
}

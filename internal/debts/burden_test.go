package debts

import (
	"math"
	"testing"
)

func TestBurden(t *testing.T) {
	pct := Burden(500, 5000)
	if pct == nil || math.Abs(*pct-10) > 0.001 {
		t.Errorf("Burden(500, 5000) = %v, expected 10", pct)
	}
	if Burden(500, 0) != nil {
		t.Errorf("Burden with zero net income should be nil")
	}
	if Burden(500, -100) != nil {
		t.Errorf("Burden with negative net income should be nil")
	}
}

func TestBurdenBand(t *testing.T) {
	tests := []struct {
		name     string
		pct      float64
		expected string
	}{
		{"Zero is light", 0, "light"},
		{"Just under light cap", 9.99, "light"},
		{"At light cap is manageable", 10, "manageable"},
		{"Mid manageable", 15, "manageable"},
		{"At manageable cap is heavy", 20, "heavy"},
		{"At heavy cap is severe", 30, "severe"},
		{"Far past severe", 85, "severe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BurdenBand(tt.pct); got != tt.expected {
				t.Errorf("BurdenBand(%v) = %q, expected %q", tt.pct, got, tt.expected)
			}
		})
	}
}

package vmath

import (
	"math"
	"testing"
)

func TestRoundToStep(t *testing.T) {
	tests := []struct {
		v, step, want float64
	}{
		{9.6, 1.0, 10},
		{1.8, 1.0, 2},
		{-3.2, 1.0, -3},
		{0.24, 0.5, 0},
		{0.26, 0.5, 0.5},
		{7.5, 5.0, 10}, // math.Round half away from zero
	}

	for _, tt := range tests {
		if got := RoundToStep(tt.v, tt.step); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("RoundToStep(%g, %g): expected %g, got %g", tt.v, tt.step, tt.want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(15, 0.1, 10); got != 10 {
		t.Errorf("Expected 10, got %g", got)
	}
	if got := Clamp(0.05, 0.1, 10); got != 0.1 {
		t.Errorf("Expected 0.1, got %g", got)
	}
	if got := Clamp(3, 0.1, 10); got != 3 {
		t.Errorf("Expected 3, got %g", got)
	}
}

func TestV3DistXZIgnoresVertical(t *testing.T) {
	a := Vec3{X: 0, Y: 100, Z: 0}
	b := Vec3{X: 3, Y: -50, Z: 4}
	if got := V3DistXZ(a, b); math.Abs(got-5) > 1e-12 {
		t.Errorf("Expected distance 5, got %g", got)
	}
}

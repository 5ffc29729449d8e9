package curve

import (
	"math"
	"testing"

	"github.com/parafovea/fovea-sub006/internal/track"
)

func TestEndpointExactness(t *testing.T) {
	curves := []struct {
		name string
		c    Curve
	}{
		{"linear", Linear{}},
		{"ease-in", EaseIn{}},
		{"ease-out", EaseOut{}},
		{"ease-in-out", EaseInOut{}},
		{"hold", Hold{}},
		{"bezier", Bezier{P1: track.ControlPoint{X: 0.25, Y: 0.1}, P2: track.ControlPoint{X: 0.75, Y: 0.9}}},
		{"quadratic", Quadratic{Acceleration: 9.8}},
		{"sinusoidal", Sinusoidal{Frequency: 1, Amplitude: 0.2}},
	}

	for _, tt := range curves {
		t.Run(tt.name, func(t *testing.T) {
			start, end := 12.5, -80.25
			if got := tt.c.Evaluate(start, end, 0); got != start {
				t.Errorf("t=0: expected exactly %v, got %v", start, got)
			}
			if got := tt.c.Evaluate(start, end, 1); got != end {
				t.Errorf("t=1: expected exactly %v, got %v", end, got)
			}
		})
	}
}

func TestLinearMidpoint(t *testing.T) {
	got := Linear{}.Evaluate(0, 100, 0.5)
	if got != 50 {
		t.Errorf("expected 50 at midpoint, got %v", got)
	}
}

func TestEaseProgress(t *testing.T) {
	tests := []struct {
		name     string
		c        Curve
		t        float64
		expected float64
	}{
		{"ease-in quarter", EaseIn{}, 0.5, 25},
		{"ease-out fast start", EaseOut{}, 0.5, 75},
		{"ease-in-out first half", EaseInOut{}, 0.25, 12.5},
		{"ease-in-out second half", EaseInOut{}, 0.75, 87.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Evaluate(0, 100, tt.t)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEaseInSlowerThanLinearEarly(t *testing.T) {
	for _, tm := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		lin := Linear{}.Evaluate(0, 1, tm)
		in := EaseIn{}.Evaluate(0, 1, tm)
		out := EaseOut{}.Evaluate(0, 1, tm)
		if in >= lin {
			t.Errorf("t=%.1f: ease-in should lag linear (%v >= %v)", tm, in, lin)
		}
		if out <= lin {
			t.Errorf("t=%.1f: ease-out should lead linear (%v <= %v)", tm, out, lin)
		}
	}
}

func TestHoldFreezesStartValue(t *testing.T) {
	h := Hold{}
	for _, tm := range []float64{0, 0.01, 0.25, 0.5, 0.99} {
		if got := h.Evaluate(5, 50, tm); got != 5 {
			t.Errorf("t=%v: expected held value 5, got %v", tm, got)
		}
	}
}

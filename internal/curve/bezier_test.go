package curve

import (
	"math"
	"testing"

	"github.com/parafovea/fovea-sub006/internal/track"
)

func TestSolveParameterConvergence(t *testing.T) {
	p1x, p2x := 0.25, 0.75
	for _, target := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		u := SolveParameter(target, p1x, p2x)
		if u < 0 || u > 1 {
			t.Fatalf("t=%v: solved parameter %v outside [0,1]", target, u)
		}
		residual := math.Abs(CubicAxis(u, p1x, p2x) - target)
		if residual >= 1e-4 {
			t.Errorf("t=%v: residual %v not within 1e-4", target, residual)
		}
	}
}

func TestBezierMonotoneRange(t *testing.T) {
	b := Bezier{P1: track.ControlPoint{X: 0.25, Y: 0.1}, P2: track.ControlPoint{X: 0.75, Y: 0.9}}
	prev := b.Evaluate(0, 100, 0)
	for i := 1; i <= 20; i++ {
		tm := float64(i) / 20
		v := b.Evaluate(0, 100, tm)
		if v < prev-1e-6 {
			t.Errorf("t=%v: value %v decreased from %v on an ease-like curve", tm, v, prev)
		}
		if v < -1e-6 || v > 100+1e-6 {
			t.Errorf("t=%v: value %v escaped [0,100]", tm, v)
		}
		prev = v
	}
}

func TestBezierDegenerateDerivative(t *testing.T) {
	// Control points collinear with the endpoints give x(u)=u and a
	// near-zero derivative nowhere; a flat start still must not blow up.
	b := Bezier{P1: track.ControlPoint{X: 0, Y: 0}, P2: track.ControlPoint{X: 0, Y: 1}}
	for _, tm := range []float64{0.001, 0.5, 0.999} {
		v := b.Evaluate(0, 1, tm)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("t=%v: degenerate solve produced %v", tm, v)
		}
	}
}

func TestForSegmentBezierFallback(t *testing.T) {
	tests := []struct {
		name string
		seg  track.Segment
	}{
		{"no control points", track.Segment{Type: track.SegmentBezier}},
		{"one control point", track.Segment{
			Type:          track.SegmentBezier,
			ControlPoints: map[string][]track.ControlPoint{track.PropX: {{X: 0.5, Y: 0.5}}},
		}},
		{"three control points", track.Segment{
			Type:          track.SegmentBezier,
			ControlPoints: map[string][]track.ControlPoint{track.PropX: {{}, {}, {}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ForSegment(tt.seg, track.PropX)
			if _, ok := c.(Linear); !ok {
				t.Errorf("expected linear fallback, got %T", c)
			}
		})
	}
}

func TestForSegmentBezierPerProperty(t *testing.T) {
	seg := track.Segment{
		Type: track.SegmentBezier,
		ControlPoints: map[string][]track.ControlPoint{
			track.PropX: {{X: 0.25, Y: 0.1}, {X: 0.75, Y: 0.9}},
		},
	}

	if _, ok := ForSegment(seg, track.PropX).(Bezier); !ok {
		t.Error("expected bezier curve for configured property")
	}
	if _, ok := ForSegment(seg, track.PropY).(Linear); !ok {
		t.Error("expected linear fallback for unconfigured property")
	}
}

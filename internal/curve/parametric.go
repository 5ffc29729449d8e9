package curve

import (
	"math"

	"github.com/parafovea/fovea-sub006/internal/track"
)

// Defaults for parametric motion parameters.
const (
	DefaultAcceleration = 9.8
	DefaultFrequency    = 1.0
	DefaultAmplitude    = 0.2
)

// forParametric maps a parametric spec to its curve. A nil spec, the
// linear kind, and the unimplemented custom kind all evaluate as Linear.
func forParametric(spec *track.ParametricSpec) Curve {
	if spec == nil {
		return Linear{}
	}
	switch spec.Kind {
	case track.ParametricQuadratic:
		return Quadratic{Acceleration: param(spec, "acceleration", DefaultAcceleration)}
	case track.ParametricSinusoidal:
		return Sinusoidal{
			Frequency: param(spec, "frequency", DefaultFrequency),
			Amplitude: param(spec, "amplitude", DefaultAmplitude),
		}
	default:
		// ParametricCustom has no expression evaluator; it degrades to
		// linear, as does ParametricLinear by definition.
		return Linear{}
	}
}

func param(spec *track.ParametricSpec, name string, fallback float64) float64 {
	if v, ok := spec.Parameters[name]; ok {
		return v
	}
	return fallback
}

// Quadratic is gravity-style ballistic motion. The initial velocity is
// derived so that the net displacement over t in [0,1] equals end-start:
// v0 = d - a/2, value = start + v0*t + a*t^2/2.
type Quadratic struct {
	Acceleration float64
}

func (q Quadratic) Evaluate(start, end, t float64) float64 {
	if t <= 0 {
		return start
	}
	if t >= 1 {
		return end
	}
	d := end - start
	v0 := d - 0.5*q.Acceleration
	return start + v0*t + 0.5*q.Acceleration*t*t
}

// Sinusoidal is linear motion with an additive oscillation proportional to
// the total displacement.
type Sinusoidal struct {
	Frequency float64
	Amplitude float64
}

func (s Sinusoidal) Evaluate(start, end, t float64) float64 {
	if t <= 0 {
		return start
	}
	if t >= 1 {
		return end
	}
	d := end - start
	return start + d*t + s.Amplitude*d*math.Sin(2*math.Pi*s.Frequency*t)
}

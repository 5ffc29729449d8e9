// Package curve implements the interpolation curve families used between
// keyframes: linear, easing, hold, cubic-Bezier and parametric motion.
//
// All curves are pure functions of their inputs and are exact at the
// endpoints: Evaluate(a, b, 0) == a and Evaluate(a, b, 1) == b.
package curve

import "github.com/parafovea/fovea-sub006/internal/track"

// Curve maps a normalized time t in [0,1] to a value between start and end.
type Curve interface {
	Evaluate(start, end, t float64) float64
}

// ForSegment builds the curve evaluating the given property of a segment.
// Missing or malformed configuration falls back to Linear rather than
// failing: a bezier segment without exactly two control points for the
// property, a parametric segment without a spec, and unknown parametric
// kinds all degrade to linear interpolation.
func ForSegment(seg track.Segment, property string) Curve {
	switch seg.Type {
	case track.SegmentEaseIn:
		return EaseIn{}
	case track.SegmentEaseOut:
		return EaseOut{}
	case track.SegmentEaseInOut:
		return EaseInOut{}
	case track.SegmentHold:
		return Hold{}
	case track.SegmentBezier:
		pts := seg.ControlPoints[property]
		if len(pts) != 2 {
			return Linear{}
		}
		return Bezier{P1: pts[0], P2: pts[1]}
	case track.SegmentParametric:
		return forParametric(seg.Parametric)
	default:
		return Linear{}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

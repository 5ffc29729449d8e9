package curve

// Linear interpolates at constant velocity.
type Linear struct{}

func (Linear) Evaluate(start, end, t float64) float64 {
	return lerp(start, end, t)
}

// EaseIn accelerates from rest: progress t^2.
type EaseIn struct{}

func (EaseIn) Evaluate(start, end, t float64) float64 {
	return lerp(start, end, t*t)
}

// EaseOut decelerates to rest: progress t*(2-t).
type EaseOut struct{}

func (EaseOut) Evaluate(start, end, t float64) float64 {
	return lerp(start, end, t*(2-t))
}

// EaseInOut accelerates through the first half and decelerates through the
// second.
type EaseInOut struct{}

func (EaseInOut) Evaluate(start, end, t float64) float64 {
	var p float64
	if t < 0.5 {
		p = 2 * t * t
	} else {
		p = -1 + (4-2*t)*t
	}
	return lerp(start, end, p)
}

// Hold freezes the segment at its start value until the next keyframe.
type Hold struct{}

func (Hold) Evaluate(start, end, t float64) float64 {
	if t >= 1 {
		return end
	}
	return start
}

// lerp interpolates with exact endpoints at t=0 and t=1.
func lerp(start, end, p float64) float64 {
	if p <= 0 {
		return start
	}
	if p >= 1 {
		return end
	}
	return start + (end-start)*p
}

package track

import "sort"

// BoundingBox is a single produced frame of a track. IsKeyframe is true
// only when the frame coincides with a user-authored keyframe.
type BoundingBox struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	FrameNumber int     `json:"frame"`
	IsKeyframe  bool    `json:"keyframe"`
}

// Center returns the box center point.
func (b BoundingBox) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Area returns the box area.
func (b BoundingBox) Area() float64 {
	return b.Width * b.Height
}

// Keyframe is a user-authored anchor box at a specific frame.
type Keyframe struct {
	X           float64
	Y           float64
	Width       float64
	Height      float64
	FrameNumber int
}

// Box converts the keyframe to a produced frame.
func (k Keyframe) Box() BoundingBox {
	return BoundingBox{
		X:           k.X,
		Y:           k.Y,
		Width:       k.Width,
		Height:      k.Height,
		FrameNumber: k.FrameNumber,
		IsKeyframe:  true,
	}
}

// SegmentType selects the curve family governing a segment.
type SegmentType int

const (
	SegmentLinear SegmentType = iota
	SegmentBezier
	SegmentEaseIn
	SegmentEaseOut
	SegmentEaseInOut
	SegmentHold
	SegmentParametric
)

var segmentTypeNames = map[SegmentType]string{
	SegmentLinear:     "linear",
	SegmentBezier:     "bezier",
	SegmentEaseIn:     "ease-in",
	SegmentEaseOut:    "ease-out",
	SegmentEaseInOut:  "ease-in-out",
	SegmentHold:       "hold",
	SegmentParametric: "parametric",
}

func (s SegmentType) String() string {
	if name, ok := segmentTypeNames[s]; ok {
		return name
	}
	return "linear"
}

// ParseSegmentType maps a name to its type. Unknown names yield
// SegmentLinear, matching the engine's permissive fallback.
func ParseSegmentType(name string) SegmentType {
	for t, n := range segmentTypeNames {
		if n == name {
			return t
		}
	}
	return SegmentLinear
}

// ParametricKind selects the motion profile of a parametric segment.
type ParametricKind int

const (
	ParametricLinear ParametricKind = iota
	ParametricQuadratic
	ParametricSinusoidal
	ParametricCustom
)

var parametricKindNames = map[ParametricKind]string{
	ParametricLinear:     "linear",
	ParametricQuadratic:  "quadratic",
	ParametricSinusoidal: "sinusoidal",
	ParametricCustom:     "custom",
}

func (k ParametricKind) String() string {
	if name, ok := parametricKindNames[k]; ok {
		return name
	}
	return "linear"
}

// ParseParametricKind maps a name to its kind, defaulting to linear.
func ParseParametricKind(name string) ParametricKind {
	for k, n := range parametricKindNames {
		if n == name {
			return k
		}
	}
	return ParametricLinear
}

// ParametricSpec carries the parameters of a parametric segment.
// Recognized parameter keys are "acceleration" (quadratic), "frequency"
// and "amplitude" (sinusoidal).
type ParametricSpec struct {
	Kind       ParametricKind
	Parameters map[string]float64
}

// Clone returns a deep copy of the spec.
func (p *ParametricSpec) Clone() *ParametricSpec {
	if p == nil {
		return nil
	}
	c := &ParametricSpec{Kind: p.Kind}
	if p.Parameters != nil {
		c.Parameters = make(map[string]float64, len(p.Parameters))
		for k, v := range p.Parameters {
			c.Parameters[k] = v
		}
	}
	return c
}

// ControlPoint is one cubic-Bezier control point of an easing curve.
// X is time progress, Y is the interpolation weight.
type ControlPoint struct {
	X float64
	Y float64
}

// Property names for per-property Bezier control points.
const (
	PropX      = "x"
	PropY      = "y"
	PropWidth  = "width"
	PropHeight = "height"
)

// Segment defines the interpolation rule on the open interval between two
// keyframes. A segment only takes effect when StartFrame and EndFrame both
// match present keyframe frame numbers; otherwise the engine substitutes a
// linear default.
type Segment struct {
	StartFrame    int
	EndFrame      int
	Type          SegmentType
	ControlPoints map[string][]ControlPoint
	Parametric    *ParametricSpec
}

// Clone returns a deep copy of the segment.
func (s Segment) Clone() Segment {
	c := s
	if s.ControlPoints != nil {
		c.ControlPoints = make(map[string][]ControlPoint, len(s.ControlPoints))
		for prop, pts := range s.ControlPoints {
			cp := make([]ControlPoint, len(pts))
			copy(cp, pts)
			c.ControlPoints[prop] = cp
		}
	}
	c.Parametric = s.Parametric.Clone()
	return c
}

// VisibilityRange marks a closed frame interval as shown or hidden.
type VisibilityRange struct {
	StartFrame int
	EndFrame   int
	Visible    bool
}

// Sequence aggregates the keyframes, segments and visibility ranges of one
// annotated object, together with derived counters. Engine operations
// return new sequences rather than mutating in place.
type Sequence struct {
	Keyframes  []Keyframe
	Segments   []Segment
	Visibility []VisibilityRange

	KeyframeCount          int
	InterpolatedFrameCount int
	TotalFrames            int
}

// Clone returns a deep copy of the sequence.
func (s Sequence) Clone() Sequence {
	c := s
	c.Keyframes = make([]Keyframe, len(s.Keyframes))
	copy(c.Keyframes, s.Keyframes)
	c.Segments = make([]Segment, len(s.Segments))
	for i, seg := range s.Segments {
		c.Segments[i] = seg.Clone()
	}
	c.Visibility = make([]VisibilityRange, len(s.Visibility))
	copy(c.Visibility, s.Visibility)
	return c
}

// Visible reports whether a frame is shown. Frames not covered by any
// range are visible by default.
func (s Sequence) Visible(frame int) bool {
	return FrameVisible(s.Visibility, frame)
}

// FrameVisible reports whether a frame is shown under the given ranges.
func FrameVisible(ranges []VisibilityRange, frame int) bool {
	for _, r := range ranges {
		if frame >= r.StartFrame && frame <= r.EndFrame {
			return r.Visible
		}
	}
	return true
}

// KeyframeAt returns the keyframe at the exact frame number, if any.
func (s Sequence) KeyframeAt(frame int) (Keyframe, bool) {
	for _, kf := range s.Keyframes {
		if kf.FrameNumber == frame {
			return kf, true
		}
	}
	return Keyframe{}, false
}

// Metric accumulates a statistic over the frames produced by a batch
// interpolation pass.
type Metric interface {
	Name() string
	Observe(box BoundingBox)
	Value() float64
	Reset()
}

// SortedKeyframes returns a copy of the keyframes ordered by frame number.
func SortedKeyframes(kfs []Keyframe) []Keyframe {
	sorted := make([]Keyframe, len(kfs))
	copy(sorted, kfs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FrameNumber < sorted[j].FrameNumber
	})
	return sorted
}

// Package engine orchestrates keyframes, segments and visibility ranges
// into dense bounding-box trajectories.
//
// The engine is synchronous and side-effect free: every operation returns
// freshly allocated results and mutation operations return new sequences
// instead of editing their input. Invalid mutation targets are no-ops, and
// missing or malformed segment configuration degrades to linear
// interpolation rather than producing an error.
package engine

import (
	"github.com/parafovea/fovea-sub006/internal/curve"
	"github.com/parafovea/fovea-sub006/internal/track"
)

// segmentCurves holds the per-property curves of one keyframe pair so they
// are constructed once per segment, not once per frame.
type segmentCurves struct {
	x, y, w, h curve.Curve
}

func curvesFor(seg track.Segment) segmentCurves {
	return segmentCurves{
		x: curve.ForSegment(seg, track.PropX),
		y: curve.ForSegment(seg, track.PropY),
		w: curve.ForSegment(seg, track.PropWidth),
		h: curve.ForSegment(seg, track.PropHeight),
	}
}

func (sc segmentCurves) box(a, b track.Keyframe, frame int) track.BoundingBox {
	t := float64(frame-a.FrameNumber) / float64(b.FrameNumber-a.FrameNumber)
	return track.BoundingBox{
		X:           sc.x.Evaluate(a.X, b.X, t),
		Y:           sc.y.Evaluate(a.Y, b.Y, t),
		Width:       sc.w.Evaluate(a.Width, b.Width, t),
		Height:      sc.h.Evaluate(a.Height, b.Height, t),
		FrameNumber: frame,
	}
}

// segmentFor returns the segment exactly matching the keyframe pair, or a
// linear default when none is defined.
func segmentFor(segments []track.Segment, startFrame, endFrame int) track.Segment {
	if seg, ok := track.SegmentBetween(segments, startFrame, endFrame); ok {
		return seg
	}
	return track.Segment{StartFrame: startFrame, EndFrame: endFrame, Type: track.SegmentLinear}
}

// Interpolate materializes the full trajectory. Keyframes are sorted by
// frame number; for each consecutive pair the covering segment (or a linear
// default) interpolates every intermediate frame. Frames hidden by a
// visibility range are omitted entirely, so the result may be sparse.
// Zero keyframes yield an empty slice; a single keyframe yields that frame
// alone.
func Interpolate(keyframes []track.Keyframe, segments []track.Segment, visibility []track.VisibilityRange) []track.BoundingBox {
	kfs := track.SortedKeyframes(keyframes)
	if len(kfs) == 0 {
		return []track.BoundingBox{}
	}

	out := make([]track.BoundingBox, 0, spanOf(kfs))
	for i := 0; i < len(kfs)-1; i++ {
		a, b := kfs[i], kfs[i+1]
		if track.FrameVisible(visibility, a.FrameNumber) {
			out = append(out, a.Box())
		}
		sc := curvesFor(segmentFor(segments, a.FrameNumber, b.FrameNumber))
		for f := a.FrameNumber + 1; f < b.FrameNumber; f++ {
			if !track.FrameVisible(visibility, f) {
				continue
			}
			out = append(out, sc.box(a, b, f))
		}
	}

	last := kfs[len(kfs)-1]
	if track.FrameVisible(visibility, last.FrameNumber) {
		out = append(out, last.Box())
	}
	return out
}

// Materialize interpolates a sequence and feeds every produced frame
// through the given metrics, returning the frames and the metric values.
func Materialize(seq track.Sequence, metrics ...track.Metric) ([]track.BoundingBox, map[string]float64) {
	for _, m := range metrics {
		m.Reset()
	}
	frames := Interpolate(seq.Keyframes, seq.Segments, seq.Visibility)
	for _, box := range frames {
		for _, m := range metrics {
			m.Observe(box)
		}
	}
	values := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		values[m.Name()] = m.Value()
	}
	return frames, values
}

// EvalAt computes the box at a single frame from the keyframe and segment
// sets alone, ignoring visibility. It returns nil when the frame lies
// outside the covered range. Exact keyframe hits return the keyframe
// itself.
func EvalAt(keyframes []track.Keyframe, segments []track.Segment, frame int) *track.BoundingBox {
	kfs := track.SortedKeyframes(keyframes)
	for _, kf := range kfs {
		if kf.FrameNumber == frame {
			box := kf.Box()
			return &box
		}
	}
	for i := 0; i < len(kfs)-1; i++ {
		a, b := kfs[i], kfs[i+1]
		if frame > a.FrameNumber && frame < b.FrameNumber {
			sc := curvesFor(segmentFor(segments, a.FrameNumber, b.FrameNumber))
			box := sc.box(a, b, frame)
			return &box
		}
	}
	return nil
}

// spanOf estimates the covered frame count for slice preallocation.
func spanOf(sorted []track.Keyframe) int {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)-1].FrameNumber - sorted[0].FrameNumber + 1
}

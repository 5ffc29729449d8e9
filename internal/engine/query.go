package engine

import "github.com/parafovea/fovea-sub006/internal/track"

// InterpolateAt answers a visibility-aware single-frame query. It returns
// nil when the frame is explicitly hidden or when no keyframe pair covers
// it; otherwise it returns the exact keyframe at that frame or the value
// interpolated by the covering segment (linear when none is defined).
func InterpolateAt(seq track.Sequence, frame int) *track.BoundingBox {
	if !seq.Visible(frame) {
		return nil
	}
	return EvalAt(seq.Keyframes, seq.Segments, frame)
}

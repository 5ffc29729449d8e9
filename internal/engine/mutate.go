package engine

import "github.com/parafovea/fovea-sub006/internal/track"

// UpdateKeyframe replaces fields of an existing keyframe and returns the
// recomputed sequence. Recognized field names are "x", "y", "width" and
// "height"; unknown names are ignored. When no keyframe exists at the
// frame, the input sequence is returned unchanged.
func UpdateKeyframe(seq track.Sequence, frame int, fields map[string]float64) track.Sequence {
	idx := keyframeIndex(seq.Keyframes, frame)
	if idx < 0 {
		return seq
	}
	out := seq.Clone()
	kf := &out.Keyframes[idx]
	for name, v := range fields {
		switch name {
		case track.PropX:
			kf.X = v
		case track.PropY:
			kf.Y = v
		case track.PropWidth:
			kf.Width = v
		case track.PropHeight:
			kf.Height = v
		}
	}
	recount(&out)
	return out
}

// AddKeyframe freezes the currently interpolated value at the frame as a
// new keyframe, splitting the covering segment so both halves keep its
// curve. It is a no-op when a keyframe already exists at the frame or when
// the frame lies outside the covered range.
func AddKeyframe(seq track.Sequence, frame int) track.Sequence {
	if _, exists := seq.KeyframeAt(frame); exists {
		return seq
	}
	box := EvalAt(seq.Keyframes, seq.Segments, frame)
	if box == nil {
		return seq
	}
	out := seq.Clone()
	out.Keyframes = append(out.Keyframes, track.Keyframe{
		X:           box.X,
		Y:           box.Y,
		Width:       box.Width,
		Height:      box.Height,
		FrameNumber: frame,
	})
	out.Keyframes = track.SortedKeyframes(out.Keyframes)
	out.Segments = track.SplitSegments(out.Segments, frame)
	recount(&out)
	return out
}

// RemoveKeyframe deletes an interior keyframe and merges its adjoining
// segments. The first and last keyframes are protected, and sequences with
// two or fewer keyframes are returned unchanged, as are unknown frames.
func RemoveKeyframe(seq track.Sequence, frame int) track.Sequence {
	kfs := track.SortedKeyframes(seq.Keyframes)
	if len(kfs) <= 2 {
		return seq
	}
	if frame == kfs[0].FrameNumber || frame == kfs[len(kfs)-1].FrameNumber {
		return seq
	}
	idx := keyframeIndex(kfs, frame)
	if idx < 0 {
		return seq
	}
	out := seq.Clone()
	out.Keyframes = append(kfs[:idx:idx], kfs[idx+1:]...)
	out.Segments = track.MergeSegments(out.Segments, frame)
	recount(&out)
	return out
}

// Recount returns the sequence with its derived counters refreshed from a
// full interpolation pass.
func Recount(seq track.Sequence) track.Sequence {
	recount(&seq)
	return seq
}

// recount re-runs a full interpolation pass to refresh the derived
// counters.
func recount(seq *track.Sequence) {
	frames := Interpolate(seq.Keyframes, seq.Segments, seq.Visibility)
	seq.KeyframeCount = len(seq.Keyframes)
	seq.TotalFrames = len(frames)
	interpolated := 0
	for _, box := range frames {
		if !box.IsKeyframe {
			interpolated++
		}
	}
	seq.InterpolatedFrameCount = interpolated
}

func keyframeIndex(kfs []track.Keyframe, frame int) int {
	for i, kf := range kfs {
		if kf.FrameNumber == frame {
			return i
		}
	}
	return -1
}

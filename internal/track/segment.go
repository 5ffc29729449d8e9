package track

import "sort"

// SegmentBetween returns the segment whose endpoints exactly match the two
// frame numbers. The second result is false when no such segment exists, in
// which case callers substitute a linear default.
func SegmentBetween(segments []Segment, startFrame, endFrame int) (Segment, bool) {
	for _, seg := range segments {
		if seg.StartFrame == startFrame && seg.EndFrame == endFrame {
			return seg, true
		}
	}
	return Segment{}, false
}

// SplitSegments splits the segment strictly containing frame into two
// halves sharing the original type and configuration. Segments not
// containing the frame are returned unchanged.
func SplitSegments(segments []Segment, frame int) []Segment {
	out := make([]Segment, 0, len(segments)+1)
	for _, seg := range segments {
		if frame > seg.StartFrame && frame < seg.EndFrame {
			left := seg.Clone()
			left.EndFrame = frame
			right := seg.Clone()
			right.StartFrame = frame
			out = append(out, left, right)
			continue
		}
		out = append(out, seg)
	}
	sortSegments(out)
	return out
}

// MergeSegments joins the segment ending at frame with the segment starting
// at frame. The merged segment keeps the earlier segment's type and
// configuration and spans both ranges. When only one side is defined, the
// lone segment is dropped and the gap falls back to the implicit linear
// default.
func MergeSegments(segments []Segment, frame int) []Segment {
	var before, after *Segment
	out := make([]Segment, 0, len(segments))
	for i := range segments {
		seg := segments[i]
		switch {
		case seg.EndFrame == frame:
			before = &segments[i]
		case seg.StartFrame == frame:
			after = &segments[i]
		default:
			out = append(out, seg)
		}
	}
	if before != nil && after != nil {
		merged := before.Clone()
		merged.EndFrame = after.EndFrame
		out = append(out, merged)
	}
	sortSegments(out)
	return out
}

func sortSegments(segments []Segment) {
	sort.Slice(segments, func(i, j int) bool {
		return segments[i].StartFrame < segments[j].StartFrame
	})
}

package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/parafovea/fovea-sub006/internal/engine"
	"github.com/parafovea/fovea-sub006/internal/track"
)

func kf(frame int, x float64) track.Keyframe {
	return track.Keyframe{X: x, Y: x / 2, Width: 10, Height: 20, FrameNumber: frame}
}

var _ = Describe("Interpolate", func() {
	It("returns an empty result for zero keyframes", func() {
		frames := engine.Interpolate(nil, []track.Segment{{StartFrame: 0, EndFrame: 10}}, nil)
		Expect(frames).To(BeEmpty())
	})

	It("returns the single keyframe marked as a keyframe", func() {
		frames := engine.Interpolate([]track.Keyframe{kf(7, 3)}, []track.Segment{{StartFrame: 0, EndFrame: 10}}, nil)
		Expect(frames).To(HaveLen(1))
		Expect(frames[0].FrameNumber).To(Equal(7))
		Expect(frames[0].IsKeyframe).To(BeTrue())
		Expect(frames[0].X).To(Equal(3.0))
	})

	It("interpolates linearly between two keyframes by default", func() {
		kfs := []track.Keyframe{kf(0, 0), kf(10, 100)}
		frames := engine.Interpolate(kfs, nil, nil)
		Expect(frames).To(HaveLen(11))
		Expect(frames[5].X).To(Equal(50.0))
		Expect(frames[5].IsKeyframe).To(BeFalse())
		Expect(frames[0].IsKeyframe).To(BeTrue())
		Expect(frames[10].IsKeyframe).To(BeTrue())
	})

	It("sorts keyframes before interpolating", func() {
		kfs := []track.Keyframe{kf(10, 100), kf(0, 0)}
		frames := engine.Interpolate(kfs, nil, nil)
		Expect(frames[0].FrameNumber).To(Equal(0))
		Expect(frames[5].X).To(Equal(50.0))
	})

	It("freezes the start value on hold segments", func() {
		kfs := []track.Keyframe{kf(0, 5), kf(10, 50)}
		segs := []track.Segment{{StartFrame: 0, EndFrame: 10, Type: track.SegmentHold}}
		frames := engine.Interpolate(kfs, segs, nil)
		for _, f := range frames[1:10] {
			Expect(f.X).To(Equal(5.0), "frame %d", f.FrameNumber)
		}
		Expect(frames[10].X).To(Equal(50.0))
	})

	It("ignores segments whose endpoints do not match keyframes", func() {
		kfs := []track.Keyframe{kf(0, 0), kf(10, 100)}
		segs := []track.Segment{{StartFrame: 0, EndFrame: 9, Type: track.SegmentHold}}
		frames := engine.Interpolate(kfs, segs, nil)
		Expect(frames[5].X).To(Equal(50.0))
	})

	It("omits hidden frames entirely", func() {
		kfs := []track.Keyframe{kf(0, 0), kf(10, 100)}
		vis := []track.VisibilityRange{{StartFrame: 5, EndFrame: 8, Visible: false}}
		frames := engine.Interpolate(kfs, nil, vis)
		Expect(frames).To(HaveLen(7))
		for _, f := range frames {
			Expect(f.FrameNumber).NotTo(And(BeNumerically(">=", 5), BeNumerically("<=", 8)))
		}
	})

	It("omits hidden keyframes too", func() {
		kfs := []track.Keyframe{kf(0, 0), kf(10, 100)}
		vis := []track.VisibilityRange{{StartFrame: 10, EndFrame: 10, Visible: false}}
		frames := engine.Interpolate(kfs, nil, vis)
		Expect(frames).To(HaveLen(10))
		Expect(frames[len(frames)-1].FrameNumber).To(Equal(9))
	})

	It("applies different curves to consecutive segments independently", func() {
		kfs := []track.Keyframe{kf(0, 0), kf(10, 100), kf(20, 100)}
		segs := []track.Segment{
			{StartFrame: 0, EndFrame: 10, Type: track.SegmentLinear},
			{StartFrame: 10, EndFrame: 20, Type: track.SegmentHold},
		}
		frames := engine.Interpolate(kfs, segs, nil)
		Expect(frames[5].X).To(Equal(50.0))
		Expect(frames[15].X).To(Equal(100.0))
	})
})

var _ = Describe("InterpolateAt", func() {
	var seq track.Sequence

	BeforeEach(func() {
		seq = track.Sequence{
			Keyframes:  []track.Keyframe{kf(0, 0), kf(10, 100)},
			Visibility: []track.VisibilityRange{{StartFrame: 5, EndFrame: 8, Visible: false}},
		}
	})

	It("returns nil for hidden frames and values elsewhere", func() {
		for f := 0; f <= 10; f++ {
			box := engine.InterpolateAt(seq, f)
			if f >= 5 && f <= 8 {
				Expect(box).To(BeNil(), "frame %d", f)
			} else {
				Expect(box).NotTo(BeNil(), "frame %d", f)
			}
		}
	})

	It("returns the exact keyframe on keyframe frames", func() {
		box := engine.InterpolateAt(seq, 10)
		Expect(box).NotTo(BeNil())
		Expect(box.IsKeyframe).To(BeTrue())
		Expect(box.X).To(Equal(100.0))
	})

	It("returns nil outside the covered range", func() {
		Expect(engine.InterpolateAt(seq, -1)).To(BeNil())
		Expect(engine.InterpolateAt(seq, 11)).To(BeNil())
	})
})

var _ = Describe("Keyframe mutations", func() {
	var seq track.Sequence

	BeforeEach(func() {
		seq = engine.Recount(track.Sequence{
			Keyframes: []track.Keyframe{kf(0, 0), kf(10, 100), kf(20, 0)},
			Segments: []track.Segment{
				{StartFrame: 0, EndFrame: 10, Type: track.SegmentEaseIn},
				{StartFrame: 10, EndFrame: 20, Type: track.SegmentLinear},
			},
		})
	})

	Describe("AddKeyframe", func() {
		It("freezes the current interpolated value", func() {
			before := engine.InterpolateAt(seq, 15)
			out := engine.AddKeyframe(seq, 15)
			added, ok := out.KeyframeAt(15)
			Expect(ok).To(BeTrue())
			Expect(added.X).To(Equal(before.X))
			Expect(out.KeyframeCount).To(Equal(4))
		})

		It("splits the covering segment and both halves inherit its curve", func() {
			out := engine.AddKeyframe(seq, 5)
			left, ok := track.SegmentBetween(out.Segments, 0, 5)
			Expect(ok).To(BeTrue())
			Expect(left.Type).To(Equal(track.SegmentEaseIn))
			right, ok := track.SegmentBetween(out.Segments, 5, 10)
			Expect(ok).To(BeTrue())
			Expect(right.Type).To(Equal(track.SegmentEaseIn))
		})

		It("is a no-op on an existing keyframe", func() {
			out := engine.AddKeyframe(seq, 10)
			Expect(out.Keyframes).To(HaveLen(3))
		})

		It("is a no-op outside the covered range", func() {
			Expect(engine.AddKeyframe(seq, 25).Keyframes).To(HaveLen(3))
			Expect(engine.AddKeyframe(seq, -5).Keyframes).To(HaveLen(3))
		})

		It("does not mutate the input sequence", func() {
			engine.AddKeyframe(seq, 5)
			Expect(seq.Keyframes).To(HaveLen(3))
			Expect(seq.Segments).To(HaveLen(2))
		})
	})

	Describe("RemoveKeyframe", func() {
		It("merges the adjoining segments with the earlier curve", func() {
			out := engine.RemoveKeyframe(seq, 10)
			Expect(out.Keyframes).To(HaveLen(2))
			merged, ok := track.SegmentBetween(out.Segments, 0, 20)
			Expect(ok).To(BeTrue())
			Expect(merged.Type).To(Equal(track.SegmentEaseIn))
		})

		It("protects the first and last keyframes", func() {
			Expect(engine.RemoveKeyframe(seq, 0).Keyframes).To(HaveLen(3))
			Expect(engine.RemoveKeyframe(seq, 20).Keyframes).To(HaveLen(3))
		})

		It("is a no-op on sequences with too few keyframes", func() {
			small := track.Sequence{Keyframes: []track.Keyframe{kf(0, 0)}}
			Expect(engine.RemoveKeyframe(small, 0).Keyframes).To(HaveLen(1))
		})

		It("is a no-op for unknown frames", func() {
			Expect(engine.RemoveKeyframe(seq, 7).Keyframes).To(HaveLen(3))
		})
	})

	Describe("add/remove round-trip", func() {
		It("restores interpolation-equivalent values at all surviving frames", func() {
			original := engine.Interpolate(seq.Keyframes, seq.Segments, seq.Visibility)
			roundTrip := engine.RemoveKeyframe(engine.AddKeyframe(seq, 15), 15)
			restored := engine.Interpolate(roundTrip.Keyframes, roundTrip.Segments, roundTrip.Visibility)
			Expect(restored).To(HaveLen(len(original)))
			for i := range original {
				Expect(restored[i].X).To(BeNumerically("~", original[i].X, 1e-9), "frame %d", original[i].FrameNumber)
				Expect(restored[i].Y).To(BeNumerically("~", original[i].Y, 1e-9))
				Expect(restored[i].Width).To(BeNumerically("~", original[i].Width, 1e-9))
				Expect(restored[i].Height).To(BeNumerically("~", original[i].Height, 1e-9))
			}
		})
	})

	Describe("UpdateKeyframe", func() {
		It("replaces the named fields and recounts", func() {
			out := engine.UpdateKeyframe(seq, 10, map[string]float64{"x": 42, "height": 7})
			updated, _ := out.KeyframeAt(10)
			Expect(updated.X).To(Equal(42.0))
			Expect(updated.Height).To(Equal(7.0))
			Expect(updated.Width).To(Equal(10.0))
			Expect(out.KeyframeCount).To(Equal(3))
		})

		It("is a no-op for a nonexistent keyframe", func() {
			out := engine.UpdateKeyframe(seq, 3, map[string]float64{"x": 42})
			Expect(out.Keyframes).To(Equal(seq.Keyframes))
		})
	})

	Describe("counters", func() {
		It("derives keyframe, interpolated and total counts", func() {
			Expect(seq.KeyframeCount).To(Equal(3))
			Expect(seq.TotalFrames).To(Equal(21))
			Expect(seq.InterpolatedFrameCount).To(Equal(18))
		})
	})
})

// Package track provides the core data model for keyframed bounding-box
// annotations on video.
//
// The package defines the fundamental types consumed by the interpolation
// engine:
//
//   - [Keyframe]: a user-authored bounding box anchored at a frame
//   - [Segment]: the interpolation rule between two consecutive keyframes
//   - [VisibilityRange]: a frame interval where the object is shown or hidden
//   - [Sequence]: the aggregate handed to and from the engine
//
// # Example
//
//	seq := track.Sequence{Keyframes: kfs, Segments: segs}
//	frames := engine.Interpolate(seq.Keyframes, seq.Segments, seq.Visibility)
//
// # Caller Contract
//
// Keyframe frame numbers are assumed unique and visibility ranges are
// assumed sorted and non-overlapping. The engine does not validate either;
// behavior under violations is unspecified.
package track

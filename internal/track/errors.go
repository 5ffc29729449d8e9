package track

import "errors"

// Domain errors for track operations.
var (
	// ErrNoKeyframes indicates a sequence without any keyframes.
	ErrNoKeyframes = errors.New("track: sequence has no keyframes")

	// ErrFrameNotCovered indicates a frame outside the keyframed range.
	ErrFrameNotCovered = errors.New("track: frame not covered by any keyframe pair")

	// ErrCanceled indicates interpolation was interrupted.
	ErrCanceled = errors.New("track: interpolation canceled by context")
)

// Package cache provides a memoizing wrapper over single-frame
// interpolation for scrubbing long videos without materializing every
// frame.
package cache

import (
	"github.com/parafovea/fovea-sub006/internal/engine"
	"github.com/parafovea/fovea-sub006/internal/track"
)

// DefaultCapacity bounds the memo table so very long videos cannot grow it
// without limit.
const DefaultCapacity = 4096

// Evaluator computes the box at a frame, or nil when the frame is not
// covered by any keyframe pair.
type Evaluator func(frame int) *track.BoundingBox

// FrameCache memoizes single-frame lookups over a fixed keyframe/segment
// pair. The cache does not observe mutations: callers must invalidate the
// touched range after any keyframe or segment change.
//
// FrameCache is not safe for concurrent use; guard it externally when
// shared between goroutines.
type FrameCache struct {
	eval     Evaluator
	memo     map[int]track.BoundingBox
	capacity int

	hits   int
	misses int
}

// New builds a cache over the given keyframes and segments, evaluating
// misses through the interpolation engine.
func New(keyframes []track.Keyframe, segments []track.Segment) *FrameCache {
	return NewWithEvaluator(func(frame int) *track.BoundingBox {
		return engine.EvalAt(keyframes, segments, frame)
	}, DefaultCapacity)
}

// NewWithEvaluator builds a cache over a custom evaluator. A capacity of
// zero or less falls back to DefaultCapacity.
func NewWithEvaluator(eval Evaluator, capacity int) *FrameCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &FrameCache{
		eval:     eval,
		memo:     make(map[int]track.BoundingBox),
		capacity: capacity,
	}
}

// GetBoxAtFrame returns the box at the frame, memoizing the result. It
// returns nil when no covering keyframe pair exists; nil results are not
// memoized.
func (c *FrameCache) GetBoxAtFrame(frame int) *track.BoundingBox {
	if box, ok := c.memo[frame]; ok {
		c.hits++
		out := box
		return &out
	}
	c.misses++
	box := c.eval(frame)
	if box == nil {
		return nil
	}
	if len(c.memo) >= c.capacity {
		c.evictOne()
	}
	c.memo[frame] = *box
	out := *box
	return &out
}

// Invalidate drops memoized results for the inclusive frame range.
func (c *FrameCache) Invalidate(startFrame, endFrame int) {
	for frame := range c.memo {
		if frame >= startFrame && frame <= endFrame {
			delete(c.memo, frame)
		}
	}
}

// InvalidateAll drops every memoized result.
func (c *FrameCache) InvalidateAll() {
	c.memo = make(map[int]track.BoundingBox)
}

// Len returns the number of memoized frames.
func (c *FrameCache) Len() int {
	return len(c.memo)
}

// Stats returns the hit and miss counts since construction.
func (c *FrameCache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// evictOne removes one resident entry. Map iteration order stands in for a
// proper recency policy; any entry is acceptable to drop.
func (c *FrameCache) evictOne() {
	for frame := range c.memo {
		delete(c.memo, frame)
		return
	}
}

package metrics

import "github.com/parafovea/fovea-sub006/internal/track"

// Coverage reports the fraction of the covered frame span actually
// produced, i.e. not hidden by visibility ranges.
type Coverage struct {
	name     string
	minFrame int
	maxFrame int
	observed int
}

func NewCoverage() *Coverage {
	return &Coverage{name: "coverage"}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) Observe(box track.BoundingBox) {
	if c.observed == 0 || box.FrameNumber < c.minFrame {
		c.minFrame = box.FrameNumber
	}
	if c.observed == 0 || box.FrameNumber > c.maxFrame {
		c.maxFrame = box.FrameNumber
	}
	c.observed++
}

func (c *Coverage) Value() float64 {
	if c.observed == 0 {
		return 0
	}
	span := c.maxFrame - c.minFrame + 1
	return float64(c.observed) / float64(span)
}

func (c *Coverage) Reset() {
	c.minFrame = 0
	c.maxFrame = 0
	c.observed = 0
}

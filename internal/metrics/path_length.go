package metrics

import (
	"math"

	"github.com/parafovea/fovea-sub006/internal/track"
)

// PathLength accumulates the distance traveled by the box center across
// the observed frames.
type PathLength struct {
	name    string
	prevX   float64
	prevY   float64
	total   float64
	samples int
}

func NewPathLength() *PathLength {
	return &PathLength{name: "path_length"}
}

func (p *PathLength) Name() string { return p.name }

func (p *PathLength) Observe(box track.BoundingBox) {
	cx, cy := box.Center()
	if p.samples > 0 {
		p.total += math.Hypot(cx-p.prevX, cy-p.prevY)
	}
	p.prevX, p.prevY = cx, cy
	p.samples++
}

func (p *PathLength) Value() float64 {
	return p.total
}

func (p *PathLength) Reset() {
	p.prevX = 0
	p.prevY = 0
	p.total = 0
	p.samples = 0
}

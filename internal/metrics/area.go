package metrics

import "github.com/parafovea/fovea-sub006/internal/track"

// MeanArea averages the box area over the observed frames.
type MeanArea struct {
	name    string
	total   float64
	samples int
}

func NewMeanArea() *MeanArea {
	return &MeanArea{name: "mean_area"}
}

func (m *MeanArea) Name() string { return m.name }

func (m *MeanArea) Observe(box track.BoundingBox) {
	m.total += box.Area()
	m.samples++
}

func (m *MeanArea) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanArea) Reset() {
	m.total = 0
	m.samples = 0
}

package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/parafovea/fovea-sub006/internal/track"
)

type ExportData struct {
	Label   string              `json:"label"`
	FPS     int                 `json:"fps"`
	Frames  int                 `json:"frames"`
	Boxes   []track.BoundingBox `json:"boxes"`
	Metrics map[string]float64  `json:"metrics"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, frames []track.BoundingBox) error {
	data := ExportData{
		Label:   meta.Label,
		FPS:     meta.FPS,
		Frames:  len(frames),
		Boxes:   frames,
		Metrics: meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSONStdout(meta *RunMetadata, frames []track.BoundingBox) error {
	return ExportJSON(os.Stdout, meta, frames)
}

// Package storage persists materialized interpolation runs under a data
// directory, one subdirectory per run with metadata.json and frames.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parafovea/fovea-sub006/internal/track"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Label     string             `json:"label"`
	Timestamp time.Time          `json:"timestamp"`
	FPS       int                `json:"fps"`
	Keyframes int                `json:"keyframes"`
	Frames    int                `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(label string, fps, keyframes int, frames []track.BoundingBox, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", label, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Label:     label,
		Timestamp: time.Now(),
		FPS:       fps,
		Keyframes: keyframes,
		Frames:    len(frames),
		Metrics:   metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"frame", "x", "y", "width", "height", "keyframe"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, box := range frames {
		row := []string{
			strconv.Itoa(box.FrameNumber),
			strconv.FormatFloat(box.X, 'f', 6, 64),
			strconv.FormatFloat(box.Y, 'f', 6, 64),
			strconv.FormatFloat(box.Width, 'f', 6, 64),
			strconv.FormatFloat(box.Height, 'f', 6, 64),
			strconv.FormatBool(box.IsKeyframe),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]track.BoundingBox, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []track.BoundingBox{}, nil
	}

	frames := make([]track.BoundingBox, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 6 {
			continue
		}
		frame, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		x, _ := strconv.ParseFloat(record[1], 64)
		y, _ := strconv.ParseFloat(record[2], 64)
		width, _ := strconv.ParseFloat(record[3], 64)
		height, _ := strconv.ParseFloat(record[4], 64)
		isKey, _ := strconv.ParseBool(record[5])

		frames = append(frames, track.BoundingBox{
			X:           x,
			Y:           y,
			Width:       width,
			Height:      height,
			FrameNumber: frame,
			IsKeyframe:  isKey,
		})
	}

	return frames, nil
}

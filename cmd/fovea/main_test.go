package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/parafovea/fovea-sub006/internal/track"
)

func TestLoadTrackRejectsEmptyTrack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("label: empty\nfps: 30\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	_, _, err := loadTrack([]string{path})
	if !errors.Is(err, track.ErrNoKeyframes) {
		t.Fatalf("expected ErrNoKeyframes, got %v", err)
	}
}

func TestLoadTrackPreset(t *testing.T) {
	preset = "pan"
	defer func() { preset = "" }()

	tf, path, err := loadTrack(nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if tf.Label != "pan" || path != "" {
		t.Errorf("unexpected result: %q %q", tf.Label, path)
	}
}

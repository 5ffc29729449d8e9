package config

import (
	"path/filepath"
	"testing"

	"github.com/parafovea/fovea-sub006/internal/track"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	tf := GetPreset("flicker")
	if tf == nil {
		t.Fatal("expected flicker preset")
	}

	path := filepath.Join(t.TempDir(), "track.yaml")
	if err := Save(path, tf); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Label != tf.Label {
		t.Errorf("expected label %q, got %q", tf.Label, loaded.Label)
	}
	if len(loaded.Keyframes) != len(tf.Keyframes) {
		t.Errorf("expected %d keyframes, got %d", len(tf.Keyframes), len(loaded.Keyframes))
	}
	if len(loaded.Segments) != len(tf.Segments) {
		t.Errorf("expected %d segments, got %d", len(tf.Segments), len(loaded.Segments))
	}
	if len(loaded.Visibility) != len(tf.Visibility) {
		t.Errorf("expected %d visibility ranges, got %d", len(tf.Visibility), len(loaded.Visibility))
	}
}

func TestToSequenceTypes(t *testing.T) {
	seq := GetPreset("flicker").ToSequence()

	if len(seq.Keyframes) != 3 {
		t.Fatalf("expected 3 keyframes, got %d", len(seq.Keyframes))
	}

	seg, ok := track.SegmentBetween(seq.Segments, 0, 40)
	if !ok {
		t.Fatal("expected segment 0-40")
	}
	if seg.Type != track.SegmentBezier {
		t.Errorf("expected bezier type, got %v", seg.Type)
	}
	if len(seg.ControlPoints[track.PropX]) != 2 {
		t.Errorf("expected 2 control points for x")
	}

	seg, ok = track.SegmentBetween(seq.Segments, 40, 80)
	if !ok {
		t.Fatal("expected segment 40-80")
	}
	if seg.Type != track.SegmentHold {
		t.Errorf("expected hold type, got %v", seg.Type)
	}
}

func TestUnknownTypeDegradesToLinear(t *testing.T) {
	tf := &TrackFile{
		Segments: []SegmentConfig{{Start: 0, End: 10, Type: "warp-drive"}},
	}
	seq := tf.ToSequence()
	if seq.Segments[0].Type != track.SegmentLinear {
		t.Errorf("expected linear fallback, got %v", seq.Segments[0].Type)
	}
}

func TestFromSequenceRoundTrip(t *testing.T) {
	tf := GetPreset("ballistic")
	seq := tf.ToSequence()
	back := tf.FromSequence(seq)

	if back.Label != tf.Label || back.FPS != tf.FPS {
		t.Errorf("label/fps not preserved: %+v", back)
	}
	if len(back.Keyframes) != len(tf.Keyframes) {
		t.Errorf("expected %d keyframes, got %d", len(tf.Keyframes), len(back.Keyframes))
	}
	if back.Segments[0].Type != "parametric" {
		t.Errorf("expected parametric, got %q", back.Segments[0].Type)
	}
	if back.Segments[0].Parametric == nil || back.Segments[0].Parametric.Kind != "quadratic" {
		t.Errorf("parametric spec not preserved: %+v", back.Segments[0].Parametric)
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

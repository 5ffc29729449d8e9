// Package config loads and saves annotation track files.
//
// A track file is YAML describing one annotated object: its keyframes, the
// interpolation segments between them, and visibility ranges. The file
// format uses curve names as strings; unknown names degrade to linear to
// match the engine's permissive fallback.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/parafovea/fovea-sub006/internal/track"
)

const DefaultFPS = 30

// TrackFile is the on-disk form of an annotation track.
type TrackFile struct {
	Label      string             `yaml:"label"`
	FPS        int                `yaml:"fps"`
	Keyframes  []KeyframeConfig   `yaml:"keyframes"`
	Segments   []SegmentConfig    `yaml:"segments,omitempty"`
	Visibility []VisibilityConfig `yaml:"visibility,omitempty"`
}

type KeyframeConfig struct {
	Frame  int     `yaml:"frame"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SegmentConfig struct {
	Start         int                      `yaml:"start"`
	End           int                      `yaml:"end"`
	Type          string                   `yaml:"type"`
	ControlPoints map[string][]PointConfig `yaml:"control_points,omitempty"`
	Parametric    *ParametricConfig        `yaml:"parametric,omitempty"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ParametricConfig struct {
	Kind       string             `yaml:"kind"`
	Parameters map[string]float64 `yaml:"parameters,omitempty"`
}

type VisibilityConfig struct {
	Start   int  `yaml:"start"`
	End     int  `yaml:"end"`
	Visible bool `yaml:"visible"`
}

// Load reads and parses a track file.
func Load(path string) (*TrackFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tf := &TrackFile{FPS: DefaultFPS}
	if err := yaml.Unmarshal(data, tf); err != nil {
		return nil, fmt.Errorf("parse track file %s: %w", path, err)
	}
	return tf, nil
}

// Save writes a track file.
func Save(path string, tf *TrackFile) error {
	data, err := Marshal(tf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal renders a track file as YAML.
func Marshal(tf *TrackFile) ([]byte, error) {
	return yaml.Marshal(tf)
}

// ToSequence converts the file form into the engine's data model.
func (tf *TrackFile) ToSequence() track.Sequence {
	seq := track.Sequence{
		Keyframes:  make([]track.Keyframe, 0, len(tf.Keyframes)),
		Segments:   make([]track.Segment, 0, len(tf.Segments)),
		Visibility: make([]track.VisibilityRange, 0, len(tf.Visibility)),
	}
	for _, kc := range tf.Keyframes {
		seq.Keyframes = append(seq.Keyframes, track.Keyframe{
			X:           kc.X,
			Y:           kc.Y,
			Width:       kc.Width,
			Height:      kc.Height,
			FrameNumber: kc.Frame,
		})
	}
	for _, sc := range tf.Segments {
		seg := track.Segment{
			StartFrame: sc.Start,
			EndFrame:   sc.End,
			Type:       track.ParseSegmentType(sc.Type),
		}
		if len(sc.ControlPoints) > 0 {
			seg.ControlPoints = make(map[string][]track.ControlPoint, len(sc.ControlPoints))
			for prop, pts := range sc.ControlPoints {
				cps := make([]track.ControlPoint, len(pts))
				for i, p := range pts {
					cps[i] = track.ControlPoint{X: p.X, Y: p.Y}
				}
				seg.ControlPoints[prop] = cps
			}
		}
		if sc.Parametric != nil {
			seg.Parametric = &track.ParametricSpec{
				Kind:       track.ParseParametricKind(sc.Parametric.Kind),
				Parameters: sc.Parametric.Parameters,
			}
		}
		seq.Segments = append(seq.Segments, seg)
	}
	for _, vc := range tf.Visibility {
		seq.Visibility = append(seq.Visibility, track.VisibilityRange{
			StartFrame: vc.Start,
			EndFrame:   vc.End,
			Visible:    vc.Visible,
		})
	}
	return seq
}

// FromSequence converts a sequence back into file form, preserving label
// and fps from the receiver.
func (tf *TrackFile) FromSequence(seq track.Sequence) *TrackFile {
	out := &TrackFile{Label: tf.Label, FPS: tf.FPS}
	for _, kf := range track.SortedKeyframes(seq.Keyframes) {
		out.Keyframes = append(out.Keyframes, KeyframeConfig{
			Frame:  kf.FrameNumber,
			X:      kf.X,
			Y:      kf.Y,
			Width:  kf.Width,
			Height: kf.Height,
		})
	}
	for _, seg := range seq.Segments {
		sc := SegmentConfig{
			Start: seg.StartFrame,
			End:   seg.EndFrame,
			Type:  seg.Type.String(),
		}
		if len(seg.ControlPoints) > 0 {
			sc.ControlPoints = make(map[string][]PointConfig, len(seg.ControlPoints))
			for prop, pts := range seg.ControlPoints {
				pcs := make([]PointConfig, len(pts))
				for i, p := range pts {
					pcs[i] = PointConfig{X: p.X, Y: p.Y}
				}
				sc.ControlPoints[prop] = pcs
			}
		}
		if seg.Parametric != nil {
			sc.Parametric = &ParametricConfig{
				Kind:       seg.Parametric.Kind.String(),
				Parameters: seg.Parametric.Parameters,
			}
		}
		out.Segments = append(out.Segments, sc)
	}
	for _, vr := range seq.Visibility {
		out.Visibility = append(out.Visibility, VisibilityConfig{
			Start:   vr.StartFrame,
			End:     vr.EndFrame,
			Visible: vr.Visible,
		})
	}
	return out
}

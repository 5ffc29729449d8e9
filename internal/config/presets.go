package config

// Presets are built-in demonstration tracks covering the curve families.
var Presets = map[string]*TrackFile{
	"pan": {
		Label: "pan", FPS: 30,
		Keyframes: []KeyframeConfig{
			{Frame: 0, X: 40, Y: 200, Width: 120, Height: 80},
			{Frame: 90, X: 1100, Y: 220, Width: 120, Height: 80},
		},
		Segments: []SegmentConfig{
			{Start: 0, End: 90, Type: "ease-in-out"},
		},
	},
	"ballistic": {
		Label: "ballistic", FPS: 30,
		Keyframes: []KeyframeConfig{
			{Frame: 0, X: 100, Y: 600, Width: 40, Height: 40},
			{Frame: 60, X: 900, Y: 580, Width: 40, Height: 40},
		},
		Segments: []SegmentConfig{
			{Start: 0, End: 60, Type: "parametric",
				Parametric: &ParametricConfig{
					Kind:       "quadratic",
					Parameters: map[string]float64{"acceleration": 9.8},
				}},
		},
	},
	"flicker": {
		Label: "flicker", FPS: 30,
		Keyframes: []KeyframeConfig{
			{Frame: 0, X: 300, Y: 300, Width: 60, Height: 90},
			{Frame: 40, X: 500, Y: 280, Width: 60, Height: 90},
			{Frame: 80, X: 700, Y: 320, Width: 60, Height: 90},
		},
		Segments: []SegmentConfig{
			{Start: 0, End: 40, Type: "bezier",
				ControlPoints: map[string][]PointConfig{
					"x": {{X: 0.25, Y: 0.1}, {X: 0.75, Y: 0.9}},
					"y": {{X: 0.25, Y: 0.1}, {X: 0.75, Y: 0.9}},
				}},
			{Start: 40, End: 80, Type: "hold"},
		},
		Visibility: []VisibilityConfig{
			{Start: 15, End: 25, Visible: false},
			{Start: 55, End: 60, Visible: false},
		},
	},
}

// GetPreset returns a built-in track by name, or nil when unknown.
func GetPreset(name string) *TrackFile {
	return Presets[name]
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

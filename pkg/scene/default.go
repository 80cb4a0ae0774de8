package scene

import "math"

// Default returns the built-in showcase scene: a checkered reflective
// floor, a glass sphere front and center, two matte spheres behind it and
// two lights. Used when no scene file is given.
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			Width:       960,
			Height:      540,
			FieldOfView: math.Pi / 3,
			From:        [3]float64{0, 1.5, -5},
			To:          [3]float64{0, 1, 0},
			Up:          [3]float64{0, 1, 0},
		},
		Lights: []LightConfig{
			{Position: [3]float64{-10, 10, -10}, Intensity: [3]float64{1, 1, 1}},
			{Position: [3]float64{10, 6, -10}, Intensity: [3]float64{0.25, 0.25, 0.25}},
		},
		Materials: map[string]MaterialConfig{
			"floor": {
				Pattern: &PatternConfig{
					Kind:   "checker",
					ColorA: [3]float64{0.85, 0.85, 0.85},
					ColorB: [3]float64{0.25, 0.25, 0.3},
				},
				Specular:   ptr(0.1),
				Reflective: ptr(0.15),
			},
			"glass": {
				Color:           &[3]float64{0.05, 0.05, 0.05},
				Ambient:         ptr(0.05),
				Diffuse:         ptr(0.1),
				Specular:        ptr(1.0),
				Reflective:      ptr(0.9),
				Transparency:    ptr(0.9),
				RefractiveIndex: ptr(1.5),
			},
			"matte_red": {
				Pattern: &PatternConfig{
					Kind:   "stripe",
					ColorA: [3]float64{0.9, 0.2, 0.2},
					ColorB: [3]float64{0.7, 0.1, 0.1},
					Scale:  &[3]float64{0.25, 0.25, 0.25},
					Rotate: &[3]float64{0, math.Pi / 4, 0},
				},
				Diffuse:  ptr(0.8),
				Specular: ptr(0.3),
			},
			"matte_green": {
				Pattern: &PatternConfig{
					Kind:   "ring",
					ColorA: [3]float64{0.2, 0.8, 0.3},
					ColorB: [3]float64{0.1, 0.4, 0.15},
					Scale:  &[3]float64{0.2, 0.2, 0.2},
				},
				Diffuse:  ptr(0.8),
				Specular: ptr(0.3),
			},
		},
		Objects: []ObjectConfig{
			{Shape: "plane", Material: "floor"},
			{
				Shape:     "sphere",
				Material:  "glass",
				Translate: &[3]float64{-0.2, 1, 0.2},
			},
			{
				Shape:     "sphere",
				Material:  "matte_red",
				Translate: &[3]float64{1.7, 0.75, 1.5},
				Scale:     &[3]float64{0.75, 0.75, 0.75},
			},
			{
				Shape:     "sphere",
				Material:  "matte_green",
				Translate: &[3]float64{-1.8, 0.5, 1.2},
				Scale:     &[3]float64{0.5, 0.5, 0.5},
			},
		},
	}
}

func ptr(v float64) *float64 {
	return &v
}

package core

import "github.com/go-gl/mathgl/mgl64"

// PointLight is an omni-directional light with no geometric extent, which
// is why this renderer only produces hard shadows.
type PointLight struct {
	Position  mgl64.Vec3
	Intensity Color
}

// NewPointLight creates a new point light
func NewPointLight(position mgl64.Vec3, intensity Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

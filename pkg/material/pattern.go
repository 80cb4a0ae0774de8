package material

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mbucher/go-whitted-raytracer/pkg/core"
)

// PatternFunc maps a point in pattern space to a color.
type PatternFunc func(point mgl64.Vec3) core.Color

// Pattern is a procedural color source. It owns its own transform so a
// pattern can be scaled, rotated or translated across the object it colors.
// The inverse is cached and refreshed together with the transform.
type Pattern struct {
	at        PatternFunc
	transform mgl64.Mat4
	inverse   mgl64.Mat4
}

// NewPattern creates a pattern from a user-defined pattern function
func NewPattern(at PatternFunc) *Pattern {
	return &Pattern{
		at:        at,
		transform: mgl64.Ident4(),
		inverse:   mgl64.Ident4(),
	}
}

// Transform returns the pattern's transform
func (p *Pattern) Transform() mgl64.Mat4 {
	return p.transform
}

// SetTransform replaces the pattern's transform and refreshes the cached
// inverse. The transform must be invertible.
func (p *Pattern) SetTransform(m mgl64.Mat4) {
	p.transform = m
	p.inverse = m.Inv()
}

// At evaluates the pattern at a point already in pattern space
func (p *Pattern) At(point mgl64.Vec3) core.Color {
	return p.at(point)
}

// ColorAtObject evaluates the pattern for a world-space point on an object.
// The point travels world space -> object space -> pattern space.
func (p *Pattern) ColorAtObject(objectInverse mgl64.Mat4, worldPoint mgl64.Vec3) core.Color {
	objectPoint := core.TransformPoint(objectInverse, worldPoint)
	patternPoint := core.TransformPoint(p.inverse, objectPoint)
	return p.at(patternPoint)
}

// NewStripePattern alternates between two colors along the x axis
func NewStripePattern(a, b core.Color) *Pattern {
	return NewPattern(func(point mgl64.Vec3) core.Color {
		if math.Abs(math.Mod(math.Floor(point.X()), 2)) < core.Epsilon {
			return a
		}
		return b
	})
}

// NewGradientPattern blends linearly from a to b along the x axis,
// mirroring on odd intervals so the gradient repeats without a seam
func NewGradientPattern(a, b core.Color) *Pattern {
	distance := b.Subtract(a)
	return NewPattern(func(point mgl64.Vec3) core.Color {
		fraction := point.X() - math.Floor(point.X())
		if math.Abs(math.Mod(math.Floor(point.X()), 2)) > core.Epsilon {
			fraction = 1 - fraction
		}
		return a.Add(distance.Scale(fraction))
	})
}

// NewRingPattern alternates between two colors in concentric rings around
// the y axis
func NewRingPattern(a, b core.Color) *Pattern {
	return NewPattern(func(point mgl64.Vec3) core.Color {
		radius := math.Sqrt(point.X()*point.X() + point.Z()*point.Z())
		if math.Abs(math.Mod(math.Floor(radius), 2)) < core.Epsilon {
			return a
		}
		return b
	})
}

// NewCheckerPattern alternates between two colors in a 3D checkerboard
func NewCheckerPattern(a, b core.Color) *Pattern {
	return NewPattern(func(point mgl64.Vec3) core.Color {
		sum := math.Floor(point.X()) + math.Floor(point.Y()) + math.Floor(point.Z())
		if math.Mod(math.Abs(sum), 2) < core.Epsilon {
			return a
		}
		return b
	})
}

// NewCoordinatePattern returns the pattern-space coordinates of the point
// as a color (x -> red, y -> green, z -> blue). Useful for verifying how
// pattern and object transforms compose.
func NewCoordinatePattern() *Pattern {
	return NewPattern(func(point mgl64.Vec3) core.Color {
		return core.NewColor(point.X(), point.Y(), point.Z())
	})
}

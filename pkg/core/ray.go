package core

import "github.com/go-gl/mathgl/mgl64"

// Ray represents a ray with an origin and direction. The direction is not
// required to be normalized; distance-sensitive callers (the shadow test,
// camera rays) normalize before use.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transformed returns the ray transformed by the given matrix. Both origin
// and direction are transformed; the direction is deliberately left
// unnormalized so that t parameters keep their world-space meaning.
func (r Ray) Transformed(m mgl64.Mat4) Ray {
	return Ray{
		Origin:    TransformPoint(m, r.Origin),
		Direction: TransformVector(m, r.Direction),
	}
}

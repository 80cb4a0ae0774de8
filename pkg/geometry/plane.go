package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mbucher/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite object-space xz plane at y = 0
type Plane struct {
	shapeBase
}

// NewPlane creates a plane with an identity transform and the default
// material
func NewPlane() *Plane {
	return &Plane{shapeBase: newShapeBase()}
}

// LocalIntersect yields the single root t = -origin.y / direction.y. A ray
// parallel to the plane, or lying inside it, has no intersection.
func (p *Plane) LocalIntersect(ray core.Ray, xs *[]Intersection) {
	if math.Abs(ray.Direction.Y()) < core.Epsilon {
		return
	}
	*xs = append(*xs, Intersection{T: -ray.Origin.Y() / ray.Direction.Y(), Object: p})
}

// LocalNormalAt is constant for a plane
func (p *Plane) LocalNormalAt(mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{0, 1, 0}
}

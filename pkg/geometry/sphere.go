package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mbucher/go-whitted-raytracer/pkg/core"
	"github.com/mbucher/go-whitted-raytracer/pkg/material"
)

// Sphere is the unit sphere centered at the object-space origin. Position
// and size come from the transform.
type Sphere struct {
	shapeBase
}

// NewSphere creates a sphere with an identity transform and the default
// material
func NewSphere() *Sphere {
	return &Sphere{shapeBase: newShapeBase()}
}

// NewGlassSphere creates a sphere with a fully transparent glass material
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.Glass())
	return s
}

// LocalIntersect solves |O + tD|^2 = 1 for t. Both roots are appended even
// when negative: behind-the-origin intersections are filtered at hit
// selection, and the refraction stack needs them.
func (s *Sphere) LocalIntersect(ray core.Ray, xs *[]Intersection) {
	sphereToRay := ray.Origin

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return
	}

	sqrtD := math.Sqrt(discriminant)
	*xs = append(*xs,
		Intersection{T: (-b - sqrtD) / (2 * a), Object: s},
		Intersection{T: (-b + sqrtD) / (2 * a), Object: s},
	)
}

// LocalNormalAt returns the normal of the unit sphere, which is simply the
// vector from the origin to the point
func (s *Sphere) LocalNormalAt(point mgl64.Vec3) mgl64.Vec3 {
	return point
}

package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/mbucher/go-whitted-raytracer/pkg/core"
	"github.com/mbucher/go-whitted-raytracer/pkg/material"
)

// Shape is a primitive that can be placed in the world. Each shape owns an
// object-to-world transform and a material; intersection and normal rules
// are expressed in object space, and the transform sandwich happens in
// Intersect and NormalAt.
//
// Shapes are mutable during scene setup and must be treated as read-only
// for the duration of a render pass, since the renderer shares them across
// workers.
type Shape interface {
	// Transform returns the object-to-world transform
	Transform() mgl64.Mat4
	// SetTransform replaces the transform and refreshes the cached
	// inverse and inverse-transpose. The matrix must be invertible.
	SetTransform(m mgl64.Mat4)
	// InverseTransform returns the cached world-to-object transform
	InverseTransform() mgl64.Mat4
	// InverseTransposeTransform returns the cached matrix that maps
	// object-space normals to world space
	InverseTransposeTransform() mgl64.Mat4
	// Material returns the shape's material
	Material() *material.Material
	// SetMaterial replaces the shape's material
	SetMaterial(m material.Material)
	// LocalIntersect appends intersections of an object-space ray with
	// the shape. It must not clear xs; callers own the buffer.
	LocalIntersect(ray core.Ray, xs *[]Intersection)
	// LocalNormalAt returns the surface normal at an object-space point
	LocalNormalAt(point mgl64.Vec3) mgl64.Vec3
}

// shapeBase carries the transform/material state shared by all primitives.
// The inverse and inverse-transpose are cached and only ever updated
// together with the transform.
type shapeBase struct {
	transform        mgl64.Mat4
	inverse          mgl64.Mat4
	inverseTranspose mgl64.Mat4
	material         material.Material
}

func newShapeBase() shapeBase {
	return shapeBase{
		transform:        mgl64.Ident4(),
		inverse:          mgl64.Ident4(),
		inverseTranspose: mgl64.Ident4(),
		material:         material.New(),
	}
}

func (b *shapeBase) Transform() mgl64.Mat4 {
	return b.transform
}

func (b *shapeBase) SetTransform(m mgl64.Mat4) {
	b.transform = m
	b.inverse = m.Inv()
	b.inverseTranspose = b.inverse.Transpose()
}

func (b *shapeBase) InverseTransform() mgl64.Mat4 {
	return b.inverse
}

func (b *shapeBase) InverseTransposeTransform() mgl64.Mat4 {
	return b.inverseTranspose
}

func (b *shapeBase) Material() *material.Material {
	return &b.material
}

func (b *shapeBase) SetMaterial(m material.Material) {
	b.material = m
}

// Intersect appends the intersections of a world-space ray with the shape.
// The ray is moved into object space via the cached inverse transform
// before the primitive's local rule runs. xs is never cleared here.
func Intersect(s Shape, ray core.Ray, xs *[]Intersection) {
	s.LocalIntersect(ray.Transformed(s.InverseTransform()), xs)
}

// NormalAt returns the world-space surface normal at a world-space point.
// The local normal is mapped back through the inverse-transpose, which is
// what keeps normals perpendicular under non-uniform scale; the result is
// re-normalized because the inverse-transpose does not preserve length.
func NormalAt(s Shape, worldPoint mgl64.Vec3) mgl64.Vec3 {
	localPoint := core.TransformPoint(s.InverseTransform(), worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	worldNormal := core.TransformVector(s.InverseTransposeTransform(), localNormal)
	return worldNormal.Normalize()
}

package core

import "github.com/go-gl/mathgl/mgl64"

// TransformPoint applies an affine transform to a point (w = 1)
func TransformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformVector applies an affine transform to a direction (w = 0),
// ignoring the translation component
func TransformVector(m mgl64.Mat4, v mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}

// Reflect mirrors a vector off a surface with the given normal:
// v - 2*dot(v,n)*n
func Reflect(v, n mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

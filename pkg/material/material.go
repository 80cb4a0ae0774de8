package material

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/mbucher/go-whitted-raytracer/pkg/core"
)

// Material holds the Phong coefficients and the optical properties of a
// surface. Owned exclusively by its shape; shared material values are
// copied, never aliased.
type Material struct {
	// Color is the surface color when Pattern is nil
	Color core.Color
	// Pattern, when set, supplies the color per point instead of Color
	Pattern *Pattern
	// Ambient, Diffuse and Specular are the Phong coefficients
	Ambient  float64
	Diffuse  float64
	Specular float64
	// Shininess is the positive specular exponent
	Shininess int
	// Reflective scales the reflected contribution, in [0,1]
	Reflective float64
	// Transparency scales the refracted contribution, in [0,1]
	Transparency float64
	// RefractiveIndex of the material's interior (1.0 = vacuum)
	RefractiveIndex float64
}

// New creates a material with the standard defaults: white, opaque,
// non-reflective.
func New() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1.0,
	}
}

// Glass creates a fully transparent material with the refractive index of
// glass
func Glass() Material {
	m := New()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	return m
}

// ColorAt resolves the material's color for a world-space point on the
// object with the given cached inverse transform
func (m *Material) ColorAt(objectInverse mgl64.Mat4, point mgl64.Vec3) core.Color {
	if m.Pattern != nil {
		return m.Pattern.ColorAtObject(objectInverse, point)
	}
	return m.Color
}

// Lighting evaluates the Phong model for a single light.
//
// useAmbient disables the ambient term so that a second light source does
// not double-count it. A shadowed point keeps only its ambient term;
// diffuse and specular are suppressed entirely.
func (m *Material) Lighting(light core.PointLight, objectInverse mgl64.Mat4, point, eye, normal mgl64.Vec3, inShadow, useAmbient bool) core.Color {
	effectiveColor := m.ColorAt(objectInverse, point).Multiply(light.Intensity)

	ambient := core.Black
	if useAmbient {
		ambient = effectiveColor.Scale(m.Ambient)
	}

	if inShadow {
		return ambient
	}

	lightv := light.Position.Sub(point).Normalize()
	lightDotNormal := lightv.Dot(normal)
	if lightDotNormal < 0 {
		// light is behind the surface
		return ambient
	}

	diffuse := effectiveColor.Scale(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := core.Reflect(lightv.Mul(-1), normal)
	if reflectDotEye := reflectv.Dot(eye); reflectDotEye > 0 {
		specular = light.Intensity.Scale(m.Specular * powi(reflectDotEye, m.Shininess))
	}

	return ambient.Add(diffuse).Add(specular)
}

// powi raises base to a non-negative integer exponent by squaring. Integer
// shininess keeps the hot path off math.Pow.
func powi(base float64, exp int) float64 {
	result := 1.0
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

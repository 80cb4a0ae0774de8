package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mbucher/go-whitted-raytracer/pkg/core"
	"github.com/mbucher/go-whitted-raytracer/pkg/geometry"
	"github.com/mbucher/go-whitted-raytracer/pkg/material"
)

// World owns the scene: a flat collection of shapes and the point lights
// illuminating them. It orchestrates ray/scene intersection, shadowing and
// the recursive color computation. A World is append-only during setup and
// read-only during a render pass.
type World struct {
	objects []geometry.Shape
	lights  []core.PointLight
}

// New creates an empty world
func New() *World {
	return &World{}
}

// AddObject appends a shape to the world
func (w *World) AddObject(s geometry.Shape) {
	w.objects = append(w.objects, s)
}

// AddObjects appends several shapes to the world
func (w *World) AddObjects(shapes ...geometry.Shape) {
	w.objects = append(w.objects, shapes...)
}

// AddLight appends a light to the world
func (w *World) AddLight(l core.PointLight) {
	w.lights = append(w.lights, l)
}

// Objects returns the world's shapes
func (w *World) Objects() []geometry.Shape {
	return w.objects
}

// Lights returns the world's lights
func (w *World) Lights() []core.PointLight {
	return w.lights
}

// Intersect appends the ray's intersections with every object to xs and
// sorts the result ascending by t. xs is not cleared here so callers can
// reuse one buffer across queries by re-slicing it to zero length.
func (w *World) Intersect(ray core.Ray, xs *[]geometry.Intersection) {
	for _, object := range w.objects {
		geometry.Intersect(object, ray, xs)
	}
	geometry.SortByT(*xs)
}

// ColorAt determines the color a ray produces: black if the ray hits
// nothing, otherwise the shaded color of the nearest hit. remaining bounds
// the reflection/refraction recursion; it is the base of the mutual
// recursion with ShadeHit and strictly decreases on every bounce.
//
// xs is scratch space; pass an empty slice if in doubt.
func (w *World) ColorAt(ray core.Ray, xs *[]geometry.Intersection, remaining int) core.Color {
	*xs = (*xs)[:0]
	w.Intersect(ray, xs)

	hit, ok := geometry.Hit(*xs)
	if !ok {
		return core.Black
	}

	comps := geometry.PrepareComputations(hit, ray, *xs)
	*xs = (*xs)[:0]
	return w.ShadeHit(comps, xs, remaining)
}

// ShadeHit computes the color at a prepared intersection: the Phong
// contribution of every light (ambient exactly once, shadowed lights
// reduced to their ambient share) plus the reflected and refracted
// contributions.
func (w *World) ShadeHit(comps geometry.PreparedComputations, xs *[]geometry.Intersection, remaining int) core.Color {
	mat := comps.Object.Material()
	surface := core.Black

	useAmbient := true
	for _, light := range w.lights {
		inShadow := w.IsShadowed(light, comps.OverPoint, xs)
		surface = surface.Add(mat.Lighting(
			light, comps.Object.InverseTransform(),
			comps.OverPoint, comps.Eye, comps.Normal,
			inShadow, useAmbient,
		))
		useAmbient = false
	}

	reflected := w.ReflectedColorAt(comps, remaining)
	refracted := w.RefractedColorAt(comps, remaining)

	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether an opaque object sits strictly between the
// point and the light. The point is expected to be an over point already
// nudged off its surface.
func (w *World) IsShadowed(light core.PointLight, point mgl64.Vec3, xs *[]geometry.Intersection) bool {
	v := light.Position.Sub(point)
	distance := v.Len()
	direction := v.Normalize()

	*xs = (*xs)[:0]
	w.Intersect(core.NewRay(point, direction), xs)

	if hit, ok := geometry.Hit(*xs); ok {
		return hit.T < distance
	}
	return false
}

// ReflectedColorAt returns the color contributed by the reflection bounce,
// scaled by the material's reflectivity. Black when the recursion budget
// is spent or the surface is not reflective.
func (w *World) ReflectedColorAt(comps geometry.PreparedComputations, remaining int) core.Color {
	if remaining == 0 {
		return core.Black
	}
	reflective := comps.Object.Material().Reflective
	if math.Abs(reflective) < core.Epsilon {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.Reflect)

	// fresh scratch per bounce: the caller's buffer is still holding the
	// intersection list this bounce was derived from
	var xs []geometry.Intersection
	return w.ColorAt(reflectRay, &xs, remaining-1).Scale(reflective)
}

// RefractedColorAt returns the color contributed by the transmitted ray,
// scaled by the material's transparency. Black when the recursion budget
// is spent, the surface is opaque, or total internal reflection leaves no
// transmitted ray.
func (w *World) RefractedColorAt(comps geometry.PreparedComputations, remaining int) core.Color {
	if remaining == 0 {
		return core.Black
	}
	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return core.Black
	}

	// Snell's law in vector form
	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		// total internal reflection
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normal.Mul(nRatio*cosI - cosT).Sub(comps.Eye.Mul(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)

	var xs []geometry.Intersection
	return w.ColorAt(refractRay, &xs, remaining-1).Scale(transparency)
}

// NewTestWorld builds the canonical two-sphere scene used across the test
// suite: an outer green-ish sphere, a half-size inner sphere and a single
// white light up and to the left.
func NewTestWorld() *World {
	s1 := geometry.NewSphere()
	m1 := material.New()
	m1.Color = core.NewColor(0.8, 1.0, 0.6)
	m1.Diffuse = 0.7
	m1.Specular = 0.2
	s1.SetMaterial(m1)

	s2 := geometry.NewSphere()
	s2.SetTransform(mgl64.Scale3D(0.5, 0.5, 0.5))

	w := New()
	w.AddObjects(s1, s2)
	w.AddLight(core.NewPointLight(mgl64.Vec3{-10, 10, -10}, core.White))
	return w
}

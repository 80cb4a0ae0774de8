package geometry

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mbucher/go-whitted-raytracer/pkg/core"
)

// Intersection is a single ray/shape hit at ray parameter T. T may be
// negative (behind the ray origin); such entries survive until hit
// selection because the refraction stack walks them too.
type Intersection struct {
	T      float64
	Object Shape
}

// SortByT sorts intersections ascending by T. Ties keep insertion order.
func SortByT(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the intersection with the smallest non-negative T, or false
// if every T is negative. The slice is scanned without being consumed, so
// the same list can still feed PrepareComputations afterwards.
func Hit(xs []Intersection) (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}

// PreparedComputations is the read-only shading snapshot derived from one
// chosen intersection plus the full, sorted intersection list of its ray.
type PreparedComputations struct {
	T      float64
	Object Shape
	// Point is the hit point in world space
	Point mgl64.Vec3
	// OverPoint is Point nudged along the normal; secondary rays that
	// must not re-hit this surface (shadows, reflection) start here
	OverPoint mgl64.Vec3
	// UnderPoint is Point nudged against the normal; refracted rays
	// start here, just inside the surface
	UnderPoint mgl64.Vec3
	// Eye points back toward the ray origin
	Eye mgl64.Vec3
	// Normal is the surface normal, flipped toward the eye if needed
	Normal mgl64.Vec3
	// Reflect is the incoming direction mirrored around Normal
	Reflect mgl64.Vec3
	// Inside records whether the normal had to be flipped
	Inside bool
	// N1 and N2 are the refractive indices on the incoming and outgoing
	// side of the surface
	N1, N2 float64
}

// PrepareComputations derives the shading state for the chosen hit. xs
// must be the complete intersection list for the same ray, sorted by T;
// it is required to reconstruct which transparent objects the ray is
// currently inside of.
func PrepareComputations(hit Intersection, ray core.Ray, xs []Intersection) PreparedComputations {
	point := ray.At(hit.T)
	normal := NormalAt(hit.Object, point)
	eye := ray.Direction.Mul(-1)

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Mul(-1)
	}

	offset := normal.Mul(core.Epsilon)

	comps := PreparedComputations{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		OverPoint:  point.Add(offset),
		UnderPoint: point.Sub(offset),
		Eye:        eye,
		Normal:     normal,
		Reflect:    core.Reflect(ray.Direction, normal),
		Inside:     inside,
		N1:         1.0,
		N2:         1.0,
	}
	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks the sorted intersection list, toggling a stack of
// "objects the ray is currently inside of" at every surface crossing. N1 is
// read from the stack top just before the chosen hit toggles its object,
// N2 just after; intersections past the hit are irrelevant.
func refractiveIndices(hit Intersection, xs []Intersection) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	containers := make([]Shape, 0, 4)

	for _, x := range xs {
		isHit := x.T == hit.T && x.Object == hit.Object

		if isHit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOfShape(containers, x.Object); idx >= 0 {
			// the ray exits x.Object
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			// the ray enters x.Object
			containers = append(containers, x.Object)
		}

		if isHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}

	return n1, n2
}

// indexOfShape does a linear scan; transparency nesting is shallow in
// practice, so a vector-backed set beats anything hashed here.
func indexOfShape(shapes []Shape, s Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}

package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mbucher/go-whitted-raytracer/pkg/core"
)

func TestHit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name     string
		ts       []float64
		expected float64
		found    bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{-1, 1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"lowest nonnegative wins", []float64{5, 7, -3, 2}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := make([]Intersection, 0, len(tt.ts))
			for _, ti := range tt.ts {
				xs = append(xs, Intersection{T: ti, Object: s})
			}

			hit, found := Hit(xs)
			if found != tt.found {
				t.Fatalf("expected found=%t, got %t", tt.found, found)
			}
			if found && !core.EqualApprox(hit.T, tt.expected) {
				t.Errorf("expected t=%v, got t=%v", tt.expected, hit.T)
			}
			if len(xs) != len(tt.ts) {
				t.Errorf("Hit must not consume the slice")
			}
		})
	}
}

func TestSortByT(t *testing.T) {
	s := NewSphere()
	xs := []Intersection{{T: 5, Object: s}, {T: -3, Object: s}, {T: 2, Object: s}}
	SortByT(xs)

	for i, want := range []float64{-3, 2, 5} {
		if xs[i].T != want {
			t.Errorf("xs[%d]: expected %v, got %v", i, want, xs[i].T)
		}
	}
}

func TestPrepareComputations_Outside(t *testing.T) {
	r := core.NewRay(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1})
	s := NewSphere()
	i := Intersection{T: 4, Object: s}

	comps := PrepareComputations(i, r, []Intersection{i})

	if comps.T != i.T || comps.Object != s {
		t.Errorf("comps must carry the hit: %+v", comps)
	}
	if !vecEquals(comps.Point, mgl64.Vec3{0, 0, -1}) {
		t.Errorf("point: got %v", comps.Point)
	}
	if !vecEquals(comps.Eye, mgl64.Vec3{0, 0, -1}) {
		t.Errorf("eye: got %v", comps.Eye)
	}
	if !vecEquals(comps.Normal, mgl64.Vec3{0, 0, -1}) {
		t.Errorf("normal: got %v", comps.Normal)
	}
	if comps.Inside {
		t.Error("hit from outside must not set Inside")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	r := core.NewRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1})
	s := NewSphere()
	i := Intersection{T: 1, Object: s}

	comps := PrepareComputations(i, r, []Intersection{i})

	if !vecEquals(comps.Point, mgl64.Vec3{0, 0, 1}) {
		t.Errorf("point: got %v", comps.Point)
	}
	if !vecEquals(comps.Eye, mgl64.Vec3{0, 0, -1}) {
		t.Errorf("eye: got %v", comps.Eye)
	}
	if !comps.Inside {
		t.Error("hit from inside must set Inside")
	}
	// the normal is flipped to face the eye
	if !vecEquals(comps.Normal, mgl64.Vec3{0, 0, -1}) {
		t.Errorf("normal: got %v", comps.Normal)
	}
}

func TestPrepareComputations_OverAndUnderPoint(t *testing.T) {
	r := core.NewRay(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1})
	s := NewGlassSphere()
	s.SetTransform(mgl64.Translate3D(0, 0, 1))
	i := Intersection{T: 5, Object: s}

	comps := PrepareComputations(i, r, []Intersection{i})

	if comps.OverPoint.Z() >= -core.Epsilon/2 {
		t.Errorf("over point must sit in front of the surface: z=%v", comps.OverPoint.Z())
	}
	if comps.Point.Z() <= comps.OverPoint.Z() {
		t.Error("over point must be nudged toward the ray origin")
	}
	if comps.UnderPoint.Z() <= core.Epsilon/2 {
		t.Errorf("under point must sit behind the surface: z=%v", comps.UnderPoint.Z())
	}
	if comps.Point.Z() >= comps.UnderPoint.Z() {
		t.Error("under point must be nudged past the surface")
	}
}

func TestPrepareComputations_ReflectVector(t *testing.T) {
	p := NewPlane()
	r := core.NewRay(mgl64.Vec3{0, 1, -1}, mgl64.Vec3{0, -math.Sqrt2 / 2, math.Sqrt2 / 2})
	i := Intersection{T: math.Sqrt2, Object: p}

	comps := PrepareComputations(i, r, []Intersection{i})

	if !vecEquals(comps.Reflect, mgl64.Vec3{0, math.Sqrt2 / 2, math.Sqrt2 / 2}) {
		t.Errorf("reflect: got %v", comps.Reflect)
	}
}

// Three nested glass spheres, each with its own refractive index. The ray
// pierces all of them; every row checks the indices on either side of one
// surface crossing.
func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	a := NewGlassSphere()
	a.SetTransform(mgl64.Scale3D(2, 2, 2))
	a.Material().RefractiveIndex = 1.5

	b := NewGlassSphere()
	b.SetTransform(mgl64.Translate3D(0, 0, -0.25))
	b.Material().RefractiveIndex = 2.0

	c := NewGlassSphere()
	c.SetTransform(mgl64.Translate3D(0, 0, 0.25))
	c.Material().RefractiveIndex = 2.5

	r := core.NewRay(mgl64.Vec3{0, 0, -4}, mgl64.Vec3{0, 0, 1})
	xs := []Intersection{
		{T: 2, Object: a},
		{T: 2.75, Object: b},
		{T: 3.25, Object: c},
		{T: 4.75, Object: b},
		{T: 5.25, Object: c},
		{T: 6, Object: a},
	}

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for i, want := range expected {
		comps := PrepareComputations(xs[i], r, xs)
		if comps.N1 != want.n1 || comps.N2 != want.n2 {
			t.Errorf("xs[%d]: expected n1=%v n2=%v, got n1=%v n2=%v", i, want.n1, want.n2, comps.N1, comps.N2)
		}
	}
}

// Package scene turns TOML scene descriptions into a world and a camera
// ready for rendering.
package scene

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml/v2"

	"github.com/mbucher/go-whitted-raytracer/pkg/core"
	"github.com/mbucher/go-whitted-raytracer/pkg/geometry"
	"github.com/mbucher/go-whitted-raytracer/pkg/material"
	"github.com/mbucher/go-whitted-raytracer/pkg/renderer"
	"github.com/mbucher/go-whitted-raytracer/pkg/world"
)

// Config is the top-level scene description. Materials are declared once
// under a name and referenced by the objects using them.
type Config struct {
	Camera    CameraConfig              `toml:"camera"`
	Lights    []LightConfig             `toml:"lights"`
	Materials map[string]MaterialConfig `toml:"materials"`
	Objects   []ObjectConfig            `toml:"objects"`
}

// CameraConfig describes the image size and the eye. Angles are radians.
type CameraConfig struct {
	Width       int        `toml:"width"`
	Height      int        `toml:"height"`
	FieldOfView float64    `toml:"field_of_view"`
	From        [3]float64 `toml:"from"`
	To          [3]float64 `toml:"to"`
	Up          [3]float64 `toml:"up"`
}

// LightConfig describes one point light
type LightConfig struct {
	Position  [3]float64 `toml:"position"`
	Intensity [3]float64 `toml:"intensity"`
}

// MaterialConfig overrides the default material field by field. Absent
// fields keep their defaults, so a material block can be as small as one
// line.
type MaterialConfig struct {
	Color           *[3]float64    `toml:"color"`
	Pattern         *PatternConfig `toml:"pattern"`
	Ambient         *float64       `toml:"ambient"`
	Diffuse         *float64       `toml:"diffuse"`
	Specular        *float64       `toml:"specular"`
	Shininess       *int           `toml:"shininess"`
	Reflective      *float64       `toml:"reflective"`
	Transparency    *float64       `toml:"transparency"`
	RefractiveIndex *float64       `toml:"refractive_index"`
}

// PatternConfig describes a procedural pattern with its two colors and an
// optional pattern-space transform.
type PatternConfig struct {
	Kind      string      `toml:"kind"`
	ColorA    [3]float64  `toml:"color_a"`
	ColorB    [3]float64  `toml:"color_b"`
	Translate *[3]float64 `toml:"translate"`
	Scale     *[3]float64 `toml:"scale"`
	Rotate    *[3]float64 `toml:"rotate"`
}

// ObjectConfig places one primitive in the scene. The transform is
// composed as translate * rotate(x, y, z) * scale.
type ObjectConfig struct {
	Shape     string      `toml:"shape"`
	Material  string      `toml:"material"`
	Translate *[3]float64 `toml:"translate"`
	Scale     *[3]float64 `toml:"scale"`
	Rotate    *[3]float64 `toml:"rotate"`
}

// Load reads and decodes a TOML scene description.
func Load(r io.Reader) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	return &cfg, nil
}

// LoadFile reads and decodes a TOML scene description from disk.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Build validates the config and constructs the world and camera it
// describes.
func (cfg *Config) Build() (*world.World, *renderer.Camera, error) {
	cam, err := cfg.buildCamera()
	if err != nil {
		return nil, nil, err
	}

	if len(cfg.Lights) == 0 {
		return nil, nil, fmt.Errorf("scene needs at least one light")
	}

	w := world.New()
	for _, l := range cfg.Lights {
		w.AddLight(core.NewPointLight(vec3(l.Position), color(l.Intensity)))
	}

	materials := make(map[string]material.Material, len(cfg.Materials))
	for name, mc := range cfg.Materials {
		m, err := buildMaterial(mc)
		if err != nil {
			return nil, nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}

	for i, oc := range cfg.Objects {
		shape, err := buildObject(oc, materials)
		if err != nil {
			return nil, nil, fmt.Errorf("object %d: %w", i, err)
		}
		w.AddObject(shape)
	}

	return w, cam, nil
}

func (cfg *Config) buildCamera() (*renderer.Camera, error) {
	cc := cfg.Camera
	if cc.Width <= 0 || cc.Height <= 0 {
		return nil, fmt.Errorf("camera size %dx%d is not positive", cc.Width, cc.Height)
	}
	if cc.FieldOfView <= 0 || cc.FieldOfView >= math.Pi {
		return nil, fmt.Errorf("field of view %v is outside (0, pi)", cc.FieldOfView)
	}

	cam := renderer.NewCamera(cc.Width, cc.Height, cc.FieldOfView)
	cam.SetTransform(renderer.ViewTransform(vec3(cc.From), vec3(cc.To), vec3(cc.Up)))
	return cam, nil
}

func buildMaterial(mc MaterialConfig) (material.Material, error) {
	m := material.New()
	if mc.Color != nil {
		m.Color = color(*mc.Color)
	}
	if mc.Pattern != nil {
		p, err := buildPattern(*mc.Pattern)
		if err != nil {
			return m, err
		}
		m.Pattern = p
	}
	if mc.Ambient != nil {
		m.Ambient = *mc.Ambient
	}
	if mc.Diffuse != nil {
		m.Diffuse = *mc.Diffuse
	}
	if mc.Specular != nil {
		m.Specular = *mc.Specular
	}
	if mc.Shininess != nil {
		m.Shininess = *mc.Shininess
	}
	if mc.Reflective != nil {
		m.Reflective = *mc.Reflective
	}
	if mc.Transparency != nil {
		m.Transparency = *mc.Transparency
	}
	if mc.RefractiveIndex != nil {
		m.RefractiveIndex = *mc.RefractiveIndex
	}
	return m, nil
}

func buildPattern(pc PatternConfig) (*material.Pattern, error) {
	a, b := color(pc.ColorA), color(pc.ColorB)

	var p *material.Pattern
	switch pc.Kind {
	case "stripe":
		p = material.NewStripePattern(a, b)
	case "gradient":
		p = material.NewGradientPattern(a, b)
	case "ring":
		p = material.NewRingPattern(a, b)
	case "checker":
		p = material.NewCheckerPattern(a, b)
	default:
		return nil, fmt.Errorf("unknown pattern kind %q", pc.Kind)
	}

	p.SetTransform(composeTransform(pc.Translate, pc.Rotate, pc.Scale))
	return p, nil
}

func buildObject(oc ObjectConfig, materials map[string]material.Material) (geometry.Shape, error) {
	var shape geometry.Shape
	switch oc.Shape {
	case "sphere":
		shape = geometry.NewSphere()
	case "plane":
		shape = geometry.NewPlane()
	default:
		return nil, fmt.Errorf("unknown shape %q", oc.Shape)
	}

	if oc.Material != "" {
		m, ok := materials[oc.Material]
		if !ok {
			return nil, fmt.Errorf("undefined material %q", oc.Material)
		}
		shape.SetMaterial(m)
	}

	shape.SetTransform(composeTransform(oc.Translate, oc.Rotate, oc.Scale))
	return shape, nil
}

func composeTransform(translate, rotate, scale *[3]float64) mgl64.Mat4 {
	m := mgl64.Ident4()
	if translate != nil {
		m = m.Mul4(mgl64.Translate3D(translate[0], translate[1], translate[2]))
	}
	if rotate != nil {
		if rotate[0] != 0 {
			m = m.Mul4(mgl64.HomogRotate3DX(rotate[0]))
		}
		if rotate[1] != 0 {
			m = m.Mul4(mgl64.HomogRotate3DY(rotate[1]))
		}
		if rotate[2] != 0 {
			m = m.Mul4(mgl64.HomogRotate3DZ(rotate[2]))
		}
	}
	if scale != nil {
		m = m.Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
	}
	return m
}

func vec3(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

func color(c [3]float64) core.Color {
	return core.NewColor(c[0], c[1], c[2])
}

package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mbucher/go-whitted-raytracer/pkg/core"
)

// Camera maps the 2D pixel grid onto rays in world space. The image plane
// sits one unit in front of the camera at z = -1 in camera space; the
// field of view fixes how much of that plane a row of pixels covers.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform mgl64.Mat4
	inverse   mgl64.Mat4

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera for an hsize x vsize image with the given
// horizontal or vertical field of view (whichever is the larger aspect),
// looking down -z from the origin until a view transform is set.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   mgl64.Ident4(),
		inverse:     mgl64.Ident4(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c
}

// Transform returns the camera's view transform
func (c *Camera) Transform() mgl64.Mat4 {
	return c.transform
}

// SetTransform stores the view transform and caches its inverse, which is
// what ray generation actually needs.
func (c *Camera) SetTransform(m mgl64.Mat4) {
	c.transform = m
	c.inverse = m.Inv()
}

// PixelSize returns the world-space edge length of one pixel on the image plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray through the center of pixel
// (px, py). The direction is always unit length.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	// offsets from the canvas edge to the pixel center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// the camera looks toward -z, so +x in camera space is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := core.TransformPoint(c.inverse, mgl64.Vec3{worldX, worldY, -1})
	origin := core.TransformPoint(c.inverse, mgl64.Vec3{0, 0, 0})
	direction := pixel.Sub(origin).Normalize()

	return core.NewRay(origin, direction)
}

// ViewTransform builds the world-to-camera matrix for an eye at from
// looking toward to, with up fixing the camera's roll. up need not be a
// unit vector or exactly perpendicular to the viewing direction.
func ViewTransform(from, to, up mgl64.Vec3) mgl64.Mat4 {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := mgl64.Mat4FromRows(
		mgl64.Vec4{left.X(), left.Y(), left.Z(), 0},
		mgl64.Vec4{trueUp.X(), trueUp.Y(), trueUp.Z(), 0},
		mgl64.Vec4{-forward.X(), -forward.Y(), -forward.Z(), 0},
		mgl64.Vec4{0, 0, 0, 1},
	)

	return orientation.Mul4(mgl64.Translate3D(-from.X(), -from.Y(), -from.Z()))
}

package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/mbucher/go-whitted-raytracer/pkg/core"
)

// ErrOutOfBounds is returned when a pixel coordinate falls outside the canvas.
var ErrOutOfBounds = errors.New("canvas: pixel out of bounds")

// Canvas is a fixed-size grid of linear float colors, origin at the top
// left. Rows are independent slices so render workers can write disjoint
// rows without coordination.
type Canvas struct {
	width  int
	height int
	pixels [][]core.Color
}

// NewCanvas creates a canvas of the given size with every pixel black.
func NewCanvas(width, height int) *Canvas {
	pixels := make([][]core.Color, height)
	for y := range pixels {
		pixels[y] = make([]core.Color, width)
	}
	return &Canvas{width: width, height: height, pixels: pixels}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// WritePixel stores a color at (x, y).
func (c *Canvas) WritePixel(x, y int, col core.Color) error {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return fmt.Errorf("%w: (%d, %d) on %dx%d canvas", ErrOutOfBounds, x, y, c.width, c.height)
	}
	c.pixels[y][x] = col
	return nil
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) (core.Color, error) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return core.Color{}, fmt.Errorf("%w: (%d, %d) on %dx%d canvas", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return c.pixels[y][x], nil
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each
// channel to [0, 1] before quantizing.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y][x]
			img.SetRGBA(x, y, color.RGBA{
				R: quantize(p.R),
				G: quantize(p.G),
				B: quantize(p.B),
				A: 255,
			})
		}
	}
	return img
}

func quantize(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

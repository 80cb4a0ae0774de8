package renderer

import (
	"runtime"
	"sync"

	"github.com/mbucher/go-whitted-raytracer/pkg/canvas"
	"github.com/mbucher/go-whitted-raytracer/pkg/geometry"
	"github.com/mbucher/go-whitted-raytracer/pkg/world"
)

// DefaultRecursionDepth bounds the reflection/refraction bounces per
// primary ray. Five keeps nested glass plausible without chasing
// contributions the 8-bit output cannot show.
const DefaultRecursionDepth = 5

// Render traces every pixel sequentially and returns the finished canvas.
// One intersection buffer is reused across the whole image.
func Render(c *Camera, w *world.World, depth int) *canvas.Canvas {
	img := canvas.NewCanvas(c.HSize, c.VSize)

	var xs []geometry.Intersection
	for y := 0; y < c.VSize; y++ {
		renderRow(c, w, img, y, depth, &xs)
	}
	return img
}

// RenderParallel traces the image with a pool of workers, one row per
// task. workers <= 0 means one worker per CPU. Every worker owns its
// scratch buffer and the rows it writes, so the canvas needs no locking.
func RenderParallel(c *Camera, w *world.World, depth, workers int) *canvas.Canvas {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	img := canvas.NewCanvas(c.HSize, c.VSize)

	rows := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			var xs []geometry.Intersection
			for y := range rows {
				renderRow(c, w, img, y, depth, &xs)
			}
		}()
	}

	for y := 0; y < c.VSize; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return img
}

func renderRow(c *Camera, w *world.World, img *canvas.Canvas, y, depth int, xs *[]geometry.Intersection) {
	for x := 0; x < c.HSize; x++ {
		ray := c.RayForPixel(x, y)
		color := w.ColorAt(ray, xs, depth)
		// coordinates come straight off the canvas dimensions
		_ = img.WritePixel(x, y, color)
	}
}

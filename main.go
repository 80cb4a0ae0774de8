package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mbucher/go-whitted-raytracer/pkg/renderer"
	"github.com/mbucher/go-whitted-raytracer/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Path to a TOML scene file (built-in scene when empty)")
	output := flag.String("out", "render.png", "Output image path")
	format := flag.String("format", "", "Output format: 'png' or 'ppm' (derived from -out when empty)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	depth := flag.Int("depth", renderer.DefaultRecursionDepth, "Reflection/refraction recursion depth")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(logger, *scenePath, *output, *format, *workers, *depth); err != nil {
		logger.Fatal("render failed", "err", err)
	}
}

func run(logger *log.Logger, scenePath, output, format string, workers, depth int) error {
	cfg, err := loadScene(logger, scenePath)
	if err != nil {
		return err
	}

	w, cam, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}
	logger.Debug("scene built",
		"objects", len(w.Objects()),
		"lights", len(w.Lights()),
		"size", fmt.Sprintf("%dx%d", cam.HSize, cam.VSize))

	logger.Info("rendering", "size", fmt.Sprintf("%dx%d", cam.HSize, cam.VSize), "depth", depth)
	start := time.Now()
	img := renderer.RenderParallel(cam, w, depth, workers)
	logger.Info("render complete", "elapsed", time.Since(start).Round(time.Millisecond))

	if format == "" {
		format = formatFromPath(output)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	switch format {
	case "png":
		err = png.Encode(f, img.ToImage())
	case "ppm":
		err = img.WritePPM(f)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	logger.Info("image written", "path", output, "format", format)
	return nil
}

func loadScene(logger *log.Logger, path string) (*scene.Config, error) {
	if path == "" {
		logger.Info("no scene file given, using the built-in scene")
		return scene.Default(), nil
	}

	logger.Info("loading scene", "path", path)
	cfg, err := scene.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading scene: %w", err)
	}
	return cfg, nil
}

func formatFromPath(path string) string {
	if ext := filepath.Ext(path); ext == ".ppm" {
		return "ppm"
	}
	return "png"
}

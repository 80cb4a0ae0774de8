package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

const tinyScene = `
[camera]
width = 8
height = 6
field_of_view = 1.047
from = [0.0, 1.5, -5.0]
to = [0.0, 1.0, 0.0]
up = [0.0, 1.0, 0.0]

[[lights]]
position = [-10.0, 10.0, -10.0]
intensity = [1.0, 1.0, 1.0]

[[objects]]
shape = "sphere"
translate = [0.0, 1.0, 0.0]
`

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"render.png", "png"},
		{"out/render.ppm", "ppm"},
		{"render", "png"},
		{"render.PPM", "png"}, // extensions are case sensitive
	}

	for _, tt := range tests {
		if got := formatFromPath(tt.path); got != tt.expected {
			t.Errorf("formatFromPath(%q): expected %q, got %q", tt.path, tt.expected, got)
		}
	}
}

func TestRun(t *testing.T) {
	logger := log.New(io.Discard)
	dir := t.TempDir()

	scenePath := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(scenePath, []byte(tinyScene), 0644); err != nil {
		t.Fatalf("writing scene: %v", err)
	}

	t.Run("renders a ppm", func(t *testing.T) {
		out := filepath.Join(dir, "render.ppm")
		if err := run(logger, scenePath, out, "", 2, 2); err != nil {
			t.Fatalf("run: %v", err)
		}
		info, err := os.Stat(out)
		if err != nil {
			t.Fatalf("output not written: %v", err)
		}
		if info.Size() == 0 {
			t.Error("output file is empty")
		}
	})

	t.Run("renders a png", func(t *testing.T) {
		out := filepath.Join(dir, "render.png")
		if err := run(logger, scenePath, out, "png", 2, 2); err != nil {
			t.Fatalf("run: %v", err)
		}
		if _, err := os.Stat(out); err != nil {
			t.Fatalf("output not written: %v", err)
		}
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		out := filepath.Join(dir, "render.bmp")
		if err := run(logger, scenePath, out, "bmp", 2, 2); err == nil {
			t.Error("expected an error for an unknown format")
		}
	})

	t.Run("missing scene file", func(t *testing.T) {
		out := filepath.Join(dir, "render2.png")
		if err := run(logger, filepath.Join(dir, "nope.toml"), out, "", 2, 2); err == nil {
			t.Error("expected an error for a missing scene file")
		}
	})
}

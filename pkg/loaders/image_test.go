package loaders

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLoadImageTexture(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")

	// Create a simple 2x2 test image
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	texture, err := LoadImageTexture(testFile)
	if err != nil {
		t.Fatalf("LoadImageTexture failed: %v", err)
	}

	if texture.Width != 2 || texture.Height != 2 || len(texture.Pixels) != 4 {
		t.Fatalf("Expected 2x2 texture, got %dx%d with %d pixels", texture.Width, texture.Height, len(texture.Pixels))
	}

	checkColor := func(name string, got, expected core.Vec3) {
		const tolerance = 0.01
		if abs(got.X-expected.X) > tolerance ||
			abs(got.Y-expected.Y) > tolerance ||
			abs(got.Z-expected.Z) > tolerance {
			t.Errorf("%s: expected %v, got %v", name, expected, got)
		}
	}

	white := core.NewVec3(1.0, 1.0, 1.0)
	red := core.NewVec3(1.0, 0.0, 0.0)
	green := core.NewVec3(0.0, 1.0, 0.0)
	blue := core.NewVec3(0.0, 0.0, 1.0)

	// v=1 is the top row of the image
	checkColor("top left", texture.Evaluate(0.25, 0.75, core.Vec3{}), white)
	checkColor("top right", texture.Evaluate(0.75, 0.75, core.Vec3{}), red)
	checkColor("bottom left", texture.Evaluate(0.25, 0.25, core.Vec3{}), green)
	checkColor("bottom right", texture.Evaluate(0.75, 0.25, core.Vec3{}), blue)
}

func TestLoadImageTexture_Errors(t *testing.T) {
	if _, err := LoadImageTexture(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImageTexture(garbage); err == nil {
		t.Error("Expected decode error, got nil")
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

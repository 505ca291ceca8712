package renderer

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// integratorFunc adapts a closure to the integrator interface
type integratorFunc func(ray core.Ray, random *rand.Rand) core.Vec3

func (f integratorFunc) Sample(ray core.Ray, random *rand.Rand) core.Vec3 {
	return f(ray, random)
}

func testCamera() *Camera {
	return NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 1,
	})
}

func constant(c core.Vec3) integratorFunc {
	return func(core.Ray, *rand.Rand) core.Vec3 { return c }
}

func TestNewRenderer_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		options Options
	}{
		{"zero width", Options{Width: 0, Height: 10, SamplesPerPixel: 1}},
		{"negative height", Options{Width: 10, Height: -1, SamplesPerPixel: 1}},
		{"no samples", Options{Width: 10, Height: 10, SamplesPerPixel: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRenderer(testCamera(), constant(core.Vec3{}), tt.options)
			if !errors.Is(err, ErrInvalidResolution) {
				t.Errorf("Expected ErrInvalidResolution, got %v", err)
			}
		})
	}
}

func TestToneMap(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected [3]uint8
	}{
		{"black", core.NewVec3(0, 0, 0), [3]uint8{0, 0, 0}},
		{"quarter encodes to half", core.NewVec3(0.25, 0.25, 0.25), [3]uint8{128, 128, 128}},
		{"one clamps below 256", core.NewVec3(1, 1, 1), [3]uint8{255, 255, 255}},
		{"overexposed", core.NewVec3(16, 0, 4), [3]uint8{255, 0, 255}},
		{"negative", core.NewVec3(-1, 0.25, 0), [3]uint8{0, 128, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToneMap(tt.color); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRender_ConstantImage(t *testing.T) {
	r, err := NewRenderer(testCamera(), constant(core.NewVec3(0.25, 0, 1)), Options{
		Width: 7, Height: 5, SamplesPerPixel: 3, Workers: 3,
	})
	if err != nil {
		t.Fatal(err)
	}

	img, stats, err := r.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if p := img.At(x, y); p != [3]uint8{128, 0, 255} {
				t.Fatalf("pixel (%d, %d): expected (128, 0, 255), got %v", x, y, p)
			}
		}
	}
	if stats.TotalPixels() != 35 || stats.TotalSamples() != 105 || stats.Workers != 3 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestRender_TopRowIsUp(t *testing.T) {
	upward := integratorFunc(func(ray core.Ray, random *rand.Rand) core.Vec3 {
		if ray.Direction.Y > 0 {
			return core.NewVec3(1, 1, 1)
		}
		return core.Vec3{}
	})
	r, err := NewRenderer(testCamera(), upward, Options{Width: 4, Height: 4, SamplesPerPixel: 4})
	if err != nil {
		t.Fatal(err)
	}

	img, _, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	if img.At(0, 0) != [3]uint8{255, 255, 255} {
		t.Errorf("Expected top row to see upward rays, got %v", img.At(0, 0))
	}
	if img.At(0, 3) != [3]uint8{0, 0, 0} {
		t.Errorf("Expected bottom row to see downward rays, got %v", img.At(0, 3))
	}
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	noisy := integratorFunc(func(ray core.Ray, random *rand.Rand) core.Vec3 {
		return core.NewVec3(random.Float64(), random.Float64(), ray.Direction.X*ray.Direction.X)
	})

	var images [][]uint8
	for _, workers := range []int{1, 2, 8} {
		r, err := NewRenderer(testCamera(), noisy, Options{Width: 9, Height: 6, SamplesPerPixel: 2, Workers: workers, Seed: 5})
		if err != nil {
			t.Fatal(err)
		}
		img, _, err := r.Render()
		if err != nil {
			t.Fatal(err)
		}
		images = append(images, img.Pix)
	}

	for i := 1; i < len(images); i++ {
		if !bytes.Equal(images[0], images[i]) {
			t.Errorf("Expected identical images for the same seed, run %d differs", i)
		}
	}
}

func TestRender_NonFiniteRadianceIsFatal(t *testing.T) {
	for _, bad := range []float64{math.Inf(1), math.NaN()} {
		poisoned := integratorFunc(func(ray core.Ray, random *rand.Rand) core.Vec3 {
			if ray.Direction.X > 0 && ray.Direction.Y > 0 {
				return core.NewVec3(bad, 0, 0)
			}
			return core.NewVec3(0.5, 0.5, 0.5)
		})
		r, err := NewRenderer(testCamera(), poisoned, Options{Width: 8, Height: 8, SamplesPerPixel: 1, Workers: 4})
		if err != nil {
			t.Fatal(err)
		}

		img, _, err := r.Render()
		if !errors.Is(err, ErrNonFiniteRadiance) {
			t.Errorf("Expected ErrNonFiniteRadiance for %v, got %v", bad, err)
		}
		if img != nil {
			t.Error("Expected no image from a failed render")
		}
	}
}

func TestWithSamples_DoesNotModifyOriginal(t *testing.T) {
	r, err := NewRenderer(testCamera(), constant(core.Vec3{}), Options{Width: 2, Height: 2, SamplesPerPixel: 4, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	clone := r.WithSamples(16, 9)
	if clone.Options().SamplesPerPixel != 16 || clone.Options().Seed != 9 {
		t.Errorf("Expected clone with 16 spp and seed 9, got %+v", clone.Options())
	}
	if r.Options().SamplesPerPixel != 4 || r.Options().Seed != 1 {
		t.Errorf("Expected original unchanged, got %+v", r.Options())
	}
}

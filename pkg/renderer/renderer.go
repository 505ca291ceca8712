// Package renderer turns a scene into pixels: camera rays, parallel per-pixel sampling,
// tone mapping, filters, image output and the progressive pass driver.
package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("renderer")

var (
	// ErrInvalidResolution is returned for non-positive image dimensions or sample counts
	ErrInvalidResolution = errors.New("renderer: invalid resolution")

	// ErrNonFiniteRadiance is returned when a pixel estimate is NaN or infinite after scrubbing
	ErrNonFiniteRadiance = errors.New("renderer: non-finite radiance")
)

// Options contains the render configuration
type Options struct {
	Width, Height   int
	SamplesPerPixel int
	Workers         int   // 0 uses one worker per CPU
	Seed            int64 // Base seed; pixel seeds are derived from it
	Settings        *core.RaySettings
}

// Renderer samples every pixel of an image in parallel
type Renderer struct {
	camera     *Camera
	integrator integrator.Integrator
	options    Options
}

// NewRenderer creates a renderer after validating its options
func NewRenderer(camera *Camera, integ integrator.Integrator, options Options) (*Renderer, error) {
	if options.Width <= 0 || options.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, options.Width, options.Height)
	}
	if options.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("%w: %d samples per pixel", ErrInvalidResolution, options.SamplesPerPixel)
	}
	if options.Settings == nil {
		options.Settings = core.DefaultRaySettings()
	}

	return &Renderer{camera: camera, integrator: integ, options: options}, nil
}

// Options returns the renderer's configuration
func (r *Renderer) Options() Options {
	return r.options
}

// WithSamples returns a renderer sharing this one's scene with a different sample count and seed
func (r *Renderer) WithSamples(samples int, seed int64) *Renderer {
	clone := *r
	clone.options.SamplesPerPixel = samples
	clone.options.Seed = seed
	return &clone
}

// Render runs one complete pass over the image
func (r *Renderer) Render() (*Image, RenderStats, error) {
	width, height := r.options.Width, r.options.Height
	start := time.Now()

	pool := NewWorkerPool(width, height, r.options.Workers, r.samplePixel)
	pool.Start()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pool.SubmitTask(PixelTask{X: x, Y: y, Seed: r.pixelSeed(x, y)})
		}
	}
	colors, err := pool.Wait()

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: r.options.SamplesPerPixel,
		Workers:         pool.GetNumWorkers(),
		Duration:        time.Since(start),
	}
	if err != nil {
		return nil, stats, err
	}

	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, ToneMap(colors[y*width+x]))
		}
	}

	logger.Debugf("rendered %dx%d at %d spp in %v", width, height, r.options.SamplesPerPixel, stats.Duration)
	return img, stats, nil
}

// pixelSeed derives a distinct seed for every pixel of a pass
func (r *Renderer) pixelSeed(x, y int) int64 {
	return r.options.Seed*int64(r.options.Width*r.options.Height) + int64(y*r.options.Width+x)
}

// samplePixel averages SamplesPerPixel jittered estimates for pixel (x, y), where y=0 is the top row
func (r *Renderer) samplePixel(x, y int, random *rand.Rand) (core.Vec3, error) {
	width, height := float64(r.options.Width), float64(r.options.Height)
	row := float64(r.options.Height - 1 - y)

	colorAccum := core.Vec3{}
	for sample := 0; sample < r.options.SamplesPerPixel; sample++ {
		s := (float64(x) + random.Float64()) / width
		t := (row + random.Float64()) / height

		ray := r.camera.GetRay(s, t, r.options.Settings, random)
		colorAccum = colorAccum.Add(r.integrator.Sample(ray, random))
	}

	color := colorAccum.Divide(float64(r.options.SamplesPerPixel))
	if !color.IsFinite() {
		return core.Vec3{}, fmt.Errorf("%w: pixel (%d, %d) = %v", ErrNonFiniteRadiance, x, y, color)
	}
	return color, nil
}

// ToneMap gamma-encodes a linear color (gamma 2), clamps each channel to [0, 0.999] and
// quantizes it to 8 bits
func ToneMap(color core.Vec3) [3]uint8 {
	encoded := color.Sqrt().ScrubNaN().Clamp(0, 0.999)
	return [3]uint8{
		uint8(256 * encoded.X),
		uint8(256 * encoded.Y),
		uint8(256 * encoded.Z),
	}
}

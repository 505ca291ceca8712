package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var (
	// ErrUnknownScene is returned for a scene name that is not registered
	ErrUnknownScene = errors.New("scene: unknown scene")

	// ErrMissingAsset is returned when a scene needs a file path that was not provided
	ErrMissingAsset = errors.New("scene: missing asset path")
)

// Options parameterize the built-in scenes
type Options struct {
	AspectRatio  float64 // Width over height; 1 when zero
	Time0, Time1 float64 // Camera shutter
	MeshPath     string  // OBJ file for the mesh scene
	TexturePath  string  // Image file for the earth scene
	Seed         int64   // Seeds BVH construction and random scene layouts
}

func (o Options) aspect() float64 {
	if o.AspectRatio <= 0 {
		return 1
	}
	return o.AspectRatio
}

func (o Options) random() *rand.Rand {
	return rand.New(rand.NewSource(o.Seed))
}

// Info describes a registered scene
type Info struct {
	Name        string
	Description string
}

type entry struct {
	description string
	build       func(Options) (*Scene, error)
}

var registry = map[string]entry{
	"cornell":       {"Cornell box with a rotated block and a glass sphere", NewCornellScene},
	"cornell-smoke": {"Cornell box with two blocks of smoke", NewCornellSmokeScene},
	"glass-spheres": {"solid, hollow and metal spheres on a checkered ground under a sky", NewGlassSpheresScene},
	"motion-blur":   {"bouncing spheres rendered across the shutter interval", NewMotionBlurScene},
	"mesh":          {"an OBJ mesh instanced twice inside a Cornell box (needs a mesh path)", NewMeshScene},
	"earth":         {"an image-textured globe lit by a disc sun (needs a texture path)", NewEarthScene},
}

// List returns the registered scenes sorted by name
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for name, e := range registry {
		infos = append(infos, Info{Name: name, Description: e.description})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// New builds the named scene
func New(name string, opts Options) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return e.build(opts)
}

// skyBackground is the daylight gradient endpoint used by the outdoor scenes
var skyBackground = core.NewVec3(0.7, 0.8, 1.0)

// outdoorCamera looks at the origin from the classic three-quarter view
func outdoorCamera(opts Options, aperture float64) *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   opts.aspect(),
		Aperture:      aperture,
		FocusDistance: 10,
		Time0:         opts.Time0,
		Time1:         opts.Time1,
	})
}

// Package scene assembles entities, materials, lights and a camera into renderable scenes and
// provides the built-in scenes.
package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering. It is immutable once built.
type Scene struct {
	Name       string
	Camera     *renderer.Camera
	World      *geometry.BVHNode
	Lights     core.Hittable // Importance-sampling targets; nil when the scene has none
	Materials  *material.Table
	Background core.Vec3 // Radiance of escaping rays unless the render configuration overrides it
}

// Integrator creates a path tracer over the scene
func (s *Scene) Integrator(mixtureWeight float64) *integrator.PathTracingIntegrator {
	pt := integrator.NewPathTracingIntegrator(s.World, s.Materials, s.Lights)
	pt.MixtureWeight = mixtureWeight
	return pt
}

// Builder collects entities, lights and materials during single-threaded scene assembly
type Builder struct {
	Materials *material.Table
	objects   *geometry.List
	lights    *geometry.List
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{
		Materials: material.NewTable(),
		objects:   geometry.NewList(),
		lights:    geometry.NewList(),
	}
}

// Material registers a material and returns its handle
func (b *Builder) Material(m material.Material) int {
	return b.Materials.Add(m)
}

// Add inserts entities into the world
func (b *Builder) Add(objects ...core.Hittable) {
	for _, object := range objects {
		b.objects.Add(object)
	}
}

// AddLight inserts an entity into the world and samples it as a light
func (b *Builder) AddLight(light core.Hittable) {
	b.objects.Add(light)
	b.lights.Add(light)
}

// AddSampled registers an entity as an importance-sampling target without adding it to the world.
// Used when the world holds a wrapped or composite version of the same surface.
func (b *Builder) AddSampled(target core.Hittable) {
	b.lights.Add(target)
}

// Build constructs the BVH and returns the finished scene. Panics when no entities were added.
func (b *Builder) Build(name string, camera *renderer.Camera, background core.Vec3, random *rand.Rand) *Scene {
	world := geometry.NewBVH(b.objects, random)

	s := &Scene{
		Name:       name,
		Camera:     camera,
		World:      world,
		Materials:  b.Materials,
		Background: background,
	}
	if b.lights.Len() > 0 {
		s.Lights = b.lights
	}

	stats := world.Stats()
	logger.Infof("built scene %s: %d entities, %d lights, %d materials, BVH %d nodes depth %d",
		name, b.objects.Len(), b.lights.Len(), b.Materials.Len(), stats.Nodes, stats.MaxDepth)
	return s
}

package integrator

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// defaultSettings is used for rays that carry no render settings
var defaultSettings = core.DefaultRaySettings()

// PathTracingIntegrator implements unidirectional path tracing with a light/material mixture pdf
type PathTracingIntegrator struct {
	World         core.Hittable   // Usually the scene BVH
	Materials     *material.Table // Resolves hit record material handles
	Lights        core.Hittable   // Importance-sampling targets; nil disables light sampling
	MixtureWeight float64         // Probability of sampling toward the lights; 0.5 when zero
}

// NewPathTracingIntegrator creates a new path tracing integrator. lights may be nil.
func NewPathTracingIntegrator(world core.Hittable, materials *material.Table, lights core.Hittable) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		World:         world,
		Materials:     materials,
		Lights:        lights,
		MixtureWeight: 0.5,
	}
}

// Sample estimates the radiance along a camera ray. NaN channels are scrubbed once, on the final value.
func (pt *PathTracingIntegrator) Sample(ray core.Ray, random *rand.Rand) core.Vec3 {
	return pt.RayColor(ray, 0, random).ScrubNaN()
}

// RayColor computes the radiance along a ray that has already scattered depth times
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	settings := ray.Settings
	if settings == nil {
		settings = defaultSettings
	}

	hit, isHit := pt.World.Hit(ray, settings.Hit.Min, settings.Hit.Max, random)
	if !isHit {
		return settings.Background
	}

	mat := pt.Materials.Get(hit.Material)
	emitted := mat.Emitted(ray, hit)

	scatter, didScatter := mat.Scatter(ray, hit, random)
	if !didScatter {
		return emitted
	}

	// Hard cutoff: no Russian roulette
	if depth >= settings.MaxDepth {
		return core.Vec3{}
	}

	if scatter.IsSpecular() {
		return scatter.Attenuation.MultiplyVec(pt.RayColor(*scatter.SpecularRay, depth+1, random))
	}

	return emitted.Add(pt.calculateScatteredColor(ray, hit, mat, scatter, depth, random))
}

// calculateScatteredColor samples a direction from the mixture of light and material pdfs and
// returns the importance-weighted radiance arriving along it
func (pt *PathTracingIntegrator) calculateScatteredColor(ray core.Ray, hit *core.HitRecord, mat material.Material, scatter material.ScatterRecord, depth int, random *rand.Rand) core.Vec3 {
	sampling := scatter.PDF
	if pt.Lights != nil {
		weight := pt.MixtureWeight
		if weight == 0 {
			weight = 0.5
		}
		sampling = &pdf.Mixture{
			First:  pdf.NewHittable(pt.Lights, hit.Point),
			Second: scatter.PDF,
			Weight: weight,
		}
	}

	scattered := ray.Spawn(hit.Point, sampling.Generate(random))
	pdfValue := sampling.Value(scattered.Direction, random)
	if pdfValue <= 0 {
		return core.Vec3{}
	}
	scatteringPDF := mat.ScatteringPDF(ray, hit, scattered)

	incoming := pt.RayColor(scattered, depth+1, random)
	return scatter.Attenuation.Multiply(scatteringPDF).MultiplyVec(incoming).Divide(pdfValue)
}

package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// addCheckeredGround adds a huge sphere acting as the ground plane
func addCheckeredGround(b *Builder) {
	checker := material.NewChecker(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := b.Material(material.NewTexturedLambertian(checker))
	b.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))
}

// NewGlassSpheresScene creates solid glass, hollow glass, metal and diffuse spheres under a sky.
// The sky is the only light source, so nothing is importance sampled.
func NewGlassSpheresScene(opts Options) (*Scene, error) {
	b := NewBuilder()
	addCheckeredGround(b)

	glass := b.Material(material.NewDielectric(1.5))
	metal := b.Material(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0))
	brushed := b.Material(material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.3))
	diffuse := b.Material(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))

	b.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		// Hollow bubble: the negative radius flips the inner surface normals inward
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), -0.9, glass),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, metal),
		geometry.NewSphere(core.NewVec3(2, 0.4, 2), 0.4, diffuse),
		geometry.NewSphere(core.NewVec3(-2, 0.4, 2.2), 0.4, brushed),
	)

	return b.Build("glass-spheres", outdoorCamera(opts, 0.1), skyBackground, opts.random()), nil
}

// NewMotionBlurScene creates a grid of small diffuse spheres that bounce upward during the
// 0..1 time range, plus three large static spheres
func NewMotionBlurScene(opts Options) (*Scene, error) {
	b := NewBuilder()
	addCheckeredGround(b)
	random := opts.random()

	for a := -5; a < 5; a++ {
		for c := -5; c < 5; c++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(c)+0.9*random.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
			albedo = albedo.MultiplyVec(core.NewVec3(random.Float64(), random.Float64(), random.Float64()))
			mat := b.Material(material.NewLambertian(albedo))

			bounce := core.NewVec3(0, 0.5*random.Float64(), 0)
			b.Add(geometry.NewMovingSphere(center, center.Add(bounce), 0, 1, 0.2, mat))
		}
	}

	glass := b.Material(material.NewDielectric(1.5))
	diffuse := b.Material(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	metal := b.Material(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0))
	b.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, diffuse),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, metal),
	)

	return b.Build("motion-blur", outdoorCamera(opts, 0), skyBackground, random), nil
}

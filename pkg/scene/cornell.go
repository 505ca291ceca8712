package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellCamera positions the camera outside the open side of the box, looking in
func cornellCamera(opts Options) *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   opts.aspect(),
		FocusDistance: 10,
		Time0:         opts.Time0,
		Time1:         opts.Time1,
	})
}

// addCornellWalls adds the five walls and a ceiling light of the given half extents around the
// center of the ceiling. The light faces down and is registered for importance sampling.
// Returns the handle of the white wall material.
func addCornellWalls(b *Builder, lightHalfX, lightHalfZ float64, emission core.Vec3) int {
	red := b.Material(material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05)))
	white := b.Material(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	green := b.Material(material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15)))
	light := b.Material(material.NewLight(emission))

	b.Add(
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // right
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),         // left
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // back
	)

	center := boxSize / 2
	b.AddLight(geometry.NewFlipFace(geometry.NewXZRect(
		center-lightHalfX, center+lightHalfX,
		center-lightHalfZ, center+lightHalfZ,
		boxSize-1, light,
	)))
	return white
}

// NewCornellScene creates the classic Cornell box with a rotated block and a glass sphere.
// Both the ceiling light and the glass sphere are sampled directly.
func NewCornellScene(opts Options) (*Scene, error) {
	b := NewBuilder()
	white := addCornellWalls(b, 65, 52.5, core.NewVec3(15, 15, 15))
	glass := b.Material(material.NewDielectric(1.5))

	block := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	b.Add(geometry.NewTranslated(
		geometry.NewRotated(block, core.NewVec3(0, 1, 0), 15),
		core.NewVec3(265, 0, 295),
	))

	b.AddLight(geometry.NewSphere(core.NewVec3(190, 90, 190), 90, glass))

	return b.Build("cornell", cornellCamera(opts), core.Vec3{}, opts.random()), nil
}

// NewCornellSmokeScene creates a Cornell box whose two blocks are participating media
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	b := NewBuilder()
	white := addCornellWalls(b, 165, 152.5, core.NewVec3(7, 7, 7))
	darkSmoke := b.Material(material.NewIsotropic(core.NewVec3(0, 0, 0)))
	lightSmoke := b.Material(material.NewIsotropic(core.NewVec3(1, 1, 1)))

	tall := geometry.NewTranslated(
		geometry.NewRotated(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), core.NewVec3(0, 1, 0), 15),
		core.NewVec3(265, 0, 295),
	)
	short := geometry.NewTranslated(
		geometry.NewRotated(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), core.NewVec3(0, 1, 0), -18),
		core.NewVec3(130, 0, 65),
	)

	b.Add(
		geometry.NewConstantMedium(tall, 0.01, darkSmoke),
		geometry.NewConstantMedium(short, 0.01, lightSmoke),
	)

	return b.Build("cornell-smoke", cornellCamera(opts), core.Vec3{}, opts.random()), nil
}

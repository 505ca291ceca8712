package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewEarthScene wraps an image texture around a sphere lit by the sky and a distant disc sun
func NewEarthScene(opts Options) (*Scene, error) {
	if opts.TexturePath == "" {
		return nil, fmt.Errorf("%w: earth scene needs an image file", ErrMissingAsset)
	}

	texture, err := loaders.LoadImageTexture(opts.TexturePath)
	if err != nil {
		return nil, fmt.Errorf("scene: earth: %w", err)
	}

	b := NewBuilder()
	surface := b.Material(material.NewTexturedLambertian(texture))
	b.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, surface))

	sunPosition := core.NewVec3(30, 20, 30)
	sun := b.Material(material.NewLight(core.NewVec3(12, 11, 10)))
	b.AddLight(geometry.NewDisc(sunPosition, sunPosition.Negate(), 4, sun))

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 12),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   opts.aspect(),
		FocusDistance: 10,
		Time0:         opts.Time0,
		Time1:         opts.Time1,
	})

	return b.Build("earth", camera, skyBackground, opts.random()), nil
}

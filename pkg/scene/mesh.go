package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// meshHeight is the height the imported model is scaled to inside the Cornell box
const meshHeight = 200.0

// NewMeshScene loads an OBJ model and places two instances of it in a Cornell box. Both instances
// share a single mesh BVH through translate and rotate wrappers.
func NewMeshScene(opts Options) (*Scene, error) {
	if opts.MeshPath == "" {
		return nil, fmt.Errorf("%w: mesh scene needs an OBJ file", ErrMissingAsset)
	}

	b := NewBuilder()
	addCornellWalls(b, 65, 52.5, core.NewVec3(15, 15, 15))
	gold := b.Material(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2))

	triangles, err := loaders.LoadOBJ(opts.MeshPath, gold, loaders.OBJOptions{})
	if err != nil {
		return nil, fmt.Errorf("scene: mesh: %w", err)
	}

	random := opts.random()
	mesh := geometry.NewMesh(fitToFloor(triangles, meshHeight), random)
	up := core.NewVec3(0, 1, 0)

	b.Add(
		geometry.NewTranslated(mesh, core.NewVec3(170, 0, 200)),
		geometry.NewTranslated(geometry.NewRotated(mesh, up, 150), core.NewVec3(385, 0, 350)),
	)
	logger.Infof("mesh scene: %d triangles instanced twice", mesh.TriangleCount())

	return b.Build("mesh", cornellCamera(opts), core.Vec3{}, random), nil
}

// fitToFloor uniformly scales triangles to the given height and moves them so their bounding box
// is centered on the origin in x and z and rests on y=0
func fitToFloor(triangles []*geometry.Triangle, height float64) []*geometry.Triangle {
	bounds := triangles[0].BoundingBox()
	for _, tri := range triangles[1:] {
		bounds = bounds.Union(tri.BoundingBox())
	}

	scale := 1.0
	if size := bounds.Y.Size(); size > 0 {
		scale = height / size
	}
	center := bounds.Center()
	anchor := core.NewVec3(center.X, bounds.Y.Min, center.Z)

	place := func(v core.Vec3) core.Vec3 {
		return v.Subtract(anchor).Multiply(scale)
	}

	fitted := make([]*geometry.Triangle, len(triangles))
	for i, tri := range triangles {
		v0, v1, v2 := place(tri.V0), place(tri.V1), place(tri.V2)
		if tri.Normals != nil {
			n := tri.Normals
			fitted[i] = geometry.NewSmoothTriangle(v0, v1, v2, n[0], n[1], n[2], tri.Material)
		} else {
			fitted[i] = geometry.NewTriangle(v0, v1, v2, tri.Material)
		}
	}
	return fitted
}

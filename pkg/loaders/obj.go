// Package loaders imports external assets: Wavefront OBJ meshes and image textures.
package loaders

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/udhos/gwob"
)

var logger = log.New("loaders")

// ErrNoTriangles is returned when a mesh file parses but contains no faces
var ErrNoTriangles = errors.New("loaders: mesh contains no triangles")

// OBJOptions controls how an OBJ file is turned into triangles
type OBJOptions struct {
	Scale         float64   // Uniform scale applied to positions; 1 when zero
	Offset        core.Vec3 // Added to positions after scaling
	IgnoreNormals bool      // Use flat face normals even when the file has vertex normals
}

// LoadOBJ reads a Wavefront OBJ file into triangles sharing one material handle.
// Faces are triangulated by the parser; vertex normals are used when present.
func LoadOBJ(path string, material int, options OBJOptions) ([]*geometry.Triangle, error) {
	parserOptions := gwob.ObjParserOptions{
		LogStats:      true,
		Logger:        func(msg string) { logger.Debug(msg) },
		IgnoreNormals: options.IgnoreNormals,
	}

	obj, err := gwob.NewObjFromFile(path, &parserOptions)
	if err != nil {
		return nil, fmt.Errorf("loaders: parsing %s: %w", path, err)
	}

	scale := options.Scale
	if scale == 0 {
		scale = 1
	}

	// Coordinates are float32 interleaved; strides are in bytes
	stride := obj.StrideSize / 4
	positionOffset := obj.StrideOffsetPosition / 4
	normalOffset := obj.StrideOffsetNormal / 4
	withNormals := obj.NormCoordFound && !options.IgnoreNormals

	vertex := func(index, offset int) core.Vec3 {
		base := stride*index + offset
		return core.NewVec3(obj.Coord64(base), obj.Coord64(base+1), obj.Coord64(base+2))
	}

	var triangles []*geometry.Triangle
	for _, group := range obj.Groups {
		for f := 0; f < group.IndexCount/3; f++ {
			first := group.IndexBegin + 3*f
			indices := obj.Indices[first : first+3]

			var p [3]core.Vec3
			for i, index := range indices {
				p[i] = vertex(index, positionOffset).Multiply(scale).Add(options.Offset)
			}

			if !withNormals {
				triangles = append(triangles, geometry.NewTriangle(p[0], p[1], p[2], material))
				continue
			}

			var n [3]core.Vec3
			for i, index := range indices {
				n[i] = vertex(index, normalOffset)
			}
			if n[0].LengthSquared() == 0 || n[1].LengthSquared() == 0 || n[2].LengthSquared() == 0 {
				triangles = append(triangles, geometry.NewTriangle(p[0], p[1], p[2], material))
				continue
			}
			triangles = append(triangles, geometry.NewSmoothTriangle(p[0], p[1], p[2], n[0], n[1], n[2], material))
		}
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTriangles, path)
	}

	logger.Infof("loaded %d triangles from %s (%d groups, normals=%v)", len(triangles), path, len(obj.Groups), withNormals)
	return triangles, nil
}

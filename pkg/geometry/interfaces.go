package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// unsampled provides the importance-sampling methods for entities that are never used as light targets
type unsampled struct{}

// PdfValue always returns zero
func (unsampled) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return 0
}

// Random returns a fixed direction
func (unsampled) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// Compile-time checks that every entity satisfies core.Hittable
var (
	_ core.Hittable = (*Sphere)(nil)
	_ core.Hittable = (*MovingSphere)(nil)
	_ core.Hittable = (*Triangle)(nil)
	_ core.Hittable = (*Quad)(nil)
	_ core.Hittable = (*Disc)(nil)
	_ core.Hittable = (*Rect)(nil)
	_ core.Hittable = (*Box)(nil)
	_ core.Hittable = (*Mesh)(nil)
	_ core.Hittable = (*List)(nil)
	_ core.Hittable = (*BVHNode)(nil)
	_ core.Hittable = (*Translated)(nil)
	_ core.Hittable = (*Rotated)(nil)
	_ core.Hittable = (*FlipFace)(nil)
	_ core.Hittable = (*ConstantMedium)(nil)
)

package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// FlipFace inverts the front/back classification of a wrapped entity
type FlipFace struct {
	Object core.Hittable
}

// NewFlipFace wraps object with its faces swapped
func NewFlipFace(object core.Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit forwards to the child and inverts the front-face flag
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	hit, ok := f.Object.Hit(ray, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox returns the child's box
func (f *FlipFace) BoundingBox() core.AABB {
	return f.Object.BoundingBox()
}

// PdfValue forwards to the child
func (f *FlipFace) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return f.Object.PdfValue(origin, direction, random)
}

// Random forwards to the child
func (f *FlipFace) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return f.Object.Random(origin, random)
}

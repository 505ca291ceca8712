package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Translated shifts a wrapped entity by Offset
type Translated struct {
	Object core.Hittable
	Offset core.Vec3
}

// NewTranslated wraps object so that it appears moved by offset
func NewTranslated(object core.Hittable, offset core.Vec3) *Translated {
	return &Translated{Object: object, Offset: offset}
}

// Hit moves the ray into the local frame, tests the child and moves the hit point back
func (tr *Translated) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	local := ray
	local.Origin = ray.Origin.Subtract(tr.Offset)

	hit, ok := tr.Object.Hit(local, tMin, tMax, random)
	if !ok {
		return nil, false
	}

	// Translation leaves directions, and therefore the normal and face side, unchanged
	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the child's box shifted by the offset
func (tr *Translated) BoundingBox() core.AABB {
	return tr.Object.BoundingBox().Translate(tr.Offset)
}

// PdfValue forwards with the origin moved into the local frame
func (tr *Translated) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return tr.Object.PdfValue(origin.Subtract(tr.Offset), direction, random)
}

// Random forwards with the origin moved into the local frame
func (tr *Translated) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return tr.Object.Random(origin.Subtract(tr.Offset), random)
}

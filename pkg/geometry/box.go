package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Box is an axis-aligned box built from six rectangles
type Box struct {
	Min, Max core.Vec3
	sides    *List
}

// NewBox creates a box spanning two corner points
func NewBox(p0, p1 core.Vec3, material int) *Box {
	lo, hi := p0.Min(p1), p0.Max(p1)

	sides := NewList(
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, hi.Z, material),
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, lo.Z, material),
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, hi.Y, material),
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, lo.Y, material),
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, hi.X, material),
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, lo.X, material),
	)

	return &Box{Min: lo, Max: hi, sides: sides}
}

// Hit returns the nearest hit among the six sides
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, random)
}

// BoundingBox returns the box extent
func (b *Box) BoundingBox() core.AABB {
	return core.NewAABB(b.Min, b.Max)
}

// PdfValue averages the densities of the six sides
func (b *Box) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return b.sides.PdfValue(origin, direction, random)
}

// Random samples a direction toward a uniformly chosen side
func (b *Box) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return b.sides.Random(origin, random)
}

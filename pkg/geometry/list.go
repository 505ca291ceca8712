package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// List is an unordered aggregate of entities
type List struct {
	Objects []core.Hittable
}

// NewList creates a list from the given entities
func NewList(objects ...core.Hittable) *List {
	return &List{Objects: objects}
}

// Add appends an entity to the list
func (l *List) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of entities in the list
func (l *List) Len() int {
	return len(l.Objects)
}

// Hit returns the nearest hit over all members
func (l *List) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar, random); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes
func (l *List) BoundingBox() core.AABB {
	if len(l.Objects) == 0 {
		return core.AABB{}
	}
	box := l.Objects[0].BoundingBox()
	for _, object := range l.Objects[1:] {
		box = box.Union(object.BoundingBox())
	}
	return box
}

// PdfValue is the equal-weight average of the member densities
func (l *List) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	if len(l.Objects) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		sum += weight * object.PdfValue(origin, direction, random)
	}
	return sum
}

// Random samples a direction from a uniformly chosen member. Panics on an empty list.
func (l *List) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if len(l.Objects) == 0 {
		panic("geometry: Random called on an empty list")
	}
	return l.Objects[random.Intn(len(l.Objects))].Random(origin, random)
}

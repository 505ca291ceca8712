package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ConstantMedium turns a closed boundary entity into a homogeneous participating medium
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction int     // Material handle used for scatter events inside the medium
	negInvDensity float64 // -1/density
}

// NewConstantMedium creates a medium of the given density inside boundary
func NewConstantMedium(boundary core.Hittable, density float64, phaseFunction int) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phaseFunction,
		negInvDensity: -1 / density,
	}
}

// Hit finds the boundary segment crossed by the ray and samples an exponential free-flight
// distance within it. The reported normal and face side are arbitrary.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), random)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+0.0001, math.Inf(1), random)
	if !ok {
		return nil, false
	}

	t1, t2 := max(entry.T, tMin), min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	t1 = max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(random.Float64())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		Material:  m.PhaseFunction,
		FrontFace: true,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}

// PdfValue forwards to the boundary
func (m *ConstantMedium) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return m.Boundary.PdfValue(origin, direction, random)
}

// Random forwards to the boundary
func (m *ConstantMedium) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return m.Boundary.Random(origin, random)
}

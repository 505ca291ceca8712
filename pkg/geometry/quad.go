package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3 // One corner of the quad
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Normal   core.Vec3 // Unit normal, U × V
	Material int
	D        float64   // Plane equation constant: normal · p = D
	W        core.Vec3 // n / (n · n) for planar coordinates
	Area     float64
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material int) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        n.Divide(n.Dot(n)),
		Area:     n.Length(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Parallel rays never hit
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	// Planar coordinates of the hit point relative to the edges
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))
	unit := core.Interval{Min: 0, Max: 1}
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
		U:        alpha,
		V:        beta,
	}
	hit.SetFaceNormal(ray, q.Normal)
	return hit, true
}

// BoundingBox returns the bounding box of the four corners
func (q *Quad) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
}

// PdfValue converts the area density of the quad to a solid-angle density seen from origin
func (q *Quad) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	hit, ok := q.Hit(core.NewRay(origin, direction, 0, nil), 0.001, math.Inf(1), random)
	if !ok {
		return 0
	}
	return areaToSolidAngle(hit.T, direction, q.Normal, q.Area)
}

// Random returns the vector from origin to a uniformly sampled point on the quad
func (q *Quad) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	p := q.Corner.Add(q.U.Multiply(random.Float64())).Add(q.V.Multiply(random.Float64()))
	return p.Subtract(origin)
}

// areaToSolidAngle returns dist² / (|cos θ| · area) for a hit at parameter t along direction
func areaToSolidAngle(t float64, direction, normal core.Vec3, area float64) float64 {
	length := direction.Length()
	distanceSquared := t * t * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(normal) / length)
	return distanceSquared / (cosine * area)
}

package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Disc represents a flat circular surface
type Disc struct {
	Center   core.Vec3
	Normal   core.Vec3 // Unit normal
	Radius   float64
	Material int
	Right    core.Vec3 // In-plane axis where u = 0
	Up       core.Vec3 // In-plane axis perpendicular to Right
	bbox     core.AABB
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64, material int) *Disc {
	basis := core.NewONB(normal)

	// Extent along each axis is radius·sqrt(1 - n_i²)
	n := basis.W
	extent := core.NewVec3(
		radius*math.Sqrt(math.Max(0, 1-n.X*n.X)),
		radius*math.Sqrt(math.Max(0, 1-n.Y*n.Y)),
		radius*math.Sqrt(math.Max(0, 1-n.Z*n.Z)),
	)

	return &Disc{
		Center:   center,
		Normal:   n,
		Radius:   radius,
		Material: material,
		Right:    basis.U,
		Up:       basis.V,
		bbox:     core.NewAABB(center.Subtract(extent), center.Add(extent)),
	}
}

// Hit intersects the disc's plane and accepts points within the radius
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	local := hitPoint.Subtract(d.Center)
	if local.LengthSquared() > d.Radius*d.Radius {
		return nil, false
	}

	// Polar texture coordinates: u around the rim, v outward from the center
	phi := math.Atan2(local.Dot(d.Up), local.Dot(d.Right))
	hit := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: d.Material,
		U:        (phi + math.Pi) / (2 * math.Pi),
		V:        local.Length() / d.Radius,
	}
	hit.SetFaceNormal(ray, d.Normal)
	return hit, true
}

// BoundingBox returns the tight bounding box of the disc
func (d *Disc) BoundingBox() core.AABB {
	return d.bbox
}

// PdfValue converts the uniform area density to a solid-angle density seen from origin
func (d *Disc) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	hit, ok := d.Hit(core.NewRay(origin, direction, 0, nil), 0.001, math.Inf(1), random)
	if !ok {
		return 0
	}
	return areaToSolidAngle(hit.T, direction, d.Normal, math.Pi*d.Radius*d.Radius)
}

// Random returns the vector from origin to a uniformly sampled point on the disc
func (d *Disc) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	r := d.Radius * math.Sqrt(random.Float64())
	theta := 2 * math.Pi * random.Float64()
	p := d.Center.Add(d.Right.Multiply(r * math.Cos(theta))).Add(d.Up.Multiply(r * math.Sin(theta)))
	return p.Subtract(origin)
}

package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape. A negative radius is valid and produces an
// inward-facing shell (the outward normal points toward the center).
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material int) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	return hitSphere(ray, s.Center, s.Radius, s.Material, tMin, tMax)
}

// hitSphere solves the ray/sphere quadratic and fills a hit record for the nearest root in (tMin, tMax)
func hitSphere(ray core.Ray, center core.Vec3, radius float64, material int, tMin, tMax float64) (*core.HitRecord, bool) {
	// Quadratic equation coefficients: at² + 2bt + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first
	hitRange := core.Interval{Min: tMin, Max: tMax}
	root := (-halfB - sqrtD) / a
	if !hitRange.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !hitRange.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	u, v := sphereUV(point.Subtract(center).Normalize())
	hit := &core.HitRecord{
		T:        root,
		Point:    point,
		Material: material,
		U:        u,
		V:        v,
	}

	// Dividing by the signed radius flips the normal for inward shells
	hit.SetFaceNormal(ray, point.Subtract(center).Divide(radius))
	return hit, true
}

// sphereUV maps a unit vector from the center to spherical texture coordinates
func sphereUV(p core.Vec3) (float64, float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(max(-1, min(1, p.Y)))
	u := 1 - (phi+math.Pi)/(2*math.Pi)
	v := (theta + math.Pi/2) / math.Pi
	return u, v
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}

// PdfValue returns the solid-angle density of sampling direction from origin toward the sphere
func (s *Sphere) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	distanceSquared := s.Center.Subtract(origin).LengthSquared()

	// From inside, every direction reaches the surface and Random samples the whole sphere
	if distanceSquared <= s.Radius*s.Radius {
		return 1 / (4 * math.Pi)
	}

	ray := core.NewRay(origin, direction, 0, nil)
	if _, ok := s.Hit(ray, 0.001, math.Inf(1), random); !ok {
		return 0
	}

	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distanceSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random samples a direction from origin toward the visible cone of the sphere, or a uniform
// direction when origin is inside it
func (s *Sphere) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	direction := s.Center.Subtract(origin)
	if direction.LengthSquared() <= s.Radius*s.Radius {
		return core.RandomUnitVector(random)
	}
	uvw := core.NewONB(direction)
	return uvw.Local(core.RandomToSphere(s.Radius, direction.LengthSquared(), random))
}

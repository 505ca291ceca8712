package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// rectEpsilon pads the bounding box of a rectangle along its fixed axis
const rectEpsilon = 0.001

// Plane selects the axis-aligned orientation of a Rect
type Plane int

const (
	PlaneXY Plane = iota // fixed z
	PlaneXZ              // fixed y
	PlaneYZ              // fixed x
)

// axes returns the two spanning axes and the fixed axis of the plane
func (p Plane) axes() (a, b, fixed int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// Rect is an axis-aligned rectangle spanning [A0, A1] × [B0, B1] at K on the fixed axis.
// Its outward normal points along the positive fixed axis.
type Rect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material int
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, material int) *Rect {
	return &Rect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material}
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, material int) *Rect {
	return &Rect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material}
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, material int) *Rect {
	return &Rect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material}
}

// normal returns the outward normal along the fixed axis
func (r *Rect) normal() core.Vec3 {
	switch r.Plane {
	case PlaneXY:
		return core.NewVec3(0, 0, 1)
	case PlaneXZ:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(1, 0, 0)
	}
}

// point builds a world-space point from plane coordinates
func (r *Rect) point(a, b float64) core.Vec3 {
	switch r.Plane {
	case PlaneXY:
		return core.NewVec3(a, b, r.K)
	case PlaneXZ:
		return core.NewVec3(a, r.K, b)
	default:
		return core.NewVec3(r.K, a, b)
	}
}

// Hit solves the plane intersection on the fixed axis, then bounds-tests the other two
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	axisA, axisB, fixed := r.Plane.axes()

	t := (r.K - ray.Origin.Axis(fixed)) / ray.Direction.Axis(fixed)
	if math.IsNaN(t) || t < tMin || t > tMax {
		return nil, false
	}

	a := ray.Origin.Axis(axisA) + t*ray.Direction.Axis(axisA)
	b := ray.Origin.Axis(axisB) + t*ray.Direction.Axis(axisB)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: r.Material,
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
	}
	hit.SetFaceNormal(ray, r.normal())
	return hit, true
}

// BoundingBox spans the rectangle with an epsilon pad on the fixed axis
func (r *Rect) BoundingBox() core.AABB {
	return core.NewAABB(
		r.point(r.A0, r.B0).Subtract(r.normal().Multiply(rectEpsilon)),
		r.point(r.A1, r.B1).Add(r.normal().Multiply(rectEpsilon)),
	)
}

// Area returns the surface area of the rectangle
func (r *Rect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PdfValue converts the area density of the rectangle to a solid-angle density seen from origin
func (r *Rect) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction, 0, nil), 0.001, math.Inf(1), random)
	if !ok {
		return 0
	}
	return areaToSolidAngle(hit.T, direction, r.normal(), r.Area())
}

// Random returns the vector from origin to a uniformly sampled point on the rectangle
func (r *Rect) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	p := r.point(
		core.RandomInRange(r.A0, r.A1, random),
		core.RandomInRange(r.B0, r.B1, random),
	)
	return p.Subtract(origin)
}

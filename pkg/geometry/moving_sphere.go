package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0 to Center1 at Time1
type MovingSphere struct {
	unsampled
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         int
}

// NewMovingSphere creates a sphere that moves during the shutter interval
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material int) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// Center returns the sphere center at the given time
func (s *MovingSphere) Center(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	fraction := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(fraction))
}

// Hit tests the ray against the sphere positioned at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	return hitSphere(ray, s.Center(ray.Time), s.Radius, s.Material, tMin, tMax)
}

// BoundingBox encloses the sphere at both ends of its motion
func (s *MovingSphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	start := core.NewAABB(s.Center(s.Time0).Subtract(radius), s.Center(s.Time0).Add(radius))
	end := core.NewAABB(s.Center(s.Time1).Subtract(radius), s.Center(s.Time1).Add(radius))
	return start.Union(end)
}

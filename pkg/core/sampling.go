package core

import (
	"math"
	"math/rand"
)

// RandomInRange returns a uniform value in [lo, hi)
func RandomInRange(lo, hi float64, random *rand.Rand) float64 {
	return lo + (hi-lo)*random.Float64()
}

// RandomCosineDirection returns a cosine-weighted direction on the +Z hemisphere in local coordinates
func RandomCosineDirection(random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()

	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	z := math.Sqrt(1 - r2)
	return NewVec3(x, y, z)
}

// RandomUnitVector returns a direction uniformly distributed over the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	z := 1.0 - 2.0*random.Float64()
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * random.Float64()
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomInUnitDisk returns a point uniformly distributed inside the unit disk on the XY plane
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(RandomInRange(-1, 1, random), RandomInRange(-1, 1, random), 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomToSphere samples a direction toward a sphere of the given radius at squared distance
// distanceSquared, uniformly over the cone it subtends. The result is in local coordinates
// around +Z.
func RandomToSphere(radius, distanceSquared float64, random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	cosThetaMax := math.Sqrt(math.Max(0, 1-radius*radius/distanceSquared))
	z := 1 + r2*(cosThetaMax-1)

	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(math.Max(0, 1-z*z))
	return NewVec3(math.Cos(phi)*sinTheta, math.Sin(phi)*sinTheta, z)
}

package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a reflective material with optional fuzzy reflections
type Metal struct {
	nonEmitting
	noScatteringPDF
	Albedo core.Vec3
	Fuzz   float64 // 0 is a perfect mirror, 1 is very rough
}

// NewMetal creates a new metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: max(0, min(1, fuzz))}
}

// Scatter reflects the ray about the normal and perturbs it by Fuzz
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	direction := reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
	scattered := rayIn.Spawn(hit.Point, direction)

	return ScatterRecord{
		SpecularRay: &scattered,
		Attenuation: m.Albedo,
	}, true
}

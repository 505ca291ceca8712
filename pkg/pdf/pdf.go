// Package pdf provides directional sampling distributions used for importance sampling.
package pdf

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Cosine samples directions proportional to cos θ about a normal
type Cosine struct {
	uvw core.ONB
}

// NewCosine creates a cosine-weighted hemisphere distribution about w
func NewCosine(w core.Vec3) *Cosine {
	return &Cosine{uvw: core.NewONB(w)}
}

// Value returns cos θ / π, or 0 below the horizon
func (c *Cosine) Value(direction core.Vec3, random *rand.Rand) float64 {
	cosine := direction.Normalize().Dot(c.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate returns a cosine-weighted unit direction
func (c *Cosine) Generate(random *rand.Rand) core.Vec3 {
	return c.uvw.Local(core.RandomCosineDirection(random))
}

// Uniform samples directions uniformly over the full sphere
type Uniform struct{}

// Value returns 1/(4π) for every direction
func (Uniform) Value(direction core.Vec3, random *rand.Rand) float64 {
	return 1 / (4 * math.Pi)
}

// Generate returns a uniform unit direction
func (Uniform) Generate(random *rand.Rand) core.Vec3 {
	return core.RandomUnitVector(random)
}

// Hittable samples directions from Origin toward an entity, typically the light list
type Hittable struct {
	Target core.Hittable
	Origin core.Vec3
}

// NewHittable creates a distribution toward target as seen from origin
func NewHittable(target core.Hittable, origin core.Vec3) *Hittable {
	return &Hittable{Target: target, Origin: origin}
}

// Value returns the target's solid-angle density for direction
func (h *Hittable) Value(direction core.Vec3, random *rand.Rand) float64 {
	return h.Target.PdfValue(h.Origin, direction, random)
}

// Generate samples a direction toward the target
func (h *Hittable) Generate(random *rand.Rand) core.Vec3 {
	return h.Target.Random(h.Origin, random)
}

// Mixture combines two distributions. Weight is the probability of choosing First;
// the same weight is used for evaluation so density and sampling stay consistent.
type Mixture struct {
	First, Second core.PDF
	Weight        float64
}

// NewMixture creates an even 50/50 mixture
func NewMixture(first, second core.PDF) *Mixture {
	return &Mixture{First: first, Second: second, Weight: 0.5}
}

// Value returns the weighted average of both densities
func (m *Mixture) Value(direction core.Vec3, random *rand.Rand) float64 {
	return m.Weight*m.First.Value(direction, random) + (1-m.Weight)*m.Second.Value(direction, random)
}

// Generate samples First with probability Weight, otherwise Second
func (m *Mixture) Generate(random *rand.Rand) core.Vec3 {
	if random.Float64() < m.Weight {
		return m.First.Generate(random)
	}
	return m.Second.Generate(random)
}

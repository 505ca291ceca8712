package integrator

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Sample returns one finalized radiance estimate for a camera ray, with NaN channels scrubbed to zero
	Sample(ray core.Ray, random *rand.Rand) core.Vec3
}

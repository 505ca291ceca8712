package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Material describes how light interacts with a surface or medium
type Material interface {
	// Scatter returns the outgoing interaction, or false when the path terminates here
	Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (ScatterRecord, bool)

	// ScatteringPDF evaluates the material's own density for a stochastic scatter direction
	ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64

	// Emitted returns the radiance emitted at the hit
	Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3
}

// ScatterRecord holds either an explicit specular ray or a stochastic (PDF, attenuation) pair
type ScatterRecord struct {
	SpecularRay *core.Ray // Non-nil for deterministic (specular) events
	Attenuation core.Vec3
	PDF         core.PDF // Set for stochastic events
}

// IsSpecular returns true if the record carries an explicit ray
func (s ScatterRecord) IsSpecular() bool {
	return s.SpecularRay != nil
}

// nonEmitting provides a zero Emitted for materials that never emit
type nonEmitting struct{}

// Emitted always returns black
func (nonEmitting) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// noScatteringPDF provides a zero ScatteringPDF for materials without a stochastic branch
type noScatteringPDF struct{}

// ScatteringPDF always returns zero
func (noScatteringPDF) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Isotropic is the phase function of a participating medium: it scatters uniformly in all directions
type Isotropic struct {
	nonEmitting
	Albedo ColorSource
}

// NewIsotropic creates an isotropic phase material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// Scatter always scatters stochastically with a uniform sphere pdf
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Albedo.Evaluate(hit.U, hit.V, hit.Point),
		PDF:         pdf.Uniform{},
	}, true
}

// ScatteringPDF is the constant 1/(4π)
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}

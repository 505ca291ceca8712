package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Light is a one-sided emitter. It never scatters; the back face is dark unless the
// entity is wrapped in a FlipFace.
type Light struct {
	noScatteringPDF
	Emission ColorSource
}

// NewLight creates an emitter with a solid color
func NewLight(emission core.Vec3) *Light {
	return &Light{Emission: NewSolidColor(emission)}
}

// Scatter never scatters
func (l *Light) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the emission on the front face and black on the back face
func (l *Light) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return l.Emission.Evaluate(hit.U, hit.V, hit.Point)
}

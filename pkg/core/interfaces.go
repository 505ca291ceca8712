package core

import "math/rand"

// HitRecord describes a ray/surface intersection
type HitRecord struct {
	T         float64 // Ray parameter of the hit
	Point     Vec3    // World-space hit point
	Normal    Vec3    // Shading normal, always facing against the incoming ray
	Material  int     // Handle into the material table
	U, V      float64 // Surface coordinates for texture lookup
	FrontFace bool    // True when the ray struck the outward-facing side
}

// SetFaceNormal orients the normal against the ray and records which side was hit.
// outwardNormal does not need to be unit length; Normal stores it unchanged apart from sign.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is implemented by every entity that can be intersected by a ray.
// PdfValue and Random expose the entity as an importance-sampling target; entities that
// cannot be sampled return 0 and an arbitrary fixed direction.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64, random *rand.Rand) (*HitRecord, bool)
	BoundingBox() AABB
	PdfValue(origin, direction Vec3, random *rand.Rand) float64
	Random(origin Vec3, random *rand.Rand) Vec3
}

// PDF is a directional sampling distribution with matching density evaluation
type PDF interface {
	Value(direction Vec3, random *rand.Rand) float64
	Generate(random *rand.Rand) Vec3
}

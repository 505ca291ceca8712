package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Rotated rotates a wrapped entity about an arbitrary axis through the origin
type Rotated struct {
	Object   core.Hittable
	rotation core.Quaternion // local to world
	inverse  core.Quaternion // world to local
	box      core.AABB
}

// NewRotated wraps object rotated by degrees about axis
func NewRotated(object core.Hittable, axis core.Vec3, degrees float64) *Rotated {
	rotation := core.NewRotation(axis, degrees)

	// Re-bound the rotated corners of the child's box
	corners := object.BoundingBox().Corners()
	for i, corner := range corners {
		corners[i] = rotation.Rotate(corner)
	}

	return &Rotated{
		Object:   object,
		rotation: rotation,
		inverse:  rotation.Inverse(),
		box:      core.NewAABBFromPoints(corners[:]...),
	}
}

// Hit rotates the ray into the local frame, tests the child and rotates the result back
func (r *Rotated) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	local := ray.Spawn(r.inverse.Rotate(ray.Origin), r.inverse.Rotate(ray.Direction))

	hit, ok := r.Object.Hit(local, tMin, tMax, random)
	if !ok {
		return nil, false
	}

	// Rotation preserves the ray parameter and the side that was hit
	hit.Point = r.rotation.Rotate(hit.Point)
	hit.Normal = r.rotation.Rotate(hit.Normal)
	return hit, true
}

// BoundingBox returns the axis-aligned box around the rotated child box
func (r *Rotated) BoundingBox() core.AABB {
	return r.box
}

// PdfValue evaluates the child's density with origin and direction in the local frame
func (r *Rotated) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return r.Object.PdfValue(r.inverse.Rotate(origin), r.inverse.Rotate(direction), random)
}

// Random samples the child in the local frame and rotates the direction back to world space
func (r *Rotated) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return r.rotation.Rotate(r.Object.Random(r.inverse.Rotate(origin), random))
}

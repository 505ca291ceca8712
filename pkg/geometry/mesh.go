package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Mesh is a triangle soup wrapped in its own BVH and exposed as one opaque entity.
// The hierarchy is held by pointer so several transformed instances can share it.
type Mesh struct {
	unsampled
	bvh       *BVHNode
	box       core.AABB
	triangles int
}

// NewMesh builds a mesh from triangles. Panics if triangles is empty.
func NewMesh(triangles []*Triangle, random *rand.Rand) *Mesh {
	list := &List{Objects: make([]core.Hittable, 0, len(triangles))}
	for _, tri := range triangles {
		list.Add(tri)
	}

	return &Mesh{
		bvh:       NewBVH(list, random),
		box:       list.BoundingBox(),
		triangles: len(triangles),
	}
}

// Hit forwards to the private hierarchy
func (m *Mesh) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	return m.bvh.Hit(ray, tMin, tMax, random)
}

// BoundingBox returns the union of all triangle boxes
func (m *Mesh) BoundingBox() core.AABB {
	return m.box
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return m.triangles
}

package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// triangleEpsilon rejects rays nearly parallel to the triangle plane
const triangleEpsilon = 1e-7

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	unsampled
	V0, V1, V2 core.Vec3     // The three vertices, counter-clockwise
	Normals    *[3]core.Vec3 // Optional per-vertex normals
	Material   int
	bbox       core.AABB
}

// NewTriangle creates a flat-shaded triangle
func NewTriangle(v0, v1, v2 core.Vec3, material int) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		bbox:     core.NewAABBFromPoints(v0, v1, v2),
	}
}

// NewSmoothTriangle creates a triangle whose shading normal is interpolated from per-vertex normals
func NewSmoothTriangle(v0, v1, v2, n0, n1, n2 core.Vec3, material int) *Triangle {
	t := NewTriangle(v0, v1, v2, material)
	t.Normals = &[3]core.Vec3{n0, n1, n2}
	return t
}

// Hit tests if a ray intersects the triangle using the Möller–Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < triangleEpsilon {
		return nil, false
	}
	invDet := 1.0 / det

	// Barycentric coordinates of the hit
	tvec := ray.Origin.Subtract(t.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}

	root := edge2.Dot(qvec) * invDet
	if root < tMin || root > tMax {
		return nil, false
	}

	var normal core.Vec3
	if t.Normals != nil {
		normal = t.Normals[0].Multiply(1 - u - v).
			Add(t.Normals[1].Multiply(u)).
			Add(t.Normals[2].Multiply(v)).
			Normalize()
	} else {
		normal = edge2.Cross(edge1).Normalize()
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: t.Material,
		U:        u,
		V:        v,
	}
	hit.SetFaceNormal(ray, normal)
	return hit, true
}

// BoundingBox returns the cached bounding box of the three vertices
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

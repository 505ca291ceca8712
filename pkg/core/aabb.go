package core

// AABBDelta is the minimum extent of a bounding box along any axis
const AABBDelta = 0.0001

// AABB represents an axis-aligned bounding box as three per-axis intervals
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates a bounding box spanning two extremal points given in any order
func NewAABB(a, b Vec3) AABB {
	return NewAABBFromIntervals(
		NewInterval(a.X, b.X),
		NewInterval(a.Y, b.Y),
		NewInterval(a.Z, b.Z),
	)
}

// NewAABBFromIntervals creates a bounding box from per-axis intervals, padding degenerate axes
func NewAABBFromIntervals(x, y, z Interval) AABB {
	box := AABB{X: x, Y: y, Z: z}
	box.padToMinimums()
	return box
}

// NewAABBFromPoints creates the smallest bounding box containing all points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return NewAABB(lo, hi)
}

// padToMinimums expands any axis thinner than AABBDelta to exactly AABBDelta around its center
func (box *AABB) padToMinimums() {
	if box.X.Size() < AABBDelta {
		box.X = box.X.Expand(AABBDelta - box.X.Size())
	}
	if box.Y.Size() < AABBDelta {
		box.Y = box.Y.Expand(AABBDelta - box.Y.Size())
	}
	if box.Z.Size() < AABBDelta {
		box.Z = box.Z.Expand(AABBDelta - box.Z.Size())
	}
}

// Axis returns the interval of axis 0 (x), 1 (y) or 2 (z)
func (box AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return box.X
	case 1:
		return box.Y
	default:
		return box.Z
	}
}

// Min returns the minimum corner
func (box AABB) Min() Vec3 {
	return NewVec3(box.X.Min, box.Y.Min, box.Z.Min)
}

// Max returns the maximum corner
func (box AABB) Max() Vec3 {
	return NewVec3(box.X.Max, box.Y.Max, box.Z.Max)
}

// Hit tests whether a ray intersects the box within [tMin, tMax] using the slab method.
// Zero direction components produce signed infinities which order correctly under IEEE rules;
// NaN slab bounds (ray origin exactly on a slab plane) are ignored.
func (box AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		slab := box.Axis(axis)
		invD := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (slab.Min - origin) * invD
		t1 := (slab.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Union returns the smallest box containing both boxes
func (box AABB) Union(other AABB) AABB {
	return AABB{
		X: box.X.Union(other.X),
		Y: box.Y.Union(other.Y),
		Z: box.Z.Union(other.Z),
	}
}

// Translate returns the box shifted by offset
func (box AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: box.X.Shift(offset.X),
		Y: box.Y.Shift(offset.Y),
		Z: box.Z.Shift(offset.Z),
	}
}

// Corners returns the eight vertices of the box
func (box AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		x, y, z := box.X.Min, box.Y.Min, box.Z.Min
		if i&1 != 0 {
			x = box.X.Max
		}
		if i&2 != 0 {
			y = box.Y.Max
		}
		if i&4 != 0 {
			z = box.Z.Max
		}
		corners[i] = NewVec3(x, y, z)
	}
	return corners
}

// Center returns the center point of the box
func (box AABB) Center() Vec3 {
	return box.Min().Add(box.Max()).Multiply(0.5)
}

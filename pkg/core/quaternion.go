package core

import "math"

// Quaternion represents a rotation as a vector part V and scalar part W
type Quaternion struct {
	V Vec3
	W float64
}

// NewRotation creates a unit quaternion rotating by angle degrees about axis
func NewRotation(axis Vec3, degrees float64) Quaternion {
	halfAngle := degrees * math.Pi / 360.0
	sin, cos := math.Sincos(halfAngle)
	return Quaternion{V: axis.Normalize().Multiply(sin), W: cos}
}

// Inverse returns the opposite rotation of a unit quaternion
func (q Quaternion) Inverse() Quaternion {
	return Quaternion{V: q.V.Negate(), W: q.W}
}

// Rotate applies the rotation to a vector: v + 2w(q×v) + 2q×(q×v)
func (q Quaternion) Rotate(v Vec3) Vec3 {
	qv := q.V.Cross(v)
	return v.Add(qv.Multiply(2 * q.W)).Add(q.V.Cross(qv).Multiply(2))
}

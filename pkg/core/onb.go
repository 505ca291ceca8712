package core

import "math"

// ONB is an orthonormal basis whose W axis is aligned with a given direction
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis around w
func NewONB(w Vec3) ONB {
	unitW := w.Normalize()
	a := NewVec3(1, 0, 0)
	if math.Abs(unitW.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}
	v := unitW.Cross(a).Normalize()
	u := unitW.Cross(v)
	return ONB{U: u, V: v, W: unitW}
}

// Local transforms a vector expressed in basis coordinates into world space
func (b ONB) Local(a Vec3) Vec3 {
	return b.U.Multiply(a.X).Add(b.V.Multiply(a.Y)).Add(b.W.Multiply(a.Z))
}

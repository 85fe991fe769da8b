package ga

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Bitmasks of the three-dimensional basis blades used by the
// interop conversions.
const (
	be1  = 1
	be2  = 1 << 1
	be3  = 1 << 2
	be12 = be1 | be2
	be13 = be1 | be3
	be23 = be2 | be3
)

// FromR3 embeds v as a grade-1 multivector on the first three
// generators.
func FromR3(v r3.Vector) Multivector {
	return simplify(Multivector{
		{Scalar: v.X, Basis: be1},
		{Scalar: v.Y, Basis: be2},
		{Scalar: v.Z, Basis: be3},
	})
}

// R3 returns the first three grade-1 components of a.
func (a Multivector) R3() r3.Vector {
	return r3.Vector{X: a.At(be1), Y: a.At(be2), Z: a.At(be3)}
}

// Quat maps the even part of a three-dimensional multivector onto a
// Hamilton quaternion: (w, x, y, z) = (<a>0, -a_e23, a_e13, -a_e12).
// Under this map the geometric product of rotors agrees with
// quaternion multiplication.
func (a Multivector) Quat() quat.Number {
	return quat.Number{
		Real: a.At(0),
		Imag: -a.At(be23),
		Jmag: a.At(be13),
		Kmag: -a.At(be12),
	}
}

// FromQuat is the inverse of Quat, returning the even multivector
// w - z*e12 + y*e13 - x*e23.
func FromQuat(q quat.Number) Multivector {
	return simplify(Multivector{
		{Scalar: q.Real},
		{Scalar: -q.Kmag, Basis: be12},
		{Scalar: q.Jmag, Basis: be13},
		{Scalar: -q.Imag, Basis: be23},
	})
}

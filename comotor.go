package screw

import (
	"fmt"

	"zappem.net/pub/math/screw/ga"
)

// A comotor is a CoScrew repurposed by convention to carry a rigid
// motion: Direction holds a unit rotor R (an even multivector with
// R*~R == 1) and Moment holds the motion's translational moment. A
// comotor's intrinsic motion, read off after transport to the origin,
// maps a point x to
//
//	~R * x * R + 2 * ~R * M
//
// where M is the moment at the origin. Floating-point rounding leaves
// small components above grade 1 in the result; callers truncate them
// with Grade(1) rather than treating them as errors.

// NewComotor builds the comotor of a rotation by angle (radians) in
// the given unit plane about a rotation centre. The plane must be
// purely grade 2 and the centre purely grade 1.
func NewComotor(centre, plane ga.Multivector, angle float64) (CoScrew, error) {
	if !plane.Grade(2).Equals(plane) {
		return CoScrew{}, fmt.Errorf("%w: %v", ErrNotPlane, plane)
	}
	return NewCo(centre, ga.Rotor(angle, plane), nil)
}

// originMoment returns the comotor's moment transported to the
// origin, the point-free form used by composition and application.
func (c CoScrew) originMoment() ga.Multivector {
	return c.moment.Add(c.point.Wedge(c.dir))
}

// Compose combines two rigid motions: c applied first, then o. The
// resultant rotor is the geometric product of the two rotors, and the
// resultant moment carries the translation induced by applying o's
// rotor to c's moment. The combination is evaluated point-free at the
// origin and re-anchored at c's reference point, so it commutes with
// ChangePoint and is associative.
func (c CoScrew) Compose(o CoScrew) CoScrew {
	r := c.dir.Mul(o.dir)
	m := c.originMoment().Mul(o.dir).Add(c.dir.Mul(o.originMoment()))
	return CoScrew{point: c.point, dir: r, moment: transport(nil, c.point, r, m)}
}

// Transform applies a rigid motion, given as a rotor and a moment at
// the evaluation point, to the multivector x via the sandwich-product
// formula. The result is returned in full; project with Grade(1) to
// discard residual rounding noise above grade 1.
func Transform(rotor, moment, x ga.Multivector) ga.Multivector {
	rr := rotor.Rev()
	return rr.Mul(x).Mul(rotor).Add(rr.Mul(moment).Scale(2))
}

// Apply transforms the point x by the comotor's intrinsic motion and
// returns the grade-1 part of the result.
func (c CoScrew) Apply(x ga.Multivector) ga.Multivector {
	return Transform(c.dir, c.originMoment(), x).Grade(1)
}

// Package screw implements screw-theory algebra over the geometric
// algebra of the ga package. A screw bundles a direction and a moment
// multivector anchored at a reference point and represents a twist or
// a wrench; a co-screw is the dual object, representing momentum-like
// quantities. Co-screws double as comotors, carrying a rigid motion's
// rotor and translational moment, and composing comotors solves the
// forward kinematics of a chain of revolute joints (see the arm
// package).
//
// All values are immutable: every operation returns a new value and
// never mutates a receiver, so shared values need no locking.
package screw

import (
	"errors"
	"fmt"

	"zappem.net/pub/math/screw/ga"
)

// Err* are the errors exported by this package.
var (
	ErrNotPoint      = errors.New("reference point is not a grade-1 multivector")
	ErrNotPlane      = errors.New("rotation plane is not a grade-2 multivector")
	ErrPointMismatch = errors.New("co-screws anchored at different reference points")
)

// isPoint reports whether p is purely grade 1. The zero multivector
// is the origin and counts as a point.
func isPoint(p ga.Multivector) bool {
	return p.Grade(1).Equals(p)
}

// transport is the parallel-transport law shared by screws and
// co-screws: moving the anchor from p to q subtracts the wedge of the
// displacement with the direction from the moment.
func transport(p, q, dir, moment ga.Multivector) ga.Multivector {
	return moment.Sub(q.Sub(p).Wedge(dir))
}

// Screw is a twist or wrench: a direction multivector and a moment
// multivector anchored at a reference point.
type Screw struct {
	point, dir, moment ga.Multivector
}

// New constructs a screw anchored at the given reference point. The
// point must be purely grade 1 or ErrNotPoint is returned.
func New(point, direction, moment ga.Multivector) (Screw, error) {
	if !isPoint(point) {
		return Screw{}, fmt.Errorf("%w: %v", ErrNotPoint, point)
	}
	return Screw{point: point, dir: direction, moment: moment}, nil
}

// Point returns the screw's reference point.
func (s Screw) Point() ga.Multivector { return s.point }

// Direction returns the screw's direction multivector.
func (s Screw) Direction() ga.Multivector { return s.dir }

// Moment returns the screw's moment multivector at its reference
// point.
func (s Screw) Moment() ga.Multivector { return s.moment }

// ChangePoint returns the same screw re-anchored at p.
func (s Screw) ChangePoint(p ga.Multivector) (Screw, error) {
	if !isPoint(p) {
		return Screw{}, fmt.Errorf("%w: %v", ErrNotPoint, p)
	}
	return Screw{point: p, dir: s.dir, moment: transport(s.point, p, s.dir, s.moment)}, nil
}

// Add returns the sum of two screws at s's reference point. If o is
// anchored elsewhere it is transported first, so the left operand's
// point wins.
func (s Screw) Add(o Screw) Screw {
	if !o.point.Equals(s.point) {
		o = Screw{point: s.point, dir: o.dir, moment: transport(o.point, s.point, o.dir, o.moment)}
	}
	return Screw{point: s.point, dir: s.dir.Add(o.dir), moment: s.moment.Add(o.moment)}
}

// Wedge returns the outer product of two screws at s's reference
// point, transporting o first when needed. The cross term carries the
// grade involution of the left moment so that reordering odd and even
// moment components keeps the product antisymmetric.
func (s Screw) Wedge(o Screw) Screw {
	if !o.point.Equals(s.point) {
		o = Screw{point: s.point, dir: o.dir, moment: transport(o.point, s.point, o.dir, o.moment)}
	}
	return Screw{
		point:  s.point,
		dir:    s.dir.Wedge(o.moment).Add(s.moment.Invol().Wedge(o.dir)),
		moment: s.moment.Wedge(o.moment),
	}
}

// String renders the screw at its own reference point.
func (s Screw) String() string {
	return fmt.Sprintf("Screw(point=%v, direction=%v, moment=%v)", s.point, s.dir, s.moment)
}

// StringAt renders the screw after transport to p.
func (s Screw) StringAt(p ga.Multivector) (string, error) {
	t, err := s.ChangePoint(p)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// CoScrew is the dual of a screw: a momentum- or impulse-like object
// closed under addition and scalar scaling. By convention a co-screw
// also represents a rigid motion (a comotor); see comotor.go.
type CoScrew struct {
	point, dir, moment ga.Multivector
}

// NewCo constructs a co-screw anchored at the given reference point.
// The point must be purely grade 1 or ErrNotPoint is returned.
func NewCo(point, direction, moment ga.Multivector) (CoScrew, error) {
	if !isPoint(point) {
		return CoScrew{}, fmt.Errorf("%w: %v", ErrNotPoint, point)
	}
	return CoScrew{point: point, dir: direction, moment: moment}, nil
}

// Point returns the co-screw's reference point.
func (c CoScrew) Point() ga.Multivector { return c.point }

// Direction returns the co-screw's direction multivector. For a
// comotor this is the motion's rotor.
func (c CoScrew) Direction() ga.Multivector { return c.dir }

// Moment returns the co-screw's moment multivector at its reference
// point. For a comotor this is the motion's translational moment.
func (c CoScrew) Moment() ga.Multivector { return c.moment }

// ChangePoint returns the same co-screw re-anchored at p.
func (c CoScrew) ChangePoint(p ga.Multivector) (CoScrew, error) {
	if !isPoint(p) {
		return CoScrew{}, fmt.Errorf("%w: %v", ErrNotPoint, p)
	}
	return CoScrew{point: p, dir: c.dir, moment: transport(c.point, p, c.dir, c.moment)}, nil
}

// Add returns the sum of two co-screws. Unlike screws, co-screws have
// no point-independent addition law, so both operands must already
// share a reference point; otherwise ErrPointMismatch is returned and
// the caller must ChangePoint explicitly first.
func (c CoScrew) Add(o CoScrew) (CoScrew, error) {
	if !o.point.Equals(c.point) {
		return CoScrew{}, fmt.Errorf("%w: %v != %v", ErrPointMismatch, c.point, o.point)
	}
	return CoScrew{point: c.point, dir: c.dir.Add(o.dir), moment: c.moment.Add(o.moment)}, nil
}

// ScaleBy returns the co-screw scaled by x.
func (c CoScrew) ScaleBy(x float64) CoScrew {
	return CoScrew{point: c.point, dir: c.dir.Scale(x), moment: c.moment.Scale(x)}
}

// String renders the co-screw at its own reference point.
func (c CoScrew) String() string {
	return fmt.Sprintf("CoScrew(point=%v, direction=%v, moment=%v)", c.point, c.dir, c.moment)
}

// StringAt renders the co-screw after transport to p.
func (c CoScrew) StringAt(p ga.Multivector) (string, error) {
	t, err := c.ChangePoint(p)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// Comoment returns the scalar pairing of a co-screw with a screw,
// the power or work exchanged between a momentum-like object and a
// motion or force screw. Both operands must come from the same
// algebra dimension.
func Comoment(c CoScrew, s Screw) ga.Multivector {
	return c.dir.Invol().Neg().Mul(s.moment.Invol()).
		Add(s.dir.Mul(c.moment)).
		Grade(0)
}

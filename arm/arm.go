// Package arm solves the forward kinematics of a serial chain of
// revolute joints using comotor composition from the screw package.
//
// Each joint is described in the base frame of the robot's zero pose
// by the point its axis passes through and the unit bivector of its
// plane of rotation. Posing the arm builds one comotor per joint and
// folds them from the most distal joint back to the base; the
// resultant comotor, re-anchored at the origin, carries the total
// rotor and translation and maps the resting end-effector point to
// its posed position.
package arm

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
	"zappem.net/pub/math/geom"
	"zappem.net/pub/math/screw"
	"zappem.net/pub/math/screw/ga"
)

// Joint holds a revolute joint configuration: its angle range, the
// point its axis passes through and the unit bivector of its rotation
// plane. A joint with Min == Max is unlimited.
type Joint struct {
	Min, Max geom.Angle
	Centre   r3.Vector
	Plane    ga.Multivector
}

// Pose holds the current pose of the arm: the resultant rotor and
// translational moment at the origin, the end-effector position and
// the joint angles.
type Pose struct {
	Rotor  ga.Multivector
	Moment ga.Multivector
	V      r3.Vector
	J      []geom.Angle
}

// Arm holds the combined geometric state of a revolute-joint arm.
type Arm struct {
	j   []Joint
	end r3.Vector
	p   Pose
}

// Err* are the errors exported by this package.
var (
	ErrNoJoints   = errors.New("arm needs at least one joint")
	ErrBadJoint   = errors.New("invalid joint")
	ErrLimit      = errors.New("parameter outside joint range")
	ErrAngleCount = errors.New("wrong number of joint angles")
)

// New specifies the end-effector resting position and the joints of
// an arm. Its default pose is all joint angles zero.
func New(end r3.Vector, js ...Joint) (*Arm, error) {
	if len(js) == 0 {
		return nil, ErrNoJoints
	}
	for i, j := range js {
		if _, err := screw.NewComotor(ga.FromR3(j.Centre), j.Plane, 0); err != nil {
			return nil, fmt.Errorf("joint %d: %w", i, err)
		}
	}
	a := &Arm{
		j:   js,
		end: end,
		p: Pose{
			J: make([]geom.Angle, len(js)),
		},
	}
	a.fwd()
	return a, nil
}

// End returns the end-effector resting position.
func (a *Arm) End() r3.Vector { return a.end }

// Joints returns the number of joints.
func (a *Arm) Joints() int { return len(a.j) }

// J returns the current angle of the specified joint.
func (a *Arm) J(i int) geom.Angle {
	if i < 0 || i >= len(a.j) {
		return 0
	}
	return a.p.J[i]
}

// Pose returns the current pose of the arm.
func (a *Arm) Pose() Pose {
	p := a.p
	p.J = append([]geom.Angle(nil), a.p.J...)
	return p
}

// Orientation returns the current resultant rotor as a Hamilton
// quaternion.
func (a *Arm) Orientation() quat.Number {
	return a.p.Rotor.Quat()
}

// Comotor builds the comotor of joint i rotated by angle.
func (a *Arm) Comotor(i int, angle geom.Angle) (screw.CoScrew, error) {
	if i < 0 || i >= len(a.j) {
		return screw.CoScrew{}, ErrBadJoint
	}
	return screw.NewComotor(ga.FromR3(a.j[i].Centre), a.j[i].Plane, angle.Rad())
}

// Forward evaluates the forward kinematics for a set of joint angles
// and returns the resultant comotor at the origin together with the
// posed end-effector position. It does not alter the working pose of
// the arm.
func (a *Arm) Forward(j []geom.Angle) (screw.CoScrew, r3.Vector, error) {
	if len(j) != len(a.j) {
		return screw.CoScrew{}, r3.Vector{}, fmt.Errorf("%w: got %d want %d", ErrAngleCount, len(j), len(a.j))
	}
	total, err := a.Comotor(len(a.j)-1, j[len(a.j)-1])
	if err != nil {
		return screw.CoScrew{}, r3.Vector{}, err
	}
	for i := len(a.j) - 2; i >= 0; i-- {
		next, err := a.Comotor(i, j[i])
		if err != nil {
			return screw.CoScrew{}, r3.Vector{}, err
		}
		total = total.Compose(next)
	}
	total, err = total.ChangePoint(nil)
	if err != nil {
		return screw.CoScrew{}, r3.Vector{}, err
	}
	return total, total.Apply(ga.FromR3(a.end)).R3(), nil
}

// fwd recomputes the pose from the currently known joint angles. Use
// this to fix up the pose after changing a joint.
func (a *Arm) fwd() error {
	total, v, err := a.Forward(a.p.J)
	if err != nil {
		return err
	}
	a.p.Rotor = total.Direction()
	a.p.Moment = total.Moment()
	a.p.V = v
	return nil
}

// SetJ forces a joint to an angle. An error is returned if the joint
// cannot adopt that angle because of a range limit.
func (a *Arm) SetJ(i int, angle geom.Angle) error {
	if i < 0 || i >= len(a.j) {
		return ErrBadJoint
	}
	if j := a.j[i]; j.Min != j.Max && (angle < j.Min || angle > j.Max) {
		return ErrLimit
	}
	a.p.J[i] = angle
	return a.fwd()
}

package arm

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
	"zappem.net/pub/math/geom"
	"zappem.net/pub/math/screw"
	"zappem.net/pub/math/screw/ga"
)

const tol = 1e-9

// sixJointArm is the reference arm: six revolute joints stacked up
// the z axis with the end effector resting at (0,0,40).
func sixJointArm(t *testing.T) *Arm {
	t.Helper()
	al, err := ga.New(3)
	if err != nil {
		t.Fatalf("failed to build algebra: %v", err)
	}
	blade := func(name string, scale float64) ga.Multivector {
		b, err := al.Blade(name)
		if err != nil {
			t.Fatalf("blade %q: %v", name, err)
		}
		return b.Scale(scale)
	}
	js := []Joint{
		{Centre: r3.Vector{Z: 10}, Plane: blade("e12", 1)},
		{Centre: r3.Vector{Z: 10}, Plane: blade("e13", -1)},
		{Centre: r3.Vector{Z: 20}, Plane: blade("e13", -1)},
		{Centre: r3.Vector{Z: 30}, Plane: blade("e12", 1)},
		{Centre: r3.Vector{Z: 30}, Plane: blade("e13", -1)},
		{Centre: r3.Vector{Z: 30}, Plane: blade("e12", 1)},
	}
	a, err := New(r3.Vector{Z: 40}, js...)
	if err != nil {
		t.Fatalf("failed to define arm: %v", err)
	}
	return a
}

func refAngles() []geom.Angle {
	return []geom.Angle{
		geom.Degrees(0), geom.Degrees(90), geom.Degrees(0),
		geom.Degrees(90), geom.Degrees(45), geom.Degrees(0),
	}
}

func vecWithin(a, b r3.Vector, tol float64) bool {
	return a.Sub(b).Norm() <= tol
}

func TestForwardReference(t *testing.T) {
	a := sixJointArm(t)
	total, pos, err := a.Forward(refAngles())
	if err != nil {
		t.Fatalf("forward kinematics: %v", err)
	}
	if want := (r3.Vector{X: 231.9238815542512, Y: 91.92388155425118, Z: 30}); !vecWithin(pos, want, tol) {
		t.Errorf("end effector: got=%v want=%v", pos, want)
	}
	wantRotor := ga.MV(
		ga.Blade{Scalar: 0.27059805007309856, Basis: 0b000},
		ga.Blade{Scalar: 0.6532814824381882, Basis: 0b011},
		ga.Blade{Scalar: -0.6532814824381883, Basis: 0b101},
		ga.Blade{Scalar: 0.2705980500730984, Basis: 0b110},
	)
	if !total.Direction().Within(wantRotor, tol) {
		t.Errorf("resultant rotor: got=%v want=%v", total.Direction(), wantRotor)
	}
	wantMoment := ga.MV(
		ga.Blade{Scalar: 38.54030797826255, Basis: 0b001},
		ga.Blade{Scalar: -53.84764527286613, Basis: 0b010},
		ga.Blade{Scalar: 61.96558677505911, Basis: 0b100},
		ga.Blade{Scalar: 58.138752451408195, Basis: 0b111},
	)
	if !total.Moment().Within(wantMoment, tol) {
		t.Errorf("resultant moment: got=%v want=%v", total.Moment(), wantMoment)
	}
	// The raw transform leaves only rounding noise above grade 1.
	full := screw.Transform(total.Direction(), total.Moment(), ga.FromR3(a.End()))
	if res := full.Sub(full.Grade(1)); res.Norm() > 1e-9 {
		t.Errorf("residual above grade 1 too large: %v", res)
	}
}

func TestForwardAngleCount(t *testing.T) {
	a := sixJointArm(t)
	if _, _, err := a.Forward([]geom.Angle{0, 0}); !errors.Is(err, ErrAngleCount) {
		t.Errorf("short angles: got err=%v want ErrAngleCount", err)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(r3.Vector{}); !errors.Is(err, ErrNoJoints) {
		t.Errorf("no joints: got err=%v want ErrNoJoints", err)
	}
	bad := Joint{Centre: r3.Vector{Z: 1}, Plane: ga.MV(ga.Blade{Scalar: 1, Basis: 0b001})}
	if _, err := New(r3.Vector{}, bad); !errors.Is(err, screw.ErrNotPlane) {
		t.Errorf("grade-1 plane: got err=%v want screw.ErrNotPlane", err)
	}
}

func TestSetJ(t *testing.T) {
	a := sixJointArm(t)
	rest := a.Pose()
	// Zero-angle comotors keep the identity rotor but still carry
	// their anchor moment: the resting moment is the sum of the
	// joint centres and the resting position follows from the
	// transform formula.
	if !rest.Rotor.Within(ga.Scalar(1), tol) {
		t.Errorf("resting rotor: got=%v want=1", rest.Rotor)
	}
	if want := ga.FromR3(r3.Vector{Z: 130}); !rest.Moment.Within(want, tol) {
		t.Errorf("resting moment: got=%v want=%v", rest.Moment, want)
	}
	if want := (r3.Vector{Z: 300}); !vecWithin(rest.V, want, tol) {
		t.Errorf("resting position: got=%v want=%v", rest.V, want)
	}

	if err := a.SetJ(9, geom.Degrees(10)); !errors.Is(err, ErrBadJoint) {
		t.Errorf("bad joint index: got err=%v want ErrBadJoint", err)
	}
	for i, angle := range refAngles() {
		if err := a.SetJ(i, angle); err != nil {
			t.Fatalf("failed to set joint %d: %v", i, err)
		}
		if got := a.J(i); !geom.Zeroish(float64(got - angle)) {
			t.Errorf("joint %d angle: got=%v want=%v", i, got, angle)
		}
	}
	if want := (r3.Vector{X: 231.9238815542512, Y: 91.92388155425118, Z: 30}); !vecWithin(a.Pose().V, want, tol) {
		t.Errorf("posed end effector: got=%v want=%v", a.Pose().V, want)
	}
}

func TestJointLimits(t *testing.T) {
	al, _ := ga.New(3)
	plane, _ := al.Blade("e12")
	a, err := New(r3.Vector{Z: 5}, Joint{
		Min: geom.Degrees(-45), Max: geom.Degrees(45),
		Centre: r3.Vector{Z: 1}, Plane: plane,
	})
	if err != nil {
		t.Fatalf("failed to define arm: %v", err)
	}
	if err := a.SetJ(0, geom.Degrees(90)); !errors.Is(err, ErrLimit) {
		t.Errorf("over limit: got err=%v want ErrLimit", err)
	}
	if err := a.SetJ(0, geom.Degrees(30)); err != nil {
		t.Errorf("within limit: %v", err)
	}
}

func TestOrientation(t *testing.T) {
	a := sixJointArm(t)
	for i, angle := range refAngles() {
		if err := a.SetJ(i, angle); err != nil {
			t.Fatalf("failed to set joint %d: %v", i, err)
		}
	}
	q := a.Orientation()
	// The quaternion image of a unit rotor is a unit quaternion.
	n := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if !scalar.EqualWithinAbs(n, 1, tol) {
		t.Errorf("orientation not unit: |q|=%v", n)
	}
	if !scalar.EqualWithinAbs(q.Real, 0.27059805007309856, tol) {
		t.Errorf("orientation scalar: got=%v want=%v", q.Real, 0.27059805007309856)
	}
}

func TestPoseIsolation(t *testing.T) {
	a := sixJointArm(t)
	p := a.Pose()
	p.J[0] = geom.Degrees(123)
	if a.J(0) != 0 {
		t.Errorf("pose copy aliased the arm's joint angles")
	}
}

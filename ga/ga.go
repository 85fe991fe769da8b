// Package ga implements a real geometric (Clifford) algebra with a
// positive-definite signature in up to eight dimensions. Multivectors
// are held in a canonical sparse form, so value comparison and string
// rendering are deterministic. The package provides the geometric and
// outer products, grade projection, grade involution and reversion,
// which is the full boundary contract the screw layer builds on.
package ga

import (
	"math"
	"math/bits"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Blade is a weighted basis blade. Basis is a bitmask of generator
// vectors in canonical order: bit i set means the blade contains
// e(i+1). The zero Basis is the scalar blade.
type Blade struct {
	Scalar float64
	Basis  uint8
}

// Grade returns the number of generator vectors in the blade.
func (a Blade) Grade() int { return bits.OnesCount8(a.Basis) }

// Mul returns the geometric product ab. Generators are orthonormal,
// so shared vectors annihilate to the signature sign.
func (a Blade) Mul(b Blade) Blade {
	return Blade{signOf(a.Basis, b.Basis) * a.Scalar * b.Scalar, a.Basis ^ b.Basis}
}

// Wedge returns the outer product a^b, which is zero when a and b
// share a generator and the geometric product otherwise.
func (a Blade) Wedge(b Blade) Blade {
	if a.Basis&b.Basis != 0 {
		return Blade{}
	}
	return a.Mul(b)
}

// Rev returns the reversion of a: the sign flips when the grade is
// 2 or 3 mod 4.
func (a Blade) Rev() Blade {
	if a.Grade()%4 > 1 {
		a.Scalar = -a.Scalar
	}
	return a
}

// Invol returns the grade involution of a: odd grades change sign.
func (a Blade) Invol() Blade {
	if a.Grade()%2 == 1 {
		a.Scalar = -a.Scalar
	}
	return a
}

// signOf counts the generator transpositions needed to bring the
// product of two basis bitmasks into canonical order.
func signOf(a, b uint8) float64 {
	a >>= 1
	n := 0
	for a != 0 {
		n += bits.OnesCount8(a & b)
		a >>= 1
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}

// Multivector is a sum of weighted basis blades in canonical form:
// zero terms dropped, one term per basis, sorted by grade then basis.
// All operations return new values; a Multivector is never mutated.
type Multivector []Blade

// simplify merges duplicate blades, drops zero terms and sorts the
// result into the canonical ordering.
func simplify(a Multivector) Multivector {
	m := make(map[uint8]float64, len(a))
	for _, v := range a {
		m[v.Basis] += v.Scalar
	}
	b := make(Multivector, 0, len(m))
	for k, v := range m {
		if v != 0 {
			b = append(b, Blade{Scalar: v, Basis: k})
		}
	}
	sort.Slice(b, func(i, j int) bool {
		if gi, gj := b[i].Grade(), b[j].Grade(); gi != gj {
			return gi < gj
		}
		return b[i].Basis < b[j].Basis
	})
	return b
}

// MV builds a canonical multivector from a list of blades.
func MV(blades ...Blade) Multivector { return simplify(blades) }

// Scalar returns x as a grade-0 multivector.
func Scalar(x float64) Multivector { return simplify(Multivector{{Scalar: x}}) }

// Add returns a+b.
func (a Multivector) Add(b Multivector) Multivector {
	c := make(Multivector, 0, len(a)+len(b))
	c = append(c, a...)
	c = append(c, b...)
	return simplify(c)
}

// Sub returns a-b.
func (a Multivector) Sub(b Multivector) Multivector {
	c := make(Multivector, 0, len(a)+len(b))
	c = append(c, a...)
	for _, v := range b {
		v.Scalar = -v.Scalar
		c = append(c, v)
	}
	return simplify(c)
}

// Scale returns a with every coefficient multiplied by s.
func (a Multivector) Scale(s float64) Multivector {
	c := make(Multivector, 0, len(a))
	for _, v := range a {
		v.Scalar *= s
		c = append(c, v)
	}
	return simplify(c)
}

// Neg returns -a.
func (a Multivector) Neg() Multivector { return a.Scale(-1) }

// Mul returns the geometric product ab.
func (a Multivector) Mul(b Multivector) Multivector {
	var c Multivector
	for _, b0 := range a {
		for _, b1 := range b {
			c = append(c, b0.Mul(b1))
		}
	}
	return simplify(c)
}

// Wedge returns the outer product a^b.
func (a Multivector) Wedge(b Multivector) Multivector {
	var c Multivector
	for _, b0 := range a {
		for _, b1 := range b {
			c = append(c, b0.Wedge(b1))
		}
	}
	return simplify(c)
}

// Grade returns the projection of a onto grade k.
func (a Multivector) Grade(k int) Multivector {
	var c Multivector
	for _, v := range a {
		if v.Grade() == k {
			c = append(c, v)
		}
	}
	return c
}

// Invol returns the grade involution of a.
func (a Multivector) Invol() Multivector {
	c := make(Multivector, 0, len(a))
	for _, v := range a {
		c = append(c, v.Invol())
	}
	return c
}

// Rev returns the reversion of a.
func (a Multivector) Rev() Multivector {
	c := make(Multivector, 0, len(a))
	for _, v := range a {
		c = append(c, v.Rev())
	}
	return c
}

// At returns the coefficient of the given basis bitmask.
func (a Multivector) At(basis uint8) float64 {
	for _, v := range a {
		if v.Basis == basis {
			return v.Scalar
		}
	}
	return 0
}

// ScalarPart returns the grade-0 coefficient.
func (a Multivector) ScalarPart() float64 { return a.At(0) }

// IsZero reports whether a has no terms.
func (a Multivector) IsZero() bool { return len(a) == 0 }

// Equals reports exact coefficient equality.
func (a Multivector) Equals(b Multivector) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}

// Within reports coefficient equality to the given absolute
// tolerance.
func (a Multivector) Within(b Multivector, tol float64) bool {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && before(a[i], b[j])):
			if math.Abs(a[i].Scalar) > tol {
				return false
			}
			i++
		case i == len(a) || before(b[j], a[i]):
			if math.Abs(b[j].Scalar) > tol {
				return false
			}
			j++
		default:
			if !scalar.EqualWithinAbs(a[i].Scalar, b[j].Scalar, tol) {
				return false
			}
			i++
			j++
		}
	}
	return true
}

func before(a, b Blade) bool {
	if ga, gb := a.Grade(), b.Grade(); ga != gb {
		return ga < gb
	}
	return a.Basis < b.Basis
}

// NormSq returns the squared magnitude of a, the scalar part of a*~a.
// With a positive-definite signature every blade contributes the
// square of its coefficient.
func (a Multivector) NormSq() float64 {
	var n float64
	for _, v := range a {
		n += v.Scalar * v.Scalar
	}
	return n
}

// Norm returns the magnitude of a.
func (a Multivector) Norm() float64 { return math.Sqrt(a.NormSq()) }

// Rotor returns cos(angle/2) + sin(angle/2)*plane, the even unit
// multivector rotating by angle in the given unit plane under the
// sandwich product ~R x R.
func Rotor(angle float64, plane Multivector) Multivector {
	return Scalar(math.Cos(angle / 2)).Add(plane.Scale(math.Sin(angle / 2)))
}

// String renders a in canonical blade order, e.g. "2 + 3*e1 - e12".
func (a Multivector) String() string {
	if len(a) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, v := range a {
		x := v.Scalar
		if i > 0 {
			if x < 0 {
				sb.WriteString(" - ")
				x = -x
			} else {
				sb.WriteString(" + ")
			}
		}
		name := BladeName(v.Basis)
		if name == "" {
			sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
			continue
		}
		if x != 1 {
			sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
			sb.WriteString("*")
		}
		sb.WriteString(name)
	}
	return sb.String()
}

// BladeName returns the canonical name of a basis bitmask, e.g. "e13"
// for bits 0 and 2. The scalar blade has no name.
func BladeName(basis uint8) string {
	if basis == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('e')
	for i := 0; i < 8; i++ {
		if basis>>i&1 == 1 {
			sb.WriteByte(byte('1' + i))
		}
	}
	return sb.String()
}

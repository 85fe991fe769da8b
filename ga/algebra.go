package ga

import (
	"errors"
	"fmt"
	"math/bits"
)

// Err* are the errors exported by this package.
var (
	ErrDimension    = errors.New("dimension out of range")
	ErrUnknownBlade = errors.New("unknown basis blade")
	ErrVectorSize   = errors.New("too many vector components")
)

// Algebra holds the named basis-blade table for a fixed dimension.
// The table is built once by New and is read-only afterwards, so an
// Algebra may be shared freely between goroutines.
type Algebra struct {
	dim    int
	names  []string
	blades map[string]Multivector
}

// New constructs the geometric algebra of the given dimension. The
// basis bitmask representation holds up to eight generators.
func New(dim int) (*Algebra, error) {
	if dim < 1 || dim > 8 {
		return nil, fmt.Errorf("%w: %d not in [1,8]", ErrDimension, dim)
	}
	al := &Algebra{
		dim:    dim,
		blades: make(map[string]Multivector),
	}
	// Basis bitmasks in grade-major order, "s" first.
	order := make([]uint8, 0, 1<<dim)
	for b := 0; b < 1<<dim; b++ {
		order = append(order, uint8(b))
	}
	for g := 0; g <= dim; g++ {
		for _, b := range order {
			if bits.OnesCount8(b) != g {
				continue
			}
			name := BladeName(b)
			if name == "" {
				name = "s"
			}
			al.names = append(al.names, name)
			al.blades[name] = Multivector{{Scalar: 1, Basis: b}}
		}
	}
	return al, nil
}

// Dim returns the number of grade-1 generators.
func (al *Algebra) Dim() int { return al.dim }

// Names returns the blade names in grade-major order, starting with
// the scalar blade "s".
func (al *Algebra) Names() []string {
	return append([]string(nil), al.names...)
}

// Blade returns the named unit basis blade, e.g. "e12".
func (al *Algebra) Blade(name string) (Multivector, error) {
	b, ok := al.blades[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlade, name)
	}
	return b, nil
}

// Blades returns a copy of the full basis-blade table keyed by name.
func (al *Algebra) Blades() map[string]Multivector {
	m := make(map[string]Multivector, len(al.blades))
	for k, v := range al.blades {
		m[k] = v
	}
	return m
}

// Scalar returns x as a grade-0 multivector.
func (al *Algebra) Scalar(x float64) Multivector { return Scalar(x) }

// Zero returns the zero multivector.
func (al *Algebra) Zero() Multivector { return nil }

// Vector builds a grade-1 multivector from per-generator components.
func (al *Algebra) Vector(xs ...float64) (Multivector, error) {
	if len(xs) > al.dim {
		return nil, fmt.Errorf("%w: %d components in %d dimensions", ErrVectorSize, len(xs), al.dim)
	}
	c := make(Multivector, 0, len(xs))
	for i, x := range xs {
		c = append(c, Blade{Scalar: x, Basis: 1 << i})
	}
	return simplify(c), nil
}

// Pseudoscalar returns the unit blade of top grade.
func (al *Algebra) Pseudoscalar() Multivector {
	return Multivector{{Scalar: 1, Basis: uint8(1<<al.dim - 1)}}
}

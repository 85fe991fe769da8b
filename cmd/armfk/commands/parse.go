package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"zappem.net/pub/math/geom"
	"zappem.net/pub/math/screw/ga"
)

func errArmShape(centres, planes, angles int) error {
	return fmt.Errorf("mismatched arm description: %d centres, %d planes, %d angles",
		centres, planes, angles)
}

// parseVector parses "x,y,z".
func parseVector(s string) (r3.Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vector{}, fmt.Errorf("bad vector %q: want \"x,y,z\"", s)
	}
	var xs [3]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r3.Vector{}, fmt.Errorf("bad vector %q: %w", s, err)
		}
		xs[i] = x
	}
	return r3.Vector{X: xs[0], Y: xs[1], Z: xs[2]}, nil
}

// parseVectors parses ";"-separated vectors.
func parseVectors(s string) ([]r3.Vector, error) {
	var vs []r3.Vector
	for _, part := range strings.Split(s, ";") {
		v, err := parseVector(part)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// parsePlanes parses ";"-separated signed basis bivector names like
// "e12" or "-e13".
func parsePlanes(s string) ([]ga.Multivector, error) {
	al, err := ga.New(3)
	if err != nil {
		return nil, err
	}
	var ps []ga.Multivector
	for _, part := range strings.Split(s, ";") {
		name := strings.TrimSpace(part)
		scale := 1.0
		if strings.HasPrefix(name, "-") {
			scale = -1
			name = name[1:]
		}
		b, err := al.Blade(name)
		if err != nil {
			return nil, err
		}
		ps = append(ps, b.Scale(scale))
	}
	return ps, nil
}

// parseAngles parses ","-separated angles in degrees.
func parseAngles(s string) ([]geom.Angle, error) {
	var as []geom.Angle
	for _, part := range strings.Split(s, ",") {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad angle %q: %w", part, err)
		}
		as = append(as, geom.Degrees(x))
	}
	return as, nil
}

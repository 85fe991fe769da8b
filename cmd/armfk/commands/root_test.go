package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
)

func TestParseVectors(t *testing.T) {
	vs, err := parseVectors("0,0,10; 1,-2,3")
	if err != nil {
		t.Fatalf("parse vectors: %v", err)
	}
	if len(vs) != 2 || vs[0] != (r3.Vector{Z: 10}) || vs[1] != (r3.Vector{X: 1, Y: -2, Z: 3}) {
		t.Errorf("parsed vectors: got=%v", vs)
	}
	if _, err := parseVectors("1,2"); err == nil {
		t.Errorf("short vector accepted")
	}
	if _, err := parseVectors("1,2,x"); err == nil {
		t.Errorf("non-numeric vector accepted")
	}
}

func TestParsePlanes(t *testing.T) {
	ps, err := parsePlanes("e12;-e13")
	if err != nil {
		t.Fatalf("parse planes: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("plane count: got=%d want=2", len(ps))
	}
	if got := ps[1].At(0b101); got != -1 {
		t.Errorf("-e13 coefficient: got=%v want=-1", got)
	}
	if _, err := parsePlanes("e14"); err == nil {
		t.Errorf("unknown blade accepted")
	}
}

func TestParseAngles(t *testing.T) {
	as, err := parseAngles("0, 90 ,45")
	if err != nil {
		t.Fatalf("parse angles: %v", err)
	}
	if len(as) != 3 {
		t.Fatalf("angle count: got=%d want=3", len(as))
	}
	if _, err := parseAngles("90,ninety"); err == nil {
		t.Errorf("non-numeric angle accepted")
	}
}

func TestRunReferenceArm(t *testing.T) {
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(nil)
	if err := root.Execute(); err != nil {
		t.Fatalf("run with defaults: %v", err)
	}
	got := out.String()
	for _, want := range []string{"rotor:", "translation:", "position:    (231.923881554"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunRejectsMismatchedShape(t *testing.T) {
	root := Root()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"--angles", "0,90"})
	if err := root.Execute(); err == nil {
		t.Errorf("mismatched arm description accepted")
	}
}

package turbo2d

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestChainJoinRules(t *testing.T) {
	seg := Profile{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	c := NewChain(seg)
	c.JoinAt(seg)
	got := c.Profile()
	want := Profile{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}

	c.Append(r2.Vec{X: -1})
	if c.Len() != len(want)+1 || c.Last() != (r2.Vec{X: -1}) {
		t.Errorf("Append did not keep all points: %v", c.Profile())
	}
	c.Join(Profile{{X: 7}})
	if c.Len() != len(want)+1 || c.Last() != (r2.Vec{X: 7}) {
		t.Errorf("Join did not replace the joint: %v", c.Profile())
	}
	if seg[0] != (r2.Vec{}) {
		t.Error("chain modified its seed")
	}
}

func TestProfileClosed(t *testing.T) {
	p := Profile{{0, 0}, {1, 0}, {1, 1}, {0, 1e-12}}
	if !p.Closed(Tolerance) {
		t.Error("expected closed profile")
	}
	if p[:3].Closed(Tolerance) {
		t.Error("expected open profile")
	}
	if (Profile{{0, 0}}).Closed(Tolerance) {
		t.Error("single point profile cannot be closed")
	}
}

func TestProfileMirrorBounds(t *testing.T) {
	p := Profile{{-3, 0}, {-1, 2}}
	m := p.MirrorX()
	if m[0] != (r2.Vec{X: 1, Y: 2}) || m[1] != (r2.Vec{X: 3, Y: 0}) {
		t.Errorf("unexpected mirror %v", m)
	}
	bb := append(p, m...).Bounds()
	if bb.Min.X != -3 || bb.Max.X != 3 || bb.Min.Y != 0 || bb.Max.Y != 2 {
		t.Errorf("unexpected bounds %v", bb)
	}
}

func TestErrors(t *testing.T) {
	var err error = &DegenerateLineError{P1: r2.Vec{X: 1}, P2: r2.Vec{X: 1, Y: 3}}
	var dle *DegenerateLineError
	if !errors.As(err, &dle) || dle.P2.Y != 3 {
		t.Fatal("errors.As failed for DegenerateLineError")
	}
	if err := Positive("radius", 0); err == nil {
		t.Error("expected error for zero radius")
	}
	if err := Positive("radius", math.NaN()); err == nil {
		t.Error("expected error for NaN radius")
	}
	if err := Positive("radius", 1); err != nil {
		t.Error(err)
	}
}

func TestAngleConversion(t *testing.T) {
	if d := RtoD(DtoR(30)); math.Abs(d-30) > 1e-12 {
		t.Errorf("round trip got %g", d)
	}
	if !EqualFloat64(1e6, 1e6+1e-4, 1e-9) {
		t.Error("expected relative equality")
	}
	if EqualFloat64(0, 1e-6, 1e-9) {
		t.Error("expected inequality near zero")
	}
}

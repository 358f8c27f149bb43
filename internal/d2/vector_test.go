package d2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestSetMirrorX(t *testing.T) {
	s := Set{{X: -3, Y: 0}, {X: -2, Y: 1}, {X: -1, Y: 4}}
	got := s.MirrorX()
	want := Set{{X: 1, Y: 4}, {X: 2, Y: 1}, {X: 3, Y: 0}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if s[0].X != -3 {
		t.Error("MirrorX modified its receiver")
	}
}

func TestTransformMirrorMatchesSet(t *testing.T) {
	s := Set{{X: 1, Y: 2}, {X: 3, Y: -4}}
	got := MirrorX().ApplySet(s).Reverse()
	want := s.MirrorX()
	for i := range want {
		if !EqualWithin(got[i], want[i], 0) {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTransformRotateTranslate(t *testing.T) {
	m := Translate(r2.Vec{X: 1, Y: 1}).Mul(Rotate(math.Pi / 2))
	got := m.ApplyPos(r2.Vec{X: 1})
	want := r2.Vec{X: 1, Y: 2}
	if !EqualWithin(got, want, 1e-12) {
		t.Errorf("got %v, want %v", got, want)
	}
	if p := TransformIdentity().ApplyPos(want); p != want {
		t.Errorf("identity moved point: %v", p)
	}
}

func TestBoxSquare(t *testing.T) {
	b := Set{{X: 0, Y: 0}, {X: 4, Y: 1}}.Bounds().Square()
	sz := b.Size()
	if sz.X != 4 || sz.Y != 4 {
		t.Errorf("expected 4x4 box, got %v", sz)
	}
	if c := b.Center(); !EqualWithin(c, r2.Vec{X: 2, Y: 0.5}, 1e-12) {
		t.Errorf("center moved: %v", c)
	}
}

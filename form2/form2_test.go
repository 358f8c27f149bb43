package form2

import (
	"errors"
	"testing"

	"github.com/soypat/turbo2d"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestLineThroughPointsDegenerate(t *testing.T) {
	pts, err := LineThroughPoints([]float64{0, 1}, r2.Vec{X: 2}, r2.Vec{X: 2, Y: 4})
	var dle *turbo2d.DegenerateLineError
	if !errors.As(err, &dle) {
		t.Fatalf("expected DegenerateLineError, got %v", err)
	}
	if pts != nil {
		t.Errorf("expected no output, got %v", pts)
	}
	if dle.P1.X != 2 || dle.P2.Y != 4 {
		t.Errorf("error does not carry the defining points: %v", dle)
	}
}

func TestLineThroughOriginTo(t *testing.T) {
	pts, err := LineThroughOriginTo([]float64{2}, r2.Vec{X: 1, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	if pts[0] != (r2.Vec{X: 2, Y: 2}) {
		t.Errorf("got %v", pts[0])
	}
	if _, err = LineThroughOriginTo(nil, r2.Vec{X: 1, Y: 1}); err == nil {
		t.Error("expected error for empty y values")
	}
}

func TestArcInvalidParameter(t *testing.T) {
	_, err := Arc(r2.Vec{X: 1}, r2.Vec{Y: 1}, -1, r2.Vec{}, 4, turbo2d.Clockwise, true)
	var ipe *turbo2d.InvalidParameterError
	if !errors.As(err, &ipe) || ipe.Name != "radius" {
		t.Fatalf("expected radius InvalidParameterError, got %v", err)
	}
	pts, err := Arc(r2.Vec{X: 1}, r2.Vec{Y: 1}, 1, r2.Vec{}, 4, turbo2d.Clockwise, true)
	if err != nil || len(pts) != 4 {
		t.Fatalf("unexpected result %v %v", pts, err)
	}
}

func TestPolygonTooFewVertices(t *testing.T) {
	_, err := Polygon(turbo2d.Profile{{0, 0}, {1, 1}})
	if err == nil {
		t.Fatal("expected error")
	}
	s, err := Polygon(turbo2d.Profile{{0, 0}, {1, 0}, {0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if !turbo2d.Contains(s, r2.Vec{X: 0.2, Y: 0.2}) {
		t.Error("expected point inside triangle")
	}
}

func TestRecoveredNonError(t *testing.T) {
	err := recovered("boom")
	if err.Error() != "boom" {
		t.Errorf("got %q", err.Error())
	}
}

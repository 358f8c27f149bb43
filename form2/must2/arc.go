package must2

import (
	"math"

	"github.com/soypat/turbo2d"
	"github.com/soypat/turbo2d/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Arc samples n points on the circle of the given radius and center,
// sweeping from the angle of lower to the angle of upper (both measured with
// atan2 about center). Samples are evenly spaced in angle.
//
// With turbo2d.Clockwise the sweep goes straight from the lower angle to the
// upper angle. With turbo2d.CounterClockwise a full turn is added to the
// lower angle first, which forces the sweep the long way around. Neither
// direction picks the geometrically shorter arc on its own.
//
// When endpoint is false the upper angle is excluded so a following segment
// can supply the shared point. lower and upper are not checked to lie on
// the circle.
func Arc(lower, upper r2.Vec, radius float64, center r2.Vec, n int, dir turbo2d.Direction, endpoint bool) []r2.Vec {
	if n < 2 {
		panic(&turbo2d.InvalidParameterError{Name: "n", Value: float64(n), Reason: "arc needs at least 2 points"})
	}
	if !(radius > 0) {
		panic(&turbo2d.InvalidParameterError{Name: "radius", Value: radius, Reason: "must be > 0"})
	}
	a1 := d2.CartesianToPolar(r2.Sub(lower, center)).Theta
	a2 := d2.CartesianToPolar(r2.Sub(upper, center)).Theta
	if dir == turbo2d.CounterClockwise {
		a1 += 2 * math.Pi
	}
	angles := Linspace(a1, a2, n, endpoint)
	pts := make([]r2.Vec, n)
	for i, theta := range angles {
		pts[i] = r2.Add(center, d2.Pol{R: radius, Theta: theta}.PolarToCartesian())
	}
	return pts
}

// Sweep returns the signed angle traversed by consecutive points of an arc
// about center. Positive values are counterclockwise in the usual
// mathematical sense.
func Sweep(pts []r2.Vec, center r2.Vec) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		a := r2.Sub(pts[i-1], center)
		b := r2.Sub(pts[i], center)
		total += math.Atan2(r2.Cross(a, b), r2.Dot(a, b))
	}
	return total
}

package turbo2d

import (
	"math"
)

const (
	pi = math.Pi

	// Tolerance is the absolute tolerance used when comparing coordinates
	// produced by this package, e.g. to decide if a profile is closed.
	Tolerance = 1e-9
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// EqualFloat64 compares two float64 values for equality within a relative epsilon.
func EqualFloat64(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		// near zero relative error is less meaningful
		return diff <= epsilon
	}
	return diff/scale <= epsilon
}

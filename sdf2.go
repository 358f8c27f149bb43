package turbo2d

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// SDF2 is the interface to a 2d signed distance function object.
// Closed profiles are handed to solid modelling and meshing consumers
// through this interface.
type SDF2 interface {
	// Evaluate takes a point in 2D space as input and returns
	// the minimum distance of the SDF2 to the point. The distance
	// is negative if the point is contained within the SDF2.
	Evaluate(p r2.Vec) float64

	// Bounds returns the bounding box that completely contains the SDF2.
	Bounds() r2.Box
}

// Contains reports whether p lies strictly inside s.
func Contains(s SDF2, p r2.Vec) bool {
	return s.Evaluate(p) < 0
}

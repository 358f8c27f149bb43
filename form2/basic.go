package form2

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/turbo2d"
	"github.com/soypat/turbo2d/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// recovered converts a recovered panic value into an error. Typed errors
// raised by must2 are returned as is so callers can use errors.As.
func recovered(a interface{}) error {
	if err, ok := a.(error); ok {
		return err
	}
	return &shapeErr{
		panicObj: a,
		stack:    string(debug.Stack()),
	}
}

// LineThroughPoints returns one point per y value on the line through p1 and p2.
// Vertical and horizontal lines return a *turbo2d.DegenerateLineError.
func LineThroughPoints(ys []float64, p1, p2 r2.Vec) (pts turbo2d.Profile, err error) {
	defer func() {
		if a := recover(); a != nil {
			pts, err = nil, recovered(a)
		}
	}()
	return must2.LineThroughPoints(ys, p1, p2), err
}

// LineThroughOriginTo returns one point per y value on the line through
// the origin and p.
func LineThroughOriginTo(ys []float64, p r2.Vec) (pts turbo2d.Profile, err error) {
	defer func() {
		if a := recover(); a != nil {
			pts, err = nil, recovered(a)
		}
	}()
	return must2.LineThroughOriginTo(ys, p), err
}

// Arc samples n points on a circle from lower to upper. See must2.Arc for
// the direction contract.
func Arc(lower, upper r2.Vec, radius float64, center r2.Vec, n int, dir turbo2d.Direction, endpoint bool) (pts turbo2d.Profile, err error) {
	defer func() {
		if a := recover(); a != nil {
			pts, err = nil, recovered(a)
		}
	}()
	return must2.Arc(lower, upper, radius, center, n, dir, endpoint), err
}

package turbo2d

import (
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/spatial/r2"
)

// DegenerateLineError is returned when a line cannot be parameterized by
// its y coordinate, i.e. the two defining points share an x coordinate
// (vertical line) or a y coordinate (horizontal line).
type DegenerateLineError struct {
	P1, P2 r2.Vec
}

func (e *DegenerateLineError) Error() string {
	if e.P1.X == e.P2.X {
		return fmt.Sprintf("degenerate line: vertical line through %v and %v has no y parameterization", e.P1, e.P2)
	}
	return fmt.Sprintf("degenerate line: horizontal line through %v and %v has no y parameterization", e.P1, e.P2)
}

// InvalidParameterError reports a construction parameter outside its domain.
type InvalidParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

// ErrMsg returns an error with a message function name and line number.
func ErrMsg(msg string) error {
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %s", msg)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %s", fn.Name(), line, msg)
}

// Positive returns an *InvalidParameterError if v is not strictly positive.
func Positive(name string, v float64) error {
	if !(v > 0) {
		return &InvalidParameterError{Name: name, Value: v, Reason: "must be > 0"}
	}
	return nil
}

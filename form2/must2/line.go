package must2

import (
	"github.com/soypat/turbo2d"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Linspace returns n evenly spaced values over [lo, hi]. When endpoint is
// false hi is excluded and the spacing is (hi-lo)/n.
func Linspace(lo, hi float64, n int, endpoint bool) []float64 {
	if n < 1 {
		panic(&turbo2d.InvalidParameterError{Name: "n", Value: float64(n), Reason: "need at least one sample"})
	}
	if !endpoint {
		return floats.Span(make([]float64, n+1), lo, hi)[:n]
	}
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// LineThroughPoints returns one point per value in ys lying on the infinite
// line through p1 and p2. It panics with *turbo2d.DegenerateLineError if the
// line is vertical or horizontal.
func LineThroughPoints(ys []float64, p1, p2 r2.Vec) []r2.Vec {
	m := slope(p1, p2)
	b := p2.Y - m*p2.X
	return lineAt(ys, m, b)
}

// LineThroughOriginTo returns one point per value in ys lying on the line
// through the origin and p. The intercept is fixed at zero.
func LineThroughOriginTo(ys []float64, p r2.Vec) []r2.Vec {
	return lineAt(ys, slope(r2.Vec{}, p), 0)
}

func slope(p1, p2 r2.Vec) float64 {
	if p1.X == p2.X || p1.Y == p2.Y {
		panic(&turbo2d.DegenerateLineError{P1: p1, P2: p2})
	}
	return (p2.Y - p1.Y) / (p2.X - p1.X)
}

func lineAt(ys []float64, m, b float64) []r2.Vec {
	if len(ys) == 0 {
		panic(&turbo2d.InvalidParameterError{Name: "len(ys)", Value: 0, Reason: "need at least one y value"})
	}
	pts := make([]r2.Vec, len(ys))
	for i, y := range ys {
		pts[i] = r2.Vec{X: (y - b) / m, Y: y}
	}
	return pts
}

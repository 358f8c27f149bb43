package must2

import (
	"math"

	"github.com/soypat/turbo2d"
	"github.com/soypat/turbo2d/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// polygon is an SDF2 made from a closed set of line segments.
type polygon struct {
	vertex []r2.Vec  // vertices
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// Polygon returns an SDF2 made from a closed set of line segments. The loop
// is closed if the last vertex does not already coincide with the first.
// Zero length segments (repeated vertices) are skipped.
func Polygon(vertex turbo2d.Profile) turbo2d.SDF2 {
	s := polygon{}

	n := len(vertex)
	if n < 3 {
		panic(&turbo2d.InvalidParameterError{Name: "len(vertex)", Value: float64(n), Reason: "polygon needs at least 3 vertices"})
	}

	s.vertex = make([]r2.Vec, 0, n+1)
	for i, v := range vertex {
		if i > 0 && v == s.vertex[len(s.vertex)-1] {
			continue
		}
		s.vertex = append(s.vertex, v)
	}
	// Close the loop (if necessary)
	if !d2.EqualWithin(s.vertex[0], s.vertex[len(s.vertex)-1], turbo2d.Tolerance) {
		s.vertex = append(s.vertex, s.vertex[0])
	}

	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)

	vmin := s.vertex[0]
	vmax := s.vertex[0]
	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		if s.length[i] > 0 {
			s.vector[i] = r2.Unit(l)
		}
		vmin = d2.MinElem(vmin, s.vertex[i])
		vmax = d2.MaxElem(vmax, s.vertex[i])
	}
	s.bb = r2.Box{Min: vmin, Max: vmax}
	return &s
}

// Evaluate returns the minimum distance for a 2d polygon.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])

	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])                                  // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X}) // normal distance from p to line

		// Distance to line segment
		if t < 0 {
			dd = math.Min(dd, r2.Norm2(pa))
		} else if t > s.length[i] {
			dd = math.Min(dd, r2.Norm2(pb))
		} else {
			dd = math.Min(dd, dn*dn)
		}

		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of segment
				wn++
			}
		} else if b.Y <= p.Y && dn > 0 { // downward crossing, p right of segment
			wn--
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Bounds returns the bounding box of a 2d polygon.
func (s *polygon) Bounds() r2.Box {
	return s.bb
}

// SignedArea returns the shoelace area of the closed loop through vertex.
// It is positive for counterclockwise traversal.
func SignedArea(vertex turbo2d.Profile) float64 {
	n := len(vertex)
	if n < 3 {
		return 0
	}
	var a float64
	for i := 0; i < n; i++ {
		p, q := vertex[i], vertex[(i+1)%n]
		a += r2.Cross(p, q)
	}
	return a / 2
}

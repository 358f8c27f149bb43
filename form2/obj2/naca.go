package obj2

import (
	"fmt"
	"math"
	"strconv"

	"github.com/soypat/turbo2d"
	"github.com/soypat/turbo2d/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// NACA4 defines a NACA 4-digit airfoil section.
// https://en.wikipedia.org/wiki/NACA_airfoil#Four-digit_series
type NACA4 struct {
	Camber    float64 // maximum camber as a fraction of chord (first digit / 100)
	CamberPos float64 // chordwise position of maximum camber (second digit / 10)
	Thickness float64 // maximum thickness as a fraction of chord (last two digits / 100)
	Chord     float64 // chord length
	Stagger   float64 // clockwise rotation about the leading edge (radians)
	Points    int     // samples per surface
}

// ParseNACA4 parses a four digit designation such as "2412".
// Chord defaults to 1 and Points to 40.
func ParseNACA4(code string) (NACA4, error) {
	if len(code) != 4 {
		return NACA4{}, fmt.Errorf("naca designation %q: want 4 digits", code)
	}
	m, err := strconv.Atoi(code[:1])
	if err != nil {
		return NACA4{}, fmt.Errorf("naca designation %q: %w", code, err)
	}
	p, err := strconv.Atoi(code[1:2])
	if err != nil {
		return NACA4{}, fmt.Errorf("naca designation %q: %w", code, err)
	}
	t, err := strconv.Atoi(code[2:])
	if err != nil {
		return NACA4{}, fmt.Errorf("naca designation %q: %w", code, err)
	}
	return NACA4{
		Camber:    float64(m) / 100,
		CamberPos: float64(p) / 10,
		Thickness: float64(t) / 100,
		Chord:     1,
		Points:    40,
	}, nil
}

// Validate checks the section parameters.
func (a NACA4) Validate() error {
	if err := turbo2d.Positive("Chord", a.Chord); err != nil {
		return err
	}
	if !(a.Thickness > 0 && a.Thickness < 1) {
		return &turbo2d.InvalidParameterError{Name: "Thickness", Value: a.Thickness, Reason: "must be in (0, 1)"}
	}
	if a.Camber < 0 || a.Camber >= 0.1 {
		return &turbo2d.InvalidParameterError{Name: "Camber", Value: a.Camber, Reason: "must be in [0, 0.1)"}
	}
	if a.Camber > 0 && !(a.CamberPos > 0 && a.CamberPos < 1) {
		return &turbo2d.InvalidParameterError{Name: "CamberPos", Value: a.CamberPos, Reason: "must be in (0, 1) for cambered sections"}
	}
	if a.Points < 2 {
		return &turbo2d.InvalidParameterError{Name: "Points", Value: float64(a.Points), Reason: "need at least 2 points per surface"}
	}
	return nil
}

// Coords returns the section outline in its local frame: the leading edge
// at the origin, the upper surface from trailing edge to leading edge and
// then the lower surface back to the trailing edge. The trailing edge is
// closed so the first and last points coincide.
func (a NACA4) Coords() (turbo2d.Profile, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	n := a.Points
	upper := make(d2.Set, n)
	lower := make(d2.Set, n)
	for i := 0; i < n; i++ {
		// cosine spacing clusters points at both edges
		xc := (1 - math.Cos(math.Pi*float64(i)/float64(n-1))) / 2
		yt := a.thickness(xc)
		yc, dyc := a.camber(xc)
		sinT, cosT := math.Sincos(math.Atan(dyc))
		upper[n-1-i] = r2.Scale(a.Chord, r2.Vec{X: xc - yt*sinT, Y: yc + yt*cosT})
		lower[i] = r2.Scale(a.Chord, r2.Vec{X: xc + yt*sinT, Y: yc - yt*cosT})
	}
	// both surfaces share the leading edge point
	pts := append(upper, lower[1:]...)
	if a.Stagger != 0 {
		pts = d2.Rotate(-a.Stagger).ApplySet(pts)
	}
	return turbo2d.Profile(pts), nil
}

// thickness returns the half thickness at chord fraction x for a closed trailing edge.
func (a NACA4) thickness(x float64) float64 {
	return 5 * a.Thickness * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x - 0.1036*x*x*x*x)
}

// camber returns the mean line height and slope at chord fraction x.
func (a NACA4) camber(x float64) (yc, dyc float64) {
	m, p := a.Camber, a.CamberPos
	if m == 0 {
		return 0, 0
	}
	if x < p {
		return m / (p * p) * (2*p*x - x*x), 2 * m / (p * p) * (p - x)
	}
	q := (1 - p) * (1 - p)
	return m / q * ((1 - 2*p) + 2*p*x - x*x), 2 * m / q * (p - x)
}

package obj2

import (
	"math"

	"github.com/soypat/turbo2d"
	"github.com/soypat/turbo2d/form2/must2"
	"github.com/soypat/turbo2d/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Firtree attachments
// A firtree (or dovetail) root locks a blade into a rotating disk. The 2D
// cross section is built from one side of the root: a dovetail fillet at the
// base followed by stacked teeth, each tooth being a lower flank line, an
// outer fillet arc, an upper flank line and an inner fillet arc. The side is
// mirrored about the y-axis and closed at the top by an arc of the disk
// radius. The finished contour has its disk contact line at y=0.

// FirtreeParams defines the scalar parameters of a firtree attachment.
// Angles are in radians, lengths in metres.
type FirtreeParams struct {
	Gamma       float64 // upper flank line angle
	Beta        float64 // lower flank line angle
	LowerFlank  float64 // lower flank line length
	UpperFlank  float64 // upper flank line length
	InnerRadius float64 // inner fillet radius
	OuterRadius float64 // outer fillet radius
	DoveRadius  float64 // base dovetail radius
	MaxLength   float64 // top contact width
	Stages      int     // number of stacked teeth after the seed tooth
	DiskRadius  float64 // mating disk radius
}

// Validate returns an *turbo2d.InvalidParameterError for the first
// parameter outside its domain.
func (k FirtreeParams) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"LowerFlank", k.LowerFlank},
		{"UpperFlank", k.UpperFlank},
		{"InnerRadius", k.InnerRadius},
		{"OuterRadius", k.OuterRadius},
		{"DoveRadius", k.DoveRadius},
		{"MaxLength", k.MaxLength},
		{"DiskRadius", k.DiskRadius},
	} {
		if err := turbo2d.Positive(v.name, v.val); err != nil {
			return err
		}
	}
	if !(k.Gamma > 0 && k.Gamma < math.Pi/2) {
		return &turbo2d.InvalidParameterError{Name: "Gamma", Value: k.Gamma, Reason: "must be in (0, pi/2)"}
	}
	if !(k.Beta > 0 && k.Beta < math.Pi/2) {
		return &turbo2d.InvalidParameterError{Name: "Beta", Value: k.Beta, Reason: "must be in (0, pi/2)"}
	}
	if k.Stages < 1 {
		return &turbo2d.InvalidParameterError{Name: "Stages", Value: float64(k.Stages), Reason: "must be >= 1"}
	}
	if k.MaxLength > 2*k.DiskRadius {
		return &turbo2d.InvalidParameterError{Name: "MaxLength", Value: k.MaxLength, Reason: "top contact chord exceeds disk diameter"}
	}
	return nil
}

// FirtreeReference holds the reference geometry derived from FirtreeParams.
// All points are relative to the attachment origin at (0,0).
type FirtreeReference struct {
	OuterLowerTangent     r2.Vec // end of the lower flank line
	OuterUpperTangent     r2.Vec
	OuterTangentIntersect r2.Vec // anchor of the upper flank line
	OuterCenter           r2.Vec
	InnerLowerTangent     r2.Vec
	InnerUpperTangent     r2.Vec
	InnerCenter           r2.Vec
	DoveCenter            r2.Vec
	DoveLower             r2.Vec // lowest point of the dovetail circle
}

// Firtree is an immutable firtree attachment. Build a new one to change a parameter.
type Firtree struct {
	k   FirtreeParams
	ref FirtreeReference
}

// NewFirtree validates k and derives the attachment reference geometry.
func NewFirtree(k FirtreeParams) (*Firtree, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	sinG, cosG := math.Sincos(k.Gamma)
	sinB, cosB := math.Sincos(k.Beta)
	Ro, Ri := k.OuterRadius, k.InnerRadius

	var ref FirtreeReference
	// outer circle
	ref.OuterLowerTangent = r2.Vec{X: k.LowerFlank * cosB, Y: k.LowerFlank * sinB}
	ref.OuterUpperTangent = r2.Add(ref.OuterLowerTangent, r2.Vec{Y: 2 * Ro * cosG})
	ref.OuterTangentIntersect = r2.Add(ref.OuterLowerTangent, r2.Vec{X: Ro * (1 - sinG*sinG) / sinG, Y: Ro * cosG})
	ref.OuterCenter = r2.Add(ref.OuterLowerTangent, r2.Vec{X: -Ro * sinG, Y: Ro * cosG})
	// inner circle
	ref.InnerLowerTangent = r2.Add(ref.OuterUpperTangent, r2.Vec{X: -k.UpperFlank * cosG, Y: k.UpperFlank * sinG})
	ref.InnerUpperTangent = r2.Add(ref.InnerLowerTangent, r2.Vec{Y: 2 * Ri * cosG})
	ref.InnerCenter = r2.Add(ref.InnerLowerTangent, r2.Vec{X: Ri * sinB, Y: Ri * cosB})
	// dove
	ref.DoveCenter = r2.Vec{X: k.DoveRadius * sinB, Y: -k.DoveRadius * cosB}
	ref.DoveLower = r2.Add(ref.DoveCenter, r2.Vec{Y: -k.DoveRadius})
	return &Firtree{k: k, ref: ref}, nil
}

// Params returns the parameters the attachment was built from.
func (f *Firtree) Params() FirtreeParams { return f.k }

// Reference returns the derived reference geometry.
func (f *Firtree) Reference() FirtreeReference { return f.ref }

// Stage returns one tooth as an open polyline starting at the origin. An end
// stage omits the inner fillet arc since the top contact arc follows it.
func (f *Firtree) Stage(n int, end bool) (turbo2d.Profile, error) {
	if err := checkArcPoints(n); err != nil {
		return nil, err
	}
	return f.stage(n, end), nil
}

// DoveArc returns the base dovetail fillet from its lowest point up to the origin.
func (f *Firtree) DoveArc(n int) (turbo2d.Profile, error) {
	if err := checkArcPoints(n); err != nil {
		return nil, err
	}
	return f.doveArc(n), nil
}

// TopArc returns the disk contact arc from start to start+(MaxLength, 0).
// The arc bulges upwards with radius DiskRadius.
func (f *Firtree) TopArc(start r2.Vec, n int) (turbo2d.Profile, error) {
	if err := checkArcPoints(n); err != nil {
		return nil, err
	}
	return f.topArc(start, n), nil
}

// Side returns the stacked teeth of one side: a seed tooth followed by
// Stages teeth, the last of them an end stage. The dovetail is not included.
func (f *Firtree) Side(n int) (turbo2d.Profile, error) {
	if err := checkArcPoints(n); err != nil {
		return nil, err
	}
	return f.side(n), nil
}

// Coords returns the closed, symmetric contour of the attachment with n
// points per arc. The first and last points are equal and the maximum y
// coordinate is exactly 0.
func (f *Firtree) Coords(n int) (turbo2d.Profile, error) {
	if err := checkArcPoints(n); err != nil {
		return nil, err
	}
	left := f.leftSide(n)
	right := left.MirrorX()
	top := f.topArc(left.Last(), n)
	// left's last point is top's start, top's end is right's first point.
	contour := turbo2d.NewChain(left).
		Join(top).
		Join(right).
		Append(left.First()).
		Profile()
	ymax := d2.Set(contour).Max().Y
	return contour.Translate(r2.Vec{Y: -ymax}), nil
}

// SDF returns the signed distance function of the closed contour.
func (f *Firtree) SDF(n int) (turbo2d.SDF2, error) {
	c, err := f.Coords(n)
	if err != nil {
		return nil, err
	}
	return must2.Polygon(c), nil
}

func (f *Firtree) stage(n int, end bool) turbo2d.Profile {
	ref := &f.ref
	yl := must2.Linspace(0, ref.OuterLowerTangent.Y, 2, false)
	lowerFlank := must2.LineThroughOriginTo(yl, ref.OuterLowerTangent)
	outerArc := must2.Arc(ref.OuterLowerTangent, ref.OuterUpperTangent, f.k.OuterRadius, ref.OuterCenter, n, turbo2d.Clockwise, false)

	yu := must2.Linspace(ref.OuterUpperTangent.Y, ref.InnerLowerTangent.Y, 2, false)
	upperFlank := must2.LineThroughPoints(yu, ref.OuterTangentIntersect, ref.OuterUpperTangent)

	// every segment is open at its end so the next one supplies the joint
	c := turbo2d.NewChain(lowerFlank).Append(outerArc...).Append(upperFlank...)
	if !end {
		innerArc := must2.Arc(ref.InnerLowerTangent, ref.InnerUpperTangent, f.k.InnerRadius, ref.InnerCenter, n, turbo2d.CounterClockwise, true)
		c.Append(innerArc...)
	}
	return c.Profile()
}

func (f *Firtree) doveArc(n int) turbo2d.Profile {
	return must2.Arc(f.ref.DoveLower, r2.Vec{}, f.k.DoveRadius, f.ref.DoveCenter, n, turbo2d.CounterClockwise, true)
}

func (f *Firtree) topArc(start r2.Vec, n int) turbo2d.Profile {
	half := f.k.MaxLength / 2
	halfSector := math.Asin(half / f.k.DiskRadius)
	sagitta := f.k.DiskRadius - half/math.Tan(halfSector)
	end := r2.Add(start, r2.Vec{X: f.k.MaxLength})
	center := r2.Vec{X: start.X + half, Y: start.Y - f.k.DiskRadius + sagitta}
	return must2.Arc(start, end, f.k.DiskRadius, center, n, turbo2d.Clockwise, true)
}

func (f *Firtree) side(n int) turbo2d.Profile {
	stage := f.stage(n, false)
	c := turbo2d.NewChain(stage)
	for i := 0; i < f.k.Stages; i++ {
		next := stage
		if i == f.k.Stages-1 {
			next = f.stage(n, true)
		}
		// each tooth starts where the previous one ends
		c.JoinAt(next)
	}
	return c.Profile()
}

// leftSide returns dovetail plus stacked teeth, offset so the top end sits
// at x = -MaxLength/2.
func (f *Firtree) leftSide(n int) turbo2d.Profile {
	side := f.side(n)
	// the dove arc ends at the origin, where the side starts.
	left := turbo2d.NewChain(f.doveArc(n)).Join(side).Profile()
	offset := r2.Vec{X: -side.Last().X - f.k.MaxLength/2}
	return left.Translate(offset)
}

func checkArcPoints(n int) error {
	if n < 2 {
		return &turbo2d.InvalidParameterError{Name: "points", Value: float64(n), Reason: "need at least 2 points per arc"}
	}
	return nil
}

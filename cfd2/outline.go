package cfd2

import (
	"fmt"
	"runtime"

	"github.com/soypat/turbo2d"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// RowOutline builds the flow-path domain around blades adjacent passages
// of row at the given station. The domain spans leadGap upstream of the
// leading point and trailGap downstream of the trailing point; its height
// is blades times the row spacing. The boundary follows the blade's rise
// from leading to trailing point so the passages stay periodic.
//
// Top outline, left to right:
//
//	(0, h/2) (lg, h/2) (lg+w, h/2+dy) (lg+w+tg, h/2+dy)
//
// The bottom outline is the same chain shifted down by h, right to left.
func RowOutline(row BladeRow, station int, leadGap, trailGap float64, blades int) (Geometry, error) {
	if blades < 1 {
		return Geometry{}, &turbo2d.InvalidParameterError{Name: "blades", Value: float64(blades), Reason: "must be >= 1"}
	}
	s := row.Spacing()
	if err := turbo2d.Positive("spacing", s); err != nil {
		return Geometry{}, err
	}
	if leadGap < 0 || trailGap < 0 {
		return Geometry{}, &turbo2d.InvalidParameterError{Name: "gap", Value: min(leadGap, trailGap), Reason: "must be >= 0"}
	}
	foil, err := row.AirfoilCoordinates(station)
	if err != nil {
		return Geometry{}, fmt.Errorf("station %d: %w", station, err)
	}
	if len(foil) < 2 {
		return Geometry{}, turbo2d.ErrMsg("airfoil needs at least 2 points")
	}
	lead, trail := extrema(foil)
	h := s * float64(blades)
	w := trail.X - lead.X
	dy := trail.Y - lead.Y

	top := turbo2d.Profile{
		{X: 0, Y: h / 2},
		{X: leadGap, Y: h / 2},
		{X: leadGap + w, Y: h/2 + dy},
		{X: leadGap + w + trailGap, Y: h/2 + dy},
	}
	bottom := make(turbo2d.Profile, len(top))
	for i, p := range top {
		bottom[len(top)-1-i] = r2.Vec{X: p.X, Y: p.Y - h}
	}

	// first copy leading point sits half a passage below the top boundary.
	offset := r2.Vec{X: leadGap - lead.X, Y: h/2 - s/2 - lead.Y}
	airfoils := make([]turbo2d.Profile, blades)
	for i := range airfoils {
		airfoils[i] = turbo2d.Profile(foil).Translate(r2.Add(offset, r2.Vec{Y: -float64(i) * s}))
	}
	return Geometry{TopOutline: top, BottomOutline: bottom, Airfoils: airfoils}, nil
}

// StageOutline builds the rotor and stator domains of stage and places the
// stator immediately downstream of the rotor. The stator's trailing gap is
// half of next's stage gap. The stator is shifted vertically so the leading
// point of its first blade lines up with the trailing point of the rotor's
// first blade.
func StageOutline(stage, next Stage, station, blades int) (Geometry, error) {
	rotor, err := RowOutline(stage.Rotor(), station, stage.StageGap()/2, stage.RowGap()/2, blades)
	if err != nil {
		return Geometry{}, fmt.Errorf("rotor: %w", err)
	}
	stator, err := RowOutline(stage.Stator(), station, stage.RowGap()/2, next.StageGap()/2, blades)
	if err != nil {
		return Geometry{}, fmt.Errorf("stator: %w", err)
	}
	_, rotorTrail := extrema(rotor.Airfoils[0])
	statorLead, _ := extrema(stator.Airfoils[0])
	offset := r2.Vec{
		X: rotor.TopOutline.Bounds().Max.X,
		Y: rotorTrail.Y - statorLead.Y,
	}
	stator = stator.Translate(offset)
	return Geometry{
		TopOutline:    append(rotor.TopOutline, stator.TopOutline...),
		BottomOutline: append(stator.BottomOutline, rotor.BottomOutline...),
		Airfoils:      append(rotor.Airfoils, stator.Airfoils...),
	}, nil
}

// AssemblyOutline builds the domain of every stage of asm and stitches them
// in flow order. Each stage is paired with its successor, the last stage
// with itself. Stage outlines are computed concurrently; the stitching is
// sequential. Each stage is shifted right to the maximum x reached so far
// and vertically so its top outline starts where the previous one ended.
// Joint points are kept in both chains.
func AssemblyOutline(asm Assembly, station, blades int) (Geometry, error) {
	stages := asm.Stages()
	if len(stages) == 0 {
		return Geometry{}, &turbo2d.InvalidParameterError{Name: "stages", Value: 0, Reason: "assembly has no stages"}
	}
	outlines := make([]Geometry, len(stages))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range stages {
		next := stages[i]
		if i+1 < len(stages) {
			next = stages[i+1]
		}
		g.Go(func() error {
			geo, err := StageOutline(stages[i], next, station, blades)
			if err != nil {
				return fmt.Errorf("stage %d: %w", i, err)
			}
			outlines[i] = geo
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Geometry{}, err
	}

	out := Geometry{
		TopOutline:    outlines[0].TopOutline.Clone(),
		BottomOutline: outlines[0].BottomOutline.Clone(),
		Airfoils:      append([]turbo2d.Profile(nil), outlines[0].Airfoils...),
	}
	xmax := out.TopOutline.Bounds().Max.X
	for _, geo := range outlines[1:] {
		offset := r2.Vec{X: xmax, Y: out.TopOutline.Last().Y - geo.TopOutline.First().Y}
		geo = geo.Translate(offset)
		out.TopOutline = append(out.TopOutline, geo.TopOutline...)
		out.BottomOutline = append(geo.BottomOutline, out.BottomOutline...)
		out.Airfoils = append(out.Airfoils, geo.Airfoils...)
		xmax = max(xmax, geo.TopOutline.Bounds().Max.X)
	}
	return out, nil
}

// extrema returns the leading (minimum x) and trailing (maximum x) points
// of an airfoil. Ties resolve to the first occurrence.
func extrema(foil []r2.Vec) (lead, trail r2.Vec) {
	xs := make([]float64, len(foil))
	for i, p := range foil {
		xs[i] = p.X
	}
	return foil[floats.MinIdx(xs)], foil[floats.MaxIdx(xs)]
}

package cfd2

import (
	"fmt"

	"github.com/soypat/turbo2d"
	"gonum.org/v1/gonum/spatial/r2"
)

// BladeRow is a row of identical blades spaced circumferentially.
// AirfoilCoordinates returns the blade section at a spanwise station in the
// row's local frame. Implementations must be safe for concurrent use.
type BladeRow interface {
	Spacing() float64
	AirfoilCoordinates(station int) ([]r2.Vec, error)
}

// Stage is a rotor row followed by a stator row.
type Stage interface {
	Rotor() BladeRow
	Stator() BladeRow
	// StageGap is the axial gap upstream of the rotor.
	StageGap() float64
	// RowGap is the axial gap between rotor and stator.
	RowGap() float64
}

// Assembly is an ordered sequence of stages.
type Assembly interface {
	Stages() []Stage
}

// Row is a BladeRow with precomputed sections, one per station.
type Row struct {
	Pitch    float64
	Sections [][]r2.Vec
}

var _ BladeRow = (*Row)(nil)

// Spacing returns the row pitch.
func (r *Row) Spacing() float64 { return r.Pitch }

// AirfoilCoordinates returns a copy of the section at station.
func (r *Row) AirfoilCoordinates(station int) ([]r2.Vec, error) {
	if station < 0 || station >= len(r.Sections) {
		return nil, &turbo2d.InvalidParameterError{
			Name:   "station",
			Value:  float64(station),
			Reason: fmt.Sprintf("row has %d stations", len(r.Sections)),
		}
	}
	return append([]r2.Vec(nil), r.Sections[station]...), nil
}

// StageParams is a Stage built from two rows and the axial gaps.
type StageParams struct {
	RotorRow  BladeRow
	StatorRow BladeRow
	Gap       float64 // axial gap upstream of the rotor
	Clearance float64 // axial gap between rotor and stator
}

var _ Stage = StageParams{}

func (s StageParams) Rotor() BladeRow { return s.RotorRow }
func (s StageParams) Stator() BladeRow { return s.StatorRow }
func (s StageParams) StageGap() float64 { return s.Gap }
func (s StageParams) RowGap() float64 { return s.Clearance }

// Machine is an Assembly of stages in flow order.
type Machine []Stage

// Stages returns the machine's stages.
func (m Machine) Stages() []Stage { return m }

// Geometry is a flow-path domain: an upper and a lower boundary chain and
// the blade sections inside it. TopOutline runs upstream to downstream and
// BottomOutline runs back, so TopOutline followed by BottomOutline traces
// the domain boundary in one pass. The closing edge from the bottom chain's
// last point to the top chain's first point is the inlet.
type Geometry struct {
	TopOutline    turbo2d.Profile
	BottomOutline turbo2d.Profile
	Airfoils      []turbo2d.Profile
}

// Coords returns the top outline followed by the bottom outline.
func (g Geometry) Coords() turbo2d.Profile {
	out := make(turbo2d.Profile, 0, len(g.TopOutline)+len(g.BottomOutline))
	out = append(out, g.TopOutline...)
	return append(out, g.BottomOutline...)
}

// Translate returns a copy of g with every point offset by v.
func (g Geometry) Translate(v r2.Vec) Geometry {
	out := Geometry{
		TopOutline:    g.TopOutline.Translate(v),
		BottomOutline: g.BottomOutline.Translate(v),
		Airfoils:      make([]turbo2d.Profile, len(g.Airfoils)),
	}
	for i, a := range g.Airfoils {
		out.Airfoils[i] = a.Translate(v)
	}
	return out
}

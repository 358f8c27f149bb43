// Package config loads attachment and machine parameter files.
// Files are YAML. Angles may be given in radians (gamma) or degrees
// (gamma_deg), not both.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/soypat/turbo2d"
	"github.com/soypat/turbo2d/cfd2"
	"github.com/soypat/turbo2d/form2/obj2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Attachment is the file representation of obj2.FirtreeParams.
type Attachment struct {
	Gamma       *float64 `yaml:"gamma"`
	GammaDeg    *float64 `yaml:"gamma_deg"`
	Beta        *float64 `yaml:"beta"`
	BetaDeg     *float64 `yaml:"beta_deg"`
	LowerFlank  float64  `yaml:"lower_flank"`
	UpperFlank  float64  `yaml:"upper_flank"`
	InnerRadius float64  `yaml:"inner_radius"`
	OuterRadius float64  `yaml:"outer_radius"`
	DoveRadius  float64  `yaml:"dove_radius"`
	MaxLength   float64  `yaml:"max_length"`
	Stages      int      `yaml:"stages"`
	DiskRadius  float64  `yaml:"disk_radius"`
}

// Params converts the file values and validates them.
func (a Attachment) Params() (obj2.FirtreeParams, error) {
	gamma, err := angle("gamma", a.Gamma, a.GammaDeg)
	if err != nil {
		return obj2.FirtreeParams{}, err
	}
	beta, err := angle("beta", a.Beta, a.BetaDeg)
	if err != nil {
		return obj2.FirtreeParams{}, err
	}
	k := obj2.FirtreeParams{
		Gamma:       gamma,
		Beta:        beta,
		LowerFlank:  a.LowerFlank,
		UpperFlank:  a.UpperFlank,
		InnerRadius: a.InnerRadius,
		OuterRadius: a.OuterRadius,
		DoveRadius:  a.DoveRadius,
		MaxLength:   a.MaxLength,
		Stages:      a.Stages,
		DiskRadius:  a.DiskRadius,
	}
	return k, k.Validate()
}

// Machine is the file representation of a cfd2.Machine.
type Machine struct {
	Stages []Stage `yaml:"stages"`
}

// Stage holds the rows and axial gaps of one stage.
type Stage struct {
	StageGap float64 `yaml:"stage_gap"`
	RowGap   float64 `yaml:"row_gap"`
	Rotor    Row     `yaml:"rotor"`
	Stator   Row     `yaml:"stator"`
}

// Row describes a blade row either by a NACA 4-digit designation or by
// explicit sections given as lists of [x, y] pairs, one list per station.
type Row struct {
	Pitch      float64       `yaml:"pitch"`
	NACA       string        `yaml:"naca"`
	Chord      float64       `yaml:"chord"`
	Stagger    *float64      `yaml:"stagger"`
	StaggerDeg *float64      `yaml:"stagger_deg"`
	Points     int           `yaml:"points"`
	Sections   [][][]float64 `yaml:"sections"`
}

// Row builds the blade row.
func (r Row) Row() (*cfd2.Row, error) {
	if err := turbo2d.Positive("pitch", r.Pitch); err != nil {
		return nil, err
	}
	switch {
	case r.NACA != "" && len(r.Sections) > 0:
		return nil, errors.New("row: naca and sections are mutually exclusive")
	case r.NACA != "":
		a, err := obj2.ParseNACA4(r.NACA)
		if err != nil {
			return nil, err
		}
		if r.Chord != 0 {
			a.Chord = r.Chord
		}
		if r.Points != 0 {
			a.Points = r.Points
		}
		if r.Stagger != nil || r.StaggerDeg != nil {
			a.Stagger, err = angle("stagger", r.Stagger, r.StaggerDeg)
			if err != nil {
				return nil, err
			}
		}
		c, err := a.Coords()
		if err != nil {
			return nil, err
		}
		return &cfd2.Row{Pitch: r.Pitch, Sections: [][]r2.Vec{c}}, nil
	case len(r.Sections) > 0:
		row := &cfd2.Row{Pitch: r.Pitch, Sections: make([][]r2.Vec, len(r.Sections))}
		for i, sec := range r.Sections {
			if len(sec) < 2 {
				return nil, fmt.Errorf("row: section %d has %d points, need at least 2", i, len(sec))
			}
			pts := make([]r2.Vec, len(sec))
			for j, xy := range sec {
				if len(xy) != 2 {
					return nil, fmt.Errorf("row: section %d point %d: want [x, y], got %v", i, j, xy)
				}
				pts[j] = r2.Vec{X: xy[0], Y: xy[1]}
			}
			row.Sections[i] = pts
		}
		return row, nil
	}
	return nil, errors.New("row: need naca or sections")
}

// Machine builds the stage sequence.
func (m Machine) Machine() (cfd2.Machine, error) {
	if len(m.Stages) == 0 {
		return nil, errors.New("machine has no stages")
	}
	out := make(cfd2.Machine, len(m.Stages))
	for i, s := range m.Stages {
		rotor, err := s.Rotor.Row()
		if err != nil {
			return nil, fmt.Errorf("stage %d rotor: %w", i, err)
		}
		stator, err := s.Stator.Row()
		if err != nil {
			return nil, fmt.Errorf("stage %d stator: %w", i, err)
		}
		out[i] = cfd2.StageParams{
			RotorRow:  rotor,
			StatorRow: stator,
			Gap:       s.StageGap,
			Clearance: s.RowGap,
		}
	}
	return out, nil
}

// LoadAttachment reads attachment parameters from a YAML file.
func LoadAttachment(path string) (obj2.FirtreeParams, error) {
	f, err := os.Open(path)
	if err != nil {
		return obj2.FirtreeParams{}, fmt.Errorf("failed to open attachment file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadAttachmentFromReader(f)
}

// LoadAttachmentFromReader reads attachment parameters from r.
func LoadAttachmentFromReader(r io.Reader) (obj2.FirtreeParams, error) {
	var a Attachment
	if err := decode(r, &a); err != nil {
		return obj2.FirtreeParams{}, fmt.Errorf("failed to decode attachment YAML: %w", err)
	}
	return a.Params()
}

// LoadMachine reads a machine description from a YAML file.
func LoadMachine(path string) (cfd2.Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open machine file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadMachineFromReader(f)
}

// LoadMachineFromReader reads a machine description from r.
func LoadMachineFromReader(r io.Reader) (cfd2.Machine, error) {
	var m Machine
	if err := decode(r, &m); err != nil {
		return nil, fmt.Errorf("failed to decode machine YAML: %w", err)
	}
	return m.Machine()
}

func decode(r io.Reader, v any) error {
	return yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(v)
}

// angle returns the angle in radians from exactly one of rad or deg.
func angle(name string, rad, deg *float64) (float64, error) {
	switch {
	case rad != nil && deg != nil:
		return 0, fmt.Errorf("%s and %s_deg are mutually exclusive", name, name)
	case rad != nil:
		return *rad, nil
	case deg != nil:
		return turbo2d.DtoR(*deg), nil
	}
	return 0, fmt.Errorf("missing %s (or %s_deg)", name, name)
}

// Package render writes profiles and flow-path outlines to image and CAD
// interchange files. It is a consumer of point sequences only.
package render

import (
	"errors"

	"github.com/soypat/turbo2d"
	"github.com/soypat/turbo2d/cfd2"
	"github.com/soypat/turbo2d/internal/d2"
)

// Layer is a named group of polylines drawn with the same style.
type Layer struct {
	Name  string
	Lines []turbo2d.Profile
}

// ProfileLayers returns a single layer holding p.
func ProfileLayers(name string, p turbo2d.Profile) []Layer {
	return []Layer{{Name: name, Lines: []turbo2d.Profile{p}}}
}

// GeometryLayers splits a flow-path geometry into an "outline" layer
// holding the closed domain boundary and an "airfoils" layer.
func GeometryLayers(g cfd2.Geometry) []Layer {
	boundary := g.Coords()
	if len(boundary) > 0 {
		boundary = append(boundary, boundary.First())
	}
	return []Layer{
		{Name: "outline", Lines: []turbo2d.Profile{boundary}},
		{Name: "airfoils", Lines: g.Airfoils},
	}
}

var errEmpty = errors.New("nothing to render")

// bounds returns the box enclosing every point of every layer.
func bounds(layers []Layer) (d2.Box, error) {
	var bb d2.Box
	first := true
	for _, l := range layers {
		for _, line := range l.Lines {
			if len(line) == 0 {
				continue
			}
			lb := d2.Set(line).Bounds()
			if first {
				bb, first = lb, false
				continue
			}
			bb = bb.Extend(lb)
		}
	}
	if first {
		return d2.Box{}, errEmpty
	}
	return bb, nil
}

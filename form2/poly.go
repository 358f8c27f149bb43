package form2

import (
	"github.com/soypat/turbo2d"
	"github.com/soypat/turbo2d/form2/must2"
)

// Polygon returns an SDF2 made from a closed set of line segments.
func Polygon(vertex turbo2d.Profile) (s turbo2d.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = recovered(a)
		}
	}()
	return must2.Polygon(vertex), err
}

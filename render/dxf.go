package render

import (
	"fmt"

	"github.com/yofu/dxf"
)

// CreateDXF writes the layers to a DXF file at path. Every polyline is
// written as consecutive LINE entities on a DXF layer of the same name.
func CreateDXF(path string, layers ...Layer) error {
	if _, err := bounds(layers); err != nil {
		return err
	}
	d := dxf.NewDrawing()
	for _, l := range layers {
		if _, err := d.AddLayer(l.Name, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("dxf layer %q: %w", l.Name, err)
		}
		for _, line := range l.Lines {
			for i := 1; i < len(line); i++ {
				a, b := line[i-1], line[i]
				if a == b {
					continue
				}
				if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
					return err
				}
			}
		}
	}
	return d.SaveAs(path)
}

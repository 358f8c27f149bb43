package render

import (
	"fmt"
	"io"

	"github.com/soypat/turbo2d/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// DefaultPlotSize is the side length of square plots.
const DefaultPlotSize = 6 * vg.Inch

// Plot draws the layers on equal-scaled axes. Each layer gets its own
// color and legend entry.
func Plot(title string, layers ...Layer) (*plot.Plot, error) {
	bb, err := bounds(layers)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for i, l := range layers {
		for j, line := range l.Lines {
			if len(line) == 0 {
				continue
			}
			pl, err := plotter.NewLine(xys(line))
			if err != nil {
				return nil, fmt.Errorf("layer %q line %d: %w", l.Name, j, err)
			}
			pl.LineStyle.Color = plotutil.Color(i)
			pl.LineStyle.Width = vg.Points(1)
			p.Add(pl)
			if j == 0 {
				p.Legend.Add(l.Name, pl)
			}
		}
	}
	sq := bb.Enlarge(r2.Scale(0.05, bb.Size())).Square()
	p.X.Min, p.X.Max = sq.Min.X, sq.Max.X
	p.Y.Min, p.Y.Max = sq.Min.Y, sq.Max.Y
	return p, nil
}

// CreatePlot plots the layers to path. The image format is taken from the
// file extension (png, svg, pdf, ...).
func CreatePlot(path, title string, layers ...Layer) error {
	p, err := Plot(title, layers...)
	if err != nil {
		return err
	}
	return p.Save(DefaultPlotSize, DefaultPlotSize, path)
}

// WritePlot plots the layers to w in the given format.
func WritePlot(w io.Writer, format, title string, layers ...Layer) error {
	p, err := Plot(title, layers...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultPlotSize, DefaultPlotSize, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func xys(pts []r2.Vec) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, v := range d2.Set(pts) {
		out[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return out
}

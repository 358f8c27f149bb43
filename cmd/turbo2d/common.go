package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/soypat/turbo2d/render"
)

var outFile string

// writeLayers writes the layers to outFile, choosing the format by file
// extension, or as whitespace separated point lists to w when outFile is
// empty.
func writeLayers(w io.Writer, title string, layers []render.Layer) error {
	if outFile == "" {
		return writePoints(w, layers)
	}
	ext := strings.ToLower(filepath.Ext(outFile))
	slog.Debug("writing output", "file", outFile, "format", ext)
	switch ext {
	case ".dxf":
		return render.CreateDXF(outFile, layers...)
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
		return render.CreatePlot(outFile, title, layers...)
	case ".txt", ".dat":
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		if err := writePoints(f, layers); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
	return fmt.Errorf("unsupported output format %q", ext)
}

// writePoints writes one "x y" line per point. Polylines are separated by
// a blank line and each layer is introduced by a "# name" comment line.
func writePoints(w io.Writer, layers []render.Layer) error {
	for _, l := range layers {
		if _, err := fmt.Fprintf(w, "# %s\n", l.Name); err != nil {
			return err
		}
		for _, line := range l.Lines {
			for _, p := range line {
				if _, err := fmt.Fprintf(w, "%.12g %.12g\n", p.X, p.Y); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

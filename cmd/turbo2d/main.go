// Command turbo2d builds blade attachment contours and flow-path outlines
// from YAML parameter files and writes them as point lists, plots or DXF.
package main

func main() {
	Execute()
}

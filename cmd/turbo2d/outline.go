package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/soypat/turbo2d/cfd2"
	"github.com/soypat/turbo2d/internal/config"
	"github.com/soypat/turbo2d/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// outlineCmd builds the flow-path outline of a machine.
var outlineCmd = &cobra.Command{
	Use:   "outline <machine.yaml>",
	Short: "Build the CFD flow-path outline of a blade assembly",
	Long: `Stitch per-row flow-path domains into a single outline for every stage
of the machine described in the YAML file. Each row domain covers --blades
adjacent blade passages at the given spanwise --station.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOutline(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(outlineCmd)

	outlineCmd.Flags().Int("blades", 1, "blade passages per row")
	outlineCmd.Flags().Int("station", 0, "spanwise station index")
	outlineCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file path (default: stdout)")
	_ = viper.BindPFlag("blades", outlineCmd.Flags().Lookup("blades"))
	_ = viper.BindPFlag("station", outlineCmd.Flags().Lookup("station"))
}

func runOutline(w io.Writer, path string) error {
	m, err := config.LoadMachine(path)
	if err != nil {
		return err
	}
	blades, station := viper.GetInt("blades"), viper.GetInt("station")
	slog.Debug("building outline", "stages", len(m), "blades", blades, "station", station)
	geo, err := cfd2.AssemblyOutline(m, station, blades)
	if err != nil {
		return fmt.Errorf("outline: %w", err)
	}
	slog.Info("outline built", "stages", len(m), "airfoils", len(geo.Airfoils),
		"boundary_points", len(geo.TopOutline)+len(geo.BottomOutline))
	return writeLayers(w, "flow-path outline", render.GeometryLayers(geo))
}

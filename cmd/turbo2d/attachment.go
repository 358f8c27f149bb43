package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/soypat/turbo2d/form2/obj2"
	"github.com/soypat/turbo2d/internal/config"
	"github.com/soypat/turbo2d/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// attachmentCmd builds a firtree attachment contour.
var attachmentCmd = &cobra.Command{
	Use:   "attachment <params.yaml>",
	Short: "Build a firtree attachment cross section",
	Long: `Build the closed cross section contour of a firtree blade attachment.
The contour is symmetric about x=0 and its disk contact line lies at y=0.

Output is chosen by the --output extension: .dxf for CAD, .png/.svg/.pdf
for a plot, .txt/.dat or no --output for an "x y" point list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAttachment(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(attachmentCmd)

	attachmentCmd.Flags().IntP("points", "n", 20, "points per fillet arc")
	attachmentCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file path (default: stdout)")
	_ = viper.BindPFlag("points", attachmentCmd.Flags().Lookup("points"))
}

func runAttachment(w io.Writer, path string) error {
	k, err := config.LoadAttachment(path)
	if err != nil {
		return err
	}
	f, err := obj2.NewFirtree(k)
	if err != nil {
		return fmt.Errorf("attachment: %w", err)
	}
	n := viper.GetInt("points")
	c, err := f.Coords(n)
	if err != nil {
		return fmt.Errorf("attachment: %w", err)
	}
	bb := c.Bounds()
	slog.Info("attachment built", "stages", k.Stages, "points", len(c),
		"width", bb.Max.X-bb.Min.X, "height", bb.Max.Y-bb.Min.Y)
	return writeLayers(w, "firtree attachment", render.ProfileLayers("attachment", c))
}

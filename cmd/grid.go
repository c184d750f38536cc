package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clutter-sim/clutter-sim/scene"
)

var (
	tableLength   float64
	tableWidth    float64
	tableHeight   float64
	gridSize      float64
	occupancyRate float64
	gridPadding   float64
	showPoints    int
)

// gridCmd dry-runs the position generator for a table placed at the origin
// and prints grid statistics, for tuning grid_size/occupancy_rate/padding
// without a scene file.
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Preview grid statistics for a table surface",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		surface := scene.Surface{
			Length:  tableLength,
			Width:   tableWidth,
			Height:  tableHeight,
			Padding: gridPadding,
		}
		cols, rows := surface.GridDims(gridSize)
		rng := scene.NewPartitionedRNG(scene.NewLayoutKey(seed))
		positions := scene.GeneratePositions(surface, gridSize, occupancyRate,
			rng.ForSubsystem(scene.SubsystemPositions))

		fmt.Printf("Usable surface : %.3f x %.3f m\n", surface.UsableLength(), surface.UsableWidth())
		fmt.Printf("Grid           : %dx%d = %d cells (%.2f m cells)\n", cols, rows, cols*rows, gridSize)
		fmt.Printf("Occupancy rate : %.2f\n", occupancyRate)
		fmt.Printf("Positions      : %d\n", len(positions))
		for i := 0; i < showPoints && i < len(positions); i++ {
			p := positions[i]
			fmt.Printf("  [%d] %.3f %.3f %.3f\n", i, p.X(), p.Y(), p.Z())
		}
	},
}

func init() {
	gridCmd.Flags().Float64Var(&tableLength, "length", 1.2, "Table length in meters")
	gridCmd.Flags().Float64Var(&tableWidth, "width", 0.8, "Table width in meters")
	gridCmd.Flags().Float64Var(&tableHeight, "height", 0.05, "Table plate height in meters")
	gridCmd.Flags().Float64Var(&gridSize, "grid-size", scene.DefaultGridSize, "Grid cell edge length in meters")
	gridCmd.Flags().Float64Var(&occupancyRate, "occupancy-rate", scene.DefaultOccupancyRate, "Fraction of cells that receive a position")
	gridCmd.Flags().Float64Var(&gridPadding, "padding", scene.DefaultPadding, "Edge margin in meters")
	gridCmd.Flags().IntVar(&showPoints, "show", 0, "Print the first N generated positions")

	rootCmd.AddCommand(gridCmd)
}

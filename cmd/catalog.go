package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/clutter-sim/clutter-sim/scene/catalog"
)

var catalogIndexPath string

// catalogCmd lists the categories and model counts of an asset index file.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List categories and models of an asset index",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cat, err := catalog.Load(catalogIndexPath)
		if err != nil {
			logrus.Fatalf("loading asset index: %v", err)
		}
		categories := cat.Categories()
		fmt.Printf("%d categories\n", len(categories))
		for _, name := range categories {
			fmt.Printf("%-20s %d models\n", name, len(cat.Models(name)))
		}
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogIndexPath, "file", "", "Asset index YAML path (required)")
	_ = catalogCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(catalogCmd)
}

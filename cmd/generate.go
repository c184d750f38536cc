package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/clutter-sim/clutter-sim/scene"
	"github.com/clutter-sim/clutter-sim/scene/catalog"
)

var (
	configPath  string // Scene configuration YAML
	catalogPath string // Asset index YAML
	outputPath  string // Batch output destination ("" = stdout)
)

// generateCmd runs the layout engine over a scene configuration and emits
// the object batch as YAML.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a clutter-object batch from a scene configuration",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := scene.LoadSceneConfig(configPath)
		if err != nil {
			logrus.Fatalf("loading scene config: %v", err)
		}
		cat, err := catalog.Load(catalogPath)
		if err != nil {
			logrus.Fatalf("loading asset index: %v", err)
		}

		engine := scene.NewEngine(cat, seed)
		objects, report, err := engine.Generate(cfg)
		if err != nil {
			logrus.Fatalf("generating layout: %v", err)
		}
		report.Print()

		data, err := yaml.Marshal(objects)
		if err != nil {
			logrus.Fatalf("encoding object batch: %v", err)
		}
		if outputPath == "" {
			os.Stdout.Write(data)
			return
		}
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			logrus.Fatalf("writing object batch: %v", err)
		}
		logrus.Infof("wrote %d objects to %s", len(objects), outputPath)
	},
}

func init() {
	generateCmd.Flags().StringVar(&configPath, "config", "", "Scene configuration YAML path (required)")
	generateCmd.Flags().StringVar(&catalogPath, "catalog", "", "Asset index YAML path (required)")
	generateCmd.Flags().StringVar(&outputPath, "output", "", "Write the object batch here instead of stdout")
	_ = generateCmd.MarkFlagRequired("config")
	_ = generateCmd.MarkFlagRequired("catalog")

	rootCmd.AddCommand(generateCmd)
}

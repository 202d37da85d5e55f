package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	datasetPath string
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spacexdash",
	Short: "SpaceX launch records dashboard",
	Long: `SpaceX Launch Records Dashboard CLI

Serves an interactive dashboard of Falcon 9 landing outcomes
by launch site and payload mass, and inspects the launch dataset.

Usage:
  go run ./cmd/spacexdash [command]

Examples:
  go run ./cmd/spacexdash serve
  go run ./cmd/spacexdash summary --site "KSC LC-39A" --low 2000 --high 8000
  go run ./cmd/spacexdash check-data
  go run ./cmd/spacexdash render --out-dir charts --format svg`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "launch CSV path or URL (overrides DATASET_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

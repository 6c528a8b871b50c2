package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"droneops-deconflict/internal/mission"
	"droneops-deconflict/internal/scenario"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "droneops-deconflict",
	Short: "Drone trajectory deconfliction toolkit",
	Long:  "DroneOps-Deconflict checks planned drone missions against other drones' flight schedules and reports spatial and temporal conflicts.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadDataset resolves the --data / --demo pair into a validated dataset.
func loadDataset(dataPath, demo string) (*mission.Dataset, error) {
	if demo != "" {
		ds, ok := scenario.BuiltIn()[demo]
		if !ok {
			return nil, fmt.Errorf("unknown demo dataset %q", demo)
		}
		return &ds, nil
	}
	if dataPath == "" {
		return nil, fmt.Errorf("either --data or --demo is required")
	}
	return mission.Load(dataPath)
}

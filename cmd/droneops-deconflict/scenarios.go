package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"droneops-deconflict/internal/deconflict"
	"droneops-deconflict/internal/scenario"
)

var (
	scenariosData   string
	scenariosDemo   string
	scenariosBuffer float64

	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Evaluate a dataset's expected-outcome test scenarios",
	Long:  "scenarios runs every test scenario bundled with a dataset and compares the verdict against its expected status.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(scenariosData, scenariosDemo)
		if err != nil {
			return err
		}
		if len(ds.TestScenarios) == 0 {
			return fmt.Errorf("dataset has no test scenarios")
		}

		results := scenario.Run(ds, scenariosBuffer)
		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
				fmt.Printf("%s %s: %v\n", failStyle.Render("FAIL"), res.ScenarioID, res.Err)
				continue
			}
			marker := passStyle.Render("PASS")
			if !res.Pass {
				failed++
				marker = failStyle.Render("FAIL")
			}
			fmt.Printf("%s %s drone=%s expected=%q got=%q conflicts=%d\n",
				marker, res.ScenarioID, res.DroneID, res.Expected, res.Got, len(res.Details))
			if res.Description != "" {
				fmt.Printf("     %s\n", res.Description)
			}
		}
		fmt.Printf("%d/%d scenarios passed\n", len(results)-failed, len(results))
		if failed > 0 {
			cmd.SilenceUsage = true
			return fmt.Errorf("%d scenario(s) failed", failed)
		}
		return nil
	},
}

func init() {
	scenariosCmd.Flags().StringVar(&scenariosData, "data", "", "Path to mission dataset JSON")
	scenariosCmd.Flags().StringVar(&scenariosDemo, "demo", "", "Run a built-in demo dataset instead of --data")
	scenariosCmd.Flags().Float64Var(&scenariosBuffer, "buffer", deconflict.DefaultSafetyBuffer, "Safety buffer distance")
}

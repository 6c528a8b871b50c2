package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"droneops-deconflict/internal/config"
	"droneops-deconflict/internal/deconflict"
	"droneops-deconflict/internal/logging"
	"droneops-deconflict/internal/report"
	"droneops-deconflict/internal/viz"
)

var (
	checkData      string
	checkDemo      string
	checkConfig    string
	checkSchema    string
	checkBuffer    float64
	checkParallel  bool
	checkPrefilter bool
	checkJSON      bool
	checkLogFile   string
	checkHTML      string
	checkExitCode  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a mission against other drones' schedules",
	Long:  "check runs spatial and temporal conflict detection for the primary mission in a dataset and reports every conflict found.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(verbose)
		ctx := logging.NewContext(context.Background(), logger)

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ds, err := loadDataset(checkData, checkDemo)
		if err != nil {
			return err
		}

		runID := uuid.New().String()
		writer, cleanup, err := newWriters(cfg, checkJSON, runID)
		if err != nil {
			return err
		}
		defer cleanup()

		schedules := ds.Schedules
		if cfg.Prefilter {
			schedules = deconflict.FilterSchedules(ds.Mission, schedules, cfg.SafetyBuffer)
			logging.FromContext(ctx).Debug("prefilter applied",
				slog.Int("total", len(ds.Schedules)),
				slog.Int("candidates", len(schedules)))
		}

		check := deconflict.CheckMissionSafety
		if cfg.Parallel {
			check = deconflict.CheckMissionSafetyParallel
		}
		result := check(ds.Mission, schedules, cfg.SafetyBuffer)
		logging.FromContext(ctx).Info("check complete",
			slog.String("run_id", runID),
			slog.String("status", string(result.Status)),
			slog.Int("conflicts", len(result.Details)))

		if err := report.WriteAll(writer, result.Details); err != nil {
			return err
		}
		if rw, ok := writer.(report.ResultWriter); ok {
			if err := rw.WriteResult(result); err != nil {
				return err
			}
		}

		if cfg.Output.HTML != "" {
			if err := viz.RenderHTMLFile(cfg.Output.HTML, ds.Mission, ds.Schedules, result.Details); err != nil {
				return err
			}
			logging.FromContext(ctx).Info("visualization written", slog.String("path", cfg.Output.HTML))
		}

		if checkExitCode && result.Status == deconflict.StatusConflict {
			cmd.SilenceUsage = true
			return fmt.Errorf("conflict detected: %d record(s)", len(result.Details))
		}
		return nil
	},
}

// loadConfig reads the YAML config when given and layers flag overrides on
// top. Flags that were not set on the command line keep the config values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if checkConfig != "" {
		loaded, err := config.Load(checkConfig, checkSchema)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("buffer") {
		cfg.SafetyBuffer = checkBuffer
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = checkParallel
	}
	if cmd.Flags().Changed("prefilter") {
		cfg.Prefilter = checkPrefilter
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Output.LogFile = checkLogFile
	}
	if cmd.Flags().Changed("html") {
		cfg.Output.HTML = checkHTML
	}
	return cfg, nil
}

func init() {
	checkCmd.Flags().StringVar(&checkData, "data", "", "Path to mission dataset JSON")
	checkCmd.Flags().StringVar(&checkDemo, "demo", "", "Run a built-in demo dataset instead of --data")
	checkCmd.Flags().StringVar(&checkConfig, "config", "", "Path to deconfliction configuration YAML")
	checkCmd.Flags().StringVar(&checkSchema, "schema", "schemas/deconflict.cue", "Path to CUE schema file")
	checkCmd.Flags().Float64Var(&checkBuffer, "buffer", deconflict.DefaultSafetyBuffer, "Safety buffer distance")
	checkCmd.Flags().BoolVar(&checkParallel, "parallel", false, "Check schedules concurrently")
	checkCmd.Flags().BoolVar(&checkPrefilter, "prefilter", false, "Prune schedules with a spatial index before checking")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Emit JSON lines instead of colored output")
	checkCmd.Flags().StringVar(&checkLogFile, "log-file", "", "Path to export conflict records (JSONL)")
	checkCmd.Flags().StringVar(&checkHTML, "html", "", "Path to write the trajectory visualization HTML")
	checkCmd.Flags().BoolVar(&checkExitCode, "exit-code", false, "Exit non-zero when conflicts are found")
}

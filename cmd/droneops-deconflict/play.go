package main

import (
	"github.com/spf13/cobra"

	"droneops-deconflict/internal/deconflict"
	"droneops-deconflict/internal/playback"
	"droneops-deconflict/internal/report"
)

var (
	playData    string
	playDemo    string
	playBuffer  float64
	playFrames  int
	playFromLog string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Animate a mission in the terminal",
	Long:  "play steps through the mission window and shows every drone's interpolated position, highlighting frames where conflicts are active.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(playData, playDemo)
		if err != nil {
			return err
		}

		var details []deconflict.ConflictRecord
		if playFromLog != "" {
			details, err = report.ReadRecordsFile(playFromLog)
			if err != nil {
				return err
			}
		} else {
			details = deconflict.CheckMissionSafety(ds.Mission, ds.Schedules, playBuffer).Details
		}

		return playback.Run(ds.Mission, ds.Schedules, details, playBuffer, playFrames)
	},
}

func init() {
	playCmd.Flags().StringVar(&playData, "data", "", "Path to mission dataset JSON")
	playCmd.Flags().StringVar(&playDemo, "demo", "", "Run a built-in demo dataset instead of --data")
	playCmd.Flags().Float64Var(&playBuffer, "buffer", deconflict.DefaultSafetyBuffer, "Safety buffer distance")
	playCmd.Flags().IntVar(&playFrames, "frames", playback.DefaultFrameCount, "Number of playback frames across the mission window")
	playCmd.Flags().StringVar(&playFromLog, "from-log", "", "Replay conflict records from a JSONL log instead of recomputing")
}

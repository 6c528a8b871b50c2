// Conflict rows with greptime tags
package report

import (
	"os"
	"time"

	"droneops-deconflict/internal/deconflict"
)

// ConflictRow represents one conflict record for GreptimeDB.
type ConflictRow struct {
	RunID      string    `json:"run_id"`   // TAG
	DroneID    string    `json:"drone_id"` // TAG
	Type       string    `json:"type"`     // TAG
	Distance   float64   `json:"distance"` // FIELD
	X          float64   `json:"x"`        // FIELD
	Y          float64   `json:"y"`        // FIELD
	Z          float64   `json:"z"`        // FIELD
	TimeStart  float64   `json:"time_start"`  // FIELD, spatial overlap start
	TimeEnd    float64   `json:"time_end"`    // FIELD, spatial overlap end
	SampleTime float64   `json:"sample_time"` // FIELD, temporal sample instant
	Timestamp  time.Time `json:"ts"`          // TIME INDEX
}

// ConflictTableName holds the table name used when writing to GreptimeDB.
// It defaults to "drone_conflicts" but can be overridden via the
// GREPTIMEDB_TABLE environment variable.
var ConflictTableName = func() string {
	if env := os.Getenv("GREPTIMEDB_TABLE"); env != "" {
		return env
	}
	return "drone_conflicts"
}()

func (ConflictRow) TableName() string {
	return ConflictTableName
}

// NewConflictRow flattens a conflict record into a DB row. detectedAt is the
// wall-clock detection time shared by all rows of one run.
func NewConflictRow(runID string, rec deconflict.ConflictRecord, detectedAt time.Time) ConflictRow {
	row := ConflictRow{
		RunID:     runID,
		DroneID:   rec.DroneID,
		Type:      string(rec.Type),
		Distance:  rec.Distance,
		X:         rec.Location.X,
		Y:         rec.Location.Y,
		Z:         rec.Location.Z,
		Timestamp: detectedAt,
	}
	if rec.Spatial != nil {
		row.TimeStart = rec.Spatial.TimeRange.Start
		row.TimeEnd = rec.Spatial.TimeRange.End
	}
	if rec.Temporal != nil {
		row.SampleTime = rec.Temporal.Time
	}
	return row
}

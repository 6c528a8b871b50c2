// Conflict record types produced by the detector
package deconflict

import (
	"droneops-deconflict/internal/trajectory"
)

// ConflictType discriminates the two record variants.
type ConflictType string

const (
	// ConflictSpatial marks a segment-pair whose closest approach is under
	// the safety buffer during an overlapping time span.
	ConflictSpatial ConflictType = "spatial"
	// ConflictTemporal marks a sampled instant at which the interpolated
	// positions are under the safety buffer.
	ConflictTemporal ConflictType = "temporal"
)

// TimeRange is the overlapping time sub-range of a conflicting segment pair.
type TimeRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// SpatialDetail carries the payload specific to spatial conflicts.
type SpatialDetail struct {
	MissionSegment  [2]int    `json:"mission_segment"`
	ScheduleSegment [2]int    `json:"schedule_segment"`
	TimeRange       TimeRange `json:"time_range"`
}

// TemporalDetail carries the payload specific to temporal conflicts.
type TemporalDetail struct {
	Time float64 `json:"time"`
}

// ConflictRecord describes one detected separation violation. Exactly one of
// Spatial or Temporal is set, matching Type. Records are immutable outputs
// and hold no references back into the trajectories.
type ConflictRecord struct {
	Type     ConflictType        `json:"type"`
	DroneID  string              `json:"drone_id"`
	Distance float64             `json:"distance"`
	Location trajectory.Position `json:"location"`
	Spatial  *SpatialDetail      `json:"spatial,omitempty"`
	Temporal *TemporalDetail     `json:"temporal,omitempty"`
}

// Status is the overall mission safety verdict.
type Status string

const (
	StatusClear    Status = "clear"
	StatusConflict Status = "conflict detected"
)

// Result aggregates the verdict and all conflict records of one detection
// run. Status is StatusConflict iff Details is non-empty.
type Result struct {
	Status  Status           `json:"status"`
	Details []ConflictRecord `json:"details"`
}

package deconflict

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"droneops-deconflict/internal/trajectory"
)

// sampleCount is the fixed number of evenly spaced instants checked per
// schedule. Together with the 2-decimal dedup rounding it defines the
// temporal sampling contract; neither is configurable.
const sampleCount = 10

// sampleKey identifies a near-identical sample for duplicate suppression.
type sampleKey struct {
	x, y, z, t float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CheckTemporalConflicts samples interpolated positions of both drones at
// discrete instants across the intersection of the mission window and the
// schedule's time span, and reports every instant at which the separation
// falls under buffer. Near-identical samples are suppressed via a set keyed
// on the position and time rounded to 2 decimals, in sample order.
func CheckTemporalConflicts(mission trajectory.Mission, sched trajectory.Trajectory, window trajectory.TimeWindow, buffer float64) []ConflictRecord {
	schedStart, schedEnd := sched.Span()
	if len(sched.Waypoints) == 0 || !window.Overlaps(schedStart, schedEnd) {
		return nil
	}

	steps := make([]float64, sampleCount)
	floats.Span(steps, max(window.Start, schedStart), min(window.End, schedEnd))

	missionTraj := mission.Trajectory()
	seen := make(map[sampleKey]struct{})

	var conflicts []ConflictRecord
	for _, t := range steps {
		posM, ok := missionTraj.PositionAt(t)
		if !ok {
			continue
		}
		posS, ok := sched.PositionAt(t)
		if !ok {
			continue
		}
		dist := posM.Distance(posS)
		if dist >= buffer {
			continue
		}
		key := sampleKey{round2(posM.X), round2(posM.Y), round2(posM.Z), round2(t)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		conflicts = append(conflicts, ConflictRecord{
			Type:     ConflictTemporal,
			DroneID:  sched.DroneID,
			Distance: dist,
			Location: posM,
			Temporal: &TemporalDetail{Time: t},
		})
	}
	return conflicts
}

package deconflict

import (
	"droneops-deconflict/internal/geometry"
	"droneops-deconflict/internal/trajectory"
)

// CheckSpatialConflicts finds segment pairs of the mission and the schedule
// whose geometric closest approach falls under buffer while their time spans
// overlap. The reported location is the midpoint of the mission segment, a
// deliberate simplification over the true closest point.
func CheckSpatialConflicts(mission trajectory.Mission, sched trajectory.Trajectory, window trajectory.TimeWindow, buffer float64) []ConflictRecord {
	schedStart, schedEnd := sched.Span()
	if len(sched.Waypoints) == 0 || !window.Overlaps(schedStart, schedEnd) {
		return nil
	}

	var conflicts []ConflictRecord
	for i := 0; i+1 < len(mission.Waypoints); i++ {
		m1, m2 := mission.Waypoints[i], mission.Waypoints[i+1]
		for j := 0; j+1 < len(sched.Waypoints); j++ {
			s1, s2 := sched.Waypoints[j], sched.Waypoints[j+1]

			overlapStart := max(m1.Time, s1.Time)
			overlapEnd := min(m2.Time, s2.Time)
			if overlapStart > overlapEnd {
				continue
			}

			dist := geometry.ClosestDistanceBetweenSegments(m1.Vec(), m2.Vec(), s1.Vec(), s2.Vec())
			if dist >= buffer {
				continue
			}

			conflicts = append(conflicts, ConflictRecord{
				Type:     ConflictSpatial,
				DroneID:  sched.DroneID,
				Distance: dist,
				Location: trajectory.Position{
					X: (m1.X + m2.X) / 2,
					Y: (m1.Y + m2.Y) / 2,
					Z: (m1.Z + m2.Z) / 2,
				},
				Spatial: &SpatialDetail{
					MissionSegment:  [2]int{i, i + 1},
					ScheduleSegment: [2]int{j, j + 1},
					TimeRange:       TimeRange{Start: overlapStart, End: overlapEnd},
				},
			})
		}
	}
	return conflicts
}

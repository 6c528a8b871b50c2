// Frame precomputation for mission playback
package playback

import (
	"gonum.org/v1/gonum/floats"

	"droneops-deconflict/internal/deconflict"
	"droneops-deconflict/internal/trajectory"
)

// DefaultFrameCount is the number of instants sampled across the mission
// window when none is given.
const DefaultFrameCount = 60

// DroneState is one drone's situation at a playback instant.
type DroneState struct {
	DroneID  string
	Position trajectory.Position
	// Distance to the primary mission drone at the same instant. Negative
	// when either side has no position for the instant.
	Distance float64
	Inside   bool
}

// Frame holds every drone's state at one instant of the mission window.
type Frame struct {
	Time     float64
	Mission  trajectory.Position
	Drones   []DroneState
	Conflict bool
}

// BuildFrames samples the mission window at count evenly spaced instants and
// interpolates every trajectory at each. Conflict records mark the frames
// whose instant falls inside a conflict's active range.
func BuildFrames(mission trajectory.Mission, schedules []trajectory.Trajectory, details []deconflict.ConflictRecord, buffer float64, count int) []Frame {
	if count < 2 {
		count = 2
	}
	times := make([]float64, count)
	floats.Span(times, mission.TimeWindow.Start, mission.TimeWindow.End)
	step := times[1] - times[0]

	mt := mission.Trajectory()
	frames := make([]Frame, 0, count)
	for _, t := range times {
		f := Frame{Time: t}
		mPos, mOK := mt.PositionAt(t)
		if mOK {
			f.Mission = mPos
		}
		for _, sched := range schedules {
			st := DroneState{DroneID: sched.DroneID, Distance: -1}
			if pos, ok := sched.PositionAt(t); ok {
				st.Position = pos
				if mOK {
					st.Distance = mPos.Distance(pos)
					st.Inside = st.Distance < buffer
				}
			}
			f.Drones = append(f.Drones, st)
		}
		f.Conflict = conflictActiveAt(details, t, step)
		frames = append(frames, f)
	}
	return frames
}

func conflictActiveAt(details []deconflict.ConflictRecord, t, step float64) bool {
	for _, d := range details {
		switch {
		case d.Spatial != nil:
			if t >= d.Spatial.TimeRange.Start && t <= d.Spatial.TimeRange.End {
				return true
			}
		case d.Temporal != nil:
			half := step / 2
			if d.Temporal.Time >= t-half && d.Temporal.Time <= t+half {
				return true
			}
		}
	}
	return false
}

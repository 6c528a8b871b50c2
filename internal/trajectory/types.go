// Trajectory and waypoint types shared by the deconfliction engine
package trajectory

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Position holds a 3D point in mission coordinates (meters).
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec converts the position to a gonum vector.
func (p Position) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// FromVec converts a gonum vector back to a Position.
func FromVec(v r3.Vec) Position {
	return Position{X: v.X, Y: v.Y, Z: v.Z}
}

// Distance returns the Euclidean distance to another position.
func (p Position) Distance(other Position) float64 {
	return r3.Norm(r3.Sub(p.Vec(), other.Vec()))
}

// Waypoint is a timestamped 3D point on a flight path. Times across a
// trajectory are non-decreasing; equal consecutive times describe a hover.
type Waypoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Time float64 `json:"time"`
}

// Position returns the spatial part of the waypoint.
func (w Waypoint) Position() Position {
	return Position{X: w.X, Y: w.Y, Z: w.Z}
}

// Vec returns the spatial part of the waypoint as a gonum vector.
func (w Waypoint) Vec() r3.Vec {
	return r3.Vec{X: w.X, Y: w.Y, Z: w.Z}
}

// TimeWindow bounds the primary mission's period of interest.
type TimeWindow struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Overlaps reports whether [start,end] intersects the window.
func (tw TimeWindow) Overlaps(start, end float64) bool {
	return end >= tw.Start && start <= tw.End
}

// Trajectory is an ordered waypoint sequence flown by one drone.
type Trajectory struct {
	DroneID   string     `json:"drone_id,omitempty"`
	Waypoints []Waypoint `json:"waypoints"`
}

// Mission is the primary trajectory plus its time window.
type Mission struct {
	Waypoints  []Waypoint `json:"waypoints"`
	TimeWindow TimeWindow `json:"time_window"`
}

// Trajectory returns the mission path as a plain trajectory.
func (m Mission) Trajectory() Trajectory {
	return Trajectory{Waypoints: m.Waypoints}
}

// Span returns the minimum and maximum waypoint times. A single-waypoint
// trajectory spans a single instant.
func (t Trajectory) Span() (start, end float64) {
	if len(t.Waypoints) == 0 {
		return 0, 0
	}
	start, end = t.Waypoints[0].Time, t.Waypoints[0].Time
	for _, wp := range t.Waypoints[1:] {
		if wp.Time < start {
			start = wp.Time
		}
		if wp.Time > end {
			end = wp.Time
		}
	}
	return start, end
}

// SegmentCount returns the number of consecutive-waypoint segments.
func (t Trajectory) SegmentCount() int {
	if len(t.Waypoints) < 2 {
		return 0
	}
	return len(t.Waypoints) - 1
}

// SegmentAt returns the index of the first segment whose time interval
// contains t. Boundary instants shared by two segments resolve to the
// earlier one.
func (t Trajectory) SegmentAt(at float64) (int, bool) {
	for i := 0; i+1 < len(t.Waypoints); i++ {
		if t.Waypoints[i].Time <= at && at <= t.Waypoints[i+1].Time {
			return i, true
		}
	}
	return 0, false
}

// PositionAt returns the interpolated position at mission time at. A
// single-waypoint trajectory is a stationary point occupying only its own
// instant. ok is false when no segment contains at.
func (t Trajectory) PositionAt(at float64) (Position, bool) {
	if len(t.Waypoints) == 0 {
		return Position{}, false
	}
	if len(t.Waypoints) == 1 {
		if at != t.Waypoints[0].Time {
			return Position{}, false
		}
		return t.Waypoints[0].Position(), true
	}
	i, ok := t.SegmentAt(at)
	if !ok {
		return Position{}, false
	}
	return InterpolatePosition(t.Waypoints[i], t.Waypoints[i+1], at), true
}

// InterpolatePosition linearly interpolates the position between wp1 and
// wp2 at time t. Equal waypoint times collapse to wp1's position, and the
// interpolation fraction is clamped so the result never extrapolates past
// either endpoint.
func InterpolatePosition(wp1, wp2 Waypoint, t float64) Position {
	if wp1.Time == wp2.Time {
		return wp1.Position()
	}
	frac := (t - wp1.Time) / (wp2.Time - wp1.Time)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return Position{
		X: wp1.X + frac*(wp2.X-wp1.X),
		Y: wp1.Y + frac*(wp2.Y-wp1.Y),
		Z: wp1.Z + frac*(wp2.Z-wp1.Z),
	}
}

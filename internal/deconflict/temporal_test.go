package deconflict

import (
	"math"
	"testing"

	"droneops-deconflict/internal/trajectory"
)

func TestCheckTemporalConflictsParallelPaths(t *testing.T) {
	mission := straightMission()
	sched := trajectory.Trajectory{
		DroneID: "drone-2",
		Waypoints: []trajectory.Waypoint{
			{X: 0, Y: 5, Z: 0, Time: 0},
			{X: 100, Y: 5, Z: 0, Time: 10},
		},
	}

	conflicts := CheckTemporalConflicts(mission, sched, mission.TimeWindow, 10)
	if len(conflicts) != sampleCount {
		t.Fatalf("expected %d temporal conflicts, got %d", sampleCount, len(conflicts))
	}
	for _, c := range conflicts {
		if c.Type != ConflictTemporal || c.Temporal == nil {
			t.Fatalf("expected temporal payload, got %+v", c)
		}
		if math.Abs(c.Distance-5) > 1e-9 {
			t.Errorf("expected constant separation 5, got %f", c.Distance)
		}
	}
	// Samples span the window inclusively, in order.
	if first := conflicts[0].Temporal.Time; first != 0 {
		t.Errorf("expected first sample at 0, got %f", first)
	}
	if last := conflicts[len(conflicts)-1].Temporal.Time; last != 10 {
		t.Errorf("expected last sample at 10, got %f", last)
	}
}

func TestCheckTemporalConflictsDeduplicates(t *testing.T) {
	// Both drones hover at fixed points, so every sample rounds to the same
	// position; only the distinct sample times survive deduplication.
	mission := trajectory.Mission{
		Waypoints: []trajectory.Waypoint{
			{X: 0, Y: 0, Z: 0, Time: 0},
			{X: 0, Y: 0, Z: 0, Time: 10},
		},
		TimeWindow: trajectory.TimeWindow{Start: 0, End: 10},
	}
	sched := trajectory.Trajectory{
		DroneID: "hover-2",
		Waypoints: []trajectory.Waypoint{
			{X: 3, Y: 0, Z: 0, Time: 0},
			{X: 3, Y: 0, Z: 0, Time: 10},
		},
	}

	conflicts := CheckTemporalConflicts(mission, sched, mission.TimeWindow, 10)
	if len(conflicts) != sampleCount {
		t.Fatalf("distinct sample times should all survive, got %d", len(conflicts))
	}

	// Shrinking the window so consecutive samples round to the same
	// hundredth collapses them.
	mission.TimeWindow = trajectory.TimeWindow{Start: 0, End: 0.01}
	conflicts = CheckTemporalConflicts(mission, sched, mission.TimeWindow, 10)
	if len(conflicts) >= sampleCount {
		t.Errorf("expected rounded duplicates to be suppressed, got %d", len(conflicts))
	}
}

func TestCheckTemporalConflictsStationarySchedule(t *testing.T) {
	mission := straightMission()
	// A single-waypoint schedule sitting on the mission path at t=5.
	sched := trajectory.Trajectory{
		DroneID:   "hover",
		Waypoints: []trajectory.Waypoint{{X: 50, Y: 0, Z: 0, Time: 5}},
	}

	conflicts := CheckTemporalConflicts(mission, sched, mission.TimeWindow, 10)
	if len(conflicts) != 1 {
		t.Fatalf("expected one deduplicated conflict at the shared instant, got %d", len(conflicts))
	}
	c := conflicts[0]
	if c.Temporal.Time != 5 {
		t.Errorf("expected sample at t=5, got %f", c.Temporal.Time)
	}
	if c.Distance != 0 {
		t.Errorf("expected zero separation, got %f", c.Distance)
	}
	if c.Location != (trajectory.Position{X: 50, Y: 0, Z: 0}) {
		t.Errorf("unexpected mission position: %+v", c.Location)
	}
}

func TestCheckTemporalConflictsStationaryMission(t *testing.T) {
	// A single-waypoint mission occupies only its own instant, so samples
	// taken at other instants cannot report it.
	mission := trajectory.Mission{
		Waypoints:  []trajectory.Waypoint{{X: 50, Y: 0, Z: 0, Time: 5}},
		TimeWindow: trajectory.TimeWindow{Start: 0, End: 10},
	}
	sched := trajectory.Trajectory{
		DroneID: "passer",
		Waypoints: []trajectory.Waypoint{
			{X: 50, Y: 0, Z: 0, Time: 0},
			{X: 50, Y: 0, Z: 0, Time: 10},
		},
	}

	// Sample instants over [0,10] never land exactly on t=5.
	conflicts := CheckTemporalConflicts(mission, sched, mission.TimeWindow, 10)
	if len(conflicts) != 0 {
		t.Fatalf("expected no conflicts for instants the mission does not occupy, got %d", len(conflicts))
	}
}

func TestCheckTemporalConflictsWindowPrune(t *testing.T) {
	mission := straightMission()
	sched := trajectory.Trajectory{
		DroneID: "late",
		Waypoints: []trajectory.Waypoint{
			{X: 0, Y: 0, Z: 0, Time: 50},
			{X: 100, Y: 0, Z: 0, Time: 60},
		},
	}
	if got := CheckTemporalConflicts(mission, sched, mission.TimeWindow, 50); len(got) != 0 {
		t.Errorf("expected prune to drop out-of-window schedule, got %d", len(got))
	}
}

func TestCheckTemporalConflictsClearWhenSeparated(t *testing.T) {
	mission := straightMission()
	sched := trajectory.Trajectory{
		DroneID: "far",
		Waypoints: []trajectory.Waypoint{
			{X: 0, Y: 500, Z: 0, Time: 0},
			{X: 100, Y: 500, Z: 0, Time: 10},
		},
	}
	if got := CheckTemporalConflicts(mission, sched, mission.TimeWindow, 10); len(got) != 0 {
		t.Errorf("expected no conflicts at 500 units separation, got %d", len(got))
	}
}

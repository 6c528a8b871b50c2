package scenario

import (
	"droneops-deconflict/internal/mission"
	"droneops-deconflict/internal/trajectory"
)

// BuiltIn returns predefined demo datasets with expected outcomes. They
// double as quick-start inputs for the CLI and as regression fixtures.
func BuiltIn() map[string]mission.Dataset {
	straight := mission.Dataset{
		Mission: trajectory.Mission{
			Waypoints: []trajectory.Waypoint{
				{X: 0, Y: 0, Z: 100, Time: 0},
				{X: 500, Y: 0, Z: 100, Time: 50},
			},
			TimeWindow: trajectory.TimeWindow{Start: 0, End: 50},
		},
	}

	headOn := straight
	headOn.Schedules = []trajectory.Trajectory{{
		DroneID: "intruder-1",
		Waypoints: []trajectory.Waypoint{
			{X: 500, Y: 0, Z: 100, Time: 0},
			{X: 0, Y: 0, Z: 100, Time: 50},
		},
	}}
	headOn.TestScenarios = map[string]mission.Scenario{
		"head_on": {
			DroneID:     "intruder-1",
			Description: "Opposing drone flies the same corridor in reverse.",
			Expected:    "conflict detected",
		},
	}

	shadowing := straight
	shadowing.Schedules = []trajectory.Trajectory{{
		DroneID: "shadow-1",
		Waypoints: []trajectory.Waypoint{
			{X: 0, Y: 30, Z: 100, Time: 0},
			{X: 500, Y: 30, Z: 100, Time: 50},
		},
	}}
	shadowing.TestScenarios = map[string]mission.Scenario{
		"shadowing": {
			DroneID:     "shadow-1",
			Description: "Parallel escort 30 units off the mission path, inside the default buffer.",
			Expected:    "conflict detected",
		},
	}

	crossingClear := straight
	crossingClear.Schedules = []trajectory.Trajectory{{
		DroneID: "crossing-1",
		Waypoints: []trajectory.Waypoint{
			{X: 250, Y: -400, Z: 100, Time: 60},
			{X: 250, Y: 400, Z: 100, Time: 120},
		},
	}}
	crossingClear.TestScenarios = map[string]mission.Scenario{
		"crossing_clear": {
			DroneID:     "crossing-1",
			Description: "Crossing path flown only after the mission window closes.",
			Expected:    "clear",
		},
	}

	stationaryHover := straight
	stationaryHover.Schedules = []trajectory.Trajectory{{
		DroneID: "hover-1",
		Waypoints: []trajectory.Waypoint{
			{X: 250, Y: 10, Z: 100, Time: 25},
		},
	}}
	stationaryHover.TestScenarios = map[string]mission.Scenario{
		"stationary_hover": {
			DroneID:     "hover-1",
			Description: "Single-waypoint hover next to the corridor at mid-mission.",
			Expected:    "conflict detected",
		},
	}

	return map[string]mission.Dataset{
		"head-on":          headOn,
		"shadowing":        shadowing,
		"crossing-clear":   crossingClear,
		"stationary-hover": stationaryHover,
	}
}

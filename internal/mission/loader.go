// JSON dataset loading and validation for deconfliction runs
package mission

import (
	"encoding/json"
	"fmt"
	"os"

	"droneops-deconflict/internal/deconflict"
	"droneops-deconflict/internal/trajectory"
)

// Scenario is one expected-outcome regression case bundled with a dataset.
type Scenario struct {
	DroneID     string `json:"drone_id"`
	Description string `json:"description,omitempty"`
	Expected    string `json:"expected"`
}

// Dataset is the full input document: the primary mission, the other
// drones' schedules, and optional test scenarios.
type Dataset struct {
	Mission       trajectory.Mission      `json:"mission"`
	Schedules     []trajectory.Trajectory `json:"schedules"`
	TestScenarios map[string]Scenario     `json:"test_scenarios,omitempty"`
}

// Schedule returns the schedule flown by the given drone.
func (d *Dataset) Schedule(droneID string) (trajectory.Trajectory, bool) {
	for _, s := range d.Schedules {
		if s.DroneID == droneID {
			return s, true
		}
	}
	return trajectory.Trajectory{}, false
}

// Load reads and validates a dataset from a JSON file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a dataset from raw JSON.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate enforces the input contract the detector relies on: non-empty
// waypoint lists, identified schedules, an ordered time window,
// non-decreasing waypoint times, and well-formed scenario expectations.
func (d *Dataset) Validate() error {
	if len(d.Mission.Waypoints) == 0 {
		return fmt.Errorf("mission.waypoints cannot be empty")
	}
	if err := checkTimes("mission", d.Mission.Waypoints); err != nil {
		return err
	}
	if d.Mission.TimeWindow.End < d.Mission.TimeWindow.Start {
		return fmt.Errorf("mission.time_window end %.2f precedes start %.2f",
			d.Mission.TimeWindow.End, d.Mission.TimeWindow.Start)
	}
	for i, s := range d.Schedules {
		if s.DroneID == "" {
			return fmt.Errorf("schedule %d missing drone_id", i)
		}
		if len(s.Waypoints) == 0 {
			return fmt.Errorf("waypoints for %s cannot be empty", s.DroneID)
		}
		if err := checkTimes(s.DroneID, s.Waypoints); err != nil {
			return err
		}
	}
	for id, sc := range d.TestScenarios {
		if sc.DroneID == "" {
			return fmt.Errorf("scenario %s missing drone_id", id)
		}
		if _, ok := d.Schedule(sc.DroneID); !ok {
			return fmt.Errorf("scenario %s references unknown drone %s", id, sc.DroneID)
		}
		switch deconflict.Status(sc.Expected) {
		case deconflict.StatusClear, deconflict.StatusConflict:
		default:
			return fmt.Errorf("scenario %s has invalid expected status %q", id, sc.Expected)
		}
	}
	return nil
}

func checkTimes(owner string, wps []trajectory.Waypoint) error {
	for i := 1; i < len(wps); i++ {
		if wps[i].Time < wps[i-1].Time {
			return fmt.Errorf("waypoint times for %s must be non-decreasing (index %d)", owner, i)
		}
	}
	return nil
}

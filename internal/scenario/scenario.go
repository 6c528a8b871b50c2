// Scenario regression runner for expected-outcome datasets
package scenario

import (
	"fmt"
	"sort"

	"droneops-deconflict/internal/deconflict"
	"droneops-deconflict/internal/mission"
	"droneops-deconflict/internal/trajectory"
)

// Result is the outcome of evaluating one test scenario.
type Result struct {
	ScenarioID  string
	DroneID     string
	Description string
	Expected    deconflict.Status
	Got         deconflict.Status
	Pass        bool
	Details     []deconflict.ConflictRecord
	Err         error
}

// Run evaluates every test scenario of the dataset: the named drone's
// schedule is checked alone against the mission and the verdict compared to
// the expected status. Results come back in scenario ID order.
func Run(ds *mission.Dataset, buffer float64) []Result {
	ids := make([]string, 0, len(ds.TestScenarios))
	for id := range ds.TestScenarios {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		sc := ds.TestScenarios[id]
		res := Result{
			ScenarioID:  id,
			DroneID:     sc.DroneID,
			Description: sc.Description,
			Expected:    deconflict.Status(sc.Expected),
		}
		sched, ok := ds.Schedule(sc.DroneID)
		if !ok {
			res.Err = fmt.Errorf("drone %s not found in schedules", sc.DroneID)
			results = append(results, res)
			continue
		}
		verdict := deconflict.CheckMissionSafety(ds.Mission, []trajectory.Trajectory{sched}, buffer)
		res.Got = verdict.Status
		res.Details = verdict.Details
		res.Pass = res.Got == res.Expected
		results = append(results, res)
	}
	return results
}

// AllPassed reports whether every scenario matched its expected status.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if r.Err != nil || !r.Pass {
			return false
		}
	}
	return true
}

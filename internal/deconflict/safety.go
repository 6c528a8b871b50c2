package deconflict

import (
	"sync"

	"droneops-deconflict/internal/trajectory"
)

// DefaultSafetyBuffer is the minimum allowed separation in length units
// when no buffer is configured.
const DefaultSafetyBuffer = 50.0

// CheckMissionSafety runs the spatial and temporal checks against every
// schedule and aggregates the records. Per schedule, spatial records come
// before temporal ones; schedules are processed in input order. The status
// is StatusConflict iff any record was produced.
func CheckMissionSafety(mission trajectory.Mission, schedules []trajectory.Trajectory, buffer float64) Result {
	var details []ConflictRecord
	for _, sched := range schedules {
		details = append(details, checkSchedule(mission, sched, buffer)...)
	}
	return resultFor(details)
}

// CheckMissionSafetyParallel fans the per-schedule checks out over
// goroutines. Each schedule's records land in their input-order slot, so
// the merged output is identical to CheckMissionSafety.
func CheckMissionSafetyParallel(mission trajectory.Mission, schedules []trajectory.Trajectory, buffer float64) Result {
	perSchedule := make([][]ConflictRecord, len(schedules))
	var wg sync.WaitGroup
	for i, sched := range schedules {
		wg.Add(1)
		go func(i int, sched trajectory.Trajectory) {
			defer wg.Done()
			perSchedule[i] = checkSchedule(mission, sched, buffer)
		}(i, sched)
	}
	wg.Wait()

	var details []ConflictRecord
	for _, recs := range perSchedule {
		details = append(details, recs...)
	}
	return resultFor(details)
}

func checkSchedule(mission trajectory.Mission, sched trajectory.Trajectory, buffer float64) []ConflictRecord {
	records := CheckSpatialConflicts(mission, sched, mission.TimeWindow, buffer)
	return append(records, CheckTemporalConflicts(mission, sched, mission.TimeWindow, buffer)...)
}

func resultFor(details []ConflictRecord) Result {
	status := StatusClear
	if len(details) > 0 {
		status = StatusConflict
	}
	return Result{Status: status, Details: details}
}

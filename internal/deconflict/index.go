package deconflict

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"droneops-deconflict/internal/trajectory"
)

// minExtent keeps degenerate bounding boxes (hovering drones, axis-aligned
// straight lines) valid for the R-tree.
const minExtent = 1e-6

// scheduleEntry wraps one schedule for R-tree storage.
type scheduleEntry struct {
	index int
	traj  trajectory.Trajectory
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *scheduleEntry) Bounds() rtreego.Rect {
	return e.rect
}

// ScheduleIndex is a 3D R-tree over schedule bounding boxes, used to
// shortlist candidate schedules before the full pairwise checks.
type ScheduleIndex struct {
	tree *rtreego.Rtree
}

// NewScheduleIndex builds an index over the given schedules.
func NewScheduleIndex(schedules []trajectory.Trajectory) *ScheduleIndex {
	tree := rtreego.NewTree(3, 2, 8)
	for i, sched := range schedules {
		if len(sched.Waypoints) == 0 {
			continue
		}
		rect, err := boundingRect(sched.Waypoints, 0)
		if err != nil {
			continue
		}
		tree.Insert(&scheduleEntry{index: i, traj: sched, rect: rect})
	}
	return &ScheduleIndex{tree: tree}
}

// Candidates returns, in original input order, the schedules whose bounding
// box intersects the mission's box inflated by buffer on every side. A
// schedule outside that region can violate neither the spatial nor the
// temporal check, so dropping it never changes the verdict.
func (idx *ScheduleIndex) Candidates(mission trajectory.Mission, buffer float64) []trajectory.Trajectory {
	if len(mission.Waypoints) == 0 {
		return nil
	}
	rect, err := boundingRect(mission.Waypoints, buffer)
	if err != nil {
		return nil
	}
	matches := idx.tree.SearchIntersect(rect)
	entries := make([]*scheduleEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, m.(*scheduleEntry))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	out := make([]trajectory.Trajectory, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.traj)
	}
	return out
}

// FilterSchedules shortlists schedules near the mission path. It is a pure
// pre-filter for large schedule sets; CheckMissionSafety itself never
// consults it.
func FilterSchedules(mission trajectory.Mission, schedules []trajectory.Trajectory, buffer float64) []trajectory.Trajectory {
	return NewScheduleIndex(schedules).Candidates(mission, buffer)
}

func boundingRect(wps []trajectory.Waypoint, inflate float64) (rtreego.Rect, error) {
	minP := [3]float64{wps[0].X, wps[0].Y, wps[0].Z}
	maxP := minP
	for _, wp := range wps[1:] {
		for axis, v := range [3]float64{wp.X, wp.Y, wp.Z} {
			if v < minP[axis] {
				minP[axis] = v
			}
			if v > maxP[axis] {
				maxP[axis] = v
			}
		}
	}
	point := rtreego.Point{minP[0] - inflate, minP[1] - inflate, minP[2] - inflate}
	lengths := make([]float64, 3)
	for axis := range lengths {
		lengths[axis] = maxP[axis] - minP[axis] + 2*inflate
		if lengths[axis] < minExtent {
			lengths[axis] = minExtent
		}
	}
	return rtreego.NewRect(point, lengths)
}

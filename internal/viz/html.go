// HTML trajectory and conflict rendering with go-echarts
package viz

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"droneops-deconflict/internal/deconflict"
	"droneops-deconflict/internal/trajectory"
)

// RenderHTML writes an HTML page with two charts: a top-down (X/Y) view of
// all trajectories with conflict locations overlaid, and an altitude
// profile (time/Z) of every drone.
func RenderHTML(w io.Writer, mission trajectory.Mission, schedules []trajectory.Trajectory, details []deconflict.ConflictRecord) error {
	page := components.NewPage()
	page.AddCharts(topDownChart(mission, schedules, details), altitudeChart(mission, schedules))
	return page.Render(w)
}

// RenderHTMLFile renders the page into a file.
func RenderHTMLFile(path string, mission trajectory.Mission, schedules []trajectory.Trajectory, details []deconflict.ConflictRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderHTML(f, mission, schedules, details); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func topDownChart(mission trajectory.Mission, schedules []trajectory.Trajectory, details []deconflict.ConflictRecord) components.Charter {
	pad := 1.0
	grow := func(x, y float64) {
		if v := math.Abs(x) * 1.05; v > pad {
			pad = v
		}
		if v := math.Abs(y) * 1.05; v > pad {
			pad = v
		}
	}

	scatter := charts.NewScatter()

	missionPts := make([]opts.ScatterData, 0, len(mission.Waypoints))
	for _, wp := range mission.Waypoints {
		grow(wp.X, wp.Y)
		missionPts = append(missionPts, opts.ScatterData{Value: []interface{}{wp.X, wp.Y}})
	}

	schedSeries := make(map[string][]opts.ScatterData, len(schedules))
	for _, sched := range schedules {
		pts := make([]opts.ScatterData, 0, len(sched.Waypoints))
		for _, wp := range sched.Waypoints {
			grow(wp.X, wp.Y)
			pts = append(pts, opts.ScatterData{Value: []interface{}{wp.X, wp.Y}})
		}
		schedSeries[sched.DroneID] = pts
	}

	conflictPts := make([]opts.ScatterData, 0, len(details))
	for _, c := range details {
		grow(c.Location.X, c.Location.Y)
		conflictPts = append(conflictPts, opts.ScatterData{Value: []interface{}{c.Location.X, c.Location.Y}})
	}

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Mission Deconfliction", Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Trajectories (top-down)",
			Subtitle: fmt.Sprintf("schedules=%d conflicts=%d", len(schedules), len(details)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y", NameLocation: "middle", NameGap: 30}),
	)

	scatter.AddSeries("primary mission", missionPts,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#2196f3"}))
	for _, sched := range schedules {
		scatter.AddSeries(sched.DroneID, schedSeries[sched.DroneID],
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	}
	scatter.AddSeries("conflicts", conflictPts,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ff5252"}))

	return scatter
}

func altitudeChart(mission trajectory.Mission, schedules []trajectory.Trajectory) components.Charter {
	scatter := charts.NewScatter()

	missionPts := make([]opts.ScatterData, 0, len(mission.Waypoints))
	for _, wp := range mission.Waypoints {
		missionPts = append(missionPts, opts.ScatterData{Value: []interface{}{wp.Time, wp.Z}})
	}

	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Altitude profile"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Z", NameLocation: "middle", NameGap: 30}),
	)

	scatter.AddSeries("primary mission", missionPts,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#2196f3"}))
	for _, sched := range schedules {
		pts := make([]opts.ScatterData, 0, len(sched.Waypoints))
		for _, wp := range sched.Waypoints {
			pts = append(pts, opts.ScatterData{Value: []interface{}{wp.Time, wp.Z}})
		}
		scatter.AddSeries(sched.DroneID, pts,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	}

	return scatter
}

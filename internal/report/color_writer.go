// ColorWriter prints a human-friendly, styled detection report.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"droneops-deconflict/internal/deconflict"
)

var (
	clearStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	conflictStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	spatialStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	temporalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	droneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ColorWriter prints conflict records and the verdict using lipgloss styles.
type ColorWriter struct {
	out     io.Writer
	perType map[deconflict.ConflictType]int
}

// NewColorWriter creates a ColorWriter writing to os.Stdout.
func NewColorWriter() *ColorWriter {
	return NewColorWriterTo(os.Stdout)
}

// NewColorWriterTo creates a ColorWriter writing to w.
func NewColorWriterTo(w io.Writer) *ColorWriter {
	return &ColorWriter{out: w, perType: make(map[deconflict.ConflictType]int)}
}

// WriteRecord prints one styled conflict line.
func (w *ColorWriter) WriteRecord(rec deconflict.ConflictRecord) error {
	w.perType[rec.Type]++

	tag := spatialStyle.Render("SPATIAL ")
	detail := ""
	if rec.Type == deconflict.ConflictTemporal {
		tag = temporalStyle.Render("TEMPORAL")
	}
	switch {
	case rec.Spatial != nil:
		detail = fmt.Sprintf("segments %v/%v overlap t=[%.2f,%.2f]",
			rec.Spatial.MissionSegment, rec.Spatial.ScheduleSegment,
			rec.Spatial.TimeRange.Start, rec.Spatial.TimeRange.End)
	case rec.Temporal != nil:
		detail = fmt.Sprintf("t=%.2f", rec.Temporal.Time)
	}

	_, err := fmt.Fprintf(w.out, "%s %s dist=%.2f at (%.1f, %.1f, %.1f) %s\n",
		tag,
		droneStyle.Render(rec.DroneID),
		rec.Distance,
		rec.Location.X, rec.Location.Y, rec.Location.Z,
		dimStyle.Render(detail),
	)
	return err
}

// WriteResult prints the verdict banner and per-type counts.
func (w *ColorWriter) WriteResult(res deconflict.Result) error {
	banner := clearStyle.Render("MISSION CLEAR")
	if res.Status == deconflict.StatusConflict {
		banner = conflictStyle.Render("CONFLICT DETECTED")
	}
	_, err := fmt.Fprintf(w.out, "%s  %s\n", banner,
		dimStyle.Render(fmt.Sprintf("%d spatial, %d temporal, %d total",
			w.perType[deconflict.ConflictSpatial],
			w.perType[deconflict.ConflictTemporal],
			len(res.Details))))
	return err
}

package playback

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"droneops-deconflict/internal/deconflict"
	"droneops-deconflict/internal/trajectory"
)

const frameInterval = 200 * time.Millisecond

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	conflictStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	clearStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

type model struct {
	frames  []Frame
	buffer  float64
	idx     int
	playing bool
	width   int
	table   table.Model
}

func newModel(frames []Frame, buffer float64) model {
	cols := []table.Column{
		{Title: "Drone", Width: 16},
		{Title: "X", Width: 10},
		{Title: "Y", Width: 10},
		{Title: "Z", Width: 10},
		{Title: "Dist", Width: 10},
		{Title: "Status", Width: 10},
	}
	rows := 1
	if len(frames) > 0 {
		rows += len(frames[0].Drones)
	}
	t := table.New(table.WithColumns(cols), table.WithHeight(rows+1))
	m := model{frames: frames, buffer: buffer, playing: true, table: t}
	m.refreshTable()
	return m
}

func (m *model) refreshTable() {
	if len(m.frames) == 0 {
		return
	}
	f := m.frames[m.idx]
	rows := []table.Row{{
		"primary",
		fmt.Sprintf("%.1f", f.Mission.X),
		fmt.Sprintf("%.1f", f.Mission.Y),
		fmt.Sprintf("%.1f", f.Mission.Z),
		"",
		"",
	}}
	for _, d := range f.Drones {
		if d.Distance < 0 {
			rows = append(rows, table.Row{d.DroneID, "-", "-", "-", "-", "inactive"})
			continue
		}
		status := "ok"
		if d.Inside {
			status = "CLOSE"
		}
		rows = append(rows, table.Row{
			d.DroneID,
			fmt.Sprintf("%.1f", d.Position.X),
			fmt.Sprintf("%.1f", d.Position.Y),
			fmt.Sprintf("%.1f", d.Position.Z),
			fmt.Sprintf("%.1f", d.Distance),
			status,
		})
	}
	m.table.SetRows(rows)
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetWidth(msg.Width)
	case tickMsg:
		if m.playing && m.idx < len(m.frames)-1 {
			m.idx++
			m.refreshTable()
		}
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "right", "l":
			if m.idx < len(m.frames)-1 {
				m.idx++
				m.refreshTable()
			}
		case "left", "h":
			if m.idx > 0 {
				m.idx--
				m.refreshTable()
			}
		case "r":
			m.idx = 0
			m.playing = true
			m.refreshTable()
		}
	}
	return m, nil
}

func (m model) View() string {
	if len(m.frames) == 0 {
		return "no frames"
	}
	f := m.frames[m.idx]
	banner := clearStyle.Render("CLEAR")
	if f.Conflict {
		banner = conflictStyle.Render("CONFLICT")
	}
	header := headerStyle.Render(fmt.Sprintf("Mission playback  t=%.2f  frame %d/%d  buffer=%.1f  %s",
		f.Time, m.idx+1, len(m.frames), m.buffer, banner))
	state := "playing"
	if !m.playing {
		state = "paused"
	}
	help := dimStyle.Render(fmt.Sprintf("[%s] space play/pause  ←/→ step  r restart  q quit", state))
	if m.width > 0 {
		help = wordwrap.String(help, m.width)
	}
	return strings.Join([]string{header, m.table.View(), help}, "\n")
}

// Run animates the mission window in an alt-screen TUI until the user quits.
func Run(mission trajectory.Mission, schedules []trajectory.Trajectory, details []deconflict.ConflictRecord, buffer float64, frameCount int) error {
	frames := BuildFrames(mission, schedules, details, buffer, frameCount)
	p := tea.NewProgram(newModel(frames, buffer), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

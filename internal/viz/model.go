package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/asciifire/internal/fire"
	"github.com/san-kum/asciifire/internal/metrics"
	"github.com/san-kum/asciifire/internal/term"
)

const historyCapacity = 120

type TickMsg time.Time

// Model drives a fire simulator from the Bubble Tea update loop. Window size
// messages are fed to the sizer the simulator resizes against.
type Model struct {
	sim       *fire.Simulator
	sizer     *term.Fixed
	interval  time.Duration
	theme     Theme
	styles    []lipgloss.Style
	running   bool
	showStats bool
	frame     int
	heat      metrics.Heat
	history   *metrics.History
	width     int
	height    int
	err       error
}

// NewModel wraps sim, which must have been built on sizer.
func NewModel(sim *fire.Simulator, sizer *term.Fixed, interval time.Duration, theme string) Model {
	t := GetTheme(theme)
	cols, rows := sim.Size()
	return Model{
		sim:       sim,
		sizer:     sizer,
		interval:  interval,
		theme:     t,
		styles:    rampStyles(t),
		running:   true,
		showStats: true,
		history:   metrics.NewHistory(historyCapacity),
		width:     cols,
		height:    rows,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Err reports the error that ended the program, if any.
func (m Model) Err() error { return m.err }

// Update handles input events and advances the fire.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "t":
			m.theme = nextTheme(m.theme.Name)
			m.styles = rampStyles(m.theme)
		case "s":
			m.showStats = !m.showStats
			m.fitSizer()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.fitSizer()
	case TickMsg:
		if m.running {
			if err := m.step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// fitSizer gives the fire whatever the stats pane leaves free.
func (m *Model) fitSizer() {
	cols := m.width
	if m.showStats {
		cols -= statsWidth
	}
	if cols < 1 {
		cols = 1
	}
	rows := m.height
	if rows < 1 {
		rows = 1
	}
	m.sizer.Set(cols, rows)
	slog.Debug("tui resized", "cols", cols, "rows", rows)
}

func (m *Model) step() error {
	if err := m.sim.Resize(); err != nil {
		return err
	}
	m.sim.Seed()
	m.sim.Calculate()
	m.frame++
	m.heat = metrics.Measure(m.sim.Grid(), m.sim.Palette().Max())
	m.history.Push(m.heat.Mean)
	return nil
}

// View renders the fire and, optionally, the stats pane.
func (m Model) View() string {
	fireView := strings.TrimSuffix(colorFrame(m.sim.Grid(), m.sim.Palette(), m.styles), "\n")
	if !m.showStats {
		return fireView
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, fireView, m.statsView())
}

func (m Model) statsView() string {
	var s strings.Builder
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(headerStyle(m.theme).Render("ASCII FIRE") + "\n")
	s.WriteString(labelStyle.Render("Status") + valueStyle.Render(status) + "\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.frame)) + "\n")
	cols, rows := m.sim.Size()
	s.WriteString(labelStyle.Render("Grid") + valueStyle.Render(fmt.Sprintf("%dx%d", cols, rows)) + "\n")
	s.WriteString(labelStyle.Render("Heat") + valueStyle.Render(fmt.Sprintf("%.1f%%", m.heat.Mean*100)) + "\n")
	s.WriteString(labelStyle.Render("Peak") + valueStyle.Render(fmt.Sprintf("%d/%d", m.heat.Peak, m.sim.Palette().Max())) + "\n")
	s.WriteString(labelStyle.Render("Coverage") + valueStyle.Render(fmt.Sprintf("%.1f%%", m.heat.Coverage*100)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")
	if m.history.Len() > 1 {
		chart := asciigraph.Plot(m.history.Values(),
			asciigraph.Height(5),
			asciigraph.Width(statsWidth-12),
			asciigraph.Caption("mean heat"),
		)
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Accent).Render(chart) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause T:Theme\nS:Stats  Q:Quit"))
	return statsStyle(m.theme).Render(s.String())
}

// Run starts the program in the alternate screen and returns any simulator
// error that stopped it.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}

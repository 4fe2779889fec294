package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/crnsim/internal/solver"
)

const (
	historyCapacity = 600
	stepsPerFrame   = 10
	frameRate       = 30
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
)

type TickMsg time.Time

// WatchModel steps a reaction system live and plots the recent
// concentration history of every species.
type WatchModel struct {
	name    string
	sys     solver.System
	stepper solver.Stepper
	species []string
	state   []float64
	init    []float64
	t       float64
	dt      float64
	running bool
	history [][]float64
}

func NewWatch(name string, sys solver.System, stepper solver.Stepper, species []string, init []float64, dt float64) WatchModel {
	state := make([]float64, len(init))
	copy(state, init)
	return WatchModel{
		name:    name,
		sys:     sys,
		stepper: stepper,
		species: species,
		state:   state,
		init:    init,
		dt:      dt,
		running: true,
		history: make([][]float64, len(species)),
	}
}

func (m WatchModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			copy(m.state, m.init)
			m.t = 0
			for j := range m.history {
				m.history[j] = nil
			}
		}
	case TickMsg:
		if m.running {
			for i := 0; i < stepsPerFrame; i++ {
				m.state = m.stepper.Step(m.sys, m.state, m.t, m.dt)
				m.t += m.dt
			}
			for j := range m.species {
				m.history[j] = append(m.history[j], m.state[j])
				if len(m.history[j]) > historyCapacity {
					m.history[j] = m.history[j][1:]
				}
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m WatchModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("crnsim watch: " + m.name))
	b.WriteString("\n")

	if len(m.history) > 0 && len(m.history[0]) > 1 {
		graph := asciigraph.PlotMany(m.history,
			asciigraph.Height(16),
			asciigraph.Width(72),
			asciigraph.SeriesColors(seriesColors(len(m.history))...),
			asciigraph.SeriesLegends(m.species...),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.3f", m.t)) + "\n")
	for j, s := range m.species {
		b.WriteString(labelStyle.Render(s) + valueStyle.Render(fmt.Sprintf("%.6g", m.state[j])) + "\n")
	}

	status := "running"
	if !m.running {
		status = "paused"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("[%s]  space pause · r reset · q quit", status)))
	return b.String()
}

// Watch runs the live view until the user quits.
func Watch(m WatchModel) error {
	_, err := tea.NewProgram(m).Run()
	return err
}

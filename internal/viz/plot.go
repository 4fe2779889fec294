// Package viz renders concentration trajectories in the terminal: a
// static multi-series plot and a live watch view.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/crnsim/internal/sim"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var palette = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Blue,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

func seriesColors(n int) []asciigraph.AnsiColor {
	colors := make([]asciigraph.AnsiColor, n)
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}

// Plot renders all species of a trajectory as one multi-series graph
// with a legend.
func Plot(title string, traj *sim.Trajectory, width, height int) string {
	series := make([][]float64, len(traj.Species))
	for j, s := range traj.Species {
		series[j], _ = traj.Column(s)
	}

	caption := fmt.Sprintf("t = %g .. %g", traj.Times[0], traj.Times[len(traj.Times)-1])
	graph := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(seriesColors(len(series))...),
		asciigraph.SeriesLegends(traj.Species...),
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(graph)
	b.WriteString("\n")
	for _, d := range traj.Diagnostics {
		b.WriteString(warnStyle.Render("warning: " + d.String()))
		b.WriteString("\n")
	}
	return b.String()
}

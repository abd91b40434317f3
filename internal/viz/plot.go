package viz

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/rollsim/internal/sim"
)

// PlotRemovals draws removed cells per round as an ASCII line chart.
func PlotRemovals(rounds []sim.RoundStats, width, height int) string {
	if len(rounds) == 0 {
		return ""
	}
	data := make([]float64, len(rounds))
	for i, r := range rounds {
		data[i] = float64(r.Removed)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("removed per round"),
	)
}

package metrics

import (
	"fmt"
	"io"

	"github.com/san-kum/rollsim/internal/grid"
	"github.com/san-kum/rollsim/internal/sim"
)

// Logger writes one line per round and, with ShowGrid, the grid itself.
type Logger struct {
	w        io.Writer
	ShowGrid bool
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

func (l *Logger) OnRound(stats sim.RoundStats, g *grid.Grid) {
	if l.ShowGrid {
		fmt.Fprint(l.w, g.String())
	}
	fmt.Fprintf(l.w, "round %d: removed %d (active %d, decaying %d)\n",
		stats.Round, stats.Removed, stats.Active, stats.Decaying)
}

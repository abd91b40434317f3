package metrics

import (
	"github.com/san-kum/rollsim/internal/grid"
	"github.com/san-kum/rollsim/internal/sim"
)

// Recorder collects the stats of every round it observes.
type Recorder struct {
	rounds []sim.RoundStats
}

func NewRecorder() *Recorder {
	return &Recorder{rounds: make([]sim.RoundStats, 0)}
}

func (r *Recorder) OnRound(stats sim.RoundStats, g *grid.Grid) {
	r.rounds = append(r.rounds, stats)
}

func (r *Recorder) Rounds() []sim.RoundStats { return r.rounds }

func (r *Recorder) Reset() { r.rounds = r.rounds[:0] }

func (r *Recorder) Summary() Summary { return Summarize(r.rounds) }

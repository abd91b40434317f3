package metrics

import (
	"math"

	"github.com/san-kum/rollsim/internal/sim"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses a run's round stats.
type Summary struct {
	Rounds         int     `json:"rounds"`
	TotalRemoved   uint64  `json:"total_removed"`
	RemovingRounds int     `json:"removing_rounds"`
	PeakRound      int     `json:"peak_round"`
	PeakRemoved    int     `json:"peak_removed"`
	MeanRemoved    float64 `json:"mean_removed"`
	StdDevRemoved  float64 `json:"stddev_removed"`
	// SettleRound is the first round after which no cell is decaying and no
	// further removal happens; 0 if the run ended before settling.
	SettleRound int `json:"settle_round"`
}

// Summarize computes a Summary. Mean and standard deviation are taken over
// the rounds that removed at least one cell.
func Summarize(rounds []sim.RoundStats) Summary {
	s := Summary{Rounds: len(rounds)}
	removing := make([]float64, 0, len(rounds))
	for _, r := range rounds {
		s.TotalRemoved += uint64(r.Removed)
		if r.Removed > 0 {
			removing = append(removing, float64(r.Removed))
		}
		if r.Removed > s.PeakRemoved {
			s.PeakRemoved = r.Removed
			s.PeakRound = r.Round
		}
	}
	s.RemovingRounds = len(removing)

	switch len(removing) {
	case 0:
	case 1:
		s.MeanRemoved = removing[0]
	default:
		s.MeanRemoved, s.StdDevRemoved = stat.MeanStdDev(removing, nil)
	}

	for i := len(rounds) - 1; i >= 0; i-- {
		r := rounds[i]
		if r.Removed > 0 || r.Decaying > 0 {
			if i+1 < len(rounds) {
				s.SettleRound = rounds[i+1].Round
			}
			break
		}
		if i == 0 {
			s.SettleRound = r.Round
		}
	}

	if math.IsNaN(s.StdDevRemoved) {
		s.StdDevRemoved = 0
	}
	return s
}

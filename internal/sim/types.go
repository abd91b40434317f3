package sim

import (
	"fmt"

	"github.com/san-kum/rollsim/internal/grid"
)

const (
	// Threshold is the active-neighbour count below which an active cell is
	// removed.
	Threshold = 4
	// StuckLimit is the number of consecutive rounds without removals that
	// ends a multi-round run. It equals the decay length so every removed
	// cell has gone dark by the final frame.
	StuckLimit = grid.DecayStages
)

type Mode int

const (
	SingleRound Mode = iota
	MultiRound
)

func (m Mode) String() string {
	switch m {
	case SingleRound:
		return "single"
	case MultiRound:
		return "multi"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "single", "single-round":
		return SingleRound, nil
	case "multi", "multi-round":
		return MultiRound, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want single or multi)", s)
	}
}

type Config struct {
	Mode Mode
	// MaxFrames caps the frame log; 0 means unbounded.
	MaxFrames int
}

// RoundStats describes the grid at the end of one round.
type RoundStats struct {
	Round    int
	Removed  int
	Active   int
	Decaying int
	Stuck    int
}

type Observer interface {
	OnRound(stats RoundStats, g *grid.Grid)
}

type Result struct {
	Mode         Mode
	TotalRemoved uint64
	Rounds       int
	Frames       *FrameLog
	Stats        []RoundStats
	Final        *grid.Grid
}

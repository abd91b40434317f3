package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/rollsim/internal/grid"
)

type Simulator struct {
	initial   *grid.Grid
	observers []Observer
}

// New returns a simulator over a private copy of g. Every Run starts from
// that copy, so runs on the same simulator are independent.
func New(g *grid.Grid) *Simulator {
	return &Simulator{
		initial:   g.Clone(),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run executes rounds until the mode's stop condition holds and returns the
// total number of removed cells together with one snapshot per round plus
// the final grid. On context cancellation or a frame-log overflow the
// partial result is returned with the error.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	cur := s.initial.Clone()
	bound := MaxRounds(cur)
	result := &Result{
		Mode:   cfg.Mode,
		Frames: NewFrameLog(cfg.MaxFrames),
		Stats:  make([]RoundStats, 0, bound),
	}

	stuck := 0
	for {
		select {
		case <-ctx.Done():
			result.Final = cur
			return result, ctx.Err()
		default:
		}

		if err := result.Frames.Append(cur); err != nil {
			result.Final = cur
			return result, err
		}

		next, removed := Step(cur)
		cur = next
		result.Rounds++
		result.TotalRemoved += uint64(removed)
		if removed > 0 {
			stuck = 0
		} else {
			stuck++
		}

		stats := RoundStats{
			Round:    result.Rounds,
			Removed:  removed,
			Active:   cur.Count(grid.KindActive),
			Decaying: cur.Count(grid.KindDecaying),
			Stuck:    stuck,
		}
		result.Stats = append(result.Stats, stats)
		for _, obs := range s.observers {
			obs.OnRound(stats, cur)
		}

		if cfg.Mode == SingleRound || stuck >= StuckLimit {
			break
		}
		if result.Rounds >= bound {
			result.Final = cur
			return result, fmt.Errorf("%w: %d rounds", ErrRoundBound, result.Rounds)
		}
	}

	result.Final = cur
	if err := result.Frames.Append(cur); err != nil {
		return result, err
	}
	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Mode != SingleRound && cfg.Mode != MultiRound {
		return fmt.Errorf("unknown mode %v", cfg.Mode)
	}
	if cfg.MaxFrames < 0 {
		return fmt.Errorf("max frames must be non-negative, got %d", cfg.MaxFrames)
	}
	return nil
}

// Step applies one round to g and returns the next grid and the number of
// cells removed. Every removal decision reads g only; g is not modified.
func Step(g *grid.Grid) (*grid.Grid, int) {
	next := grid.New(g.Width(), g.Height())
	removed := 0
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			cell := g.At(r, c)
			switch {
			case cell.IsActive():
				if CountActiveNeighbors(g, r, c) < Threshold {
					next.Set(r, c, grid.Decaying(1))
					removed++
				} else {
					next.Set(r, c, grid.Active)
				}
			default:
				next.Set(r, c, cell.Advance())
			}
		}
	}
	return next, removed
}

// CountActiveNeighbors counts Active cells among the eight positions around
// (row, col). Positions outside the grid count as zero.
func CountActiveNeighbors(g *grid.Grid, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.At(row+dr, col+dc).IsActive() {
				n++
			}
		}
	}
	return n
}

// MaxRounds is the most rounds a multi-round run on g can take: one per
// active cell plus the stuck rounds needed for the last removals to fade.
func MaxRounds(g *grid.Grid) int {
	return g.Count(grid.KindActive) + StuckLimit
}

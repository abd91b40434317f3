package sim

import "github.com/san-kum/rollsim/internal/grid"

// FrameLog is an append-only sequence of grid snapshots. Grids are cloned on
// the way in and on the way out, so a stored snapshot never changes.
type FrameLog struct {
	frames []*grid.Grid
	limit  int
}

// NewFrameLog returns an empty log holding at most limit frames; limit <= 0
// means unbounded.
func NewFrameLog(limit int) *FrameLog {
	if limit < 0 {
		limit = 0
	}
	return &FrameLog{limit: limit}
}

func (l *FrameLog) Append(g *grid.Grid) error {
	if l.limit > 0 && len(l.frames) >= l.limit {
		return ErrFrameLimit
	}
	l.frames = append(l.frames, g.Clone())
	return nil
}

func (l *FrameLog) Len() int { return len(l.frames) }

func (l *FrameLog) At(i int) *grid.Grid { return l.frames[i].Clone() }

// Last returns the most recent snapshot, or nil if the log is empty.
func (l *FrameLog) Last() *grid.Grid {
	if len(l.frames) == 0 {
		return nil
	}
	return l.frames[len(l.frames)-1].Clone()
}

// Frames returns copies of the snapshots in append order.
func (l *FrameLog) Frames() []*grid.Grid {
	out := make([]*grid.Grid, len(l.frames))
	for i, g := range l.frames {
		out[i] = g.Clone()
	}
	return out
}

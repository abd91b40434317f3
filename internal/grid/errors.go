package grid

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid is matched by every MalformedGridError.
var ErrMalformedGrid = errors.New("grid: malformed grid")

// MalformedGridError reports input that cannot become a rectangular grid of
// Active and Empty cells. Row and Col are zero-based; Col is -1 when the
// problem concerns a whole row and Row is -1 when it concerns the grid.
type MalformedGridError struct {
	Row    int
	Col    int
	Reason string
}

func (e *MalformedGridError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("grid: malformed grid: %s", e.Reason)
	case e.Col < 0:
		return fmt.Sprintf("grid: malformed grid at row %d: %s", e.Row, e.Reason)
	default:
		return fmt.Sprintf("grid: malformed grid at row %d col %d: %s", e.Row, e.Col, e.Reason)
	}
}

func (e *MalformedGridError) Unwrap() error {
	return ErrMalformedGrid
}

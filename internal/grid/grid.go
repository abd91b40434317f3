package grid

import "strings"

// Grid is a rectangular, row-major array of cells.
type Grid struct {
	width, height int
	cells         []Cell
}

// New returns a width x height grid of Empty cells. Non-positive dimensions
// give an empty grid.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{width: width, height: height, cells: make([]Cell, width*height)}
}

// FromRows builds a grid from rows of cells. Every row must have the same,
// non-zero length and every cell must be Active or Empty.
func FromRows(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &MalformedGridError{Row: -1, Col: -1, Reason: "no rows"}
	}
	width := len(rows[0])
	if width == 0 {
		return nil, &MalformedGridError{Row: 0, Col: -1, Reason: "empty row"}
	}
	g := New(width, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, &MalformedGridError{Row: r, Col: -1, Reason: lengthReason(len(row), width)}
		}
		for c, cell := range row {
			if !cell.IsActive() && !cell.IsEmpty() {
				return nil, &MalformedGridError{Row: r, Col: c, Reason: "initial cell must be active or empty, got " + cell.String()}
			}
			g.cells[r*width+c] = cell
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the cell at (row, col). Positions outside the grid read as Empty.
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.cells[row*g.width+col]
}

// Set stores c at (row, col). Positions outside the grid are ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row*g.width+col] = c
}

func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c.kind == k {
			n++
		}
	}
	return n
}

func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line using Cell.Symbol.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			sb.WriteByte(g.cells[r*g.width+c].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

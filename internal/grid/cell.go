package grid

import "fmt"

// DecayStages is the number of visual stages a removed cell passes through
// before it goes dark.
const DecayStages = 8

type Kind uint8

const (
	KindEmpty Kind = iota
	KindActive
	KindDecaying
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindActive:
		return "active"
	case KindDecaying:
		return "decaying"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Cell is a single grid position. The zero value is Empty.
type Cell struct {
	kind  Kind
	stage uint8
}

var (
	Active = Cell{kind: KindActive}
	Empty  = Cell{kind: KindEmpty}
)

// Decaying returns a cell at the given fade stage. It panics if stage is not
// in 1..DecayStages.
func Decaying(stage int) Cell {
	if stage < 1 || stage > DecayStages {
		panic(fmt.Sprintf("grid: decay stage %d out of range 1..%d", stage, DecayStages))
	}
	return Cell{kind: KindDecaying, stage: uint8(stage)}
}

func (c Cell) Kind() Kind { return c.kind }

// Stage returns the decay stage, or 0 for cells that are not decaying.
func (c Cell) Stage() int {
	if c.kind != KindDecaying {
		return 0
	}
	return int(c.stage)
}

func (c Cell) IsActive() bool   { return c.kind == KindActive }
func (c Cell) IsDecaying() bool { return c.kind == KindDecaying }
func (c Cell) IsEmpty() bool    { return c.kind == KindEmpty }

// Advance moves a decaying cell one stage forward; the last stage goes to
// Empty. Active and Empty cells are returned unchanged.
func (c Cell) Advance() Cell {
	if c.kind != KindDecaying {
		return c
	}
	if int(c.stage) >= DecayStages {
		return Empty
	}
	return Cell{kind: KindDecaying, stage: c.stage + 1}
}

// Symbol returns the single-byte text form of the cell: '@' for Active, '.'
// for Empty and '1'..'8' for the decay stages.
func (c Cell) Symbol() byte {
	switch c.kind {
	case KindActive:
		return '@'
	case KindDecaying:
		return '0' + c.stage
	default:
		return '.'
	}
}

func (c Cell) String() string {
	if c.kind == KindDecaying {
		return fmt.Sprintf("decaying(%d)", c.stage)
	}
	return c.kind.String()
}
